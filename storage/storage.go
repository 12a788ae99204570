package storage

import (
	"errors"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"grandywoods/config"
)

// StorageAPI is implemented by every media backend. Names are slash separated
// and relative to the media root, e.g. "images/photo.png".
type StorageAPI interface {
	// Save stores the content under name, or under a derived name if name is taken,
	// and returns the name actually used
	Save(name string, reader io.Reader) (string, error)
	Exists(name string) bool
	Delete(name string) error
	URL(name string) string
}

const (
	FolderImages = "images"
	FolderPDFs   = "pdfs"
)

var (
	ErrUnsupportedType = errors.New("unsupported file type")

	Default StorageAPI

	imageExtensions = map[string]bool{
		".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".bmp": true, ".tiff": true,
	}
)

func Init() (err error) {
	if config.S3_BUCKET != "" {
		Default, err = NewS3Storage(S3Options{
			Bucket:    config.S3_BUCKET,
			Region:    config.S3_REGION,
			Endpoint:  config.S3_ENDPOINT,
			Key:       config.S3_KEY,
			Secret:    config.S3_SECRET,
			PublicURL: config.S3_PUBLIC_URL,
		})
		if err == nil {
			log.Info().Str("bucket", config.S3_BUCKET).Msg("media stored on S3")
		}
		return
	}
	Default = NewDiskStorage(config.MEDIA_ROOT, config.MEDIA_URL)
	log.Info().Str("root", config.MEDIA_ROOT).Msg("media stored on disk")
	return nil
}

// EditorFolder classifies an editor upload by its extension
func EditorFolder(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if imageExtensions[ext] {
		return FolderImages, nil
	}
	if ext == ".pdf" {
		return FolderPDFs, nil
	}
	return "", ErrUnsupportedType
}

// CleanName strips any directory part from a client supplied file name and
// restricts the characters used
func CleanName(filename string) string {
	filename = filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	var name strings.Builder
	for i, c := range filename {
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') ||
			(c == '.' && i > 0) || (c == '-') || (c == '_') {

			name.WriteRune(c)
		} else {
			// Replace all other characters with '_' (underscore)
			name.WriteString("_")
		}
	}
	if name.Len() == 0 || name.String() == "." {
		return "file"
	}
	return name.String()
}

// availableName appends a short random suffix to the base name until it is free
func availableName(s StorageAPI, name string) string {
	dir, file := path.Split(name)
	ext := path.Ext(file)
	base := strings.TrimSuffix(file, ext)
	for s.Exists(name) {
		name = dir + base + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:7] + ext
	}
	return name
}

// DeleteQuietly removes the given names, logging failures. Used when rows
// pointing at the files are gone already.
func DeleteQuietly(s StorageAPI, names ...string) {
	for _, name := range names {
		if name == "" {
			continue
		}
		if err := s.Delete(name); err != nil {
			log.Warn().Err(err).Str("name", name).Msg("cannot delete media file")
		}
	}
}
