package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	cmap "github.com/orcaman/concurrent-map/v2"
)

type DiskStorage struct {
	// BasePath is a directory that is writable by the current process
	BasePath string
	// BaseURL is the URL prefix BasePath is served under
	BaseURL string
	dirs    cmap.ConcurrentMap[string, bool]
}

func NewDiskStorage(basePath, baseURL string) *DiskStorage {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &DiskStorage{
		BasePath: basePath,
		BaseURL:  baseURL,
		dirs:     cmap.New[bool](),
	}
}

func (s *DiskStorage) createDir(dir string) error {
	if s.dirs.Has(dir) {
		return nil
	}
	if err := os.MkdirAll(dir, 0777); err != nil {
		return err
	}
	s.dirs.Set(dir, true)
	return nil
}

func (s *DiskStorage) getFullPath(name string) string {
	return filepath.Join(s.BasePath, filepath.FromSlash(name))
}

func (s *DiskStorage) Exists(name string) bool {
	_, err := os.Stat(s.getFullPath(name))
	return err == nil
}

func (s *DiskStorage) Save(name string, reader io.Reader) (string, error) {
	for {
		name = availableName(s, name)
		fileName := s.getFullPath(name)
		if err := s.createDir(filepath.Dir(fileName)); err != nil {
			return "", err
		}
		// O_EXCL: another request may have taken the name in the meantime
		file, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", err
		}
		_, err = io.Copy(file, reader)
		if cerr := file.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(fileName)
			return "", err
		}
		return name, nil
	}
}

func (s *DiskStorage) Delete(name string) error {
	return os.Remove(s.getFullPath(name))
}

func (s *DiskStorage) URL(name string) string {
	return s.BaseURL + name
}
