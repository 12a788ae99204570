package storage

import (
	"fmt"
	"io"
	"mime"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

type S3Options struct {
	Bucket    string
	Region    string
	Endpoint  string // optional, for S3 compatible providers
	Key       string // optional, the default credential chain is used otherwise
	Secret    string
	PublicURL string // optional, defaults to the bucket URL
}

type S3Storage struct {
	bucket    string
	publicURL string
	s3Client  *s3.S3
	uploader  *s3manager.Uploader
}

func NewS3Storage(opts S3Options) (*S3Storage, error) {
	cfg := aws.NewConfig().WithRegion(opts.Region)
	if opts.Key != "" {
		cfg = cfg.WithCredentials(credentials.NewStaticCredentials(opts.Key, opts.Secret, ""))
	}
	if opts.Endpoint != "" {
		cfg = cfg.WithEndpoint(opts.Endpoint).WithS3ForcePathStyle(true)
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, err
	}
	publicURL := opts.PublicURL
	if publicURL == "" {
		if opts.Endpoint != "" {
			publicURL = strings.TrimSuffix(opts.Endpoint, "/") + "/" + opts.Bucket + "/"
		} else {
			publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", opts.Bucket, opts.Region)
		}
	}
	if !strings.HasSuffix(publicURL, "/") {
		publicURL += "/"
	}
	client := s3.New(sess)
	return &S3Storage{
		bucket:    opts.Bucket,
		publicURL: publicURL,
		s3Client:  client,
		uploader:  s3manager.NewUploaderWithClient(client),
	}, nil
}

func (s *S3Storage) Exists(name string) bool {
	_, err := s.s3Client.HeadObject(&s3.HeadObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(name),
	})
	return err == nil
}

func (s *S3Storage) Save(name string, reader io.Reader) (string, error) {
	name = availableName(s, name)
	input := s3manager.UploadInput{
		Bucket: &s.bucket,
		Key:    aws.String(name),
		Body:   reader,
	}
	if mimeType := mime.TypeByExtension(path.Ext(name)); mimeType != "" {
		input.ContentType = &mimeType
	}
	if _, err := s.uploader.Upload(&input); err != nil {
		return "", err
	}
	return name, nil
}

func (s *S3Storage) Delete(name string) error {
	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(name),
	})
	return err
}

func (s *S3Storage) URL(name string) string {
	return s.publicURL + name
}
