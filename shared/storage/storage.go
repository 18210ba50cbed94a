package storage

//go:generate go run go.uber.org/mock/mockgen -source=./storage.go -destination=./mocks/storage_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cleanrate/config"
	"cleanrate/infras/otel"
	"cleanrate/infras/s3"
	"cleanrate/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	DriverLocal = "local"
	DriverS3    = "s3"

	dirPerm  = 0o755
	filePerm = 0o644
)

var ErrInvalidFileName = errors.New("invalid file name")

// Storage keeps uploaded objects. Save returns the public URL of the stored object.
type Storage interface {
	Save(ctx context.Context, fileName, contentType string, data []byte) (url string, err error)
	Delete(ctx context.Context, fileName string) error
}

func New(cfg *config.Config, otl otel.Otel) Storage {
	if cfg.Storage.Driver == DriverS3 {
		log.Info().Str("bucket", cfg.External.S3.BucketName).Msg("Using S3 upload storage")

		return NewS3(cfg, s3.New(cfg, otl), otl)
	}

	log.Info().Str("dir", cfg.Storage.LocalDir).Msg("Using local upload storage")

	return NewLocal(cfg, otl)
}

// CleanFileName rejects names that would escape the upload directory.
func CleanFileName(fileName string) (string, error) {
	name := strings.TrimSpace(fileName)
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return constant.Empty, ErrInvalidFileName
	}

	return name, nil
}

type localStorage struct {
	dir    string
	prefix string
	otel   otel.Otel
}

func NewLocal(cfg *config.Config, otl otel.Otel) Storage {
	return &localStorage{
		dir:    cfg.Storage.LocalDir,
		prefix: strings.TrimSuffix(cfg.Storage.PublicPrefix, "/"),
		otel:   otl,
	}
}

func (l *localStorage) Save(ctx context.Context, fileName, _ string, data []byte) (url string, err error) {
	_, scope := l.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".local.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	name, err := CleanFileName(fileName)
	if err != nil {
		return constant.Empty, err
	}

	if err = os.MkdirAll(l.dir, dirPerm); err != nil {
		return constant.Empty, fmt.Errorf("failed to create upload directory: %w", err)
	}

	if err = os.WriteFile(filepath.Join(l.dir, name), data, filePerm); err != nil {
		return constant.Empty, fmt.Errorf("failed to write upload: %w", err)
	}

	return l.prefix + "/" + name, nil
}

func (l *localStorage) Delete(ctx context.Context, fileName string) (err error) {
	_, scope := l.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".local.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	name, err := CleanFileName(fileName)
	if err != nil {
		return err
	}

	err = os.Remove(filepath.Join(l.dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete upload: %w", err)
	}

	return nil
}

type s3Storage struct {
	client    s3.S3
	bucket    string
	directory string
	otel      otel.Otel
}

func NewS3(cfg *config.Config, client s3.S3, otl otel.Otel) Storage {
	return &s3Storage{
		client:    client,
		bucket:    cfg.External.S3.BucketName,
		directory: cfg.Storage.Directory,
		otel:      otl,
	}
}

func (s *s3Storage) Save(ctx context.Context, fileName, contentType string, data []byte) (url string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".s3.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	name, err := CleanFileName(fileName)
	if err != nil {
		return constant.Empty, err
	}

	url, err = s.client.UploadFileBytes(ctx, s.bucket, s.directory, name, contentType, data)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to save upload: %w", err)
	}

	return url, nil
}

func (s *s3Storage) Delete(ctx context.Context, fileName string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".s3.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	name, err := CleanFileName(fileName)
	if err != nil {
		return err
	}

	if err = s.client.DeleteFile(ctx, s.bucket, s.directory, name); err != nil {
		return fmt.Errorf("failed to delete upload: %w", err)
	}

	return nil
}
