package storage_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"cleanrate/config"
	otelMocks "cleanrate/infras/otel/mocks"
	s3Mocks "cleanrate/infras/s3/mocks"
	"cleanrate/shared/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func localConfig(dir string) *config.Config {
	cfg := &config.Config{}
	cfg.Storage.LocalDir = dir
	cfg.Storage.PublicPrefix = "/uploads/"

	return cfg
}

func TestCleanFileName(t *testing.T) {
	valid := []string{"profile-1.png", "employee-abc-1700000000000.webp"}
	for _, name := range valid {
		got, err := storage.CleanFileName(name)
		require.NoError(t, err)
		assert.Equal(t, name, got)
	}

	invalid := []string{"", " ", "..", "../etc/passwd", "a/b.png", `a\b.png`, "."}
	for _, name := range invalid {
		_, err := storage.CleanFileName(name)
		assert.ErrorIs(t, err, storage.ErrInvalidFileName, name)
	}
}

func TestLocalStorage(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store := storage.NewLocal(localConfig(dir), otelMocks.NewOtel())
	ctx := context.Background()

	url, err := store.Save(ctx, "profile-1.png", "image/png", []byte("png"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/profile-1.png", url)

	content, err := os.ReadFile(filepath.Join(dir, "profile-1.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), content)

	require.NoError(t, store.Delete(ctx, "profile-1.png"))
	_, err = os.Stat(filepath.Join(dir, "profile-1.png"))
	assert.True(t, os.IsNotExist(err))

	// deleting twice is fine
	assert.NoError(t, store.Delete(ctx, "profile-1.png"))

	_, err = store.Save(ctx, "../escape.png", "image/png", []byte("x"))
	assert.ErrorIs(t, err, storage.ErrInvalidFileName)
	assert.ErrorIs(t, store.Delete(ctx, "../escape.png"), storage.ErrInvalidFileName)
}

func TestS3Storage(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}
	cfg.External.S3.BucketName = "photos"
	cfg.Storage.Directory = "uploads"

	store := storage.NewS3(cfg, client, otelMocks.NewOtel())
	ctx := context.Background()

	client.EXPECT().
		UploadFileBytes(gomock.Any(), "photos", "uploads", "profile-1.png", "image/png", []byte("png")).
		Return("https://cdn.example.com/uploads/profile-1.png", nil)

	url, err := store.Save(ctx, "profile-1.png", "image/png", []byte("png"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/uploads/profile-1.png", url)

	client.EXPECT().
		DeleteFile(gomock.Any(), "photos", "uploads", "profile-1.png").
		Return(errors.New("denied"))

	assert.Error(t, store.Delete(ctx, "profile-1.png"))
}
