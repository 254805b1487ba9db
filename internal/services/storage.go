package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/P3chys/studyqa-api/internal/config"
	"github.com/P3chys/studyqa-api/internal/models"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// AttachmentRoute is where uploaded attachments are served from.
const AttachmentRoute = "/api/v1/attachments/"

type StorageService struct {
	client *minio.Client
	bucket string
}

func NewStorageService(ctx context.Context, cfg *config.Config) (*StorageService, error) {
	client, err := minio.New(cfg.MinIOEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
		Secure: cfg.MinIOUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	// Ensure bucket exists
	exists, err := client.BucketExists(ctx, cfg.MinIOBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.MinIOBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinIOBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.MinIOBucket, err)
		}
	}

	return &StorageService{
		client: client,
		bucket: cfg.MinIOBucket,
	}, nil
}

// UploadAttachment stores the file under a fresh object name and returns the
// attachment record a question draft can carry.
func (s *StorageService) UploadAttachment(ctx context.Context, file io.Reader, size int64, originalName, contentType string) (models.Attachment, error) {
	id := uuid.NewString()
	objectName := id + filepath.Ext(originalName)

	_, err := s.client.PutObject(ctx, s.bucket, objectName, file, size, minio.PutObjectOptions{
		ContentType: contentType,
		UserMetadata: map[string]string{
			"original-name": originalName,
		},
	})
	if err != nil {
		return models.Attachment{}, fmt.Errorf("failed to upload attachment: %w", err)
	}

	return models.Attachment{
		ID:   id,
		Name: originalName,
		URL:  AttachmentRoute + objectName,
		Type: contentType,
	}, nil
}

// OpenAttachment returns a reader over the stored object with its size and
// content type. The caller closes the reader.
func (s *StorageService) OpenAttachment(ctx context.Context, objectName string) (io.ReadCloser, int64, string, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, 0, "", fmt.Errorf("failed to open attachment: %w", err)
	}

	stat, err := obj.Stat()
	if err != nil {
		obj.Close()
		return nil, 0, "", fmt.Errorf("attachment %s: %w", objectName, err)
	}

	return obj, stat.Size, stat.ContentType, nil
}
