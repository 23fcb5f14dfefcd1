package services

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ProductImageBucket holds every catalog image, keyed by product slug.
const ProductImageBucket = "product-images"

type StorageService interface {
	UploadImage(ctx context.Context, objectName string, reader io.Reader, objectSize int64) error
	GetPresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
	DeleteImage(ctx context.Context, objectName string) error
	EnsureBucket(ctx context.Context) error
}

type minioStorage struct {
	client *minio.Client
}

func NewMinioStorage(endpoint, accessKey, secretKey string, useSSL bool) (StorageService, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}
	return &minioStorage{client: client}, nil
}

func (m *minioStorage) UploadImage(ctx context.Context, objectName string, reader io.Reader, objectSize int64) error {
	contentType := mime.TypeByExtension(filepath.Ext(objectName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := m.client.PutObject(ctx, ProductImageBucket, objectName, reader, objectSize, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (m *minioStorage) GetPresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	url, err := m.client.PresignedGetObject(ctx, ProductImageBucket, objectName, expiry, nil)
	if err != nil {
		return "", err
	}
	return url.String(), nil
}

func (m *minioStorage) DeleteImage(ctx context.Context, objectName string) error {
	return m.client.RemoveObject(ctx, ProductImageBucket, objectName, minio.RemoveObjectOptions{})
}

func (m *minioStorage) EnsureBucket(ctx context.Context) error {
	found, err := m.client.BucketExists(ctx, ProductImageBucket)
	if err != nil {
		return fmt.Errorf("checking bucket %s: %w", ProductImageBucket, err)
	}
	if !found {
		return m.client.MakeBucket(ctx, ProductImageBucket, minio.MakeBucketOptions{})
	}
	return nil
}
