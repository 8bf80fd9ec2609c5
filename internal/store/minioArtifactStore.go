package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/YasinSaleem/legal-doc-ai/internal/domain/docModel"
	"github.com/YasinSaleem/legal-doc-ai/pkg/logging"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// MinioArtifactStore keeps artifacts in an S3-compatible bucket. It is the
// backend for deployments where the API runs on more than one node and local
// disk won't do.
type MinioArtifactStore struct {
	client *minio.Client
	bucket string
	logger *logging.Logger
}

// GetMinioArtifactStore builds the bucket-backed store from MINIO_* env
// configuration. Returns nil when MINIO_ENDPOINT is unset, which means the
// deployment uses local disk.
func GetMinioArtifactStore(ctx context.Context) *MinioArtifactStore {
	logger := logging.NewLogger("MinioArtifactStore")

	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		return nil
	}
	accessKey := os.Getenv("MINIO_ACCESS_KEY")
	secretKey := os.Getenv("MINIO_SECRET_KEY")
	if accessKey == "" || secretKey == "" {
		logger.Error("MINIO_ENDPOINT set but credentials missing")
		return nil
	}
	bucket := os.Getenv("MINIO_BUCKET")
	if bucket == "" {
		bucket = "legal-doc-artifacts"
	}
	useSSL, _ := strconv.ParseBool(os.Getenv("MINIO_USE_SSL"))

	cli, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		logger.Error("Creating minio client failed", "error", err)
		return nil
	}

	initCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	exists, err := cli.BucketExists(initCtx, bucket)
	if err != nil {
		logger.Error("Checking bucket failed", "bucket", bucket, "error", err)
		return nil
	}
	if !exists {
		if err := cli.MakeBucket(initCtx, bucket, minio.MakeBucketOptions{}); err != nil {
			logger.Error("Creating bucket failed", "bucket", bucket, "error", err)
			return nil
		}
	}

	logger.Info("Artifact storage backed by bucket", "bucket", bucket)
	return &MinioArtifactStore{client: cli, bucket: bucket, logger: logger}
}

func (s *MinioArtifactStore) Save(ctx context.Context, name string, data []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, name, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: docxContentType})
	if err != nil {
		s.logger.Error("Uploading artifact failed", "name", name, "error", err)
	}
	return err
}

func (s *MinioArtifactStore) Open(ctx context.Context, name string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		var resp minio.ErrorResponse
		if errors.As(err, &resp) && resp.Code == "NoSuchKey" {
			return nil, fmt.Errorf("%w: artifact %s", docModel.ErrNotFound, name)
		}
		return nil, err
	}
	return data, nil
}

func (s *MinioArtifactStore) Sweep(ctx context.Context, cutoff time.Time) (int, error) {
	removed := 0
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{}) {
		if obj.Err != nil {
			return removed, obj.Err
		}
		if !obj.LastModified.Before(cutoff) {
			continue
		}
		if err := s.client.RemoveObject(ctx, s.bucket, obj.Key, minio.RemoveObjectOptions{}); err != nil {
			s.logger.Error("Removing expired artifact failed", "name", obj.Key, "error", err)
			continue
		}
		removed++
	}
	if removed > 0 {
		s.logger.Info("Swept expired artifacts", "removed", removed)
	}
	return removed, nil
}
