package artifacts

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"

	"github.com/minio/minio-go/v7"

	"ahlan_office/internal/ports"
)

// S3Client is the slice of the minio client this store needs.
type S3Client interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (*minio.Object, error)
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
}

// Store keeps generated contract and receipt files in one S3 bucket.
type Store struct {
	Client S3Client
	Bucket string
}

func NewStore(cli S3Client, bucket string) *Store {
	return &Store{Client: cli, Bucket: bucket}
}

var _ ports.ArtifactStore = (*Store)(nil)

func (s *Store) Put(ctx context.Context, key string, blob []byte, contentType string) (ports.ArtifactMeta, error) {
	log.Printf("[ARTIFACT][PUT] bucket=%q key=%q size=%d", s.Bucket, key, len(blob))

	info, err := s.Client.PutObject(ctx, s.Bucket, key, bytes.NewReader(blob), int64(len(blob)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		log.Printf("[ARTIFACT][PUT][ERR] %v", err)
		return ports.ArtifactMeta{}, fmt.Errorf("artifact put: %w", err)
	}

	return ports.ArtifactMeta{
		Bucket:      s.Bucket,
		Key:         key,
		Size:        info.Size,
		ContentType: contentType,
	}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, string, error) {
	st, err := s.Client.StatObject(ctx, s.Bucket, key, minio.StatObjectOptions{})
	if err != nil {
		log.Printf("[ARTIFACT][GET][ERR] stat: %v", err)
		return nil, "", fmt.Errorf("artifact stat: %w", err)
	}

	obj, err := s.Client.GetObject(ctx, s.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		log.Printf("[ARTIFACT][GET][ERR] get: %v", err)
		return nil, "", fmt.Errorf("artifact get: %w", err)
	}
	defer obj.Close()

	blob, err := io.ReadAll(obj)
	if err != nil {
		return nil, "", fmt.Errorf("artifact read: %w", err)
	}
	return blob, st.ContentType, nil
}
