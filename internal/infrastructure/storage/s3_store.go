package storage

import (
	"bytes"
	"context"
	"log"
	"os"
	"time"

	"editora_prisma/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const defaultBucketName = "editora-prisma-documents"

// S3Store keeps rendered documents in a bucket and hands out presigned GET
// URLs so the files stay private.
type S3Store struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
}

var _ interfaces.IBlobStore = (*S3Store)(nil)

func NewS3Store(cfg aws.Config) *S3Store {
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint := os.Getenv("S3_ENDPOINT"); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	bucket := os.Getenv("STORAGE_BUCKET")
	if bucket == "" {
		bucket = defaultBucketName
	}
	log.Printf("[storage][s3] store initialized bucket=%s", bucket)
	return &S3Store{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  bucket,
	}
}

func (s *S3Store) Upload(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Printf("[storage][s3] upload failed key=%s err=%v", key, err)
		return err
	}
	log.Printf("[storage][s3] upload success key=%s size=%d", key, len(body))
	return nil
}

func (s *S3Store) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	out, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		log.Printf("[storage][s3] presign failed key=%s err=%v", key, err)
		return "", err
	}
	return out.URL, nil
}
