package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	appconfig "github.com/misircafe/misircafe-backend/config"
	"github.com/misircafe/misircafe-backend/pkg/logger"
)

// Image upload limits, enforced by callers before any network call.
const (
	MaxImageSize = 5 * 1024 * 1024 // 5MB

	listPageSize = 1000
)

// AllowedImageTypes are the MIME types accepted for uploads.
var AllowedImageTypes = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/gif",
	"image/webp",
}

// Type prefixes partitioning the shared bucket.
const (
	PrefixCategory    = "category"
	PrefixSpecialMenu = "special_menu"
	PrefixEvent       = "event"
)

// s3API is the slice of the S3 client the gateway uses. Tests swap in
// a fake.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// ObjectInfo is one leaf object found while walking the bucket.
type ObjectInfo struct {
	Key  string
	Size int64
}

// S3Storage wraps the shared image bucket: type-prefixed uploads,
// delete-by-public-URL and recursive size accounting.
type S3Storage struct {
	client  s3API
	bucket  string
	region  string
	baseURL string

	now func() time.Time
}

func NewS3Storage(cfg appconfig.S3Config) *S3Storage {
	var awsCfg aws.Config
	var err error

	// If credentials are provided, use them. Otherwise, use default credential chain
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		awsCfg = aws.Config{
			Region: cfg.Region,
			Credentials: credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretAccessKey,
				"",
			),
		}
	} else {
		awsCfg, err = awsconfig.LoadDefaultConfig(context.TODO(),
			awsconfig.WithRegion(cfg.Region),
		)
		if err != nil {
			awsCfg = aws.Config{
				Region: cfg.Region,
			}
		}
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		// Custom endpoint supports S3-compatible stores (MinIO, R2)
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Storage{
		client:  client,
		bucket:  cfg.Bucket,
		region:  cfg.Region,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		now:     time.Now,
	}
}

// Upload stores the file under {typePrefix}/{unix-ms}{ext} and returns
// its public URL. Size and MIME validation is the caller's job, done
// locally before this call.
func (s *S3Storage) Upload(ctx context.Context, file io.Reader, filename, contentType, typePrefix string) (string, error) {
	ext := filepath.Ext(filename)
	key := fmt.Sprintf("%s/%d%s", typePrefix, s.now().UnixMilli(), ext)

	logger.Debug("Uploading object to storage", map[string]interface{}{
		"bucket":       s.bucket,
		"key":          key,
		"content_type": contentType,
	})

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		logger.Error("Failed to upload object to storage", err, map[string]interface{}{
			"bucket": s.bucket,
			"key":    key,
		})
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	publicURL := s.PublicURL(key)
	logger.Info("Object uploaded to storage", map[string]interface{}{
		"key": key,
		"url": publicURL,
	})
	return publicURL, nil
}

// PublicURL resolves the publicly reachable URL for a bucket key.
func (s *S3Storage) PublicURL(key string) string {
	if s.baseURL != "" {
		return fmt.Sprintf("%s/%s", s.baseURL, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

// Delete removes the object behind a public URL. It reports false on
// any parse or store failure instead of returning an error: deletion
// failures are warnings for the caller, never workflow stoppers.
func (s *S3Storage) Delete(ctx context.Context, publicURL string) bool {
	key := s.keyFromURL(publicURL)
	if key == "" {
		logger.Warn("Could not resolve storage key from URL", map[string]interface{}{
			"url": publicURL,
		})
		return false
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logger.Warn("Failed to delete object from storage", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return false
	}

	logger.Info("Object deleted from storage", map[string]interface{}{
		"key": key,
	})
	return true
}

// keyFromURL extracts the bucket-relative key from a public URL.
// Returns "" when the URL does not point into this bucket.
func (s *S3Storage) keyFromURL(publicURL string) string {
	if publicURL == "" {
		return ""
	}

	if s.baseURL != "" && strings.HasPrefix(publicURL, s.baseURL+"/") {
		key, err := url.PathUnescape(strings.TrimPrefix(publicURL, s.baseURL+"/"))
		if err != nil {
			return ""
		}
		return key
	}

	parsed, err := url.Parse(publicURL)
	if err != nil || parsed.Host == "" {
		return ""
	}

	path := strings.TrimPrefix(parsed.Path, "/")
	// Path-style URLs carry the bucket as the first segment
	if !strings.HasPrefix(parsed.Host, s.bucket+".") {
		if !strings.HasPrefix(path, s.bucket+"/") {
			return ""
		}
		path = strings.TrimPrefix(path, s.bucket+"/")
	}

	key, err := url.PathUnescape(path)
	if err != nil {
		return ""
	}
	return key
}

// ListObjects walks the whole bucket recursively: every prefix is
// listed page by page (1000 keys per page) and sub-prefixes are
// descended into. In practice the tree is two levels deep, type prefix
// then filename, but the walk does not rely on that.
func (s *S3Storage) ListObjects(ctx context.Context) ([]ObjectInfo, error) {
	return s.listPrefix(ctx, "")
}

func (s *S3Storage) listPrefix(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	var objects []ObjectInfo
	var continuationToken *string

	for {
		out, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(s.bucket),
			Prefix:            aws.String(prefix),
			Delimiter:         aws.String("/"),
			MaxKeys:           aws.Int32(listPageSize),
			ContinuationToken: continuationToken,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list prefix %q: %w", prefix, err)
		}

		for _, obj := range out.Contents {
			if obj.Key == nil {
				continue
			}
			objects = append(objects, ObjectInfo{
				Key:  *obj.Key,
				Size: aws.ToInt64(obj.Size),
			})
		}

		for _, sub := range out.CommonPrefixes {
			if sub.Prefix == nil {
				continue
			}
			nested, err := s.listPrefix(ctx, *sub.Prefix)
			if err != nil {
				return nil, err
			}
			objects = append(objects, nested...)
		}

		if !aws.ToBool(out.IsTruncated) {
			break
		}
		continuationToken = out.NextContinuationToken
	}

	return objects, nil
}

// TotalSize sums the byte size of every leaf object in the bucket.
// This is the most expensive read in the system and is meant to run at
// most once per admin-panel view load.
func (s *S3Storage) TotalSize(ctx context.Context) (int64, error) {
	objects, err := s.ListObjects(ctx)
	if err != nil {
		logger.Error("Failed to compute bucket size", err, map[string]interface{}{
			"bucket": s.bucket,
		})
		return 0, err
	}

	var total int64
	for _, obj := range objects {
		total += obj.Size
	}

	logger.Debug("Bucket size computed", map[string]interface{}{
		"bucket":      s.bucket,
		"objects":     len(objects),
		"total_bytes": total,
	})
	return total, nil
}

// ValidateFileSize validates the file size
func (s *S3Storage) ValidateFileSize(size int64, maxSize int64) error {
	if size > maxSize {
		return fmt.Errorf("file size exceeds maximum allowed size of %d bytes", maxSize)
	}
	return nil
}

// ValidateContentType validates the content type
func (s *S3Storage) ValidateContentType(contentType string, allowedTypes []string) error {
	for _, allowed := range allowedTypes {
		if contentType == allowed {
			return nil
		}
	}
	return fmt.Errorf("content type %s is not allowed", contentType)
}
