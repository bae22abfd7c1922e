package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/misircafe/misircafe-backend/pkg/logger"
)

var (
	ErrUploadFailed       = errors.New("image upload failed")
	ErrImageCleanupFailed = errors.New("image cleanup failed")
)

// ImageUpload is a locally selected file headed for the storage
// gateway. Size and ContentType are validated before any upload.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// ImageStore is the slice of the storage gateway the admin workflows
// consume.
type ImageStore interface {
	Upload(ctx context.Context, file io.Reader, filename, contentType, typePrefix string) (string, error)
	Delete(ctx context.Context, publicURL string) bool
}

// ContentCache invalidates/serves the public content responses.
// Implemented by pkg/redis.Cache; tests use an in-memory fake.
type ContentCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// Cache keys for the public content reads.
const (
	cacheKeyMenu         = "content:menu"
	cacheKeySpecialMenus = "content:special_menus"
	cacheKeyEvents       = "content:events"

	contentCacheTTL = 5 * time.Minute
)

// resolveImageURL uploads the selected file when one is present and
// returns the effective image URL: a fresh upload wins over a manually
// typed URL.
func resolveImageURL(ctx context.Context, images ImageStore, image *ImageUpload, manualURL, typePrefix string) (string, error) {
	if image == nil {
		return manualURL, nil
	}

	url, err := images.Upload(ctx, image.Reader, image.Filename, image.ContentType, typePrefix)
	if err != nil {
		logger.Error("Image upload failed", err, map[string]interface{}{
			"filename": image.Filename,
			"prefix":   typePrefix,
		})
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	return url, nil
}

// invalidateContent drops cached public responses after a mutation.
// Cache trouble is logged, never surfaced: the next read falls through
// to the database.
func invalidateContent(ctx context.Context, cache ContentCache, keys ...string) {
	if cache == nil {
		return
	}
	if err := cache.Del(ctx, keys...); err != nil {
		logger.Warn("Failed to invalidate content cache", map[string]interface{}{
			"keys":  keys,
			"error": err.Error(),
		})
	}
}

// cleanupImage removes the blob behind imageURL after its row is gone.
// An empty URL counts as a failed cleanup: every image-bearing entity
// is supposed to own exactly one blob, so a blank reference means the
// record and the bucket already disagree.
func cleanupImage(ctx context.Context, images ImageStore, imageURL, entity, id string) error {
	if imageURL == "" {
		logger.Warn("Record deleted but it had no image URL to clean up", map[string]interface{}{
			"entity": entity,
			"id":     id,
		})
		return fmt.Errorf("%w: %s %s has no image url", ErrImageCleanupFailed, entity, id)
	}

	if !images.Delete(ctx, imageURL) {
		logger.Warn("Record deleted but its image could not be removed from storage", map[string]interface{}{
			"entity":    entity,
			"id":        id,
			"image_url": imageURL,
		})
		return fmt.Errorf("%w: could not remove %s", ErrImageCleanupFailed, imageURL)
	}
	return nil
}
