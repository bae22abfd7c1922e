package service

import (
	"context"

	"github.com/misircafe/misircafe-backend/pkg/logger"
)

// SizeReader reports the total bytes held in the image bucket.
// Implemented by the S3 storage gateway.
type SizeReader interface {
	TotalSize(ctx context.Context) (int64, error)
}

// StorageUsage is the bucket consumption report shown on the admin
// dashboard.
type StorageUsage struct {
	UsedBytes   int64   `json:"used_bytes"`
	UsedMB      float64 `json:"used_mb"`
	QuotaMB     int64   `json:"quota_mb"`
	UsedPercent float64 `json:"used_percent"`
}

type StorageService interface {
	Usage(ctx context.Context) (*StorageUsage, error)
}

type storageService struct {
	sizes   SizeReader
	quotaMB int64
}

func NewStorageService(sizes SizeReader, quotaMB int64) StorageService {
	return &storageService{sizes: sizes, quotaMB: quotaMB}
}

func (s *storageService) Usage(ctx context.Context) (*StorageUsage, error) {
	used, err := s.sizes.TotalSize(ctx)
	if err != nil {
		logger.Error("Failed to compute storage usage", err, nil)
		return nil, err
	}

	usedMB := float64(used) / (1024 * 1024)
	usage := &StorageUsage{
		UsedBytes: used,
		UsedMB:    usedMB,
		QuotaMB:   s.quotaMB,
	}
	if s.quotaMB > 0 {
		usage.UsedPercent = usedMB / float64(s.quotaMB) * 100
	}
	return usage, nil
}
