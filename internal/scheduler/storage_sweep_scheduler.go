package scheduler

import (
	"context"
	"time"

	"github.com/misircafe/misircafe-backend/internal/app/repository"
	"github.com/misircafe/misircafe-backend/internal/storage"
	"github.com/misircafe/misircafe-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

const sweepTimeout = 5 * time.Minute

// StorageSweepScheduler runs a nightly audit of the image bucket: it
// compares total consumption against the configured quota and reports
// blobs no database row references anymore. It only reports; nothing
// is deleted automatically.
type StorageSweepScheduler struct {
	cron            *cron.Cron
	store           *storage.S3Storage
	categoryRepo    repository.CategoryRepository
	specialMenuRepo repository.SpecialMenuRepository
	eventRepo       repository.EventRepository
	schedule        string
	quotaMB         int64
}

func NewStorageSweepScheduler(
	store *storage.S3Storage,
	categoryRepo repository.CategoryRepository,
	specialMenuRepo repository.SpecialMenuRepository,
	eventRepo repository.EventRepository,
	schedule string,
	quotaMB int64,
) *StorageSweepScheduler {
	return &StorageSweepScheduler{
		cron:            cron.New(),
		store:           store,
		categoryRepo:    categoryRepo,
		specialMenuRepo: specialMenuRepo,
		eventRepo:       eventRepo,
		schedule:        schedule,
		quotaMB:         quotaMB,
	}
}

func (s *StorageSweepScheduler) Start() error {
	_, err := s.cron.AddFunc(s.schedule, s.Sweep)
	if err != nil {
		logger.Error("Failed to add cron job for storage sweep", err)
		return err
	}

	s.cron.Start()
	logger.Info("Storage sweep scheduler started", map[string]interface{}{
		"schedule": s.schedule,
	})
	return nil
}

func (s *StorageSweepScheduler) Stop() {
	logger.Info("Stopping storage sweep scheduler...", nil)
	s.cron.Stop()
	logger.Info("Storage sweep scheduler stopped", nil)
}

// Sweep runs one audit pass. Exposed so an operator endpoint or test
// can trigger it outside the cron schedule.
func (s *StorageSweepScheduler) Sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	logger.Info("Starting storage sweep", nil)

	objects, err := s.store.ListObjects(ctx)
	if err != nil {
		logger.Error("Storage sweep failed to list bucket", err)
		return
	}

	var total int64
	for _, obj := range objects {
		total += obj.Size
	}

	usedMB := float64(total) / (1024 * 1024)
	if s.quotaMB > 0 && usedMB > float64(s.quotaMB) {
		logger.Warn("Image bucket is over quota", map[string]interface{}{
			"used_mb":  usedMB,
			"quota_mb": s.quotaMB,
		})
	}

	referenced, err := s.referencedURLs()
	if err != nil {
		logger.Error("Storage sweep failed to collect image references", err)
		return
	}

	orphans := 0
	for _, obj := range objects {
		if !referenced[s.store.PublicURL(obj.Key)] {
			orphans++
			logger.Warn("Unreferenced object in image bucket", map[string]interface{}{
				"key":  obj.Key,
				"size": obj.Size,
			})
		}
	}

	logger.Info("Storage sweep completed", map[string]interface{}{
		"objects": len(objects),
		"used_mb": usedMB,
		"orphans": orphans,
	})
}

func (s *StorageSweepScheduler) referencedURLs() (map[string]bool, error) {
	referenced := make(map[string]bool)

	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, err
	}
	for _, c := range categories {
		referenced[c.ImageURL] = true
	}

	specials, err := s.specialMenuRepo.FindAll()
	if err != nil {
		return nil, err
	}
	for _, m := range specials {
		referenced[m.ImageURL] = true
	}

	events, err := s.eventRepo.FindAll()
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		referenced[e.ImageURL] = true
	}

	return referenced, nil
}
