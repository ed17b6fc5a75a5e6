package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/auntiehomie/castkeepr/internal/models"

	"gorm.io/gorm"
)

// ErrInvalidFID means a personalized query was attempted without a usable
// requester identity. Callers must never query unscoped on behalf of an
// anonymous caller.
var ErrInvalidFID = errors.New("missing or invalid fid")

// SavedCastStore defines persistence operations for saved casts. Handlers
// depend on this interface so tests can substitute an in-memory fake.
type SavedCastStore interface {
	// Insert persists one saved cast. Inserts are unconditional: saving the
	// same hash twice produces two rows.
	Insert(ctx context.Context, cast *models.SavedCast) error

	// ListSaved returns the casts saved by fid, newest first by the original
	// cast timestamp. limit <= 0 returns the full list; offset is 0-based.
	ListSaved(ctx context.Context, fid int64, limit, offset int) ([]models.SavedCast, error)

	// CountSaved returns how many casts fid has saved.
	CountSaved(ctx context.Context, fid int64) (int64, error)
}

// SavedCastService is the GORM-backed store. Every call re-queries the
// database; totals are cheap point/range queries so nothing is cached.
type SavedCastService struct {
	db *gorm.DB
}

func NewSavedCastService(database *gorm.DB) *SavedCastService {
	return &SavedCastService{db: database}
}

func (s *SavedCastService) Insert(ctx context.Context, cast *models.SavedCast) error {
	if err := s.db.WithContext(ctx).Create(cast).Error; err != nil {
		return fmt.Errorf("insert saved cast: %w", err)
	}
	return nil
}

func (s *SavedCastService) ListSaved(ctx context.Context, fid int64, limit, offset int) ([]models.SavedCast, error) {
	if fid <= 0 {
		return nil, ErrInvalidFID
	}

	query := s.db.WithContext(ctx).
		Where("saved_by_fid = ?", fid).
		Order("timestamp DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var casts []models.SavedCast
	if err := query.Find(&casts).Error; err != nil {
		return nil, fmt.Errorf("list saved casts: %w", err)
	}
	return casts, nil
}

func (s *SavedCastService) CountSaved(ctx context.Context, fid int64) (int64, error) {
	if fid <= 0 {
		return 0, ErrInvalidFID
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.SavedCast{}).
		Where("saved_by_fid = ?", fid).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count saved casts: %w", err)
	}
	return count, nil
}
