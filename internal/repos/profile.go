package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/portfolio-backend/internal/logger"
	"github.com/yungbote/portfolio-backend/internal/types"
)

// ErrNotFound is returned by Get when no profile row exists yet.
var ErrNotFound = gorm.ErrRecordNotFound

// ProfileRepo persists the single profile row. There is exactly one document
// in this system; Get returns it and Upsert replaces it wholesale.
type ProfileRepo interface {
	Get(ctx context.Context, tx *gorm.DB) (*types.Profile, error)
	Upsert(ctx context.Context, tx *gorm.DB, profile *types.Profile) (*types.Profile, error)
}

type profileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProfileRepo(db *gorm.DB, baseLog *logger.Logger) ProfileRepo {
	repoLog := baseLog.With("repo", "ProfileRepo")
	return &profileRepo{db: db, log: repoLog}
}

func (r *profileRepo) Get(ctx context.Context, tx *gorm.DB) (*types.Profile, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Profile
	if err := transaction.WithContext(ctx).
		Order("created_at ASC").
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *profileRepo) Upsert(ctx context.Context, tx *gorm.DB, profile *types.Profile) (*types.Profile, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var existing types.Profile
	err := transaction.WithContext(ctx).Order("created_at ASC").First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if profile.ID == uuid.Nil {
			profile.ID = uuid.New()
		}
		if err := transaction.WithContext(ctx).Create(profile).Error; err != nil {
			return nil, err
		}
		return profile, nil
	case err != nil:
		return nil, err
	default:
		existing.Document = profile.Document
		if err := transaction.WithContext(ctx).Save(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}
}
