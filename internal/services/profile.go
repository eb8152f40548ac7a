package services

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/portfolio-backend/internal/content"
	"github.com/yungbote/portfolio-backend/internal/logger"
	"github.com/yungbote/portfolio-backend/internal/repos"
	"github.com/yungbote/portfolio-backend/internal/types"
)

var ErrInvalidDocument = fmt.Errorf("invalid profile document")

// ProfileService reads and replaces the stored profile document.
//
// GetDocument never fails: on first access it creates and returns the
// default document, and on any backend failure it falls back to the default
// rather than propagating the error. The public page stays available at the
// cost of masking transient failures.
type ProfileService interface {
	GetDocument(ctx context.Context) types.ProfileDocument
	ReplaceDocument(ctx context.Context, doc types.ProfileDocument) error
}

type profileService struct {
	db          *gorm.DB
	log         *logger.Logger
	profileRepo repos.ProfileRepo
	defaultDoc  types.ProfileDocument
}

func NewProfileService(db *gorm.DB, log *logger.Logger, profileRepo repos.ProfileRepo, defaultDoc types.ProfileDocument) ProfileService {
	serviceLog := log.With("service", "ProfileService")
	return &profileService{
		db:          db,
		log:         serviceLog,
		profileRepo: profileRepo,
		defaultDoc:  defaultDoc,
	}
}

func (ps *profileService) GetDocument(ctx context.Context) types.ProfileDocument {
	row, err := ps.profileRepo.Get(ctx, nil)
	if err == repos.ErrNotFound {
		// First access: persist the default so later writes replace a real row.
		if _, cErr := ps.profileRepo.Upsert(ctx, nil, ps.defaultRow()); cErr != nil {
			ps.log.Warn("Failed to seed default profile document", "error", cErr)
		}
		return ps.defaultDoc
	}
	if err != nil {
		ps.log.Warn("Profile read failed, serving default document", "error", err)
		return ps.defaultDoc
	}

	var doc types.ProfileDocument
	if err := json.Unmarshal(row.Document, &doc); err != nil {
		ps.log.Warn("Stored profile document is unreadable, serving default", "error", err)
		return ps.defaultDoc
	}
	return doc
}

func (ps *profileService) ReplaceDocument(ctx context.Context, doc types.ProfileDocument) error {
	if err := content.ValidateDocument(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("Failed to encode profile document: %w", err)
	}
	return ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := ps.profileRepo.Upsert(ctx, tx, &types.Profile{Document: raw}); err != nil {
			return fmt.Errorf("Failed to store profile document: %w", err)
		}
		return nil
	})
}

func (ps *profileService) defaultRow() *types.Profile {
	raw, err := json.Marshal(ps.defaultDoc)
	if err != nil {
		raw = []byte(`{"name":"","blocks":[]}`)
	}
	return &types.Profile{Document: raw}
}
