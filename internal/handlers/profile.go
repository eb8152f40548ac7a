package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/portfolio-backend/internal/logger"
	"github.com/yungbote/portfolio-backend/internal/services"
	"github.com/yungbote/portfolio-backend/internal/types"
)

type ProfileHandler struct {
	log            *logger.Logger
	profileService services.ProfileService
}

func NewProfileHandler(log *logger.Logger, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		log:            log.With("handler", "ProfileHandler"),
		profileService: profileService,
	}
}

// GET /api/profile
// Public. Never fails: serves the default document when nothing is stored or
// the backend is unreachable.
func (ph *ProfileHandler) Get(c *gin.Context) {
	doc := ph.profileService.GetDocument(c.Request.Context())
	RespondOK(c, doc)
}

// POST /api/profile
// Replaces the stored document wholesale. No patch semantics; last writer
// wins.
func (ph *ProfileHandler) Replace(c *gin.Context) {
	var doc types.ProfileDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", fmt.Errorf("invalid request body"))
		return
	}
	if err := ph.profileService.ReplaceDocument(c.Request.Context(), doc); err != nil {
		if errors.Is(err, services.ErrInvalidDocument) {
			RespondError(c, http.StatusBadRequest, "validation", err)
			return
		}
		ph.log.Error("Profile replace failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "internal", fmt.Errorf("failed to store profile"))
		return
	}
	RespondOK(c, gin.H{"success": true})
}
