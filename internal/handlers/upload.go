package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/portfolio-backend/internal/content"
	"github.com/yungbote/portfolio-backend/internal/logger"
	"github.com/yungbote/portfolio-backend/internal/services"
)

type UploadHandler struct {
	log           *logger.Logger
	uploadService services.UploadService
}

func NewUploadHandler(log *logger.Logger, uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{
		log:           log.With("handler", "UploadHandler"),
		uploadService: uploadService,
	}
}

// POST /api/upload
// One file per call, multipart-encoded under the fixed field name "file".
func (uh *UploadHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", fmt.Errorf("multipart field %q is required", "file"))
		return
	}
	if header.Size > content.MaxImageBytes {
		RespondError(c, http.StatusBadRequest, "validation", services.ErrFileTooLarge)
		return
	}

	file, err := header.Open()
	if err != nil {
		uh.log.Error("Failed to open uploaded file", "error", err)
		RespondError(c, http.StatusInternalServerError, "internal", fmt.Errorf("failed to read upload"))
		return
	}
	defer file.Close()

	result, err := uh.uploadService.Process(c.Request.Context(), header.Filename, file)
	if err != nil {
		if errors.Is(err, services.ErrFileTooLarge) || errors.Is(err, services.ErrUnsupportedType) {
			RespondError(c, http.StatusBadRequest, "validation", err)
			return
		}
		uh.log.Error("Upload processing failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "internal", fmt.Errorf("failed to process upload"))
		return
	}
	RespondOK(c, result)
}
