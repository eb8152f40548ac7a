package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/h2non/filetype"

	"github.com/yungbote/portfolio-backend/internal/content"
	"github.com/yungbote/portfolio-backend/internal/logger"
	"github.com/yungbote/portfolio-backend/internal/types"
)

var (
	ErrFileTooLarge    = fmt.Errorf("file exceeds the %d byte limit", content.MaxImageBytes)
	ErrUnsupportedType = fmt.Errorf("unsupported file type (allowed: jpeg, png, gif, webp)")
)

// UploadService re-validates an uploaded file server-side and turns it into
// a durable inline reference. The client pre-check is never trusted as the
// sole gate: the type is sniffed from the bytes, not the declared header,
// and the size cap is enforced again here.
//
// There is no object storage in this system; the returned reference is a
// self-describing data URI that gets embedded into the profile document.
type UploadService interface {
	Process(ctx context.Context, name string, r io.Reader) (*types.UploadResult, error)
}

type uploadService struct {
	log *logger.Logger
}

func NewUploadService(log *logger.Logger) UploadService {
	serviceLog := log.With("service", "UploadService")
	return &uploadService{log: serviceLog}
}

func (us *uploadService) Process(ctx context.Context, name string, r io.Reader) (*types.UploadResult, error) {
	data, err := io.ReadAll(io.LimitReader(r, content.MaxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("Failed to read upload: %w", err)
	}
	if int64(len(data)) > content.MaxImageBytes {
		return nil, ErrFileTooLarge
	}
	if len(data) == 0 {
		return nil, ErrUnsupportedType
	}

	kind, err := filetype.Match(data)
	if err != nil {
		return nil, fmt.Errorf("Failed to sniff file type: %w", err)
	}
	if kind == filetype.Unknown || !content.IsAllowedImageType(kind.MIME.Value) {
		us.log.Debug("Rejected upload by sniffed type", "file", name, "sniffed", kind.MIME.Value)
		return nil, ErrUnsupportedType
	}

	uri := fmt.Sprintf("data:%s;base64,%s", kind.MIME.Value, base64.StdEncoding.EncodeToString(data))
	return &types.UploadResult{
		URL:  uri,
		Name: name,
		Size: int64(len(data)),
	}, nil
}
