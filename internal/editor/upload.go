package editor

import (
	"context"
	"fmt"

	"github.com/yungbote/portfolio-backend/internal/content"
	"github.com/yungbote/portfolio-backend/internal/logger"
	"github.com/yungbote/portfolio-backend/internal/types"
)

var (
	ErrNoCredential    = fmt.Errorf("no auth token present, cannot upload")
	ErrUploadInFlight  = fmt.Errorf("an upload batch is already in flight")
	ErrEmptyBatch      = fmt.Errorf("no files selected")
)

// FileInfo is one selected file as the pre-check sees it: browser-reported
// content type plus the raw bytes.
type FileInfo struct {
	Name        string
	Size        int64
	ContentType string
	Data        []byte
}

// ImageStore persists one validated file and returns a durable, directly
// renderable reference. The HTTP client in internal/client implements it
// against the upload endpoint.
type ImageStore interface {
	Upload(ctx context.Context, file FileInfo) (types.UploadResult, error)
}

// TokenSource supplies the bearer credential. An empty token aborts a batch
// before any network call.
type TokenSource interface {
	Token() string
}

type UploadFailure struct {
	Name string
	Err  error
}

type BatchResult struct {
	Accepted []types.UploadResult
	Failed   []UploadFailure
}

// ValidateBatch is the strict phase: type and size are checked for every
// file up front, and a single offender fails the whole batch with zero
// uploads performed.
func ValidateBatch(files []FileInfo) error {
	if len(files) == 0 {
		return ErrEmptyBatch
	}
	for _, f := range files {
		if !content.IsAllowedImageType(f.ContentType) {
			return fmt.Errorf("%s: unsupported type %q (allowed: jpeg, png, gif, webp)", f.Name, f.ContentType)
		}
		if f.Size > content.MaxImageBytes {
			return fmt.Errorf("%s: %d bytes exceeds the %d byte limit", f.Name, f.Size, content.MaxImageBytes)
		}
	}
	return nil
}

// Uploader runs upload batches against an ImageStore. One batch at a time;
// the trigger control stays disabled while a batch is in flight and there is
// no cancellation of a started batch short of the context.
type Uploader struct {
	log      *logger.Logger
	store    ImageStore
	tokens   TokenSource
	inFlight bool
}

func NewUploader(log *logger.Logger, store ImageStore, tokens TokenSource) *Uploader {
	if log != nil {
		log = log.With("component", "Uploader")
	}
	return &Uploader{log: log, store: store, tokens: tokens}
}

// UploadBatch validates strictly, then uploads the files one at a time,
// strictly sequentially. The per-file phase is tolerant by design: a failed
// file is reported and skipped, its siblings still upload. Do not unify the
// two policies.
func (u *Uploader) UploadBatch(ctx context.Context, files []FileInfo) (BatchResult, error) {
	if u.inFlight {
		return BatchResult{}, ErrUploadInFlight
	}
	if u.tokens == nil || u.tokens.Token() == "" {
		return BatchResult{}, ErrNoCredential
	}
	if err := ValidateBatch(files); err != nil {
		return BatchResult{}, err
	}

	u.inFlight = true
	defer func() { u.inFlight = false }()

	var result BatchResult
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		res, err := u.store.Upload(ctx, f)
		if err != nil {
			if u.log != nil {
				u.log.Warn("File upload failed, continuing with the rest of the batch", "file", f.Name, "error", err)
			}
			result.Failed = append(result.Failed, UploadFailure{Name: f.Name, Err: err})
			continue
		}
		result.Accepted = append(result.Accepted, res)
	}
	return result, nil
}

// InFlight reports whether the trigger control should be disabled.
func (u *Uploader) InFlight() bool { return u.inFlight }
