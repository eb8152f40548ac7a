package content

import (
	"fmt"

	"github.com/yungbote/portfolio-backend/internal/types"
)

// MaxImageBytes is the per-file upload ceiling. The editor pre-check and the
// server-side re-validation both enforce it.
const MaxImageBytes int64 = 5 << 20

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

func IsAllowedImageType(contentType string) bool {
	_, ok := allowedImageTypes[contentType]
	return ok
}

// ValidateBlock enforces the save-time rules: a block needs non-empty content
// or at least one image, and imageLinks may never outgrow images.
func ValidateBlock(b types.ContentBlock) error {
	switch b.Type {
	case types.BlockTypeTitle, types.BlockTypeContext:
	default:
		return fmt.Errorf("unknown block type %q", b.Type)
	}
	if b.Content == "" && len(b.Images) == 0 {
		return fmt.Errorf("block needs text or at least one image")
	}
	if len(b.ImageLinks) > len(b.Images) {
		return fmt.Errorf("imageLinks longer than images (%d > %d)", len(b.ImageLinks), len(b.Images))
	}
	return nil
}

func ValidateDocument(doc types.ProfileDocument) error {
	for i, b := range doc.Blocks {
		if err := ValidateBlock(b); err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
	}
	return nil
}

// LinkAt returns the link aligned with image index i, or "" when the links
// sequence is shorter or the entry is empty.
func LinkAt(links []string, i int) string {
	if i < 0 || i >= len(links) {
		return ""
	}
	return links[i]
}

// RemoveImageAt drops images[i] and imageLinks[i] together, shifting later
// entries down so the two sequences stay index-aligned.
func RemoveImageAt(images, links []string, i int) ([]string, []string, error) {
	if i < 0 || i >= len(images) {
		return images, links, fmt.Errorf("image index %d out of range (len %d)", i, len(images))
	}
	outImages := append(append([]string{}, images[:i]...), images[i+1:]...)
	outLinks := links
	if i < len(links) {
		outLinks = append(append([]string{}, links[:i]...), links[i+1:]...)
	}
	return outImages, outLinks, nil
}

// DefaultDocument is what the public page gets before the admin has saved
// anything, and what the profile read falls back to when the backend fails.
func DefaultDocument(name, avatarURL string) types.ProfileDocument {
	if name == "" {
		name = "Your Name"
	}
	return types.ProfileDocument{
		Name:      name,
		Headline:  "Welcome",
		About:     "This profile has not been filled in yet.",
		AvatarURL: avatarURL,
		Blocks: []types.ContentBlock{
			{
				Type:    types.BlockTypeTitle,
				Content: "About me",
			},
			{
				Type:    types.BlockTypeContext,
				Content: "Log in with the admin account to start editing this page.",
			},
		},
	}
}
