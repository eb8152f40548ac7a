package types

type BlockType string

const (
	BlockTypeTitle   BlockType = "title"
	BlockTypeContext BlockType = "context"
)

// ContentBlock is one unit of profile content: a title or a body section,
// optionally carrying a duration label and an ordered image sequence with
// index-aligned per-image links. ImageLinks may be shorter than Images; a
// missing entry means the image has no link.
type ContentBlock struct {
	Type              BlockType `json:"type"`
	Content           string    `json:"content,omitempty"`
	Duration          string    `json:"duration,omitempty"`
	Images            []string  `json:"images,omitempty"`
	ImageLinks        []string  `json:"imageLinks,omitempty"`
	EnableGlassEffect bool      `json:"enableGlassEffect,omitempty"`
}

// ProfileDocument is the whole stored profile. It is persisted as a single
// jsonb value and replaced wholesale on every save (last writer wins).
type ProfileDocument struct {
	Name      string         `json:"name"`
	Headline  string         `json:"headline,omitempty"`
	About     string         `json:"about,omitempty"`
	AvatarURL string         `json:"avatar_url,omitempty"`
	Blocks    []ContentBlock `json:"blocks"`
}

// UploadResult is the upload endpoint's success body: a directly renderable
// image reference (a data URI here) plus the echoed file metadata.
type UploadResult struct {
	URL  string `json:"url"`
	Name string `json:"name"`
	Size int64  `json:"size"`
}
