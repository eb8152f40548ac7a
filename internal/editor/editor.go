// Package editor holds the content-block editor state machine and the upload
// batch pipeline that feeds it. Like the carousel package, the state is
// explicit and the transitions are pure.
package editor

import (
	"fmt"

	"github.com/yungbote/portfolio-backend/internal/content"
	"github.com/yungbote/portfolio-backend/internal/types"
)

var (
	ErrEmptyBlock         = fmt.Errorf("block needs text or at least one image")
	ErrDeleteNotConfirmed = fmt.Errorf("block deletion requires explicit confirmation")
	ErrNotEditing         = fmt.Errorf("only an existing block can be deleted")
)

// Editor accumulates one content block's worth of in-progress input. It owns
// the images/links sequences exclusively; every mutation goes through its
// methods, serialized by the single UI event queue.
//
// In edit mode the source block is never touched: the editor works on a copy
// and the caller swaps in the result of Save.
type Editor struct {
	blockType     types.BlockType
	text          string
	duration      string
	glass         bool
	imagesEnabled bool
	images        []string
	links         []string
	preview       int
	original      *types.ContentBlock
}

// New starts a blank editor for creating a block.
func New(blockType types.BlockType) *Editor {
	return &Editor{blockType: blockType}
}

// Edit starts an editor over an existing block. Slices are deep-copied so
// cancel paths cannot leak mutations into the source.
func Edit(block types.ContentBlock) *Editor {
	src := block
	e := &Editor{original: &src}
	e.loadFromOriginal()
	return e
}

func (e *Editor) loadFromOriginal() {
	b := e.original
	e.blockType = b.Type
	e.text = b.Content
	e.duration = b.Duration
	e.glass = b.EnableGlassEffect
	e.images = append([]string{}, b.Images...)
	e.links = append([]string{}, b.ImageLinks...)
	// links stay index-aligned internally: pad to images length
	for len(e.links) < len(e.images) {
		e.links = append(e.links, "")
	}
	e.imagesEnabled = len(e.images) > 0
	e.preview = 0
}

func (e *Editor) SetBlockType(t types.BlockType) { e.blockType = t }
func (e *Editor) SetText(s string)               { e.text = s }
func (e *Editor) SetDuration(s string)           { e.duration = s }
func (e *Editor) SetGlassEffect(on bool)         { e.glass = on }

// EnableImages toggles the image section. Disabling does NOT clear the
// underlying sequences; it only suppresses them from the saved block. The
// images survive re-enabling within the same session. (Whether the toggle
// should instead discard outright is an open product question; the retention
// behavior is kept as shipped.)
func (e *Editor) EnableImages(on bool) { e.imagesEnabled = on }

// AppendImages adds accepted upload references to the end of the sequence,
// with an equal number of empty link placeholders to keep alignment.
func (e *Editor) AppendImages(refs ...string) {
	e.images = append(e.images, refs...)
	for range refs {
		e.links = append(e.links, "")
	}
}

// RemoveImage drops the image and its link at i. If the preview pointed at
// the removed last index it clamps to the new end.
func (e *Editor) RemoveImage(i int) error {
	images, links, err := content.RemoveImageAt(e.images, e.links, i)
	if err != nil {
		return err
	}
	e.images, e.links = images, links
	if e.preview >= len(e.images) {
		e.preview = len(e.images) - 1
		if e.preview < 0 {
			e.preview = 0
		}
	}
	return nil
}

// SelectPreview moves the editor's preview carousel; ignored out of range.
func (e *Editor) SelectPreview(i int) {
	if i < 0 || i >= len(e.images) {
		return
	}
	e.preview = i
}

// SetLink edits only the link aligned with the current preview index.
func (e *Editor) SetLink(link string) {
	if e.preview < 0 || e.preview >= len(e.links) {
		return
	}
	e.links[e.preview] = link
}

func (e *Editor) PreviewIndex() int    { return e.preview }
func (e *Editor) ImagesEnabled() bool  { return e.imagesEnabled }
func (e *Editor) Images() []string     { return append([]string{}, e.images...) }
func (e *Editor) Links() []string      { return append([]string{}, e.links...) }
func (e *Editor) Text() string         { return e.text }
func (e *Editor) IsEditing() bool      { return e.original != nil }

// Save validates and emits the finalized block. With the image section
// toggled off the block is projected without images; the editor's own
// sequences are left intact either way.
func (e *Editor) Save() (types.ContentBlock, error) {
	block := types.ContentBlock{
		Type:              e.blockType,
		Content:           e.text,
		Duration:          e.duration,
		EnableGlassEffect: e.glass,
	}
	if e.imagesEnabled && len(e.images) > 0 {
		block.Images = append([]string{}, e.images...)
		block.ImageLinks = append([]string{}, e.links[:len(e.images)]...)
	}
	if block.Content == "" && len(block.Images) == 0 {
		return types.ContentBlock{}, ErrEmptyBlock
	}
	if err := content.ValidateBlock(block); err != nil {
		return types.ContentBlock{}, err
	}
	return block, nil
}

// Discard throws the in-progress state away. Creating: back to blank
// defaults. Editing: back to the untouched original.
func (e *Editor) Discard() {
	if e.original != nil {
		e.loadFromOriginal()
		return
	}
	blockType := e.blockType
	*e = Editor{blockType: blockType}
}

// Delete gates block deletion behind explicit confirmation. The caller
// invokes its delete callback only on a nil return.
func (e *Editor) Delete(confirmed bool) error {
	if e.original == nil {
		return ErrNotEditing
	}
	if !confirmed {
		return ErrDeleteNotConfirmed
	}
	return nil
}
