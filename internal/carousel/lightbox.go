package carousel

import "github.com/yungbote/portfolio-backend/internal/content"

// Key is a keyboard event name as delivered by the view layer. Only the three
// keys of the lightbox contract are interpreted; everything else is ignored.
type Key string

const (
	KeyEscape     Key = "Escape"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
)

// ClickTarget distinguishes where inside the open overlay a pointer event
// landed. Only the dimmed backdrop closes; the image and every control
// swallow their events.
type ClickTarget int

const (
	TargetBackdrop ClickTarget = iota
	TargetImage
	TargetControl
)

// Lightbox is the full-screen overlay over an image sequence. It seeds its
// index from the triggering carousel on every open and navigates
// independently afterwards; the two are never re-synchronized.
//
// The overlay renders at a root-level portal surface so it escapes any
// clipped or transformed ancestor of the triggering carousel; mounted tracks
// that portal attachment. Page scroll is suspended while open and restored
// unconditionally on every close path, including unmount.
type Lightbox struct {
	open         bool
	current      int
	images       []string
	links        []string
	mounted      bool
	scrollLocked bool
}

func NewLightbox() *Lightbox {
	return &Lightbox{}
}

// Open shows the overlay over the given sequence, starting at initial (the
// triggering carousel's active index). Re-seeds on every call.
func (l *Lightbox) Open(images, links []string, initial int) {
	if len(images) == 0 {
		return
	}
	if initial < 0 || initial >= len(images) {
		initial = 0
	}
	l.images = append([]string{}, images...)
	l.links = append([]string{}, links...)
	l.current = initial
	l.open = true
	l.mounted = true
	l.scrollLocked = true
}

// Close hides the overlay. Scroll is restored here no matter how the close
// was reached; the portal mount survives for the next open.
func (l *Lightbox) Close() {
	l.open = false
	l.scrollLocked = false
}

// Unmount tears the portal down (component removal). Covers the abnormal
// close path: scroll must never stay suspended afterwards.
func (l *Lightbox) Unmount() {
	l.open = false
	l.mounted = false
	l.scrollLocked = false
}

// HandleKey implements the keyboard contract. The document-level listener is
// only registered while open, so a closed lightbox ignores every key.
func (l *Lightbox) HandleKey(k Key) {
	if !l.open {
		return
	}
	switch k {
	case KeyEscape:
		l.Close()
	case KeyArrowLeft:
		l.Previous()
	case KeyArrowRight:
		l.Next()
	}
}

// HandleClick implements the pointer contract.
func (l *Lightbox) HandleClick(target ClickTarget) {
	if !l.open {
		return
	}
	if target == TargetBackdrop {
		l.Close()
	}
}

// Next advances circularly; only meaningful with more than one image.
func (l *Lightbox) Next() {
	if !l.open || len(l.images) <= 1 {
		return
	}
	l.current = (l.current + 1) % len(l.images)
}

// Previous steps back circularly; only meaningful with more than one image.
func (l *Lightbox) Previous() {
	if !l.open || len(l.images) <= 1 {
		return
	}
	l.current = (l.current - 1 + len(l.images)) % len(l.images)
}

// SelectThumbnail jumps directly to index i (thumbnail strip navigation).
func (l *Lightbox) SelectThumbnail(i int) {
	if !l.open || i < 0 || i >= len(l.images) {
		return
	}
	l.current = i
}

// CurrentLink returns the link aligned with the current image, if any. A
// non-empty link means the "open link" affordance renders; following it opens
// a new browsing context and never navigates in-app.
func (l *Lightbox) CurrentLink() (string, bool) {
	link := content.LinkAt(l.links, l.current)
	return link, link != ""
}

// Thumbnails returns the full sequence for the strip. The strip renders only
// when more than one image exists, but always lists everything: counts are
// author-controlled and small, so no virtualization.
func (l *Lightbox) Thumbnails() []string {
	if len(l.images) <= 1 {
		return nil
	}
	return append([]string{}, l.images...)
}

func (l *Lightbox) IsOpen() bool           { return l.open }
func (l *Lightbox) CurrentIndex() int      { return l.current }
func (l *Lightbox) MountedForPortal() bool { return l.mounted }
func (l *Lightbox) ScrollLocked() bool     { return l.scrollLocked }
