package carousel

import "testing"

func fiveImages() []string {
	return []string{"a", "b", "c", "d", "e"}
}

func TestOpenSeedsFromCarousel(t *testing.T) {
	s := NewState(5)
	s.Next()
	s.Next() // active = 2

	lb := NewLightbox()
	lb.Open(fiveImages(), nil, s.Active())

	if !lb.IsOpen() {
		t.Fatal("lightbox should be open")
	}
	if lb.CurrentIndex() != 2 {
		t.Fatalf("seeded index = %d, want 2", lb.CurrentIndex())
	}
	if !lb.MountedForPortal() {
		t.Fatal("lightbox must be portal-mounted once opened")
	}
	if !lb.ScrollLocked() {
		t.Fatal("page scroll must be suspended while open")
	}

	// Independent navigation afterwards: moving the lightbox does not touch
	// the carousel and vice versa.
	lb.Next()
	if s.Active() != 2 {
		t.Fatalf("carousel moved to %d after lightbox navigation", s.Active())
	}
	s.Next()
	if lb.CurrentIndex() != 3 {
		t.Fatalf("lightbox moved to %d after carousel navigation", lb.CurrentIndex())
	}
}

func TestRightArrowWrap(t *testing.T) {
	lb := NewLightbox()
	lb.Open(fiveImages(), nil, 2)
	for i := 0; i < 3; i++ {
		lb.HandleKey(KeyArrowRight)
	}
	if lb.CurrentIndex() != 0 {
		t.Fatalf("2 then three right arrows = %d, want 0", lb.CurrentIndex())
	}
}

func TestLeftArrowWrap(t *testing.T) {
	lb := NewLightbox()
	lb.Open(fiveImages(), nil, 0)
	lb.HandleKey(KeyArrowLeft)
	if lb.CurrentIndex() != 4 {
		t.Fatalf("left arrow from 0 = %d, want 4", lb.CurrentIndex())
	}
}

func TestEscapeClosesAndRestoresScroll(t *testing.T) {
	lb := NewLightbox()
	lb.Open(fiveImages(), nil, 1)
	lb.HandleKey(KeyEscape)
	if lb.IsOpen() {
		t.Fatal("escape must close the lightbox")
	}
	if lb.ScrollLocked() {
		t.Fatal("scroll must be restored on close")
	}
	if !lb.MountedForPortal() {
		t.Fatal("portal mount survives a normal close")
	}
}

func TestKeysIgnoredWhileClosed(t *testing.T) {
	lb := NewLightbox()
	lb.Open(fiveImages(), nil, 2)
	lb.Close()
	lb.HandleKey(KeyArrowRight)
	if lb.CurrentIndex() != 2 {
		t.Fatalf("closed lightbox navigated to %d", lb.CurrentIndex())
	}
}

func TestArrowsNoOpWithSingleImage(t *testing.T) {
	lb := NewLightbox()
	lb.Open([]string{"only"}, nil, 0)
	lb.HandleKey(KeyArrowRight)
	lb.HandleKey(KeyArrowLeft)
	if lb.CurrentIndex() != 0 {
		t.Fatalf("single-image navigation moved index to %d", lb.CurrentIndex())
	}
	if lb.Thumbnails() != nil {
		t.Fatal("thumbnail strip must be absent with a single image")
	}
}

func TestClickContract(t *testing.T) {
	lb := NewLightbox()
	lb.Open(fiveImages(), nil, 0)

	lb.HandleClick(TargetImage)
	if !lb.IsOpen() {
		t.Fatal("clicking the image must not close")
	}
	lb.HandleClick(TargetControl)
	if !lb.IsOpen() {
		t.Fatal("clicking a control must not close")
	}
	lb.HandleClick(TargetBackdrop)
	if lb.IsOpen() {
		t.Fatal("clicking the backdrop must close")
	}
}

func TestReopenReseeds(t *testing.T) {
	lb := NewLightbox()
	lb.Open(fiveImages(), nil, 1)
	lb.Next()
	lb.Close()
	lb.Open(fiveImages(), nil, 4)
	if lb.CurrentIndex() != 4 {
		t.Fatalf("reopen did not reseed: index=%d, want 4", lb.CurrentIndex())
	}
}

func TestCurrentLink(t *testing.T) {
	lb := NewLightbox()
	lb.Open([]string{"a", "b", "c"}, []string{"", "https://example.com"}, 0)

	if _, ok := lb.CurrentLink(); ok {
		t.Fatal("index 0 has no link")
	}
	lb.Next()
	link, ok := lb.CurrentLink()
	if !ok || link != "https://example.com" {
		t.Fatalf("index 1 link = %q/%v", link, ok)
	}
	lb.Next()
	if _, ok := lb.CurrentLink(); ok {
		t.Fatal("index 2 is past the links sequence, must have no link")
	}
}

func TestThumbnailSelection(t *testing.T) {
	lb := NewLightbox()
	lb.Open(fiveImages(), nil, 0)
	lb.SelectThumbnail(3)
	if lb.CurrentIndex() != 3 {
		t.Fatalf("thumbnail selection = %d, want 3", lb.CurrentIndex())
	}
	lb.SelectThumbnail(9)
	if lb.CurrentIndex() != 3 {
		t.Fatalf("out-of-range thumbnail changed index to %d", lb.CurrentIndex())
	}
	if got := len(lb.Thumbnails()); got != 5 {
		t.Fatalf("thumbnail strip lists %d images, want all 5", got)
	}
}

func TestUnmountRestoresScroll(t *testing.T) {
	lb := NewLightbox()
	lb.Open(fiveImages(), nil, 0)
	lb.Unmount()
	if lb.ScrollLocked() {
		t.Fatal("scroll must be restored even on the unmount path")
	}
	if lb.MountedForPortal() {
		t.Fatal("unmount must drop the portal mount")
	}
}

func TestOpenEmptySequenceIgnored(t *testing.T) {
	lb := NewLightbox()
	lb.Open(nil, nil, 0)
	if lb.IsOpen() {
		t.Fatal("opening over an empty sequence must be refused")
	}
}
