// Package carousel holds the view-state machines behind the image carousel
// and its full-screen lightbox. The state is explicit and the transitions are
// pure so both can be unit tested without any rendering layer.
package carousel

import "fmt"

// State is the ephemeral view state of one carousel: an ordered image
// sequence of length total and the currently displayed index. Index
// arithmetic is circular in both directions. Whenever the underlying image
// sequence identity changes the owner must call Reset.
type State struct {
	active int
	total  int
}

func NewState(total int) *State {
	if total < 0 {
		total = 0
	}
	return &State{total: total}
}

// Reset rebinds the state to a new sequence and returns the index to 0.
func (s *State) Reset(total int) {
	if total < 0 {
		total = 0
	}
	s.total = total
	s.active = 0
}

// Next advances circularly. No-op for sequences of length <= 1.
func (s *State) Next() {
	if s.total <= 1 {
		return
	}
	s.active = (s.active + 1) % s.total
}

// Previous steps back circularly. No-op for sequences of length <= 1.
func (s *State) Previous() {
	if s.total <= 1 {
		return
	}
	s.active = (s.active - 1 + s.total) % s.total
}

// GoTo sets the index directly. The caller guarantees 0 <= i < total; out of
// range requests are ignored rather than corrupting the invariant.
func (s *State) GoTo(i int) {
	if i < 0 || i >= s.total {
		return
	}
	s.active = i
}

func (s *State) Active() int { return s.active }
func (s *State) Total() int  { return s.total }

// ShowControls reports whether the prev/next controls and the counter overlay
// should render at all.
func (s *State) ShowControls() bool {
	return s.total > 1
}

// Counter is the "n of m" overlay text, empty when controls are hidden.
func (s *State) Counter() string {
	if s.total <= 1 {
		return ""
	}
	return fmt.Sprintf("%d of %d", s.active+1, s.total)
}
