// Package ui holds the per-visitor state of the landing page controls:
// the mobile menu flag, the hero location field and the testimonial
// carousel cursor. Every operation is total and cannot fail.
package ui

import "errors"

var ErrCursorOutOfRange = errors.New("carousel index out of range")

// Menu is the mobile navigation flag. The zero value is collapsed.
type Menu struct {
	expanded bool
}

func (m *Menu) Toggle() {
	m.expanded = !m.expanded
}

func (m Menu) Expanded() bool {
	return m.expanded
}

// LocationField keeps the latest contents of the hero location input.
type LocationField struct {
	value string
}

// Bind replaces the stored value with v as given.
func (f *LocationField) Bind(v string) {
	f.value = v
}

func (f LocationField) Value() string {
	return f.value
}

// Carousel is a cursor over a fixed number of records. The cursor is always
// in [0, Len()).
type Carousel struct {
	cursor int
	size   int
}

// NewCarousel panics if size is not positive.
func NewCarousel(size int) Carousel {
	if size <= 0 {
		panic("ui: carousel size must be positive")
	}
	return Carousel{size: size}
}

func (c *Carousel) Advance() {
	c.cursor = (c.cursor + 1) % c.size
}

func (c *Carousel) Retreat() {
	// % keeps the sign of the dividend, the +size keeps it non-negative.
	c.cursor = (c.cursor - 1 + c.size) % c.size
}

// JumpTo moves the cursor to k. It reports false and leaves the cursor
// untouched when k is not a valid position.
func (c *Carousel) JumpTo(k int) bool {
	if k < 0 || k >= c.size {
		return false
	}
	c.cursor = k
	return true
}

func (c Carousel) Cursor() int {
	return c.cursor
}

func (c Carousel) Len() int {
	return c.size
}

// State is everything one visitor can change on the page. The three cells
// are independent of each other.
type State struct {
	Menu     Menu
	Location LocationField
	Carousel Carousel
}

// NewState returns the initial state for a carousel of n records.
func NewState(n int) State {
	return State{Carousel: NewCarousel(n)}
}

// Snapshot is the storable form of a State.
type Snapshot struct {
	MenuExpanded bool
	Location     string
	Cursor       int
}

func (s State) Snapshot() Snapshot {
	return Snapshot{
		MenuExpanded: s.Menu.Expanded(),
		Location:     s.Location.Value(),
		Cursor:       s.Carousel.Cursor(),
	}
}

// Restore rebuilds a State for a carousel of n records. A stored cursor that
// no longer fits (the record list shrank) is wrapped into range.
func Restore(snap Snapshot, n int) State {
	st := NewState(n)
	st.Menu.expanded = snap.MenuExpanded
	st.Location.Bind(snap.Location)
	st.Carousel.cursor = ((snap.Cursor % n) + n) % n
	return st
}
