package buffer

import (
	"strings"

	"github.com/aleister1102/prettydiff/internal/common/errorwrapper"
)

// Slot identifies one of the fixed buffer positions in a session.
type Slot int

const (
	// SlotA is the first buffer position
	SlotA Slot = iota
	// SlotB is the second buffer position
	SlotB
	// SlotC is the third buffer position
	SlotC

	slotCount = 3
)

// String returns the display tag of the slot
func (s Slot) String() string {
	switch s {
	case SlotA:
		return "A"
	case SlotB:
		return "B"
	case SlotC:
		return "C"
	default:
		return "?"
	}
}

// ParseSlot converts a slot tag into a Slot
func ParseSlot(tag string) (Slot, error) {
	switch strings.ToUpper(strings.TrimSpace(tag)) {
	case "A":
		return SlotA, nil
	case "B":
		return SlotB, nil
	case "C":
		return SlotC, nil
	default:
		return SlotA, errorwrapper.NewValidationError("slot", tag, "slot must be one of A, B, C")
	}
}

// Slots returns all slots in their fixed enumeration order
func Slots() []Slot {
	return []Slot{SlotA, SlotB, SlotC}
}

// Buffer is a named text slot with an associated display title.
// Buffers are cleared rather than destroyed; identity is the slot holding them.
type Buffer struct {
	Content string
	Title   string
}

// HasContent reports whether the buffer holds non-whitespace text
func (b *Buffer) HasContent() bool {
	return strings.TrimSpace(b.Content) != ""
}

// Clear resets content and title to empty
func (b *Buffer) Clear() {
	b.Content = ""
	b.Title = ""
}

// Session holds the three comparison buffers and the base designation.
// The surrounding application owns the session and threads it through calls;
// nothing in this package keeps global state.
type Session struct {
	buffers [slotCount]Buffer
	base    Slot
}

// NewSession creates a session with empty buffers and SlotA as base
func NewSession() *Session {
	return &Session{base: SlotA}
}

// Buffer returns the buffer stored in the given slot
func (s *Session) Buffer(slot Slot) *Buffer {
	return &s.buffers[slot]
}

// Base returns the currently designated base slot
func (s *Session) Base() Slot {
	return s.base
}

// SetBase designates the base slot for comparisons
func (s *Session) SetBase(slot Slot) {
	s.base = slot
}

// SetContent replaces the content of the given slot
func (s *Session) SetContent(slot Slot, content string) {
	s.buffers[slot].Content = content
}

// SetTitle replaces the display title of the given slot
func (s *Session) SetTitle(slot Slot, title string) {
	s.buffers[slot].Title = title
}

// Candidates returns all slots except the base, in fixed enumeration order
func (s *Session) Candidates() []Slot {
	candidates := make([]Slot, 0, slotCount-1)
	for _, slot := range Slots() {
		if slot != s.base {
			candidates = append(candidates, slot)
		}
	}
	return candidates
}

// WithContent returns the slots whose trimmed content is non-empty, in fixed order
func (s *Session) WithContent() []Slot {
	slots := make([]Slot, 0, slotCount)
	for _, slot := range Slots() {
		if s.buffers[slot].HasContent() {
			slots = append(slots, slot)
		}
	}
	return slots
}
