package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlot(t *testing.T) {
	tests := []struct {
		tag      string
		expected Slot
		wantErr  bool
	}{
		{"A", SlotA, false},
		{"b", SlotB, false},
		{" C ", SlotC, false},
		{"D", SlotA, true},
		{"", SlotA, true},
	}

	for _, tt := range tests {
		slot, err := ParseSlot(tt.tag)
		if tt.wantErr {
			assert.Error(t, err, "tag %q", tt.tag)
			continue
		}
		require.NoError(t, err, "tag %q", tt.tag)
		assert.Equal(t, tt.expected, slot)
	}
}

func TestSession_Candidates(t *testing.T) {
	session := NewSession()

	assert.Equal(t, []Slot{SlotB, SlotC}, session.Candidates())

	session.SetBase(SlotB)
	assert.Equal(t, []Slot{SlotA, SlotC}, session.Candidates())

	session.SetBase(SlotC)
	assert.Equal(t, []Slot{SlotA, SlotB}, session.Candidates())
}

func TestSession_WithContent(t *testing.T) {
	session := NewSession()
	session.SetContent(SlotA, "some text")
	session.SetContent(SlotB, "   \n\t ")
	session.SetContent(SlotC, "more text")

	assert.Equal(t, []Slot{SlotA, SlotC}, session.WithContent())
}

func TestBuffer_Clear(t *testing.T) {
	session := NewSession()
	session.SetContent(SlotA, "content")
	session.SetTitle(SlotA, "title")

	session.Buffer(SlotA).Clear()

	assert.Empty(t, session.Buffer(SlotA).Content)
	assert.Empty(t, session.Buffer(SlotA).Title)
}

func TestSession_Rotate(t *testing.T) {
	session := NewSession()
	session.SetContent(SlotA, "a")
	session.SetContent(SlotB, "b")
	session.SetContent(SlotC, "c")
	session.SetTitle(SlotA, "first")
	session.SetTitle(SlotB, "second")
	session.SetTitle(SlotC, "third")

	session.Rotate()

	assert.Equal(t, "c", session.Buffer(SlotA).Content)
	assert.Equal(t, "a", session.Buffer(SlotB).Content)
	assert.Equal(t, "b", session.Buffer(SlotC).Content)
	assert.Equal(t, "third", session.Buffer(SlotA).Title)
	assert.Equal(t, "first", session.Buffer(SlotB).Title)
	assert.Equal(t, "second", session.Buffer(SlotC).Title)
}

func TestSession_Rotate_ThreeTimesIsIdentity(t *testing.T) {
	session := NewSession()
	session.SetContent(SlotA, "alpha\ncontent")
	session.SetContent(SlotB, "")
	session.SetContent(SlotC, "gamma")
	session.SetTitle(SlotA, "one")
	session.SetTitle(SlotB, "two")
	session.SetTitle(SlotC, "")

	session.Rotate()
	session.Rotate()
	session.Rotate()

	assert.Equal(t, "alpha\ncontent", session.Buffer(SlotA).Content)
	assert.Equal(t, "", session.Buffer(SlotB).Content)
	assert.Equal(t, "gamma", session.Buffer(SlotC).Content)
	assert.Equal(t, "one", session.Buffer(SlotA).Title)
	assert.Equal(t, "two", session.Buffer(SlotB).Title)
	assert.Equal(t, "", session.Buffer(SlotC).Title)
}

func TestSession_Rotate_PreservesBase(t *testing.T) {
	session := NewSession()
	session.SetBase(SlotB)

	session.Rotate()

	assert.Equal(t, SlotB, session.Base())
}
