package editcontext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveEdit_DeletionCounts(t *testing.T) {
	prev := &ShadowSnapshot{Value: "0123456789", SelectionStart: 5, SelectionEnd: 5}

	op, ok := DeriveEdit(TextUpdate{Text: "X", UpdateRangeStart: 3, UpdateRangeEnd: 7}, prev)
	require.True(t, ok)
	assert.Equal(t, EditOperation{Text: "X", DeletePrevCount: 2, DeleteNextCount: 2}, op)
	assert.True(t, op.IsReplace())
}

func TestDeriveEdit_PlainInsertAndClamping(t *testing.T) {
	prev := &ShadowSnapshot{Value: "abcdef", SelectionStart: 2, SelectionEnd: 4}

	op, ok := DeriveEdit(TextUpdate{Text: "z", UpdateRangeStart: 2, UpdateRangeEnd: 4}, prev)
	require.True(t, ok)
	assert.False(t, op.IsReplace(), "replacing exactly the selection is a plain insert")

	op, _ = DeriveEdit(TextUpdate{Text: "z", UpdateRangeStart: 3, UpdateRangeEnd: 3}, prev)
	assert.Zero(t, op.DeletePrevCount, "counts never go negative")
	assert.Zero(t, op.DeleteNextCount)
	assert.Zero(t, op.CursorShiftAfterInsert)
}

func TestDeriveEdit_NoPreviousSnapshot(t *testing.T) {
	_, ok := DeriveEdit(TextUpdate{Text: "a"}, nil)
	assert.False(t, ok)
}

func TestNormalizeWhitespace(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"nbsp between letters", "a\u00a0b", "a b"},
		{"newline kept", "a\nb", "a\nb"},
		{"carriage return kept", "a\r\nb", "a\r\nb"},
		{"run collapses", "a \t\u00a0 b", "a b"},
		{"zero width space", "a\u200bb", "a b"},
		{"bom", "\ufeffx", " x"},
		{"run stops at newline", "a \n b", "a \n b"},
		{"untouched", "plain", "plain"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeWhitespace(tc.in))
		})
	}
}
