package editcontext

import (
	"strings"
	"unicode"
)

// EditOperation is the edit derived from one surface text update.
type EditOperation struct {
	Text                   string
	DeletePrevCount        int
	DeleteNextCount        int
	CursorShiftAfterInsert int
}

// IsReplace reports whether op must be applied as an explicit
// delete-and-insert rather than a plain insert at the selection.
func (op EditOperation) IsReplace() bool {
	return op.DeletePrevCount != 0 || op.DeleteNextCount != 0 || op.CursorShiftAfterInsert != 0
}

// DeriveEdit computes the edit a text update applies relative to previous.
// It returns false when there is no previous snapshot to diff against.
func DeriveEdit(u TextUpdate, previous *ShadowSnapshot) (EditOperation, bool) {
	if previous == nil {
		return EditOperation{}, false
	}
	return EditOperation{
		Text:            NormalizeWhitespace(u.Text),
		DeletePrevCount: max(0, previous.SelectionStart-u.UpdateRangeStart),
		DeleteNextCount: max(0, u.UpdateRangeEnd-previous.SelectionEnd),
	}, true
}

// NormalizeWhitespace collapses each run of whitespace other than '\n' and
// '\r' into a single ASCII space. Zero-width spaces and BOMs count as
// whitespace.
func NormalizeWhitespace(s string) string {
	if strings.IndexFunc(s, isFoldableSpace) < 0 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	inRun := false
	for _, r := range s {
		if isFoldableSpace(r) {
			if !inRun {
				sb.WriteByte(' ')
			}
			inRun = true
			continue
		}
		inRun = false
		sb.WriteRune(r)
	}
	return sb.String()
}

func isFoldableSpace(r rune) bool {
	switch r {
	case '\n', '\r':
		return false
	case '\u200b', '\ufeff':
		return true
	}
	return unicode.IsSpace(r)
}
