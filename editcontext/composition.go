package editcontext

// CompositionPositions records where the current composition started and
// where it last ended. Either may be unset. They are overwritten by the next
// composition and never cleared.
type CompositionPositions struct {
	Start *Position
	End   *Position
}

// Range returns the document range between the start and end positions.
func (c CompositionPositions) Range() (Range, bool) {
	if c.Start == nil || c.End == nil {
		return Range{}, false
	}
	return RangeFromPositions(*c.Start, *c.End), true
}

func (c *CompositionPositions) stampStart(p Position) { c.Start = &p }

func (c *CompositionPositions) stampEnd(p Position) { c.End = &p }
