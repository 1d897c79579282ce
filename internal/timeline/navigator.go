package timeline

// DefaultMaxWeekOffset bounds navigation to two years either side of this week.
const DefaultMaxWeekOffset = 104

// Navigator holds the selected week offset. 0 is the current week.
type Navigator struct {
	Offset int
	Max    int
}

func NewNavigator(maxOffset int) *Navigator {
	return &Navigator{Max: maxOffset}
}

func (n *Navigator) bound() int {
	if n.Max <= 0 {
		return DefaultMaxWeekOffset
	}
	return n.Max
}

// Clamp limits offset to [-Max, Max].
func (n *Navigator) Clamp(offset int) int {
	b := n.bound()
	return min(max(offset, -b), b)
}

func (n *Navigator) Next() int  { return n.Set(n.Offset + 1) }
func (n *Navigator) Prev() int  { return n.Set(n.Offset - 1) }
func (n *Navigator) Reset() int { return n.Set(0) }

func (n *Navigator) Set(offset int) int {
	n.Offset = n.Clamp(offset)
	return n.Offset
}
