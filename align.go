package texttable

// Align controls horizontal text alignment within a table column.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// String returns the lowercase name of the alignment.
func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// ParseAlign converts a configuration character into an Align.
// 'l', 'L' and ' ' select left, 'c'/'C' center, 'r'/'R' right.
// Any other character fails with *AlignmentError.
func ParseAlign(c rune) (Align, error) {
	switch c {
	case 'l', 'L', ' ':
		return AlignLeft, nil
	case 'c', 'C':
		return AlignCenter, nil
	case 'r', 'R':
		return AlignRight, nil
	default:
		return AlignLeft, &AlignmentError{Char: c}
	}
}
