package texttable

// Divider describes a horizontal rule inserted at a row boundary.
//
// Index is the insertion point: 0 places the rule before the first row,
// rowCount after the last. Negative indices count from the end at render
// time, so -1 is after the last row and -2 just before it. Char is the
// fill character; the zero value renders as '-'. When UseColumnSeparator
// is set the configured column separator is emitted between column runs,
// otherwise the rule extends through the gap.
type Divider struct {
	Index              int
	Char               rune
	UseColumnSeparator bool
}

// NewDivider creates a divider at the given insertion point with the
// given fill character.
func NewDivider(index int, char rune) Divider {
	return Divider{Index: index, Char: char}
}

// resolve maps the divider's index to an absolute insertion point for
// the given row count.
func (d Divider) resolve(rowCount int) int {
	if d.Index < 0 {
		return rowCount + d.Index + 1
	}
	return d.Index
}

// fill returns the rule character, defaulting to '-'.
func (d Divider) fill() rune {
	if d.Char == 0 {
		return '-'
	}
	return d.Char
}
