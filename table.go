package texttable

import "unicode/utf8"

const defaultSeparator = " "

// Table accumulates rows of text cells together with the configuration
// used to render them as an aligned fixed-width block. Cell widths are
// counted in runes. Configuration methods return the table for chaining.
//
// A Table is not safe for concurrent mutation; concurrent renders of a
// table that is no longer being mutated are fine.
type Table struct {
	columnsExpected  int
	maxColumnLengths []int
	rows             [][]string
	alignments       map[int]Align
	separator        string
	trimTrailing     bool
	dividers         []Divider
}

// New creates an empty table. The column count is fixed by the first
// row added.
func New() *Table {
	return &Table{
		columnsExpected: -1,
		separator:       defaultSeparator,
		alignments:      make(map[int]Align),
	}
}

// NewWithColumns creates a table whose column count is fixed up front,
// so every added row must have exactly n cells. n <= 0 behaves like New.
func NewWithColumns(n int) *Table {
	t := New()
	if n > 0 {
		t.columnsExpected = n
		t.maxColumnLengths = make([]int, n)
	}
	return t
}

// FromRows creates a table seeded with the given rows.
func FromRows(rows [][]string) (*Table, error) {
	t := New()
	if err := t.AddRows(rows); err != nil {
		return nil, err
	}
	return t, nil
}

// FromRowsWithColumns creates a table with a fixed column count, seeded
// with the given rows.
func FromRowsWithColumns(n int, rows [][]string) (*Table, error) {
	t := NewWithColumns(n)
	if err := t.AddRows(rows); err != nil {
		return nil, err
	}
	return t, nil
}

// AddRow appends one row of cells and folds their lengths into the
// per-column width tracker. The first row fixes the table's column count
// unless it was declared at construction; later rows must match it or
// the add fails with *ColumnCountError and the table is left untouched.
func (t *Table) AddRow(cells ...string) error {
	if t.columnsExpected <= 0 {
		t.columnsExpected = len(cells)
		t.maxColumnLengths = make([]int, len(cells))
	} else if len(cells) != t.columnsExpected {
		return &ColumnCountError{Expected: t.columnsExpected, Actual: len(cells)}
	}
	t.rows = append(t.rows, cells)
	for i, cell := range cells {
		if n := utf8.RuneCountInString(cell); n > t.maxColumnLengths[i] {
			t.maxColumnLengths[i] = n
		}
	}
	return nil
}

// AddRows appends each row in order. The first failure stops the
// import; rows added before the failure remain in the table.
func (t *Table) AddRows(rows [][]string) error {
	for _, row := range rows {
		if err := t.AddRow(row...); err != nil {
			return err
		}
	}
	return nil
}

// Separator sets the string emitted between adjacent cells on a line.
// Default is a single space.
func (t *Table) Separator(s string) *Table {
	t.separator = s
	return t
}

// TrimTrailingWhitespace controls whether the last column on each line
// is padded to its full width or to a minimum of one character,
// suppressing trailing spaces. Default is off.
func (t *Table) TrimTrailingWhitespace(on bool) *Table {
	t.trimTrailing = on
	return t
}

// AlignColumn sets the alignment for one column. Columns without an
// explicit alignment render left-aligned.
func (t *Table) AlignColumn(col int, a Align) *Table {
	t.alignments[col] = a
	return t
}

// AlignColumnChar sets a column's alignment from a configuration
// character, as accepted by ParseAlign.
func (t *Table) AlignColumnChar(col int, c rune) error {
	a, err := ParseAlign(c)
	if err != nil {
		return err
	}
	t.alignments[col] = a
	return nil
}

// Alignments sets the alignment of columns 0..n-1 from positional
// characters, e.g. "lrc". The whole spec is validated before any column
// is touched. An empty spec fails with ErrEmptyAlignmentSpec.
func (t *Table) Alignments(spec string) error {
	if spec == "" {
		return ErrEmptyAlignmentSpec
	}
	aligns := make([]Align, 0, len(spec))
	for _, c := range spec {
		a, err := ParseAlign(c)
		if err != nil {
			return err
		}
		aligns = append(aligns, a)
	}
	for i, a := range aligns {
		t.alignments[i] = a
	}
	return nil
}

// Dividers replaces the table's divider list.
func (t *Table) Dividers(ds ...Divider) *Table {
	t.dividers = ds
	return t
}

// Reset clears all rows and the width tracker and unfixes the column
// count. Separator, alignments, dividers and the trim flag survive.
func (t *Table) Reset() *Table {
	t.rows = nil
	t.maxColumnLengths = nil
	t.columnsExpected = -1
	return t
}

// RowCount returns the number of rows added so far.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// ColumnWidths returns a copy of the tracked per-column maximum widths.
func (t *Table) ColumnWidths() []int {
	out := make([]int, len(t.maxColumnLengths))
	copy(out, t.maxColumnLengths)
	return out
}
