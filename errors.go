package texttable

import (
	"errors"
	"fmt"
)

// ColumnCountError reports a row whose cell count does not match the
// table's fixed column count. The add that produced it had no effect.
type ColumnCountError struct {
	Expected int
	Actual   int
}

func (e *ColumnCountError) Error() string {
	return fmt.Sprintf("row has %d cells, table expects %d", e.Actual, e.Expected)
}

// AlignmentError reports an alignment configuration character outside
// the supported set.
type AlignmentError struct {
	Char rune
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("unsupported alignment character %q", e.Char)
}

// ErrEmptyAlignmentSpec is returned when an alignment spec is required
// but empty.
var ErrEmptyAlignmentSpec = errors.New("alignment spec is empty")
