package texttable

import (
	"errors"
	"reflect"
	"testing"
)

func TestAddRowFixesColumnCount(t *testing.T) {
	tbl := New()
	if err := tbl.AddRow("a", "bb"); err != nil {
		t.Fatalf("first AddRow: %v", err)
	}

	err := tbl.AddRow("only one")
	var cce *ColumnCountError
	if !errors.As(err, &cce) {
		t.Fatalf("AddRow error = %v, want *ColumnCountError", err)
	}
	if cce.Expected != 2 || cce.Actual != 1 {
		t.Errorf("ColumnCountError = {%d %d}, want {2 1}", cce.Expected, cce.Actual)
	}
	if tbl.RowCount() != 1 {
		t.Errorf("RowCount after failed add = %d, want 1", tbl.RowCount())
	}
}

func TestAddRowTracksMaxWidths(t *testing.T) {
	tbl := New()
	rows := [][]string{
		{"a", "bb", ""},
		{"ccc", "d", "x"},
		{"e", "ffff", ""},
	}
	if err := tbl.AddRows(rows); err != nil {
		t.Fatalf("AddRows: %v", err)
	}

	want := []int{3, 4, 1}
	if got := tbl.ColumnWidths(); !reflect.DeepEqual(got, want) {
		t.Errorf("ColumnWidths() = %v, want %v", got, want)
	}
}

func TestAddRowCountsRunesNotBytes(t *testing.T) {
	tbl := New()
	if err := tbl.AddRow("héllo"); err != nil {
		t.Fatalf("AddRow: %v", err)
	}
	if got := tbl.ColumnWidths()[0]; got != 5 {
		t.Errorf("width of %q = %d, want 5", "héllo", got)
	}
}

func TestNewWithColumnsEnforcesCount(t *testing.T) {
	tbl := NewWithColumns(3)
	err := tbl.AddRow("a", "b")
	var cce *ColumnCountError
	if !errors.As(err, &cce) {
		t.Fatalf("AddRow error = %v, want *ColumnCountError", err)
	}
	if cce.Expected != 3 || cce.Actual != 2 {
		t.Errorf("ColumnCountError = {%d %d}, want {3 2}", cce.Expected, cce.Actual)
	}
	if tbl.RowCount() != 0 {
		t.Errorf("RowCount = %d, want 0", tbl.RowCount())
	}
}

func TestAddRowsStopsAtFirstFailure(t *testing.T) {
	tbl := New()
	err := tbl.AddRows([][]string{
		{"a", "b"},
		{"c", "d"},
		{"ragged"},
		{"e", "f"},
	})
	if err == nil {
		t.Fatal("AddRows should fail on the ragged row")
	}
	// rows before the failure stay, nothing after is imported
	if tbl.RowCount() != 2 {
		t.Errorf("RowCount = %d, want 2", tbl.RowCount())
	}
}

func TestFromRows(t *testing.T) {
	tbl, err := FromRows([][]string{{"a", "bb"}, {"ccc", "d"}})
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	if tbl.RowCount() != 2 {
		t.Errorf("RowCount = %d, want 2", tbl.RowCount())
	}

	if _, err := FromRows([][]string{{"a"}, {"b", "c"}}); err == nil {
		t.Error("FromRows should reject ragged rows")
	}
}

func TestFromRowsWithColumns(t *testing.T) {
	tbl, err := FromRowsWithColumns(2, [][]string{{"a", "b"}})
	if err != nil {
		t.Fatalf("FromRowsWithColumns: %v", err)
	}
	if tbl.RowCount() != 1 {
		t.Errorf("RowCount = %d, want 1", tbl.RowCount())
	}

	if _, err := FromRowsWithColumns(3, [][]string{{"a", "b"}}); err == nil {
		t.Error("FromRowsWithColumns should reject rows not matching the declared count")
	}
}

func TestResetPreservesConfiguration(t *testing.T) {
	tbl := New().
		Separator(" | ").
		TrimTrailingWhitespace(true).
		AlignColumn(0, AlignRight).
		Dividers(Divider{Index: 0, Char: '='})
	if err := tbl.AddRows([][]string{{"aa", "b"}, {"c", "dd"}}); err != nil {
		t.Fatalf("AddRows: %v", err)
	}

	tbl.Reset()
	if tbl.RowCount() != 0 {
		t.Fatalf("RowCount after Reset = %d, want 0", tbl.RowCount())
	}

	// column count is unfixed: a different shape is accepted now
	if err := tbl.AddRow("x", "y", "z"); err != nil {
		t.Fatalf("AddRow after Reset: %v", err)
	}

	// widths 1,1,1 and separator " | " of width 3: rule runs 1+4+4 = 9
	got := tbl.String()
	want := "=========\n" + "x | y | z\n"
	if got != want {
		t.Errorf("render after Reset = %q, want %q", got, want)
	}
}

func TestAlignmentsSpec(t *testing.T) {
	tbl := New()
	if err := tbl.Alignments("lrc"); err != nil {
		t.Fatalf("Alignments: %v", err)
	}

	want := map[int]Align{0: AlignLeft, 1: AlignRight, 2: AlignCenter}
	if !reflect.DeepEqual(tbl.alignments, want) {
		t.Errorf("alignments = %v, want %v", tbl.alignments, want)
	}
}

func TestAlignmentsSpecInvalidCharLeavesTableUntouched(t *testing.T) {
	tbl := New()
	err := tbl.Alignments("lxr")
	var ae *AlignmentError
	if !errors.As(err, &ae) {
		t.Fatalf("Alignments error = %v, want *AlignmentError", err)
	}
	if ae.Char != 'x' {
		t.Errorf("AlignmentError.Char = %q, want 'x'", ae.Char)
	}
	if len(tbl.alignments) != 0 {
		t.Errorf("alignments mutated on failure: %v", tbl.alignments)
	}
}

func TestAlignmentsEmptySpec(t *testing.T) {
	if err := New().Alignments(""); !errors.Is(err, ErrEmptyAlignmentSpec) {
		t.Errorf("Alignments(\"\") = %v, want ErrEmptyAlignmentSpec", err)
	}
}

func TestAlignColumnChar(t *testing.T) {
	tbl := New()
	if err := tbl.AlignColumnChar(1, 'R'); err != nil {
		t.Fatalf("AlignColumnChar: %v", err)
	}
	if tbl.alignments[1] != AlignRight {
		t.Errorf("alignments[1] = %v, want AlignRight", tbl.alignments[1])
	}

	if err := tbl.AlignColumnChar(0, '?'); err == nil {
		t.Error("AlignColumnChar('?') should fail")
	}
}
