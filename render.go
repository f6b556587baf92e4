package texttable

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"
)

// columnLayout is the renderer's snapshot of the table: resolved width
// and alignment per column. Building it up front keeps rendering a pure
// read of the table.
type columnLayout struct {
	widths []int
	aligns []Align
}

func (t *Table) layout() columnLayout {
	n := len(t.maxColumnLengths)
	lay := columnLayout{
		widths: make([]int, n),
		aligns: make([]Align, n),
	}
	copy(lay.widths, t.maxColumnLengths)
	for i := 0; i < n; i++ {
		// explicit unwrap-or-default: an override must win whenever present
		if a, ok := t.alignments[i]; ok {
			lay.aligns[i] = a
		} else {
			lay.aligns[i] = AlignLeft
		}
	}
	return lay
}

// RenderTo writes the formatted table to w, one line at a time. The
// table is not mutated; rendering the same table twice produces
// identical output.
func (t *Table) RenderTo(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if err := t.render(bw); err != nil {
		return err
	}
	return bw.Flush()
}

// String renders the table into a single string. It follows the same
// line-by-line procedure as RenderTo; strings.Builder writes never fail.
func (t *Table) String() string {
	var sb strings.Builder
	_ = t.render(&sb)
	return sb.String()
}

// render walks every insertion point from 0 to rowCount inclusive,
// emitting first any dividers resolving there (in the order they were
// added) and then the data row at that position. A single pass yields
// the full output with dividers interleaved, including dividers that
// stack on one point and dividers on an empty table.
func (t *Table) render(w io.StringWriter) error {
	lay := t.layout()
	rowCount := len(t.rows)
	for point := 0; point <= rowCount; point++ {
		for _, d := range t.dividers {
			if d.resolve(rowCount) != point {
				continue
			}
			if err := t.writeDivider(w, lay, d); err != nil {
				return err
			}
		}
		if point < rowCount {
			if err := t.writeRow(w, lay, t.rows[point]); err != nil {
				return err
			}
		}
	}
	return nil
}

func (t *Table) writeRow(w io.StringWriter, lay columnLayout, row []string) error {
	count := len(lay.widths)
	for i, cell := range row {
		if i > 0 {
			if _, err := w.WriteString(t.separator); err != nil {
				return err
			}
		}
		// trailing padding is dropped only on the last column when trimming
		padRight := !t.trimTrailing || i < count-1
		if err := writeCell(w, cell, lay.widths[i], lay.aligns[i], padRight); err != nil {
			return err
		}
	}
	_, err := w.WriteString("\n")
	return err
}

// writeCell pads text to width according to align. With padRight false
// a left-aligned cell is padded to a minimum of one character instead of
// the full width, and a centered cell sits flush right; right alignment
// never carries trailing padding in the first place.
func writeCell(w io.StringWriter, text string, width int, align Align, padRight bool) error {
	n := utf8.RuneCountInString(text)
	if n == width {
		_, err := w.WriteString(text)
		return err
	}
	var out string
	switch align {
	case AlignRight:
		out = spaces(width-n) + text
	case AlignCenter:
		// floor(remainder/2) spaces on the left, the rest on the right;
		// with right-padding suppressed the text sits flush right
		mid, midLen := text, n
		if padRight {
			remainder := width - n
			mid += spaces(remainder - remainder/2)
			midLen += remainder - remainder/2
		}
		out = spaces(width-midLen) + mid
	default: // AlignLeft
		if padRight {
			out = text + spaces(width-n)
		} else {
			out = text + spaces(1-n)
		}
	}
	_, err := w.WriteString(out)
	return err
}

// writeDivider emits one rule line. Between columns the rule either
// defers to the configured column separator or extends its run by the
// separator's width so the line stays continuous.
func (t *Table) writeDivider(w io.StringWriter, lay columnLayout, d Divider) error {
	fill := string(d.fill())
	sepWidth := utf8.RuneCountInString(t.separator)
	for i, width := range lay.widths {
		run := width
		if i > 0 && sepWidth > 0 {
			if d.UseColumnSeparator {
				if _, err := w.WriteString(t.separator); err != nil {
					return err
				}
			} else {
				run += sepWidth
			}
		}
		if _, err := w.WriteString(strings.Repeat(fill, run)); err != nil {
			return err
		}
	}
	_, err := w.WriteString("\n")
	return err
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
