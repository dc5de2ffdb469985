package docx

import (
	"encoding/xml"
	"strings"
)

// Run is one <w:t> text fragment inside a paragraph. Its formatting lives in
// the surrounding run markup, which is never touched; only the text content
// is mutable. A run whose text was never changed is written back from the
// original source bytes.
type Run struct {
	elemStart int // offset of '<' of the w:t open tag in the source XML
	elemEnd   int // offset just past the w:t close tag
	attrs     []xml.Attr
	text      string
	dirty     bool
}

// Text returns the run's current visible text.
func (r *Run) Text() string { return r.text }

func (r *Run) setText(s string) {
	if r.text == s && !r.dirty {
		return
	}
	r.text = s
	r.dirty = true
}

// Paragraph is an ordered sequence of runs, either a top-level body paragraph
// or one paragraph inside a table cell.
type Paragraph struct {
	runs []*Run
}

// Runs returns the paragraph's runs in order.
func (p *Paragraph) Runs() []*Run { return p.runs }

// Text returns the concatenation of all run texts.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.runs {
		sb.WriteString(r.text)
	}
	return sb.String()
}

// Table is a top-level table: rows of cells, each cell holding paragraphs.
type Table struct {
	Rows []*TableRow
}

// TableRow is one row of table cells.
type TableRow struct {
	Cells []*TableCell
}

// TableCell holds the cell's paragraphs in order.
type TableCell struct {
	Paragraphs []*Paragraph
}
