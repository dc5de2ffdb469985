// Package docx reads and rewrites WordprocessingML (.docx) documents at the
// run level. It parses word/document.xml just deep enough to expose paragraphs,
// tables and their text runs, and writes modified text back by splicing the
// original XML bytes, so every untouched run keeps its source bytes exactly.
package docx

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
)

const documentPart = "word/document.xml"

var (
	// ErrUnsupportedFormat is returned for anything that is not a modern
	// XML-zip Word document, including the legacy OLE .doc container.
	ErrUnsupportedFormat = errors.New("unsupported document format")
)

// oleMagic is the compound-file signature of legacy .doc binaries.
var oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

type part struct {
	name string
	data []byte
}

// Document is an in-memory .docx archive with a parsed body. All archive
// entries are retained verbatim; only word/document.xml is rewritten on Save.
type Document struct {
	parts []part
	body  *body
}

// Load opens a .docx from raw bytes.
func Load(b []byte) (*Document, error) {
	if bytes.HasPrefix(b, oleMagic) {
		return nil, fmt.Errorf("%w: legacy binary .doc", ErrUnsupportedFormat)
	}

	zr, err := zip.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return nil, fmt.Errorf("%w: not a zip archive", ErrUnsupportedFormat)
	}

	doc := &Document{}
	var docXML []byte
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.Name, err)
		}
		doc.parts = append(doc.parts, part{name: f.Name, data: data})
		if f.Name == documentPart {
			docXML = data
		}
	}
	if docXML == nil {
		return nil, fmt.Errorf("%w: missing %s", ErrUnsupportedFormat, documentPart)
	}

	body, err := parseBody(docXML)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", documentPart, err)
	}
	doc.body = body
	return doc, nil
}

// Save serializes the document back to .docx bytes. Archive entries keep
// their original order and content except for the rewritten document part.
func (d *Document) Save() ([]byte, error) {
	rendered := d.body.render()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range d.parts {
		w, err := zw.Create(p.name)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", p.name, err)
		}
		data := p.data
		if p.name == documentPart {
			data = rendered
		}
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("write %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BodyParagraphs returns the document's top-level paragraphs in order.
func (d *Document) BodyParagraphs() []*Paragraph {
	return d.body.paragraphs
}

// Tables returns the document's top-level tables in order.
func (d *Document) Tables() []*Table {
	return d.body.tables
}

// ParagraphSources returns every paragraph that substitution visits, in
// binding order: top-level paragraphs first, then every table cell's
// paragraphs row by row, cell by cell.
func (d *Document) ParagraphSources() []*Paragraph {
	out := make([]*Paragraph, 0, len(d.body.paragraphs))
	out = append(out, d.body.paragraphs...)
	for _, tbl := range d.body.tables {
		for _, row := range tbl.Rows {
			for _, cell := range row.Cells {
				out = append(out, cell.Paragraphs...)
			}
		}
	}
	return out
}

// Replace substitutes the first occurrence of old with new in each paragraph
// that contains it, visiting paragraphs in binding order. It returns the
// number of paragraphs changed. An empty old never matches.
func (d *Document) Replace(old, new string) int {
	count := 0
	for _, p := range d.ParagraphSources() {
		if p.ReplaceFirst(old, new) {
			count++
		}
	}
	return count
}

// Text returns the concatenated visible text of all paragraphs in binding
// order, one line per paragraph.
func (d *Document) Text() string {
	var buf bytes.Buffer
	for _, p := range d.ParagraphSources() {
		buf.WriteString(p.Text())
		buf.WriteByte('\n')
	}
	return buf.String()
}
