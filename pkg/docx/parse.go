package docx

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// body holds the parsed structure of word/document.xml plus the original
// bytes it was parsed from. Rendering splices changed runs back into src.
type body struct {
	src        []byte
	paragraphs []*Paragraph
	tables     []*Table
	runs       []*Run // every run in document order, for rendering
}

// parseBody scans word/document.xml with a raw XML tokenizer, recording the
// byte span of every <w:t> element so unchanged fragments can be written back
// verbatim. Only paragraph, table and text-run boundaries are interpreted;
// everything else passes through untouched.
func parseBody(src []byte) (*body, error) {
	b := &body{src: src}
	dec := xml.NewDecoder(bytes.NewReader(src))

	var (
		curPara *Paragraph
		curRun  *Run
		curTbl  *Table
		curRow  *TableRow
		curCell *TableCell
		tblDeep int
		text    strings.Builder
	)

	for {
		start := dec.InputOffset()
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		end := dec.InputOffset()

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space != "w" {
				continue
			}
			switch t.Name.Local {
			case "p":
				curPara = &Paragraph{}
				if tblDeep == 0 {
					b.paragraphs = append(b.paragraphs, curPara)
				} else if curCell != nil {
					curCell.Paragraphs = append(curCell.Paragraphs, curPara)
				}
			case "tbl":
				tblDeep++
				if tblDeep == 1 {
					curTbl = &Table{}
					b.tables = append(b.tables, curTbl)
				}
			case "tr":
				if tblDeep == 1 && curTbl != nil {
					curRow = &TableRow{}
					curTbl.Rows = append(curTbl.Rows, curRow)
				}
			case "tc":
				if tblDeep == 1 && curRow != nil {
					curCell = &TableCell{}
					curRow.Cells = append(curRow.Cells, curCell)
				}
			case "t":
				if curPara != nil && curRun == nil {
					curRun = &Run{elemStart: int(start), attrs: t.Attr}
					text.Reset()
				}
			}
		case xml.EndElement:
			if t.Name.Space != "w" {
				continue
			}
			switch t.Name.Local {
			case "t":
				if curRun != nil {
					curRun.elemEnd = int(end)
					curRun.text = text.String()
					if curPara != nil {
						curPara.runs = append(curPara.runs, curRun)
					}
					b.runs = append(b.runs, curRun)
					curRun = nil
				}
			case "p":
				curPara = nil
			case "tbl":
				if tblDeep > 0 {
					tblDeep--
				}
				if tblDeep == 0 {
					curTbl = nil
				}
			case "tr":
				if tblDeep == 1 {
					curRow = nil
				}
			case "tc":
				if tblDeep == 1 {
					curCell = nil
				}
			}
		case xml.CharData:
			if curRun != nil {
				text.Write(t)
			}
		}
	}
	if curRun != nil {
		return nil, errors.New("unterminated text run")
	}
	return b, nil
}

// render writes the body back out. Clean runs keep their original source
// bytes; dirty runs are rebuilt with their recorded attributes and the new
// text, adding xml:space="preserve" when the text gained edge whitespace.
func (b *body) render() []byte {
	var out bytes.Buffer
	cursor := 0
	for _, r := range b.runs {
		if !r.dirty {
			continue
		}
		out.Write(b.src[cursor:r.elemStart])
		writeRun(&out, r)
		cursor = r.elemEnd
	}
	out.Write(b.src[cursor:])
	return out.Bytes()
}

func writeRun(out *bytes.Buffer, r *Run) {
	out.WriteString("<w:t")
	hasSpaceAttr := false
	for _, a := range r.attrs {
		name := a.Name.Local
		if a.Name.Space != "" {
			name = a.Name.Space + ":" + a.Name.Local
		}
		if name == "xml:space" {
			hasSpaceAttr = true
		}
		out.WriteByte(' ')
		out.WriteString(name)
		out.WriteString(`="`)
		xml.EscapeText(out, []byte(a.Value))
		out.WriteByte('"')
	}
	if !hasSpaceAttr && r.text != strings.TrimSpace(r.text) {
		out.WriteString(` xml:space="preserve"`)
	}
	out.WriteByte('>')
	xml.EscapeText(out, []byte(r.text))
	out.WriteString("</w:t>")
}
