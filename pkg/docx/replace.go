package docx

import "strings"

// span describes where a placeholder occurrence sits inside a paragraph's run
// sequence: the first and last overlapping runs, the text kept before the
// match in the first run, and the offset in the last run where the kept tail
// begins.
type span struct {
	first     int
	last      int
	prefixLen int
	tailStart int
}

// locate finds the first occurrence of placeholder in the concatenated run
// texts. An empty placeholder never matches.
func locate(runs []*Run, placeholder string) (span, bool) {
	if placeholder == "" {
		return span{}, false
	}

	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.text)
	}
	full := sb.String()

	at := strings.Index(full, placeholder)
	if at < 0 {
		return span{}, false
	}
	matchEnd := at + len(placeholder)

	sp := span{first: -1, last: -1}
	offset := 0
	for i, r := range runs {
		runStart, runEnd := offset, offset+len(r.text)
		offset = runEnd
		if runEnd <= at || runStart >= matchEnd {
			continue
		}
		if sp.first < 0 {
			sp.first = i
			sp.prefixLen = at - runStart
		}
		sp.last = i
		sp.tailStart = matchEnd - runStart
	}
	if sp.first < 0 {
		return span{}, false
	}
	return sp, true
}

// splice rewrites the matched span in place: the first run keeps its prefix
// and receives the replacement, interior runs are emptied but kept so their
// formatting stays attached, and the last run keeps only its tail. Runs
// outside the span are never touched. On any offset inconsistency it leaves
// the runs unchanged and reports false.
func splice(runs []*Run, sp span, replacement string) bool {
	if sp.first < 0 || sp.last >= len(runs) || sp.first > sp.last {
		return false
	}
	firstRun, lastRun := runs[sp.first], runs[sp.last]
	if sp.prefixLen < 0 || sp.prefixLen > len(firstRun.text) {
		return false
	}
	if sp.tailStart < 0 || sp.tailStart > len(lastRun.text) {
		return false
	}

	prefix := firstRun.text[:sp.prefixLen]
	tail := lastRun.text[sp.tailStart:]

	if sp.first == sp.last {
		firstRun.setText(prefix + replacement + tail)
		return true
	}

	firstRun.setText(prefix + replacement)
	for i := sp.first + 1; i < sp.last; i++ {
		runs[i].setText("")
	}
	lastRun.setText(tail)
	return true
}

// ReplaceFirst substitutes the first occurrence of old in the paragraph with
// new. It reports whether a replacement was made; when old is absent or empty
// the paragraph is left untouched.
func (p *Paragraph) ReplaceFirst(old, new string) bool {
	sp, ok := locate(p.runs, old)
	if !ok {
		return false
	}
	return splice(p.runs, sp, new)
}
