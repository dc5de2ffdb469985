package docx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runsOf(texts ...string) []*Run {
	runs := make([]*Run, len(texts))
	for i, s := range texts {
		runs[i] = &Run{text: s}
	}
	return runs
}

// --------------------- locate ---------------------

func TestLocate_WithinOneRun(t *testing.T) {
	runs := runsOf("Hello NAME!")

	sp, ok := locate(runs, "NAME")
	require.True(t, ok)
	assert.Equal(t, 0, sp.first)
	assert.Equal(t, 0, sp.last)
	assert.Equal(t, 6, sp.prefixLen)
	assert.Equal(t, 10, sp.tailStart)
}

func TestLocate_AcrossRuns(t *testing.T) {
	runs := runsOf("ab{{NA", "ME", "}}cd")

	sp, ok := locate(runs, "{{NAME}}")
	require.True(t, ok)
	assert.Equal(t, 0, sp.first)
	assert.Equal(t, 2, sp.last)
	assert.Equal(t, 2, sp.prefixLen)
	assert.Equal(t, 2, sp.tailStart)
}

func TestLocate_FirstOccurrenceWins(t *testing.T) {
	runs := runsOf("X then ", "X again")

	sp, ok := locate(runs, "X")
	require.True(t, ok)
	assert.Equal(t, 0, sp.first)
	assert.Equal(t, 0, sp.last)
	assert.Equal(t, 0, sp.prefixLen)
}

func TestLocate_EmptyPlaceholder(t *testing.T) {
	_, ok := locate(runsOf("anything"), "")
	assert.False(t, ok)
}

func TestLocate_Absent(t *testing.T) {
	_, ok := locate(runsOf("one", "two"), "three")
	assert.False(t, ok)
}

func TestLocate_CaseSensitive(t *testing.T) {
	_, ok := locate(runsOf("Name"), "NAME")
	assert.False(t, ok)
}

// --------------------- splice ---------------------

func TestSplice_SingleRun(t *testing.T) {
	runs := runsOf("Hello NAME!")
	sp, ok := locate(runs, "NAME")
	require.True(t, ok)

	require.True(t, splice(runs, sp, "Alice"))
	assert.Equal(t, "Hello Alice!", runs[0].Text())
	assert.True(t, runs[0].dirty)
}

func TestSplice_InteriorRunsEmptiedNotRemoved(t *testing.T) {
	runs := runsOf("ab{{NA", "ME", "}}cd")
	sp, ok := locate(runs, "{{NAME}}")
	require.True(t, ok)

	require.True(t, splice(runs, sp, "Alice"))
	require.Len(t, runs, 3)
	assert.Equal(t, "abAlice", runs[0].Text())
	assert.Equal(t, "", runs[1].Text())
	assert.Equal(t, "cd", runs[2].Text())
}

func TestSplice_EmptyReplacement(t *testing.T) {
	runs := runsOf("keep NAME keep")
	sp, ok := locate(runs, "NAME")
	require.True(t, ok)

	require.True(t, splice(runs, sp, ""))
	assert.Equal(t, "keep  keep", runs[0].Text())
}

func TestSplice_InconsistentSpanIsNoop(t *testing.T) {
	runs := runsOf("ab", "cd")

	for _, sp := range []span{
		{first: -1, last: 0},
		{first: 0, last: 5},
		{first: 1, last: 0},
		{first: 0, last: 0, prefixLen: 10},
		{first: 0, last: 1, tailStart: 10},
	} {
		assert.False(t, splice(runs, sp, "zz"))
	}
	assert.Equal(t, "ab", runs[0].Text())
	assert.Equal(t, "cd", runs[1].Text())
	assert.False(t, runs[0].dirty)
	assert.False(t, runs[1].dirty)
}

func TestReplaceFirst_MultibyteText(t *testing.T) {
	runs := runsOf("héllo NAME wörld")
	p := &Paragraph{runs: runs}

	require.True(t, p.ReplaceFirst("NAME", "日本語"))
	assert.Equal(t, "héllo 日本語 wörld", p.Text())
}
