//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package graph

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/e-gun/MovieSummaryAnalyzer/internal/sent"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func groups() []sent.Group {
	all := []sent.Record{
		{MovieID: 1, Year: 1940, NSentences: 3, Sentiment: 0.2},
		{MovieID: 2, Year: 1965, NSentences: 12, Sentiment: -0.1},
		{MovieID: 3, Year: 1999, NSentences: 40, Sentiment: 0.05},
		{MovieID: 4, Year: 2012, NSentences: 7, Sentiment: -0.3},
	}
	return []sent.Group{
		{Label: "all", Records: all},
		{Label: "fictional", Records: all[1:3]},
	}
}

func table() [][]vec.WordWeight {
	return [][]vec.WordWeight{
		{{Word: "alien", Weight: 0.4}, {Word: "dragon", Weight: 0.5}},
		{{Word: "planet", Weight: 0.3}, {Word: "castle", Weight: 0.2}},
	}
}

func readback(t *testing.T, fn string) string {
	b, err := os.ReadFile(fn)
	require.NoError(t, err)
	return string(b)
}

func TestPeriodCharts(t *testing.T) {
	dir := t.TempDir()
	gg := groups()

	fn := filepath.Join(dir, "ps.html")
	require.NoError(t, PeriodSentiments(fn, gg, 100, true))
	h := readback(t, fn)
	assert.Contains(t, h, "echarts")
	assert.Contains(t, h, "fictional")
	assert.Contains(t, h, "dotted")

	fn = filepath.Join(dir, "spp.html")
	require.NoError(t, SummariesPerPeriod(fn, gg, true))
	assert.Contains(t, readback(t, fn), "Summaries per release period")

	fn = filepath.Join(dir, "lp.html")
	require.NoError(t, SummaryLengthProportions(fn, gg))
	assert.Contains(t, readback(t, fn), "proportion")

	fn = filepath.Join(dir, "lpp.html")
	require.NoError(t, SummaryLengthProportionsPerPeriod(fn, gg[0]))
	assert.Contains(t, readback(t, fn), "after 2010s")

	fn = filepath.Join(dir, "lc.html")
	require.NoError(t, SummaryLengthCount(fn, gg))
	assert.Contains(t, readback(t, fn), "Number of summaries")
}

func TestSegmentStyle(t *testing.T) {
	assert.Equal(t, SOLID, SegmentStyle(100, 100))
	assert.Equal(t, DOTTED, SegmentStyle(99, 100))
	assert.Equal(t, DOTTED, SegmentStyle(0, 100))
}

func TestNullable(t *testing.T) {
	assert.Equal(t, EMPTY, nullable(math.NaN()))
	assert.Equal(t, 0.1235, nullable(0.123456))
}

func TestTopicCharts(t *testing.T) {
	dir := t.TempDir()

	fn := filepath.Join(dir, "hm.html")
	require.NoError(t, TopWordsHeatmap(fn, table()))
	h := readback(t, fn)
	assert.Contains(t, h, "castle")
	assert.Contains(t, h, "Word Rank")

	fn = filepath.Join(dir, "bars.html")
	require.NoError(t, TopWordsBars(fn, table()))
	assert.Contains(t, readback(t, fn), "Topic 1")

	assert.ErrorIs(t, TopWordsBars(fn, nil), vec.ErrEmptyVocabulary)

	fn = filepath.Join(dir, "sim.html")
	sim := mat.NewDense(2, 2, []float64{1, 0.25, 0.25, 1})
	require.NoError(t, SimilarityHeatmap(fn, sim))
	assert.Contains(t, readback(t, fn), "Inter-topic similarity")

	fn = filepath.Join(dir, "prev.html")
	require.NoError(t, TopicPrevalence(fn, []int{3, 1}, []float64{1, 0.4}))
	assert.Contains(t, readback(t, fn), "scaled topic weight")
}
