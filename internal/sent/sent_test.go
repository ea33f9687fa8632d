//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package sent

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/e-gun/MovieSummaryAnalyzer/internal/ingest"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/str"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/vv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	happy := Score("They are happy.")

	assert.Equal(t, 0.0, Score(""))
	assert.Equal(t, 0.0, Score("   "))
	assert.Equal(t, 0.0, Score("The ship lands on the moon."))
	assert.Greater(t, happy, 0.0)
	assert.Less(t, Score("They are not happy."), 0.0)
	assert.Less(t, Score("They aren't happy."), 0.0)
	assert.Greater(t, Score("They are very happy."), happy)
	assert.Less(t, Score("He was sad."), 0.0)
	assert.Greater(t, Score("It was sad but the ending was wonderful."), 0.0)
}

func TestScoreBounds(t *testing.T) {
	s := strings.Repeat("hate ", 200)
	assert.GreaterOrEqual(t, Score(s), -1.0)
	assert.Less(t, Score(s), -0.99)
	s = strings.Repeat("love ", 200)
	assert.LessOrEqual(t, Score(s), 1.0)
	assert.Greater(t, Score(s), 0.99)
}

func TestMeanScore(t *testing.T) {
	assert.Equal(t, 0.0, MeanScore(nil))
	ss := []string{"They are happy.", "He was sad."}
	assert.InDelta(t, (Score(ss[0])+Score(ss[1]))/2, MeanScore(ss), 1e-12)
}

func TestSentences(t *testing.T) {
	assert.Nil(t, Sentences("   "))
	ss := Sentences("The crew wakes. They find the ship adrift! Nobody knows why.")
	assert.Len(t, ss, 3)
	assert.Equal(t, "The crew wakes.", ss[0])

	assert.Equal(t, []string{"One.", "Two?", "Three"}, splitonpunct("One. Two? Three"))
}

func recs(pairs ...[2]int) []Record {
	out := make([]Record, len(pairs))
	for i, p := range pairs {
		out[i] = Record{MovieID: i + 1, Year: p[0], NSentences: p[1], Sentiment: float64(p[1]) / 10}
	}
	return out
}

func TestSplitIntoPeriods(t *testing.T) {
	rr := recs([2]int{1950, 1}, [2]int{1951, 2}, [2]int{2023, 3}, [2]int{2024, 4}, [2]int{0, 5}, [2]int{2005, 6})
	pp := SplitIntoPeriods(rr)
	require.Len(t, pp, len(vv.TimePeriodLabels))

	assert.Len(t, pp[0], 1) // 1950 belongs to "before 1950"
	assert.Len(t, pp[1], 1)
	assert.Len(t, pp[6], 1) // 2005 closes 2000-2005
	assert.Len(t, pp[8], 1) // 2023 only; 2024 falls off the end
	assert.Equal(t, []int{1, 1, 0, 0, 0, 0, 1, 0, 1}, PeriodCounts(rr))
}

func TestPeriodMeans(t *testing.T) {
	rr := recs([2]int{1940, 2}, [2]int{1945, 4}, [2]int{1955, 1})
	mm := PeriodMeans(rr)
	assert.InDelta(t, 0.3, mm[0], 1e-9)
	assert.InDelta(t, 0.1, mm[1], 1e-9)
	assert.True(t, math.IsNaN(mm[2]))
}

func TestLengths(t *testing.T) {
	rr := recs([2]int{1940, 1}, [2]int{1940, 1}, [2]int{1940, 19}, [2]int{1940, 20}, [2]int{1990, 150}, [2]int{1990, 0})

	cc := LengthCounts(rr)
	require.Len(t, cc, vv.MAXSENTLEN-1)
	assert.Equal(t, 2, cc[0])
	assert.Equal(t, 1, cc[18])
	assert.Equal(t, 1, cc[19])

	pr := LengthProportions(rr)
	assert.InDelta(t, 2.0/6.0, pr[0], 1e-9)

	assert.InDelta(t, 50.0, ShortShare(rr), 1e-9)
	assert.Equal(t, 0.0, ShortShare(nil))

	per := ShortSharePerPeriod(rr)
	assert.InDelta(t, 75.0, per[0], 1e-9)
	assert.InDelta(t, 0.0, per[5], 1e-9)

	lp := LengthProportionsPerPeriod(rr)
	assert.InDelta(t, 0.5, lp[0][0], 1e-9)
	assert.Equal(t, 0.0, lp[1][0])
}

func TestAnnotateAndWrite(t *testing.T) {
	movies := []str.Movie{
		{WikiID: 1, Release: ingest.ParseDate("1977-05-25")},
		{WikiID: 2},
	}
	summaries := []str.Summary{
		{WikiID: 1, Text: "The rebels win. They celebrate."},
		{WikiID: 2, Text: "A planet is lost in the war."},
	}

	rr, err := Annotate(context.Background(), summaries, movies, 2)
	require.NoError(t, err)
	require.Len(t, rr, 2)
	assert.Equal(t, 1977, rr[0].Year)
	assert.Equal(t, 2, rr[0].NSentences)
	assert.Greater(t, rr[0].Sentiment, 0.0)
	assert.Equal(t, 0, rr[1].Year)
	assert.Less(t, rr[1].Sentiment, 0.0)

	fn := filepath.Join(t.TempDir(), "s.csv")
	require.NoError(t, WriteSentimentCSV(fn, rr, false))
	assert.ErrorIs(t, WriteSentimentCSV(fn, rr, false), ingest.ErrExists)

	b, err := os.ReadFile(fn)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Join(vv.SentimentColumns, ","), lines[0])
	assert.True(t, strings.HasPrefix(lines[2], "2,,1,"))

	only := Only(rr, map[int]struct{}{2: {}})
	require.Len(t, only, 1)
	assert.Equal(t, 2, only[0].MovieID)

	_, err = Annotate(canceled(), summaries, movies, 1)
	assert.Error(t, err)
}

func canceled() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}
