//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package sent

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/e-gun/MovieSummaryAnalyzer/internal/gen"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/ingest"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/lnch"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/str"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/vv"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

var Msg = lnch.Msg

// Record - one summary reduced to what the period statistics need
type Record struct {
	MovieID    int
	Year       int // 0 if the release date is missing
	NSentences int
	Sentiment  float64
}

// Group - a labelled set of records that gets its own line in the charts
type Group struct {
	Label   string
	Records []Record
}

// Annotate - segment and score every summary; workers goroutines work through batches of summaries
func Annotate(ctx context.Context, summaries []str.Summary, movies []str.Movie, workers int) ([]Record, error) {
	const (
		MSG1 = "scored %d summaries (%d without a release year)"
	)
	start := time.Now()

	if workers < 1 {
		workers = 1
	}

	years := ingest.ReleaseYears(movies)
	out := make([]Record, len(summaries))

	idx := make([]int, len(summaries))
	for i := range idx {
		idx[i] = i
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for _, b := range gen.ChunkSlice(idx, vv.PREPROCBATCH) {
		b := b
		eg.Go(func() error {
			for _, i := range b {
				if err := ctx.Err(); err != nil {
					return err
				}
				ss := Sentences(summaries[i].Text)
				out[i] = Record{
					MovieID:    summaries[i].WikiID,
					Year:       years[summaries[i].WikiID],
					NSentences: len(ss),
					Sentiment:  MeanScore(ss),
				}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	undated := 0
	for _, r := range out {
		if r.Year == 0 {
			undated++
		}
	}

	Msg.Timer("S", fmt.Sprintf(MSG1, len(out), undated), start, start)
	return out, nil
}

// MeanScore - the average Score() of the sentences; 0 if there are none
func MeanScore(sentences []string) float64 {
	if len(sentences) == 0 {
		return 0
	}
	sc := make([]float64, len(sentences))
	for i, s := range sentences {
		sc[i] = Score(s)
	}
	return stat.Mean(sc, nil)
}

// WriteSentimentCSV - one row per record; refuses to overwrite an existing file unless overwrite
func WriteSentimentCSV(fn string, recs []Record, overwrite bool) error {
	f, err := ingest.CreateOutput(fn, overwrite)
	if err != nil {
		return err
	}

	rows := make([][]string, len(recs))
	for i, r := range recs {
		yr := ""
		if r.Year != 0 {
			yr = strconv.Itoa(r.Year)
		}
		rows[i] = []string{strconv.Itoa(r.MovieID), yr, strconv.Itoa(r.NSentences),
			strconv.FormatFloat(r.Sentiment, 'f', 6, 64)}
	}

	if err = ingest.WriteCSV(f, vv.SentimentColumns, rows); err != nil {
		_ = f.Close()
		return fmt.Errorf("sent: writing '%s': %w", fn, err)
	}
	return f.Close()
}

// Only - the records whose movie is in the set
func Only(recs []Record, ids map[int]struct{}) []Record {
	var out []Record
	for _, r := range recs {
		if _, ok := ids[r.MovieID]; ok {
			out = append(out, r)
		}
	}
	return out
}
