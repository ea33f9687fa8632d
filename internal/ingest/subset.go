//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package ingest

import (
	"fmt"
	"strconv"

	"github.com/e-gun/MovieSummaryAnalyzer/internal/gen"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/str"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/vv"
)

//
// SUBSETS
//

// SubsetStats - how much of the corpus a genre subset covers
type SubsetStats struct {
	Movies int     // distinct movies carrying one of the genres
	Total  int     // distinct movies
	Ratio  float64 // Movies/Total
	Kept   int     // summaries in the subset
}

// GenreMovies - the set of movie ids that carry any of the genres
func GenreMovies(rels []str.GenreRel, genres []string) map[int]struct{} {
	want := gen.ToSet(genres)
	ids := make(map[int]struct{})
	for _, r := range rels {
		if _, ok := want[r.Genre]; ok {
			ids[r.WikiID] = struct{}{}
		}
	}
	return ids
}

// FictionalSubset - the summaries of movies that carry any of the genres; no movie twice; summary-file order
func FictionalSubset(rels []str.GenreRel, movies []str.Movie, summaries []str.Summary, genres []string) ([]str.Summary, SubsetStats) {
	ids := GenreMovies(rels, genres)

	var kept []str.Summary
	seen := make(map[int]struct{})
	for _, s := range summaries {
		if _, ok := ids[s.WikiID]; !ok {
			continue
		}
		if _, dup := seen[s.WikiID]; dup {
			continue
		}
		seen[s.WikiID] = struct{}{}
		kept = append(kept, s)
	}

	total := make(map[int]struct{}, len(movies))
	for _, m := range movies {
		total[m.WikiID] = struct{}{}
	}

	st := SubsetStats{Movies: len(ids), Total: len(total), Kept: len(kept)}
	if st.Total > 0 {
		st.Ratio = float64(st.Movies) / float64(st.Total)
	}
	return kept, st
}

// WithinYears - summaries whose movie came out in (from, to]; to <= 0 means no upper limit; no date means dropped
func WithinYears(summaries []str.Summary, movies []str.Movie, from int, to int) []str.Summary {
	yy := ReleaseYears(movies)
	var kept []str.Summary
	for _, s := range summaries {
		y, ok := yy[s.WikiID]
		if !ok || y <= from {
			continue
		}
		if to > 0 && y > to {
			continue
		}
		kept = append(kept, s)
	}
	return kept
}

// WriteSummariesCSV - Wikipedia_movie_ID,movie_summary[,preprocessed_summary]; always overwrites
func WriteSummariesCSV(fn string, ss []str.Summary, preprocessed bool) error {
	header := vv.SummaryColumns
	if preprocessed {
		header = vv.PreprocColumns
	}
	rows := make([][]string, 0, len(ss))
	for _, s := range ss {
		r := []string{strconv.Itoa(s.WikiID), s.Text}
		if preprocessed {
			r = append(r, s.Preprocessed)
		}
		rows = append(rows, r)
	}
	return WriteCSVFile(fn, header, rows, true)
}

// ReadSummariesCSV - the inverse of WriteSummariesCSV; the third column is optional
func ReadSummariesCSV(fn string) ([]str.Summary, error) {
	rows, err := readcsv(fn, vv.SummaryColumns)
	if err != nil {
		return nil, err
	}
	ss := make([]str.Summary, 0, len(rows))
	for i, r := range rows {
		id, e := strconv.Atoi(r[0])
		if e != nil {
			return nil, fmt.Errorf("ingest: '%s' row %d: %w", fn, i+1, e)
		}
		s := str.Summary{WikiID: id, Text: r[1]}
		if len(r) > 2 {
			s.Preprocessed = r[2]
		}
		ss = append(ss, s)
	}
	return ss, nil
}
