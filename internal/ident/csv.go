//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package ident

import (
	"encoding/csv"
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/e-gun/MovieSummaryAnalyzer/internal/ingest"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/str"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/vv"
)

// WriteClassifiedCSV - index,Movie_genre,Classification; an operator's own file is rewritten with the merged labels
func WriteClassifiedCSV(fn string, cc []str.Classified) error {
	f, err := ingest.CreateOutput(fn, true)
	if err != nil {
		return err
	}

	rows := make([][]string, len(cc))
	for i, c := range cc {
		rows[i] = []string{strconv.Itoa(i), c.Genre, strconv.Itoa(c.Classification)}
	}

	if err = ingest.WriteCSV(f, vv.ClassifiedColumns, rows); err != nil {
		_ = f.Close()
		return fmt.Errorf("ident: writing '%s': %w", fn, err)
	}
	return f.Close()
}

// ReadClassifiedCSV - columns are found by name; the index column may be unnamed
func ReadClassifiedCSV(fn string) ([]str.Classified, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, fmt.Errorf("ident: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	all, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ident: reading '%s': %w", fn, err)
	}
	if len(all) == 0 {
		return nil, nil
	}

	gc := slices.Index(all[0], vv.ClassifiedColumns[1])
	cc := slices.Index(all[0], vv.ClassifiedColumns[2])
	if gc < 0 || cc < 0 {
		return nil, fmt.Errorf("%w: '%s' wants %v", ingest.ErrBadHeader, fn, vv.ClassifiedColumns[1:])
	}

	out := make([]str.Classified, 0, len(all)-1)
	for i, r := range all[1:] {
		if len(r) <= gc || len(r) <= cc {
			return nil, fmt.Errorf("ident: '%s' row %d is short", fn, i+1)
		}
		v, e := strconv.Atoi(r[cc])
		if e != nil {
			return nil, fmt.Errorf("ident: '%s' row %d: %w", fn, i+1, e)
		}
		out = append(out, str.Classified{Genre: r[gc], Classification: v})
	}
	return out, nil
}
