//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package ingest

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/e-gun/MovieSummaryAnalyzer/internal/str"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/vv"
)

//
// GENRE MAPPING -> GENRE RELATION
//

// ParseGenreMap - {"/m/07s9rl0": "Drama", "/m/01z4y": "Comedy"} -> [{/m/07s9rl0 Drama} {/m/01z4y Comedy}]
func ParseGenreMap(raw string) ([]str.KV, error) {
	// json.Unmarshal into a map would lose the order of the pairs; walk the tokens instead
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	bad := func(why string) error {
		return fmt.Errorf("%w: %s in %q", ErrBadGenreMap, why, raw)
	}

	dec := json.NewDecoder(strings.NewReader(raw))

	t, err := dec.Token()
	if err != nil {
		return nil, bad(err.Error())
	}
	if d, ok := t.(json.Delim); !ok || d != '{' {
		return nil, bad("not an object")
	}

	var kv []str.KV
	for dec.More() {
		kt, e := dec.Token()
		if e != nil {
			return nil, bad(e.Error())
		}
		k, ok := kt.(string)
		if !ok {
			return nil, bad("non-string key")
		}

		vt, e := dec.Token()
		if e != nil {
			return nil, bad(e.Error())
		}
		v, ok := vt.(string)
		if !ok {
			return nil, bad("non-string value")
		}
		kv = append(kv, str.KV{K: k, V: v})
	}

	// the closing '}'
	if _, err = dec.Token(); err != nil {
		return nil, bad(err.Error())
	}
	if _, err = dec.Token(); !errors.Is(err, io.EOF) {
		return nil, bad("trailing data")
	}
	return kv, nil
}

// FlattenGenres - one row per (movie, genre) pair in movie order then mapping order; also returns the malformed count
func FlattenGenres(movies []str.Movie) ([]str.GenreRel, int) {
	const (
		MSG1 = "FlattenGenres(): skipping movie %d: %s"
	)
	var rels []str.GenreRel
	bad := 0
	for _, m := range movies {
		kv, err := ParseGenreMap(m.GenresRaw)
		if err != nil {
			bad++
			Msg.TMI(fmt.Sprintf(MSG1, m.WikiID, err.Error()))
			continue
		}
		for _, p := range kv {
			rels = append(rels, str.GenreRel{WikiID: m.WikiID, GenreID: p.K, Genre: p.V})
		}
	}
	return rels, bad
}

// UniqueGenres - distinct (id, name) pairs in the order they were first seen
func UniqueGenres(rels []str.GenreRel) []str.Genre {
	seen := make(map[str.Genre]struct{})
	var gg []str.Genre
	for _, r := range rels {
		g := str.Genre{ID: r.GenreID, Name: r.Genre}
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		gg = append(gg, g)
	}
	return gg
}

// WriteGenreCSV - Wikipedia_movie_ID,Movie_genre_ID,Movie_genre; ErrExists unless overwrite
func WriteGenreCSV(fn string, rels []str.GenreRel, overwrite bool) error {
	rows := make([][]string, 0, len(rels))
	for _, r := range rels {
		rows = append(rows, []string{strconv.Itoa(r.WikiID), r.GenreID, r.Genre})
	}
	return WriteCSVFile(fn, vv.GenreColumns, rows, overwrite)
}

// ReadGenreCSV - the inverse of WriteGenreCSV
func ReadGenreCSV(fn string) ([]str.GenreRel, error) {
	rows, err := readcsv(fn, vv.GenreColumns)
	if err != nil {
		return nil, err
	}
	rels := make([]str.GenreRel, 0, len(rows))
	for i, r := range rows {
		id, e := strconv.Atoi(r[0])
		if e != nil {
			return nil, fmt.Errorf("ingest: '%s' row %d: %w", fn, i+1, e)
		}
		rels = append(rels, str.GenreRel{WikiID: id, GenreID: r[1], Genre: r[2]})
	}
	return rels, nil
}

//
// CSV ARTIFACTS
//

// CreateOutput - open fn for writing; refuse to clobber it unless overwrite
func CreateOutput(fn string, overwrite bool) (*os.File, error) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	f, err := os.OpenFile(fn, flags, vv.WRITEPERMS)
	if errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("%w: '%s'", ErrExists, fn)
	}
	return f, err
}

// WriteCSV - header plus rows
func WriteCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}

// WriteCSVFile - create fn, write the table, and report a failed close as well
func WriteCSVFile(fn string, header []string, rows [][]string, overwrite bool) error {
	f, err := CreateOutput(fn, overwrite)
	if err != nil {
		return err
	}
	if err = WriteCSV(f, header, rows); err != nil {
		_ = f.Close()
		return fmt.Errorf("ingest: writing '%s': %w", fn, err)
	}
	return f.Close()
}

// readcsv - every row after a header that must start with the expected columns
func readcsv(fn string, expect []string) ([][]string, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	all, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ingest: reading '%s': %w", fn, err)
	}
	if len(all) == 0 || len(all[0]) < len(expect) || !slices.Equal(all[0][:len(expect)], expect) {
		return nil, fmt.Errorf("%w: '%s' wants %v", ErrBadHeader, fn, expect)
	}
	rows := all[1:]
	for i, r := range rows {
		if len(r) < len(expect) {
			return nil, fmt.Errorf("ingest: '%s' row %d has %d fields", fn, i+1, len(r))
		}
	}
	return rows, nil
}
