//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package ingest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/e-gun/MovieSummaryAnalyzer/internal/str"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/vv"
)

//
// TAB SEPARATED CORPUS FILES
//

// the corpus files are unquoted: a summary can contain '"' and csv.Reader with LazyQuotes still mangles those lines

// scantsv - feed every line of r to fn as fields; lines with fewer than mincols fields are skipped and counted
func scantsv(r io.Reader, mincols int, maxsplit int, fn func(fields []string) bool) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), vv.MAXLINEBYTES)

	skipped := 0
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		var ff []string
		if maxsplit > 0 {
			ff = strings.SplitN(line, "\t", maxsplit)
		} else {
			ff = strings.Split(line, "\t")
		}
		if len(ff) < mincols {
			skipped++
			continue
		}
		if !fn(ff) {
			skipped++
		}
	}
	return skipped, sc.Err()
}

// readtsv - open fn and scantsv() it
func readtsv(fn string, mincols int, maxsplit int, rowfnc func(fields []string) bool) error {
	const (
		MSG1 = "skipped %d malformed lines in '%s'"
	)
	f, err := os.Open(fn)
	if err != nil {
		return fmt.Errorf("ingest: %w", err)
	}
	defer f.Close()

	skipped, err := scantsv(f, mincols, maxsplit, rowfnc)
	if err != nil {
		return fmt.Errorf("ingest: reading '%s': %w", fn, err)
	}
	if skipped > 0 {
		Msg.WARN(fmt.Sprintf(MSG1, skipped, fn))
	}
	return nil
}

// ParseDate - "1987-05-22", "1987-05" and "1987" are all fine; anything else is missing
func ParseDate(s string) str.NullDate {
	s = strings.TrimSpace(s)
	if s == "" {
		return str.NullDate{}
	}
	for _, layout := range []string{"2006-01-02", "2006-01", "2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return str.NullDate{T: t, Valid: true}
		}
	}
	return str.NullDate{}
}

// ParseFloat - blank and unparseable become missing
func ParseFloat(s string) str.NullFloat {
	s = strings.TrimSpace(s)
	if s == "" {
		return str.NullFloat{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return str.NullFloat{}
	}
	return str.NullFloat{V: v, Valid: true}
}
