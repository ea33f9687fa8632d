//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/e-gun/MovieSummaryAnalyzer/internal/ingest"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/lnch"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/str"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/vv"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "Flatten the movie -> genre mapping into " + vv.GENRECSV,
	Args:  cobra.NoArgs,
	RunE:  rungenres,
}

func rungenres(cmd *cobra.Command, args []string) error {
	const (
		MSG1 = "%d movie -> genre rows; %d distinct genres"
		WRN1 = "'%s' exists; leaving it alone (use --ow to replace it)"
	)
	start := time.Now()

	mm, err := ingest.LoadMovies(datapath(lnch.Config.Files.Movies))
	if err != nil {
		return err
	}

	rels := flatten(mm)

	pr := message.NewPrinter(language.English)
	Msg.NOTE(pr.Sprintf(MSG1, len(rels), len(ingest.UniqueGenres(rels))))

	fn := outpath(vv.GENRECSV)
	err = ingest.WriteGenreCSV(fn, rels, overwrite)
	if errors.Is(err, ingest.ErrExists) {
		Msg.WARN(fmt.Sprintf(WRN1, fn))
		return nil
	}
	if err != nil {
		return err
	}

	Msg.Timer("G", "wrote "+fn, start, start)
	return nil
}

// genrerelations - the table "msa genres" left behind, or a fresh flattening of the movie metadata
func genrerelations(movies []str.Movie) ([]str.GenreRel, error) {
	const (
		MSG1 = "reading genres from '%s'"
	)
	fn := outpath(vv.GENRECSV)
	if _, err := os.Stat(fn); err == nil {
		Msg.FYI(fmt.Sprintf(MSG1, fn))
		return ingest.ReadGenreCSV(fn)
	}
	return flatten(movies), nil
}

// flatten - ingest.FlattenGenres() with a warning about the movies it had to skip
func flatten(movies []str.Movie) []str.GenreRel {
	const (
		WRN1 = "%d movies carried a malformed genre mapping and contributed no rows"
	)
	rels, bad := ingest.FlattenGenres(movies)
	if bad > 0 {
		Msg.WARN(fmt.Sprintf(WRN1, bad))
	}
	return rels
}
