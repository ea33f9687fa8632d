//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"time"

	"github.com/e-gun/MovieSummaryAnalyzer/internal/ingest"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/lnch"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/vv"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	yearfrom     int
	yearto       int
	subsetgenres []string
)

var subsetCmd = &cobra.Command{
	Use:   "subset",
	Short: "Keep the summaries of the fictional genres in " + vv.SUBSETCSV,
	Args:  cobra.NoArgs,
	RunE:  runsubset,
}

func init() {
	subsetCmd.Flags().IntVar(&yearfrom, "from", 0, "keep movies released after this year")
	subsetCmd.Flags().IntVar(&yearto, "to", 0, "keep movies released up to and including this year (0: no limit)")
	subsetCmd.Flags().StringSliceVar(&subsetgenres, "genre", vv.FICTIONALGENRES, "genres that make up the subset")
}

func runsubset(cmd *cobra.Command, args []string) error {
	const (
		MSG1 = "%d of %d movies (%.2f%%) carry one of %v"
		MSG2 = "%d summaries in the subset"
		MSG3 = "%d summaries released in (%d, %d]"
	)
	start := time.Now()
	cfg := lnch.Config

	if cmd.Flags().Changed("genre") {
		cfg.Fictional = subsetgenres
	}
	if cmd.Flags().Changed("from") {
		cfg.Periods.From = yearfrom
	}
	if cmd.Flags().Changed("to") {
		cfg.Periods.To = yearto
	}

	movies, err := ingest.LoadMovies(datapath(cfg.Files.Movies))
	if err != nil {
		return err
	}
	summaries, err := ingest.LoadSummaries(datapath(cfg.Files.Summaries))
	if err != nil {
		return err
	}
	rels, err := genrerelations(movies)
	if err != nil {
		return err
	}

	pr := message.NewPrinter(language.English)

	ss, st := ingest.FictionalSubset(rels, movies, summaries, cfg.Fictional)
	Msg.NOTE(pr.Sprintf(MSG1, st.Movies, st.Total, 100*st.Ratio, cfg.Fictional))
	Msg.NOTE(pr.Sprintf(MSG2, st.Kept))

	if cfg.Periods.From != 0 || cfg.Periods.To != 0 {
		ss = ingest.WithinYears(ss, movies, cfg.Periods.From, cfg.Periods.To)
		Msg.NOTE(pr.Sprintf(MSG3, len(ss), cfg.Periods.From, cfg.Periods.To))
	}

	fn := outpath(vv.SUBSETCSV)
	if err = ingest.WriteSummariesCSV(fn, ss, false); err != nil {
		return err
	}

	Msg.Timer("F", "wrote "+fn, start, start)
	return nil
}
