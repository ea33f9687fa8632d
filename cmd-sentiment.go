//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/e-gun/MovieSummaryAnalyzer/internal/graph"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/ingest"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/lnch"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/sent"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/vv"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	noshort bool
)

var sentimentCmd = &cobra.Command{
	Use:   "sentiment",
	Short: "Score every summary and chart sentiment and summary length per release period",
	Args:  cobra.NoArgs,
	RunE:  runsentiment,
}

func init() {
	sentimentCmd.Flags().BoolVar(&noshort, "noshort", false, "leave the share of short summaries off the period charts")
}

func runsentiment(cmd *cobra.Command, args []string) error {
	const (
		MSG1 = "%s: %d summaries; %.1f%% short"
		MSG2 = "%s: %s"
		WRN1 = "'%s' exists; not rewriting it (use --ow to replace it)"
	)
	start := time.Now()
	previous := time.Now()
	cfg := lnch.Config

	// [a] score
	movies, err := ingest.LoadMovies(datapath(cfg.Files.Movies))
	if err != nil {
		return err
	}
	summaries, err := ingest.LoadSummaries(datapath(cfg.Files.Summaries))
	if err != nil {
		return err
	}

	recs, err := sent.Annotate(cmd.Context(), summaries, movies, cfg.WorkerCount)
	if err != nil {
		return err
	}

	fn := outpath(vv.SENTIMENTCSV)
	err = sent.WriteSentimentCSV(fn, recs, overwrite)
	if errors.Is(err, ingest.ErrExists) {
		Msg.WARN(fmt.Sprintf(WRN1, fn))
	} else if err != nil {
		return err
	}
	Msg.Timer("S1", "scored the summaries", start, previous)

	// [b] group
	rels, err := genrerelations(movies)
	if err != nil {
		return err
	}
	fictional := sent.Only(recs, ingest.GenreMovies(rels, cfg.Fictional))

	groups := []sent.Group{
		{Label: "all movies", Records: recs},
		{Label: strings.Join(cfg.Fictional, " / "), Records: fictional},
	}

	pr := message.NewPrinter(language.English)
	for _, g := range groups {
		Msg.NOTE(pr.Sprintf(MSG1, g.Label, len(g.Records), sent.ShortShare(g.Records)))
		means := sent.PeriodMeans(g.Records)
		var mm []string
		for i := range means {
			mm = append(mm, fmt.Sprintf("%s=%.3f", vv.TimePeriodLabels[i], means[i]))
		}
		Msg.FYI(fmt.Sprintf(MSG2, g.Label, strings.Join(mm, "; ")))
	}

	// [c] chart
	previous = time.Now()
	withshort := !noshort
	if err = graph.PeriodSentiments(outpath(vv.PERIODSENTHTML), groups, cfg.MinSummaries, withshort); err != nil {
		return err
	}
	if err = graph.SummariesPerPeriod(outpath(vv.PERIODCOUNTHTML), groups, withshort); err != nil {
		return err
	}
	if err = graph.SummaryLengthProportions(outpath(vv.LENGTHPROPHTML), groups); err != nil {
		return err
	}
	if err = graph.SummaryLengthProportionsPerPeriod(outpath(vv.LENGTHPERIODHTML), groups[1]); err != nil {
		return err
	}
	if err = graph.SummaryLengthCount(outpath(vv.LENGTHCOUNTHTML), groups); err != nil {
		return err
	}
	Msg.Timer("S2", "drew the period charts", start, previous)
	return nil
}
