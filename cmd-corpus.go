//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"time"

	"github.com/e-gun/MovieSummaryAnalyzer/internal/gen"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/ingest"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/lnch"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Load all five corpus files and report what they hold",
	Args:  cobra.NoArgs,
	RunE:  runcorpus,
}

func runcorpus(cmd *cobra.Command, args []string) error {
	const (
		MSG1 = "%d of %d movies have a summary; %d have a release year"
		MSG2 = "%d distinct genres; %d character types among the tropes"
	)
	start := time.Now()

	c, err := ingest.LoadAll(lnch.Config.DataFolder, lnch.Config.Files)
	if err != nil {
		return err
	}

	summarised := make(map[int]struct{}, len(c.Summaries))
	for _, s := range c.Summaries {
		summarised[s.WikiID] = struct{}{}
	}
	withsumm := 0
	for _, m := range c.Movies {
		if _, ok := summarised[m.WikiID]; ok {
			withsumm++
		}
	}

	types := make([]string, len(c.Tropes))
	for i := range c.Tropes {
		types[i] = c.Tropes[i].CharacterType
	}

	pr := message.NewPrinter(language.English)
	Msg.MAND(pr.Sprintf(MSG1, withsumm, len(c.Movies), len(ingest.ReleaseYears(c.Movies))))
	Msg.MAND(pr.Sprintf(MSG2, len(ingest.UniqueGenres(flatten(c.Movies))), len(gen.ToSet(types))))

	Msg.Timer("C", "surveyed the corpus", start, start)
	return nil
}
