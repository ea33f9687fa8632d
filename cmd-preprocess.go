//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/e-gun/MovieSummaryAnalyzer/internal/ingest"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/lnch"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/vec"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/vv"
	"github.com/spf13/cobra"
)

var (
	preprocin    string
	nonouns      bool
	namesonly    bool
	writestops   bool
	stopfileflag string
)

var preprocessCmd = &cobra.Command{
	Use:   "preprocess",
	Short: "Lemmatise the subset into " + vv.PREPROCCSV,
	Long: `Every summary becomes the space-joined lemmata of its alphabetic tokens that are neither
stopwords nor proper nouns. With --nonouns common nouns are dropped as well. With --names
the proper nouns are the only thing removed and the words are not lemmatised.`,
	Args: cobra.NoArgs,
	RunE: runpreprocess,
}

func init() {
	preprocessCmd.Flags().StringVar(&preprocin, "in", "", "summaries table to read (default: "+vv.SUBSETCSV+" in the output folder)")
	preprocessCmd.Flags().BoolVar(&nonouns, "nonouns", false, "drop nouns too")
	preprocessCmd.Flags().BoolVar(&namesonly, "names", false, "only strip the proper nouns")
	preprocessCmd.Flags().BoolVar(&writestops, "ws", false, "write the default stopword list to "+vv.CONFIGSTOPS+" in the output folder and stop")
	preprocessCmd.Flags().StringVar(&stopfileflag, "stops", "", "yaml stopword list to use instead of the default")
}

func runpreprocess(cmd *cobra.Command, args []string) error {
	const (
		MSG1 = "wrote the default stopwords to '%s'"
		MSG2 = "preprocessing %d summaries with %d workers"
	)
	start := time.Now()
	cfg := lnch.Config

	if writestops {
		fn := outpath(vv.CONFIGSTOPS)
		if err := vec.WriteStopFile(fn); err != nil {
			return err
		}
		Msg.NOTE(fmt.Sprintf(MSG1, fn))
		return nil
	}

	if cmd.Flags().Changed("stops") {
		cfg.StopFile = stopfileflag
	}

	in := preprocin
	if in == "" {
		in = outpath(vv.SUBSETCSV)
	}

	ss, err := ingest.ReadSummariesCSV(in)
	if err != nil {
		return err
	}

	stops, err := vec.ReadStopFile(cfg.StopFile)
	if err != nil {
		return err
	}

	p, err := vec.NewPreprocessor(stops)
	if err != nil {
		return err
	}

	Msg.FYI(fmt.Sprintf(MSG2, len(ss), cfg.WorkerCount))

	docs := make([]string, len(ss))
	for i := range ss {
		docs[i] = ss[i].Text
	}

	var pp []string
	switch {
	case namesonly:
		pp = make([]string, len(docs))
		for i := range docs {
			if err = cmd.Context().Err(); err != nil {
				return err
			}
			if pp[i], err = vec.FilterNames(docs[i]); err != nil {
				return err
			}
		}
	case nonouns:
		pp = make([]string, len(docs))
		for i := range docs {
			if err = cmd.Context().Err(); err != nil {
				return err
			}
			tt, e := p.CustomTokens(docs[i])
			if e != nil {
				return e
			}
			pp[i] = strings.Join(tt, " ")
		}
	default:
		pp, err = p.PreprocessDocs(cmd.Context(), docs, cfg.WorkerCount)
		if err != nil {
			return err
		}
	}

	for i := range ss {
		ss[i].Preprocessed = pp[i]
	}

	fn := outpath(vv.PREPROCCSV)
	if err = ingest.WriteSummariesCSV(fn, ss, true); err != nil {
		return err
	}

	Msg.Timer("P", "wrote "+fn, start, start)
	return nil
}
