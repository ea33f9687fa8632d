//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"

	"github.com/e-gun/MovieSummaryAnalyzer/internal/ident"
	"github.com/spf13/cobra"
)

var (
	classifydir string
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Label the distinct genres by hand: -1, 0, 1; 2 corrects the previous label; Q stops",
	Long: `classify walks through the distinct genres and asks for a label for each:

  -1, 0, 1   the label
  2          correct the label of the previous genre, then label this one
  Q          stop; the labels given so far are saved

An earlier classification file can be named to pick up where it left off.
The labels are written to <name>_genres.csv.`,
	Args: cobra.NoArgs,
	RunE: runclassify,
}

func init() {
	classifyCmd.Flags().StringVar(&classifydir, "dir", ".", "where to write <name>_genres.csv")
}

func runclassify(cmd *cobra.Command, args []string) error {
	const (
		MSG1 = "%d genres labelled"
	)
	s := ident.NewSession(cmd.InOrStdin(), cmd.OutOrStdout())
	if _, err := s.Run(classifydir); err != nil {
		return err
	}
	Msg.FYI(fmt.Sprintf(MSG1, len(s.Labels)))
	return nil
}
