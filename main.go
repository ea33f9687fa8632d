//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/e-gun/MovieSummaryAnalyzer/internal/lnch"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/vv"
	"github.com/google/uuid"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

// these next variables should be injected at build time: 'go build -ldflags "-X main.GitCommit=$GIT_COMMIT"', etc

var GitCommit string
var VersSuppl string
var BuildDate string

var Msg = lnch.Msg

var (
	configfile string
	loglevel   int
	blackwhite bool
	workers    int
	profilecpu bool
	logfile    string
	writedef   bool
	datafolder string
	outfolder  string
	overwrite  bool

	profiler interface{ Stop() }
)

var rootCmd = &cobra.Command{
	Use:   "msa",
	Short: "Movie Summary Analyzer: topics, sentiment and genres of the CMU Movie Summary Corpus",
	Long: `msa works through the CMU Movie Summary Corpus in stages:

  corpus      load all five corpus files and report what they hold
  genres      flatten the movie -> genre mapping into a table
  subset      keep the summaries of the fictional genres (and optionally a span of years)
  preprocess  lemmatise the subset, dropping stopwords and proper nouns
  topics      vectorise, fit LDA, score the topics and chart them
  sentiment   score every summary and chart sentiment and length per release period
  classify    label the distinct genres by hand

Each stage reads from the data folder or from what the previous stage left in the output folder.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: launch,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
		}
		Msg.Sync()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configfile, "cf", "", "configuration file (default: ./"+vv.CONFIGBASIC+" or ~/.config/"+vv.CONFIGBASIC+")")
	pf.IntVar(&loglevel, "gl", vv.DEFAULTGOLOGLEVEL, "log level (0-5)")
	pf.BoolVar(&blackwhite, "bw", false, "no colors in the terminal output")
	pf.IntVar(&workers, "wc", 0, "number of workers (default: NumCPU)")
	pf.BoolVar(&profilecpu, "pc", false, "write a CPU profile")
	pf.StringVar(&logfile, "lf", "", "also write a json log to this file")
	pf.BoolVar(&writedef, "wd", false, "write the default configuration file if none exists")
	pf.StringVar(&datafolder, "df", "", "folder holding the corpus files")
	pf.StringVar(&outfolder, "of", "", "folder for the csv and html output")
	pf.BoolVar(&overwrite, "ow", false, "overwrite existing tables")

	rootCmd.AddCommand(corpusCmd, genresCmd, subsetCmd, preprocessCmd, topicsCmd, sentimentCmd, classifyCmd, versionCmd)
}

func main() {
	lnch.GitCommit = GitCommit
	lnch.VersSuppl = VersSuppl
	lnch.BuildDate = BuildDate

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	c, err := rootCmd.ExecuteContextC(ctx)
	stop()
	switch {
	case err == nil:
	case c != nil && c != rootCmd:
		Msg.EF(err, c.Name())
	default:
		Msg.EC(err)
	}
}

// launch - config file, then flags; then the log file, the profiler and the output folder
func launch(cmd *cobra.Command, args []string) error {
	const (
		MSG1 = "read configuration from '%s'"
		MSG2 = "wrote default configuration to '%s'"
		MSG3 = "run %s"
	)

	// [a] the config file
	c, cf, err := lnch.ConfigAtLaunch(configfile)
	if err != nil {
		return err
	}
	lnch.Config = c

	if cf != "" {
		Msg.FYI(fmt.Sprintf(MSG1, cf))
	} else if writedef {
		h, e := os.UserHomeDir()
		if e != nil {
			return e
		}
		fn := fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGBASIC
		if e = lnch.WriteDefaultConfig(fn); e != nil {
			return e
		}
		Msg.NOTE(fmt.Sprintf(MSG2, fn))
	}

	// [b] flags beat the file
	fl := cmd.Flags()
	if fl.Changed("gl") {
		c.LogLevel = loglevel
	}
	if fl.Changed("bw") {
		c.BlackAndWhite = blackwhite
	}
	if fl.Changed("wc") && workers > 0 {
		c.WorkerCount = workers
	}
	if fl.Changed("pc") {
		c.ProfileCPU = profilecpu
	}
	if fl.Changed("lf") {
		c.LogFile = logfile
	}
	if fl.Changed("df") {
		c.DataFolder = datafolder
	}
	if fl.Changed("of") {
		c.OutFolder = outfolder
	}
	lnch.UpdateMessageMakerWithConfig(Msg)

	// [c] the json log
	runid := uuid.New().String()
	if err = lnch.AttachLogFile(Msg, c.LogFile, runid); err != nil {
		return err
	}
	Msg.TMI(fmt.Sprintf(MSG3, runid))

	// [d] the output folder also receives the profile
	if err = os.MkdirAll(c.OutFolder, vv.DIRPERMS); err != nil {
		return err
	}
	if c.ProfileCPU {
		profiler = profile.Start(profile.CPUProfile, profile.ProfilePath(c.OutFolder), profile.Quiet)
	}
	return nil
}

// outpath - fn inside the output folder
func outpath(fn string) string {
	return filepath.Join(lnch.Config.OutFolder, fn)
}

// datapath - fn inside the data folder
func datapath(fn string) string {
	return filepath.Join(lnch.Config.DataFolder, fn)
}
