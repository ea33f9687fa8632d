//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/e-gun/MovieSummaryAnalyzer/internal/mm"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/str"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/vv"
	"gopkg.in/yaml.v3"
)

var (
	Config = BuildDefaultConfig()
	Msg    = mm.NewMessageMaker(vv.MYNAME, vv.SHORTNAME, vv.VERSION, vv.DEFAULTGOLOGLEVEL)
)

// ErrNoConfig - none of the places we look for a config file had one
var ErrNoConfig = errors.New("lnch: no configuration file found")

// FindConfigFile - the first of "./msa-conf.yaml" and "~/.config/msa-conf.yaml" that exists
func FindConfigFile() (string, error) {
	cand := []string{filepath.Join(vv.CONFIGLOCATION, vv.CONFIGBASIC)}
	if h, e := os.UserHomeDir(); e == nil {
		cand = append(cand, fmt.Sprintf(vv.CONFIGALTAPTH, h)+vv.CONFIGBASIC)
	}
	for _, c := range cand {
		if _, e := os.Stat(c); e == nil {
			return c, nil
		}
	}
	return "", ErrNoConfig
}

// ConfigAtLaunch - defaults overlaid by the yaml file at cf (or the first one FindConfigFile() turns up)
func ConfigAtLaunch(cf string) (*str.CurrentConfiguration, string, error) {
	const (
		FAIL1 = "could not parse '%s': %w"
		FAIL2 = "Refusing to set a workercount greater than NumCPU: %d > %d ---> setting workercount value to NumCPU: %d"
	)

	if cf == "" {
		f, err := FindConfigFile()
		if err != nil {
			return BuildDefaultConfig(), "", nil
		}
		cf = f
	}

	c, err := LoadConfigFile(cf)
	if err != nil {
		return nil, cf, fmt.Errorf(FAIL1, cf, err)
	}

	if c.WorkerCount > runtime.NumCPU() {
		Msg.CRIT(fmt.Sprintf(FAIL2, c.WorkerCount, runtime.NumCPU(), runtime.NumCPU()))
		c.WorkerCount = runtime.NumCPU()
	}

	return c, cf, nil
}

// LoadConfigFile - read a yaml config; keys the file omits keep their default values
func LoadConfigFile(fn string) (*str.CurrentConfiguration, error) {
	data, err := os.ReadFile(fn)
	if err != nil {
		return nil, err
	}

	c := BuildDefaultConfig()
	if err = yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	fixzeroes(c)
	return c, nil
}

// WriteDefaultConfig - write BuildDefaultConfig() to fn; will not clobber an existing file
func WriteDefaultConfig(fn string) error {
	if _, err := os.Stat(fn); err == nil {
		return fmt.Errorf("lnch: refusing to overwrite '%s'", fn)
	}

	out, err := yaml.Marshal(BuildDefaultConfig())
	if err != nil {
		return err
	}

	if d := filepath.Dir(fn); d != "" {
		if err = os.MkdirAll(d, vv.DIRPERMS); err != nil {
			return err
		}
	}
	return os.WriteFile(fn, out, vv.WRITEPERMS)
}

// BuildDefaultConfig - return a CurrentConfiguration filled out with various default values
func BuildDefaultConfig() *str.CurrentConfiguration {
	var c str.CurrentConfiguration
	c.BlackAndWhite = vv.BLACKANDWHITE
	c.DataFolder = vv.DEFAULTDATAFOLDER
	c.OutFolder = vv.DEFAULTOUTFOLDER
	c.Files = str.CorpusFiles{
		Movies:     vv.MOVIEFILE,
		Characters: vv.CHARACTERFILE,
		Summaries:  vv.SUMMARIESFILE,
		NameClust:  vv.NAMECLUSTFILE,
		Tropes:     vv.TVTROPESFILE,
	}
	c.Fictional = append([]string{}, vv.FICTIONALGENRES...)
	c.LDA = str.LDAConfig{
		Topics:         vv.LDATOPICS,
		Alpha:          vv.LDAALPHA,
		Eta:            vv.LDAETA,
		Iterations:     vv.LDAITER,
		XformPasses:    vv.LDAXFORMPASSES,
		BurnInPasses:   vv.LDABURNINPASSES,
		ChangeEvalFrq:  vv.LDACHGEVALFRQ,
		PerplexEvalFrq: vv.LDAPERPEVALFRQ,
		PerplexTol:     vv.LDAPERPTOL,
		Seed:           vv.LDASEED,
		TopWords:       vv.LDATOPWORDS,
		TopDocs:        vv.LDATOPDOCS,
	}
	c.Vectoriser = str.VectConfig{
		MaxFeatures: 0,
		MinDF:       vv.VECMINDF,
		MaxDF:       vv.VECMAXDF,
		NGramMax:    vv.VECNGRAMMAX,
		Binary:      vv.VECBINARY,
		Norm:        false,
		IDF:         false,
		Sublinear:   false,
	}
	c.W2V = str.W2VConfig{
		Enabled:   true,
		Dim:       vv.W2VDIM,
		Iter:      vv.W2VITER,
		Window:    vv.W2VWINDOW,
		MinCount:  vv.W2VMINCOUNT,
		Neighbors: vv.W2VNEIGHBORS,
	}
	c.LogFile = ""
	c.LogLevel = vv.DEFAULTGOLOGLEVEL
	c.MinSummaries = vv.MINSUMMARIES
	c.ProfileCPU = false
	c.StopFile = ""
	c.WorkerCount = runtime.NumCPU()
	c.Periods = str.PeriodsConfig{}
	return &c
}

// fixzeroes - an old or hand-edited config might zero out things that must not be zero
func fixzeroes(c *str.CurrentConfiguration) {
	d := BuildDefaultConfig()
	if c.LDA.Topics <= 0 {
		c.LDA.Topics = d.LDA.Topics
	}
	if c.LDA.Topics > vv.LDAMAXTOPICS {
		c.LDA.Topics = vv.LDAMAXTOPICS
	}
	if c.LDA.Iterations <= 0 {
		c.LDA.Iterations = d.LDA.Iterations
	}
	if c.LDA.TopWords <= 0 {
		c.LDA.TopWords = d.LDA.TopWords
	}
	if c.LDA.TopDocs <= 0 {
		c.LDA.TopDocs = d.LDA.TopDocs
	}
	if c.Vectoriser.NGramMax <= 0 {
		c.Vectoriser.NGramMax = 1
	}
	if c.Vectoriser.MaxDF <= 0 || c.Vectoriser.MaxDF > 1 {
		c.Vectoriser.MaxDF = 1
	}
	if c.WorkerCount <= 0 {
		c.WorkerCount = d.WorkerCount
	}
	if c.MinSummaries < 0 {
		c.MinSummaries = 0
	}
}
