//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/e-gun/MovieSummaryAnalyzer/internal/ident"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/ingest"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/lnch"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/mm"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/vv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	moviesfixture = "1\t/m/01\tA\t1977-05-25\t\t121.0\t{}\t{}\t{\"/m/06n90\": \"Science Fiction\", \"/m/07s9rl0\": \"Drama\"}\n" +
		"2\t/m/02\tB\t1990\t\t\t{}\t{}\t{\"/m/07s9rl0\": \"Drama\"}\n" +
		"3\t/m/03\tC\t2004-03\t\t\t{}\t{}\t{\"/m/01hmnh\": \"Fantasy\"}\n" +
		"4\t/m/04\tD\t\t\t\t{}\t{}\tnot a mapping\n"
	summariesfixture = "1\tA ship leaves.\n2\tA family argues.\n3\tA wizard wakes.\n4\tNobody knows.\n"
)

// resetflags - flag values live in package vars and survive Execute(); put them back to their defaults
func resetflags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			var dv []string
			if d := strings.Trim(f.DefValue, "[]"); d != "" {
				dv = strings.Split(d, ",")
			}
			_ = sv.Replace(dv)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetflags(sub)
	}
}

func execute(t *testing.T, args ...string) {
	resetflags(rootCmd)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
}

func TestGenresThenSubset(t *testing.T) {
	data := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.WriteFile(filepath.Join(data, vv.MOVIEFILE), []byte(moviesfixture), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(data, vv.SUMMARIESFILE), []byte(summariesfixture), 0644))

	execute(t, "genres", "--df", data, "--of", out, "--gl", "0")
	assert.Equal(t, out, lnch.Config.OutFolder)
	assert.Equal(t, filepath.Join(out, vv.GENRECSV), outpath(vv.GENRECSV))

	rels, err := ingest.ReadGenreCSV(filepath.Join(out, vv.GENRECSV))
	require.NoError(t, err)
	assert.Len(t, rels, 4)

	// a second run leaves the table alone
	execute(t, "genres", "--df", data, "--of", out, "--gl", "0")

	execute(t, "subset", "--df", data, "--of", out, "--gl", "0")
	ss, err := ingest.ReadSummariesCSV(filepath.Join(out, vv.SUBSETCSV))
	require.NoError(t, err)
	require.Len(t, ss, 2)
	assert.Equal(t, 1, ss[0].WikiID)
	assert.Equal(t, 3, ss[1].WikiID)

	execute(t, "subset", "--df", data, "--of", out, "--gl", "0", "--from", "2000")
	ss, err = ingest.ReadSummariesCSV(filepath.Join(out, vv.SUBSETCSV))
	require.NoError(t, err)
	require.Len(t, ss, 1)
	assert.Equal(t, 3, ss[0].WikiID)
}

func TestGenreRelationsWarnsAboutMalformedMaps(t *testing.T) {
	lnch.Config = lnch.BuildDefaultConfig()
	lnch.Config.OutFolder = t.TempDir()

	var term bytes.Buffer
	out, lvl, bw := Msg.Out, Msg.LLvl, Msg.BW
	Msg.Out, Msg.LLvl, Msg.BW = &term, mm.MSGWARN, true
	t.Cleanup(func() {
		Msg.Out, Msg.LLvl, Msg.BW = out, lvl, bw
	})

	movies, err := ingest.LoadMovies(writefile(t, vv.MOVIEFILE, moviesfixture))
	require.NoError(t, err)

	// no table in the output folder: flatten afresh
	rels, err := genrerelations(movies)
	require.NoError(t, err)
	assert.Len(t, rels, 4)
	assert.Contains(t, term.String(), "1 movies carried a malformed genre mapping")
}

func writefile(t *testing.T, name, body string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(body), 0644))
	return fn
}

// pipelinecorpus - 30 summarised movies, a third of them fantasy and the rest science fiction, plus one drama
func pipelinecorpus(t *testing.T) (string, int) {
	t.Helper()
	const (
		SPACE   = "the crew of the ship fights an alien robot near a distant planet. Zorg fires the laser and the battle is terrible."
		FANTASY = "a brave wizard finds a magic sword in the old castle. the dragon is defeated and the king is happy."
		DRAMA   = "a family argues at dinner."
	)

	var movies, summaries, chars strings.Builder
	n := 30
	for i := 1; i <= n; i++ {
		genre, text := `{"/m/06n90": "Science Fiction"}`, SPACE
		if i%3 == 0 {
			genre, text = `{"/m/01hmnh": "Fantasy"}`, FANTASY
		}
		fmt.Fprintf(&movies, "%d\t/m/%03d\tM%d\t%d-06-01\t\t\t{}\t{}\t%s\n", i, i, i, 1950+2*i, genre)
		fmt.Fprintf(&summaries, "%d\t%s\n", i, text)
		fmt.Fprintf(&chars, "%d\t/m/%03d\t%d\tZorg\t1930\tM\t1.8\t\tJo Doe\t31\t/m/0a\t/m/0b\t/m/0c\n", i, i, 1950+2*i)
	}
	fmt.Fprintf(&movies, "99\t/m/099\tD\t1999\t\t\t{}\t{}\t{\"/m/07s9rl0\": \"Drama\"}\n")
	fmt.Fprintf(&summaries, "99\t%s\n", DRAMA)

	data := t.TempDir()
	for fn, body := range map[string]string{
		vv.MOVIEFILE:     movies.String(),
		vv.SUMMARIESFILE: summaries.String(),
		vv.CHARACTERFILE: chars.String(),
		vv.NAMECLUSTFILE: "Zorg\t/m/0a\n",
		vv.TVTROPESFILE:  "villain\t{\"char\": \"Zorg\"}\n",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(data, fn), []byte(body), 0644))
	}
	return data, n + 1
}

func TestPipeline(t *testing.T) {
	data, nsumm := pipelinecorpus(t)
	out := filepath.Join(t.TempDir(), "out")

	cf := filepath.Join(t.TempDir(), "msa.yaml")
	y := "lda:\n  topics: 2\n  iterations: 10\nvectoriser:\n  mindf: 2\n  maxdf: 0.9\n  ngrammax: 2\n  binary: true\n" +
		"w2v:\n  enabled: true\n  dim: 8\n  iter: 2\n  mincount: 1\nminsummaries: 5\n"
	require.NoError(t, os.WriteFile(cf, []byte(y), 0644))

	common := []string{"--cf", cf, "--df", data, "--of", out, "--gl", "0", "--wc", "1"}
	run := func(args ...string) {
		execute(t, append(args, common...)...)
	}
	exists := func(fn string) {
		_, err := os.Stat(filepath.Join(out, fn))
		assert.NoError(t, err, fn)
	}

	run("corpus")
	assert.Equal(t, 2, lnch.Config.LDA.Topics)

	run("genres")
	run("subset")
	ss, err := ingest.ReadSummariesCSV(filepath.Join(out, vv.SUBSETCSV))
	require.NoError(t, err)
	require.Len(t, ss, 30)

	// names only: the words stay as they are, re-joined token by token
	run("preprocess", "--names")
	ss, err = ingest.ReadSummariesCSV(filepath.Join(out, vv.PREPROCCSV))
	require.NoError(t, err)
	require.Len(t, ss, 30)
	assert.Contains(t, ss[0].Preprocessed, "crew")
	assert.NotEqual(t, ss[0].Text, ss[0].Preprocessed)

	run("preprocess")
	ss, err = ingest.ReadSummariesCSV(filepath.Join(out, vv.PREPROCCSV))
	require.NoError(t, err)
	for _, s := range ss {
		assert.NotEmpty(t, s.Preprocessed)
		assert.Equal(t, strings.ToLower(s.Preprocessed), s.Preprocessed)
	}

	run("topics")
	for _, fn := range []string{vv.TOPWORDSCSV, vv.TOPDOCSCSV, vv.SIMILARITYCSV, vv.COHERENCECSV,
		vv.HEATMAPHTML, vv.TOPWORDSHTML, vv.SIMILARITYHTML, vv.TOPICSHAREHTML} {
		exists(fn)
	}
	first, err := os.ReadFile(filepath.Join(out, vv.TOPWORDSCSV))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(first), "rank,Word_0,Word_1,Weight_0,Weight_1\n"))

	// the seed is fixed, so a second fit writes the same table
	run("topics", "--noembed")
	again, err := os.ReadFile(filepath.Join(out, vv.TOPWORDSCSV))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(again))

	run("sentiment")
	for _, fn := range []string{vv.SENTIMENTCSV, vv.PERIODSENTHTML, vv.PERIODCOUNTHTML, vv.LENGTHPROPHTML,
		vv.LENGTHPERIODHTML, vv.LENGTHCOUNTHTML} {
		exists(fn)
	}
	sc, err := os.ReadFile(filepath.Join(out, vv.SENTIMENTCSV))
	require.NoError(t, err)
	assert.Equal(t, nsumm+1, strings.Count(string(sc), "\n"))

	// classify reads its answers from the command's input
	var term bytes.Buffer
	input := strings.Join([]string{filepath.Join(out, vv.GENRECSV), "", "1", "2", "-1", "0", "1", "ann"}, "\n") + "\n"
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&term)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
	})
	run("classify", "--dir", out)

	assert.Contains(t, term.String(), "3 distinct genres")
	got, err := ident.ReadClassifiedCSV(filepath.Join(out, "ann"+vv.CLASSIFIEDTAIL))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, -1, got[0].Classification)
	assert.Equal(t, 0, got[1].Classification)
	assert.Equal(t, 1, got[2].Classification)
}
