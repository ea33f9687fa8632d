//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package ident

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/e-gun/MovieSummaryAnalyzer/internal/ingest"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/str"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/vv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var threegenres = []str.Genre{{ID: "/m/a", Name: "Drama"}, {ID: "/m/b", Name: "Fantasy"}, {ID: "/m/c", Name: "Science Fiction"}}

func session(input string) (*Session, *bytes.Buffer) {
	var out bytes.Buffer
	s := NewSession(strings.NewReader(input), &out)
	s.Genres = threegenres
	return s, &out
}

func TestClassifyAll(t *testing.T) {
	s, _ := session("-1\n0\n1\n")
	require.NoError(t, s.Classify())
	assert.Equal(t, []str.Classified{{Genre: "Drama", Classification: -1}, {Genre: "Fantasy", Classification: 0}, {Genre: "Science Fiction", Classification: 1}}, s.Labels)
}

func TestClassifyRejectsJunk(t *testing.T) {
	s, out := session("maybe\n3\n\n1\n1\n1\n")
	require.NoError(t, s.Classify())
	assert.Len(t, s.Labels, 3)
	assert.Equal(t, 3, strings.Count(out.String(), "Invalid input. Please enter"))
}

func TestClassifyCorrect(t *testing.T) {
	// label Drama 1, then fix it to -1 (after one bad correction), then carry on
	s, out := session("1\n2\n7\n-1\n0\n1\n")
	require.NoError(t, s.Classify())
	assert.Equal(t, []str.Classified{{Genre: "Drama", Classification: -1}, {Genre: "Fantasy", Classification: 0}, {Genre: "Science Fiction", Classification: 1}}, s.Labels)
	assert.Contains(t, out.String(), "The correction must be")
	assert.Equal(t, 2, strings.Count(out.String(), "Input for genre Fantasy"))
}

func TestClassifyCorrectWithNothingBefore(t *testing.T) {
	s, out := session("2\n0\n0\n0\n")
	require.NoError(t, s.Classify())
	assert.Len(t, s.Labels, 3)
	assert.Contains(t, out.String(), "no previous genre")
}

func TestClassifyQuit(t *testing.T) {
	s, _ := session("1\nQ\n0\n")
	assert.ErrorIs(t, s.Classify(), ErrQuit)
	assert.Equal(t, []str.Classified{{Genre: "Drama", Classification: 1}}, s.Labels)

	s, _ = session("1\n")
	assert.ErrorIs(t, s.Classify(), ErrQuit)
	assert.Len(t, s.Labels, 1)
}

func TestClassifyQuitDuringCorrection(t *testing.T) {
	s, out := session("1\n2\nx\nQ\n0\n")
	assert.ErrorIs(t, s.Classify(), ErrQuit)
	assert.Equal(t, []str.Classified{{Genre: "Drama", Classification: 1}}, s.Labels)
	assert.Equal(t, 1, strings.Count(out.String(), "The correction must be"))
}

func TestClassifyResume(t *testing.T) {
	s, out := session("2\n1\n0\n")
	s.Labels = []str.Classified{{Genre: "Drama", Classification: 0}, {Genre: "Fantasy", Classification: 0}}
	require.NoError(t, s.Classify())
	// the correction reaches back into the prior labels
	assert.Equal(t, []str.Classified{{Genre: "Drama", Classification: 0}, {Genre: "Fantasy", Classification: 1}, {Genre: "Science Fiction", Classification: 0}}, s.Labels)
	assert.NotContains(t, out.String(), "Input for genre Drama")
	assert.Contains(t, out.String(), "(3/3)")
}

func TestClassifiedCSV(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "ann"+vv.CLASSIFIEDTAIL)
	cc := []str.Classified{{Genre: "Drama", Classification: -1}, {Genre: "Space opera", Classification: 1}}
	require.NoError(t, WriteClassifiedCSV(fn, cc))

	b, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Equal(t, "index,Movie_genre,Classification\n0,Drama,-1\n1,Space opera,1\n", string(b))

	got, err := ReadClassifiedCSV(fn)
	require.NoError(t, err)
	assert.Equal(t, cc, got)

	// pandas leaves the index column unnamed
	pd := filepath.Join(dir, "pd.csv")
	require.NoError(t, os.WriteFile(pd, []byte(",Movie_genre,Classification\n0,Drama,1\n"), 0644))
	got, err = ReadClassifiedCSV(pd)
	require.NoError(t, err)
	assert.Equal(t, []str.Classified{{Genre: "Drama", Classification: 1}}, got)

	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("a,b\n1,2\n"), 0644))
	_, err = ReadClassifiedCSV(bad)
	assert.ErrorIs(t, err, ingest.ErrBadHeader)
}

func TestRunFromGenreTable(t *testing.T) {
	dir := t.TempDir()
	gt := filepath.Join(dir, "genres.csv")
	rels := []str.GenreRel{
		{WikiID: 1, GenreID: "/m/a", Genre: "Drama"},
		{WikiID: 2, GenreID: "/m/a", Genre: "Drama"},
		{WikiID: 2, GenreID: "/m/b", Genre: "Fantasy"},
	}
	require.NoError(t, ingest.WriteGenreCSV(gt, rels, false))

	prior := filepath.Join(dir, "prior.csv")
	require.NoError(t, WriteClassifiedCSV(prior, []str.Classified{{Genre: "Drama", Classification: 1}}))

	input := strings.Join([]string{gt, prior, "-1", "", "ann"}, "\n") + "\n"
	var out bytes.Buffer
	s := NewSession(strings.NewReader(input), &out)

	fn, err := s.Run(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "ann_genres.csv"), fn)
	assert.Contains(t, out.String(), "2 distinct genres")
	assert.Contains(t, out.String(), "Resuming classification from index 1")

	got, err := ReadClassifiedCSV(fn)
	require.NoError(t, err)
	assert.Equal(t, []str.Classified{{Genre: "Drama", Classification: 1}, {Genre: "Fantasy", Classification: -1}}, got)
}

func TestRunFromDataFolder(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "MovieSummaries")
	require.NoError(t, os.Mkdir(data, 0755))
	row := "975900\t/m/03vyhn\tGhosts of Mars\t2001-08-24\t14010832\t98.0\t{}\t{}\t{\"/m/01jfsb\": \"Thriller\", \"/m/06n90\": \"Science Fiction\"}\n"
	require.NoError(t, os.WriteFile(filepath.Join(data, vv.MOVIEFILE), []byte(row), 0644))

	// no genre table; one bad folder; no prior; then quit after one label
	input := strings.Join([]string{"", filepath.Join(dir, "nope"), data, "", "0", "Q", "ann"}, "\n") + "\n"
	var out bytes.Buffer
	s := NewSession(strings.NewReader(input), &out)

	fn, err := s.Run(dir)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Invalid... Enter the folder path")

	got, err := ReadClassifiedCSV(fn)
	require.NoError(t, err)
	assert.Equal(t, []str.Classified{{Genre: "Thriller", Classification: 0}}, got)
}

func TestRunGenreTablePromptSkipsFolders(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "MovieSummaries")
	require.NoError(t, os.Mkdir(data, 0755))
	row := "1\t/m/01\tA\t1999\t\t\t{}\t{}\t{\"/m/01hmnh\": \"Fantasy\"}\n"
	require.NoError(t, os.WriteFile(filepath.Join(data, vv.MOVIEFILE), []byte(row), 0644))

	// a folder at the genre table prompt, and again at the prior file prompt
	input := strings.Join([]string{data, data, data, "1", "bob"}, "\n") + "\n"
	var out bytes.Buffer
	s := NewSession(strings.NewReader(input), &out)

	fn, err := s.Run(dir)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Enter the CMU data folder path")
	assert.NotContains(t, out.String(), "Resuming classification")

	got, err := ReadClassifiedCSV(fn)
	require.NoError(t, err)
	assert.Equal(t, []str.Classified{{Genre: "Fantasy", Classification: 1}}, got)
}
