//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package ingest

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/e-gun/MovieSummaryAnalyzer/internal/str"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/vv"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Corpus - the five files of the CMU Movie Summary Corpus
type Corpus struct {
	Movies       []str.Movie
	Characters   []str.Character
	Summaries    []str.Summary
	NameClusters []str.NameCluster
	Tropes       []str.Trope
}

// LoadMovies - movie.metadata.tsv
func LoadMovies(fn string) ([]str.Movie, error) {
	var mm []str.Movie
	err := readtsv(fn, vv.MOVIECOLS, 0, func(f []string) bool {
		id, e := strconv.Atoi(strings.TrimSpace(f[0]))
		if e != nil {
			return false
		}
		mm = append(mm, str.Movie{
			WikiID:     id,
			FreebaseID: f[1],
			Name:       f[2],
			ReleaseRaw: f[3],
			Release:    ParseDate(f[3]),
			BoxOffice:  ParseFloat(f[4]),
			Runtime:    ParseFloat(f[5]),
			Languages:  f[6],
			Countries:  f[7],
			GenresRaw:  f[8],
		})
		return true
	})
	return mm, err
}

// LoadCharacters - character.metadata.tsv
func LoadCharacters(fn string) ([]str.Character, error) {
	var cc []str.Character
	err := readtsv(fn, vv.CHARACTERCOLS, 0, func(f []string) bool {
		id, e := strconv.Atoi(strings.TrimSpace(f[0]))
		if e != nil {
			return false
		}
		cc = append(cc, str.Character{
			WikiID:         id,
			FreebaseID:     f[1],
			ReleaseRaw:     f[2],
			Release:        ParseDate(f[2]),
			Name:           f[3],
			ActorBirthRaw:  f[4],
			ActorBirth:     ParseDate(f[4]),
			ActorGender:    f[5],
			ActorHeight:    ParseFloat(f[6]),
			ActorEthnicity: f[7],
			ActorName:      f[8],
			ActorAge:       ParseFloat(f[9]),
			CharActorMapID: f[10],
			CharacterID:    f[11],
			ActorID:        f[12],
		})
		return true
	})
	return cc, err
}

// LoadSummaries - plot_summaries.txt; a summary may itself contain tabs
func LoadSummaries(fn string) ([]str.Summary, error) {
	var ss []str.Summary
	err := readtsv(fn, vv.SUMMARYCOLS, vv.SUMMARYCOLS, func(f []string) bool {
		id, e := strconv.Atoi(strings.TrimSpace(f[0]))
		if e != nil {
			return false
		}
		ss = append(ss, str.Summary{WikiID: id, Text: f[1]})
		return true
	})
	return ss, err
}

// LoadNameClusters - name.clusters.txt
func LoadNameClusters(fn string) ([]str.NameCluster, error) {
	var nc []str.NameCluster
	err := readtsv(fn, vv.CLUSTERCOLS, vv.CLUSTERCOLS, func(f []string) bool {
		nc = append(nc, str.NameCluster{CharacterName: f[0], InstanceCode: f[1]})
		return true
	})
	return nc, err
}

// LoadTropes - tvtropes.clusters.txt; the instance reference stays raw json
func LoadTropes(fn string) ([]str.Trope, error) {
	var tt []str.Trope
	err := readtsv(fn, vv.CLUSTERCOLS, vv.CLUSTERCOLS, func(f []string) bool {
		tt = append(tt, str.Trope{CharacterType: f[0], InstanceRef: f[1]})
		return true
	})
	return tt, err
}

// LoadAll - every file of the corpus found in folder
func LoadAll(folder string, files str.CorpusFiles) (*Corpus, error) {
	const (
		MSG1 = "%d movies, %d characters, %d summaries, %d name clusters, %d tropes loaded from '%s'"
	)

	var c Corpus
	var err error

	p := func(f string) string { return filepath.Join(folder, f) }

	if c.Movies, err = LoadMovies(p(files.Movies)); err != nil {
		return nil, err
	}
	if c.Characters, err = LoadCharacters(p(files.Characters)); err != nil {
		return nil, err
	}
	if c.Summaries, err = LoadSummaries(p(files.Summaries)); err != nil {
		return nil, err
	}
	if c.NameClusters, err = LoadNameClusters(p(files.NameClust)); err != nil {
		return nil, err
	}
	if c.Tropes, err = LoadTropes(p(files.Tropes)); err != nil {
		return nil, err
	}

	pr := message.NewPrinter(language.English)
	Msg.NOTE(pr.Sprintf(MSG1, len(c.Movies), len(c.Characters), len(c.Summaries), len(c.NameClusters), len(c.Tropes), folder))
	return &c, nil
}

// ReleaseYears - WikiID -> release year for every movie with a usable date
func ReleaseYears(mm []str.Movie) map[int]int {
	yy := make(map[int]int, len(mm))
	for _, m := range mm {
		if m.Release.Valid {
			yy[m.WikiID] = m.Release.Year()
		}
	}
	return yy
}

