//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package ident

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/e-gun/MovieSummaryAnalyzer/internal/ingest"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/lnch"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/str"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/vv"
)

var Msg = lnch.Msg

var (
	// ErrQuit - the operator typed Q; the labels gathered so far are still good
	ErrQuit = errors.New("ident: classification stopped by operator")
)

const (
	QUIT    = "Q"
	CORRECT = "2"
)

// Session - one operator working through the distinct genres
type Session struct {
	in  *bufio.Scanner
	out io.Writer

	Genres []str.Genre
	Labels []str.Classified // prior labels first, then the new ones
}

func NewSession(in io.Reader, out io.Writer) *Session {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 4096), vv.MAXLINEBYTES)
	return &Session{in: sc, out: out}
}

// ask - print the prompt and return the next line with its surrounding space trimmed
func (s *Session) ask(prompt string) (string, error) {
	_, _ = fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Session) say(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format+"\n", a...)
}

// isfile - fn names something that exists and is not a folder
func isfile(fn string) bool {
	if fn == "" {
		return false
	}
	fi, err := os.Stat(fn)
	return err == nil && !fi.IsDir()
}

func isdir(fn string) bool {
	fi, err := os.Stat(fn)
	return err == nil && fi.IsDir()
}

//
// SETUP
//

// LoadGenres - a computed genre table if the operator has one; otherwise flatten the movie metadata of a data folder
func (s *Session) LoadGenres() error {
	const (
		ASK1 = "Enter the already computed genre table path if exists: "
		ASK2 = "Enter the CMU data folder path: "
		ASK3 = "Invalid... Enter the folder path: "
		ASK4 = "Enter the movie file path: "
		MSG1 = "%d distinct genres"
		WRN1 = "%d movies carried a malformed genre mapping"
	)

	fn, err := s.ask(ASK1)
	if err != nil {
		return err
	}

	var rels []str.GenreRel
	if isfile(fn) {
		if rels, err = ingest.ReadGenreCSV(fn); err != nil {
			return err
		}
	} else {
		folder, e := s.ask(ASK2)
		for e == nil && !isdir(folder) {
			folder, e = s.ask(ASK3)
		}
		if e != nil {
			return e
		}

		mf := filepath.Join(folder, vv.MOVIEFILE)
		for e == nil && !isfile(mf) {
			mf, e = s.ask(ASK4)
		}
		if e != nil {
			return e
		}

		mm, e := ingest.LoadMovies(mf)
		if e != nil {
			return e
		}

		var bad int
		rels, bad = ingest.FlattenGenres(mm)
		if bad > 0 {
			Msg.WARN(fmt.Sprintf(WRN1, bad))
		}
	}

	s.Genres = ingest.UniqueGenres(rels)
	s.say(MSG1, len(s.Genres))
	return nil
}

// LoadPrior - an earlier classification file, if the operator names one that exists
func (s *Session) LoadPrior() error {
	const (
		ASK1 = "Put filepath of already classified dataset if exists: "
		MSG1 = "Resuming classification from index %d"
	)

	fn, err := s.ask(ASK1)
	if err != nil {
		return err
	}
	if !isfile(fn) {
		return nil
	}

	prior, err := ReadClassifiedCSV(fn)
	if err != nil {
		return err
	}
	s.Labels = prior
	s.say(MSG1, len(prior))
	return nil
}

//
// THE LOOP
//

// ParseLabel - "-1", "0", "1" as an int
func ParseLabel(in string) (int, bool) {
	switch in {
	case "-1", "0", "1":
		v, _ := strconv.Atoi(in)
		return v, true
	}
	return 0, false
}

// Classify - prompt for every genre not yet labelled; starts at len(s.Labels), i.e. the first unclassified genre.
// Returns ErrQuit if the operator stopped early (or the input ran dry); s.Labels holds everything accepted so far.
func (s *Session) Classify() error {
	const (
		ASK1 = "Input for genre %s (%d/%d): "
		ASK2 = "Enter the correct input for the previous genre %s [%d]: "
		ERR1 = "Invalid input. Please enter -1, 0, 1, or 2. or Q to stop"
		ERR2 = "Invalid input. The correction must be -1, 0 or 1. or Q to stop"
		ERR3 = "There is no previous genre to correct"
	)

	for i := len(s.Labels); i < len(s.Genres); {
		g := s.Genres[i]
		in, err := s.ask(fmt.Sprintf(ASK1, g.Name, i+1, len(s.Genres)))
		if err != nil {
			return ErrQuit
		}

		if v, ok := ParseLabel(in); ok {
			s.Labels = append(s.Labels, str.Classified{Genre: g.Name, Classification: v})
			i++
			continue
		}

		switch in {
		case QUIT:
			return ErrQuit
		case CORRECT:
			if len(s.Labels) == 0 {
				s.say(ERR3)
				continue
			}
			last := &s.Labels[len(s.Labels)-1]
			for {
				c, e := s.ask(fmt.Sprintf(ASK2, last.Genre, last.Classification))
				if e != nil || c == QUIT {
					return ErrQuit
				}
				if v, ok := ParseLabel(c); ok {
					last.Classification = v
					break
				}
				s.say(ERR2)
			}
		default:
			s.say(ERR1)
		}
	}
	return nil
}

// Save - ask for the operator's name and write <dir>/<name>_genres.csv
func (s *Session) Save(dir string) (string, error) {
	const (
		ASK1 = "What is your name? for the file name of your inputs... "
		MSG1 = "User inputs saved to %s"
	)

	name, err := s.ask(ASK1)
	for err == nil && name == "" {
		name, err = s.ask(ASK1)
	}
	if err != nil {
		return "", err
	}

	fn := filepath.Join(dir, name+vv.CLASSIFIEDTAIL)
	if err = WriteClassifiedCSV(fn, s.Labels); err != nil {
		return "", err
	}
	s.say(MSG1, fn)
	return fn, nil
}

// Run - LoadGenres(), LoadPrior(), Classify(), Save(); quitting still saves
func (s *Session) Run(dir string) (string, error) {
	if err := s.LoadGenres(); err != nil {
		return "", err
	}
	if err := s.LoadPrior(); err != nil {
		return "", err
	}
	if err := s.Classify(); err != nil && !errors.Is(err, ErrQuit) {
		return "", err
	}
	return s.Save(dir)
}
