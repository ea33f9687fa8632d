//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/gen"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/vv"
	"github.com/jdkato/prose/v2"
	"golang.org/x/sync/errgroup"
)

//
// TOKENS, TAGS, LEMMATA
//

// Token - a word and its Penn Treebank tag
type Token struct {
	Text string
	Tag  string
}

var (
	lemonce sync.Once
	lemma   *golem.Lemmatizer
	lemerr  error
)

// Lemmatiser - the english golem dictionary; loaded once and then shared (lookups only read the map)
func Lemmatiser() (*golem.Lemmatizer, error) {
	lemonce.Do(func() {
		lemma, lemerr = golem.New(en.New())
	})
	return lemma, lemerr
}

// Tokenise - text into tagged tokens
func Tokenise(text string) ([]Token, error) {
	doc, err := prose.NewDocument(text, prose.WithExtraction(false), prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("vec: tokenising: %w", err)
	}
	pt := doc.Tokens()
	tt := make([]Token, len(pt))
	for i := range pt {
		tt[i] = Token{Text: pt[i].Text, Tag: pt[i].Tag}
	}
	return tt, nil
}

func isproper(tag string) bool {
	return tag == "NNP" || tag == "NNPS"
}

func isnoun(tag string) bool {
	return strings.HasPrefix(tag, "NN")
}

func isalpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// FilterNameTokens - the tokens of text minus the singular proper nouns
func FilterNameTokens(text string) ([]string, error) {
	tt, err := Tokenise(text)
	if err != nil {
		return nil, err
	}
	var kept []string
	for _, t := range tt {
		if t.Tag != "NNP" {
			kept = append(kept, t.Text)
		}
	}
	return kept, nil
}

// FilterNames - FilterNameTokens() joined with spaces
func FilterNames(text string) (string, error) {
	kept, err := FilterNameTokens(text)
	if err != nil {
		return "", err
	}
	return strings.Join(kept, " "), nil
}

//
// PREPROCESSING
//

// Preprocessor - stopwords plus a lemmatiser
type Preprocessor struct {
	Stops map[string]struct{}
	Lem   *golem.Lemmatizer
}

// NewPreprocessor - nil stops means EnglishStops
func NewPreprocessor(stops map[string]struct{}) (*Preprocessor, error) {
	l, err := Lemmatiser()
	if err != nil {
		return nil, fmt.Errorf("vec: loading lemmatiser: %w", err)
	}
	if stops == nil {
		stops = gen.ToSet(EnglishStops)
	}
	return &Preprocessor{Stops: stops, Lem: l}, nil
}

func (p *Preprocessor) isstop(w string) bool {
	_, ok := p.Stops[strings.ToLower(w)]
	return ok
}

func (p *Preprocessor) lemmatise(w string) string {
	return strings.ToLower(p.Lem.Lemma(strings.ToLower(w)))
}

// Tokens - lowercased lemmata of the alphabetic tokens that are neither stopwords nor proper nouns
func (p *Preprocessor) Tokens(text string) ([]string, error) {
	tt, err := Tokenise(text)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, t := range tt {
		if !isalpha(t.Text) || p.isstop(t.Text) || isproper(t.Tag) {
			continue
		}
		out = append(out, p.lemmatise(t.Text))
	}
	return out, nil
}

// CustomTokens - lemmata of the tokens that are not nouns of any kind and not stopwords
func (p *Preprocessor) CustomTokens(text string) ([]string, error) {
	tt, err := Tokenise(text)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, t := range tt {
		if isnoun(t.Tag) || p.isstop(t.Text) {
			continue
		}
		out = append(out, p.lemmatise(t.Text))
	}
	return out, nil
}

// PreprocessDocs - Tokens() for every doc, joined with spaces; batches of vv.PREPROCBATCH docs on at most workers goroutines
func (p *Preprocessor) PreprocessDocs(ctx context.Context, docs []string, workers int) ([]string, error) {
	const (
		MSG1 = "preprocessed %d documents in %d batches"
	)
	start := time.Now()

	if workers < 1 {
		workers = 1
	}

	out := make([]string, len(docs))
	batches := gen.ChunkSlice(indices(len(docs)), vv.PREPROCBATCH)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for _, b := range batches {
		b := b
		eg.Go(func() error {
			for _, i := range b {
				if err := ctx.Err(); err != nil {
					return err
				}
				tt, err := p.Tokens(docs[i])
				if err != nil {
					return fmt.Errorf("vec: document %d: %w", i, err)
				}
				// each goroutine owns distinct indices
				out[i] = strings.Join(tt, " ")
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	Msg.Timer("P", fmt.Sprintf(MSG1, len(docs), len(batches)), start, start)
	return out, nil
}

// PreprocessDocs - NewPreprocessor(nil).PreprocessDocs()
func PreprocessDocs(ctx context.Context, docs []string, workers int) ([]string, error) {
	p, err := NewPreprocessor(nil)
	if err != nil {
		return nil, err
	}
	return p.PreprocessDocs(ctx, docs, workers)
}

// CustomTokens - NewPreprocessor(nil).CustomTokens()
func CustomTokens(text string) ([]string, error) {
	p, err := NewPreprocessor(nil)
	if err != nil {
		return nil, err
	}
	return p.CustomTokens(text)
}

func indices(n int) []int {
	ii := make([]int, n)
	for i := range ii {
		ii[i] = i
	}
	return ii
}
