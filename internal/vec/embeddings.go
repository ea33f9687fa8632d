//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"runtime"
	"strings"
	"time"

	"github.com/e-gun/MovieSummaryAnalyzer/internal/str"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/vv"
	"github.com/e-gun/wego/pkg/embedding"
	"github.com/e-gun/wego/pkg/model/modelutil/vector"
	"github.com/e-gun/wego/pkg/model/word2vec"
	"github.com/e-gun/wego/pkg/search"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//
// WORD2VEC EMBEDDINGS OF THE PREPROCESSED SUMMARIES
//

var (
	DefaultW2VVectors = word2vec.Options{
		BatchSize:          1024,
		Dim:                vv.W2VDIM,
		DocInMemory:        true,
		Goroutines:         runtime.NumCPU(),
		Initlr:             0.025,
		Iter:               vv.W2VITER,
		LogBatch:           100000,
		MaxCount:           -1,
		MaxDepth:           150,
		MinCount:           vv.W2VMINCOUNT,
		MinLR:              0.0000025,
		ModelType:          "skipgram",
		NegativeSampleSize: 5,
		OptimizerType:      "hs",
		SubsampleThreshold: 0.001,
		ToLower:            false,
		UpdateLRBatch:      100000,
		Verbose:            false,
		Window:             vv.W2VWINDOW,
	}
)

// W2VOptionsFromConfig - DefaultW2VVectors with the w2v section of the run configuration laid over it
func W2VOptionsFromConfig(c str.W2VConfig, workers int) word2vec.Options {
	cfg := DefaultW2VVectors
	if c.Dim > 0 {
		cfg.Dim = c.Dim
	}
	if c.Iter > 0 {
		cfg.Iter = c.Iter
	}
	if c.Window > 0 {
		cfg.Window = c.Window
	}
	if c.MinCount > 0 {
		cfg.MinCount = c.MinCount
	}
	if workers > 0 {
		cfg.Goroutines = workers
	}
	return cfg
}

// Embeddings - trained vectors plus a word lookup
type Embeddings struct {
	Embs  embedding.Embeddings
	words map[string][]float64
}

func newembeddings(embs embedding.Embeddings) *Embeddings {
	e := &Embeddings{Embs: embs, words: make(map[string][]float64, len(embs))}
	for _, x := range embs {
		e.words[x.Word] = x.Vector
	}
	return e
}

// Vector - the embedding of w if there is one
func (e *Embeddings) Vector(w string) ([]float64, bool) {
	v, ok := e.words[w]
	return v, ok
}

// TrainEmbeddings - word2vec over the docs (one per line); ctx abandons the wait, not the training goroutine
func TrainEmbeddings(ctx context.Context, docs []string, cfg word2vec.Options) (*Embeddings, error) {
	const (
		FAIL1 = "vec: word2vec initialization failed: %w"
		FAIL2 = "vec: word2vec training failed: %w"
		FAIL3 = "vec: saving embeddings failed: %w"
		FAIL4 = "vec: loading embeddings failed: %w"
		MSG1  = "trained %d word vectors of dim %d"
	)
	start := time.Now()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m, err := word2vec.NewForOptions(cfg)
	if err != nil {
		return nil, fmt.Errorf(FAIL1, err)
	}

	// input for word2vec.Train() is 'io.ReadSeeker'
	b := bytes.NewReader([]byte(strings.Join(docs, "\n")))

	finished := make(chan error, 1)
	go func() {
		finished <- m.Train(b)
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case err = <-finished:
	}
	if err != nil {
		return nil, fmt.Errorf(FAIL2, err)
	}

	// use buffers; skip the disk
	var buf bytes.Buffer
	if err = m.Save(&buf, vector.Agg); err != nil {
		return nil, fmt.Errorf(FAIL3, err)
	}

	embs, err := embedding.Load(&buf)
	if err != nil {
		return nil, fmt.Errorf(FAIL4, err)
	}
	if len(embs) == 0 {
		return nil, ErrNoEmbeddings
	}

	Msg.Timer("W", fmt.Sprintf(MSG1, len(embs), cfg.Dim), start, start)
	return newembeddings(embs), nil
}

// EmbeddingCoherence - per topic the mean pairwise cosine of those of its n top words that have vectors; NaN if fewer than two do
func EmbeddingCoherence(m *Model, e *Embeddings, n int) ([]float64, float64) {
	k := m.K()
	scores := make([]float64, k)
	var valid []float64

	for t, words := range ShowTopics(m, n) {
		var vecs [][]float64
		for _, w := range words {
			if v, ok := e.Vector(w); ok {
				vecs = append(vecs, v)
			}
		}

		var sims []float64
		for i := 0; i < len(vecs); i++ {
			for j := i + 1; j < len(vecs); j++ {
				sims = append(sims, cosine(vecs[i], vecs[j]))
			}
		}
		if len(sims) == 0 {
			scores[t] = math.NaN()
			continue
		}
		scores[t] = stat.Mean(sims, nil)
		valid = append(valid, scores[t])
	}

	if len(valid) == 0 {
		return scores, math.NaN()
	}
	return scores, stat.Mean(valid, nil)
}

// TopicNeighbour - the nearest neighbours of a topic's top word
type TopicNeighbour struct {
	Topic     int
	Word      string
	Neighbors search.Neighbors
}

// TopicNeighbours - SearchInternal() for the top word of every topic that has a vector
func TopicNeighbours(m *Model, e *Embeddings, k int) ([]TopicNeighbour, error) {
	const (
		FAIL1 = "TopicNeighbours() found no neighbors of '%s'"
	)
	searcher, err := search.New(e.Embs...)
	if err != nil {
		return nil, fmt.Errorf("vec: building searcher: %w", err)
	}

	var out []TopicNeighbour
	for t, words := range ShowTopics(m, 1) {
		if len(words) == 0 {
			continue
		}
		if _, ok := e.Vector(words[0]); !ok {
			continue
		}
		nn, err := searcher.SearchInternal(words[0], k)
		if err != nil {
			Msg.FYI(fmt.Sprintf(FAIL1, words[0]))
			continue
		}
		out = append(out, TopicNeighbour{Topic: t, Word: words[0], Neighbors: nn})
	}
	return out, nil
}

func cosine(a, b []float64) float64 {
	na := floats.Norm(a, 2)
	nb := floats.Norm(b, 2)
	if na == 0 || nb == 0 || len(a) != len(b) {
		return 0
	}
	return floats.Dot(a, b) / (na * nb)
}
