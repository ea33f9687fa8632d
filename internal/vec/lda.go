//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"fmt"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/e-gun/MovieSummaryAnalyzer/internal/gen"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/ingest"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/str"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/vv"
	"github.com/e-gun/nlp"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

//
// LATENT DIRICHLET ALLOCATION
//

type LDAOptions struct {
	Topics         int
	Alpha          float64
	Eta            float64
	Iterations     int
	XformPasses    int
	BurnInPasses   int
	ChangeEvalFrq  int
	PerplexEvalFrq int
	PerplexTol     float64
	Seed           int64 // negative: seeded from the clock and fitted on every worker
	Workers        int
}

func DefaultLDAOptions() LDAOptions {
	return LDAOptions{
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
		Workers:        runtime.NumCPU(),
	}
}

// LDAOptionsFromConfig - DefaultLDAOptions() with the lda section of the run configuration laid over it; a zero seed keeps the default
func LDAOptionsFromConfig(c str.LDAConfig, workers int) LDAOptions {
	o := DefaultLDAOptions()
	if c.Topics > 0 {
		o.Topics = c.Topics
	}
	if c.Alpha > 0 {
		o.Alpha = c.Alpha
	}
	if c.Eta > 0 {
		o.Eta = c.Eta
	}
	if c.Iterations > 0 {
		o.Iterations = c.Iterations
	}
	if c.XformPasses > 0 {
		o.XformPasses = c.XformPasses
	}
	if c.BurnInPasses > 0 {
		o.BurnInPasses = c.BurnInPasses
	}
	if c.ChangeEvalFrq > 0 {
		o.ChangeEvalFrq = c.ChangeEvalFrq
	}
	if c.PerplexEvalFrq > 0 {
		o.PerplexEvalFrq = c.PerplexEvalFrq
	}
	if c.PerplexTol > 0 {
		o.PerplexTol = c.PerplexTol
	}
	if c.Seed != 0 {
		o.Seed = c.Seed
	}
	if workers > 0 {
		o.Workers = workers
	}
	return o
}

// Model - a fitted topic model
type Model struct {
	TopicsOverWords *mat.Dense // K × V
	DocsOverTopics  *mat.Dense // K × D
	Vocab           []string
}

// K - number of topics
func (m *Model) K() int {
	r, _ := m.TopicsOverWords.Dims()
	return r
}

// WordWeight - one cell of a top words table
type WordWeight struct {
	Word   string
	Weight float64
}

// FitLDA - fit a model to the document-term matrix
func FitLDA(dtm *DTM, o LDAOptions) (*Model, error) {
	const (
		MSG1 = "fit %d topics over %d terms and %d documents"
		MSG2 = "lda seed %d: fitting on a single worker"
	)
	start := time.Now()

	if o.Topics < 1 {
		o.Topics = vv.LDATOPICS
	}
	if o.Workers < 1 {
		o.Workers = 1
	}

	lda := nlp.NewLatentDirichletAllocation(o.Topics)
	lda.Iterations = o.Iterations
	lda.TransformationPasses = o.XformPasses
	lda.BurnInPasses = o.BurnInPasses
	lda.ChangeEvaluationFrequency = o.ChangeEvalFrq
	lda.PerplexityEvaluationFrequency = o.PerplexEvalFrq
	lda.PerplexityTolerance = o.PerplexTol
	lda.Alpha = o.Alpha
	lda.Eta = o.Eta

	// parallel minibatches update the shared statistics in whatever order they finish
	if o.Seed >= 0 {
		if o.Workers > 1 {
			Msg.PEEK(fmt.Sprintf(MSG2, o.Seed))
		}
		o.Workers = 1
		lda.Rnd = rand.New(rand.NewSource(uint64(o.Seed)))
	} else {
		lda.Rnd = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	lda.Processes = o.Workers

	docsOverTopics, err := lda.FitTransform(ordered(dtm.M))
	if err != nil {
		return nil, fmt.Errorf("vec: fitting lda: %w", err)
	}

	m := &Model{
		TopicsOverWords: mat.DenseCopyOf(lda.Components()),
		DocsOverTopics:  mat.DenseCopyOf(docsOverTopics),
		Vocab:           dtm.Vocab,
	}

	Msg.Timer("L", fmt.Sprintf(MSG1, o.Topics, len(dtm.Vocab), dtm.NDocs), start, start)
	return m, nil
}

// topwordindices - the n heaviest words of a topic: descending weight, ties by word
func (m *Model) topwordindices(topic int, n int) []int {
	row := mat.Row(nil, topic, m.TopicsOverWords)
	idx := indices(len(row))
	slices.SortStableFunc(idx, func(a, b int) int {
		switch {
		case row[a] > row[b]:
			return -1
		case row[a] < row[b]:
			return 1
		}
		return strings.Compare(m.Vocab[a], m.Vocab[b])
	})
	if n >= 0 && n < len(idx) {
		idx = idx[:n]
	}
	return idx
}

// ShowTopics - the n top words of each topic
func ShowTopics(m *Model, n int) [][]string {
	tops := make([][]string, m.K())
	for t := range tops {
		for _, w := range m.topwordindices(t, n) {
			tops[t] = append(tops[t], m.Vocab[w])
		}
	}
	return tops
}

// TopWordsWeights - [rank][topic] -> (word, weight)
func TopWordsWeights(m *Model, n int) [][]WordWeight {
	k := m.K()
	if n > len(m.Vocab) {
		n = len(m.Vocab)
	}
	table := make([][]WordWeight, n)
	for r := range table {
		table[r] = make([]WordWeight, k)
	}
	for t := 0; t < k; t++ {
		for r, w := range m.topwordindices(t, n) {
			table[r][t] = WordWeight{Word: m.Vocab[w], Weight: m.TopicsOverWords.At(t, w)}
		}
	}
	return table
}

// WriteTopWordsCSV - rank,Word_0..Word_k,Weight_0..Weight_k
func WriteTopWordsCSV(fn string, table [][]WordWeight) error {
	var k int
	if len(table) > 0 {
		k = len(table[0])
	}

	header := []string{"rank"}
	for t := 0; t < k; t++ {
		header = append(header, fmt.Sprintf("Word_%d", t))
	}
	for t := 0; t < k; t++ {
		header = append(header, fmt.Sprintf("Weight_%d", t))
	}

	rows := make([][]string, len(table))
	for r, line := range table {
		row := []string{strconv.Itoa(r)}
		for _, c := range line {
			row = append(row, c.Word)
		}
		for _, c := range line {
			row = append(row, strconv.FormatFloat(c.Weight, 'f', 6, 64))
		}
		rows[r] = row
	}
	return ingest.WriteCSVFile(fn, header, rows, true)
}

// DominantTopicCounts - N documents have topic X as their heaviest topic
func DominantTopicCounts(m *Model) []int {
	k, d := m.DocsOverTopics.Dims()
	counter := make([]int, k)
	for doc := 0; doc < d; doc++ {
		col := mat.Col(nil, doc, m.DocsOverTopics)
		counter[gen.ArgSortDesc(col)[0]] += 1
	}
	return counter
}

// ScaledTopicWeights - the accumulated weight of each topic over all documents divided by the largest such total
func ScaledTopicWeights(m *Model) []float64 {
	k, d := m.DocsOverTopics.Dims()
	counter := make([]float64, k)
	for doc := 0; doc < d; doc++ {
		for topic := 0; topic < k; topic++ {
			counter[topic] += m.DocsOverTopics.At(topic, doc)
		}
	}

	high := slices.Max(counter)
	if high == 0 {
		return counter
	}
	for i := range counter {
		counter[i] = counter[i] / high
	}
	return counter
}

// TopDocuments - for each topic the indices of the n documents that lean on it hardest
func TopDocuments(m *Model, n int) [][]int {
	k, _ := m.DocsOverTopics.Dims()
	tops := make([][]int, k)
	for t := 0; t < k; t++ {
		tops[t] = gen.TopN(mat.Row(nil, t, m.DocsOverTopics), n)
	}
	return tops
}

// WriteTopDocumentsCSV - topic,rank,Wikipedia_movie_ID,weight,movie_summary
func WriteTopDocumentsCSV(fn string, m *Model, tops [][]int, ss []str.Summary) error {
	header := []string{"topic", "rank", "Wikipedia_movie_ID", "weight", "movie_summary"}
	var rows [][]string
	for t, dd := range tops {
		for r, d := range dd {
			if d >= len(ss) {
				continue
			}
			rows = append(rows, []string{strconv.Itoa(t), strconv.Itoa(r), strconv.Itoa(ss[d].WikiID),
				strconv.FormatFloat(m.DocsOverTopics.At(t, d), 'f', 6, 64), ss[d].Text})
		}
	}
	return ingest.WriteCSVFile(fn, header, rows, true)
}
