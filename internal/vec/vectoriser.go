//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strings"

	"github.com/e-gun/MovieSummaryAnalyzer/internal/gen"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/str"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/vv"
	"github.com/e-gun/nlp"
	"github.com/e-gun/sparse"
	"gonum.org/v1/gonum/mat"
)

//
// DOCUMENT-TERM MATRIX
//

var wordpattern = regexp.MustCompile(`\b\w\w+\b`)

// VectoriserOptions - see DefaultVectoriserOptions()
type VectoriserOptions struct {
	MaxFeatures int
	MinDF       int
	MaxDF       float64 // fraction of the documents
	NGramMax    int
	Binary      bool
	Norm        bool
	IDF         bool
	Sublinear   bool
	Stops       map[string]struct{}
}

func DefaultVectoriserOptions() VectoriserOptions {
	return VectoriserOptions{
		MinDF:    vv.VECMINDF,
		MaxDF:    vv.VECMAXDF,
		NGramMax: vv.VECNGRAMMAX,
		Binary:   vv.VECBINARY,
	}
}

// VectoriserOptionsFromConfig - the vectoriser section of the run configuration
func VectoriserOptionsFromConfig(c str.VectConfig) VectoriserOptions {
	return VectoriserOptions{
		MaxFeatures: c.MaxFeatures,
		MinDF:       c.MinDF,
		MaxDF:       c.MaxDF,
		NGramMax:    c.NGramMax,
		Binary:      c.Binary,
		Norm:        c.Norm,
		IDF:         c.IDF,
		Sublinear:   c.Sublinear,
	}
}

// DTM - terms × documents
type DTM struct {
	M        mat.Matrix
	Vocab    []string       // row -> term
	Index    map[string]int // term -> row
	DF       []int          // row -> number of docs containing the term
	DocTerms [][]int        // doc -> the rows it contains
	NDocs    int
}

// ngramtokeniser - satisfies nlp.Tokeniser: lowercase \w\w+ words minus stopwords, then 1..nmax grams
type ngramtokeniser struct {
	stops  map[string]struct{}
	nmax   int
	binary bool
}

func (t *ngramtokeniser) ForEachIn(input string, f func(token string)) {
	words := wordpattern.FindAllString(strings.ToLower(input), -1)
	kept := words[:0]
	for _, w := range words {
		if _, stop := t.stops[w]; !stop {
			kept = append(kept, w)
		}
	}

	var seen map[string]struct{}
	if t.binary {
		seen = make(map[string]struct{})
	}

	for n := 1; n <= t.nmax; n++ {
		for i := 0; i+n <= len(kept); i++ {
			g := kept[i]
			if n > 1 {
				g = strings.Join(kept[i:i+n], " ")
			}
			if seen != nil {
				if _, ok := seen[g]; ok {
					continue
				}
				seen[g] = struct{}{}
			}
			f(g)
		}
	}
}

func (t *ngramtokeniser) Tokenise(input string) []string {
	var tt []string
	t.ForEachIn(input, func(s string) { tt = append(tt, s) })
	return tt
}

// Vectorise - build the vocabulary with the df limits and then let nlp.CountVectoriser count against it
func Vectorise(docs []string, o VectoriserOptions) (*DTM, error) {
	const (
		MSG1 = "vocabulary: %d terms kept of %d seen across %d documents"
	)

	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}
	if o.NGramMax < 1 {
		o.NGramMax = 1
	}
	if o.MaxDF <= 0 || o.MaxDF > 1 {
		o.MaxDF = 1
	}
	if o.Stops == nil {
		o.Stops = gen.ToSet(EnglishStops)
	}

	// [a] document and total frequencies

	tk := &ngramtokeniser{stops: o.Stops, nmax: o.NGramMax, binary: true}
	df := make(map[string]int)
	tf := make(map[string]int)
	counter := &ngramtokeniser{stops: o.Stops, nmax: o.NGramMax}
	for _, d := range docs {
		tk.ForEachIn(d, func(g string) { df[g]++ })
		counter.ForEachIn(d, func(g string) { tf[g]++ })
	}

	// [b] prune

	n := len(docs)
	maxdoc := o.MaxDF * float64(n)
	var terms []string
	for t, c := range df {
		if c >= o.MinDF && float64(c) <= maxdoc {
			terms = append(terms, t)
		}
	}

	if o.MaxFeatures > 0 && len(terms) > o.MaxFeatures {
		slices.SortFunc(terms, func(a, b string) int {
			if tf[a] != tf[b] {
				return tf[b] - tf[a]
			}
			return strings.Compare(a, b)
		})
		terms = terms[:o.MaxFeatures]
	}

	if len(terms) == 0 {
		return nil, fmt.Errorf("%w: min_df %d, max_df %.2f, %d docs", ErrEmptyVocabulary, o.MinDF, o.MaxDF, n)
	}
	slices.Sort(terms)

	Msg.PEEK(fmt.Sprintf(MSG1, len(terms), len(df), n))

	// [c] count

	dtm := &DTM{
		Vocab: terms,
		Index: make(map[string]int, len(terms)),
		DF:    make([]int, len(terms)),
		NDocs: n,
	}
	for i, t := range terms {
		dtm.Index[t] = i
		dtm.DF[i] = df[t]
	}

	vectoriser := nlp.NewCountVectoriser()
	vectoriser.Tokeniser = &ngramtokeniser{stops: o.Stops, nmax: o.NGramMax, binary: o.Binary}
	vectoriser.Vocabulary = dtm.Index

	counts, err := vectoriser.Transform(docs...)
	if err != nil {
		return nil, fmt.Errorf("vec: counting terms: %w", err)
	}

	dtm.DocTerms = make([][]int, n)
	eachnonzero(counts, func(i, j int, v float64) {
		dtm.DocTerms[j] = append(dtm.DocTerms[j], i)
	})
	for j := range dtm.DocTerms {
		slices.Sort(dtm.DocTerms[j])
	}

	// [d] weight

	dtm.M, err = weigh(counts, o)
	if err != nil {
		return nil, err
	}
	return dtm, nil
}

// weigh - sublinear tf, then idf, then l1 per document
func weigh(counts mat.Matrix, o VectoriserOptions) (mat.Matrix, error) {
	if !o.Norm && !o.IDF {
		return counts, nil
	}

	r, c := counts.Dims()
	m := mat.Matrix(counts)

	if o.Sublinear {
		sl := sparse.NewDOK(r, c)
		eachnonzero(m, func(i, j int, v float64) {
			sl.Set(i, j, 1+math.Log(v))
		})
		m = sl
	}

	if o.IDF {
		tfidf := nlp.NewTfidfTransformer()
		w, err := tfidf.FitTransform(m)
		if err != nil {
			return nil, fmt.Errorf("vec: tf-idf: %w", err)
		}
		m = w
	}

	// sums in a fixed order
	m = ordered(m)

	colsum := make([]float64, c)
	eachnonzero(m, func(i, j int, v float64) {
		colsum[j] += math.Abs(v)
	})

	normed := sparse.NewDOK(r, c)
	eachnonzero(m, func(i, j int, v float64) {
		if colsum[j] > 0 {
			normed.Set(i, j, v/colsum[j])
		}
	})
	return normed, nil
}

// eachnonzero - sparse matrices know their non-zero cells; anything else gets scanned
func eachnonzero(m mat.Matrix, fn func(i, j int, v float64)) {
	if nz, ok := m.(mat.NonZeroDoer); ok {
		nz.DoNonZero(fn)
		return
	}
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := m.At(i, j); v != 0 {
				fn(i, j, v)
			}
		}
	}
}

// ordered - a terms × documents CSC whose rows ascend inside every column; the lda sweeps cells in storage order
func ordered(m mat.Matrix) *sparse.CSC {
	type cell struct {
		i int
		v float64
	}

	r, c := m.Dims()
	cols := make([][]cell, c)
	eachnonzero(m, func(i, j int, v float64) {
		cols[j] = append(cols[j], cell{i, v})
	})

	indptr := make([]int, c+1)
	var ind []int
	var data []float64
	for j, cc := range cols {
		slices.SortFunc(cc, func(a, b cell) int { return a.i - b.i })
		for _, x := range cc {
			ind = append(ind, x.i)
			data = append(data, x.v)
		}
		indptr[j+1] = len(ind)
	}
	return sparse.NewCSC(r, c, indptr, ind, data)
}
