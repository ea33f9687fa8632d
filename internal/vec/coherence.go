//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"fmt"
	"math"
	"strconv"

	"github.com/e-gun/MovieSummaryAnalyzer/internal/ingest"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

//
// TOPIC SIMILARITY AND COHERENCE
//

// TopicSimilarity - K×K cosine similarity of the topic-word rows
func TopicSimilarity(m *Model) *mat.Dense {
	k := m.K()
	rows := make([][]float64, k)
	norms := make([]float64, k)
	for t := 0; t < k; t++ {
		rows[t] = mat.Row(nil, t, m.TopicsOverWords)
		norms[t] = floats.Norm(rows[t], 2)
	}

	sim := mat.NewDense(k, k, nil)
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			var s float64
			if norms[i] > 0 && norms[j] > 0 {
				s = floats.Dot(rows[i], rows[j]) / (norms[i] * norms[j])
			}
			sim.Set(i, j, s)
			sim.Set(j, i, s)
		}
	}
	return sim
}

// WriteSimilarityCSV - a labelled K×K table
func WriteSimilarityCSV(fn string, sim mat.Matrix) error {
	r, c := sim.Dims()
	header := []string{"topic"}
	for j := 0; j < c; j++ {
		header = append(header, fmt.Sprintf("topic_%d", j))
	}
	rows := make([][]string, r)
	for i := 0; i < r; i++ {
		row := []string{fmt.Sprintf("topic_%d", i)}
		for j := 0; j < c; j++ {
			row = append(row, strconv.FormatFloat(sim.At(i, j), 'f', 6, 64))
		}
		rows[i] = row
	}
	return ingest.WriteCSVFile(fn, header, rows, true)
}

// UMassCoherence - per topic the mean of log((D(wi, wj)+1)/D(wj)) over the pairs of its n top words (wj ranked above wi)
func UMassCoherence(m *Model, dtm *DTM, n int) ([]float64, float64) {
	k := m.K()
	scores := make([]float64, k)

	for t := 0; t < k; t++ {
		top := m.topwordindices(t, n)
		rank := make(map[int]int, len(top))
		for r, w := range top {
			rank[w] = r
		}

		// co[a][b]: docs containing both the words ranked a and b
		co := make([][]int, len(top))
		for a := range co {
			co[a] = make([]int, len(top))
		}
		for _, dt := range dtm.DocTerms {
			var present []int
			for _, w := range dt {
				if r, ok := rank[w]; ok {
					present = append(present, r)
				}
			}
			for _, a := range present {
				for _, b := range present {
					co[a][b]++
				}
			}
		}

		var sum float64
		pairs := 0
		for i := 1; i < len(top); i++ {
			for j := 0; j < i; j++ {
				dj := dtm.DF[top[j]]
				if dj == 0 {
					continue
				}
				sum += math.Log((float64(co[i][j]) + 1) / float64(dj))
				pairs++
			}
		}
		if pairs > 0 {
			scores[t] = sum / float64(pairs)
		}
	}

	return scores, stat.Mean(scores, nil)
}

// WriteCoherenceCSV - topic,umass[,embedding]
func WriteCoherenceCSV(fn string, umass []float64, emb []float64) error {
	header := []string{"topic", "umass"}
	if emb != nil {
		header = append(header, "embedding")
	}
	rows := make([][]string, len(umass))
	for t := range umass {
		row := []string{strconv.Itoa(t), strconv.FormatFloat(umass[t], 'f', 6, 64)}
		if emb != nil && t < len(emb) {
			row = append(row, strconv.FormatFloat(emb[t], 'f', 6, 64))
		}
		rows[t] = row
	}
	return ingest.WriteCSVFile(fn, header, rows, true)
}
