//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package sent

import (
	"math"

	"github.com/e-gun/MovieSummaryAnalyzer/internal/vv"
	"gonum.org/v1/gonum/stat"
)

//
// RELEASE PERIODS
//

// SplitIntoPeriods - one bucket per (TimePeriods[i-1], TimePeriods[i]] bin; records without a year land nowhere
func SplitIntoPeriods(recs []Record) [][]Record {
	np := len(vv.TimePeriods) - 1
	out := make([][]Record, np)
	for _, r := range recs {
		if p := period(r.Year); p >= 0 {
			out[p] = append(out[p], r)
		}
	}
	return out
}

func period(year int) int {
	for i := 1; i < len(vv.TimePeriods); i++ {
		if year > vv.TimePeriods[i-1] && year <= vv.TimePeriods[i] {
			return i - 1
		}
	}
	return -1
}

// PeriodMeans - mean sentiment per period; NaN for an empty period
func PeriodMeans(recs []Record) []float64 {
	pp := SplitIntoPeriods(recs)
	out := make([]float64, len(pp))
	for i, p := range pp {
		if len(p) == 0 {
			out[i] = math.NaN()
			continue
		}
		sc := make([]float64, len(p))
		for j := range p {
			sc[j] = p[j].Sentiment
		}
		out[i] = stat.Mean(sc, nil)
	}
	return out
}

// PeriodCounts - summaries per period
func PeriodCounts(recs []Record) []int {
	pp := SplitIntoPeriods(recs)
	out := make([]int, len(pp))
	for i := range pp {
		out[i] = len(pp[i])
	}
	return out
}

//
// SUMMARY LENGTHS
//

// ShortShare - percent of the records with SHORTSUMMLOW <= NSentences < SHORTSUMMHIGH; 0 for an empty set
func ShortShare(recs []Record) float64 {
	if len(recs) == 0 {
		return 0
	}
	n := 0
	for _, r := range recs {
		if r.NSentences >= vv.SHORTSUMMLOW && r.NSentences < vv.SHORTSUMMHIGH {
			n++
		}
	}
	return 100 * float64(n) / float64(len(recs))
}

// ShortSharePerPeriod - ShortShare() for each period
func ShortSharePerPeriod(recs []Record) []float64 {
	pp := SplitIntoPeriods(recs)
	out := make([]float64, len(pp))
	for i := range pp {
		out[i] = ShortShare(pp[i])
	}
	return out
}

// LengthCounts - element j-1 holds the number of summaries with exactly j sentences, j in [1, MAXSENTLEN)
func LengthCounts(recs []Record) []int {
	out := make([]int, vv.MAXSENTLEN-1)
	for _, r := range recs {
		if r.NSentences >= 1 && r.NSentences < vv.MAXSENTLEN {
			out[r.NSentences-1]++
		}
	}
	return out
}

// LengthProportions - LengthCounts() divided by the number of records (longer summaries still count in the total)
func LengthProportions(recs []Record) []float64 {
	cc := LengthCounts(recs)
	out := make([]float64, len(cc))
	if len(recs) == 0 {
		return out
	}
	for i, c := range cc {
		out[i] = float64(c) / float64(len(recs))
	}
	return out
}

// LengthProportionsPerPeriod - LengthProportions() for each period
func LengthProportionsPerPeriod(recs []Record) [][]float64 {
	pp := SplitIntoPeriods(recs)
	out := make([][]float64, len(pp))
	for i := range pp {
		out[i] = LengthProportions(pp[i])
	}
	return out
}
