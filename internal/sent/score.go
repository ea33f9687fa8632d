//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package sent

import (
	"strings"
	"sync"

	"github.com/jonreiter/govader"
)

// the lexicon is parsed once and only read afterwards, so the workers share it
var analyser = sync.OnceValue(govader.NewSentimentIntensityAnalyzer)

// Score - the VADER compound valence of a sentence in [-1, 1]
func Score(sentence string) float64 {
	if strings.TrimSpace(sentence) == "" {
		return 0
	}
	return analyser().PolarityScores(sentence).Compound
}
