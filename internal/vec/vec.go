//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"errors"

	"github.com/e-gun/MovieSummaryAnalyzer/internal/lnch"
)

var Msg = lnch.Msg

var (
	// ErrEmptyVocabulary - the document frequency limits left no terms to model
	ErrEmptyVocabulary = errors.New("vec: empty vocabulary after df pruning")

	// ErrNoDocuments - nothing to vectorise
	ErrNoDocuments = errors.New("vec: no documents")

	// ErrNoEmbeddings - word2vec produced no vectors (usually: MinCount too high for the corpus)
	ErrNoEmbeddings = errors.New("vec: no embeddings")
)
