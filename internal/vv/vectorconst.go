//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	LDATOPICS       = 10
	LDAMAXTOPICS    = 60
	LDAALPHA        = 0.2
	LDAETA          = 0.05
	LDAITER         = 50
	LDAXFORMPASSES  = 25
	LDABURNINPASSES = 2
	LDACHGEVALFRQ   = 10
	LDAPERPEVALFRQ  = 10
	LDAPERPTOL      = 1e-2
	LDASEED         = 7
	LDATOPWORDS     = 10
	LDATOPDOCS      = 5
	BARSPERROW      = 5

	VECMINDF    = 10
	VECMAXDF    = 0.5
	VECNGRAMMAX = 2
	VECBINARY   = true

	W2VDIM       = 100
	W2VITER      = 10
	W2VWINDOW    = 8
	W2VMINCOUNT  = 5
	W2VNEIGHBORS = 8

	PREPROCBATCH = 50
)
