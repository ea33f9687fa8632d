//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	MYNAME    = "Movie Summary Analyzer"
	SHORTNAME = "MSA"
	VERSION   = "0.3.1"

	BLACKANDWHITE     = false
	CONFIGLOCATION    = "."
	CONFIGALTAPTH     = "%s/.config/" // %s = os.UserHomeDir()
	CONFIGBASIC       = "msa-conf.yaml"
	CONFIGSTOPS       = "msa-stops-english.yaml"
	DEFAULTGOLOGLEVEL = 2
	DEFAULTDATAFOLDER = "MovieSummaries"
	DEFAULTOUTFOLDER  = "msa-output"
	READPERMS         = 0644
	WRITEPERMS        = 0644
	DIRPERMS          = 0755
	MAXLINEBYTES      = 1 << 22 // a handful of plot summaries run past 64k

	// the five files of the CMU Movie Summary Corpus

	MOVIEFILE      = "movie.metadata.tsv"
	CHARACTERFILE  = "character.metadata.tsv"
	SUMMARIESFILE  = "plot_summaries.txt"
	NAMECLUSTFILE  = "name.clusters.txt"
	TVTROPESFILE   = "tvtropes.clusters.txt"
	GENRECSV       = "cleaned_genres.csv"
	SUBSETCSV      = "fictional_summaries.csv"
	PREPROCCSV     = "preprocessed_summaries.csv"
	TOPWORDSCSV    = "topic_top_words.csv"
	SIMILARITYCSV  = "topic_similarity.csv"
	COHERENCECSV   = "topic_coherence.csv"
	TOPDOCSCSV     = "topic_top_documents.csv"
	SENTIMENTCSV   = "summary_sentiment.csv"
	CLASSIFIEDTAIL = "_genres.csv"

	// output charts

	HEATMAPHTML      = "topic_heatmap.html"
	TOPWORDSHTML     = "topic_top_words.html"
	SIMILARITYHTML   = "topic_similarity.html"
	PERIODSENTHTML   = "period_sentiments.html"
	PERIODCOUNTHTML  = "summaries_per_period.html"
	LENGTHPROPHTML   = "summary_length_proportions.html"
	LENGTHPERIODHTML = "summary_length_proportions_per_period.html"
	LENGTHCOUNTHTML  = "summary_length_count.html"
	TOPICSHAREHTML   = "topic_prevalence.html"
)

var (
	FICTIONALGENRES = []string{"Science Fiction", "Fantasy"}
)
