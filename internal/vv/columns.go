//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

//
// POSITIONAL COLUMNS OF THE CORPUS FILES
//

const (
	MOVIECOLS     = 9
	CHARACTERCOLS = 13
	SUMMARYCOLS   = 2
	CLUSTERCOLS   = 2
)

var (
	MovieColumns = []string{"Wikipedia_movie_ID", "Freebase_movie_ID", "Movie_name", "Movie_release_date",
		"Movie_box_office_revenu", "Movie_runtime", "Movie_languages", "Movie_countries", "Movie_genres"}

	CharacterColumns = []string{"wiki_movie_id", "freebase_movie_id", "release_date", "character_name",
		"actor_birth_date", "actor_gender", "actor_height_m", "actor_ethnicity_id", "actor_name",
		"actor_age_at_release", "character_actor_map_id", "character_id", "actor_id"}

	GenreColumns      = []string{"Wikipedia_movie_ID", "Movie_genre_ID", "Movie_genre"}
	SummaryColumns    = []string{"Wikipedia_movie_ID", "movie_summary"}
	PreprocColumns    = []string{"Wikipedia_movie_ID", "movie_summary", "preprocessed_summary"}
	ClassifiedColumns = []string{"index", "Movie_genre", "Classification"}
	SentimentColumns  = []string{"Wikipedia_movie_ID", "release_year", "n_sentences", "sentence_sentiment_score"}
)

//
// RELEASE PERIODS
//

// TimePeriods are the bin edges; each bin is (TimePeriods[i-1], TimePeriods[i]]
var TimePeriods = []int{0, 1950, 1960, 1970, 1980, 1990, 2000, 2005, 2010, 2023}

var TimePeriodLabels = []string{"before 1950", "50s", "60s", "70s", "80s", "90s", "2000-2005", "2005-2010", "after 2010s"}

const (
	MINSUMMARIES  = 100
	SHORTSUMMLOW  = 1
	SHORTSUMMHIGH = 20 // exclusive
	MAXSENTLEN    = 100
)

// TableauColors - the ten matplotlib "tab:" colors
var TableauColors = []string{"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf"}
