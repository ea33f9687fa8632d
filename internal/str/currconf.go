//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

type CurrentConfiguration struct {
	BlackAndWhite bool          `yaml:"blackandwhite"`
	DataFolder    string        `yaml:"datafolder"`
	OutFolder     string        `yaml:"outfolder"`
	Files         CorpusFiles   `yaml:"files"`
	Fictional     []string      `yaml:"fictional"`
	LDA           LDAConfig     `yaml:"lda"`
	W2V           W2VConfig     `yaml:"w2v"`
	LogFile       string        `yaml:"logfile"`
	LogLevel      int           `yaml:"loglevel"`
	MinSummaries  int           `yaml:"minsummaries"`
	ProfileCPU    bool          `yaml:"profilecpu"`
	StopFile      string        `yaml:"stopfile"`
	WorkerCount   int           `yaml:"workercount"`
	Vectoriser    VectConfig    `yaml:"vectoriser"`
	Periods       PeriodsConfig `yaml:"periods"`
}

type CorpusFiles struct {
	Movies     string `yaml:"movies"`
	Characters string `yaml:"characters"`
	Summaries  string `yaml:"summaries"`
	NameClust  string `yaml:"nameclusters"`
	Tropes     string `yaml:"tropes"`
}

type LDAConfig struct {
	Topics         int     `yaml:"topics"`
	Alpha          float64 `yaml:"alpha"`
	Eta            float64 `yaml:"eta"`
	Iterations     int     `yaml:"iterations"`
	XformPasses    int     `yaml:"xformpasses"`
	BurnInPasses   int     `yaml:"burninpasses"`
	ChangeEvalFrq  int     `yaml:"changeevalfrq"`
	PerplexEvalFrq int     `yaml:"perplexevalfrq"`
	PerplexTol     float64 `yaml:"perplextol"`
	Seed           int64   `yaml:"seed"`
	TopWords       int     `yaml:"topwords"`
	TopDocs        int     `yaml:"topdocs"`
}

type VectConfig struct {
	MaxFeatures int     `yaml:"maxfeatures"`
	MinDF       int     `yaml:"mindf"`
	MaxDF       float64 `yaml:"maxdf"`
	NGramMax    int     `yaml:"ngrammax"`
	Binary      bool    `yaml:"binary"`
	Norm        bool    `yaml:"norm"`
	IDF         bool    `yaml:"idf"`
	Sublinear   bool    `yaml:"sublinear"`
}

type W2VConfig struct {
	Enabled   bool `yaml:"enabled"`
	Dim       int  `yaml:"dim"`
	Iter      int  `yaml:"iter"`
	Window    int  `yaml:"window"`
	MinCount  int  `yaml:"mincount"`
	Neighbors int  `yaml:"neighbors"`
}

// PeriodsConfig - optional time window for subsets; zero values mean "no limit"
type PeriodsConfig struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}
