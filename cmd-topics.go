//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/e-gun/MovieSummaryAnalyzer/internal/graph"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/ingest"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/lnch"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/vec"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/vv"
	"github.com/spf13/cobra"
)

var (
	topicsin  string
	ntopics   int
	noembed   bool
	tfidfflag bool
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Fit an LDA topic model to the preprocessed summaries; write tables and charts",
	Args:  cobra.NoArgs,
	RunE:  runtopics,
}

func init() {
	topicsCmd.Flags().StringVar(&topicsin, "in", "", "preprocessed table to read (default: "+vv.PREPROCCSV+" in the output folder)")
	topicsCmd.Flags().IntVar(&ntopics, "k", vv.LDATOPICS, "number of topics")
	topicsCmd.Flags().BoolVar(&noembed, "noembed", false, "skip the word2vec coherence and neighbours")
	topicsCmd.Flags().BoolVar(&tfidfflag, "tfidf", false, "weigh the document-term matrix by tf-idf (l1 normalized)")
}

func runtopics(cmd *cobra.Command, args []string) error {
	const (
		MSG1 = "Topic %d: %s"
		MSG2 = "mean UMass coherence: %.4f"
		MSG3 = "mean embedding coherence: %.4f"
		MSG4 = "Topic %d: neighbours of »%s«: %s"
		WRN1 = "skipping the embeddings: %s"
	)
	start := time.Now()
	previous := time.Now()
	cfg := lnch.Config

	if cmd.Flags().Changed("k") {
		cfg.LDA.Topics = ntopics
	}
	if cmd.Flags().Changed("noembed") {
		cfg.W2V.Enabled = !noembed
	}
	if tfidfflag {
		cfg.Vectoriser.Binary = false
		cfg.Vectoriser.IDF = true
		cfg.Vectoriser.Norm = true
	}

	// [a] the documents
	in := topicsin
	if in == "" {
		in = outpath(vv.PREPROCCSV)
	}
	ss, err := ingest.ReadSummariesCSV(in)
	if err != nil {
		return err
	}
	docs := make([]string, len(ss))
	for i := range ss {
		docs[i] = ss[i].Preprocessed
		if docs[i] == "" {
			docs[i] = ss[i].Text
		}
	}

	// [b] vectorise and fit
	dtm, err := vec.Vectorise(docs, vec.VectoriserOptionsFromConfig(cfg.Vectoriser))
	if err != nil {
		return err
	}
	Msg.Timer("T1", fmt.Sprintf("vectorised %d documents over %d terms", dtm.NDocs, len(dtm.Vocab)), start, previous)

	previous = time.Now()
	model, err := vec.FitLDA(dtm, vec.LDAOptionsFromConfig(cfg.LDA, cfg.WorkerCount))
	if err != nil {
		return err
	}
	Msg.Timer("T2", fmt.Sprintf("fit %d topics", model.K()), start, previous)

	for t, ww := range vec.ShowTopics(model, cfg.LDA.TopWords) {
		Msg.NOTE(fmt.Sprintf(MSG1, t, strings.Join(ww, ", ")))
	}

	// [c] tables
	previous = time.Now()
	table := vec.TopWordsWeights(model, cfg.LDA.TopWords)
	if err = vec.WriteTopWordsCSV(outpath(vv.TOPWORDSCSV), table); err != nil {
		return err
	}
	if err = vec.WriteTopDocumentsCSV(outpath(vv.TOPDOCSCSV), model, vec.TopDocuments(model, cfg.LDA.TopDocs), ss); err != nil {
		return err
	}
	sim := vec.TopicSimilarity(model)
	if err = vec.WriteSimilarityCSV(outpath(vv.SIMILARITYCSV), sim); err != nil {
		return err
	}

	umass, mean := vec.UMassCoherence(model, dtm, cfg.LDA.TopWords)
	Msg.NOTE(fmt.Sprintf(MSG2, mean))

	// [d] embeddings
	var embc []float64
	if cfg.W2V.Enabled {
		emb, e := vec.TrainEmbeddings(cmd.Context(), docs, vec.W2VOptionsFromConfig(cfg.W2V, cfg.WorkerCount))
		if e != nil {
			Msg.WARN(fmt.Sprintf(WRN1, e))
		} else {
			var em float64
			embc, em = vec.EmbeddingCoherence(model, emb, cfg.LDA.TopWords)
			Msg.NOTE(fmt.Sprintf(MSG3, em))

			nn, e := vec.TopicNeighbours(model, emb, cfg.W2V.Neighbors)
			if e != nil {
				return e
			}
			for _, n := range nn {
				var ww []string
				for _, x := range n.Neighbors {
					ww = append(ww, fmt.Sprintf("%s (%.3f)", x.Word, x.Similarity))
				}
				Msg.FYI(fmt.Sprintf(MSG4, n.Topic, n.Word, strings.Join(ww, ", ")))
			}
		}
	}

	if err = vec.WriteCoherenceCSV(outpath(vv.COHERENCECSV), umass, embc); err != nil {
		return err
	}
	Msg.Timer("T3", "wrote the topic tables", start, previous)

	// [e] charts
	previous = time.Now()
	if err = graph.TopWordsHeatmap(outpath(vv.HEATMAPHTML), table); err != nil {
		return err
	}
	if err = graph.TopWordsBars(outpath(vv.TOPWORDSHTML), table); err != nil {
		return err
	}
	if err = graph.SimilarityHeatmap(outpath(vv.SIMILARITYHTML), sim); err != nil {
		return err
	}
	if err = graph.TopicPrevalence(outpath(vv.TOPICSHAREHTML), vec.DominantTopicCounts(model), vec.ScaledTopicWeights(model)); err != nil {
		return err
	}
	Msg.Timer("T4", "drew the topic charts", start, previous)
	return nil
}
