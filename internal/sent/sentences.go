//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package sent

import (
	"regexp"
	"strings"

	"github.com/jdkato/prose/v2"
)

var (
	terminal = regexp.MustCompile(`[^.!?]+[.!?]*`)
)

// Sentences - prose's punkt segmenter; a plain split on terminal punctuation if that fails
func Sentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithTokenization(false),
		prose.WithTagging(false),
		prose.WithExtraction(false))

	if err != nil {
		return splitonpunct(text)
	}

	var out []string
	for _, s := range doc.Sentences() {
		if t := strings.TrimSpace(s.Text); t != "" {
			out = append(out, t)
		}
	}

	if len(out) == 0 {
		return splitonpunct(text)
	}
	return out
}

func splitonpunct(text string) []string {
	var out []string
	for _, s := range terminal.FindAllString(text, -1) {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
