//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"github.com/e-gun/MovieSummaryAnalyzer/internal/mm"
)

// UpdateMessageMakerWithConfig - the config is read after Msg exists; sync the two
func UpdateMessageMakerWithConfig(m *mm.MessageMaker) {
	m.BW = Config.BlackAndWhite
	m.LLvl = Config.LogLevel
}

// AttachLogFile - mirror everything Msg says into a json log at fn
func AttachLogFile(m *mm.MessageMaker, fn string, runid string) error {
	if fn == "" {
		return nil
	}
	l, err := mm.NewFileSink(fn, runid)
	if err != nil {
		return err
	}
	m.Sink = l
	m.RunID = runid
	return nil
}
