//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package ingest

import (
	"errors"

	"github.com/e-gun/MovieSummaryAnalyzer/internal/lnch"
)

var Msg = lnch.Msg

var (
	// ErrBadGenreMap is returned when a genre column is not a {"id": "name", ...} literal.
	ErrBadGenreMap = errors.New("ingest: malformed genre mapping")

	// ErrExists is returned instead of clobbering a file that is already there.
	ErrExists = errors.New("ingest: output file already exists")

	// ErrBadHeader is returned when a csv artifact does not carry the expected columns.
	ErrBadHeader = errors.New("ingest: unexpected csv header")
)
