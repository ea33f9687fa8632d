//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import (
	"time"
)

//
// CMU MOVIE SUMMARY CORPUS RECORDS
//

// NullFloat - a number that might not have been present (or parseable) in the source file
type NullFloat struct {
	V     float64
	Valid bool
}

// NullDate - a release date; the corpus mixes "1987", "1987-05" and "1987-05-22"
type NullDate struct {
	T     time.Time
	Valid bool
}

// Year - the year or 0 if the date is missing
func (d NullDate) Year() int {
	if !d.Valid {
		return 0
	}
	return d.T.Year()
}

// KV - one entry of a serialized freebase mapping: {"/m/07s9rl0": "Drama"}
type KV struct {
	K string
	V string
}

type Movie struct {
	WikiID     int
	FreebaseID string
	Name       string
	ReleaseRaw string
	Release    NullDate
	BoxOffice  NullFloat
	Runtime    NullFloat
	Languages  string
	Countries  string
	GenresRaw  string
}

type Character struct {
	WikiID         int
	FreebaseID     string
	ReleaseRaw     string
	Release        NullDate
	Name           string
	ActorBirthRaw  string
	ActorBirth     NullDate
	ActorGender    string
	ActorHeight    NullFloat
	ActorEthnicity string
	ActorName      string
	ActorAge       NullFloat
	CharActorMapID string
	CharacterID    string
	ActorID        string
}

type Summary struct {
	WikiID       int
	Text         string
	Preprocessed string
}

type NameCluster struct {
	CharacterName string
	InstanceCode  string
}

type Trope struct {
	CharacterType string
	InstanceRef   string
}

// GenreRel - one row of the flattened movie <-> genre relation
type GenreRel struct {
	WikiID  int
	GenreID string
	Genre   string
}

// Genre - a distinct (id, name) pair
type Genre struct {
	ID   string
	Name string
}

// Classified - one row of an operator's genre classification table
type Classified struct {
	Genre          string
	Classification int
}
