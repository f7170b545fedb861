// Package study implements the curriculum read/write operations behind the
// API. Every read prefers the database and degrades to synthesizing an
// identical-shaped result from the seed catalog, so clients cannot tell
// whether a database is configured.
package study

import (
	"errors"

	"github.com/flamesResource6/studyboard/internal/catalog"
	"github.com/flamesResource6/studyboard/internal/database"
)

// ErrSubjectNotFound is returned when a subject id resolves to nothing in
// either the database or the seed catalog.
var ErrSubjectNotFound = errors.New("subject not found")

type Service struct {
	db  *database.Database
	cat *catalog.Catalog

	// Fallback subject ids are positions within the catalog filtered to a
	// (board, standard) pair. Child reads only carry the parent id, so
	// decoding re-derives positions against this default pair.
	board    string
	standard string
}

func NewService(db *database.Database, cat *catalog.Catalog, board, standard string) *Service {
	return &Service{
		db:       db,
		cat:      cat,
		board:    board,
		standard: standard,
	}
}

// chapterSeed decodes a fallback chapter id to its catalog entry. It reports
// false for database ids, malformed ids and positions outside the catalog.
func (s *Service) chapterSeed(chapterID string) (catalog.Subject, int, bool) {
	subjectID, number, ok := catalog.ParseChapterID(chapterID)
	if !ok {
		return catalog.Subject{}, 0, false
	}
	position, _ := catalog.ParseSubjectID(subjectID)
	seed, ok := s.cat.SubjectAt(s.board, s.standard, position)
	if !ok {
		return catalog.Subject{}, 0, false
	}
	if _, ok := s.cat.Chapter(seed.Name, number); !ok {
		return catalog.Subject{}, 0, false
	}
	return seed, number, true
}

// optional maps empty seed fields to NULL instead of empty strings.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
