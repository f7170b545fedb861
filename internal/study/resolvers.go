package study

import (
	"errors"
	"log"

	"github.com/flamesResource6/studyboard/internal/catalog"
	"github.com/flamesResource6/studyboard/internal/database"
	"github.com/flamesResource6/studyboard/internal/entities"
)

// ListSubjects reconciles the seed catalog into the database and returns the
// stored subjects for (board, standard), or synthesizes them from the
// catalog with positional ids when the database cannot serve them.
func (s *Service) ListSubjects(board, standard string) []entities.Subject {
	s.EnsureSeed(board, standard)

	subjects, err := s.db.GetSubjects(board, standard)
	if err == nil && len(subjects) > 0 {
		return subjects
	}
	if err != nil && !errors.Is(err, database.ErrUnavailable) {
		log.Printf("Subject query failed, serving fallback content: %v", err)
	}

	seeds := s.cat.SubjectsFor(board, standard)
	out := make([]entities.Subject, 0, len(seeds))
	for i, seed := range seeds {
		out = append(out, entities.Subject{
			ID:          catalog.SubjectID(i + 1),
			Board:       seed.Board,
			Standard:    seed.Standard,
			Name:        seed.Name,
			Stream:      optional(seed.Stream),
			Description: optional(seed.Description),
			Icon:        optional(seed.Icon),
		})
	}
	return out
}

// ListChapters returns the chapters for a subject id, from the database when
// it has them and otherwise from the seed catalog. A subject id that
// resolves to nothing in either mode yields ErrSubjectNotFound.
func (s *Service) ListChapters(subjectID string) ([]entities.Chapter, error) {
	chapters, err := s.db.GetChaptersBySubject(subjectID)
	if err == nil {
		if len(chapters) > 0 {
			return chapters, nil
		}
		// The id may name a stored subject whose chapters were never
		// seeded; its catalog entry can still serve.
		if subject, err := s.db.GetSubjectByID(subjectID); err == nil {
			if seeds := s.cat.Chapters(subject.Name); len(seeds) > 0 {
				return synthesizeChapters(subjectID, seeds), nil
			}
		}
	} else if !errors.Is(err, database.ErrUnavailable) {
		log.Printf("Chapter query failed, serving fallback content: %v", err)
	}

	if position, ok := catalog.ParseSubjectID(subjectID); ok {
		if seed, ok := s.cat.SubjectAt(s.board, s.standard, position); ok {
			return synthesizeChapters(subjectID, s.cat.Chapters(seed.Name)), nil
		}
	}
	return nil, ErrSubjectNotFound
}

func synthesizeChapters(subjectID string, seeds []catalog.Chapter) []entities.Chapter {
	out := make([]entities.Chapter, 0, len(seeds))
	for _, seed := range seeds {
		out = append(out, entities.Chapter{
			ID:        catalog.ChapterID(subjectID, seed.Number),
			SubjectID: subjectID,
			Number:    seed.Number,
			Title:     seed.Title,
			Summary:   optional(seed.Summary),
		})
	}
	return out
}

// ListTopics returns the topics for a chapter id. An id that resolves to
// nothing in either mode yields an empty list, never an error.
func (s *Service) ListTopics(chapterID string) []entities.Topic {
	topics, err := s.db.GetTopicsByChapter(chapterID)
	if err == nil && len(topics) > 0 {
		return topics
	}
	if err != nil && !errors.Is(err, database.ErrUnavailable) {
		log.Printf("Topic query failed, serving fallback content: %v", err)
	}

	out := make([]entities.Topic, 0)
	seed, number, ok := s.chapterSeed(chapterID)
	if !ok {
		return out
	}
	for i, topic := range s.cat.Topics(seed.Name, number) {
		out = append(out, entities.Topic{
			ID:        catalog.TopicID(chapterID, i+1),
			ChapterID: chapterID,
			Title:     topic.Title,
			Content:   optional(topic.Content),
			Resources: entities.StringList{},
		})
	}
	return out
}

// ListMCQs returns the questions for a chapter id. An id that resolves to
// nothing in either mode yields an empty list, never an error.
func (s *Service) ListMCQs(chapterID string) []entities.MCQ {
	mcqs, err := s.db.GetMCQsByChapter(chapterID)
	if err == nil && len(mcqs) > 0 {
		return mcqs
	}
	if err != nil && !errors.Is(err, database.ErrUnavailable) {
		log.Printf("MCQ query failed, serving fallback content: %v", err)
	}

	out := make([]entities.MCQ, 0)
	seed, number, ok := s.chapterSeed(chapterID)
	if !ok {
		return out
	}
	for i, mcq := range s.cat.MCQs(seed.Name, number) {
		out = append(out, entities.MCQ{
			ID:          catalog.MCQID(chapterID, i+1),
			ChapterID:   chapterID,
			Question:    mcq.Question,
			Options:     mcq.Options,
			AnswerIndex: mcq.AnswerIndex,
		})
	}
	return out
}

// ListNotes returns the user notes for a chapter id. Notes only exist in the
// database, so an unavailable database yields an empty list.
func (s *Service) ListNotes(chapterID string) []entities.Note {
	notes, err := s.db.GetNotesByChapter(chapterID)
	if err != nil {
		if !errors.Is(err, database.ErrUnavailable) {
			log.Printf("Note query failed: %v", err)
		}
		return make([]entities.Note, 0)
	}
	return notes
}

// CreateNote stores a user note. It returns database.ErrUnavailable when no
// database is configured; notes have no fallback representation.
func (s *Service) CreateNote(chapterID, title string, body *string) (*entities.Note, error) {
	note := &entities.Note{
		ChapterID: chapterID,
		Title:     title,
		Body:      body,
	}
	if err := s.db.CreateNote(note); err != nil {
		return nil, err
	}
	return note, nil
}

// CreateMCQ stores a user-submitted question. It returns
// database.ErrUnavailable when no database is configured.
func (s *Service) CreateMCQ(chapterID, question string, options []string, answerIndex int) (*entities.MCQ, error) {
	mcq := &entities.MCQ{
		ChapterID:   chapterID,
		Question:    question,
		Options:     options,
		AnswerIndex: answerIndex,
	}
	if err := s.db.CreateMCQ(mcq); err != nil {
		return nil, err
	}
	return mcq, nil
}
