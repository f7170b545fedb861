package study

import (
	"errors"
	"fmt"
	"log"

	"github.com/flamesResource6/studyboard/internal/database"
	"github.com/flamesResource6/studyboard/internal/entities"
)

// EnsureSeed copies missing seed catalog entries for (board, standard) into
// the database. It is idempotent: re-invocation when the data already exists
// performs zero writes. A database error leaves the system serving fallback
// content and is never surfaced to the caller.
func (s *Service) EnsureSeed(board, standard string) {
	err := s.reconcile(board, standard)
	if err == nil || errors.Is(err, database.ErrUnavailable) {
		return
	}
	log.Printf("Seed reconciliation failed, serving fallback content: %v", err)
}

func (s *Service) reconcile(board, standard string) error {
	existing, err := s.db.GetSubjects(board, standard)
	if err != nil {
		return err
	}

	idByName := make(map[string]string, len(existing))
	for _, subject := range existing {
		idByName[subject.Name] = subject.ID
	}

	for _, seed := range s.cat.Subjects() {
		if seed.Board != board || seed.Standard != standard {
			continue
		}
		if _, ok := idByName[seed.Name]; ok {
			continue
		}
		subject := &entities.Subject{
			Board:       seed.Board,
			Standard:    seed.Standard,
			Name:        seed.Name,
			Stream:      optional(seed.Stream),
			Description: optional(seed.Description),
			Icon:        optional(seed.Icon),
		}
		if err := s.db.CreateSubject(subject); err != nil {
			return fmt.Errorf("seeding subject %q: %w", seed.Name, err)
		}
		idByName[seed.Name] = subject.ID
	}

	// Chapter, topic and MCQ seeding walks the whole catalog rather than
	// filtering to (board, standard) like the subject loop; subjects with no
	// database record are skipped.
	for _, seed := range s.cat.Subjects() {
		subjectID, ok := idByName[seed.Name]
		if !ok {
			continue
		}
		if err := s.reconcileChapters(seed.Name, subjectID); err != nil {
			return err
		}
	}
	return nil
}

// reconcileChapters seeds the chapter list for a subject when it has zero
// chapters recorded, then seeds topics and MCQs for chapters that have zero
// children of the respective kind.
func (s *Service) reconcileChapters(subjectName, subjectID string) error {
	chapters, err := s.db.GetChaptersBySubject(subjectID)
	if err != nil {
		return err
	}

	chapterIDs := make(map[int]string, len(chapters))
	if len(chapters) == 0 {
		for _, seed := range s.cat.Chapters(subjectName) {
			chapter := &entities.Chapter{
				SubjectID: subjectID,
				Number:    seed.Number,
				Title:     seed.Title,
				Summary:   optional(seed.Summary),
			}
			if err := s.db.CreateChapter(chapter); err != nil {
				return fmt.Errorf("seeding chapter %d of %q: %w", seed.Number, subjectName, err)
			}
			chapterIDs[seed.Number] = chapter.ID
		}
	} else {
		for _, chapter := range chapters {
			chapterIDs[chapter.Number] = chapter.ID
		}
	}

	for _, seed := range s.cat.Chapters(subjectName) {
		chapterID, ok := chapterIDs[seed.Number]
		if !ok {
			continue
		}
		if err := s.reconcileTopics(subjectName, seed.Number, chapterID); err != nil {
			return err
		}
		if err := s.reconcileMCQs(subjectName, seed.Number, chapterID); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) reconcileTopics(subjectName string, number int, chapterID string) error {
	topics, err := s.db.GetTopicsByChapter(chapterID)
	if err != nil {
		return err
	}
	if len(topics) > 0 {
		return nil
	}
	for _, seed := range s.cat.Topics(subjectName, number) {
		topic := &entities.Topic{
			ChapterID: chapterID,
			Title:     seed.Title,
			Content:   optional(seed.Content),
			Resources: entities.StringList{},
		}
		if err := s.db.CreateTopic(topic); err != nil {
			return fmt.Errorf("seeding topics for chapter %d of %q: %w", number, subjectName, err)
		}
	}
	return nil
}

func (s *Service) reconcileMCQs(subjectName string, number int, chapterID string) error {
	mcqs, err := s.db.GetMCQsByChapter(chapterID)
	if err != nil {
		return err
	}
	if len(mcqs) > 0 {
		return nil
	}
	for _, seed := range s.cat.MCQs(subjectName, number) {
		mcq := &entities.MCQ{
			ChapterID:   chapterID,
			Question:    seed.Question,
			Options:     seed.Options,
			AnswerIndex: seed.AnswerIndex,
		}
		if err := s.db.CreateMCQ(mcq); err != nil {
			return fmt.Errorf("seeding questions for chapter %d of %q: %w", number, subjectName, err)
		}
	}
	return nil
}
