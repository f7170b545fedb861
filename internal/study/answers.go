package study

import (
	"github.com/flamesResource6/studyboard/internal/catalog"
)

// CheckAnswer compares a submitted option index against the correct answer
// of a question, resolved through the same database-then-catalog path as the
// list operations. It never fails: malformed ids, unknown chapters and
// out-of-range positions all report false.
func (s *Service) CheckAnswer(chapterID, mcqID string, submitted int) bool {
	if mcq, err := s.db.GetMCQByID(mcqID); err == nil {
		return mcq.AnswerIndex == submitted
	}

	parentID, position, ok := catalog.ParseMCQID(mcqID)
	if !ok || parentID != chapterID {
		return false
	}
	seed, number, ok := s.chapterSeed(chapterID)
	if !ok {
		return false
	}
	mcqs := s.cat.MCQs(seed.Name, number)
	if position > len(mcqs) {
		return false
	}
	return mcqs[position-1].AnswerIndex == submitted
}
