package study

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flamesResource6/studyboard/internal/catalog"
	"github.com/flamesResource6/studyboard/internal/config"
	"github.com/flamesResource6/studyboard/internal/database"
	"github.com/flamesResource6/studyboard/internal/entities"
)

func TestListSubjectsFallback(t *testing.T) {
	svc := newFallbackService()

	subjects := svc.ListSubjects(config.DefaultBoard, config.DefaultStandard)
	require.Len(t, subjects, 4)
	for i, subject := range subjects {
		assert.Equal(t, catalog.SubjectID(i+1), subject.ID)
		assert.Equal(t, config.DefaultBoard, subject.Board)
		assert.Equal(t, config.DefaultStandard, subject.Standard)
	}
	assert.Equal(t, "Economics", subjects[0].Name)

	t.Run("unknown board yields an empty list", func(t *testing.T) {
		subjects := svc.ListSubjects("CBSE", "12")
		assert.NotNil(t, subjects)
		assert.Empty(t, subjects)
	})
}

func TestListSubjectsFromDatabase(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	svc := newTestService(db)

	subjects := svc.ListSubjects(config.DefaultBoard, config.DefaultStandard)
	require.Len(t, subjects, 4)
	for _, subject := range subjects {
		assert.Len(t, subject.ID, 36, "stored subjects carry generated ids, not positions")
	}
}

func TestListChaptersFallback(t *testing.T) {
	svc := newFallbackService()

	chapters, err := svc.ListChapters("1")
	require.NoError(t, err)
	require.Len(t, chapters, 2)
	assert.Equal(t, "1-1", chapters[0].ID)
	assert.Equal(t, "1-2", chapters[1].ID)
	assert.Equal(t, "Introduction to Micro Economics", chapters[0].Title)

	t.Run("unknown subject id", func(t *testing.T) {
		for _, id := range []string{"zzz", "0", "99", "b6f9c2e0-1111-4222-8333-444455556666"} {
			_, err := svc.ListChapters(id)
			assert.ErrorIs(t, err, ErrSubjectNotFound, "id %q", id)
		}
	})
}

func TestListChaptersFromDatabase(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	svc := newTestService(db)

	svc.EnsureSeed(config.DefaultBoard, config.DefaultStandard)
	subjects, err := db.GetSubjects(config.DefaultBoard, config.DefaultStandard)
	require.NoError(t, err)

	chapters, err := svc.ListChapters(subjects[0].ID)
	require.NoError(t, err)
	require.Len(t, chapters, 2)
	assert.Equal(t, subjects[0].ID, chapters[0].SubjectID)
	assert.Equal(t, 1, chapters[0].Number)
}

func TestListChaptersForStoredSubjectWithoutChapters(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	svc := newTestService(db)

	subject := &entities.Subject{
		Board:    config.DefaultBoard,
		Standard: config.DefaultStandard,
		Name:     "Economics",
	}
	require.NoError(t, db.CreateSubject(subject))

	chapters, err := svc.ListChapters(subject.ID)
	require.NoError(t, err)
	require.Len(t, chapters, 2, "catalog chapters should serve a subject row that was never seeded")
	assert.Equal(t, catalog.ChapterID(subject.ID, 1), chapters[0].ID)
	assert.Equal(t, subject.ID, chapters[0].SubjectID)
}

func TestListTopics(t *testing.T) {
	svc := newFallbackService()

	t.Run("fallback chapter id", func(t *testing.T) {
		topics := svc.ListTopics("1-1")
		require.Len(t, topics, 3)
		assert.Equal(t, "1-1-t1", topics[0].ID)
		assert.Equal(t, "1-1", topics[0].ChapterID)
		assert.NotEmpty(t, topics[0].Title)
	})

	t.Run("unresolvable chapter id yields an empty list", func(t *testing.T) {
		for _, id := range []string{"zzz", "1-99", "99-1", "b6f9c2e0-1111-4222-8333-444455556666"} {
			topics := svc.ListTopics(id)
			assert.NotNil(t, topics, "id %q", id)
			assert.Empty(t, topics, "id %q", id)
		}
	})
}

func TestListMCQsFallback(t *testing.T) {
	svc := newFallbackService()

	mcqs := svc.ListMCQs("1-1")
	require.Len(t, mcqs, 2)
	assert.Equal(t, "1-1-q1", mcqs[0].ID)
	assert.Equal(t, "1-1-q2", mcqs[1].ID)
	require.GreaterOrEqual(t, len(mcqs[0].Options), 2)
	assert.Less(t, mcqs[0].AnswerIndex, len(mcqs[0].Options))

	assert.Empty(t, svc.ListMCQs("garbage"))
}

func TestNotes(t *testing.T) {
	t.Run("no database", func(t *testing.T) {
		svc := newFallbackService()

		notes := svc.ListNotes("1-1")
		assert.NotNil(t, notes)
		assert.Empty(t, notes, "notes have no seed fallback")

		_, err := svc.CreateNote("1-1", "Revision", nil)
		assert.ErrorIs(t, err, database.ErrUnavailable)
	})

	t.Run("with database", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()
		svc := newTestService(db)

		body := "Re-read the definitions before the exam."
		note, err := svc.CreateNote("1-1", "Revision", &body)
		require.NoError(t, err)
		assert.NotEmpty(t, note.ID)

		notes := svc.ListNotes("1-1")
		require.Len(t, notes, 1)
		assert.Equal(t, "Revision", notes[0].Title)
	})
}

func TestCreateMCQ(t *testing.T) {
	t.Run("no database", func(t *testing.T) {
		svc := newFallbackService()
		_, err := svc.CreateMCQ("1-1", "Question?", []string{"a", "b"}, 0)
		assert.ErrorIs(t, err, database.ErrUnavailable)
	})

	t.Run("with database", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()
		svc := newTestService(db)

		mcq, err := svc.CreateMCQ("1-1", "Question?", []string{"a", "b"}, 1)
		require.NoError(t, err)
		assert.NotEmpty(t, mcq.ID)

		stored := svc.ListMCQs("1-1")
		require.Len(t, stored, 1)
		assert.Equal(t, 1, stored[0].AnswerIndex)
	})
}
