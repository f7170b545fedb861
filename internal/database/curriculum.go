package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/flamesResource6/studyboard/internal/entities"
)

// GetSubjects returns the subjects stored for a (board, standard) pair.
func (d *Database) GetSubjects(board, standard string) ([]entities.Subject, error) {
	if err := d.available(); err != nil {
		return nil, err
	}
	var subjects []entities.Subject
	err := d.DB.
		Where("board = ? AND standard = ?", board, standard).
		Order("created_at ASC").
		Find(&subjects).Error
	return subjects, err
}

func (d *Database) CreateSubject(subject *entities.Subject) error {
	if err := d.available(); err != nil {
		return err
	}
	return d.DB.Create(subject).Error
}

// GetChaptersBySubject returns the chapters owned by a subject id, ordered
// by chapter number.
func (d *Database) GetChaptersBySubject(subjectID string) ([]entities.Chapter, error) {
	if err := d.available(); err != nil {
		return nil, err
	}
	var chapters []entities.Chapter
	err := d.DB.
		Where("subject_id = ?", subjectID).
		Order("number ASC").
		Find(&chapters).Error
	return chapters, err
}

func (d *Database) CreateChapter(chapter *entities.Chapter) error {
	if err := d.available(); err != nil {
		return err
	}
	return d.DB.Create(chapter).Error
}

// GetSubjectByID returns a single subject or ErrNotFound.
func (d *Database) GetSubjectByID(id string) (*entities.Subject, error) {
	if err := d.available(); err != nil {
		return nil, err
	}
	var subject entities.Subject
	err := d.DB.Where("id = ?", id).First(&subject).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

func (d *Database) GetTopicsByChapter(chapterID string) ([]entities.Topic, error) {
	if err := d.available(); err != nil {
		return nil, err
	}
	var topics []entities.Topic
	err := d.DB.
		Where("chapter_id = ?", chapterID).
		Order("created_at ASC").
		Find(&topics).Error
	return topics, err
}

func (d *Database) CreateTopic(topic *entities.Topic) error {
	if err := d.available(); err != nil {
		return err
	}
	return d.DB.Create(topic).Error
}

func (d *Database) GetNotesByChapter(chapterID string) ([]entities.Note, error) {
	if err := d.available(); err != nil {
		return nil, err
	}
	var notes []entities.Note
	err := d.DB.
		Where("chapter_id = ?", chapterID).
		Order("created_at ASC").
		Find(&notes).Error
	return notes, err
}

func (d *Database) CreateNote(note *entities.Note) error {
	if err := d.available(); err != nil {
		return err
	}
	return d.DB.Create(note).Error
}

func (d *Database) GetMCQsByChapter(chapterID string) ([]entities.MCQ, error) {
	if err := d.available(); err != nil {
		return nil, err
	}
	var mcqs []entities.MCQ
	err := d.DB.
		Where("chapter_id = ?", chapterID).
		Order("created_at ASC").
		Find(&mcqs).Error
	return mcqs, err
}

func (d *Database) CreateMCQ(mcq *entities.MCQ) error {
	if err := d.available(); err != nil {
		return err
	}
	return d.DB.Create(mcq).Error
}

// GetMCQByID returns a single question or ErrNotFound.
func (d *Database) GetMCQByID(id string) (*entities.MCQ, error) {
	if err := d.available(); err != nil {
		return nil, err
	}
	var mcq entities.MCQ
	err := d.DB.Where("id = ?", id).First(&mcq).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &mcq, nil
}
