package entities

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringList stores an ordered list of strings as a JSON text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *StringList) Scan(value any) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case string:
		return json.Unmarshal([]byte(v), l)
	case []byte:
		return json.Unmarshal(v, l)
	default:
		return errors.New("unsupported type for StringList")
	}
}

// Subject is a board/standard curriculum subject, e.g. HSC 12th Economics.
// A subject is unique per (board, standard, name).
type Subject struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Board       string    `gorm:"uniqueIndex:idx_subjects_board_standard_name;size:100" json:"board"`
	Standard    string    `gorm:"uniqueIndex:idx_subjects_board_standard_name;size:20" json:"standard"`
	Name        string    `gorm:"uniqueIndex:idx_subjects_board_standard_name;size:256" json:"name"`
	Stream      *string   `gorm:"size:50" json:"stream"`
	Description *string   `gorm:"size:1024" json:"description"`
	Icon        *string   `gorm:"size:16" json:"icon"`
	CreatedAt   time.Time `json:"-"`
}

// Chapter belongs to a subject and is unique per (subject_id, number).
type Chapter struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	SubjectID string    `gorm:"uniqueIndex:idx_chapters_subject_number;index;size:64" json:"subject_id"`
	Number    int       `gorm:"uniqueIndex:idx_chapters_subject_number" json:"number"`
	Title     string    `gorm:"size:512" json:"title"`
	Summary   *string   `gorm:"size:1024" json:"summary"`
	CreatedAt time.Time `json:"-"`
}

// Topic is a unit of study content inside a chapter.
type Topic struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	ChapterID string     `gorm:"index;size:64" json:"chapter_id"`
	Title     string     `gorm:"size:512" json:"title"`
	Content   *string    `gorm:"type:text" json:"content"`
	Resources StringList `gorm:"type:text" json:"resources"`
	CreatedAt time.Time  `json:"-"`
}

// Note is user-authored chapter material. Notes only exist when a database
// is configured; there is no seed equivalent.
type Note struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	ChapterID string    `gorm:"index;size:64" json:"chapter_id"`
	Title     string    `gorm:"size:512" json:"title"`
	Body      *string   `gorm:"type:text" json:"body"`
	CreatedAt time.Time `json:"-"`
}

// MCQ is a multiple-choice question. AnswerIndex is a 0-based index into
// Options, validated against the options list when the question is created.
type MCQ struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	ChapterID   string     `gorm:"index;size:64" json:"chapter_id"`
	Question    string     `gorm:"type:text" json:"question"`
	Options     StringList `gorm:"type:text" json:"options"`
	AnswerIndex int        `json:"answer_index"`
	CreatedAt   time.Time  `json:"-"`
}

func (s *Subject) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func (c *Chapter) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (t *Topic) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

func (n *Note) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}

func (m *MCQ) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func (Subject) TableName() string {
	return "subjects"
}

func (Chapter) TableName() string {
	return "chapters"
}

func (Topic) TableName() string {
	return "topics"
}

func (Note) TableName() string {
	return "notes"
}

func (MCQ) TableName() string {
	return "mcqs"
}
