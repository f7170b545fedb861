// Package catalog holds the static curriculum shipped with the binary.
//
// The catalog is the single source of truth for seed reconciliation and for
// fallback responses when no database is configured, which keeps the two
// serving modes from ever diverging in content. A Catalog is immutable after
// construction and safe for concurrent use.
package catalog

type Subject struct {
	Board       string
	Standard    string
	Name        string
	Stream      string
	Description string
	Icon        string
}

type Chapter struct {
	Number  int
	Title   string
	Summary string
}

type Topic struct {
	Title   string
	Content string
}

type MCQ struct {
	Question    string
	Options     []string
	AnswerIndex int
}

type chapterKey struct {
	subject string
	number  int
}

type Catalog struct {
	subjects []Subject
	chapters map[string][]Chapter
	topics   map[chapterKey][]Topic
	mcqs     map[chapterKey][]MCQ
}

// Default returns the built-in curriculum catalog.
func Default() *Catalog {
	return &Catalog{
		subjects: seedSubjects,
		chapters: seedChapters,
		topics:   seedTopics,
		mcqs:     seedMCQs,
	}
}

// Subjects returns every catalog subject in catalog order.
func (c *Catalog) Subjects() []Subject {
	out := make([]Subject, len(c.subjects))
	copy(out, c.subjects)
	return out
}

// SubjectsFor returns the subjects for a (board, standard) pair in catalog
// order.
func (c *Catalog) SubjectsFor(board, standard string) []Subject {
	var out []Subject
	for _, s := range c.subjects {
		if s.Board == board && s.Standard == standard {
			out = append(out, s)
		}
	}
	return out
}

// SubjectAt returns the subject at a 1-based position within the
// (board, standard) slice of the catalog. Positions are what fallback
// subject ids encode.
func (c *Catalog) SubjectAt(board, standard string, position int) (Subject, bool) {
	filtered := c.SubjectsFor(board, standard)
	if position < 1 || position > len(filtered) {
		return Subject{}, false
	}
	return filtered[position-1], true
}

// Chapters returns the ordered chapter list for a subject name.
func (c *Catalog) Chapters(subjectName string) []Chapter {
	chapters := c.chapters[subjectName]
	out := make([]Chapter, len(chapters))
	copy(out, chapters)
	return out
}

// Chapter returns the chapter with the given number for a subject name.
func (c *Catalog) Chapter(subjectName string, number int) (Chapter, bool) {
	for _, ch := range c.chapters[subjectName] {
		if ch.Number == number {
			return ch, true
		}
	}
	return Chapter{}, false
}

// Topics returns the ordered topic list for a (subject name, chapter number)
// pair.
func (c *Catalog) Topics(subjectName string, number int) []Topic {
	topics := c.topics[chapterKey{subjectName, number}]
	out := make([]Topic, len(topics))
	copy(out, topics)
	return out
}

// MCQs returns the ordered question list for a (subject name, chapter number)
// pair.
func (c *Catalog) MCQs(subjectName string, number int) []MCQ {
	mcqs := c.mcqs[chapterKey{subjectName, number}]
	out := make([]MCQ, len(mcqs))
	copy(out, mcqs)
	return out
}
