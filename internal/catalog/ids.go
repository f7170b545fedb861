package catalog

import (
	"strconv"
	"strings"
)

// Fallback identifiers are derived from catalog position so that repeated
// requests for the same logical entity always produce the same id:
//
//	subject  "2"        1-based position within the (board, standard) slice
//	chapter  "2-1"      subject id + "-" + chapter number
//	topic    "2-1-t3"   chapter id + "-t" + 1-based position
//	mcq      "2-1-q3"   chapter id + "-q" + 1-based position
//
// Database-backed records use UUID primary keys, which can never parse as
// one of these shapes, so the two id spaces stay distinguishable.

// SubjectID returns the fallback id for a subject at a 1-based position.
func SubjectID(position int) string {
	return strconv.Itoa(position)
}

// ChapterID returns the fallback id for a chapter under the given subject id.
func ChapterID(subjectID string, number int) string {
	return subjectID + "-" + strconv.Itoa(number)
}

// TopicID returns the fallback id for a topic at a 1-based position within
// its chapter.
func TopicID(chapterID string, position int) string {
	return chapterID + "-t" + strconv.Itoa(position)
}

// MCQID returns the fallback id for a question at a 1-based position within
// its chapter.
func MCQID(chapterID string, position int) string {
	return chapterID + "-q" + strconv.Itoa(position)
}

// ParseSubjectID recovers the 1-based catalog position from a fallback
// subject id. It reports false for anything this scheme did not mint.
func ParseSubjectID(id string) (position int, ok bool) {
	position, err := strconv.Atoi(id)
	if err != nil || position < 1 {
		return 0, false
	}
	return position, true
}

// ParseChapterID splits a fallback chapter id into its subject id and
// chapter number. The subject portion is everything before the first dash.
func ParseChapterID(id string) (subjectID string, number int, ok bool) {
	subjectID, rest, found := strings.Cut(id, "-")
	if !found || subjectID == "" {
		return "", 0, false
	}
	if _, ok := ParseSubjectID(subjectID); !ok {
		return "", 0, false
	}
	number, err := strconv.Atoi(rest)
	if err != nil || number < 1 {
		return "", 0, false
	}
	return subjectID, number, true
}

// ParseTopicID splits a fallback topic id into its chapter id and 1-based
// position.
func ParseTopicID(id string) (chapterID string, position int, ok bool) {
	return parseChildID(id, "-t")
}

// ParseMCQID splits a fallback question id into its chapter id and 1-based
// position.
func ParseMCQID(id string) (chapterID string, position int, ok bool) {
	return parseChildID(id, "-q")
}

func parseChildID(id, marker string) (chapterID string, position int, ok bool) {
	i := strings.LastIndex(id, marker)
	if i <= 0 {
		return "", 0, false
	}
	position, err := strconv.Atoi(id[i+len(marker):])
	if err != nil || position < 1 {
		return "", 0, false
	}
	return id[:i], position, true
}
