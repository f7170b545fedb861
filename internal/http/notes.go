package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flamesResource6/studyboard/internal/audit"
	"github.com/flamesResource6/studyboard/internal/database"
	"github.com/flamesResource6/studyboard/internal/study"
)

type NotesController struct {
	service *study.Service
	auditor *audit.Auditor
}

func NewNotesController(service *study.Service, auditor *audit.Auditor) *NotesController {
	return &NotesController{service: service, auditor: auditor}
}

// ListNotes returns the user notes of a chapter. Notes only exist when a
// database is configured, so fallback mode yields an empty list.
// GET /api/chapters/:chapterId/notes
func (nc *NotesController) ListNotes(c *gin.Context) {
	chapterID := c.Param("chapterId")
	c.JSON(http.StatusOK, nc.service.ListNotes(chapterID))
}

// CreateNote stores a user note.
// POST /api/chapters/:chapterId/notes
func (nc *NotesController) CreateNote(c *gin.Context) {
	chapterID := c.Param("chapterId")

	var req struct {
		Title string  `json:"title" binding:"required"`
		Body  *string `json:"body"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "title is required")
		return
	}

	note, err := nc.service.CreateNote(chapterID, req.Title, req.Body)
	if err != nil {
		if errors.Is(err, database.ErrUnavailable) {
			respondServiceUnavailable(c, "database not configured")
			return
		}
		respondInternalError(c, err, "create note")
		return
	}

	if nc.auditor != nil {
		if _, err := nc.auditor.SaveJSON(note); err != nil {
			// Log but don't fail the request
			c.Writer.Header().Set("X-Audit-Warning", "Failed to save audit log")
		}
	}

	respondCreated(c, note)
}
