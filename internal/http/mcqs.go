package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flamesResource6/studyboard/internal/audit"
	"github.com/flamesResource6/studyboard/internal/database"
	"github.com/flamesResource6/studyboard/internal/study"
)

type MCQsController struct {
	service *study.Service
	auditor *audit.Auditor
}

func NewMCQsController(service *study.Service, auditor *audit.Auditor) *MCQsController {
	return &MCQsController{service: service, auditor: auditor}
}

// ListMCQs returns the questions of a chapter. Unresolvable chapter ids
// yield an empty list rather than an error.
// GET /api/chapters/:chapterId/mcqs
func (mc *MCQsController) ListMCQs(c *gin.Context) {
	chapterID := c.Param("chapterId")
	c.JSON(http.StatusOK, mc.service.ListMCQs(chapterID))
}

// CreateMCQ stores a user-submitted question.
// POST /api/chapters/:chapterId/mcqs
func (mc *MCQsController) CreateMCQ(c *gin.Context) {
	chapterID := c.Param("chapterId")

	var req struct {
		Question    string   `json:"question" binding:"required"`
		Options     []string `json:"options" binding:"required,min=2,dive,required"`
		AnswerIndex *int     `json:"answer_index" binding:"required,gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "question, at least two options and a non-negative answer_index are required")
		return
	}
	if *req.AnswerIndex >= len(req.Options) {
		respondBadRequest(c, "answer_index must point into options")
		return
	}

	mcq, err := mc.service.CreateMCQ(chapterID, req.Question, req.Options, *req.AnswerIndex)
	if err != nil {
		if errors.Is(err, database.ErrUnavailable) {
			respondServiceUnavailable(c, "database not configured")
			return
		}
		respondInternalError(c, err, "create mcq")
		return
	}

	if mc.auditor != nil {
		if _, err := mc.auditor.SaveJSON(mcq); err != nil {
			// Log but don't fail the request
			c.Writer.Header().Set("X-Audit-Warning", "Failed to save audit log")
		}
	}

	respondCreated(c, mcq)
}

// CheckAnswer compares a submitted option index against the correct answer.
// This endpoint never fails; it only ever answers true or false.
// POST /api/chapters/:chapterId/mcqs/:mcqId/check
func (mc *MCQsController) CheckAnswer(c *gin.Context) {
	chapterID := c.Param("chapterId")
	mcqID := c.Param("mcqId")

	var req struct {
		AnswerIndex *int `json:"answer_index" binding:"required,gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "a non-negative answer_index is required")
		return
	}

	correct := mc.service.CheckAnswer(chapterID, mcqID, *req.AnswerIndex)
	c.JSON(http.StatusOK, gin.H{"correct": correct})
}
