package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flamesResource6/studyboard/internal/study"
)

type ChaptersController struct {
	service *study.Service
}

func NewChaptersController(service *study.Service) *ChaptersController {
	return &ChaptersController{service: service}
}

// ListChapters returns the chapters of a subject.
// GET /api/subjects/:subjectId/chapters
func (cc *ChaptersController) ListChapters(c *gin.Context) {
	subjectID := c.Param("subjectId")

	chapters, err := cc.service.ListChapters(subjectID)
	if err != nil {
		if errors.Is(err, study.ErrSubjectNotFound) {
			respondNotFound(c, "chapters not found for subject")
			return
		}
		respondInternalError(c, err, "list chapters")
		return
	}
	c.JSON(http.StatusOK, chapters)
}
