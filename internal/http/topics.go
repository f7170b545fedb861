package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flamesResource6/studyboard/internal/study"
)

type TopicsController struct {
	service *study.Service
}

func NewTopicsController(service *study.Service) *TopicsController {
	return &TopicsController{service: service}
}

// ListTopics returns the topics of a chapter. Unresolvable chapter ids yield
// an empty list rather than an error.
// GET /api/chapters/:chapterId/topics
func (tc *TopicsController) ListTopics(c *gin.Context) {
	chapterID := c.Param("chapterId")
	c.JSON(http.StatusOK, tc.service.ListTopics(chapterID))
}
