package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flamesResource6/studyboard/internal/study"
)

type SubjectsController struct {
	service         *study.Service
	defaultBoard    string
	defaultStandard string
}

func NewSubjectsController(service *study.Service, defaultBoard, defaultStandard string) *SubjectsController {
	return &SubjectsController{
		service:         service,
		defaultBoard:    defaultBoard,
		defaultStandard: defaultStandard,
	}
}

// ListSubjects returns the subjects for a board/standard pair.
// GET /api/subjects?board=&standard=
func (sc *SubjectsController) ListSubjects(c *gin.Context) {
	board := c.DefaultQuery("board", sc.defaultBoard)
	standard := c.DefaultQuery("standard", sc.defaultStandard)

	subjects := sc.service.ListSubjects(board, standard)
	c.JSON(http.StatusOK, subjects)
}
