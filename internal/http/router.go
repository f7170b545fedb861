package http

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/flamesResource6/studyboard/internal/audit"
	"github.com/flamesResource6/studyboard/internal/database"
	"github.com/flamesResource6/studyboard/internal/study"
)

// RouterConfig carries the router's dependencies, improving testability and
// reducing parameter count.
type RouterConfig struct {
	Service          *study.Service
	Database         *database.Database
	DatabasePath     string
	Auditor          *audit.Auditor
	DefaultBoard     string
	DefaultStandard  string
	CORSAllowOrigins string // Comma-separated, "*" for any
	Version          string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware(cfg.CORSAllowOrigins))

	subjects := NewSubjectsController(cfg.Service, cfg.DefaultBoard, cfg.DefaultStandard)
	chapters := NewChaptersController(cfg.Service)
	topics := NewTopicsController(cfg.Service)
	notes := NewNotesController(cfg.Service, cfg.Auditor)
	mcqs := NewMCQsController(cfg.Service, cfg.Auditor)
	health := NewHealthController(cfg.Database, cfg.Version)
	diagnostics := NewDiagnosticsController(cfg.Database, cfg.DatabasePath)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Study App Backend Running"})
	})
	router.GET("/test", diagnostics.Test)

	api := router.Group("/api")
	{
		api.GET("/health", health.Status)
		api.GET("/subjects", subjects.ListSubjects)
		api.GET("/subjects/:subjectId/chapters", chapters.ListChapters)
		api.GET("/chapters/:chapterId/topics", topics.ListTopics)
		api.GET("/chapters/:chapterId/notes", notes.ListNotes)
		api.POST("/chapters/:chapterId/notes", notes.CreateNote)
		api.GET("/chapters/:chapterId/mcqs", mcqs.ListMCQs)
		api.POST("/chapters/:chapterId/mcqs", mcqs.CreateMCQ)
		api.POST("/chapters/:chapterId/mcqs/:mcqId/check", mcqs.CheckAnswer)
	}

	return router
}

func corsMiddleware(allowOrigins string) gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	if allowOrigins == "" || allowOrigins == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = strings.Split(allowOrigins, ",")
	}
	return cors.New(corsCfg)
}
