package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flamesResource6/studyboard/internal/database"
)

type DiagnosticsController struct {
	db     *database.Database
	dbPath string
}

func NewDiagnosticsController(db *database.Database, dbPath string) *DiagnosticsController {
	return &DiagnosticsController{db: db, dbPath: dbPath}
}

// Test reports database reachability and the stored tables.
// GET /test
func (dc *DiagnosticsController) Test(c *gin.Context) {
	response := gin.H{
		"backend":           "running",
		"database":          "not configured",
		"database_path":     dc.dbPath,
		"connection_status": "not connected",
		"tables":            []string{},
	}

	if dc.db != nil {
		if err := dc.db.Ping(); err != nil {
			response["database"] = "configured but unreachable: " + err.Error()
		} else {
			response["database"] = "connected"
			response["connection_status"] = "connected"
			if tables, err := dc.db.Tables(); err == nil {
				response["tables"] = tables
			}
		}
	}

	c.IndentedJSON(http.StatusOK, response)
}
