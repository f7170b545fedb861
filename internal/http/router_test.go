package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flamesResource6/studyboard/internal/catalog"
	"github.com/flamesResource6/studyboard/internal/config"
	"github.com/flamesResource6/studyboard/internal/database"
	"github.com/flamesResource6/studyboard/internal/entities"
	"github.com/flamesResource6/studyboard/internal/study"
)

// newFallbackRouter builds a router with no database configured, so every
// read serves seed content.
func newFallbackRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := study.NewService(nil, catalog.Default(), config.DefaultBoard, config.DefaultStandard)
	return NewRouter(RouterConfig{
		Service:         svc,
		DefaultBoard:    config.DefaultBoard,
		DefaultStandard: config.DefaultStandard,
		Version:         "test",
	})
}

func newDatabaseRouter(t *testing.T) (*gin.Engine, *database.Database, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dbPath := "./test_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)
	svc := study.NewService(db, catalog.Default(), config.DefaultBoard, config.DefaultStandard)
	router := NewRouter(RouterConfig{
		Service:         svc,
		Database:        db,
		DatabasePath:    dbPath,
		DefaultBoard:    config.DefaultBoard,
		DefaultStandard: config.DefaultStandard,
		Version:         "test",
	})
	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return router, db, cleanup
}

func performRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRootBanner(t *testing.T) {
	router := newFallbackRouter()

	w := performRequest(router, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeJSON[map[string]string](t, w)
	assert.Equal(t, "Study App Backend Running", body["message"])
}

func TestDiagnostics(t *testing.T) {
	t.Run("no database", func(t *testing.T) {
		router := newFallbackRouter()

		w := performRequest(router, http.MethodGet, "/test", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeJSON[map[string]any](t, w)
		assert.Equal(t, "running", body["backend"])
		assert.Equal(t, "not configured", body["database"])
		assert.Equal(t, "not connected", body["connection_status"])
	})

	t.Run("with database", func(t *testing.T) {
		router, _, cleanup := newDatabaseRouter(t)
		defer cleanup()

		w := performRequest(router, http.MethodGet, "/test", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeJSON[map[string]any](t, w)
		assert.Equal(t, "connected", body["database"])
		assert.NotEmpty(t, body["tables"])
	})
}

func TestHealthEndpoint(t *testing.T) {
	t.Run("healthy without a database", func(t *testing.T) {
		router := newFallbackRouter()

		w := performRequest(router, http.MethodGet, "/api/health", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeJSON[HealthResponse](t, w)
		assert.Equal(t, "healthy", body.Status)
		assert.Equal(t, "not configured", body.Checks["database"])
	})

	t.Run("healthy with a database", func(t *testing.T) {
		router, _, cleanup := newDatabaseRouter(t)
		defer cleanup()

		w := performRequest(router, http.MethodGet, "/api/health", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeJSON[HealthResponse](t, w)
		assert.Equal(t, "healthy", body.Status)
		assert.Equal(t, "ok", body.Checks["database"])
	})
}

func TestListSubjectsEndpoint(t *testing.T) {
	router := newFallbackRouter()

	w := performRequest(router, http.MethodGet, "/api/subjects", nil)
	require.Equal(t, http.StatusOK, w.Code)
	subjects := decodeJSON[[]entities.Subject](t, w)
	require.Len(t, subjects, 4)
	assert.Equal(t, "1", subjects[0].ID)
	assert.Equal(t, "4", subjects[3].ID)
	assert.Equal(t, "Economics", subjects[0].Name)

	t.Run("explicit board with no content", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/api/subjects?board=CBSE&standard=12", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})
}

func TestListChaptersEndpoint(t *testing.T) {
	router := newFallbackRouter()

	w := performRequest(router, http.MethodGet, "/api/subjects/1/chapters", nil)
	require.Equal(t, http.StatusOK, w.Code)
	chapters := decodeJSON[[]entities.Chapter](t, w)
	require.Len(t, chapters, 2)
	assert.Equal(t, "1-1", chapters[0].ID)
	assert.Equal(t, "1-2", chapters[1].ID)

	t.Run("unknown subject id", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/api/subjects/zzz/chapters", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		body := decodeJSON[ErrorResponse](t, w)
		assert.Equal(t, "chapters not found for subject", body.Error)
	})
}

func TestListTopicsEndpoint(t *testing.T) {
	router := newFallbackRouter()

	w := performRequest(router, http.MethodGet, "/api/chapters/1-1/topics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	topics := decodeJSON[[]entities.Topic](t, w)
	require.Len(t, topics, 3)
	assert.Equal(t, "1-1-t1", topics[0].ID)

	t.Run("unresolvable chapter id yields an empty list", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/api/chapters/garbage/topics", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})
}

func TestMCQEndpoints(t *testing.T) {
	router := newFallbackRouter()

	t.Run("list", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/api/chapters/1-1/mcqs", nil)
		require.Equal(t, http.StatusOK, w.Code)
		mcqs := decodeJSON[[]entities.MCQ](t, w)
		require.Len(t, mcqs, 2)
		assert.Equal(t, "1-1-q1", mcqs[0].ID)
	})

	t.Run("check correct answer", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/api/chapters/1-1/mcqs/1-1-q1/check",
			gin.H{"answer_index": 1})
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeJSON[map[string]bool](t, w)
		assert.True(t, body["correct"])
	})

	t.Run("check wrong answer", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/api/chapters/1-1/mcqs/1-1-q1/check",
			gin.H{"answer_index": 0})
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeJSON[map[string]bool](t, w)
		assert.False(t, body["correct"])
	})

	t.Run("check without answer_index", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/api/chapters/1-1/mcqs/1-1-q1/check",
			gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("create without a database", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/api/chapters/1-1/mcqs", gin.H{
			"question":     "Utility means ____.",
			"options":      []string{"usefulness", "want satisfying power"},
			"answer_index": 1,
		})
		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		body := decodeJSON[ErrorResponse](t, w)
		assert.Equal(t, "database not configured", body.Error)
	})
}

func TestCreateMCQWithDatabase(t *testing.T) {
	router, _, cleanup := newDatabaseRouter(t)
	defer cleanup()

	t.Run("valid question", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/api/chapters/ch-1/mcqs", gin.H{
			"question":     "Utility means ____.",
			"options":      []string{"usefulness", "want satisfying power"},
			"answer_index": 1,
		})
		require.Equal(t, http.StatusCreated, w.Code)
		mcq := decodeJSON[entities.MCQ](t, w)
		assert.NotEmpty(t, mcq.ID)
		assert.Equal(t, "ch-1", mcq.ChapterID)
	})

	t.Run("too few options", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/api/chapters/ch-1/mcqs", gin.H{
			"question":     "Utility means ____.",
			"options":      []string{"usefulness"},
			"answer_index": 0,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("answer index outside options", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/api/chapters/ch-1/mcqs", gin.H{
			"question":     "Utility means ____.",
			"options":      []string{"usefulness", "want satisfying power"},
			"answer_index": 2,
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeJSON[ErrorResponse](t, w)
		assert.Equal(t, "answer_index must point into options", body.Error)
	})

	t.Run("negative answer index", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/api/chapters/ch-1/mcqs", gin.H{
			"question":     "Utility means ____.",
			"options":      []string{"usefulness", "want satisfying power"},
			"answer_index": -1,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestNoteEndpoints(t *testing.T) {
	t.Run("no database", func(t *testing.T) {
		router := newFallbackRouter()

		w := performRequest(router, http.MethodGet, "/api/chapters/1-1/notes", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())

		w = performRequest(router, http.MethodPost, "/api/chapters/1-1/notes",
			gin.H{"title": "Revision"})
		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		body := decodeJSON[ErrorResponse](t, w)
		assert.Equal(t, "database not configured", body.Error)
	})

	t.Run("with database", func(t *testing.T) {
		router, _, cleanup := newDatabaseRouter(t)
		defer cleanup()

		w := performRequest(router, http.MethodPost, "/api/chapters/ch-1/notes",
			gin.H{"title": "Revision", "body": "Re-read the definitions."})
		require.Equal(t, http.StatusCreated, w.Code)
		note := decodeJSON[entities.Note](t, w)
		assert.NotEmpty(t, note.ID)

		w = performRequest(router, http.MethodGet, "/api/chapters/ch-1/notes", nil)
		require.Equal(t, http.StatusOK, w.Code)
		notes := decodeJSON[[]entities.Note](t, w)
		require.Len(t, notes, 1)
		assert.Equal(t, "Revision", notes[0].Title)

		w = performRequest(router, http.MethodPost, "/api/chapters/ch-1/notes", gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
