package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/flamesResource6/studyboard/internal/audit"
	"github.com/flamesResource6/studyboard/internal/catalog"
	"github.com/flamesResource6/studyboard/internal/config"
	"github.com/flamesResource6/studyboard/internal/database"
	http_controllers "github.com/flamesResource6/studyboard/internal/http"
	"github.com/flamesResource6/studyboard/internal/scheduler"
	"github.com/flamesResource6/studyboard/internal/study"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop the warmup scheduler)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Studyboard v%s", version)

	// Without a database the API still serves, synthesizing every read from
	// the seed catalog.
	var db *database.Database
	if cfg.Database.Path == "" {
		log.Printf("DATABASE_PATH is not set; running in fallback mode, serving seed content only")
	} else {
		var err error
		db, err = database.NewDatabase(cfg.Database.Path)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Printf("Error closing database: %v", err)
			}
		}()
	}

	cat := catalog.Default()
	service := study.NewService(db, cat, cfg.Curriculum.Board, cfg.Curriculum.Standard)

	// Create auditor for saving incoming note/question submissions
	auditor := audit.NewAuditor(cfg.Audit.Dir)

	var warmup *scheduler.SeedWarmupScheduler
	if cfg.SeedWarmup.Enabled && db != nil {
		warmup = scheduler.NewSeedWarmupScheduler(service, cfg.Curriculum.Board, cfg.Curriculum.Standard, cfg.SeedWarmup.Schedule)
		if err := warmup.Start(context.Background()); err != nil {
			log.Printf("WARNING: Failed to start seed warmup scheduler: %v", err)
		}
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Service:          service,
		Database:         db,
		DatabasePath:     cfg.Database.Path,
		Auditor:          auditor,
		DefaultBoard:     cfg.Curriculum.Board,
		DefaultStandard:  cfg.Curriculum.Standard,
		CORSAllowOrigins: cfg.CORS.AllowOrigins,
		Version:          version,
	})

	onShutdown := func(ctx context.Context) {
		if warmup != nil {
			warmup.Stop()
		}
	}

	Serve(router, cfg, onShutdown)
}
