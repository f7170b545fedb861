package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/flamesResource6/studyboard/internal/catalog"
	"github.com/flamesResource6/studyboard/internal/config"
	"github.com/flamesResource6/studyboard/internal/database"
	"github.com/flamesResource6/studyboard/internal/study"
)

// SeedCommand reconciles the seed catalog into a database and exits. Useful
// for pre-populating a fresh database before first traffic.
type SeedCommand struct {
	DatabasePath string
	Board        string
	Standard     string
}

func NewSeedCommand() *SeedCommand {
	return &SeedCommand{}
}

func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", "", "Path to the sqlite database file (required)")
	fs.StringVar(&cmd.Board, "board", config.DefaultBoard, "Education board to seed")
	fs.StringVar(&cmd.Standard, "standard", config.DefaultStandard, "Class/grade to seed")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed -db <path> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Copy the built-in seed curriculum into a database. Safe to re-run:\n")
		fmt.Fprintf(os.Stderr, "seeding is idempotent and skips anything already present.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.DatabasePath == "" {
		return fmt.Errorf("required flag -db not provided")
	}

	return nil
}

func (cmd *SeedCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	service := study.NewService(db, catalog.Default(), cmd.Board, cmd.Standard)
	service.EnsureSeed(cmd.Board, cmd.Standard)

	subjects, err := db.GetSubjects(cmd.Board, cmd.Standard)
	if err != nil {
		return fmt.Errorf("failed to verify seeded subjects: %w", err)
	}

	fmt.Printf("Seeded %d subjects for %s standard %s into %s\n",
		len(subjects), cmd.Board, cmd.Standard, cmd.DatabasePath)
	return nil
}
