package main

import (
	"fmt"
	"os"

	"github.com/flamesResource6/studyboard/internal/cli"
	"github.com/flamesResource6/studyboard/internal/config"
	"github.com/flamesResource6/studyboard/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	// If no arguments or "serve" command, run the HTTP server
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		cfg := config.NewConfig()
		entrypoint.Run(cfg, Version)
		return
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "seed":
		cmd := cli.NewSeedCommand()
		if err := cmd.ParseFlags(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := cmd.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "version":
		fmt.Printf("studyboard %s (%s)\n", Version, Commit)

	case "help", "-h", "--help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf(`Studyboard - study content API

Usage:
  %s [serve]          Start the HTTP server (default)
  %s seed -db <path>  Copy the seed curriculum into a database and exit
  %s version          Print version information
  %s help             Show this help

Server configuration is read from environment variables (PORT, HOST,
DATABASE_PATH, DEFAULT_BOARD, DEFAULT_STANDARD, CORS_ALLOW_ORIGINS,
AUDIT_DIR, SEED_WARMUP_ENABLED, SEED_WARMUP_SCHEDULE). When DATABASE_PATH
is unset the API serves the built-in seed curriculum without persistence.
`, os.Args[0], os.Args[0], os.Args[0], os.Args[0])
}
