package main

import (
	"fmt"
	"log"
	"os"

	"github.com/rooshmintted/menu-annotate/internal/config"
	"github.com/rooshmintted/menu-annotate/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("menu-annotate %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("menu-annotate - MCP server for menu margin annotation")
			fmt.Println()
			fmt.Println("Usage: menu-annotate [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  MENU_ANNOTATE_LANG=eng             OCR language")
			fmt.Println("  MENU_ANNOTATE_MAX_WIDTH=1170       Display width limit")
			fmt.Println("  MENU_ANNOTATE_MAX_HEIGHT=2532      Display height limit")
			fmt.Println("  MENU_ANNOTATE_HEADER=...           Header text on annotated images")
			fmt.Println("  MENU_ANNOTATE_EXCLUSIVE_MATCH=true One dish per text region")
			fmt.Println("  MENU_ANNOTATE_LOG_LEVEL=debug      Enable debug logging")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client.")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	if cfg.Debug {
		log.Printf("Menu Annotate MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("OCR language %q, display limit %.0fx%.0f", cfg.Language, cfg.MaxDisplayWidth, cfg.MaxDisplayHeight)
	}

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
