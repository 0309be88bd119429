package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ballotink/markcheck/internal/detection"
	"github.com/ballotink/markcheck/internal/server"
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
			fmt.Printf("mark-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("mark-tools-mcp - MCP server for cross-mark validation")
			fmt.Println()
			fmt.Println("Usage: mark-tools-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  MARK_MCP_CONFIG=<path>       Load a YAML calibration profile")
			fmt.Println("  MARK_MCP_LOG_LEVEL=debug     Enable debug logging")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client.")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := detection.DefaultConfig()
	if path := os.Getenv("MARK_MCP_CONFIG"); path != "" {
		var err error
		cfg, err = detection.LoadConfig(path)
		if err != nil {
			log.Fatalf("Config error: %v", err)
		}
	}

	if os.Getenv("MARK_MCP_LOG_LEVEL") == "debug" {
		log.Printf("Mark MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Calibration box (%g,%g)-(%g,%g)", cfg.BoxMinX, cfg.BoxMinY, cfg.BoxMaxX, cfg.BoxMaxY)
	}

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
