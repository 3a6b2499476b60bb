package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/vision-overlay-mcp/internal/config"
	"github.com/ironsheep/vision-overlay-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("vision-overlay-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("vision-overlay-mcp - MCP server that renders vision results over images")
			fmt.Println()
			fmt.Println("Usage: vision-overlay-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Printf("  %s=debug       Enable debug logging\n", config.EnvLogLevel)
			fmt.Printf("  %s=eng          Tesseract language for OCR overlays\n", config.EnvLanguage)
			fmt.Printf("  %s=#00FF00    Word box and text color\n", config.EnvTextColor)
			fmt.Printf("  %s=#FFFFFF   Classification label text color\n", config.EnvLabelColor)
			fmt.Printf("  %s=#FF0000     Detection box color\n", config.EnvBoxColor)
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	if cfg.Debug {
		log.Printf("Vision Overlay MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	if Version != "dev" {
		server.Version = Version
	}
	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
