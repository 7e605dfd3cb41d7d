package main

import (
	"fmt"
	"os"

	"github.com/gerunddev/vimwiki/internal/commands"
	"github.com/gerunddev/vimwiki/internal/config"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "parse":
		commands.Parse(os.Args[2:])
	case "check":
		commands.Check(os.Args[2:])
	case "roundtrip", "diff":
		commands.RoundTrip(os.Args[2:])
	case "browse":
		commands.Browse()
	case "watch":
		commands.Watch(os.Args[2:])
	case "status":
		commands.Status()
	case "init":
		commands.Init(os.Args[2:])
	case "install":
		commands.Install()
	case "uninstall":
		commands.Uninstall()
	case "version", "-v", "--version":
		fmt.Printf("vimwiki v%s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	usage := fmt.Sprintf(`vimwiki - Parse and inspect vimwiki pages

Usage:
  vimwiki <command> [options]

Commands:
  parse       Parse one page (or stdin) and print its tree
  check       Parse every page of the configured wikis
  roundtrip   Diff pages against the markup rendered from their tree
  browse      Browse parsed pages interactively
  watch       Re-parse pages as they change
  status      Show configuration and the last scan
  init        Write a default configuration
  install     Run the watcher as a user service
  uninstall   Remove the watcher service
  version     Show version information
  help        Show this help message

Options:
  parse     --format outline|yaml|debug|markup  --owned  --width N  --no-color
  check     --changed  --plain
  roundtrip --plain
  watch     --debounce 250ms  --verbose
  init      --force

Examples:
  vimwiki parse index.wiki
  vimwiki parse --format yaml < diary/2025-01-01.wiki
  vimwiki check
  vimwiki roundtrip index.wiki
  vimwiki init ~/vimwiki ~/work/wiki
  vimwiki watch

Configuration:
  Config file: %s
  State file:  %s
`, config.ConfigPath(), config.StateFilePath())
	fmt.Print(usage)
}
