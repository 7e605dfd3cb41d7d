package commands

import (
	"fmt"
	"os"

	"github.com/gerunddev/vimwiki/internal/config"
	"github.com/gerunddev/vimwiki/internal/styles"
)

// Init writes the default configuration unless one already exists
func Init(args []string) {
	path := config.ConfigPath()
	if _, err := os.Stat(path); err == nil && !hasFlag(args, "--force") {
		fmt.Println(styles.WarningStyle.Render("Config already exists at " + path))
		fmt.Println(styles.DimStyle.Render("  Use --force to overwrite it"))
		return
	}

	cfg := config.DefaultConfig()
	if dirs := positional(args); len(dirs) > 0 {
		cfg.WikiDirs = dirs
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ Invalid configuration: " + err.Error()))
		os.Exit(1)
	}
	if err := cfg.Save(); err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ " + err.Error()))
		os.Exit(1)
	}

	fmt.Println(styles.SuccessStyle.Render("✓ Wrote " + path))
	for _, dir := range cfg.WikiDirs {
		fmt.Printf("  %s %s\n", styles.LabelStyle.Render("wiki:"), styles.ValueStyle.Render(dir))
	}
}
