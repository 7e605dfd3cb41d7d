package commands

import (
	"fmt"
	"os"

	"github.com/gerunddev/vimwiki/internal/diff"
	"github.com/gerunddev/vimwiki/internal/index"
	"github.com/gerunddev/vimwiki/internal/styles"
)

// RoundTrip renders pages back to markup and shows how the result differs
// from the source. Without arguments every page of the configured wikis
// is checked
func RoundTrip(args []string) {
	format := diff.FormatRendered
	if hasFlag(args, "--plain") {
		format = diff.FormatPlain
	}

	paths := positional(args)
	if len(paths) == 0 {
		cfg := loadConfig()
		for _, dir := range cfg.WikiDirs {
			files, err := index.ScanDirectory(dir, cfg.Extension)
			if err != nil {
				fmt.Println(styles.ErrorStyle.Render("✗ " + err.Error()))
				os.Exit(1)
			}
			for _, f := range files {
				if !cfg.IsExcluded(dir, f) {
					paths = append(paths, f)
				}
			}
		}
	}

	var same, changed, failed int
	for _, path := range paths {
		out, err := diff.Generate(path, format)
		switch {
		case err != nil:
			failed++
			fmt.Println(styles.ErrorStyle.Render("✗ " + err.Error()))
		case out == "":
			same++
			if len(paths) == 1 {
				fmt.Println(styles.SuccessStyle.Render("✓ " + path + " round trips unchanged"))
			}
		default:
			changed++
			fmt.Println(styles.HighlightStyle.Render(path))
			fmt.Println(out)
		}
	}

	if len(paths) > 1 {
		fmt.Println(styles.DimStyle.Render(fmt.Sprintf("%d unchanged, %d changed, %d failed", same, changed, failed)))
	}
	if failed > 0 {
		os.Exit(1)
	}
}
