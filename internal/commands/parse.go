package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/k0kubun/pp"
	"gopkg.in/yaml.v3"

	"github.com/gerunddev/vimwiki/internal/outline"
	"github.com/gerunddev/vimwiki/internal/styles"
	"github.com/gerunddev/vimwiki/markup"
	"github.com/gerunddev/vimwiki/parser"
)

// ParseOptions controls how WriteParse prints a parsed page
type ParseOptions struct {
	Format string // outline, yaml, debug or markup
	Owned  bool   // materialize regions before printing
	Width  int    // outline summary width, zero for no limit
	Color  bool
}

// Parse parses a single page, or standard input, and prints its tree
func Parse(args []string) {
	opts := ParseOptions{Format: "outline", Color: true}
	if v, ok := flagValue(args, "--format"); ok {
		opts.Format = v
	}
	opts.Owned = hasFlag(args, "--owned")
	opts.Color = !hasFlag(args, "--no-color")

	width, err := intFlag(args, "--width", 100)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	opts.Width = width

	files := positional(args, "--format", "--width")
	var content []byte
	switch {
	case len(files) == 0 || files[0] == "-":
		content, err = io.ReadAll(os.Stdin)
	case len(files) == 1:
		content, err = os.ReadFile(files[0])
	default:
		fmt.Fprintln(os.Stderr, "Error: parse takes a single page")
		os.Exit(1)
	}
	if err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ Failed to read page: " + err.Error()))
		os.Exit(1)
	}

	if err := WriteParse(os.Stdout, string(content), opts); err != nil {
		var pe *parser.ParseError
		if errors.As(err, &pe) {
			fmt.Println(styles.ErrorStyle.Render("✗ Parse failed"))
			fmt.Println(err.Error())
		} else {
			fmt.Println(styles.ErrorStyle.Render("✗ Error: " + err.Error()))
		}
		os.Exit(1)
	}
}

// WriteParse parses text and writes the page to w in the requested format
func WriteParse(w io.Writer, text string, opts ParseOptions) error {
	page, err := parser.Parse(text)
	if err != nil {
		return err
	}
	if opts.Owned {
		page = page.IntoOwned()
	}

	switch opts.Format {
	case "", "outline":
		root := outline.Build(page)
		if !opts.Color {
			_, err := io.WriteString(w, root.String())
			return err
		}
		return outline.Write(w, root, opts.Width)

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(page); err != nil {
			return fmt.Errorf("failed to encode page: %w", err)
		}
		return enc.Close()

	case "debug":
		pp.ColoringEnabled = opts.Color
		_, err := pp.Fprintln(w, page.IntoOwned().Element)
		return err

	case "markup":
		_, err := io.WriteString(w, markup.Page(page.Element))
		return err
	}

	return fmt.Errorf("unknown format %q (want outline, yaml, debug or markup)", opts.Format)
}
