package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gerunddev/vimwiki/markup"
	"github.com/gerunddev/vimwiki/parser"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "version", "-v", "--version":
		fmt.Printf("wikifmt v%s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
	}
}

func printUsage() {
	usage := `wikifmt - Rewrite vimwiki pages in canonical form

Usage:
  wikifmt [-w] <file>...
  wikifmt -

Options:
  -w    Write the result back to each file instead of stdout

Examples:
  wikifmt index.wiki
  wikifmt -w diary/*.wiki
  cat index.wiki | wikifmt -
`
	fmt.Print(usage)
}

// run formats every file named in args and returns the exit code
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	write := false
	var files []string
	for _, arg := range args {
		if arg == "-w" {
			write = true
			continue
		}
		files = append(files, arg)
	}
	if len(files) == 0 {
		fmt.Fprintln(stderr, "Error: No input file specified")
		return 1
	}

	code := 0
	for _, file := range files {
		if file == "-" {
			content, err := io.ReadAll(stdin)
			if err == nil {
				err = format(string(content), stdout)
			}
			if err != nil {
				fmt.Fprintf(stderr, "<stdin>: %v\n", err)
				code = 1
			}
			continue
		}

		content, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			code = 1
			continue
		}

		if !write {
			if err := format(string(content), stdout); err != nil {
				fmt.Fprintf(stderr, "%s: %v\n", file, err)
				code = 1
			}
			continue
		}

		page, err := parser.Parse(string(content))
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", file, err)
			code = 1
			continue
		}
		formatted := markup.Page(page.Element)
		if formatted == string(content) {
			continue
		}
		if err := os.WriteFile(file, []byte(formatted), 0644); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			code = 1
			continue
		}
		fmt.Fprintln(stdout, file)
	}
	return code
}

func format(text string, w io.Writer) error {
	page, err := parser.Parse(text)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, markup.Page(page.Element))
	return err
}
