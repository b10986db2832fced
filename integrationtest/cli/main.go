// Package main provides an interactive CLI for previewing resume files with
// either markup backend.
//
// Usage:
//
//	go run ./integrationtest/cli resume.yaml
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rickchristie/vitae"
	"github.com/rickchristie/vitae/render"
	"github.com/rickchristie/vitae/resume"
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorCyan  = "\033[36m"
	colorBold  = "\033[1m"
	colorDim   = "\033[2m"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr,
			"%sError: %v%s\n",
			colorRed, err, colorReset)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) < 2 {
		return fmt.Errorf("usage: %s <resume.yaml>", os.Args[0])
	}
	path := os.Args[1]

	doc, err := resume.LoadFile(path)
	if err != nil {
		return err
	}

	rl, err := readline.New(
		colorCyan +
			"Renderer [p]lain, [t]ypst, [r]eload, [q]uit: " +
			colorReset)
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	printHeader(doc)
	preview(doc, render.NewPlain())

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("readline failed: %w", err)
		}

		switch strings.TrimSpace(strings.ToLower(line)) {
		case "p":
			preview(doc, render.NewPlain())
		case "t":
			preview(doc, render.NewTypst())
		case "r":
			doc, err = resume.LoadFile(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%sReload failed: %v%s\n",
					colorRed, err, colorReset)
				continue
			}
			printHeader(doc)
			preview(doc, render.NewPlain())
		case "q":
			return nil
		case "":
			continue
		default:
			fmt.Printf("%sUnknown command %q%s\n", colorDim, line, colorReset)
		}
	}
}

func printHeader(doc *resume.Document) {
	name := doc.Name
	if name == "" {
		name = "(unnamed resume)"
	}
	fmt.Printf("\n%s%s%s — %d section(s)\n\n",
		colorBold, name, colorReset, len(doc.Sections))
}

func preview(doc *resume.Document, renderer vitae.Renderer) {
	out, err := renderer.Render(doc.Content())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%sRender failed: %v%s\n",
			colorRed, err, colorReset)
		return
	}
	fmt.Printf("%s----------------------------------------%s\n",
		colorGreen, colorReset)
	fmt.Println(out)
	fmt.Printf("%s----------------------------------------%s\n",
		colorGreen, colorReset)
}
