// Package output formats search results for non-interactive commands.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/matheuskafuri/artsearch/internal/search"
)

// ColorMode represents color output mode
type ColorMode int

const (
	// ColorAuto enables colors when stdout is a terminal and NO_COLOR is unset
	ColorAuto ColorMode = iota
	// ColorAlways forces colors on
	ColorAlways
	// ColorNever forces colors off
	ColorNever
)

// ParseColorMode parses a string into a ColorMode
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "auto", "":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode %q: must be auto, always, or never", s)
	}
}

// ResolveColors determines whether to use colors based on mode and environment
func ResolveColors(mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false
		}
		if os.Getenv("TERM") == "dumb" {
			return false
		}
		// fatih/color already knows whether stdout is a terminal
		return !color.NoColor
	}
}

// Printer writes results to a terminal or a pipe.
type Printer struct {
	out       io.Writer
	useColors bool
}

func NewPrinter(w io.Writer, useColors bool) *Printer {
	return &Printer{out: w, useColors: useColors}
}

func (p *Printer) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if p.useColors {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// Print prints a plain message
func (p *Printer) Print(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Header prints a section header
func (p *Printer) Header(title string) {
	if p.useColors {
		p.paint(color.Bold).Fprintf(p.out, "%s\n", title)
		p.paint(color.Faint).Fprintf(p.out, "%s\n", strings.Repeat("─", len([]rune(title))))
	} else {
		fmt.Fprintf(p.out, "%s\n%s\n", title, strings.Repeat("-", len([]rune(title))))
	}
}

// Bold returns text in bold
func (p *Printer) Bold(text string) string {
	return p.paint(color.Bold).Sprint(text)
}

// Dim returns dimmed text
func (p *Printer) Dim(text string) string {
	return p.paint(color.Faint).Sprint(text)
}

// Spans renders matched spans on a yellow background, or in [brackets]
// when colors are off.
func (p *Printer) Spans(spans []search.Span) string {
	mark := p.paint(color.BgYellow, color.FgBlack, color.Bold)
	var b strings.Builder
	for _, s := range spans {
		switch {
		case !s.Matched:
			b.WriteString(s.Text)
		case p.useColors:
			b.WriteString(mark.Sprint(s.Text))
		default:
			b.WriteString("[" + s.Text + "]")
		}
	}
	return b.String()
}
