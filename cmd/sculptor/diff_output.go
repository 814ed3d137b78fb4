package main

import (
	"io"
	"strings"

	"github.com/fatih/color"
)

// writeDiff prints a unified diff, coloring added and removed lines.
func writeDiff(w io.Writer, diff string, colored bool) error {
	if !colored {
		_, err := io.WriteString(w, diff)
		return err
	}
	header := color.New(color.Bold)
	hunk := color.New(color.FgCyan)
	added := color.New(color.FgGreen)
	removed := color.New(color.FgRed)
	for _, c := range []*color.Color{header, hunk, added, removed} {
		c.EnableColor()
	}

	for _, line := range strings.SplitAfter(diff, "\n") {
		if line == "" {
			continue
		}
		var c *color.Color
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			c = header
		case strings.HasPrefix(line, "@@"):
			c = hunk
		case strings.HasPrefix(line, "+"):
			c = added
		case strings.HasPrefix(line, "-"):
			c = removed
		}
		if c == nil {
			if _, err := io.WriteString(w, line); err != nil {
				return err
			}
			continue
		}
		body := strings.TrimSuffix(line, "\n")
		if _, err := c.Fprint(w, body); err != nil {
			return err
		}
		if len(body) != len(line) {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}
