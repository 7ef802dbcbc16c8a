// Package markup turns the backend's markdown-lite replies into display text.
//
// Replies are run through an ordered list of named transforms. The first one
// strips terminal control sequences so a reply can never move the cursor,
// recolor the screen or write to the clipboard. The rest flatten the small
// markdown subset the backend emits: headings, bold, links and bullets.
package markup

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Transform is one named rewriting step.
type Transform struct {
	Name  string
	Apply func(string) string
}

var (
	headingPattern = regexp.MustCompile(`(?m)^###\s+`)
	boldPattern    = regexp.MustCompile(`\*\*(.*?)\*\*`)
	linkPattern    = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	bulletPattern  = regexp.MustCompile(`(?m)^- `)
)

// Sanitize removes ANSI escape sequences and C0 control characters other
// than newline and tab. Carriage returns are normalized away. Characters such
// as <, > and & are left alone.
func Sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t':
			return r
		case r < 0x20 || r == 0x7f:
			return -1
		case r >= 0x80 && r <= 0x9f:
			return -1
		}
		return r
	}, s)
}

// Pipeline applies its transforms in order.
type Pipeline struct {
	transforms []Transform
}

// New returns the standard pipeline, replacing newlines with lineBreak.
// Order: sanitize, headings, bold, links, bullets, line breaks.
func New(lineBreak string) *Pipeline {
	p := &Pipeline{transforms: []Transform{
		{Name: "sanitize", Apply: Sanitize},
		{Name: "headings", Apply: func(s string) string { return headingPattern.ReplaceAllString(s, "") }},
		{Name: "bold", Apply: func(s string) string { return boldPattern.ReplaceAllString(s, "$1") }},
		{Name: "links", Apply: func(s string) string { return linkPattern.ReplaceAllString(s, "$1") }},
		{Name: "bullets", Apply: func(s string) string { return bulletPattern.ReplaceAllString(s, "• ") }},
	}}
	if lineBreak != "\n" {
		p.transforms = append(p.transforms, Transform{
			Name:  "linebreaks",
			Apply: func(s string) string { return strings.ReplaceAll(s, "\n", lineBreak) },
		})
	}
	return p
}

// Terminal is the pipeline used for terminal output, where a newline is
// already a line break.
var Terminal = New("\n")

// Names lists the transform names in application order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.transforms))
	for i, t := range p.transforms {
		names[i] = t.Name
	}
	return names
}

// Format runs text through every transform.
func (p *Pipeline) Format(text string) string {
	for _, t := range p.transforms {
		text = t.Apply(text)
	}
	return text
}

// Format runs text through the Terminal pipeline.
func Format(text string) string {
	return Terminal.Format(text)
}
