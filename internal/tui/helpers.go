package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"

	"github.com/jeanpaul/rolodex/internal/client"
)

// cardMarkdown lays out a record as a markdown document for glamour.
func cardMarkdown(c *client.Client) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", c.FullName())
	fmt.Fprintf(&b, "**Client ID:** %d\n\n", c.ID())
	b.WriteString("| Field | Value |\n|---|---|\n")
	for _, row := range [][2]string{
		{"Company", c.Company},
		{"Email", c.Email},
		{"Phone", c.Phone},
		{"Address", c.Address()},
	} {
		fmt.Fprintf(&b, "| %s | %s |\n", row[0], escapeCell(row[1]))
	}
	if c.Notes != "" {
		fmt.Fprintf(&b, "\n## Notes\n\n%s\n", c.Notes)
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// renderCard renders the details card, falling back to plain text when
// glamour cannot.
func renderCard(c *client.Client, style string, width int) string {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return c.Card()
	}
	out, err := r.Render(cardMarkdown(c))
	if err != nil {
		return c.Card()
	}
	return out
}

// truncate cuts s to n terminal cells, ending in "..." when shortened.
func truncate(s string, n int) string {
	if n <= 3 {
		return s
	}
	return ansi.Truncate(s, n, "...")
}
