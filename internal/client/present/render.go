// Package present formats the timeline for the terminal.
package present

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"timeline-backend/internal/domains/entry/model"
)

// ShortDateLayout is the date shown on each card, e.g. "Mar 1, 2024".
const ShortDateLayout = "Jan 2, 2006"

// Styles are the lipgloss styles used by the Renderer.
type Styles struct {
	Title   lipgloss.Style
	Count   lipgloss.Style
	Badge   lipgloss.Style
	Card    lipgloss.Style
	Date    lipgloss.Style
	Text    lipgloss.Style
	Link    lipgloss.Style
	Meta    lipgloss.Style
	Empty   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
}

func newStyles(color bool) Styles {
	if !color {
		return Styles{
			Title:   lipgloss.NewStyle().Bold(true),
			Count:   lipgloss.NewStyle(),
			Badge:   lipgloss.NewStyle().Bold(true),
			Card:    lipgloss.NewStyle().PaddingLeft(2),
			Date:    lipgloss.NewStyle(),
			Text:    lipgloss.NewStyle(),
			Link:    lipgloss.NewStyle(),
			Meta:    lipgloss.NewStyle(),
			Empty:   lipgloss.NewStyle(),
			Success: lipgloss.NewStyle(),
			Warning: lipgloss.NewStyle(),
		}
	}

	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
		Count: lipgloss.NewStyle().Faint(true),
		Badge: lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("#1E1E2E")).
			Background(lipgloss.Color("#89B4FA")).
			Padding(0, 1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6C7086")).
			Padding(0, 1).
			MarginLeft(2),
		Date:    lipgloss.NewStyle().Faint(true),
		Text:    lipgloss.NewStyle(),
		Link:    lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("#89B4FA")),
		Meta:    lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#CBA6F7")),
		Empty:   lipgloss.NewStyle().Faint(true).Italic(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#FAB387")),
	}
}

// Renderer draws the grouped timeline.
type Renderer struct {
	styles Styles
}

func NewRenderer(color bool) *Renderer {
	return &Renderer{styles: newStyles(color)}
}

// Timeline renders the header, then one badge and card list per month.
func (r *Renderer) Timeline(entries []model.Entry) string {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render("My Timeline"))
	b.WriteString("  ")
	b.WriteString(r.styles.Count.Render(EntryCount(len(entries))))
	b.WriteString("\n\n")

	if len(entries) == 0 {
		b.WriteString(r.styles.Empty.Render("No entries yet"))
		b.WriteString("\n")
		return b.String()
	}

	for _, g := range GroupByMonth(entries) {
		b.WriteString(r.styles.Badge.Render(g.Label))
		b.WriteString("\n")
		for _, e := range g.Entries {
			b.WriteString(r.Card(e))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Card renders a single entry.
func (r *Renderer) Card(e model.Entry) string {
	lines := []string{
		r.styles.Date.Render(e.Date.Format(ShortDateLayout)),
		r.styles.Text.Render(e.Description),
	}
	if e.HasLink() {
		lines = append(lines, "Visit link: "+r.styles.Link.Render(*e.Link))
	}
	lines = append(lines,
		r.styles.Meta.Render("photo: "+PhotoSummary(e.Photo)),
		r.styles.Meta.Render("id: "+e.ID),
	)
	return r.styles.Card.Render(strings.Join(lines, "\n"))
}

// Saved reports the outcome of an add.
func (r *Renderer) Saved(e model.Entry, local bool) string {
	if local {
		return r.styles.Warning.Render(fmt.Sprintf("Saved %s locally (server unavailable)", e.ID))
	}
	return r.styles.Success.Render(fmt.Sprintf("Saved %s", e.ID))
}

// Removed reports the outcome of a delete.
func (r *Renderer) Removed(id string, local bool) string {
	if local {
		return r.styles.Warning.Render(fmt.Sprintf("Removed %s locally (server unavailable)", id))
	}
	return r.styles.Success.Render(fmt.Sprintf("Removed %s", id))
}

// Offline is shown above a timeline that was loaded from the local cache.
func (r *Renderer) Offline() string {
	return r.styles.Warning.Render("Server unavailable, showing local entries")
}

// EntryCount is "1 entry" or "N entries".
func EntryCount(n int) string {
	if n == 1 {
		return "1 entry"
	}
	return fmt.Sprintf("%d entries", n)
}
