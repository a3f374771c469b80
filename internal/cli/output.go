package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/shopdocs/launcher/internal/locate"
)

type styles struct {
	released    lipgloss.Style
	preliminary lipgloss.Style
	missing     lipgloss.Style
	failed      lipgloss.Style
	header      lipgloss.Style
	muted       lipgloss.Style
}

func newStyles(out io.Writer, noColor bool) styles {
	r := lipgloss.NewRenderer(out)
	if noColor {
		plain := r.NewStyle()
		return styles{plain, plain, plain, plain, plain, plain}
	}
	return styles{
		released:    r.NewStyle().Foreground(lipgloss.Color("#8BC34A")),
		preliminary: r.NewStyle().Foreground(lipgloss.Color("#FFC107")),
		missing:     r.NewStyle().Foreground(lipgloss.Color("#e53935")),
		failed:      r.NewStyle().Foreground(lipgloss.Color("#e53935")).Bold(true),
		header:      r.NewStyle().Bold(true),
		muted:       r.NewStyle().Faint(true),
	}
}

// consoleReporter prints one line per identifier.
type consoleReporter struct {
	out    io.Writer
	styles styles
	found  func(locate.Result) string
}

func (r *consoleReporter) Found(result locate.Result) {
	style := r.styles.released
	if result.Source == locate.LabelPreliminary {
		style = r.styles.preliminary
	}
	fmt.Fprintln(r.out, style.Render(r.found(result)))
}

func (r *consoleReporter) NotFound(name string) {
	fmt.Fprintln(r.out, r.styles.missing.Render(name+" not found"))
}

func (r *consoleReporter) Failed(name string, err error) {
	fmt.Fprintln(r.out, r.styles.failed.Render(fmt.Sprintf("%s lookup failed: %v", name, err)))
}

func drawingLine(dryRun bool) func(locate.Result) string {
	return func(r locate.Result) string {
		if dryRun {
			return fmt.Sprintf("%s from %s: %s", r.Name, r.Source, r.Path)
		}
		return fmt.Sprintf("%s from %s", r.Name, r.Source)
	}
}

func reportLine(dryRun bool) func(locate.Result) string {
	return func(r locate.Result) string {
		if dryRun {
			return fmt.Sprintf("Found: %s: %s", r.Name, r.Path)
		}
		return "Opening: " + r.Name
	}
}
