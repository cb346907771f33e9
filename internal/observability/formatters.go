// Package observability provides formatted terminal output for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxSuggestionsToShow caps the suggestion list in the score card
	maxSuggestionsToShow = 5
)

// Printer handles formatted output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// scoreBar renders a 20-cell bar for a 0-100 score. ASCII only: printBox
// pads and truncates by byte length.
func scoreBar(score int) string {
	filled := score / 5
	if filled > 20 {
		filled = 20
	}
	return strings.Repeat("#", filled) + strings.Repeat(".", 20-filled)
}

// PrintATSScore outputs a human-readable score card with component bars and
// suggestions.
func (p *Printer) PrintATSScore(score types.ATSScore, label string) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall:       %3d  %s\n", score.Overall, label))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Action verbs   %s %3d\n", scoreBar(score.ActionVerbs), score.ActionVerbs))
	sb.WriteString(fmt.Sprintf("Keywords       %s %3d\n", scoreBar(score.Keywords), score.Keywords))
	sb.WriteString(fmt.Sprintf("Length         %s %3d\n", scoreBar(score.Length), score.Length))
	sb.WriteString(fmt.Sprintf("Completeness   %s %3d\n", scoreBar(score.Completeness), score.Completeness))
	sb.WriteString(fmt.Sprintf("Bullet quality %s %3d\n", scoreBar(score.BulletQuality), score.BulletQuality))

	if len(score.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		count := min(len(score.Suggestions), maxSuggestionsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  - %s\n", score.Suggestions[i]))
		}
	}

	p.printBox("ATS Score", strings.TrimRight(sb.String(), "\n"))
}

// PrintResumeList outputs the stored documents, most recently updated first.
func (p *Printer) PrintResumeList(resumes []types.ResumeDocument, currentID string) {
	if len(resumes) == 0 {
		fmt.Fprintln(p.out, "No resumes stored yet.")
		return
	}

	var sb strings.Builder
	for _, r := range resumes {
		marker := " "
		if r.ID == currentID {
			marker = "*"
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", marker, r.Name))
		sb.WriteString(fmt.Sprintf("    id: %s\n", r.ID))
		sb.WriteString(fmt.Sprintf("    updated: %s\n", r.UpdatedAt.Format(time.RFC3339)))
	}

	p.printBox(fmt.Sprintf("Resumes (%d)", len(resumes)), strings.TrimRight(sb.String(), "\n"))
}

// PrintSuggestions outputs per-text improvement hints from the enhancement
// engine.
func (p *Printer) PrintSuggestions(suggestions []string) {
	if len(suggestions) == 0 {
		fmt.Fprintln(p.out, "No suggestions — looks solid.")
		return
	}
	for _, s := range suggestions {
		fmt.Fprintf(p.out, "  - %s\n", s)
	}
}
