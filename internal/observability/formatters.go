// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/SatvikPraveen/Resume-Template-Generator/internal/patterns"
	"github.com/SatvikPraveen/Resume-Template-Generator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
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
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeRecord outputs a human-readable summary of a parsed record and
// the tier that produced it.
func (p *Printer) PrintResumeRecord(record *types.ResumeRecord, tier patterns.Tier) {
	if record == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", orDash(record.Basics.Name)))
	sb.WriteString(fmt.Sprintf("Label:    %s\n", orDash(record.Basics.Label)))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", orDash(record.Basics.Email)))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", orDash(record.Basics.Phone)))
	sb.WriteString(fmt.Sprintf("Location: %s\n", orDash(record.Basics.Location)))
	sb.WriteString(fmt.Sprintf("Tier:     %s\n", tier))
	sb.WriteString("\n")

	if len(record.Work) > 0 {
		sb.WriteString("Work:\n")
		count := min(len(record.Work), maxItemsToShow)
		for i := 0; i < count; i++ {
			w := record.Work[i]
			sb.WriteString(fmt.Sprintf("  • %s", w.Position))
			if w.Company != "" {
				sb.WriteString(fmt.Sprintf(" @ %s", w.Company))
			}
			if w.StartDate != "" || w.EndDate != "" {
				sb.WriteString(fmt.Sprintf(" (%s - %s)", w.StartDate, w.EndDate))
			}
			sb.WriteString("\n")
		}
		if len(record.Work) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.Work)-maxItemsToShow))
		}
	}

	if len(record.Education) > 0 {
		sb.WriteString("Education:\n")
		for _, e := range record.Education {
			sb.WriteString(fmt.Sprintf("  • %s", e.Institution))
			if e.StudyType != "" {
				sb.WriteString(fmt.Sprintf(" — %s", e.StudyType))
			}
			if e.Area != "" {
				sb.WriteString(fmt.Sprintf(" in %s", e.Area))
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString(fmt.Sprintf(
		"Skills: %d groups  Projects: %d  Certifications: %d",
		len(record.Skills), len(record.Projects), len(record.Certifications),
	))

	p.printBox("Parsed Resume", sb.String())
}

// PrintMetadata outputs ingestion metadata for one document.
func (p *Printer) PrintMetadata(source, documentID string, chars, lines, words int) {
	content := fmt.Sprintf(
		"Source:   %s\nDocument: %s\nChars:    %d\nLines:    %d\nWords:    %d",
		source, documentID, chars, lines, words,
	)
	p.printBox("Document", content)
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
