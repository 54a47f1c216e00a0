// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 60

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

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines on rune boundaries.
		if runes := []rune(line); len(runes) > boxWidth-4 {
			line = string(runes[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeRecord outputs a human-readable summary of an extracted resume.
func (p *Printer) PrintResumeRecord(title string, record types.ResumeRecord) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:       %s\n", record.Name.String()))
	sb.WriteString(fmt.Sprintf("Email:      %s\n", record.Email.String()))
	sb.WriteString(fmt.Sprintf("Phone:      %s\n", record.Phone.String()))
	sb.WriteString(fmt.Sprintf("Experience: %.1f years\n", record.ExperienceYears))
	sb.WriteString(fmt.Sprintf("Education:  %s\n", record.Education.String()))
	sb.WriteString(fmt.Sprintf("Skills:     %s", record.Skills.String()))

	p.printBox(title, sb.String())
}

// PrintJobRecord outputs a human-readable summary of an extracted job.
func (p *Printer) PrintJobRecord(job types.JobRecord) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Position:   %s\n", job.Position.String()))
	sb.WriteString(fmt.Sprintf("Experience: %d years required\n", job.ReqExpYears))
	sb.WriteString(fmt.Sprintf("Education:  %s\n", job.ReqEducation.String()))
	sb.WriteString(fmt.Sprintf("Skills:     %s", job.ReqSkills.String()))

	p.printBox("Job Description", sb.String())
}

// PrintMatchResult outputs the score breakdown for one resume.
func (p *Printer) PrintMatchResult(title string, result types.MatchResult) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Total:      %6.2f%%\n", result.TotalPercent))
	sb.WriteString(fmt.Sprintf("TF-IDF:     %6.2f\n", result.Breakdown.TFIDF))
	sb.WriteString(fmt.Sprintf("Embeddings: %6.2f\n", result.Breakdown.Embeddings))
	sb.WriteString(fmt.Sprintf("Keywords:   %6.2f\n", result.Breakdown.Keyword))
	sb.WriteString(fmt.Sprintf("Fuzzy:      %6.2f\n", result.Breakdown.Fuzzy))
	sb.WriteString(fmt.Sprintf("Rules:      %6.2f", result.Breakdown.Rules))

	p.printBox(title, sb.String())
}
