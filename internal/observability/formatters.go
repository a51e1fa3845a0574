// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/candidate-assessor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
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

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResult outputs a human-readable summary of an analysis result.
func (p *Printer) PrintResult(result *types.AssessmentResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("WILL:     %d%% (%d/%d)\n",
		result.WillScore, result.ScoringBreakdown.Will.Total, result.ScoringBreakdown.Will.Max))
	sb.WriteString(fmt.Sprintf("SKILL:    %d%% (%d/%d)\n",
		result.SkillScore, result.ScoringBreakdown.Skill.Total, result.ScoringBreakdown.Skill.Max))
	sb.WriteString(fmt.Sprintf("Quadrant: %s\n", result.Quadrant))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Recommended: %s\n", result.RecommendedRole))
	for i, rec := range result.Recommendations {
		sb.WriteString(fmt.Sprintf("  %d. %s (%d%%)\n", i+1, rec.Role, rec.Confidence))
	}

	p.printBox("Assessment Result", sb.String())
}

// PrintBreakdown outputs the per-sub-score detail of a result.
func (p *Printer) PrintBreakdown(result *types.AssessmentResult) {
	if result == nil {
		return
	}

	will := result.ScoringBreakdown.Will.Breakdown
	skill := result.ScoringBreakdown.Skill.Breakdown

	var sb strings.Builder
	sb.WriteString("WILL\n")
	sb.WriteString(fmt.Sprintf("  Q2 commitment:   %d/25\n", will.Q2Commitment))
	sb.WriteString(fmt.Sprintf("  Q3 achievement:  %d/25\n", will.Q3Achievement))
	sb.WriteString(fmt.Sprintf("  Q4 constraints:  %d/30\n", will.Q4Constraints))
	sb.WriteString(fmt.Sprintf("  Q5 leadership:   %d/20\n", will.Q5Leadership))
	sb.WriteString("SKILL\n")
	sb.WriteString(fmt.Sprintf("  Sophistication:  %d/25\n", skill.Sophistication))
	sb.WriteString(fmt.Sprintf("  Strategic:       %d/25\n", skill.StrategicThinking))
	sb.WriteString(fmt.Sprintf("  Outcomes:        %d/25\n", skill.OutcomeOrientation))
	sb.WriteString(fmt.Sprintf("  Leadership:      %d/25\n", skill.LeadershipSignals))

	p.printBox("Scoring Breakdown", sb.String())
}

// PrintInsights outputs the key insights of a result.
func (p *Printer) PrintInsights(insights types.KeyInsights) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Commitment: %s   Readiness: %s   Growth: %s\n",
		insights.CommitmentLevel, insights.SkillReadiness, insights.GrowthPotential))
	if len(insights.Strengths) > 0 {
		sb.WriteString("Strengths:\n")
		for _, s := range insights.Strengths {
			sb.WriteString(fmt.Sprintf("  + %s\n", s))
		}
	}
	if len(insights.DevelopmentAreas) > 0 {
		sb.WriteString("Development areas:\n")
		for _, d := range insights.DevelopmentAreas {
			sb.WriteString(fmt.Sprintf("  - %s\n", d))
		}
	}

	p.printBox("Key Insights", sb.String())
}
