// Package ui renders the end-of-run tier summary for the terminal.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ProseCorpusBuilder/internal/domain"
	"ProseCorpusBuilder/internal/ports"
)

var (
	// titleStyle for the summary header
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("81"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// boxStyle for the summary box with rounded border
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("81")).
			Padding(0, 1)

	tierStyles = map[domain.Tier]lipgloss.Style{
		domain.TierEasy:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		domain.TierMedium: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		domain.TierHard:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
)

// RenderSummary prints per-tier unit counts, word statistics, and output
// file locations.
func RenderSummary(w io.Writer, tiered domain.TieredCorpus, files []ports.TierFile) {
	paths := map[domain.Tier]ports.TierFile{}
	for _, f := range files {
		paths[f.Tier] = f
	}

	var lines []string
	lines = append(lines, titleStyle.Render("Tier summary"))

	for _, tier := range domain.Tiers {
		units := tiered.Band(tier)
		label := tierStyles[tier].Render(fmt.Sprintf("%-6s", tier))
		if len(units) == 0 {
			lines = append(lines, fmt.Sprintf("%s %s", label, dimStyle.Render("0 units")))
			continue
		}

		meanWords, maxWords, meanFK := bandStats(units)
		line := fmt.Sprintf("%s %4d units  words(mean=%.0f, max=%d)  fk(mean=%.1f)",
			label, len(units), meanWords, maxWords, meanFK)
		if f, ok := paths[tier]; ok {
			line += "  " + dimStyle.Render(fmt.Sprintf("%s (%.1f MB)", f.Path, float64(f.Bytes)/(1024*1024)))
		}
		lines = append(lines, line)
	}

	fmt.Fprintln(w, boxStyle.Render(strings.Join(lines, "\n")))
}

func bandStats(units []domain.Unit) (meanWords float64, maxWords int, meanFK float64) {
	for _, u := range units {
		meanWords += float64(u.Words)
		meanFK += u.FKGrade
		if u.Words > maxWords {
			maxWords = u.Words
		}
	}
	n := float64(len(units))
	return meanWords / n, maxWords, meanFK / n
}
