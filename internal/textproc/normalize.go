package textproc

import (
	"regexp"
	"strings"
)

var (
	gutenbergStartRe = regexp.MustCompile(`(?i)\*\*\*\s*START OF (?:THE|THIS) PROJECT GUTENBERG EBOOK .*?\*\*\*`)
	gutenbergEndRe   = regexp.MustCompile(`(?i)\*\*\*\s*END OF (?:THE|THIS) PROJECT GUTENBERG EBOOK .*?\*\*\*`)
	horizontalWSRe   = regexp.MustCompile(`[ \t]+`)
	blankRunRe       = regexp.MustCompile(`\n{3,}`)
)

// stripBoilerplate retains only the text between the Project Gutenberg
// start and end markers. If only one marker is present, just that side is
// trimmed; with neither, the text passes through unchanged.
func stripBoilerplate(text string) string {
	if loc := gutenbergStartRe.FindStringIndex(text); loc != nil {
		text = text[loc[1]:]
	}
	if loc := gutenbergEndRe.FindStringIndex(text); loc != nil {
		text = text[:loc[0]]
	}
	return strings.TrimSpace(text)
}

// Normalize canonicalizes raw source text: single newline style, no BOM,
// boilerplate markers stripped, horizontal whitespace collapsed, and runs of
// 3+ blank lines reduced to one blank line. Normalizing already-normalized
// text is a no-op.
func Normalize(raw string) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\uFEFF", "")
	text = stripBoilerplate(text)
	text = horizontalWSRe.ReplaceAllString(text, " ")
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// Paragraphs splits normalized text into blank-line-delimited paragraphs,
// each collapsed to a single line. Empty paragraphs are discarded.
func Paragraphs(text string) []string {
	var paragraphs []string
	var current []string

	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			if len(current) > 0 {
				paragraphs = appendParagraph(paragraphs, current)
				current = nil
			}
			continue
		}
		current = append(current, stripped)
	}
	if len(current) > 0 {
		paragraphs = appendParagraph(paragraphs, current)
	}
	return paragraphs
}

func appendParagraph(paragraphs, lines []string) []string {
	joined := strings.TrimSpace(strings.Join(lines, " "))
	if joined == "" {
		return paragraphs
	}
	return append(paragraphs, joined)
}
