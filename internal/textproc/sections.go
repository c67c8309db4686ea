package textproc

import (
	"fmt"
	"strings"

	"ProseCorpusBuilder/internal/domain"
)

const (
	// SectionFullText labels the single section used when no headings are
	// found or heading splitting is disabled.
	SectionFullText = "Full text"
	// SectionIntroduction labels lead paragraphs before the first heading.
	SectionIntroduction = "Introduction"
)

// SplitSections partitions paragraphs into named sections. With SplitNone
// the whole input is one "Full text" section. With SplitHeadings, heading
// paragraphs open sections; lead paragraphs become an "Introduction" when
// they meet minSectionWords; sections with empty bodies, bodies under the
// minimum, or excluded names are dropped. If nothing survives, the whole
// input falls back to a single "Full text" section.
func SplitSections(paragraphs []string, mode domain.SplitMode, minSectionWords int) ([]domain.Section, error) {
	switch mode {
	case domain.SplitNone:
		return []domain.Section{{Name: SectionFullText, Paragraphs: paragraphs}}, nil
	case domain.SplitHeadings:
	default:
		return nil, fmt.Errorf("unsupported split mode: %s", mode)
	}

	var headingIdx []int
	for i, p := range paragraphs {
		if LooksLikeHeading(p) {
			headingIdx = append(headingIdx, i)
		}
	}
	if len(headingIdx) == 0 {
		return []domain.Section{{Name: SectionFullText, Paragraphs: paragraphs}}, nil
	}

	var sections []domain.Section

	if headingIdx[0] > 0 {
		lead := paragraphs[:headingIdx[0]]
		if bodyWords(lead) >= minSectionWords {
			sections = append(sections, domain.Section{Name: SectionIntroduction, Paragraphs: lead})
		}
	}

	for i, headingAt := range headingIdx {
		bodyStart := headingAt + 1
		bodyEnd := len(paragraphs)
		if i+1 < len(headingIdx) {
			bodyEnd = headingIdx[i+1]
		}
		body := paragraphs[bodyStart:bodyEnd]
		if len(body) == 0 {
			continue
		}
		if bodyWords(body) < minSectionWords {
			continue
		}
		heading := paragraphs[headingAt]
		if IsExcludedSectionName(heading) {
			continue
		}
		sections = append(sections, domain.Section{Name: heading, Paragraphs: body})
	}

	if len(sections) == 0 {
		return []domain.Section{{Name: SectionFullText, Paragraphs: paragraphs}}, nil
	}
	return sections, nil
}

func bodyWords(paragraphs []string) int {
	return CountWords(strings.Join(paragraphs, "\n\n"))
}
