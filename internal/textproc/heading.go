package textproc

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxHeadingChars = 100
	maxHeadingWords = 12
)

const wrapChars = " \"'“”‘’()[]{}"

var structuralKeywords = []string{"chapter ", "book ", "part ", "section "}

var (
	titleWordRe       = regexp.MustCompile(`^[A-Z][A-Za-z'’-]*$`)
	upperWordRe       = regexp.MustCompile(`^[A-Z][A-Z'’-]*$`)
	singleTitleWordRe = regexp.MustCompile(`^[A-Z][a-z]{4,}$`)
	numericStubRe     = regexp.MustCompile(`^\d+[.)]?$`)
	romanStubRe       = regexp.MustCompile(`(?i)^[IVXLCDM]+[.)]?$`)
	emphasisStubRe    = regexp.MustCompile(`^[_*][^_*]{2,120}[_*]$`)
	nonWordCharRe     = regexp.MustCompile(`[^\w'’-]`)
	letterTokenRe     = regexp.MustCompile(`[A-Za-z'’-]+`)
	anyTerminalRe     = regexp.MustCompile(`[.!?]`)
)

// headingCandidate carries the derived views of a paragraph that the rules
// below inspect, so each rule stays a cheap predicate.
type headingCandidate struct {
	raw     string // paragraph with outer spaces trimmed
	plain   string // raw with wrapping quotes/brackets removed
	words   []string
}

func newHeadingCandidate(paragraph string) headingCandidate {
	raw := strings.TrimSpace(paragraph)
	return headingCandidate{
		raw:   raw,
		plain: strings.Trim(raw, wrapChars),
		words: strings.Fields(raw),
	}
}

func titleLikeRatio(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	titleLike := 0
	for _, w := range words {
		if titleWordRe.MatchString(w) || upperWordRe.MatchString(w) {
			titleLike++
		}
	}
	return float64(titleLike) / float64(len(words))
}

// headingRule is one named predicate in the detection table. Rules run in
// order; the first match wins.
type headingRule struct {
	name  string
	match func(c headingCandidate) bool
}

// headingRules classify section headings ("CHAPTER ONE", "Benediction",
// "THE GOLD-BUG"). They only fire on candidates that already pass the shared
// shape gate in LooksLikeHeading.
var headingRules = []headingRule{
	{
		name: "keyword-prefix",
		match: func(c headingCandidate) bool {
			lower := strings.ToLower(c.raw)
			for _, kw := range structuralKeywords {
				if strings.HasPrefix(lower, kw) {
					return true
				}
			}
			return false
		},
	},
	{
		// Single-word paragraphs are headings only in strict title case
		// with 5+ letters; all-caps or roman fragments ("VI") stay body
		// text for the section pass. This rule is terminal for one-word
		// candidates: the majority rule below never sees them.
		name: "single-title-word",
		match: func(c headingCandidate) bool {
			if len(c.words) != 1 {
				return false
			}
			token := nonWordCharRe.ReplaceAllString(c.words[0], "")
			return singleTitleWordRe.MatchString(token)
		},
	},
	{
		name: "majority-title-case",
		match: func(c headingCandidate) bool {
			if len(c.words) < 2 {
				return false
			}
			return titleLikeRatio(c.words) >= 0.8
		},
	},
}

// stubRules classify bare structural stubs inside a section body ("IV.",
// "12", "_Part the First_") that mark unit boundaries but never belong in
// drill text.
var stubRules = []headingRule{
	{
		name: "numeric",
		match: func(c headingCandidate) bool {
			return numericStubRe.MatchString(c.plain)
		},
	},
	{
		name: "roman-numeral",
		match: func(c headingCandidate) bool {
			return romanStubRe.MatchString(c.plain)
		},
	},
	{
		name: "emphasis-wrapped",
		match: func(c headingCandidate) bool {
			return emphasisStubRe.MatchString(c.raw)
		},
	},
	{
		name: "short-title-fragment",
		match: func(c headingCandidate) bool {
			if anyTerminalRe.MatchString(c.plain) {
				return false
			}
			words := letterTokenRe.FindAllString(c.plain, -1)
			if len(words) == 0 || len(words) > maxHeadingWords {
				return false
			}
			return titleLikeRatio(words) >= 0.8
		},
	},
}

// LooksLikeHeading reports whether a paragraph reads as a structural
// title/chapter marker: short, not a sentence, and matching one of the
// ordered heading rules.
func LooksLikeHeading(paragraph string) bool {
	c := newHeadingCandidate(paragraph)
	if c.raw == "" {
		return false
	}
	if utf8.RuneCountInString(c.raw) > maxHeadingChars {
		return false
	}
	if strings.HasSuffix(c.plain, ".") || strings.HasSuffix(c.plain, "!") || strings.HasSuffix(c.plain, "?") {
		return false
	}
	if len(c.words) > maxHeadingWords {
		return false
	}
	for _, rule := range headingRules {
		if rule.match(c) {
			return true
		}
		// One-word candidates are decided entirely by single-title-word.
		if rule.name == "single-title-word" && len(c.words) == 1 {
			return false
		}
	}
	return false
}

// IsStructuralStub reports whether a paragraph is a bare heading stub that
// should act as a chunk boundary and be dropped from output.
func IsStructuralStub(paragraph string) bool {
	c := newHeadingCandidate(paragraph)
	if c.raw == "" {
		return false
	}
	for _, rule := range stubRules {
		if rule.match(c) {
			return true
		}
	}
	return false
}

var excludedSectionNames = map[string]struct{}{
	"INDEX":             {},
	"THE END":           {},
	"CONTENTS":          {},
	"TABLE OF CONTENTS": {},
}

var innerWSRe = regexp.MustCompile(`\s+`)

// IsExcludedSectionName reports whether a heading names a front/back-matter
// section that never yields drill units.
func IsExcludedSectionName(name string) bool {
	cleaned := innerWSRe.ReplaceAllString(strings.TrimSpace(strings.ToUpper(name)), " ")
	_, excluded := excludedSectionNames[cleaned]
	return excluded
}
