// Package scoring computes per-unit readability metrics. All functions are
// pure and total: degenerate input yields a defined zero value, never an
// error.
package scoring

import (
	"regexp"
	"strings"
	"unicode"

	"ProseCorpusBuilder/internal/textproc"
)

const (
	syllablePunct = ".,;:!?\"'()[]"
	vowels        = "aeiouyAEIOUY"
)

var burdenTokenRe = regexp.MustCompile(`\b[\w'-]+\b`)

// CountSyllables estimates syllables in a single word by counting
// vowel-group transitions, discounting a silent trailing "e" when more than
// one group was found, with a floor of one syllable.
func CountSyllables(word string) int {
	token := strings.Trim(word, syllablePunct)
	if token == "" {
		return 1
	}

	count := 0
	prevVowel := false
	for _, ch := range token {
		isVowel := strings.ContainsRune(vowels, ch)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}
	if strings.HasSuffix(token, "e") && count > 1 {
		count--
	}
	if count < 1 {
		return 1
	}
	return count
}

// FleschKincaidGrade estimates a US grade level:
// 0.39*(words/sentences) + 11.8*(syllables/words) - 15.59.
// Returns 0 for empty text.
func FleschKincaidGrade(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}

	sentences := textproc.CountSentences(text)
	syllables := 0
	for _, w := range words {
		syllables += CountSyllables(w)
	}

	return 0.39*(float64(len(words))/float64(sentences)) +
		11.8*(float64(syllables)/float64(len(words))) - 15.59
}

// PctPolysyllabic is the fraction of alphabetic word tokens estimated at 3+
// syllables. Returns 0 for empty text.
func PctPolysyllabic(text string) float64 {
	words := textproc.Words(text)
	if len(words) == 0 {
		return 0
	}

	poly := 0
	for _, w := range words {
		if CountSyllables(w) >= 3 {
			poly++
		}
	}
	return float64(poly) / float64(len(words))
}

// FactualBurden is the fraction of word tokens that carry a digit or are
// Capitalized-then-lowercase, a cheap proxy for numeric and named-entity
// density. Returns 0 for empty text.
func FactualBurden(text string) float64 {
	tokens := burdenTokenRe.FindAllString(text, -1)
	if len(tokens) == 0 {
		return 0
	}

	burdened := 0
	for _, token := range tokens {
		if containsDigit(token) || isProperCased(token) {
			burdened++
		}
	}
	return float64(burdened) / float64(len(tokens))
}

func containsDigit(token string) bool {
	for _, ch := range token {
		if unicode.IsDigit(ch) {
			return true
		}
	}
	return false
}

// isProperCased reports an uppercase first rune followed by a rest that
// contains at least one cased rune, none of them uppercase.
func isProperCased(token string) bool {
	runes := []rune(token)
	if len(runes) < 2 || !unicode.IsUpper(runes[0]) {
		return false
	}
	hasLower := false
	for _, ch := range runes[1:] {
		if unicode.IsUpper(ch) {
			return false
		}
		if unicode.IsLower(ch) {
			hasLower = true
		}
	}
	return hasLower
}
