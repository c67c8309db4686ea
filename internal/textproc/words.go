// Package textproc implements the segmentation core: normalization,
// paragraph extraction, heading detection, section splitting, and
// target-sized chunking of long-form prose.
package textproc

import "regexp"

var (
	wordRe     = regexp.MustCompile(`[A-Za-z']+`)
	sentenceRe = regexp.MustCompile(`[.!?]+`)
)

// Words returns the alphabetic word tokens of text.
func Words(text string) []string {
	return wordRe.FindAllString(text, -1)
}

// CountWords counts alphabetic word tokens in text.
func CountWords(text string) int {
	return len(wordRe.FindAllStringIndex(text, -1))
}

// CountSentences counts terminal punctuation runs, with a floor of one so
// ratios over sentence counts stay defined for fragment-only text.
func CountSentences(text string) int {
	n := len(sentenceRe.FindAllStringIndex(text, -1))
	if n < 1 {
		return 1
	}
	return n
}
