package textproc

import "strings"

// Chunk is one packed (section, text) unit candidate produced by the
// chunker; acceptance filtering and scoring happen downstream.
type Chunk struct {
	Section string
	Text    string
}

// ChunkLimits tunes the packing pass.
type ChunkLimits struct {
	TargetWords int // soft goal: close a unit once reached
	MaxWords    int // hard ceiling: never exceeded by construction
	MinWords    int // preferred floor: trailing merge threshold
}

// ChunkSection packs a section's paragraphs into target-sized units.
//
// The pass folds paragraphs into a running accumulator: structural stubs
// flush the accumulator and are discarded; paragraphs over MaxWords flush
// and are split on sentence boundaries into their own units; paragraphs that
// would overflow the accumulator flush first; reaching TargetWords flushes.
// A final left-to-right merge pass folds units under MinWords into their
// predecessor when the merged size stays within MaxWords, so no tiny
// trailing fragment survives on its own.
func ChunkSection(sectionTitle string, paragraphs []string, limits ChunkLimits) []Chunk {
	var chunks []Chunk
	var current []string
	currentWords := 0

	flush := func() {
		if len(current) == 0 {
			return
		}
		text := strings.TrimSpace(strings.Join(current, "\n\n"))
		if text != "" {
			chunks = append(chunks, Chunk{Section: sectionTitle, Text: text})
		}
		current = nil
		currentWords = 0
	}

	for _, paragraph := range paragraphs {
		if IsStructuralStub(paragraph) {
			flush()
			continue
		}

		pw := CountWords(paragraph)
		if pw > limits.MaxWords {
			flush()
			for _, piece := range splitOversizedParagraph(paragraph, limits) {
				chunks = append(chunks, Chunk{Section: sectionTitle, Text: piece})
			}
			continue
		}

		if len(current) > 0 && currentWords+pw > limits.MaxWords {
			flush()
		}

		current = append(current, paragraph)
		currentWords += pw

		if currentWords >= limits.TargetWords {
			flush()
		}
	}
	flush()

	return mergeTrailing(chunks, limits)
}

// splitOversizedParagraph breaks a paragraph that alone exceeds MaxWords
// into sentence-boundary pieces, greedily filling up to MaxWords and closing
// a piece early once TargetWords is reached.
func splitOversizedParagraph(paragraph string, limits ChunkLimits) []string {
	sentences := splitSentences(paragraph)
	if len(sentences) == 0 {
		return []string{paragraph}
	}

	var pieces []string
	var current []string
	currentWords := 0

	emit := func() {
		if len(current) == 0 {
			return
		}
		piece := strings.TrimSpace(strings.Join(current, " "))
		if piece != "" {
			pieces = append(pieces, piece)
		}
		current = nil
		currentWords = 0
	}

	for _, sentence := range sentences {
		w := CountWords(sentence)
		if len(current) > 0 && currentWords+w > limits.MaxWords {
			emit()
		}
		current = append(current, sentence)
		currentWords += w
		if currentWords >= limits.TargetWords {
			emit()
		}
	}
	emit()

	return pieces
}

// splitSentences cuts text after terminal punctuation runs followed by
// whitespace. A regex heuristic, not a tokenizer: abbreviations split too,
// which is acceptable for packing purposes.
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	i := 0
	for i < len(text) {
		if text[i] != '.' && text[i] != '!' && text[i] != '?' {
			i++
			continue
		}
		j := i + 1
		for j < len(text) && (text[j] == '.' || text[j] == '!' || text[j] == '?') {
			j++
		}
		if j < len(text) && (text[j] == ' ' || text[j] == '\t' || text[j] == '\n') {
			if s := strings.TrimSpace(text[start:j]); s != "" {
				sentences = append(sentences, s)
			}
			for j < len(text) && (text[j] == ' ' || text[j] == '\t' || text[j] == '\n') {
				j++
			}
			start = j
		}
		i = j
	}
	if start < len(text) {
		if s := strings.TrimSpace(text[start:]); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// mergeTrailing folds units below MinWords into their predecessor when the
// merge fits under MaxWords. The first unit has no predecessor and is never
// merged backward.
func mergeTrailing(chunks []Chunk, limits ChunkLimits) []Chunk {
	if len(chunks) <= 1 {
		return chunks
	}

	merged := []Chunk{chunks[0]}
	for _, chunk := range chunks[1:] {
		w := CountWords(chunk.Text)
		prev := &merged[len(merged)-1]
		if w < limits.MinWords && CountWords(prev.Text)+w <= limits.MaxWords {
			prev.Text = strings.TrimSpace(prev.Text + "\n\n" + chunk.Text)
			continue
		}
		merged = append(merged, chunk)
	}
	return merged
}
