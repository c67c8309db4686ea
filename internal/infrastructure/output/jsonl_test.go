package output

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ProseCorpusBuilder/internal/domain"
)

func sampleUnit(title string) domain.Unit {
	return domain.Unit{
		Title:         title,
		Text:          "Some drill text with <em>markup</em> & ampersands.",
		Domain:        "Prose",
		FKGrade:       7.3,
		Words:         7,
		Sentences:     1,
		Author:        "Edgar Allan Poe",
		WorkTitle:     "The Raven",
		WorkID:        "poe-raven",
		UnitType:      "prose",
		Tags:          []string{"poe"},
		Section:       "Introduction",
		PctPoly:       0.1234,
		FactualBurden: 0.05,
	}
}

func TestWriteTierProducesJSONL(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := NewJSONLWriter(dir, "corpus-prose")

	units := []domain.Unit{sampleUnit("u1"), sampleUnit("u2"), sampleUnit("u3")}
	file, err := w.WriteTier(domain.TierEasy, units)
	require.NoError(t, err)

	assert.Equal(t, domain.TierEasy, file.Tier)
	assert.Equal(t, filepath.Join(dir, "corpus-prose-easy.jsonl"), file.Path)
	assert.Equal(t, 3, file.Rows)
	assert.Positive(t, file.Bytes)

	f, err := os.Open(file.Path)
	require.NoError(t, err)
	defer f.Close()

	var lines int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines++
		var row map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &row))

		for _, field := range []string{
			"title", "text", "domain", "fk_grade", "words", "sentences",
			"author", "work_title", "work_id", "unit_type", "tags", "section",
		} {
			assert.Contains(t, row, field)
		}
		assert.NotContains(t, row, "pct_poly")
		assert.NotContains(t, row, "factual_burden")
	}
	require.NoError(t, scanner.Err())
	assert.Equal(t, 3, lines)
}

func TestWriteTierDoesNotEscapeHTML(t *testing.T) {
	t.Parallel()

	w := NewJSONLWriter(t.TempDir(), "corpus-prose")
	file, err := w.WriteTier(domain.TierMedium, []domain.Unit{sampleUnit("u")})
	require.NoError(t, err)

	raw, err := os.ReadFile(file.Path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "<em>markup</em>")
	assert.NotContains(t, string(raw), `\u003c`)
}

func TestWriteTierNilTagsSerializeAsEmptyArray(t *testing.T) {
	t.Parallel()

	u := sampleUnit("untagged")
	u.Tags = nil

	w := NewJSONLWriter(t.TempDir(), "corpus-prose")
	file, err := w.WriteTier(domain.TierHard, []domain.Unit{u})
	require.NoError(t, err)

	raw, err := os.ReadFile(file.Path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"tags":[]`)
	assert.NotContains(t, string(raw), `"tags":null`)
}

func TestWriteTierEmptyBand(t *testing.T) {
	t.Parallel()

	w := NewJSONLWriter(t.TempDir(), "corpus-prose")
	file, err := w.WriteTier(domain.TierEasy, nil)
	require.NoError(t, err)
	assert.Zero(t, file.Rows)

	raw, err := os.ReadFile(file.Path)
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(string(raw)))
}
