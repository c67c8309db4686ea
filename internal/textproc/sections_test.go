package textproc

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ProseCorpusBuilder/internal/domain"
)

// prose builds a paragraph of n lowercase words so it never reads as a
// heading.
func prose(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("word%d", i)
	}
	return strings.Join(words, " ")
}

func TestSplitSectionsNoneMode(t *testing.T) {
	t.Parallel()

	paragraphs := []string{"CHAPTER ONE", prose(30)}
	sections, err := SplitSections(paragraphs, domain.SplitNone, 10)
	require.NoError(t, err)

	require.Len(t, sections, 1)
	assert.Equal(t, SectionFullText, sections[0].Name)
	assert.Equal(t, paragraphs, sections[0].Paragraphs)
}

func TestSplitSectionsUnsupportedMode(t *testing.T) {
	t.Parallel()

	_, err := SplitSections([]string{prose(5)}, domain.SplitMode("chapters"), 10)
	require.Error(t, err)
}

func TestSplitSectionsNoHeadingsFallsBack(t *testing.T) {
	t.Parallel()

	paragraphs := []string{prose(20), prose(20)}
	sections, err := SplitSections(paragraphs, domain.SplitHeadings, 10)
	require.NoError(t, err)

	require.Len(t, sections, 1)
	assert.Equal(t, SectionFullText, sections[0].Name)
}

func TestSplitSectionsHeadingsPartition(t *testing.T) {
	t.Parallel()

	paragraphs := []string{
		prose(30), // lead, above minimum: becomes Introduction
		"CHAPTER ONE",
		prose(40),
		prose(40),
		"CHAPTER TWO",
		prose(50),
	}
	sections, err := SplitSections(paragraphs, domain.SplitHeadings, 20)
	require.NoError(t, err)

	require.Len(t, sections, 3)
	assert.Equal(t, SectionIntroduction, sections[0].Name)
	assert.Len(t, sections[0].Paragraphs, 1)
	assert.Equal(t, "CHAPTER ONE", sections[1].Name)
	assert.Len(t, sections[1].Paragraphs, 2)
	assert.Equal(t, "CHAPTER TWO", sections[2].Name)
	assert.Len(t, sections[2].Paragraphs, 1)
}

func TestSplitSectionsDropsShortLead(t *testing.T) {
	t.Parallel()

	paragraphs := []string{
		prose(5), // lead below minimum: silently dropped
		"CHAPTER ONE",
		prose(40),
	}
	sections, err := SplitSections(paragraphs, domain.SplitHeadings, 20)
	require.NoError(t, err)

	require.Len(t, sections, 1)
	assert.Equal(t, "CHAPTER ONE", sections[0].Name)
}

func TestSplitSectionsDropsShortAndExcluded(t *testing.T) {
	t.Parallel()

	paragraphs := []string{
		"CONTENTS",
		prose(40), // excluded by name
		"CHAPTER ONE",
		prose(6), // below minimum
		"CHAPTER TWO",
		prose(40),
	}
	sections, err := SplitSections(paragraphs, domain.SplitHeadings, 20)
	require.NoError(t, err)

	require.Len(t, sections, 1)
	assert.Equal(t, "CHAPTER TWO", sections[0].Name)
}

func TestSplitSectionsEmptyBodiesSkipped(t *testing.T) {
	t.Parallel()

	paragraphs := []string{
		"CHAPTER ONE",
		"CHAPTER TWO",
		prose(40),
	}
	sections, err := SplitSections(paragraphs, domain.SplitHeadings, 20)
	require.NoError(t, err)

	require.Len(t, sections, 1)
	assert.Equal(t, "CHAPTER TWO", sections[0].Name)
}

func TestSplitSectionsAllDroppedFallsBack(t *testing.T) {
	t.Parallel()

	paragraphs := []string{
		"CHAPTER ONE",
		prose(4),
	}
	sections, err := SplitSections(paragraphs, domain.SplitHeadings, 20)
	require.NoError(t, err)

	require.Len(t, sections, 1)
	assert.Equal(t, SectionFullText, sections[0].Name)
	assert.Equal(t, paragraphs, sections[0].Paragraphs)
}
