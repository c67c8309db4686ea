package tiering

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ProseCorpusBuilder/internal/domain"
)

func unit(author string, fk, poly, burden float64) domain.Unit {
	return domain.Unit{
		Title:         fmt.Sprintf("%s fk=%.1f", author, fk),
		Author:        author,
		FKGrade:       fk,
		PctPoly:       poly,
		FactualBurden: burden,
	}
}

func TestAssignTiersEmpty(t *testing.T) {
	t.Parallel()

	tiered := AssignTiers(nil)
	assert.Zero(t, tiered.Total())
}

func TestAssignTiersFewerThanThreeAllHard(t *testing.T) {
	t.Parallel()

	units := []domain.Unit{
		unit("Poe", 5, 0.1, 0),
		unit("Poe", 9, 0.2, 0),
	}
	tiered := AssignTiers(units)

	assert.Empty(t, tiered.Easy)
	assert.Empty(t, tiered.Medium)
	assert.Len(t, tiered.Hard, 2)
}

func TestAssignTiersThreeUnitsOneAuthor(t *testing.T) {
	t.Parallel()

	a := unit("Poe", 2, 0.05, 0)
	b := unit("Poe", 6, 0.10, 0)
	c := unit("Poe", 10, 0.20, 0)
	tiered := AssignTiers([]domain.Unit{c, a, b})

	require.Len(t, tiered.Easy, 1)
	require.Len(t, tiered.Medium, 1)
	require.Len(t, tiered.Hard, 1)
	assert.Equal(t, a.Title, tiered.Easy[0].Title)
	assert.Equal(t, b.Title, tiered.Medium[0].Title)
	assert.Equal(t, c.Title, tiered.Hard[0].Title)
}

func TestAssignTiersPartitionProperty(t *testing.T) {
	t.Parallel()

	var units []domain.Unit
	for i := 0; i < 9; i++ {
		units = append(units, unit("Melville", float64(i), float64(i)*0.01, 0))
	}
	tiered := AssignTiers(units)

	assert.Len(t, tiered.Easy, 3)
	assert.Len(t, tiered.Medium, 3)
	assert.Len(t, tiered.Hard, 3)
	assert.Equal(t, len(units), tiered.Total())

	seen := map[string]int{}
	for _, tier := range domain.Tiers {
		for _, u := range tiered.Band(tier) {
			seen[u.Title]++
		}
	}
	require.Len(t, seen, len(units))
	for title, count := range seen {
		assert.Equal(t, 1, count, "unit %q assigned more than once", title)
	}
}

func TestAssignTiersPerAuthorMonotonic(t *testing.T) {
	t.Parallel()

	var units []domain.Unit
	for i := 0; i < 10; i++ {
		units = append(units, unit("Austen", float64(i), 0.01*float64(i), 0))
	}
	tiered := AssignTiers(units)

	maxFK := func(band []domain.Unit) float64 {
		m := band[0].FKGrade
		for _, u := range band {
			if u.FKGrade > m {
				m = u.FKGrade
			}
		}
		return m
	}
	minFK := func(band []domain.Unit) float64 {
		m := band[0].FKGrade
		for _, u := range band {
			if u.FKGrade < m {
				m = u.FKGrade
			}
		}
		return m
	}

	// Difficulty is monotone in fk here, so band boundaries must respect it.
	assert.LessOrEqual(t, maxFK(tiered.Easy), minFK(tiered.Medium))
	assert.LessOrEqual(t, maxFK(tiered.Medium), minFK(tiered.Hard))
}

func TestAssignTiersSmallAuthorGroups(t *testing.T) {
	t.Parallel()

	units := []domain.Unit{
		unit("Solo", 4, 0.1, 0),
		unit("Pair", 2, 0.05, 0),
		unit("Pair", 8, 0.15, 0),
	}
	tiered := AssignTiers(units)

	// A single-unit author lands in hard; a two-unit author splits
	// medium/hard with the easier unit in medium.
	assert.Empty(t, tiered.Easy)
	require.Len(t, tiered.Medium, 1)
	assert.Equal(t, "Pair", tiered.Medium[0].Author)
	assert.InDelta(t, 2.0, tiered.Medium[0].FKGrade, 0.001)
	require.Len(t, tiered.Hard, 2)
}

func TestAssignTiersAuthorRelative(t *testing.T) {
	t.Parallel()

	// Every unit by the difficult author outranks every unit by the easy
	// author globally, yet each author still gets a full band spread.
	var units []domain.Unit
	for i := 0; i < 3; i++ {
		units = append(units, unit("Plain", float64(i), 0, 0))
		units = append(units, unit("Ornate", 20+float64(i), 0.3, 0))
	}
	tiered := AssignTiers(units)

	authors := func(band []domain.Unit) map[string]int {
		counts := map[string]int{}
		for _, u := range band {
			counts[u.Author]++
		}
		return counts
	}
	assert.Equal(t, map[string]int{"Plain": 1, "Ornate": 1}, authors(tiered.Easy))
	assert.Equal(t, map[string]int{"Plain": 1, "Ornate": 1}, authors(tiered.Medium))
	assert.Equal(t, map[string]int{"Plain": 1, "Ornate": 1}, authors(tiered.Hard))
}

func TestAssignTiersZeroSpreadMetrics(t *testing.T) {
	t.Parallel()

	// Identical scores: all z-scores 0, composite ties broken by stable
	// input order inside the author's band cuts.
	var units []domain.Unit
	for i := 0; i < 6; i++ {
		units = append(units, unit("Same", 5, 0.1, 0.2))
	}
	tiered := AssignTiers(units)

	assert.Len(t, tiered.Easy, 2)
	assert.Len(t, tiered.Medium, 2)
	assert.Len(t, tiered.Hard, 2)
}

func TestZScores(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []float64{0}, zScores([]float64{7}))
	assert.Equal(t, []float64{0, 0, 0}, zScores([]float64{4, 4, 4}))

	scores := zScores([]float64{1, 2, 3})
	require.Len(t, scores, 3)
	assert.InDelta(t, -1, scores[0], 0.001)
	assert.InDelta(t, 0, scores[1], 0.001)
	assert.InDelta(t, 1, scores[2], 0.001)
}
