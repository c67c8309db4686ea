// Package tiering ranks scored units by composite difficulty and partitions
// them, per author, into easy/medium/hard bands. It is a pure batch pass
// over the full corpus: no state survives a call.
package tiering

import (
	"math"
	"sort"

	"ProseCorpusBuilder/internal/domain"
)

// Composite difficulty weights. Factual burden is down-weighted and
// inverted: information-dense text reads as a separate confound, not as
// linguistic difficulty.
const (
	gradeWeight  = 0.6
	polyWeight   = 0.3
	burdenWeight = 0.1
)

type scoredUnit struct {
	unit       domain.Unit
	difficulty float64
}

// AssignTiers partitions units into the three difficulty bands. Fewer than
// 3 units total all land in Hard. Otherwise corpus-wide z-scores feed a
// composite difficulty, and each author's units are ranked and cut into
// ascending easy/medium/hard bands, so tiers are author-relative rather
// than absolute thresholds.
func AssignTiers(units []domain.Unit) domain.TieredCorpus {
	if len(units) == 0 {
		return domain.TieredCorpus{}
	}
	if len(units) < 3 {
		return domain.TieredCorpus{Hard: append([]domain.Unit(nil), units...)}
	}

	grade := make([]float64, len(units))
	poly := make([]float64, len(units))
	burden := make([]float64, len(units))
	for i, u := range units {
		grade[i] = u.FKGrade
		poly[i] = u.PctPoly
		burden[i] = u.FactualBurden
	}
	gradeZ := zScores(grade)
	polyZ := zScores(poly)
	burdenZ := zScores(burden)

	// Group per author, preserving first-seen author order and the input
	// order within each group so the ranking sort stays stable.
	byAuthor := map[string][]scoredUnit{}
	var authors []string
	for i, u := range units {
		difficulty := gradeWeight*gradeZ[i] + polyWeight*polyZ[i] - burdenWeight*burdenZ[i]
		if _, seen := byAuthor[u.Author]; !seen {
			authors = append(authors, u.Author)
		}
		byAuthor[u.Author] = append(byAuthor[u.Author], scoredUnit{unit: u, difficulty: difficulty})
	}

	var tiered domain.TieredCorpus
	for _, author := range authors {
		rows := byAuthor[author]
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].difficulty < rows[j].difficulty
		})

		n := len(rows)
		switch {
		case n == 1:
			tiered.Hard = append(tiered.Hard, rows[0].unit)
		case n == 2:
			tiered.Medium = append(tiered.Medium, rows[0].unit)
			tiered.Hard = append(tiered.Hard, rows[1].unit)
		default:
			cut1, cut2 := bandCuts(n)
			for _, row := range rows[:cut1] {
				tiered.Easy = append(tiered.Easy, row.unit)
			}
			for _, row := range rows[cut1:cut2] {
				tiered.Medium = append(tiered.Medium, row.unit)
			}
			for _, row := range rows[cut2:] {
				tiered.Hard = append(tiered.Hard, row.unit)
			}
		}
	}
	return tiered
}

// bandCuts splits n ranked units at thirds, clamped so each band below Hard
// is non-empty and Hard always receives at least one unit.
func bandCuts(n int) (cut1, cut2 int) {
	cut1 = n / 3
	if cut1 < 1 {
		cut1 = 1
	}
	cut2 = (2 * n) / 3
	if cut2 < cut1+1 {
		cut2 = cut1 + 1
	}
	if cut2 >= n {
		cut2 = n - 1
	}
	return cut1, cut2
}

// zScores normalizes values against their own mean and standard deviation.
// A zero-spread population maps to all-zero scores.
func zScores(values []float64) []float64 {
	scores := make([]float64, len(values))
	if len(values) < 2 {
		return scores
	}

	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	variance := 0.0
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	stdev := math.Sqrt(variance / float64(len(values)-1))
	if stdev == 0 {
		return scores
	}

	for i, v := range values {
		scores[i] = (v - mean) / stdev
	}
	return scores
}
