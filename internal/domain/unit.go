package domain

// Unit is the final drillable artifact: one bounded-size prose excerpt with
// its readability annotations. Text is assembled during chunking and never
// mutated afterwards.
type Unit struct {
	Title         string
	Text          string
	Domain        string
	FKGrade       float64
	Words         int
	Sentences     int
	Author        string
	WorkTitle     string
	WorkID        string
	UnitType      string
	Tags          []string
	Section       string
	PctPoly       float64
	FactualBurden float64
}

// Tier names one difficulty band of the final corpus partition.
type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
)

// Tiers lists the bands in output order.
var Tiers = []Tier{TierEasy, TierMedium, TierHard}

// TieredCorpus partitions all units into three disjoint difficulty bands.
// Their union is the full scored unit set; with fewer than 3 units total
// everything lands in Hard.
type TieredCorpus struct {
	Easy   []Unit
	Medium []Unit
	Hard   []Unit
}

// Band returns the units assigned to the given tier.
func (t TieredCorpus) Band(tier Tier) []Unit {
	switch tier {
	case TierEasy:
		return t.Easy
	case TierMedium:
		return t.Medium
	default:
		return t.Hard
	}
}

// Total is the number of units across all three tiers.
func (t TieredCorpus) Total() int {
	return len(t.Easy) + len(t.Medium) + len(t.Hard)
}
