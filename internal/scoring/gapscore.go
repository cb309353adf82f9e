// Package scoring computes the 0-100 void score per category.
//
// Score is deterministic and side-effect-free: identical inputs always produce
// the identical breakdown, which is what makes golden-value tests possible.
package scoring

import (
	"math"
)

// Weights of the five signals. They sum to 1.0.
const (
	weightBuilderGap     = 0.30
	weightMarketControl  = 0.20
	weightDevMomentum    = 0.15
	weightNearFocus      = 0.20
	weightUntappedDemand = 0.15
)

const (
	// builderCeiling is the active-project count at which a category is
	// considered fully built out
	builderCeiling = 10.0

	// demandTVLRef and demandTxnRef normalize capital and activity volume:
	// a category at either reference has full demand presence
	demandTVLRef = 1_000_000.0
	demandTxnRef = 10_000.0

	// focusBaseline is the NEAR Focus value for non-strategic categories
	focusBaseline = 50.0

	// strategicDemandFloor is the minimum Untapped Demand value for strategic
	// categories: sponsor-prioritized topics carry exogenous demand even when
	// no on-chain capital has arrived yet
	strategicDemandFloor = 70.0
)

// CategoryInput holds the per-category aggregates the engine scores
type CategoryInput struct {
	TotalProjects       int
	ActiveProjects      int
	TotalTVL            float64
	TopProjectTVL       float64
	TotalTxns           int64
	RecentlyPushedRepos int
	IsStrategic         bool
	StrategicMultiplier float64
}

// Signal is one named component of the gap score
type Signal struct {
	Name        string  `json:"name"`
	Value       float64 `json:"value"`
	Weight      float64 `json:"weight"`
	Description string  `json:"description"`
}

// Breakdown is the ordered list of signals plus the clamped weighted sum
type Breakdown struct {
	Signals    []Signal `json:"signals"`
	FinalScore float64  `json:"final_score"`
}

// DemandScore returns the 0-100 demand presence derived from capital and
// activity volume, used as the opportunity's demand_score
func DemandScore(in CategoryInput) float64 {
	return 100 * demandPresence(in)
}

// Score computes the gap score breakdown for one category
func Score(in CategoryInput) Breakdown {
	presence := demandPresence(in)

	signals := []Signal{
		{
			Name:        "builder_gap",
			Value:       builderGap(in.ActiveProjects),
			Weight:      weightBuilderGap,
			Description: "How few teams are actively building here; zero active projects means the niche is wide open",
		},
		{
			Name:        "market_control",
			Value:       marketControl(in.TotalTVL, in.TopProjectTVL),
			Weight:      weightMarketControl,
			Description: "How concentrated the category's capital is; incumbent-dominated niches still leave room for differentiated entrants",
		},
		{
			Name:        "dev_momentum",
			Value:       devMomentum(in.TotalProjects, in.RecentlyPushedRepos, presence),
			Weight:      weightDevMomentum,
			Description: "How stale development across the category is, softened when there is no demand to go stale against",
		},
		{
			Name:        "near_focus",
			Value:       nearFocus(in.IsStrategic, in.StrategicMultiplier),
			Weight:      weightNearFocus,
			Description: "Ecosystem strategic priority applied through the category multiplier",
		},
		{
			Name:        "untapped_demand",
			Value:       untappedDemand(in.ActiveProjects, presence, in.IsStrategic),
			Weight:      weightUntappedDemand,
			Description: "Capital and activity volume not yet matched by active-project supply",
		},
	}

	var sum float64
	for _, s := range signals {
		sum += s.Weight * s.Value
	}

	return Breakdown{
		Signals:    signals,
		FinalScore: clamp(sum),
	}
}

// builderGap is 100 at zero active projects, saturating to 0 at the ceiling
func builderGap(active int) float64 {
	if active <= 0 {
		return 100
	}
	value := 100 * (1 - float64(active)/builderCeiling)
	if value < 0 {
		return 0
	}
	return value
}

// marketControl measures TVL concentration. A category with no capital at all is
// treated as fully concentrated: the first serious entrant takes the whole market.
func marketControl(totalTVL, topProjectTVL float64) float64 {
	if totalTVL <= 0 {
		return 100
	}
	return clamp(100 * topProjectTVL / totalTVL)
}

// demandPresence is 0 when a category has neither capital nor activity and
// saturates at 1 once either reference volume is reached
func demandPresence(in CategoryInput) float64 {
	p := in.TotalTVL/demandTVLRef + float64(in.TotalTxns)/demandTxnRef
	return math.Min(p, 1)
}

// devMomentum scores staleness of development across a category's repositories.
// The demand gate halves the signal's floor for dead categories: a stale niche
// nobody demands is not the same kind of gap as a stale niche with real usage.
func devMomentum(totalProjects, recentlyPushed int, presence float64) float64 {
	staleness := 1.0
	if totalProjects > 0 {
		staleness = 1 - float64(recentlyPushed)/float64(totalProjects)
	}
	return clamp(100 * staleness * (0.5 + 0.5*presence))
}

// nearFocus is the baseline for ordinary categories and the multiplier-scaled
// baseline for strategic ones
func nearFocus(isStrategic bool, multiplier float64) float64 {
	if !isStrategic {
		return focusBaseline
	}
	if multiplier < 1 {
		multiplier = 1
	}
	return clamp(focusBaseline * multiplier)
}

// untappedDemand relates demand presence to active-project supply. Strategic
// categories carry a demand floor regardless of measured volume.
func untappedDemand(active int, presence float64, isStrategic bool) float64 {
	value := clamp(100 * presence / float64(active+1))
	if isStrategic && value < strategicDemandFloor {
		return strategicDemandFloor
	}
	return value
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
