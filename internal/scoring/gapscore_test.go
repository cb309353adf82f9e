package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidlabs/ecosystem-indexer/internal/scoring"
)

// TestScore_EmptyStrategicCategory pins the exact score of the canonical
// wide-open strategic niche: no projects, no capital, no activity, 2.0x
// multiplier. Any change to weights or signal math breaks this value.
func TestScore_EmptyStrategicCategory(t *testing.T) {
	in := scoring.CategoryInput{
		TotalProjects:       0,
		ActiveProjects:      0,
		TotalTVL:            0,
		TopProjectTVL:       0,
		TotalTxns:           0,
		RecentlyPushedRepos: 0,
		IsStrategic:         true,
		StrategicMultiplier: 2.0,
	}

	breakdown := scoring.Score(in)

	assert.Equal(t, 88.0, breakdown.FinalScore)

	require.Len(t, breakdown.Signals, 5)
	values := map[string]float64{}
	for _, s := range breakdown.Signals {
		values[s.Name] = s.Value
	}
	assert.Equal(t, 100.0, values["builder_gap"])
	assert.Equal(t, 100.0, values["market_control"])
	assert.Equal(t, 50.0, values["dev_momentum"])
	assert.Equal(t, 100.0, values["near_focus"])
	assert.Equal(t, 70.0, values["untapped_demand"])
}

// TestScore_EmptyOrdinaryCategory covers the same empty niche without the
// strategic flag: near_focus drops to the baseline and the demand floor no
// longer applies.
func TestScore_EmptyOrdinaryCategory(t *testing.T) {
	breakdown := scoring.Score(scoring.CategoryInput{})

	// 30 + 20 + 7.5 + 10 + 0
	assert.Equal(t, 67.5, breakdown.FinalScore)
}

func TestScore_CrowdedCategoryScoresLow(t *testing.T) {
	in := scoring.CategoryInput{
		TotalProjects:       40,
		ActiveProjects:      25,
		TotalTVL:            50_000_000,
		TopProjectTVL:       5_000_000,
		TotalTxns:           2_000_000,
		RecentlyPushedRepos: 35,
		IsStrategic:         false,
		StrategicMultiplier: 1.0,
	}

	breakdown := scoring.Score(in)

	// builder_gap saturates to 0 past ten active projects
	assert.Equal(t, 0.0, breakdown.Signals[0].Value)
	assert.Less(t, breakdown.FinalScore, 25.0)
	assert.GreaterOrEqual(t, breakdown.FinalScore, 0.0)
}

func TestScore_WeightsSumToOne(t *testing.T) {
	breakdown := scoring.Score(scoring.CategoryInput{})

	var sum float64
	for _, s := range breakdown.Signals {
		sum += s.Weight
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestScore_Deterministic(t *testing.T) {
	in := scoring.CategoryInput{
		TotalProjects:       7,
		ActiveProjects:      3,
		TotalTVL:            450_000,
		TopProjectTVL:       300_000,
		TotalTxns:           1_200,
		RecentlyPushedRepos: 2,
		IsStrategic:         true,
		StrategicMultiplier: 1.5,
	}

	first := scoring.Score(in)
	second := scoring.Score(in)

	assert.Equal(t, first, second)
}

// TestScore_MoreBuildersNeverRaiseTheScore checks weak monotonicity of the
// score in active-project count, with all other aggregates held fixed.
func TestScore_MoreBuildersNeverRaiseTheScore(t *testing.T) {
	base := scoring.CategoryInput{
		TotalProjects:       20,
		TotalTVL:            2_000_000,
		TopProjectTVL:       800_000,
		TotalTxns:           40_000,
		RecentlyPushedRepos: 5,
	}

	previous := 101.0
	for _, active := range []int{0, 1, 3, 5, 10, 15, 20} {
		in := base
		in.ActiveProjects = active
		score := scoring.Score(in).FinalScore
		assert.LessOrEqual(t, score, previous, "active=%d", active)
		previous = score
	}
}

func TestScore_SignalsStayInRange(t *testing.T) {
	inputs := []scoring.CategoryInput{
		{},
		{TotalProjects: 1, ActiveProjects: 50},
		{TotalTVL: 1e12, TopProjectTVL: 1e12, TotalTxns: 1e9},
		{TotalProjects: 5, RecentlyPushedRepos: 9, IsStrategic: true, StrategicMultiplier: 10},
		{TotalTVL: -100, TopProjectTVL: -50, TotalTxns: -1},
	}

	for _, in := range inputs {
		breakdown := scoring.Score(in)
		assert.GreaterOrEqual(t, breakdown.FinalScore, 0.0)
		assert.LessOrEqual(t, breakdown.FinalScore, 100.0)
		for _, s := range breakdown.Signals {
			assert.GreaterOrEqual(t, s.Value, 0.0, "signal %s", s.Name)
			assert.LessOrEqual(t, s.Value, 100.0, "signal %s", s.Name)
		}
	}
}

// TestScore_MarketControl_NoCapitalIsFullyConcentrated pins the empty-market
// convention: zero TVL scores as total concentration, not as zero.
func TestScore_MarketControl_NoCapitalIsFullyConcentrated(t *testing.T) {
	empty := scoring.Score(scoring.CategoryInput{TotalTVL: 0, TopProjectTVL: 0})
	split := scoring.Score(scoring.CategoryInput{TotalTVL: 1_000_000, TopProjectTVL: 250_000})

	assert.Equal(t, 100.0, empty.Signals[1].Value)
	assert.Equal(t, 25.0, split.Signals[1].Value)
}

func TestScore_StrategicDemandFloor(t *testing.T) {
	in := scoring.CategoryInput{
		ActiveProjects:      4,
		IsStrategic:         true,
		StrategicMultiplier: 1.5,
	}

	breakdown := scoring.Score(in)

	// No measured demand, but the strategic floor holds the signal up
	assert.Equal(t, 70.0, breakdown.Signals[4].Value)

	in.IsStrategic = false
	breakdown = scoring.Score(in)
	assert.Equal(t, 0.0, breakdown.Signals[4].Value)
}

func TestDemandScore(t *testing.T) {
	assert.Equal(t, 0.0, scoring.DemandScore(scoring.CategoryInput{}))

	// Either reference volume alone saturates demand
	assert.Equal(t, 100.0, scoring.DemandScore(scoring.CategoryInput{TotalTVL: 1_000_000}))
	assert.Equal(t, 100.0, scoring.DemandScore(scoring.CategoryInput{TotalTxns: 10_000}))
	assert.Equal(t, 100.0, scoring.DemandScore(scoring.CategoryInput{TotalTVL: 5_000_000, TotalTxns: 1_000_000}))

	assert.InDelta(t, 50.0, scoring.DemandScore(scoring.CategoryInput{TotalTVL: 500_000}), 1e-9)
	assert.InDelta(t, 30.0, scoring.DemandScore(scoring.CategoryInput{TotalTVL: 100_000, TotalTxns: 2_000}), 1e-9)
}
