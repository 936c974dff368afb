package practice

import (
	"sort"

	"github.com/lumamaternal/care-engine/internal/emotion"
	"github.com/lumamaternal/care-engine/internal/metrics"
)

// #region thresholds

// A metric below this value registers as a problem in its own right.
const lowMetricThreshold = 40

// Priority bands. Tiers never interleave: tier 0 always outranks tier 1,
// and so on.
const (
	priorityLowZone    = 0
	priorityFlagBase   = 1  // flags occupy 1-4 in fixed order
	priorityMetricBase = 10 // low metrics occupy 10+ in ascending value order
	priorityGrowth     = 20
)

// #endregion thresholds

// #region flag-mapping

// flagIssues maps each state flag to its issue and recommended practice
// types, in the fixed order that assigns flag priorities.
var flagIssues = []struct {
	flag  emotion.Flag
	issue Issue
	types []Type
}{
	{emotion.FlagOverload, IssueOverload, []Type{TypePause, TypeRest, TypeBreathing}},
	{emotion.FlagLowEnergy, IssueLowEnergy, []Type{TypeRest, TypeBreathing, TypeBodyScan}},
	{emotion.FlagEmotionalDistance, IssueEmotionalDistance, []Type{TypeConnection, TypeJournaling}},
	{emotion.FlagPhysicalDiscomfort, IssuePhysicalDiscomfort, []Type{TypeBodyScan, TypeMovement}},
}

// metricIssues maps each metric name to its issue and recommended types.
var metricIssues = map[string]struct {
	issue Issue
	types []Type
}{
	metrics.MetricSerenity:   {IssueLowSerenity, []Type{TypeBreathing, TypeMeditation}},
	metrics.MetricVitality:   {IssueLowVitality, []Type{TypeMovement, TypeRest}},
	metrics.MetricComfort:    {IssueLowComfort, []Type{TypeBodyScan, TypeMovement}},
	metrics.MetricConnection: {IssueLowConnection, []Type{TypeConnection, TypeJournaling}},
}

// #endregion flag-mapping

// #region detect

// DetectProblems walks the four tiers in order and returns the concatenated
// problems sorted ascending by priority. Fresh per evaluation.
func DetectProblems(st emotion.State, m metrics.Metrics) []Problem {
	var problems []Problem

	// Tier 0: the whole day is low.
	if st.Zone <= emotion.Zone2 {
		problems = append(problems, Problem{
			Issue:            IssueLowZone,
			Priority:         priorityLowZone,
			RecommendedTypes: []Type{TypeBreathing, TypePause, TypeRest},
		})
	}

	// Tier 1: active flags, fixed order.
	for i, fi := range flagIssues {
		if st.HasFlag(fi.flag) {
			problems = append(problems, Problem{
				Issue:            fi.issue,
				Priority:         priorityFlagBase + i,
				RecommendedTypes: fi.types,
			})
		}
	}

	// Tier 2: low metrics, ascending by value so the worst one leads.
	type lowMetric struct {
		name  string
		value float64
	}
	var lows []lowMetric
	values := m.Values()
	for i, name := range metrics.Names {
		if values[i] < lowMetricThreshold {
			lows = append(lows, lowMetric{name, values[i]})
		}
	}
	sort.SliceStable(lows, func(a, b int) bool { return lows[a].value < lows[b].value })
	for i, lm := range lows {
		mi := metricIssues[lm.name]
		problems = append(problems, Problem{
			Issue:            mi.issue,
			Priority:         priorityMetricBase + i,
			RecommendedTypes: mi.types,
			Value:            lm.value,
		})
	}

	// Tier 3: a good day is itself an opening.
	if st.Zone >= emotion.Zone4 {
		problems = append(problems, Problem{
			Issue:            IssueGrowth,
			Priority:         priorityGrowth,
			RecommendedTypes: []Type{TypeMeditation, TypeMovement, TypeJournaling},
		})
	}

	sort.SliceStable(problems, func(a, b int) bool {
		return problems[a].Priority < problems[b].Priority
	})
	return problems
}

// #endregion detect
