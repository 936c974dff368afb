package metrics

import (
	"github.com/lumamaternal/care-engine/internal/checkin"
	"github.com/lumamaternal/care-engine/internal/emotion"
)

// #region scale

// scaleToPercent maps the 1-5 ordinal scale onto the 0-100 range.
// Deliberately non-linear: the top of the scale is compressed so a "4" day
// already reads as clearly good.
var scaleToPercent = map[int]float64{
	1: 10,
	2: 30,
	3: 50,
	4: 75,
	5: 95,
}

func scaled(v int) float64 {
	if p, ok := scaleToPercent[v]; ok {
		return p
	}
	// Out-of-range input is an unchecked precondition; fold to the nearest end.
	if v < 1 {
		return scaleToPercent[1]
	}
	return scaleToPercent[5]
}

// #endregion scale

// #region config

// Config holds the adjustment knobs for metric computation.
type Config struct {
	OverloadPenalty float64 // subtracted from all four metrics
	FlagPenalty     float64 // subtracted from one metric per specific flag
	BaselineBoost   float64 // added to all four when onboarding baseline was low
	LowBaselineMax  int     // baseline at or below this counts as low
}

// DefaultConfig returns the production adjustment values.
func DefaultConfig() Config {
	return Config{
		OverloadPenalty: 12,
		FlagPenalty:     8,
		BaselineBoost:   5,
		LowBaselineMax:  2,
	}
}

// #endregion config

// #region metrics

// Metrics are the four pedagogical wellbeing scores, each 0-100.
// They are never surfaced to the user as raw numbers.
type Metrics struct {
	Serenity   float64
	Vitality   float64
	Comfort    float64
	Connection float64
}

// Named metric identifiers, in canonical order.
const (
	MetricSerenity   = "serenity"
	MetricVitality   = "vitality"
	MetricComfort    = "comfort"
	MetricConnection = "connection"
)

// Names lists the metric identifiers in canonical order.
var Names = [4]string{MetricSerenity, MetricVitality, MetricComfort, MetricConnection}

// Values returns the scores in canonical order.
func (m Metrics) Values() [4]float64 {
	return [4]float64{m.Serenity, m.Vitality, m.Comfort, m.Connection}
}

// Lowest returns the name and value of the lowest metric, resolving ties
// in canonical order.
func (m Metrics) Lowest() (string, float64) {
	values := m.Values()
	name := Names[0]
	low := values[0]
	for i := 1; i < len(values); i++ {
		if values[i] < low {
			name = Names[i]
			low = values[i]
		}
	}
	return name, low
}

// #endregion metrics

// #region compute

// Compute blends scaled dimensions (plus coherence, for serenity) into the
// four metrics, applies flag penalties and the low-baseline boost, then
// clamps everything into [0, 100]. Deterministic; no error path.
// baseline is the recorded onboarding self-rating, 0 when none was recorded.
func Compute(st emotion.State, dims checkin.Dimensions, baseline int, cfg Config) Metrics {
	coherence := st.Coherence * 100

	m := Metrics{
		Serenity:   0.45*scaled(dims.Mood) + 0.25*scaled(dims.Bond) + 0.30*coherence,
		Vitality:   0.55*scaled(dims.Energy) + 0.25*scaled(dims.Mood) + 0.20*scaled(dims.Body),
		Comfort:    0.60*scaled(dims.Body) + 0.20*scaled(dims.Energy) + 0.20*scaled(dims.Mood),
		Connection: 0.55*scaled(dims.Bond) + 0.25*scaled(dims.Mood) + 0.20*scaled(dims.Energy),
	}

	if st.HasFlag(emotion.FlagOverload) {
		m.Serenity -= cfg.OverloadPenalty
		m.Vitality -= cfg.OverloadPenalty
		m.Comfort -= cfg.OverloadPenalty
		m.Connection -= cfg.OverloadPenalty
	}
	if st.HasFlag(emotion.FlagLowEnergy) {
		m.Vitality -= cfg.FlagPenalty
	}
	if st.HasFlag(emotion.FlagPhysicalDiscomfort) {
		m.Comfort -= cfg.FlagPenalty
	}
	if st.HasFlag(emotion.FlagEmotionalDistance) {
		m.Connection -= cfg.FlagPenalty
	}

	// Relative-progress recognition: a low onboarding baseline lifts every
	// score a little, so early improvement registers.
	if baseline > 0 && baseline <= cfg.LowBaselineMax {
		m.Serenity += cfg.BaselineBoost
		m.Vitality += cfg.BaselineBoost
		m.Comfort += cfg.BaselineBoost
		m.Connection += cfg.BaselineBoost
	}

	m.Serenity = clamp(m.Serenity)
	m.Vitality = clamp(m.Vitality)
	m.Comfort = clamp(m.Comfort)
	m.Connection = clamp(m.Connection)
	return m
}

// #endregion compute

// #region helpers

// clamp restricts v to [0, 100].
func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// #endregion helpers
