package emotion

import "github.com/lumamaternal/care-engine/internal/checkin"

// #region zone

// Zone is the 1-5 ordinal classification of overall emotional state,
// coarser than the raw metrics.
type Zone int

const (
	Zone1 Zone = 1
	Zone2 Zone = 2
	Zone3 Zone = 3
	Zone4 Zone = 4
	Zone5 Zone = 5
)

// #endregion zone

// #region intensity

// Intensity classifies how spread out the four dimensions are.
type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// #endregion intensity

// #region flags

// Flag marks an independently thresholded condition in the daily report.
type Flag string

const (
	FlagOverload           Flag = "overload"
	FlagLowEnergy          Flag = "low_energy"
	FlagEmotionalDistance  Flag = "emotional_distance"
	FlagPhysicalDiscomfort Flag = "physical_discomfort"
)

// #endregion flags

// #region state

// State is the derived, ephemeral emotional state for one day.
type State struct {
	Zone      Zone
	Intensity Intensity
	Coherence float64 // 0-1, rounded to 2 decimals
	Dominant  checkin.DimensionName
	Flags     []Flag // nil when no flag fires
}

// HasFlag reports whether the given flag is active.
func (s State) HasFlag(f Flag) bool {
	for _, have := range s.Flags {
		if have == f {
			return true
		}
	}
	return false
}

// #endregion state
