package emotion

import (
	"math"

	"github.com/lumamaternal/care-engine/internal/checkin"
)

// #region weights

// Dimension weights for the zone computation. Mood leads; the other three
// share the remainder.
const (
	weightMood   = 0.35
	weightEnergy = 0.25
	weightBody   = 0.20
	weightBond   = 0.20
)

// zoneCutPoints are the upper bounds (exclusive) of the weighted sum for
// zones 1-4; anything at or above the last cut is zone 5.
var zoneCutPoints = [4]float64{1.8, 2.6, 3.4, 4.2}

// Intensity cut points over the population standard deviation.
const (
	intensityLowMax    = 0.5
	intensityMediumMax = 1.1
)

// Dimension value at or below which a low-dimension flag fires.
const lowDimensionMax = 2

// Minimum count of low dimensions for the overload flag.
const overloadMinLow = 3

// #endregion weights

// #region derive

// Derive computes the qualitative emotional state from one day's dimensions.
// week and moment are accepted for API stability but do not participate in
// the formula yet. Always returns a complete state; there is no error path.
func Derive(dims checkin.Dimensions, week int, moment checkin.Moment) State {
	_ = week
	_ = moment

	weighted := weightMood*float64(dims.Mood) +
		weightEnergy*float64(dims.Energy) +
		weightBody*float64(dims.Body) +
		weightBond*float64(dims.Bond)

	mean, variance := meanVariance(dims)

	return State{
		Zone:      classifyZone(weighted),
		Intensity: classifyIntensity(math.Sqrt(variance)),
		Coherence: coherenceFrom(variance),
		Dominant:  dominantDimension(dims, mean),
		Flags:     detectFlags(dims),
	}
}

// #endregion derive

// #region zone

func classifyZone(weighted float64) Zone {
	for i, cut := range zoneCutPoints {
		if weighted < cut {
			return Zone(i + 1)
		}
	}
	return Zone5
}

// #endregion zone

// #region intensity

func classifyIntensity(stddev float64) Intensity {
	switch {
	case stddev < intensityLowMax:
		return IntensityLow
	case stddev < intensityMediumMax:
		return IntensityMedium
	default:
		return IntensityHigh
	}
}

// #endregion intensity

// #region coherence

// coherenceFrom maps dimension variance to [0, 1]. Variance 4 is the maximum
// reachable on a 1-5 scale, so the ratio saturates exactly at full spread.
func coherenceFrom(variance float64) float64 {
	c := 1.0 - math.Min(variance/4.0, 1.0)
	return math.Round(c*100) / 100
}

// #endregion coherence

// #region dominant

// dominantDimension picks the dimension furthest from the mean, resolving
// ties in canonical order.
func dominantDimension(dims checkin.Dimensions, mean float64) checkin.DimensionName {
	values := dims.Values()
	best := checkin.DimensionOrder[0]
	bestDev := -1.0
	for i, name := range checkin.DimensionOrder {
		dev := math.Abs(float64(values[i]) - mean)
		if dev > bestDev {
			best = name
			bestDev = dev
		}
	}
	return best
}

// #endregion dominant

// #region flags

func detectFlags(dims checkin.Dimensions) []Flag {
	var flags []Flag

	lowCount := 0
	for _, v := range dims.Values() {
		if v <= lowDimensionMax {
			lowCount++
		}
	}
	if lowCount >= overloadMinLow {
		flags = append(flags, FlagOverload)
	}
	if dims.Energy <= lowDimensionMax {
		flags = append(flags, FlagLowEnergy)
	}
	if dims.Bond <= lowDimensionMax {
		flags = append(flags, FlagEmotionalDistance)
	}
	if dims.Body <= lowDimensionMax {
		flags = append(flags, FlagPhysicalDiscomfort)
	}
	return flags
}

// #endregion flags

// #region stats

func meanVariance(dims checkin.Dimensions) (mean, variance float64) {
	values := dims.Values()
	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	mean = sum / 4.0
	for _, v := range values {
		d := float64(v) - mean
		variance += d * d
	}
	variance /= 4.0
	return mean, variance
}

// #endregion stats
