package emotion

import (
	"testing"

	"github.com/lumamaternal/care-engine/internal/checkin"
)

func dims(mood, energy, body, bond int) checkin.Dimensions {
	return checkin.Dimensions{Mood: mood, Energy: energy, Body: body, Bond: bond}
}

func TestDeriveZone(t *testing.T) {
	tests := []struct {
		name string
		in   checkin.Dimensions
		want Zone
	}{
		{"all-ones", dims(1, 1, 1, 1), Zone1},
		{"low-mixed", dims(1, 1, 2, 2), Zone1},
		{"low-two", dims(2, 2, 2, 2), Zone2},
		{"mid", dims(3, 3, 3, 3), Zone3},
		{"high-four", dims(4, 4, 4, 4), Zone4},
		{"all-fives", dims(5, 5, 5, 5), Zone5},
		{"mood-carries", dims(5, 4, 4, 4), Zone5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(tt.in, 20, checkin.MomentMorning)
			if got.Zone != tt.want {
				t.Errorf("zone: got %d, want %d", got.Zone, tt.want)
			}
		})
	}
}

func TestDeriveZoneMonotonicAndInRange(t *testing.T) {
	// Walk every valid tuple; zone must stay in 1-5 and never decrease as
	// the weighted sum grows.
	type point struct {
		weighted float64
		zone     Zone
	}
	var points []point
	for mood := 1; mood <= 5; mood++ {
		for energy := 1; energy <= 5; energy++ {
			for body := 1; body <= 5; body++ {
				for bond := 1; bond <= 5; bond++ {
					d := dims(mood, energy, body, bond)
					st := Derive(d, 0, checkin.MomentMorning)
					if st.Zone < Zone1 || st.Zone > Zone5 {
						t.Fatalf("zone %d out of range for %+v", st.Zone, d)
					}
					w := 0.35*float64(mood) + 0.25*float64(energy) +
						0.20*float64(body) + 0.20*float64(bond)
					points = append(points, point{w, st.Zone})
				}
			}
		}
	}
	for _, a := range points {
		for _, b := range points {
			if a.weighted < b.weighted && a.zone > b.zone {
				t.Fatalf("zone not monotonic: sum %.2f→zone %d but sum %.2f→zone %d",
					a.weighted, a.zone, b.weighted, b.zone)
			}
		}
	}
}

func TestDeriveCoherence(t *testing.T) {
	tests := []struct {
		name string
		in   checkin.Dimensions
		want float64
	}{
		{"identical-dims", dims(3, 3, 3, 3), 1.0},
		{"max-spread", dims(1, 1, 5, 5), 0.0},
		{"slight-spread", dims(3, 3, 3, 4), 0.95},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(tt.in, 0, checkin.MomentEvening)
			if got.Coherence != tt.want {
				t.Errorf("coherence: got %.2f, want %.2f", got.Coherence, tt.want)
			}
		})
	}
}

func TestDeriveCoherenceRangeAndIdentity(t *testing.T) {
	for mood := 1; mood <= 5; mood++ {
		for energy := 1; energy <= 5; energy++ {
			for body := 1; body <= 5; body++ {
				for bond := 1; bond <= 5; bond++ {
					d := dims(mood, energy, body, bond)
					st := Derive(d, 0, checkin.MomentMorning)
					if st.Coherence < 0 || st.Coherence > 1 {
						t.Fatalf("coherence %.2f out of range for %+v", st.Coherence, d)
					}
					identical := mood == energy && energy == body && body == bond
					if identical && st.Coherence != 1.0 {
						t.Fatalf("identical dims %+v should give coherence 1, got %.2f", d, st.Coherence)
					}
					if !identical && st.Coherence == 1.0 {
						t.Fatalf("unequal dims %+v should not give coherence 1", d)
					}
				}
			}
		}
	}
}

func TestDeriveIntensity(t *testing.T) {
	tests := []struct {
		name string
		in   checkin.Dimensions
		want Intensity
	}{
		{"flat", dims(4, 4, 4, 4), IntensityLow},
		{"one-off", dims(3, 3, 3, 4), IntensityLow},
		{"moderate", dims(2, 3, 4, 3), IntensityMedium},
		{"split", dims(1, 1, 5, 5), IntensityHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(tt.in, 0, checkin.MomentNight)
			if got.Intensity != tt.want {
				t.Errorf("intensity: got %s, want %s", got.Intensity, tt.want)
			}
		})
	}
}

func TestDeriveDominantDimension(t *testing.T) {
	tests := []struct {
		name string
		in   checkin.Dimensions
		want checkin.DimensionName
	}{
		{"energy-dips", dims(4, 1, 4, 4), checkin.DimEnergy},
		{"bond-spikes", dims(3, 3, 3, 5), checkin.DimBond},
		{"tie-prefers-mood", dims(3, 3, 3, 3), checkin.DimMood},
		{"symmetric-tie", dims(1, 5, 1, 5), checkin.DimMood},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(tt.in, 0, checkin.MomentMorning)
			if got.Dominant != tt.want {
				t.Errorf("dominant: got %s, want %s", got.Dominant, tt.want)
			}
		})
	}
}

func TestDeriveFlags(t *testing.T) {
	tests := []struct {
		name    string
		in      checkin.Dimensions
		want    []Flag
		notWant []Flag
	}{
		{
			"clean-day",
			dims(4, 4, 4, 4),
			nil,
			[]Flag{FlagOverload, FlagLowEnergy, FlagEmotionalDistance, FlagPhysicalDiscomfort},
		},
		{
			"overload-and-low-energy",
			dims(1, 1, 2, 2),
			[]Flag{FlagOverload, FlagLowEnergy},
			nil,
		},
		{
			"only-low-energy",
			dims(4, 2, 4, 4),
			[]Flag{FlagLowEnergy},
			[]Flag{FlagOverload, FlagEmotionalDistance, FlagPhysicalDiscomfort},
		},
		{
			"only-distance",
			dims(4, 3, 4, 1),
			[]Flag{FlagEmotionalDistance},
			[]Flag{FlagOverload, FlagLowEnergy, FlagPhysicalDiscomfort},
		},
		{
			"only-discomfort",
			dims(4, 3, 2, 4),
			[]Flag{FlagPhysicalDiscomfort},
			[]Flag{FlagOverload, FlagLowEnergy, FlagEmotionalDistance},
		},
		{
			"three-low-triggers-overload",
			dims(2, 2, 2, 5),
			[]Flag{FlagOverload, FlagLowEnergy, FlagPhysicalDiscomfort},
			[]Flag{FlagEmotionalDistance},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(tt.in, 0, checkin.MomentMorning)
			for _, f := range tt.want {
				if !got.HasFlag(f) {
					t.Errorf("expected flag %s, flags=%v", f, got.Flags)
				}
			}
			for _, f := range tt.notWant {
				if got.HasFlag(f) {
					t.Errorf("did not expect flag %s, flags=%v", f, got.Flags)
				}
			}
		})
	}
}

func TestDeriveFlagsOmittedWhenEmpty(t *testing.T) {
	got := Derive(dims(5, 5, 5, 5), 12, checkin.MomentAfternoon)
	if got.Flags != nil {
		t.Fatalf("expected nil flags, got %v", got.Flags)
	}
}
