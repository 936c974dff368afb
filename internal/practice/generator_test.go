package practice

import (
	"strings"
	"testing"

	"github.com/lumamaternal/care-engine/internal/emotion"
	"github.com/lumamaternal/care-engine/internal/metrics"
)

func TestGenerateHardDay(t *testing.T) {
	// The documented worked example: {1,1,2,2} → zone 1, one compassionate ask.
	st, m := evaluate(1, 1, 2, 2)
	plan := NewGenerator(DefaultGeneratorConfig()).Generate(st, m)

	if len(plan.Prescriptions) != 1 {
		t.Fatalf("hard day must prescribe exactly 1, got %d", len(plan.Prescriptions))
	}
	if plan.Tone != ToneCompassionate {
		t.Errorf("tone: got %s, want compassionate", plan.Tone)
	}
	if plan.Goal != goalPresence {
		t.Errorf("goal: got %q, want presence line", plan.Goal)
	}
	p := plan.Prescriptions[0]
	if p.Intensity != IntensityMinimal && p.Intensity != IntensityGentle {
		t.Errorf("hard day should get a soft practice, got %s (%s)", p.Practice.ID, p.Intensity)
	}
}

func TestGenerateCountBounds(t *testing.T) {
	g := NewGenerator(DefaultGeneratorConfig())
	for mood := 1; mood <= 5; mood++ {
		for energy := 1; energy <= 5; energy++ {
			for body := 1; body <= 5; body++ {
				for bond := 1; bond <= 5; bond++ {
					st, m := evaluate(mood, energy, body, bond)
					plan := g.Generate(st, m)
					n := len(plan.Prescriptions)
					if n < 1 {
						t.Fatalf("empty plan for %d%d%d%d", mood, energy, body, bond)
					}
					switch {
					case st.Zone <= emotion.Zone2:
						if n != 1 {
							t.Fatalf("zone %d must prescribe exactly 1, got %d", st.Zone, n)
						}
					case st.Zone == emotion.Zone3:
						if n > 2 {
							t.Fatalf("zone 3 must prescribe at most 2, got %d", n)
						}
					default:
						if n > 3 {
							t.Fatalf("zone %d must prescribe at most 3, got %d", st.Zone, n)
						}
					}

					seen := make(map[Type]bool)
					for _, p := range plan.Prescriptions {
						if seen[p.Practice.Type] {
							t.Fatalf("duplicate practice type %s in one plan", p.Practice.Type)
						}
						seen[p.Practice.Type] = true
						if p.DurationMin < 1 || p.DurationMin > 5 {
							t.Fatalf("duration %d out of 1-5 for %s", p.DurationMin, p.Practice.ID)
						}
						if int(st.Zone) < p.Practice.ZoneMin || int(st.Zone) > p.Practice.ZoneMax {
							t.Fatalf("practice %s outside its zone range for zone %d", p.Practice.ID, st.Zone)
						}
					}
				}
			}
		}
	}
}

func TestGenerateFallbackPause(t *testing.T) {
	// Neutral day: no problems at all, so the generator falls back to the
	// minimal pause.
	st, m := evaluate(3, 3, 3, 3)
	plan := NewGenerator(DefaultGeneratorConfig()).Generate(st, m)

	if len(plan.Prescriptions) != 1 {
		t.Fatalf("expected single fallback prescription, got %d", len(plan.Prescriptions))
	}
	if plan.Prescriptions[0].Practice.Type != TypePause {
		t.Errorf("fallback should be a pause, got %s", plan.Prescriptions[0].Practice.ID)
	}
	if plan.Tone != ToneBalanced {
		t.Errorf("tone: got %s, want balanced", plan.Tone)
	}
	if plan.Goal != goalDefault {
		t.Errorf("goal: got %q, want default line", plan.Goal)
	}
}

func TestGenerateTones(t *testing.T) {
	tests := []struct {
		name string
		in   [4]int
		want Tone
	}{
		{"zone1-compassionate", [4]int{1, 1, 1, 1}, ToneCompassionate},
		{"zone2-compassionate", [4]int{2, 2, 2, 2}, ToneCompassionate},
		{"zone3-balanced", [4]int{3, 3, 3, 3}, ToneBalanced},
		{"zone4-encouraging", [4]int{4, 4, 4, 4}, ToneEncouraging},
		{"zone5-celebratory", [4]int{5, 5, 5, 5}, ToneCelebratory},
	}
	g := NewGenerator(DefaultGeneratorConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, m := evaluate(tt.in[0], tt.in[1], tt.in[2], tt.in[3])
			plan := g.Generate(st, m)
			if plan.Tone != tt.want {
				t.Errorf("tone: got %s, want %s", plan.Tone, tt.want)
			}
		})
	}
}

func TestGenerateGentleToneOnManyProblems(t *testing.T) {
	// Zone 4 day dragged by several low metrics: tone turns gentle before
	// the zone rules apply.
	st, _ := evaluate(4, 4, 4, 4)
	m := metrics.Metrics{Serenity: 30, Vitality: 35, Comfort: 38, Connection: 80}
	plan := NewGenerator(DefaultGeneratorConfig()).Generate(st, m)
	// Three low metrics + growth = 4 problems.
	if plan.Tone != ToneGentle {
		t.Errorf("tone: got %s, want gentle", plan.Tone)
	}
}

func TestGenerateGoalOrder(t *testing.T) {
	g := NewGenerator(DefaultGeneratorConfig())

	// Overload relief outranks energy restoration at zone 3.
	stOverload := emotion.State{Zone: emotion.Zone3, Flags: []emotion.Flag{emotion.FlagOverload, emotion.FlagLowEnergy}}
	ok := metrics.Metrics{Serenity: 70, Vitality: 70, Comfort: 70, Connection: 70}
	if goal := g.Generate(stOverload, ok).Goal; goal != goalRelief {
		t.Errorf("overload goal: got %q", goal)
	}

	// Low energy alone picks restoration.
	stTired := emotion.State{Zone: emotion.Zone3, Flags: []emotion.Flag{emotion.FlagLowEnergy}}
	if goal := g.Generate(stTired, ok).Goal; goal != goalRestoration {
		t.Errorf("restoration goal: got %q", goal)
	}

	// A low metric with no flags names the metric.
	stPlain := emotion.State{Zone: emotion.Zone3}
	low := metrics.Metrics{Serenity: 70, Vitality: 70, Comfort: 70, Connection: 25}
	goal := g.Generate(stPlain, low).Goal
	if !strings.Contains(goal, "connection with your baby") {
		t.Errorf("low-metric goal should name connection: got %q", goal)
	}

	// Zone 4 with nothing wrong gets the growth line.
	stGood := emotion.State{Zone: emotion.Zone4}
	if goal := g.Generate(stGood, ok).Goal; goal != goalGrowth {
		t.Errorf("growth goal: got %q", goal)
	}
}
