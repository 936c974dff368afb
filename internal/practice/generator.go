package practice

import (
	"fmt"

	"github.com/lumamaternal/care-engine/internal/emotion"
	"github.com/lumamaternal/care-engine/internal/metrics"
)

// #region config

// GeneratorConfig holds the knobs for prescription generation.
type GeneratorConfig struct {
	LowMetricThreshold float64 // metric below this drives the goal line
	GentleToneMinCount int     // problems at or above this count turn the tone gentle
}

// DefaultGeneratorConfig returns the production values.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		LowMetricThreshold: lowMetricThreshold,
		GentleToneMinCount: 3,
	}
}

// #endregion config

// #region generator

// Generator turns a derived state and metrics into a daily plan.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// Generate detects problems, selects 1-3 practices, and decides tone and
// goal. Always returns at least one prescription; there is no error path.
func (g *Generator) Generate(st emotion.State, m metrics.Metrics) Plan {
	problems := DetectProblems(st, m)
	prescriptions := g.selectPractices(st, problems)
	return Plan{
		Prescriptions: prescriptions,
		Tone:          g.decideTone(st, len(problems)),
		Goal:          g.decideGoal(st, m),
	}
}

// #endregion generator

// #region target-count

// targetCount decides how many practices today can hold. A hard day gets
// exactly one ask.
func targetCount(st emotion.State) int {
	if st.Zone <= emotion.Zone2 || st.HasFlag(emotion.FlagOverload) {
		return 1
	}
	if st.Zone == emotion.Zone3 {
		return 2
	}
	return 3
}

// #endregion target-count

// #region selection

// selectPractices walks problems in priority order and picks the first
// catalog practice matching affinity, zone range, and type diversity.
// At zone <=2 a minimal/gentle match is preferred over a heavier one.
func (g *Generator) selectPractices(st emotion.State, problems []Problem) []Prescription {
	target := targetCount(st)
	usedTypes := make(map[Type]bool)
	var out []Prescription

	for _, problem := range problems {
		if len(out) >= target {
			break
		}
		p, ok := matchPractice(st, problem, usedTypes)
		if !ok {
			continue
		}
		usedTypes[p.Type] = true
		out = append(out, Prescription{
			Practice:    p,
			Focus:       p.Focus,
			DurationMin: p.DurationMin,
			Intensity:   p.Intensity,
			Targets:     problem.Issue,
		})
	}

	if len(out) == 0 {
		p := fallbackPractice
		out = append(out, Prescription{
			Practice:    p,
			Focus:       p.Focus,
			DurationMin: p.DurationMin,
			Intensity:   p.Intensity,
			Targets:     IssueLowZone,
		})
	}
	return out
}

func matchPractice(st emotion.State, problem Problem, usedTypes map[Type]bool) (Practice, bool) {
	preferSoft := st.Zone <= emotion.Zone2

	// First pass honors the soft preference; second pass takes anything.
	for _, softOnly := range []bool{preferSoft, false} {
		for _, p := range Catalog {
			if usedTypes[p.Type] {
				continue
			}
			if int(st.Zone) < p.ZoneMin || int(st.Zone) > p.ZoneMax {
				continue
			}
			if !practiceMatches(p, problem) {
				continue
			}
			if softOnly && p.Intensity != IntensityMinimal && p.Intensity != IntensityGentle {
				continue
			}
			return p, true
		}
		if !preferSoft {
			break
		}
	}
	return Practice{}, false
}

// practiceMatches holds when the practice claims the issue or the problem
// recommends the practice's type.
func practiceMatches(p Practice, problem Problem) bool {
	if p.hasAffinity(problem.Issue) {
		return true
	}
	for _, t := range problem.RecommendedTypes {
		if p.Type == t {
			return true
		}
	}
	return false
}

// #endregion selection

// #region tone

// decideTone evaluates the tone rules in priority order.
func (g *Generator) decideTone(st emotion.State, problemCount int) Tone {
	switch {
	case st.Zone <= emotion.Zone2:
		return ToneCompassionate
	case problemCount >= g.config.GentleToneMinCount:
		return ToneGentle
	case st.Zone == emotion.Zone3:
		return ToneBalanced
	case st.Zone == emotion.Zone4:
		return ToneEncouraging
	default:
		return ToneCelebratory
	}
}

// #endregion tone

// #region goal

// Goal lines, one per decision branch.
const (
	goalPresence    = "Today, just being here is enough. One small pause is the whole goal."
	goalRelief      = "Today's goal is to take the pressure off. Nothing to achieve, only to release."
	goalRestoration = "Today's goal is to give your energy a little back, a few quiet minutes at a time."
	goalGrowth      = "You are in a good place. Today's goal is to build on it."
	goalDefault     = "A few mindful minutes for you and your baby. That is today's goal."
)

var goalMetricLines = map[string]string{
	metrics.MetricSerenity:   "calm",
	metrics.MetricVitality:   "energy",
	metrics.MetricComfort:    "physical ease",
	metrics.MetricConnection: "connection with your baby",
}

// decideGoal picks the goal line by the fixed decision order: presence,
// overload relief, energy restoration, lowest-metric improvement, growth,
// then the generic default.
func (g *Generator) decideGoal(st emotion.State, m metrics.Metrics) string {
	if st.Zone <= emotion.Zone2 {
		return goalPresence
	}
	if st.HasFlag(emotion.FlagOverload) {
		return goalRelief
	}
	if st.HasFlag(emotion.FlagLowEnergy) {
		return goalRestoration
	}
	if name, value := m.Lowest(); value < g.config.LowMetricThreshold {
		return fmt.Sprintf("Today's goal is one small step toward more %s.", goalMetricLines[name])
	}
	if st.Zone >= emotion.Zone4 {
		return goalGrowth
	}
	return goalDefault
}

// #endregion goal
