package engine

// #region imports
import (
	"time"

	"github.com/lumamaternal/care-engine/internal/celebration"
	"github.com/lumamaternal/care-engine/internal/checkin"
	"github.com/lumamaternal/care-engine/internal/composer"
	"github.com/lumamaternal/care-engine/internal/emotion"
	"github.com/lumamaternal/care-engine/internal/metrics"
	"github.com/lumamaternal/care-engine/internal/practice"
	"github.com/lumamaternal/care-engine/internal/upsell"
)

// #endregion

// #region config

// Config aggregates every sub-component's configuration.
type Config struct {
	Metrics     metrics.Config
	Generator   practice.GeneratorConfig
	Composer    composer.Config
	Upsell      upsell.Config
	Celebration celebration.Config
}

// DefaultConfig returns the production settings for the whole pipeline.
func DefaultConfig() Config {
	return Config{
		Metrics:     metrics.DefaultConfig(),
		Generator:   practice.DefaultGeneratorConfig(),
		Composer:    composer.DefaultConfig(),
		Upsell:      upsell.DefaultConfig(),
		Celebration: celebration.DefaultConfig(),
	}
}

// #endregion config

// #region engine

// Engine is the top-level coordinator: it wires the check-in pipeline
// (derive → metrics → prescribe) and the visit pipeline (compose, then
// both eligibility gates). Stateless; all history arrives in the inputs.
type Engine struct {
	metricsCfg  metrics.Config
	generator   *practice.Generator
	composer    *composer.Composer
	upsell      *upsell.Gate
	celebration *celebration.Gate
}

// NewEngine creates a fully wired engine.
func NewEngine(cfg Config) *Engine {
	return &Engine{
		metricsCfg:  cfg.Metrics,
		generator:   practice.NewGenerator(cfg.Generator),
		composer:    composer.NewComposer(cfg.Composer),
		upsell:      upsell.NewGate(cfg.Upsell),
		celebration: celebration.NewGate(cfg.Celebration),
	}
}

// #endregion engine

// #region checkin-pipeline

// CheckinInput is one submitted daily check-in.
type CheckinInput struct {
	Dimensions checkin.Dimensions
	Week       int
	Moment     checkin.Moment
	Baseline   int // onboarding self-rating, 0 when none was recorded
}

// CheckinResult carries everything derived from a single check-in.
type CheckinResult struct {
	State   emotion.State
	Metrics metrics.Metrics
	Plan    practice.Plan
}

// EvaluateCheckin runs the care pipeline: state derivation, metric
// computation, and prescription generation. Deterministic; never errors.
func (e *Engine) EvaluateCheckin(in CheckinInput) CheckinResult {
	state := emotion.Derive(in.Dimensions, in.Week, in.Moment)
	m := metrics.Compute(state, in.Dimensions, in.Baseline, e.metricsCfg)
	return CheckinResult{
		State:   state,
		Metrics: m,
		Plan:    e.generator.Generate(state, m),
	}
}

// #endregion checkin-pipeline

// #region visit-pipeline

// VisitInput is the snapshot for one app visit. Event logs and seen lists
// are caller-owned; the engine only reads them.
type VisitInput struct {
	Now      time.Time
	UserID   string
	UserName string

	Zone       emotion.Zone
	Week       int
	Postpartum bool
	Moment     checkin.Moment

	PresenceDays   int
	FirstCheckin   bool
	SeenMilestones []string
	Seen           composer.SeenLists

	IsPremium              bool
	RiskLevel              checkin.RiskLevel
	Pillar                 upsell.Pillar
	PracticeCompletedToday bool
	CompletedJourneys      int
	FirstVisitOfDay        bool
	HasCheckinToday        bool

	MicromomentEvents []checkin.MicromomentEvent
	MilestoneEvents   []checkin.MilestoneEvent
}

// VisitResult is everything a visit may surface.
type VisitResult struct {
	Message      composer.Result
	Upsell       upsell.Decision
	Celebrations []celebration.Milestone
}

// EvaluateVisit composes the day's message and, once today's check-in
// exists, runs both eligibility gates. Without a check-in the message
// still composes but the gates stay closed.
func (e *Engine) EvaluateVisit(in VisitInput) VisitResult {
	result := VisitResult{
		Message: e.composer.Compose(composer.Input{
			UserID:         in.UserID,
			UserName:       in.UserName,
			Zone:           in.Zone,
			Week:           in.Week,
			Postpartum:     in.Postpartum,
			Moment:         in.Moment,
			PresenceDays:   in.PresenceDays,
			Date:           in.Now,
			FirstCheckin:   in.FirstCheckin,
			SeenMilestones: in.SeenMilestones,
			Seen:           in.Seen,
		}),
	}

	if !in.HasCheckinToday {
		result.Upsell = upsell.Decision{Reason: upsell.ReasonNoCheckin}
		return result
	}

	result.Upsell = e.upsell.Evaluate(upsell.Context{
		Now:                    in.Now,
		IsPremium:              in.IsPremium,
		PresenceDays:           in.PresenceDays,
		RiskLevel:              in.RiskLevel,
		Zone:                   in.Zone,
		Week:                   in.Week,
		Postpartum:             in.Postpartum,
		Pillar:                 in.Pillar,
		PracticeCompletedToday: in.PracticeCompletedToday,
		CompletedJourneys:      in.CompletedJourneys,
		FirstVisitOfDay:        in.FirstVisitOfDay,
		HasCheckinToday:        in.HasCheckinToday,
		Events:                 in.MicromomentEvents,
	})

	result.Celebrations = e.celebration.Evaluate(celebration.Context{
		Now:          in.Now,
		PresenceDays: in.PresenceDays,
		Week:         in.Week,
		Postpartum:   in.Postpartum,
		IsPremium:    in.IsPremium,
		Events:       in.MilestoneEvents,
	})

	return result
}

// #endregion visit-pipeline
