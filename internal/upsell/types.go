package upsell

import (
	"time"

	"github.com/lumamaternal/care-engine/internal/checkin"
	"github.com/lumamaternal/care-engine/internal/emotion"
)

// #region reason

// Reason is the symbolic outcome of a gate evaluation. Block reasons are
// reported in the strict order they are checked.
type Reason string

const (
	ReasonEligible       Reason = "eligible"
	ReasonPremiumUser    Reason = "premium_user"
	ReasonGracePeriod    Reason = "grace_period"
	ReasonRiskLevel      Reason = "risk_level"
	ReasonDailyCap       Reason = "daily_cap_reached"
	ReasonWeeklyCap      Reason = "weekly_cap_reached"
	ReasonCooldown       Reason = "cooldown_active"
	ReasonFirstVisit     Reason = "first_visit"
	ReasonNoCheckin      Reason = "no_checkin_today"
	ReasonNoEligibleType Reason = "no_eligible_type"
)

// #endregion reason

// #region suggestion-type

// SuggestionType identifies one kind of transactional suggestion.
type SuggestionType string

const (
	TypeCalmJourney  SuggestionType = "calm_journey"
	TypeSleepSeries  SuggestionType = "sleep_series"
	TypeBondProgram  SuggestionType = "bond_program"
	TypePremiumTrial SuggestionType = "premium_trial"
)

// #endregion suggestion-type

// #region pillar

// Pillar names the content theme the user is currently browsing.
type Pillar string

const (
	PillarCalm Pillar = "calm"
	PillarRest Pillar = "rest"
	PillarBond Pillar = "bond"
	PillarBody Pillar = "body"
)

// #endregion pillar

// #region context

// Context is the live snapshot the gate evaluates. Events is a recent
// window of the caller-owned micromoment log, in insertion order; it is
// the gate's only source of temporal truth.
type Context struct {
	Now time.Time

	IsPremium    bool
	PresenceDays int
	RiskLevel    checkin.RiskLevel

	Zone       emotion.Zone
	Week       int
	Postpartum bool
	Pillar     Pillar

	PracticeCompletedToday bool
	CompletedJourneys      int

	FirstVisitOfDay bool
	HasCheckinToday bool

	Events []checkin.MicromomentEvent
}

// #endregion context

// #region decision

// Decision is the gate output: at most one suggestion, or an explicit
// negative carrying the first matching block reason.
type Decision struct {
	Eligible bool
	Type     SuggestionType
	Reason   Reason
}

// #endregion decision

// #region config

// Config holds the temporal thresholds for the gate.
type Config struct {
	GraceDays           int               // presence days before anything is offered
	RiskBlockLevel      checkin.RiskLevel // risk at or above this blocks
	DailyCap            int               // max "shown" per calendar day
	WeeklyCap           int               // max "shown" per ISO week
	AcceptCooldownDays  int               // quiet period after an acceptance
	DismissCooldownDays int               // quiet period after a dismissal
}

// DefaultConfig returns the production gate thresholds.
func DefaultConfig() Config {
	return Config{
		GraceDays:           3,
		RiskBlockLevel:      checkin.RiskHigh,
		DailyCap:            1,
		WeeklyCap:           2,
		AcceptCooldownDays:  7,
		DismissCooldownDays: 3,
	}
}

// #endregion config
