package checkin

import "time"

// #region dimensions

// Dimensions holds one day's self-report: four ordinal values on a 1-5 scale.
// Immutable once recorded.
type Dimensions struct {
	Mood   int
	Energy int
	Body   int
	Bond   int
}

// Values returns the four dimensions in canonical order: mood, energy, body, bond.
func (d Dimensions) Values() [4]int {
	return [4]int{d.Mood, d.Energy, d.Body, d.Bond}
}

// DimensionName identifies one of the four self-report dimensions.
type DimensionName string

const (
	DimMood   DimensionName = "mood"
	DimEnergy DimensionName = "energy"
	DimBody   DimensionName = "body"
	DimBond   DimensionName = "bond"
)

// DimensionOrder is the canonical order used for tie-breaking.
var DimensionOrder = [4]DimensionName{DimMood, DimEnergy, DimBody, DimBond}

// #endregion dimensions

// #region moment

// Moment is the coarse time-of-day bucket for a visit.
type Moment string

const (
	MomentMorning   Moment = "morning"
	MomentAfternoon Moment = "afternoon"
	MomentEvening   Moment = "evening"
	MomentNight     Moment = "night"
)

// #endregion moment

// #region risk

// RiskLevel grades how much caution the surrounding product should apply.
// It is supplied by the boundary layer, never derived here.
type RiskLevel int

const (
	RiskNone     RiskLevel = 0
	RiskElevated RiskLevel = 1
	RiskHigh     RiskLevel = 2
	RiskCrisis   RiskLevel = 3
)

// #endregion risk

// #region events

// EventAction records what happened to a piece of content.
type EventAction string

const (
	ActionShown     EventAction = "shown"
	ActionAccepted  EventAction = "accepted"
	ActionDismissed EventAction = "dismissed"
	ActionCompleted EventAction = "completed"
)

// MicromomentEvent is one append-only fact about a transactional suggestion.
// The caller owns the log; the engine only reads a recent window of it.
type MicromomentEvent struct {
	ID        string
	Type      string
	Action    EventAction
	Timestamp time.Time
	Context   string
}

// MilestoneEvent is one append-only fact about a celebration milestone.
type MilestoneEvent struct {
	ID        string
	Type      string
	Action    EventAction
	Timestamp time.Time
}

// #endregion events

// #region trimester

// TrimesterForWeek maps a gestational week to its trimester (1-3).
func TrimesterForWeek(week int) int {
	switch {
	case week <= 13:
		return 1
	case week <= 27:
		return 2
	default:
		return 3
	}
}

// #endregion trimester

// #region same-day

// SameDay reports whether two timestamps fall on the same calendar day
// in the timestamps' own locations.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// #endregion same-day
