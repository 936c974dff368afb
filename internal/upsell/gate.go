package upsell

import (
	"time"

	"github.com/lumamaternal/care-engine/internal/checkin"
	"github.com/lumamaternal/care-engine/internal/emotion"
)

// #region candidates

// candidate is one row of the fixed-priority suggestion table. All set
// criteria must hold for the row to win; the first winning row is returned.
type candidate struct {
	Type                 SuggestionType
	MinPresenceDays      int
	Zones                []emotion.Zone // empty = any zone
	Pillar               Pillar         // empty = any pillar
	RequiresPractice     bool           // practice completed today
	MinCompletedJourneys int
}

var candidates = []candidate{
	{
		Type:            TypeCalmJourney,
		MinPresenceDays: 5,
		Zones:           []emotion.Zone{emotion.Zone1, emotion.Zone2},
		Pillar:          PillarCalm,
	},
	{
		Type:             TypeSleepSeries,
		MinPresenceDays:  7,
		Zones:            []emotion.Zone{emotion.Zone2, emotion.Zone3},
		Pillar:           PillarRest,
		RequiresPractice: true,
	},
	{
		Type:                 TypeBondProgram,
		MinPresenceDays:      10,
		Zones:                []emotion.Zone{emotion.Zone3, emotion.Zone4, emotion.Zone5},
		Pillar:               PillarBond,
		MinCompletedJourneys: 3,
	},
	{
		Type:                 TypePremiumTrial,
		MinPresenceDays:      14,
		RequiresPractice:     true,
		MinCompletedJourneys: 5,
	},
}

// #endregion candidates

// #region gate

// Gate decides whether a transactional suggestion may be shown right now,
// and which one. Stateless; every call evaluates the supplied snapshot.
type Gate struct {
	config Config
}

// NewGate creates a gate with the given configuration.
func NewGate(config Config) *Gate {
	return &Gate{config: config}
}

// #endregion gate

// #region evaluate

// Evaluate runs the hard blocks in strict order (first match
// short-circuits), then scans the candidate table in priority order.
// At most one suggestion per call; never errors.
func (g *Gate) Evaluate(ctx Context) Decision {
	if reason, blocked := g.hardBlock(ctx); blocked {
		return Decision{Reason: reason}
	}

	for _, c := range candidates {
		if g.matches(c, ctx) {
			return Decision{Eligible: true, Type: c.Type, Reason: ReasonEligible}
		}
	}
	return Decision{Reason: ReasonNoEligibleType}
}

// #endregion evaluate

// #region hard-blocks

// hardBlock evaluates the ordered block list. Order is part of the
// contract: a premium subscriber is reported as premium_user even when a
// cap or cooldown would also apply.
func (g *Gate) hardBlock(ctx Context) (Reason, bool) {
	if ctx.IsPremium {
		return ReasonPremiumUser, true
	}
	if ctx.PresenceDays < g.config.GraceDays {
		return ReasonGracePeriod, true
	}
	if ctx.RiskLevel >= g.config.RiskBlockLevel {
		return ReasonRiskLevel, true
	}
	if g.shownOn(ctx, checkin.SameDay) >= g.config.DailyCap {
		return ReasonDailyCap, true
	}
	if g.shownOn(ctx, sameISOWeek) >= g.config.WeeklyCap {
		return ReasonWeeklyCap, true
	}
	if g.inCooldown(ctx) {
		return ReasonCooldown, true
	}
	if ctx.FirstVisitOfDay {
		return ReasonFirstVisit, true
	}
	if !ctx.HasCheckinToday {
		return ReasonNoCheckin, true
	}
	return "", false
}

// shownOn counts "shown" events whose timestamp satisfies the window
// predicate relative to now.
func (g *Gate) shownOn(ctx Context, within func(a, b time.Time) bool) int {
	count := 0
	for _, ev := range ctx.Events {
		if ev.Action == checkin.ActionShown && within(ev.Timestamp, ctx.Now) {
			count++
		}
	}
	return count
}

// inCooldown reports whether the most recent acceptance or dismissal is
// still inside its quiet period.
func (g *Gate) inCooldown(ctx Context) bool {
	for _, ev := range ctx.Events {
		var days int
		switch ev.Action {
		case checkin.ActionAccepted:
			days = g.config.AcceptCooldownDays
		case checkin.ActionDismissed:
			days = g.config.DismissCooldownDays
		default:
			continue
		}
		if ctx.Now.Sub(ev.Timestamp) < time.Duration(days)*24*time.Hour {
			return true
		}
	}
	return false
}

func sameISOWeek(a, b time.Time) bool {
	ay, aw := a.ISOWeek()
	by, bw := b.ISOWeek()
	return ay == by && aw == bw
}

// #endregion hard-blocks

// #region candidate-match

func (g *Gate) matches(c candidate, ctx Context) bool {
	if ctx.PresenceDays < c.MinPresenceDays {
		return false
	}
	if len(c.Zones) > 0 && !zoneIn(ctx.Zone, c.Zones) {
		return false
	}
	if c.Pillar != "" && ctx.Pillar != c.Pillar {
		return false
	}
	if c.RequiresPractice && !ctx.PracticeCompletedToday {
		return false
	}
	if ctx.CompletedJourneys < c.MinCompletedJourneys {
		return false
	}
	return true
}

func zoneIn(z emotion.Zone, zones []emotion.Zone) bool {
	for _, candidate := range zones {
		if candidate == z {
			return true
		}
	}
	return false
}

// #endregion candidate-match
