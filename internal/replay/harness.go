package replay

import (
	"fmt"

	"github.com/lumamaternal/care-engine/internal/checkin"
	"github.com/lumamaternal/care-engine/internal/composer"
	"github.com/lumamaternal/care-engine/internal/emotion"
	"github.com/lumamaternal/care-engine/internal/engine"
	"github.com/lumamaternal/care-engine/internal/upsell"
)

// #region types

// DayResult captures the outcome of replaying one fixture day.
type DayResult struct {
	Date              string
	CheckedIn         bool
	Zone              emotion.Zone
	PrescriptionCount int
	UpsellReason      upsell.Reason
	CelebrationCount  int
	MessageText       string

	// Divergences lists expected/got mismatches; empty means the day passed.
	Divergences []string
}

// Summary aggregates a replay run.
type Summary struct {
	Days              int
	Checkins          int
	UpsellsShown      int
	CelebrationsShown int
	Divergences       int
}

// #endregion types

// #region replay

// Replay walks the fixture days through the engine in order, accumulating
// event logs and seen lists exactly as a live caller would: message IDs are
// marked seen after each visit, reset signals clear the matching list, an
// eligible upsell becomes a "shown" micromoment, and every returned
// celebration becomes a "shown" milestone event. Entirely in-memory.
func Replay(f *Fixture, cfg engine.Config) ([]DayResult, error) {
	eng := engine.NewEngine(cfg)

	var (
		micromoments   []checkin.MicromomentEvent
		milestones     []checkin.MilestoneEvent
		seenMilestones []string
		seen           composer.SeenLists
		presenceDays   int
		lastZone       = emotion.Zone3
	)

	results := make([]DayResult, 0, len(f.Days))
	for i, day := range f.Days {
		date, err := day.ToDate()
		if err != nil {
			return nil, fmt.Errorf("day %d: %w", i, err)
		}

		firstCheckin := presenceDays == 0 && !day.SkipCheckin
		res := DayResult{Date: day.Date, CheckedIn: !day.SkipCheckin}

		if !day.SkipCheckin {
			out := eng.EvaluateCheckin(engine.CheckinInput{
				Dimensions: day.ToDimensions(),
				Week:       day.Week,
				Moment:     day.ToMoment(),
				Baseline:   f.User.Baseline,
			})
			presenceDays++
			lastZone = out.State.Zone
			res.Zone = out.State.Zone
			res.PrescriptionCount = len(out.Plan.Prescriptions)
		} else {
			res.Zone = lastZone
		}

		visit := eng.EvaluateVisit(engine.VisitInput{
			Now:                    date,
			UserID:                 f.User.ID,
			UserName:               f.User.Name,
			Zone:                   lastZone,
			Week:                   day.Week,
			Postpartum:             day.Postpartum,
			Moment:                 day.ToMoment(),
			PresenceDays:           presenceDays,
			FirstCheckin:           firstCheckin,
			SeenMilestones:         seenMilestones,
			Seen:                   seen,
			IsPremium:              f.User.IsPremium,
			RiskLevel:              checkin.RiskLevel(day.RiskLevel),
			Pillar:                 upsell.Pillar(day.Pillar),
			PracticeCompletedToday: day.PracticeCompleted,
			CompletedJourneys:      day.CompletedJourneys,
			HasCheckinToday:        !day.SkipCheckin,
			MicromomentEvents:      micromoments,
			MilestoneEvents:        milestones,
		})

		res.UpsellReason = visit.Upsell.Reason
		res.CelebrationCount = len(visit.Celebrations)
		res.MessageText = visit.Message.Text

		// Accumulate exactly as the store-backed caller would.
		if visit.Message.Milestone {
			seenMilestones = append(seenMilestones, visit.Message.MilestoneID)
		} else {
			seen.Openings = append(seen.Openings, visit.Message.OpeningID)
			seen.Cores = append(seen.Cores, visit.Message.CoreID)
			seen.Closings = append(seen.Closings, visit.Message.ClosingID)
			if visit.Message.ResetOpenings {
				seen.Openings = nil
			}
			if visit.Message.ResetCores {
				seen.Cores = nil
			}
			if visit.Message.ResetClosings {
				seen.Closings = nil
			}
		}
		if visit.Upsell.Eligible {
			micromoments = append(micromoments, checkin.MicromomentEvent{
				ID:        fmt.Sprintf("mm-%d", len(micromoments)),
				Type:      string(visit.Upsell.Type),
				Action:    checkin.ActionShown,
				Timestamp: date,
			})
		}
		for _, c := range visit.Celebrations {
			milestones = append(milestones, checkin.MilestoneEvent{
				ID:        fmt.Sprintf("ms-%d", len(milestones)),
				Type:      c.Type,
				Action:    checkin.ActionShown,
				Timestamp: date,
			})
		}

		res.Divergences = diff(day.Expect, res)
		results = append(results, res)
	}

	return results, nil
}

// diff compares a day's expectations against what actually happened.
func diff(expect *FixtureExpect, got DayResult) []string {
	if expect == nil {
		return nil
	}
	var out []string
	if int(got.Zone) != expect.Zone {
		out = append(out, fmt.Sprintf("zone: expected %d, got %d", expect.Zone, got.Zone))
	}
	if got.PrescriptionCount != expect.Prescriptions {
		out = append(out, fmt.Sprintf("prescriptions: expected %d, got %d", expect.Prescriptions, got.PrescriptionCount))
	}
	if expect.UpsellReason != "" && string(got.UpsellReason) != expect.UpsellReason {
		out = append(out, fmt.Sprintf("upsell: expected %s, got %s", expect.UpsellReason, got.UpsellReason))
	}
	if got.CelebrationCount != expect.Celebrations {
		out = append(out, fmt.Sprintf("celebrations: expected %d, got %d", expect.Celebrations, got.CelebrationCount))
	}
	return out
}

// Summarize computes aggregate stats from replay results.
func Summarize(results []DayResult) Summary {
	s := Summary{Days: len(results)}
	for _, r := range results {
		if r.CheckedIn {
			s.Checkins++
		}
		if r.UpsellReason == upsell.ReasonEligible {
			s.UpsellsShown++
		}
		s.CelebrationsShown += r.CelebrationCount
		s.Divergences += len(r.Divergences)
	}
	return s
}

// #endregion replay
