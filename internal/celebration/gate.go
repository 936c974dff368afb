package celebration

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lumamaternal/care-engine/internal/checkin"
)

// #region milestone

// Milestone is one celebration ready to be shown. ProductRef is only set
// for subscribers; non-subscribers receive the celebration text alone.
type Milestone struct {
	Type       string
	Title      string
	Body       string
	ProductRef string
}

// #endregion milestone

// #region context

// Context is the snapshot the gate evaluates. Events is the caller-owned
// milestone log; a milestone with any "shown" event never fires again.
type Context struct {
	Now          time.Time
	PresenceDays int
	Week         int
	Postpartum   bool
	IsPremium    bool
	Events       []checkin.MilestoneEvent
}

// #endregion context

// #region config

// Config holds the celebration thresholds.
type Config struct {
	PresenceThresholds []int // ascending presence-day milestones
	MaxPerCall         int   // cap on milestones returned per evaluation
}

// DefaultConfig returns the production celebration settings.
func DefaultConfig() Config {
	return Config{
		PresenceThresholds: []int{3, 7, 14, 30},
		MaxPerCall:         2,
	}
}

// #endregion config

// #region definitions

const newWeekPrefix = "NEW_WEEK_"

// presenceTexts keys celebration copy by presence threshold.
var presenceTexts = map[int][2]string{
	3:  {"Three days together", "Three check-ins already. A rhythm is starting to form."},
	7:  {"One week of presence", "Seven days of showing up for yourself and your baby."},
	14: {"Two weeks strong", "Fourteen days of daily care. This is a real practice now."},
	30: {"A month of presence", "Thirty days. What you built here will carry you a long way."},
}

// fixedWeekTexts keys the single-week gestational celebrations.
var fixedWeekTexts = map[int][2]string{
	14: {"Second trimester", "Week 14 — a new trimester begins for you both."},
	28: {"Third trimester", "Week 28 — the home stretch starts today."},
	37: {"Full term", "Week 37 — your baby is considered full term. Remarkable work."},
	40: {"Due date week", "Week 40 — any day now. Everything you practiced is ready with you."},
}

const journeyCompleteType = "JOURNEY_COMPLETE"

// productRefs maps milestone families to the deeper content offered to
// subscribers alongside the celebration.
var productRefs = map[string]string{
	"presence":          "collection:presence-rituals",
	"gestational":       "collection:week-by-week",
	journeyCompleteType: "collection:fourth-trimester",
}

// #endregion definitions

// #region gate

// Gate decides which one-time celebrations fire on this visit.
type Gate struct {
	config Config
}

// NewGate creates a gate with the given configuration.
func NewGate(config Config) *Gate {
	return &Gate{config: config}
}

// Evaluate checks both milestone families against the event log and
// returns at most MaxPerCall celebrations, presence family first.
// Never errors; no matches means an empty result.
func (g *Gate) Evaluate(ctx Context) []Milestone {
	seen := seenTypes(ctx.Events)

	results := g.presenceFamily(ctx, seen)
	results = append(results, g.gestationalFamily(ctx, seen)...)

	if len(results) > g.config.MaxPerCall {
		results = results[:g.config.MaxPerCall]
	}
	for i := range results {
		if !ctx.IsPremium {
			results[i].ProductRef = ""
		}
	}
	return results
}

// #endregion gate

// #region presence-family

func (g *Gate) presenceFamily(ctx Context, seen map[string]bool) []Milestone {
	var out []Milestone
	for _, threshold := range g.config.PresenceThresholds {
		typ := fmt.Sprintf("PRESENCE_%d", threshold)
		if seen[typ] || ctx.PresenceDays < threshold {
			continue
		}
		texts := presenceTexts[threshold]
		out = append(out, Milestone{
			Type:       typ,
			Title:      texts[0],
			Body:       texts[1],
			ProductRef: productRefs["presence"],
		})
	}
	if ctx.Postpartum && !seen[journeyCompleteType] {
		out = append(out, Milestone{
			Type:       journeyCompleteType,
			Title:      "The journey continues",
			Body:       "Your baby is here. The pregnancy chapter closes; the daily practice you built comes with you.",
			ProductRef: productRefs[journeyCompleteType],
		})
	}
	return out
}

// #endregion presence-family

// #region gestational-family

// gestationalFamily is suppressed entirely once postpartum: no new-week
// and no fixed-week celebration ever fires after birth.
func (g *Gate) gestationalFamily(ctx Context, seen map[string]bool) []Milestone {
	if ctx.Postpartum || ctx.Week < 1 {
		return nil
	}

	var out []Milestone

	if ctx.Week > lastSeenWeek(ctx.Events) {
		out = append(out, Milestone{
			Type:       fmt.Sprintf("%s%d", newWeekPrefix, ctx.Week),
			Title:      fmt.Sprintf("Week %d", ctx.Week),
			Body:       fmt.Sprintf("A new week of your pregnancy begins: week %d.", ctx.Week),
			ProductRef: productRefs["gestational"],
		})
	}

	if texts, ok := fixedWeekTexts[ctx.Week]; ok {
		typ := fmt.Sprintf("WEEK_%d", ctx.Week)
		if !seen[typ] {
			out = append(out, Milestone{
				Type:       typ,
				Title:      texts[0],
				Body:       texts[1],
				ProductRef: productRefs["gestational"],
			})
		}
	}
	return out
}

// lastSeenWeek extracts the highest week number among NEW_WEEK_* events.
func lastSeenWeek(events []checkin.MilestoneEvent) int {
	last := 0
	for _, ev := range events {
		if !strings.HasPrefix(ev.Type, newWeekPrefix) {
			continue
		}
		if week, err := strconv.Atoi(strings.TrimPrefix(ev.Type, newWeekPrefix)); err == nil && week > last {
			last = week
		}
	}
	return last
}

// #endregion gestational-family

// #region seen

func seenTypes(events []checkin.MilestoneEvent) map[string]bool {
	seen := make(map[string]bool, len(events))
	for _, ev := range events {
		if ev.Action == checkin.ActionShown {
			seen[ev.Type] = true
		}
	}
	return seen
}

// #endregion seen
