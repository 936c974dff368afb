package composer

import (
	"hash/fnv"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/lumamaternal/care-engine/internal/checkin"
	"github.com/lumamaternal/care-engine/internal/emotion"
)

// #region composer

// Composer builds one personalized narrative message per day. Picks are
// deterministic per (user, calendar day): the same visit context always
// composes the same message, which keeps replays and tests reproducible.
type Composer struct {
	config Config
}

// NewComposer creates a composer with the given configuration.
func NewComposer(config Config) *Composer {
	return &Composer{config: config}
}

// #endregion composer

// #region compose

// Compose returns the day's message: a milestone override when a trigger
// fires, otherwise an opening + core + closing composition. Never errors;
// every empty pool has a fallback.
func (c *Composer) Compose(in Input) Result {
	if r, ok := c.milestoneOverride(in); ok {
		return r
	}

	rng := rand.New(rand.NewSource(daySeed(in.UserID, in.Date)))

	opening, openingExhausted := c.pickOpening(in, rng)
	core, coreExhausted := c.pickCore(in, rng)
	closing, closingExhausted := c.pickClosing(in, rng)

	name := in.UserName
	if name == "" {
		name = c.config.FallbackName
	}
	parts := []string{
		strings.ReplaceAll(opening.Text, "{name}", name),
		strings.ReplaceAll(core.Text, "{name}", name),
		strings.ReplaceAll(closing.Text, "{name}", name),
	}

	return Result{
		OpeningID:     opening.ID,
		CoreID:        core.ID,
		ClosingID:     closing.ID,
		Text:          strings.Join(parts, "\n\n"),
		UsedIDs:       []string{opening.ID, core.ID, closing.ID},
		ResetOpenings: openingExhausted || c.seenRatioReached(allOpenings(), in.Seen.Openings),
		ResetCores:    coreExhausted || c.seenRatioReached(allCores(), in.Seen.Cores),
		ResetClosings: closingExhausted || c.seenRatioReached(allClosings(), in.Seen.Closings),
	}
}

// #endregion compose

// #region milestone

// milestoneOverride scans the fixed trigger list; the first satisfied and
// unseen trigger short-circuits composition entirely.
func (c *Composer) milestoneOverride(in Input) (Result, bool) {
	seen := make(map[string]bool, len(in.SeenMilestones))
	for _, id := range in.SeenMilestones {
		seen[id] = true
	}
	for _, trigger := range milestoneTriggers {
		if seen[trigger.ID] || !trigger.Matches(in) {
			continue
		}
		name := in.UserName
		if name == "" {
			name = c.config.FallbackName
		}
		return Result{
			Milestone:   true,
			MilestoneID: trigger.ID,
			Text:        strings.ReplaceAll(trigger.Text, "{name}", name),
			UsedIDs:     []string{trigger.ID},
		}, true
	}
	return Result{}, false
}

// #endregion milestone

// #region pools

func effectiveTrimester(in Input) int {
	if in.Postpartum {
		return trimesterPostpartum
	}
	return checkin.TrimesterForWeek(in.Week)
}

// effectiveWeek folds postpartum into the past-40 band of the core catalog.
func effectiveWeek(in Input) int {
	if in.Postpartum {
		return 41
	}
	if in.Week < 1 {
		return 1
	}
	return in.Week
}

// foldMoment collapses night into evening; there is no separate night voice.
func foldMoment(m checkin.Moment) checkin.Moment {
	if m == checkin.MomentNight {
		return checkin.MomentEvening
	}
	return m
}

func (c *Composer) pickOpening(in Input, rng *rand.Rand) (Fragment, bool) {
	trimester := effectiveTrimester(in)
	pool := openingCatalog[openingKey{trimester, foldMoment(in.Moment)}]
	if len(pool) == 0 {
		// Any opening for the trimester, in a stable moment order.
		for _, m := range []checkin.Moment{checkin.MomentMorning, checkin.MomentAfternoon, checkin.MomentEvening} {
			pool = append(pool, openingCatalog[openingKey{trimester, m}]...)
		}
	}
	return pickFragment(pool, in.Seen.Openings, rng)
}

func (c *Composer) pickCore(in Input, rng *rand.Rand) (Fragment, bool) {
	week := effectiveWeek(in)
	pool := coresFor(in.Zone, week)
	if len(pool) == 0 {
		pool = coresFor(in.Zone, -1) // any week for the zone
	}
	if len(pool) == 0 {
		pool = coresFor(emotion.Zone3, -1) // neutral voice
	}
	return pickFragment(pool, in.Seen.Cores, rng)
}

func (c *Composer) pickClosing(in Input, rng *rand.Rand) (Fragment, bool) {
	pool := closingsFor(in.PresenceDays)
	if len(pool) == 0 {
		pool = closingsFor(1)
	}
	return pickFragment(pool, in.Seen.Closings, rng)
}

func coresFor(zone emotion.Zone, week int) []Fragment {
	var pool []Fragment
	for _, e := range coreCatalog {
		if e.Zone != zone {
			continue
		}
		if week >= 0 && (week < e.WeekMin || week > e.WeekMax) {
			continue
		}
		pool = append(pool, e.Fragment)
	}
	return pool
}

func closingsFor(presenceDays int) []Fragment {
	var pool []Fragment
	for _, e := range closingCatalog {
		if presenceDays >= e.DayMin && presenceDays <= e.DayMax {
			pool = append(pool, e.Fragment)
		}
	}
	return pool
}

func allOpenings() []Fragment {
	var all []Fragment
	for _, fragments := range openingCatalog {
		all = append(all, fragments...)
	}
	return all
}

func allCores() []Fragment {
	all := make([]Fragment, 0, len(coreCatalog))
	for _, e := range coreCatalog {
		all = append(all, e.Fragment)
	}
	return all
}

func allClosings() []Fragment {
	all := make([]Fragment, 0, len(closingCatalog))
	for _, e := range closingCatalog {
		all = append(all, e.Fragment)
	}
	return all
}

// #endregion pools

// #region pick

// pickFragment chooses from the pool minus already-seen IDs. An exhausted
// pool falls back to the full pool and reports it, so the caller knows to
// reset its seen list.
func pickFragment(pool []Fragment, seen []string, rng *rand.Rand) (Fragment, bool) {
	if len(pool) == 0 {
		return Fragment{}, false
	}
	seenSet := make(map[string]bool, len(seen))
	for _, id := range seen {
		seenSet[id] = true
	}
	var unseen []Fragment
	for _, f := range pool {
		if !seenSet[f.ID] {
			unseen = append(unseen, f)
		}
	}
	if len(unseen) > 0 {
		return unseen[rng.Intn(len(unseen))], false
	}
	return pool[rng.Intn(len(pool))], true
}

// seenRatioReached reports whether the seen list covers the configured
// fraction of the catalog. Only IDs actually in the catalog count.
func (c *Composer) seenRatioReached(catalog []Fragment, seen []string) bool {
	if len(catalog) == 0 {
		return false
	}
	inCatalog := make(map[string]bool, len(catalog))
	for _, f := range catalog {
		inCatalog[f.ID] = true
	}
	count := 0
	for _, id := range seen {
		if inCatalog[id] {
			count++
		}
	}
	return float64(count) >= math.Ceil(c.config.ResetThreshold*float64(len(catalog)))
}

// #endregion pick

// #region seed

// daySeed derives a stable seed from the user and the calendar day.
func daySeed(userID string, date time.Time) int64 {
	h := fnv.New64a()
	h.Write([]byte(userID))
	h.Write([]byte("|"))
	h.Write([]byte(date.Format("2006-01-02")))
	return int64(h.Sum64())
}

// #endregion seed
