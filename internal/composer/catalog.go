package composer

import (
	"github.com/lumamaternal/care-engine/internal/checkin"
	"github.com/lumamaternal/care-engine/internal/emotion"
)

// #region openings

// Trimester 4 stands for postpartum throughout the catalogs.
const trimesterPostpartum = 4

type openingKey struct {
	Trimester int
	Moment    checkin.Moment
}

// openingCatalog keys openings by trimester and folded time of day
// (night reads as evening).
var openingCatalog = map[openingKey][]Fragment{
	{1, checkin.MomentMorning}: {
		{"op-t1-m1", "Good morning, {name}. A new day with your tiny secret."},
		{"op-t1-m2", "Morning, {name}. These first weeks ask a lot of you, quietly."},
	},
	{1, checkin.MomentAfternoon}: {
		{"op-t1-a1", "Hello, {name}. The middle of the day is a good place to pause."},
		{"op-t1-a2", "{name}, take a breath. The afternoon can hold you for a minute."},
	},
	{1, checkin.MomentEvening}: {
		{"op-t1-e1", "Good evening, {name}. The day is folding itself away."},
		{"op-t1-e2", "{name}, the evening is yours too, not just everyone else's."},
	},
	{2, checkin.MomentMorning}: {
		{"op-t2-m1", "Good morning, {name}. Your baby is growing, and so is your way of carrying it all."},
		{"op-t2-m2", "Morning, {name}. A steadier stretch of the journey, day by day."},
	},
	{2, checkin.MomentAfternoon}: {
		{"op-t2-a1", "Hello, {name}. Halfway through the day, right where you need to be."},
		{"op-t2-a2", "{name}, this afternoon moment is a small gift to both of you."},
	},
	{2, checkin.MomentEvening}: {
		{"op-t2-e1", "Good evening, {name}. You and your baby made it through another full day."},
		{"op-t2-e2", "{name}, let the evening slow you down a little."},
	},
	{3, checkin.MomentMorning}: {
		{"op-t3-m1", "Good morning, {name}. Every morning now brings you closer."},
		{"op-t3-m2", "Morning, {name}. Your body is doing its biggest work these weeks."},
	},
	{3, checkin.MomentAfternoon}: {
		{"op-t3-a1", "Hello, {name}. Heavy days deserve light moments."},
		{"op-t3-a2", "{name}, an afternoon pause counts double in the third trimester."},
	},
	{3, checkin.MomentEvening}: {
		{"op-t3-e1", "Good evening, {name}. Rest is preparation now."},
		{"op-t3-e2", "{name}, the evening is a good time to put the weight down."},
	},
	{trimesterPostpartum, checkin.MomentMorning}: {
		{"op-pp-m1", "Good morning, {name}. However the night went, you are here."},
		{"op-pp-m2", "Morning, {name}. New days with your baby on the outside."},
	},
	{trimesterPostpartum, checkin.MomentAfternoon}: {
		{"op-pp-a1", "Hello, {name}. A minute for you, in the middle of everything."},
		{"op-pp-a2", "{name}, afternoons with a newborn blur together. This one is yours."},
	},
	{trimesterPostpartum, checkin.MomentEvening}: {
		{"op-pp-e1", "Good evening, {name}. Whatever today held, it is almost done."},
		{"op-pp-e2", "{name}, the evening can be soft even when the day was not."},
	},
}

// #endregion openings

// #region cores

// coreEntry places a core fragment at a zone and gestational-week band.
// Postpartum input reads as an effective week past 40.
type coreEntry struct {
	Zone     emotion.Zone
	WeekMin  int
	WeekMax  int
	Fragment Fragment
}

const weekAny = 999

var coreCatalog = []coreEntry{
	// Zone 1 — the day is heavy; the message carries, never asks.
	{emotion.Zone1, 1, 20, Fragment{"co-z1-early", "Today feels heavy, and that is allowed. Nothing about how you feel makes you less of a mother in the making."}},
	{emotion.Zone1, 21, 40, Fragment{"co-z1-late", "Hard days come with this stretch of the road. You do not need to fix today, only to move through it gently."}},
	{emotion.Zone1, 41, weekAny, Fragment{"co-z1-pp", "Some days with a new baby are simply survived. That is enough, and it will not always feel like this."}},

	// Zone 2
	{emotion.Zone2, 1, 20, Fragment{"co-z2-early", "A low day, not a lost one. Small comforts count double right now."}},
	{emotion.Zone2, 21, 40, Fragment{"co-z2-late", "The load is real and you are still carrying it. Let today be smaller on purpose."}},
	{emotion.Zone2, 41, weekAny, Fragment{"co-z2-pp", "Tired and tender is a normal place to be. Be as patient with yourself as you are with your baby."}},

	// Zone 3
	{emotion.Zone3, 1, 20, Fragment{"co-z3-early", "A steady day. Steady is underrated; it is where strength quietly builds."}},
	{emotion.Zone3, 21, 40, Fragment{"co-z3-late", "An even day in a big season. A few mindful minutes will keep it that way."}},
	{emotion.Zone3, 41, weekAny, Fragment{"co-z3-pp", "An ordinary day with your baby is its own kind of milestone."}},

	// Zone 4
	{emotion.Zone4, 1, 20, Fragment{"co-z4-early", "Today has light in it. Notice it on purpose; your baby grows inside that calm."}},
	{emotion.Zone4, 21, 40, Fragment{"co-z4-late", "A good day this far along is worth savoring slowly."}},
	{emotion.Zone4, 41, weekAny, Fragment{"co-z4-pp", "A good day together. These are the ones that knit the two of you closer."}},

	// Zone 5
	{emotion.Zone5, 1, 20, Fragment{"co-z5-early", "You are shining today. Let that feeling sink all the way in."}},
	{emotion.Zone5, 21, 40, Fragment{"co-z5-late", "So much strength in you today. Your baby feels the difference."}},
	{emotion.Zone5, 41, weekAny, Fragment{"co-z5-pp", "A bright day with your baby. Store a little of it for the harder ones."}},
}

// #endregion cores

// #region closings

// closingEntry places a closing fragment at a presence-day range.
type closingEntry struct {
	DayMin   int
	DayMax   int
	Fragment Fragment
}

const dayAny = 99999

var closingCatalog = []closingEntry{
	{1, 1, Fragment{"cl-d1-a", "Welcome. Showing up on day one is how every habit begins."}},
	{1, 1, Fragment{"cl-d1-b", "This was your first check-in. Tomorrow it gets a little easier to return."}},
	{2, 6, Fragment{"cl-early-a", "You came back. That is the whole secret, one day at a time."}},
	{2, 6, Fragment{"cl-early-b", "A few days in already. Keep the visits small and kind."}},
	{7, 29, Fragment{"cl-week-a", "More than a week of showing up for yourself. It is becoming yours."}},
	{7, 29, Fragment{"cl-week-b", "Your streak of presence is quietly working for you both."}},
	{30, dayAny, Fragment{"cl-month-a", "A whole month of presence and counting. This is who you are now."}},
	{30, dayAny, Fragment{"cl-month-b", "Day after day, you keep choosing this moment. Thank you for being here."}},
}

// #endregion closings

// #region milestones

// milestoneTrigger is one entry in the fixed, ordered milestone list. The
// first satisfied, unseen trigger wins.
type milestoneTrigger struct {
	ID      string
	Text    string
	Matches func(in Input) bool
}

var milestoneTriggers = []milestoneTrigger{
	{
		ID:      "ms_first_checkin",
		Text:    "Welcome, {name}. This first check-in is the beginning of a daily moment that belongs only to you and your baby.",
		Matches: func(in Input) bool { return in.FirstCheckin },
	},
	{
		ID:      "ms_week_12",
		Text:    "Week 12, {name}. The most delicate stretch is behind you. Take a slow breath and let that land.",
		Matches: func(in Input) bool { return !in.Postpartum && in.Week == 12 },
	},
	{
		ID:      "ms_week_20",
		Text:    "Halfway there, {name}. Week 20 — your baby has been growing alongside your patience all this time.",
		Matches: func(in Input) bool { return !in.Postpartum && in.Week == 20 },
	},
	{
		ID:      "ms_trimester_2",
		Text:    "{name}, you are stepping into the second trimester. Many mothers find their footing here; may you find yours.",
		Matches: func(in Input) bool { return !in.Postpartum && in.Week == 14 },
	},
	{
		ID:      "ms_trimester_3",
		Text:    "The third trimester begins, {name}. The home stretch, one rest at a time.",
		Matches: func(in Input) bool { return !in.Postpartum && in.Week == 28 },
	},
	{
		ID:      "ms_presence_10",
		Text:    "Ten days of presence, {name}. Ten small moments that are already changing the shape of your days.",
		Matches: func(in Input) bool { return in.PresenceDays >= 10 },
	},
	{
		ID:      "ms_presence_50",
		Text:    "Fifty check-ins, {name}. What began as an app habit is now a practice of caring for yourself.",
		Matches: func(in Input) bool { return in.PresenceDays >= 50 },
	},
	{
		ID:      "ms_week_40",
		Text:    "Week 40, {name}. Whenever your baby decides it is time, you have already done so much of the work.",
		Matches: func(in Input) bool { return !in.Postpartum && in.Week >= 40 },
	},
}

// #endregion milestones
