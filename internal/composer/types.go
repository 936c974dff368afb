package composer

import (
	"time"

	"github.com/lumamaternal/care-engine/internal/checkin"
	"github.com/lumamaternal/care-engine/internal/emotion"
)

// #region fragment

// Fragment is one reusable piece of narrative text. IDs are stable so the
// caller can track what a user has already seen.
type Fragment struct {
	ID   string
	Text string
}

// #endregion fragment

// #region seen

// SeenLists carries the caller-owned anti-repetition state, one ID list per
// catalog, in insertion order. The composer never mutates them.
type SeenLists struct {
	Openings []string
	Cores    []string
	Closings []string
}

// #endregion seen

// #region input

// Input is the full context for composing one day's message.
type Input struct {
	UserID   string
	UserName string

	Zone       emotion.Zone
	Week       int
	Postpartum bool
	Moment     checkin.Moment

	PresenceDays int
	Date         time.Time

	FirstCheckin   bool
	SeenMilestones []string
	Seen           SeenLists
}

// #endregion input

// #region result

// Result is one composed message. Either a milestone override (MilestoneID
// set, component IDs empty) or a three-part composition.
type Result struct {
	Milestone   bool
	MilestoneID string

	OpeningID string
	CoreID    string
	ClosingID string

	Text    string
	UsedIDs []string

	// Reset signals: the caller should clear the corresponding seen list.
	ResetOpenings bool
	ResetCores    bool
	ResetClosings bool
}

// #endregion result

// #region config

// Config holds the composer knobs.
type Config struct {
	ResetThreshold float64 // fraction of a catalog seen before signaling reset
	FallbackName   string  // used when the user has no recorded name
}

// DefaultConfig returns the production composer settings.
func DefaultConfig() Config {
	return Config{
		ResetThreshold: 0.8,
		FallbackName:   "mama",
	}
}

// #endregion config
