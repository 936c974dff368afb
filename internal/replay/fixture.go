package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/lumamaternal/care-engine/internal/checkin"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture: one user
// followed through a sequence of days.
type Fixture struct {
	Description string       `json:"description"`
	User        FixtureUser  `json:"user"`
	Days        []FixtureDay `json:"days"`
}

// FixtureUser is the stable user profile for a scenario.
type FixtureUser struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsPremium bool   `json:"is_premium"`
	Baseline  int    `json:"baseline"`
}

// FixtureDay is one scripted day. Dimensions are mood, energy, body, bond
// in that order. A day with skip_checkin set visits the app without
// checking in.
type FixtureDay struct {
	Date              string         `json:"date"` // 2006-01-02
	Week              int            `json:"week"`
	Postpartum        bool           `json:"postpartum"`
	Moment            string         `json:"moment"`
	Dimensions        [4]int         `json:"dimensions"`
	SkipCheckin       bool           `json:"skip_checkin"`
	Pillar            string         `json:"pillar"`
	PracticeCompleted bool           `json:"practice_completed"`
	CompletedJourneys int            `json:"completed_journeys"`
	RiskLevel         int            `json:"risk_level"`
	Expect            *FixtureExpect `json:"expect"`
}

// FixtureExpect captures the per-day expectations the harness verifies.
type FixtureExpect struct {
	Zone          int    `json:"zone"`
	Prescriptions int    `json:"prescriptions"`
	UpsellReason  string `json:"upsell_reason"`
	Celebrations  int    `json:"celebrations"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// ToDimensions converts the fixture array into domain dimensions.
func (d *FixtureDay) ToDimensions() checkin.Dimensions {
	return checkin.Dimensions{
		Mood:   d.Dimensions[0],
		Energy: d.Dimensions[1],
		Body:   d.Dimensions[2],
		Bond:   d.Dimensions[3],
	}
}

// ToMoment parses the fixture moment, defaulting to morning.
func (d *FixtureDay) ToMoment() checkin.Moment {
	switch checkin.Moment(d.Moment) {
	case checkin.MomentAfternoon, checkin.MomentEvening, checkin.MomentNight:
		return checkin.Moment(d.Moment)
	default:
		return checkin.MomentMorning
	}
}

// ToDate parses the fixture date at midday UTC, so same-day and
// cooldown windows behave predictably.
func (d *FixtureDay) ToDate() (time.Time, error) {
	t, err := time.Parse("2006-01-02", d.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", d.Date, err)
	}
	return t.Add(12 * time.Hour), nil
}

// #endregion fixture-loader
