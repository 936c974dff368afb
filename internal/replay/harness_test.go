package replay

import (
	"path/filepath"
	"testing"

	"github.com/lumamaternal/care-engine/internal/engine"
	"github.com/lumamaternal/care-engine/internal/upsell"
)

// TestFirstWeekFixture is the primary regression baseline: one user's first
// week, with the grace period ending, the first suggestion, two presence
// milestones, and a skipped day. Any threshold drift shows up here.
func TestFirstWeekFixture(t *testing.T) {
	f, err := LoadFixture(filepath.Join("testdata", "first-week.json"))
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}

	results, err := Replay(f, engine.DefaultConfig())
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if len(results) != len(f.Days) {
		t.Fatalf("expected %d results, got %d", len(f.Days), len(results))
	}

	for _, r := range results {
		for _, d := range r.Divergences {
			t.Errorf("%s: %s", r.Date, d)
		}
	}

	s := Summarize(results)
	if s.Days != 8 || s.Checkins != 7 {
		t.Errorf("summary: got %+v", s)
	}
	if s.UpsellsShown != 1 {
		t.Errorf("expected exactly one suggestion shown, got %d", s.UpsellsShown)
	}
	if s.Divergences != 0 {
		t.Errorf("expected clean run, got %d divergences", s.Divergences)
	}
}

// Replaying the same fixture twice must produce identical output; message
// composition is seeded by user and calendar day.
func TestReplayDeterministic(t *testing.T) {
	f, err := LoadFixture(filepath.Join("testdata", "first-week.json"))
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}

	a, err := Replay(f, engine.DefaultConfig())
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	b, err := Replay(f, engine.DefaultConfig())
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}

	for i := range a {
		if a[i].MessageText != b[i].MessageText {
			t.Errorf("day %s: message differs between runs", a[i].Date)
		}
		if a[i].UpsellReason != b[i].UpsellReason || a[i].CelebrationCount != b[i].CelebrationCount {
			t.Errorf("day %s: decisions differ between runs", a[i].Date)
		}
	}
}

func TestReplaySkippedDayKeepsGatesClosed(t *testing.T) {
	f := &Fixture{
		User: FixtureUser{ID: "u1", Name: "Ana"},
		Days: []FixtureDay{
			{Date: "2026-03-09", Week: 20, Dimensions: [4]int{3, 3, 3, 3}, Pillar: "calm"},
			{Date: "2026-03-10", Week: 20, SkipCheckin: true, Pillar: "calm"},
		},
	}

	results, err := Replay(f, engine.DefaultConfig())
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	skipped := results[1]
	if skipped.CheckedIn {
		t.Fatal("day 2 should be a skip")
	}
	if skipped.UpsellReason != upsell.ReasonNoCheckin {
		t.Errorf("upsell: got %s, want no_checkin_today", skipped.UpsellReason)
	}
	if skipped.CelebrationCount != 0 {
		t.Errorf("celebrations on a skipped day: %d", skipped.CelebrationCount)
	}
	if skipped.MessageText == "" {
		t.Error("message should still compose on a skipped day")
	}
}

func TestReplayBadDate(t *testing.T) {
	f := &Fixture{
		User: FixtureUser{ID: "u1"},
		Days: []FixtureDay{{Date: "not-a-date"}},
	}
	if _, err := Replay(f, engine.DefaultConfig()); err == nil {
		t.Fatal("expected error for unparseable fixture date")
	}
}
