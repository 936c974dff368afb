package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lumamaternal/care-engine/internal/checkin"
)

func tempDB(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordCheckinAndCheckinOn(t *testing.T) {
	s := tempDB(t)
	now := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)

	rec, err := s.RecordCheckin(CheckinRecord{
		UserID:     "u1",
		Dimensions: checkin.Dimensions{Mood: 3, Energy: 4, Body: 3, Bond: 5},
		Week:       24,
		Moment:     checkin.MomentMorning,
		Zone:       4,
		CreatedAt:  now,
	})
	if err != nil {
		t.Fatalf("RecordCheckin: %v", err)
	}
	if rec.ID == "" {
		t.Fatal("expected generated checkin ID")
	}

	got, ok, err := s.CheckinOn("u1", now.Add(5*time.Hour))
	if err != nil {
		t.Fatalf("CheckinOn: %v", err)
	}
	if !ok {
		t.Fatal("expected a check-in for today")
	}
	if got.ID != rec.ID || got.Dimensions != rec.Dimensions || got.Zone != 4 {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, rec)
	}

	if _, ok, _ := s.CheckinOn("u1", now.AddDate(0, 0, 1)); ok {
		t.Error("tomorrow should have no check-in")
	}
	if _, ok, _ := s.CheckinOn("u2", now); ok {
		t.Error("other user should have no check-in")
	}
}

func TestPresenceDaysCountsDistinctDays(t *testing.T) {
	s := tempDB(t)
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	// Two check-ins on day one, then one each on two further days.
	for _, at := range []time.Time{base, base.Add(9 * time.Hour), base.AddDate(0, 0, 1), base.AddDate(0, 0, 4)} {
		if _, err := s.RecordCheckin(CheckinRecord{
			UserID:     "u1",
			Dimensions: checkin.Dimensions{Mood: 3, Energy: 3, Body: 3, Bond: 3},
			Week:       20,
			Moment:     checkin.MomentMorning,
			Zone:       3,
			CreatedAt:  at,
		}); err != nil {
			t.Fatalf("RecordCheckin: %v", err)
		}
	}

	days, err := s.PresenceDays("u1")
	if err != nil {
		t.Fatalf("PresenceDays: %v", err)
	}
	if days != 3 {
		t.Errorf("presence days: got %d, want 3", days)
	}

	if days, _ := s.PresenceDays("u2"); days != 0 {
		t.Errorf("unknown user: got %d, want 0", days)
	}
}

func TestMicromomentLogInsertionOrder(t *testing.T) {
	s := tempDB(t)
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	// Same timestamp on purpose: order must come from insertion, not time.
	for _, typ := range []string{"calm_journey", "sleep_series", "calm_journey"} {
		err := s.AppendMicromoment("u1", checkin.MicromomentEvent{
			Type: typ, Action: checkin.ActionShown, Timestamp: base, Context: "home",
		})
		if err != nil {
			t.Fatalf("AppendMicromoment: %v", err)
		}
	}

	events, err := s.RecentMicromoments("u1", base.AddDate(0, 0, -7))
	if err != nil {
		t.Fatalf("RecentMicromoments: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	want := []string{"calm_journey", "sleep_series", "calm_journey"}
	for i, ev := range events {
		if ev.Type != want[i] {
			t.Errorf("event %d: got %s, want %s", i, ev.Type, want[i])
		}
		if ev.Context != "home" {
			t.Errorf("event %d: context lost", i)
		}
	}

	// Cutoff excludes everything older than it.
	events, err = s.RecentMicromoments("u1", base.Add(time.Hour))
	if err != nil {
		t.Fatalf("RecentMicromoments: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected no events after cutoff, got %d", len(events))
	}
}

func TestMilestoneLogRoundTrip(t *testing.T) {
	s := tempDB(t)
	at := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	err := s.AppendMilestone("u1", checkin.MilestoneEvent{
		Type: "PRESENCE_7", Action: checkin.ActionShown, Timestamp: at,
	})
	if err != nil {
		t.Fatalf("AppendMilestone: %v", err)
	}

	events, err := s.Milestones("u1")
	if err != nil {
		t.Fatalf("Milestones: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Type != "PRESENCE_7" || events[0].Action != checkin.ActionShown {
		t.Errorf("round trip mismatch: %+v", events[0])
	}
	if !events[0].Timestamp.Equal(at) {
		t.Errorf("timestamp: got %v, want %v", events[0].Timestamp, at)
	}
}

func TestSeenFragments(t *testing.T) {
	s := tempDB(t)

	if err := s.MarkSeen("u1", CatalogOpenings, "op-t2-m1", "op-t2-m2"); err != nil {
		t.Fatalf("MarkSeen: %v", err)
	}
	// Duplicate mark is a no-op.
	if err := s.MarkSeen("u1", CatalogOpenings, "op-t2-m1"); err != nil {
		t.Fatalf("MarkSeen duplicate: %v", err)
	}

	ids, err := s.SeenIDs("u1", CatalogOpenings)
	if err != nil {
		t.Fatalf("SeenIDs: %v", err)
	}
	if len(ids) != 2 || ids[0] != "op-t2-m1" || ids[1] != "op-t2-m2" {
		t.Fatalf("seen list: got %v", ids)
	}

	// Catalogs are independent.
	if ids, _ := s.SeenIDs("u1", CatalogCores); len(ids) != 0 {
		t.Errorf("cores should be empty, got %v", ids)
	}

	if err := s.ClearSeen("u1", CatalogOpenings); err != nil {
		t.Fatalf("ClearSeen: %v", err)
	}
	if ids, _ := s.SeenIDs("u1", CatalogOpenings); len(ids) != 0 {
		t.Errorf("expected cleared list, got %v", ids)
	}
}

func TestDecisionLog(t *testing.T) {
	s := tempDB(t)

	entries := []DecisionEntry{
		{UserID: "u1", Component: "upsell", Decision: "blocked", Reason: "grace_period"},
		{UserID: "u1", CheckinID: "c1", Component: "generator", Decision: "prescribed 1 practice"},
	}
	for _, e := range entries {
		if err := s.LogDecision(e); err != nil {
			t.Fatalf("LogDecision: %v", err)
		}
	}

	got, err := s.Decisions("u1", 10)
	if err != nil {
		t.Fatalf("Decisions: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	// Newest first.
	if got[0].Component != "generator" || got[0].CheckinID != "c1" {
		t.Errorf("first entry: %+v", got[0])
	}
	if got[1].Reason != "grace_period" {
		t.Errorf("second entry: %+v", got[1])
	}
}

func TestNewStoreInvalidPath(t *testing.T) {
	_, err := NewStore(filepath.Join(string(os.PathSeparator), "nonexistent", "deep", "path", "test.db"))
	if err == nil {
		t.Fatal("expected error for invalid path")
	}
}

func TestRecordCheckinOnClosedDB(t *testing.T) {
	s, _ := NewStore(filepath.Join(t.TempDir(), "test.db"))
	s.Close()

	_, err := s.RecordCheckin(CheckinRecord{UserID: "u1"})
	if err == nil {
		t.Fatal("expected error on closed DB")
	}
}
