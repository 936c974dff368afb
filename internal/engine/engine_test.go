package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/lumamaternal/care-engine/internal/checkin"
	"github.com/lumamaternal/care-engine/internal/emotion"
	"github.com/lumamaternal/care-engine/internal/practice"
	"github.com/lumamaternal/care-engine/internal/upsell"
)

var now = time.Date(2026, 3, 11, 15, 0, 0, 0, time.UTC)

func TestEvaluateCheckinHardDay(t *testing.T) {
	e := NewEngine(DefaultConfig())
	got := e.EvaluateCheckin(CheckinInput{
		Dimensions: checkin.Dimensions{Mood: 1, Energy: 1, Body: 2, Bond: 2},
		Week:       24,
		Moment:     checkin.MomentMorning,
	})

	if got.State.Zone != emotion.Zone1 {
		t.Errorf("zone: got %d, want 1", got.State.Zone)
	}
	if !got.State.HasFlag(emotion.FlagOverload) {
		t.Error("expected overload flag")
	}
	if len(got.Plan.Prescriptions) != 1 {
		t.Fatalf("hard day should prescribe exactly one practice, got %d", len(got.Plan.Prescriptions))
	}
	if got.Plan.Tone != practice.ToneCompassionate {
		t.Errorf("tone: got %s, want compassionate", got.Plan.Tone)
	}
	if got.Plan.Goal == "" {
		t.Error("plan goal must always be set")
	}
	if _, low := got.Metrics.Lowest(); low > 50 {
		t.Errorf("hard day metrics should read low, lowest=%.1f", low)
	}
}

func TestEvaluateCheckinGoodDay(t *testing.T) {
	e := NewEngine(DefaultConfig())
	got := e.EvaluateCheckin(CheckinInput{
		Dimensions: checkin.Dimensions{Mood: 5, Energy: 4, Body: 5, Bond: 5},
		Week:       30,
		Moment:     checkin.MomentEvening,
	})

	if got.State.Zone < emotion.Zone4 {
		t.Errorf("zone: got %d, want >= 4", got.State.Zone)
	}
	if len(got.State.Flags) != 0 {
		t.Errorf("unexpected flags: %v", got.State.Flags)
	}
	// A clean high day only surfaces the growth opening.
	if n := len(got.Plan.Prescriptions); n != 1 {
		t.Errorf("clean day plan: got %d prescriptions, want 1", n)
	}
	if got.Plan.Tone != practice.ToneCelebratory && got.Plan.Tone != practice.ToneEncouraging {
		t.Errorf("tone: got %s", got.Plan.Tone)
	}
}

func baseVisit() VisitInput {
	return VisitInput{
		Now:             now,
		UserID:          "user-1",
		UserName:        "Ana",
		Zone:            emotion.Zone2,
		Week:            24,
		Moment:          checkin.MomentAfternoon,
		PresenceDays:    8,
		Pillar:          upsell.PillarCalm,
		HasCheckinToday: true,
	}
}

func TestEvaluateVisitFullDay(t *testing.T) {
	e := NewEngine(DefaultConfig())
	got := e.EvaluateVisit(baseVisit())

	if got.Message.Text == "" {
		t.Fatal("visit must always compose a message")
	}
	if !strings.Contains(got.Message.Text, "Ana") && strings.Contains(got.Message.Text, "{name}") {
		t.Error("name placeholder left unsubstituted")
	}
	if !got.Upsell.Eligible {
		t.Errorf("expected open gate, got reason %s", got.Upsell.Reason)
	}
	// Presence day 8 with nothing celebrated: 3 and 7 are both due.
	if len(got.Celebrations) != 2 {
		t.Errorf("celebrations: got %d, want 2", len(got.Celebrations))
	}
}

func TestEvaluateVisitWithoutCheckinKeepsGatesClosed(t *testing.T) {
	e := NewEngine(DefaultConfig())
	in := baseVisit()
	in.HasCheckinToday = false
	got := e.EvaluateVisit(in)

	if got.Message.Text == "" {
		t.Error("message should compose even without a check-in")
	}
	if got.Upsell.Eligible || got.Upsell.Reason != upsell.ReasonNoCheckin {
		t.Errorf("upsell: got %+v, want no_checkin_today block", got.Upsell)
	}
	if len(got.Celebrations) != 0 {
		t.Errorf("celebrations should wait for the check-in, got %+v", got.Celebrations)
	}
}

func TestEvaluateVisitDeterministicSameDay(t *testing.T) {
	e := NewEngine(DefaultConfig())
	a := e.EvaluateVisit(baseVisit())
	b := e.EvaluateVisit(baseVisit())
	if a.Message.Text != b.Message.Text {
		t.Error("same visit context must compose the same message")
	}
}
