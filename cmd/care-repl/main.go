package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lumamaternal/care-engine/internal/checkin"
	"github.com/lumamaternal/care-engine/internal/composer"
	"github.com/lumamaternal/care-engine/internal/engine"
	"github.com/lumamaternal/care-engine/internal/history"
	"github.com/lumamaternal/care-engine/internal/upsell"
)

// #region main
func main() {
	dbPath := envOr("CARE_DB", "care_history.db")
	userID := envOr("CARE_USER", "local-user")
	userName := envOr("CARE_NAME", "")
	week := envIntOr("CARE_WEEK", 24)

	store, err := history.NewStore(dbPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	eng := engine.NewEngine(engine.DefaultConfig())

	fmt.Println("Care engine REPL ready.")
	fmt.Printf("  DB: %s | user: %s | week: %d\n", dbPath, userID, week)
	fmt.Println("Enter a check-in as: mood energy body bond (each 1-5, or 'quit'):")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		dims, err := parseDimensions(line)
		if err != nil {
			fmt.Printf("  %v\n", err)
			continue
		}

		if err := runDay(store, eng, userID, userName, week, dims); err != nil {
			log.Printf("error: %v", err)
		}
	}
}

// #endregion main

// #region day

// runDay records the check-in, runs both pipelines against stored history,
// and persists everything the engine's contract expects the caller to keep.
func runDay(store *history.Store, eng *engine.Engine, userID, userName string, week int, dims checkin.Dimensions) error {
	now := time.Now().UTC()
	moment := momentFor(now)

	firstCheckin, err := isFirstCheckin(store, userID)
	if err != nil {
		return err
	}

	care := eng.EvaluateCheckin(engine.CheckinInput{
		Dimensions: dims,
		Week:       week,
		Moment:     moment,
	})

	rec, err := store.RecordCheckin(history.CheckinRecord{
		UserID:     userID,
		Dimensions: dims,
		Week:       week,
		Moment:     moment,
		Zone:       int(care.State.Zone),
		CreatedAt:  now,
	})
	if err != nil {
		return err
	}

	presence, err := store.PresenceDays(userID)
	if err != nil {
		return err
	}
	micromoments, err := store.RecentMicromoments(userID, now.AddDate(0, 0, -30))
	if err != nil {
		return err
	}
	milestones, err := store.Milestones(userID)
	if err != nil {
		return err
	}
	seen, seenMilestones, err := loadSeen(store, userID)
	if err != nil {
		return err
	}

	visit := eng.EvaluateVisit(engine.VisitInput{
		Now:               now,
		UserID:            userID,
		UserName:          userName,
		Zone:              care.State.Zone,
		Week:              week,
		Moment:            moment,
		PresenceDays:      presence,
		FirstCheckin:      firstCheckin,
		SeenMilestones:    seenMilestones,
		Seen:              seen,
		Pillar:            upsell.PillarCalm,
		HasCheckinToday:   true,
		MicromomentEvents: micromoments,
		MilestoneEvents:   milestones,
	})

	printDay(care, visit)
	return persistVisit(store, userID, rec.ID, now, care, visit)
}

// #endregion day

// #region persistence

func loadSeen(store *history.Store, userID string) (composer.SeenLists, []string, error) {
	var seen composer.SeenLists
	var err error
	if seen.Openings, err = store.SeenIDs(userID, history.CatalogOpenings); err != nil {
		return seen, nil, err
	}
	if seen.Cores, err = store.SeenIDs(userID, history.CatalogCores); err != nil {
		return seen, nil, err
	}
	if seen.Closings, err = store.SeenIDs(userID, history.CatalogClosings); err != nil {
		return seen, nil, err
	}
	seenMilestones, err := store.SeenIDs(userID, history.CatalogMilestones)
	return seen, seenMilestones, err
}

func isFirstCheckin(store *history.Store, userID string) (bool, error) {
	days, err := store.PresenceDays(userID)
	return days == 0, err
}

// persistVisit stores returned fragment IDs and events, honoring the
// composer's reset signals.
func persistVisit(store *history.Store, userID, checkinID string, now time.Time, care engine.CheckinResult, visit engine.VisitResult) error {
	msg := visit.Message
	if msg.Milestone {
		if err := store.MarkSeen(userID, history.CatalogMilestones, msg.MilestoneID); err != nil {
			return err
		}
	} else {
		resets := []struct {
			catalog history.SeenCatalog
			id      string
			reset   bool
		}{
			{history.CatalogOpenings, msg.OpeningID, msg.ResetOpenings},
			{history.CatalogCores, msg.CoreID, msg.ResetCores},
			{history.CatalogClosings, msg.ClosingID, msg.ResetClosings},
		}
		for _, r := range resets {
			if r.reset {
				if err := store.ClearSeen(userID, r.catalog); err != nil {
					return err
				}
				continue
			}
			if err := store.MarkSeen(userID, r.catalog, r.id); err != nil {
				return err
			}
		}
	}

	if visit.Upsell.Eligible {
		err := store.AppendMicromoment(userID, checkin.MicromomentEvent{
			Type: string(visit.Upsell.Type), Action: checkin.ActionShown, Timestamp: now,
		})
		if err != nil {
			return err
		}
	}
	for _, c := range visit.Celebrations {
		err := store.AppendMilestone(userID, checkin.MilestoneEvent{
			Type: c.Type, Action: checkin.ActionShown, Timestamp: now,
		})
		if err != nil {
			return err
		}
	}

	entries := []history.DecisionEntry{
		{Component: "deriver", Decision: fmt.Sprintf("zone=%d intensity=%s", care.State.Zone, care.State.Intensity)},
		{Component: "generator", Decision: fmt.Sprintf("prescriptions=%d tone=%s", len(care.Plan.Prescriptions), care.Plan.Tone)},
		{Component: "upsell", Decision: string(visit.Upsell.Reason)},
		{Component: "celebration", Decision: fmt.Sprintf("fired=%d", len(visit.Celebrations))},
	}
	for _, e := range entries {
		e.UserID = userID
		e.CheckinID = checkinID
		e.CreatedAt = now
		if err := store.LogDecision(e); err != nil {
			return err
		}
	}
	return nil
}

// #endregion persistence

// #region output

func printDay(care engine.CheckinResult, visit engine.VisitResult) {
	fmt.Printf("\n%s\n\n", visit.Message.Text)
	fmt.Printf("[state] zone=%d intensity=%s flags=%v\n", care.State.Zone, care.State.Intensity, care.State.Flags)
	fmt.Printf("[plan]  tone=%s goal=%q\n", care.Plan.Tone, care.Plan.Goal)
	for i, p := range care.Plan.Prescriptions {
		fmt.Printf("  %d. %s (%d min, %s) — %s\n", i+1, p.Practice.Name, p.DurationMin, p.Intensity, p.Focus)
	}
	if visit.Upsell.Eligible {
		fmt.Printf("[upsell] %s\n", visit.Upsell.Type)
	} else {
		fmt.Printf("[upsell] blocked: %s\n", visit.Upsell.Reason)
	}
	for _, c := range visit.Celebrations {
		fmt.Printf("[celebration] %s: %s\n", c.Type, c.Title)
	}
	fmt.Println()
}

// #endregion output

// #region helpers

func parseDimensions(line string) (checkin.Dimensions, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return checkin.Dimensions{}, fmt.Errorf("need 4 values: mood energy body bond")
	}
	vals := make([]int, 4)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 1 || v > 5 {
			return checkin.Dimensions{}, fmt.Errorf("%q is not a rating between 1 and 5", f)
		}
		vals[i] = v
	}
	return checkin.Dimensions{Mood: vals[0], Energy: vals[1], Body: vals[2], Bond: vals[3]}, nil
}

func momentFor(t time.Time) checkin.Moment {
	switch h := t.Hour(); {
	case h < 5:
		return checkin.MomentNight
	case h < 12:
		return checkin.MomentMorning
	case h < 18:
		return checkin.MomentAfternoon
	case h < 22:
		return checkin.MomentEvening
	default:
		return checkin.MomentNight
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// #endregion helpers
