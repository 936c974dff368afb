package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lumamaternal/care-engine/internal/history"
	_ "modernc.org/sqlite"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to care_history.db")
	userID := flag.String("user", "local-user", "user to inspect")
	last := flag.Int("last", 20, "show N most recent check-ins")
	decisions := flag.Int("decisions", 10, "show N most recent decision-log rows")
	jsonOut := flag.Bool("json", false, "output as JSON instead of tables")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/care_history.db [--user id] [--last N] [--decisions N] [--json]")
		os.Exit(2)
	}

	store, err := history.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := run(store, *userID, *last, *decisions, *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region report

type report struct {
	UserID       string                  `json:"user_id"`
	PresenceDays int                     `json:"presence_days"`
	Micromoments int                     `json:"micromoment_events"`
	Milestones   int                     `json:"milestone_events"`
	Checkins     []checkinRow            `json:"checkins"`
	Decisions    []history.DecisionEntry `json:"decisions,omitempty"`
}

type checkinRow struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Moment string `json:"moment"`
	Mood   int    `json:"mood"`
	Energy int    `json:"energy"`
	Body   int    `json:"body"`
	Bond   int    `json:"bond"`
	Week   int    `json:"week"`
	Zone   int    `json:"zone"`
}

func run(store *history.Store, userID string, last, decisionCount int, jsonOut bool) error {
	presence, err := store.PresenceDays(userID)
	if err != nil {
		return err
	}
	checkins, err := store.RecentCheckins(userID, last)
	if err != nil {
		return err
	}
	micromoments, err := store.RecentMicromoments(userID, time.Time{})
	if err != nil {
		return err
	}
	milestones, err := store.Milestones(userID)
	if err != nil {
		return err
	}
	decisions, err := store.Decisions(userID, decisionCount)
	if err != nil {
		return err
	}

	r := report{
		UserID:       userID,
		PresenceDays: presence,
		Micromoments: len(micromoments),
		Milestones:   len(milestones),
		Decisions:    decisions,
	}
	for _, c := range checkins {
		r.Checkins = append(r.Checkins, checkinRow{
			ID:     shortID(c.ID),
			Date:   c.CreatedAt.Format("2006-01-02 15:04"),
			Moment: string(c.Moment),
			Mood:   c.Dimensions.Mood,
			Energy: c.Dimensions.Energy,
			Body:   c.Dimensions.Body,
			Bond:   c.Dimensions.Bond,
			Week:   c.Week,
			Zone:   c.Zone,
		})
	}

	if jsonOut {
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal json: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	printReport(r)
	return nil
}

func printReport(r report) {
	fmt.Printf("User: %s | presence days: %d | micromoment events: %d | milestone events: %d\n\n",
		r.UserID, r.PresenceDays, r.Micromoments, r.Milestones)

	if len(r.Checkins) == 0 {
		fmt.Println("no check-ins found")
	} else {
		fmt.Printf("%-10s  %-16s  %-9s  %-11s  %-4s  %s\n", "ID", "Date", "Moment", "M/E/B/B", "Week", "Zone")
		for _, c := range r.Checkins {
			fmt.Printf("%-10s  %-16s  %-9s  %d/%d/%d/%d      %-4d  %d\n",
				c.ID, c.Date, c.Moment, c.Mood, c.Energy, c.Body, c.Bond, c.Week, c.Zone)
		}
	}

	if len(r.Decisions) > 0 {
		fmt.Printf("\nRecent decisions:\n")
		for _, d := range r.Decisions {
			reason := ""
			if d.Reason != "" {
				reason = " (" + d.Reason + ")"
			}
			fmt.Printf("  %-12s  %-12s  %s%s\n",
				d.CreatedAt.Format("2006-01-02"), d.Component, d.Decision, reason)
		}
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion report
