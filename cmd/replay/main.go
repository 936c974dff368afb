package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lumamaternal/care-engine/internal/engine"
	"github.com/lumamaternal/care-engine/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to scenario fixture JSON")
	verbose := flag.Bool("verbose", false, "print the composed message per day")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/scenario.json [--verbose]")
		os.Exit(2)
	}

	f, err := replay.LoadFixture(*fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		os.Exit(2)
	}

	results, err := replay.Replay(f, engine.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		os.Exit(2)
	}

	os.Exit(printComparison(f, results, *verbose))
}

// #endregion main

// #region output

// printComparison outputs a per-day comparison table and returns the exit
// code: 0 on a clean run, 1 when any day diverged from its expectations.
func printComparison(f *replay.Fixture, results []replay.DayResult, verbose bool) int {
	if f.Description != "" {
		fmt.Printf("%s\n\n", f.Description)
	}

	fmt.Printf("%-12s| %-5s| %-5s| %-6s| %-20s| %-6s| %s\n",
		"Day", "Check", "Zone", "Plan", "Upsell", "Celebr", "Match")
	fmt.Printf("%-12s+%-6s+%-6s+%-7s+%-21s+%-7s+%s\n",
		"------------", "------", "------", "-------", "---------------------", "-------", "------")

	for _, r := range results {
		check := "yes"
		if !r.CheckedIn {
			check = "-"
		}
		match := "OK"
		if len(r.Divergences) > 0 {
			match = "DIFF"
		}
		fmt.Printf("%-12s| %-5s| %-5d| %-6d| %-20s| %-6d| %s\n",
			r.Date, check, r.Zone, r.PrescriptionCount, r.UpsellReason, r.CelebrationCount, match)
		for _, d := range r.Divergences {
			fmt.Printf("             !  %s\n", d)
		}
		if verbose {
			fmt.Printf("             >  %q\n", r.MessageText)
		}
	}

	s := replay.Summarize(results)
	fmt.Printf("\nSummary: %d days, %d check-ins, %d suggestions shown, %d celebrations, %d divergences\n",
		s.Days, s.Checkins, s.UpsellsShown, s.CelebrationsShown, s.Divergences)

	if s.Divergences > 0 {
		return 1
	}
	return 0
}

// #endregion output
