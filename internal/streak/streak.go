// Package streak derives streaks and achievements from completion
// history. Everything here is recomputed on read; nothing is cached.
package streak

import (
	"sort"
	"time"

	"github.com/bluestock/dailypuzzle/internal/store"
)

const dateLayout = "2006-01-02"

// Info is derived streak state.
type Info struct {
	Current   int `json:"current"`
	Longest   int `json:"longest"`
	TotalDays int `json:"totalDays"`
}

// Calculate walks the history relative to today. The current streak counts
// back from today while days are solved; if today itself is unsolved the
// walk restarts at yesterday, so an unfinished today never breaks a
// streak. The longest streak is the maximal run of calendar-consecutive
// solved dates anywhere in history.
func Calculate(history []store.Completion, today time.Time) Info {
	if len(history) == 0 {
		return Info{}
	}

	solved := make(map[string]bool, len(history))
	for _, c := range history {
		if c.Solved {
			solved[c.Date] = true
		}
	}

	info := Info{TotalDays: len(solved)}

	day := today
	for solved[day.Format(dateLayout)] {
		info.Current++
		day = day.AddDate(0, 0, -1)
	}
	if info.Current == 0 {
		day = today.AddDate(0, 0, -1)
		for solved[day.Format(dateLayout)] {
			info.Current++
			day = day.AddDate(0, 0, -1)
		}
	}

	dates := make([]string, 0, len(solved))
	for d := range solved {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	run := 0
	var prev time.Time
	for i, d := range dates {
		t, err := time.Parse(dateLayout, d)
		if err != nil {
			continue
		}
		if i > 0 && t.Sub(prev) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > info.Longest {
			info.Longest = run
		}
		prev = t
	}

	return info
}
