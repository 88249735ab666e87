// Package heatmap projects completion history onto a year-long calendar
// grid of week columns, GitHub-contribution style.
package heatmap

import (
	"time"

	"github.com/bluestock/dailypuzzle/internal/store"
)

const dateLayout = "2006-01-02"

// Day is one populated cell of the grid.
type Day struct {
	Date      string `json:"date"`
	Intensity int    `json:"intensity"` // 0..4
	IsToday   bool   `json:"isToday"`
	IsFuture  bool   `json:"isFuture"`
}

// Week is one column of seven slots; nil entries pad the first and last
// columns so rows align to the day of week (Sunday first).
type Week struct {
	Days [7]*Day `json:"days"`
}

// Month marks the week column where a calendar month first appears.
type Month struct {
	Name      string `json:"name"`
	WeekIndex int    `json:"weekIndex"`
}

// Projection is the drawable grid.
type Projection struct {
	Weeks  []Week  `json:"weeks"`
	Months []Month `json:"months"`
}

var monthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Intensity buckets a day's completion quality: unsolved 0, perfect score
// 4, otherwise the difficulty clamped to 1..3 so a corrupt record can
// never leave the 0..4 range renderers index into.
func Intensity(c store.Completion, ok bool) int {
	switch {
	case !ok || !c.Solved:
		return 0
	case c.Score >= 400:
		return 4
	case c.Difficulty < 1:
		return 1
	case c.Difficulty > 3:
		return 3
	default:
		return c.Difficulty
	}
}

// DaysInYear applies the Gregorian leap rule.
func DaysInYear(year int) int {
	if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
		return 366
	}
	return 365
}

// Project builds the grid for today's calendar year.
func Project(history []store.Completion, today time.Time) Projection {
	byDate := make(map[string]store.Completion, len(history))
	for _, c := range history {
		byDate[c.Date] = c
	}

	year := today.Year()
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	todayStr := today.Format(dateLayout)

	var weeks []Week
	var current Week
	slot := int(start.Weekday()) // leading nil padding before Jan 1

	for i := 0; i < DaysInYear(year); i++ {
		date := start.AddDate(0, 0, i)
		dateStr := date.Format(dateLayout)
		c, ok := byDate[dateStr]
		current.Days[slot] = &Day{
			Date:      dateStr,
			Intensity: Intensity(c, ok),
			IsToday:   dateStr == todayStr,
			IsFuture:  dateStr > todayStr,
		}
		slot++
		if slot == 7 {
			weeks = append(weeks, current)
			current = Week{}
			slot = 0
		}
	}
	if slot > 0 {
		weeks = append(weeks, current) // trailing slots stay nil
	}

	var months []Month
	lastMonth := -1
	for weekIndex, week := range weeks {
		for _, d := range week.Days {
			if d == nil {
				continue
			}
			t, _ := time.Parse(dateLayout, d.Date)
			m := int(t.Month()) - 1
			if m != lastMonth {
				months = append(months, Month{Name: monthNames[m], WeekIndex: weekIndex})
				lastMonth = m
			}
			break
		}
	}

	return Projection{Weeks: weeks, Months: months}
}
