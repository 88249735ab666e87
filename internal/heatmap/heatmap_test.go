package heatmap

import (
	"testing"
	"time"

	"github.com/bluestock/dailypuzzle/internal/store"
)

var today = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestProjectCellCounts(t *testing.T) {
	for _, year := range []int{2024, 2025, 2100} {
		ref := time.Date(year, 6, 15, 0, 0, 0, 0, time.UTC)
		proj := Project(nil, ref)
		total := DaysInYear(year)

		if len(proj.Weeks)*7 < total {
			t.Errorf("%d: %d week slots for %d days", year, len(proj.Weeks)*7, total)
		}

		populated := 0
		for _, w := range proj.Weeks {
			for _, d := range w.Days {
				if d != nil {
					populated++
				}
			}
		}
		if populated != total {
			t.Errorf("%d: %d populated cells, want %d", year, populated, total)
		}
	}
}

func TestDaysInYear(t *testing.T) {
	tests := map[int]int{
		2024: 366, // divisible by 4
		2025: 365,
		2100: 365, // century, not divisible by 400
		2000: 366, // divisible by 400
	}
	for year, want := range tests {
		if got := DaysInYear(year); got != want {
			t.Errorf("DaysInYear(%d) = %d, want %d", year, got, want)
		}
	}
}

func TestProjectAlignment(t *testing.T) {
	// 2025-01-01 is a Wednesday: the first column has 3 leading nils and
	// Jan 1 sits in the Wednesday slot.
	proj := Project(nil, today)
	first := proj.Weeks[0]

	for i := 0; i < 3; i++ {
		if first.Days[i] != nil {
			t.Errorf("slot %d should be padding", i)
		}
	}
	if first.Days[3] == nil || first.Days[3].Date != "2025-01-01" {
		t.Fatalf("Jan 1 not in Wednesday slot: %+v", first.Days[3])
	}
}

func TestProjectIntensity(t *testing.T) {
	history := []store.Completion{
		{Date: "2025-01-06", Solved: true, Score: 120, Difficulty: 1},
		{Date: "2025-01-07", Solved: true, Score: 250, Difficulty: 2},
		{Date: "2025-01-10", Solved: true, Score: 310, Difficulty: 3},
		{Date: "2025-01-11", Solved: true, Score: 420, Difficulty: 3},
		{Date: "2025-01-12", Solved: false, Score: 0, Difficulty: 2},
	}
	proj := Project(history, today)

	want := map[string]int{
		"2025-01-06": 1,
		"2025-01-07": 2,
		"2025-01-10": 3,
		"2025-01-11": 4, // perfect score outranks difficulty
		"2025-01-12": 0, // unsolved record
		"2025-01-13": 0, // no record
	}

	got := map[string]int{}
	for _, w := range proj.Weeks {
		for _, d := range w.Days {
			if d == nil {
				continue
			}
			if _, interested := want[d.Date]; interested {
				got[d.Date] = d.Intensity
			}
		}
	}

	for date, intensity := range want {
		if got[date] != intensity {
			t.Errorf("%s: intensity %d, want %d", date, got[date], intensity)
		}
	}
}

func TestIntensityClampsDifficulty(t *testing.T) {
	// Out-of-range difficulties from a corrupt record stay within 0..4.
	if got := Intensity(store.Completion{Solved: true, Score: 100, Difficulty: 9}, true); got != 3 {
		t.Errorf("difficulty 9: intensity %d, want 3", got)
	}
	if got := Intensity(store.Completion{Solved: true, Score: 100, Difficulty: 0}, true); got != 1 {
		t.Errorf("difficulty 0: intensity %d, want 1", got)
	}
	if got := Intensity(store.Completion{Solved: true, Score: 100, Difficulty: -2}, true); got != 1 {
		t.Errorf("difficulty -2: intensity %d, want 1", got)
	}
}

func TestProjectTodayAndFuture(t *testing.T) {
	proj := Project(nil, today)
	todayStr := today.Format("2006-01-02")

	for _, w := range proj.Weeks {
		for _, d := range w.Days {
			if d == nil {
				continue
			}
			if d.IsToday != (d.Date == todayStr) {
				t.Errorf("%s: isToday = %v", d.Date, d.IsToday)
			}
			if d.IsFuture != (d.Date > todayStr) {
				t.Errorf("%s: isFuture = %v", d.Date, d.IsFuture)
			}
		}
	}
}

func TestProjectMonths(t *testing.T) {
	proj := Project(nil, today)

	if len(proj.Months) != 12 {
		t.Fatalf("%d month labels, want 12", len(proj.Months))
	}
	if proj.Months[0].Name != "Jan" || proj.Months[0].WeekIndex != 0 {
		t.Errorf("first label %+v, want Jan at week 0", proj.Months[0])
	}
	for i := 1; i < len(proj.Months); i++ {
		if proj.Months[i].WeekIndex <= proj.Months[i-1].WeekIndex {
			t.Errorf("label %d (%s) does not advance: %d <= %d",
				i, proj.Months[i].Name, proj.Months[i].WeekIndex, proj.Months[i-1].WeekIndex)
		}
		if proj.Months[i].Name == proj.Months[i-1].Name {
			t.Errorf("consecutive duplicate month %s", proj.Months[i].Name)
		}
	}
}
