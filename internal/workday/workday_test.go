package workday_test

import (
	"testing"
	"time"

	"clockify-balance/internal/workday"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCountWeekdays(t *testing.T) {
	// 2025-08-01 is a Friday; 2025-08-04 a Monday.
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"single weekday", date(2025, 8, 4), date(2025, 8, 4), 1},
		{"single saturday", date(2025, 8, 2), date(2025, 8, 2), 0},
		{"single sunday", date(2025, 8, 3), date(2025, 8, 3), 0},
		{"monday to friday", date(2025, 8, 4), date(2025, 8, 8), 5},
		{"full week from monday", date(2025, 8, 4), date(2025, 8, 10), 5},
		{"full week from wednesday", date(2025, 8, 6), date(2025, 8, 12), 5},
		{"full week from saturday", date(2025, 8, 2), date(2025, 8, 8), 5},
		{"weekend only", date(2025, 8, 2), date(2025, 8, 3), 0},
		{"inverted range", date(2025, 8, 8), date(2025, 8, 4), 0},
		{"two weeks", date(2025, 8, 4), date(2025, 8, 17), 10},
		{"month boundary", date(2025, 7, 31), date(2025, 8, 1), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := workday.CountWeekdays(tt.start, tt.end)
			if got != tt.want {
				t.Errorf("CountWeekdays(%s, %s) = %d, want %d",
					tt.start.Format("2006-01-02"), tt.end.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestCountWeekdaysIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2025, 8, 4, 23, 59, 59, 0, time.UTC)
	end := time.Date(2025, 8, 8, 0, 0, 1, 0, time.UTC)
	if got := workday.CountWeekdays(start, end); got != 5 {
		t.Errorf("CountWeekdays with time-of-day = %d, want 5", got)
	}
}

func TestCountWeekdaysMonotonicInEnd(t *testing.T) {
	start := date(2025, 8, 4)
	prev := 0
	for i := 0; i < 30; i++ {
		end := start.AddDate(0, 0, i)
		got := workday.CountWeekdays(start, end)
		if got < prev {
			t.Fatalf("count decreased from %d to %d at end=%s", prev, got, end.Format("2006-01-02"))
		}
		prev = got
	}
}

func TestIsWeekday(t *testing.T) {
	if !workday.IsWeekday(date(2025, 8, 4)) {
		t.Error("monday should be a weekday")
	}
	if !workday.IsWeekday(date(2025, 8, 8)) {
		t.Error("friday should be a weekday")
	}
	if workday.IsWeekday(date(2025, 8, 2)) {
		t.Error("saturday should not be a weekday")
	}
	if workday.IsWeekday(date(2025, 8, 3)) {
		t.Error("sunday should not be a weekday")
	}
}

func TestDayBoundaries(t *testing.T) {
	ts := time.Date(2025, 8, 4, 13, 45, 12, 999, time.UTC)
	start := workday.StartOfDay(ts)
	end := workday.EndOfDay(ts)
	if !start.Equal(date(2025, 8, 4)) {
		t.Errorf("StartOfDay = %v", start)
	}
	if !end.Equal(time.Date(2025, 8, 4, 23, 59, 59, 0, time.UTC)) {
		t.Errorf("EndOfDay = %v", end)
	}
}
