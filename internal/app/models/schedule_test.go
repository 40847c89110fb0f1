package models

import (
	"testing"
	"time"
)

func TestWeekdayOf(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		// 2026-02-09 is a Monday
		{name: "monday", date: time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC), want: 0},
		{name: "tuesday", date: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), want: 1},
		{name: "wednesday", date: time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC), want: 2},
		{name: "thursday", date: time.Date(2026, 2, 12, 0, 0, 0, 0, time.UTC), want: 3},
		{name: "friday", date: time.Date(2026, 2, 13, 0, 0, 0, 0, time.UTC), want: 4},
		{name: "saturday", date: time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC), want: 5},
		{name: "sunday", date: time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC), want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekdayOf(tt.date); got != tt.want {
				t.Errorf("WeekdayOf(%s) = %d, want %d", tt.date.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestDayNames(t *testing.T) {
	want := [7]string{"Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu", "Minggu"}
	if DayNames != want {
		t.Errorf("DayNames = %v, want %v", DayNames, want)
	}
}
