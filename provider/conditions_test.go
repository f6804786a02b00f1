package provider

import (
	"testing"
	"time"
)

func day(month time.Month, d int) time.Time {
	return time.Date(2026, month, d, 12, 0, 0, 0, time.UTC)
}

func TestConditionsShouldRun(t *testing.T) {
	cases := []struct {
		name string
		cond *Conditions
		now  time.Time
		want bool
	}{
		{"nil always runs", nil, day(time.March, 15), true},
		{"empty always runs", &Conditions{}, day(time.March, 15), true},

		{"date match hit", &Conditions{DateMatch: []string{"03-15", "07-04"}}, day(time.March, 15), true},
		{"date match miss", &Conditions{DateMatch: []string{"07-04"}}, day(time.March, 15), false},

		{"range inside", &Conditions{DateRange: []string{"03-01", "03-31"}}, day(time.March, 15), true},
		{"range start inclusive", &Conditions{DateRange: []string{"03-15", "03-31"}}, day(time.March, 15), true},
		{"range end inclusive", &Conditions{DateRange: []string{"03-01", "03-15"}}, day(time.March, 15), true},
		{"range outside", &Conditions{DateRange: []string{"04-01", "04-30"}}, day(time.March, 15), false},

		{"wraparound before new year", &Conditions{DateRange: []string{"12-20", "01-10"}}, day(time.December, 25), true},
		{"wraparound after new year", &Conditions{DateRange: []string{"12-20", "01-10"}}, day(time.January, 5), true},
		{"wraparound outside", &Conditions{DateRange: []string{"12-20", "01-10"}}, day(time.June, 1), false},

		// 2026-03-15 is a Sunday.
		{"weekday hit", &Conditions{DaysOfWeek: []int{0, 6}}, day(time.March, 15), true},
		{"weekday miss", &Conditions{DaysOfWeek: []int{1, 2, 3, 4, 5}}, day(time.March, 15), false},

		{"month hit", &Conditions{Months: []int{3, 4}}, day(time.March, 15), true},
		{"month miss", &Conditions{Months: []int{12}}, day(time.March, 15), false},

		{"all must pass", &Conditions{Months: []int{3}, DaysOfWeek: []int{1}}, day(time.March, 15), false},
		{"all pass together", &Conditions{Months: []int{3}, DaysOfWeek: []int{0}, DateRange: []string{"03-01", "03-31"}}, day(time.March, 15), true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.cond.ShouldRun(c.now); got != c.want {
				t.Fatalf("ShouldRun(%s) = %v, want %v", c.now.Format("2006-01-02"), got, c.want)
			}
		})
	}
}
