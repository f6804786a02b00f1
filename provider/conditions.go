package provider

import "time"

// Conditions gates when a provider should run: birthdays, holidays,
// weekends, seasonal content. All configured checks must pass (AND logic);
// an empty Conditions always passes. Evaluation is date-only and pure, so
// the caller supplies "now".
type Conditions struct {
	// DateMatch lists exact "MM-DD" dates.
	DateMatch []string `yaml:"date_match"`
	// DateRange is an inclusive ["MM-DD", "MM-DD"] pair. A start after the
	// end wraps across new year (e.g. 12-20 through 01-10).
	DateRange []string `yaml:"date_range"`
	// DaysOfWeek uses 0=Sunday through 6=Saturday.
	DaysOfWeek []int `yaml:"days_of_week"`
	// Months uses 1=January through 12=December.
	Months []int `yaml:"months"`
}

// ShouldRun reports whether every configured condition holds at now.
func (c *Conditions) ShouldRun(now time.Time) bool {
	if c == nil {
		return true
	}
	today := now.Format("01-02")

	if len(c.DateMatch) > 0 && !contains(c.DateMatch, today) {
		return false
	}

	if len(c.DateRange) == 2 {
		start, end := c.DateRange[0], c.DateRange[1]
		if start <= end {
			if today < start || today > end {
				return false
			}
		} else if today < start && today > end { // wraparound range
			return false
		}
	}

	if len(c.DaysOfWeek) > 0 && !containsInt(c.DaysOfWeek, int(now.Weekday())) {
		return false
	}

	if len(c.Months) > 0 && !containsInt(c.Months, int(now.Month())) {
		return false
	}

	return true
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func containsInt(list []int, v int) bool {
	for _, n := range list {
		if n == v {
			return true
		}
	}
	return false
}
