package service

import (
	"sort"

	"careerbridge.org/jobfairhub/internal/entity"
)

// Stats is the set of breakdowns the admin dashboard charts render from.
// Everything is a plain count; it is recomputed from the full record set on
// every request.
type Stats struct {
	Total              int           `json:"total"`
	ExperienceBrackets []BucketCount `json:"experience_brackets"`
	Industries         []BucketCount `json:"industries"`
	Availability       []BucketCount `json:"availability"`
	EventPreferences   []BucketCount `json:"event_preferences"`
	RegistrationTrend  []DateCount   `json:"registration_trend"`
}

type BucketCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type DateCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

var experienceBrackets = []string{"Entry Level", "1-2 years", "3-5 years", "5+ years"}

// ExperienceBracket buckets a years_experience value: {0}, {1,2}, {3,4,5}, {6+}.
func ExperienceBracket(years int) string {
	switch {
	case years <= 0:
		return experienceBrackets[0]
	case years <= 2:
		return experienceBrackets[1]
	case years <= 5:
		return experienceBrackets[2]
	default:
		return experienceBrackets[3]
	}
}

// Aggregate derives all dashboard breakdowns from the retrieved record set.
func Aggregate(regs []entity.Registration) *Stats {
	stats := &Stats{Total: len(regs)}

	experience := make(map[string]int)
	for _, reg := range regs {
		experience[ExperienceBracket(reg.YearsExperience)]++
	}
	// Fixed bracket order, zero-count brackets included.
	for _, label := range experienceBrackets {
		stats.ExperienceBrackets = append(stats.ExperienceBrackets, BucketCount{Label: label, Count: experience[label]})
	}

	stats.Industries = countBy(regs, func(r entity.Registration) []string {
		return []string{r.Industry}
	})
	stats.Availability = countBy(regs, func(r entity.Registration) []string {
		return []string{r.Availability}
	})
	// Each preference in a record's set counts toward its own bucket, so the
	// sum here can exceed the total record count.
	stats.EventPreferences = countBy(regs, func(r entity.Registration) []string {
		return r.Preferences()
	})

	stats.RegistrationTrend = trend(regs)

	return stats
}

// countBy tallies values in first-seen order so chart buckets stay stable
// across renders of the same record set.
func countBy(regs []entity.Registration, keys func(entity.Registration) []string) []BucketCount {
	counts := make(map[string]int)
	var order []string

	for _, reg := range regs {
		for _, key := range keys(reg) {
			if _, seen := counts[key]; !seen {
				order = append(order, key)
			}
			counts[key]++
		}
	}

	buckets := make([]BucketCount, 0, len(order))
	for _, key := range order {
		buckets = append(buckets, BucketCount{Label: key, Count: counts[key]})
	}
	return buckets
}

// trend groups registrations by calendar date (no time of day) and returns
// one bucket per date, sorted ascending for time-series display.
func trend(regs []entity.Registration) []DateCount {
	counts := make(map[string]int)
	for _, reg := range regs {
		counts[reg.CreatedAt.Format("2006-01-02")]++
	}

	dates := make([]string, 0, len(counts))
	for date := range counts {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	series := make([]DateCount, 0, len(dates))
	for _, date := range dates {
		series = append(series, DateCount{Date: date, Count: counts[date]})
	}
	return series
}
