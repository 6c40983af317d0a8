package service

import (
	"testing"
	"time"

	"careerbridge.org/jobfairhub/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRegistration(t *testing.T, years int, industry, availability string, prefs []string, createdAt time.Time) entity.Registration {
	t.Helper()
	reg := entity.Registration{
		FullName:        "Test Person",
		Email:           "test@example.com",
		Phone:           "5551234567",
		YearsExperience: years,
		Industry:        industry,
		JobTitle:        "Dev",
		Availability:    availability,
		CreatedAt:       createdAt,
	}
	require.NoError(t, reg.SetPreferences(prefs))
	return reg
}

func TestExperienceBracketBoundaries(t *testing.T) {
	cases := map[int]string{
		0:  "Entry Level",
		1:  "1-2 years",
		2:  "1-2 years",
		3:  "3-5 years",
		4:  "3-5 years",
		5:  "3-5 years",
		6:  "5+ years",
		50: "5+ years",
	}
	for years, want := range cases {
		assert.Equal(t, want, ExperienceBracket(years), "years=%d", years)
	}
}

func TestAggregateBucketSumsMatchTotal(t *testing.T) {
	day := time.Date(2024, 10, 17, 9, 0, 0, 0, time.UTC)
	regs := []entity.Registration{
		makeRegistration(t, 0, "Technology", "Immediately", []string{"In-person job fairs", "Resume workshops"}, day),
		makeRegistration(t, 3, "Technology", "Within 2 weeks", []string{"In-person job fairs"}, day),
		makeRegistration(t, 7, "Healthcare", "Immediately", []string{"Virtual career events"}, day.AddDate(0, 0, 1)),
	}

	stats := Aggregate(regs)

	assert.Equal(t, 3, stats.Total)

	sum := func(buckets []BucketCount) int {
		total := 0
		for _, b := range buckets {
			total += b.Count
		}
		return total
	}

	assert.Equal(t, stats.Total, sum(stats.ExperienceBrackets))
	assert.Equal(t, stats.Total, sum(stats.Industries))
	assert.Equal(t, stats.Total, sum(stats.Availability))

	// One record carries two preferences, so this sum exceeds the total.
	assert.Equal(t, 4, sum(stats.EventPreferences))
}

func TestAggregateExperienceBracketsFixedOrder(t *testing.T) {
	stats := Aggregate(nil)

	require.Len(t, stats.ExperienceBrackets, 4)
	assert.Equal(t, "Entry Level", stats.ExperienceBrackets[0].Label)
	assert.Equal(t, "1-2 years", stats.ExperienceBrackets[1].Label)
	assert.Equal(t, "3-5 years", stats.ExperienceBrackets[2].Label)
	assert.Equal(t, "5+ years", stats.ExperienceBrackets[3].Label)
	assert.Equal(t, 0, stats.Total)
}

func TestAggregateIndustriesKeepFirstSeenOrder(t *testing.T) {
	day := time.Now()
	regs := []entity.Registration{
		makeRegistration(t, 1, "Retail", "Immediately", []string{"In-person job fairs"}, day),
		makeRegistration(t, 2, "Finance", "Immediately", []string{"In-person job fairs"}, day),
		makeRegistration(t, 3, "Retail", "Immediately", []string{"In-person job fairs"}, day),
	}

	stats := Aggregate(regs)

	require.Len(t, stats.Industries, 2)
	assert.Equal(t, BucketCount{Label: "Retail", Count: 2}, stats.Industries[0])
	assert.Equal(t, BucketCount{Label: "Finance", Count: 1}, stats.Industries[1])
}

func TestAggregateTrendSortedAscendingAndCollapsed(t *testing.T) {
	d1 := time.Date(2024, 10, 17, 23, 59, 0, 0, time.UTC)
	d2 := time.Date(2024, 10, 15, 8, 0, 0, 0, time.UTC)
	prefs := []string{"In-person job fairs"}
	regs := []entity.Registration{
		makeRegistration(t, 1, "Technology", "Immediately", prefs, d1),
		makeRegistration(t, 2, "Technology", "Immediately", prefs, d2),
		makeRegistration(t, 3, "Technology", "Immediately", prefs, d1.Add(-2*time.Hour)),
	}

	stats := Aggregate(regs)

	require.Len(t, stats.RegistrationTrend, 2)
	assert.Equal(t, DateCount{Date: "2024-10-15", Count: 1}, stats.RegistrationTrend[0])
	assert.Equal(t, DateCount{Date: "2024-10-17", Count: 2}, stats.RegistrationTrend[1])

	// Strictly ascending, no duplicate dates.
	for i := 1; i < len(stats.RegistrationTrend); i++ {
		assert.Less(t, stats.RegistrationTrend[i-1].Date, stats.RegistrationTrend[i].Date)
	}
}
