package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/genepreston69/hours-of-hope-tracker-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(date time.Time, location, customer string, residents int, totalHours float64) models.ServiceEntry {
	return models.ServiceEntry{
		Date:              date,
		Location:          location,
		CustomerName:      customer,
		NumberOfResidents: residents,
		TotalHours:        totalHours,
	}
}

func TestFilterByDateRange_MonthToDate(t *testing.T) {
	now := time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)
	entries := []models.ServiceEntry{
		entry(time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), "Bluefield", "Acme", 2, 4),
		entry(time.Date(2023, 5, 31, 0, 0, 0, 0, time.UTC), "Bluefield", "Acme", 2, 4),
		entry(time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC), "Bluefield", "Acme", 2, 4),
	}

	filtered := FilterByDateRange(entries, RangeMonthToDate, now)
	assert.Len(t, filtered, 1)
}

func TestFilterByDateRange_YearToDate(t *testing.T) {
	now := time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)
	entries := []models.ServiceEntry{
		entry(time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC), "Bluefield", "Acme", 2, 4),
		entry(time.Date(2022, 12, 31, 0, 0, 0, 0, time.UTC), "Bluefield", "Acme", 2, 4),
	}

	filtered := FilterByDateRange(entries, RangeYearToDate, now)
	assert.Len(t, filtered, 1)
}

func TestFilterByDateRange_UnknownFilterFallsBackToYearToDate(t *testing.T) {
	now := time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)
	entries := []models.ServiceEntry{
		entry(time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC), "Bluefield", "Acme", 2, 4),
		entry(time.Date(2022, 12, 31, 0, 0, 0, 0, time.UTC), "Bluefield", "Acme", 2, 4),
	}

	filtered := FilterByDateRange(entries, "bogus", now)
	assert.Len(t, filtered, 1)
}

func TestAverageHoursPerResident_GuardsZero(t *testing.T) {
	assert.Equal(t, 0.0, AverageHoursPerResident(10, 0))
	assert.Equal(t, 2.5, AverageHoursPerResident(10, 4))
}

func TestGroupByKey_Sums(t *testing.T) {
	now := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)
	entries := []models.ServiceEntry{
		entry(now, "Bluefield", "Acme", 2, 4),
		entry(now, "Bluefield", "Acme", 3, 6),
		entry(now, "Bluefield", "Widget", 1, 1),
	}

	groups := GroupByKey(entries, func(e models.ServiceEntry) string { return e.CustomerName })
	require.Len(t, groups, 2)
	assert.Equal(t, "Acme", groups[0].Key)
	assert.Equal(t, 10.0, groups[0].TotalHours)
	assert.Equal(t, 5, groups[0].TotalResidents)
	assert.Equal(t, 2, groups[0].EntryCount)
	assert.Equal(t, 2.0, groups[0].AverageHoursPerResident)
}

func TestLocationStats_CapsAtMostRecentEntries(t *testing.T) {
	now := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)

	// More entries than the cap, all inside the year-to-date window; the
	// oldest ones beyond the cap must be dropped even though the date filter
	// would keep them.
	entries := make([]models.ServiceEntry, 0, MaxEntriesPerLocation+50)
	base := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < MaxEntriesPerLocation+50; i++ {
		entries = append(entries, entry(base.Add(time.Duration(i)*time.Hour), "Bluefield", fmt.Sprintf("c%d", i), 1, 1))
	}

	groups := LocationStats(entries, RangeYearToDate, now)
	require.Len(t, groups, 1)
	assert.Equal(t, MaxEntriesPerLocation, groups[0].EntryCount)
	assert.Equal(t, float64(MaxEntriesPerLocation), groups[0].TotalHours)
}

func TestLocationStats_CapAppliesPerLocation(t *testing.T) {
	now := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
	entries := []models.ServiceEntry{
		entry(time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), "Bluefield", "Acme", 2, 4),
		entry(time.Date(2023, 3, 2, 0, 0, 0, 0, time.UTC), "Charleston", "Acme", 1, 2),
	}

	groups := LocationStats(entries, RangeYearToDate, now)
	require.Len(t, groups, 2)
	assert.Equal(t, "Bluefield", groups[0].Key)
	assert.Equal(t, "Charleston", groups[1].Key)
}

func TestOverview(t *testing.T) {
	now := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)
	entries := []models.ServiceEntry{
		entry(time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), "Bluefield", "Acme", 2, 4),
		entry(time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), "Bluefield", "Acme", 3, 9),
	}

	stats := Overview(entries, RangeYearToDate, now)
	assert.Equal(t, 2, stats.TotalEntries)
	assert.Equal(t, 13.0, stats.TotalHours)
	assert.Equal(t, 5, stats.TotalResidents)
	assert.Equal(t, 2.6, stats.AverageHoursPerResident)

	empty := Overview(nil, RangeYearToDate, now)
	assert.Equal(t, 0.0, empty.AverageHoursPerResident)
}
