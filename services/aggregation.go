// services/aggregation.go
package services

import (
	"sort"
	"time"

	"github.com/genepreston69/hours-of-hope-tracker-sub000/models"
	"github.com/genepreston69/hours-of-hope-tracker-sub000/utils"
)

// MaxEntriesPerLocation bounds per-location recomputation: only each
// location's most-recent entries are considered before the date filter is
// applied. A location with a deeper history can therefore under-report
// inside the selected window. Deliberate trade-off, pending a product
// decision to lift it.
const MaxEntriesPerLocation = 1000

const (
	RangeMonthToDate = "month"
	RangeYearToDate  = "year"
)

type GroupStats struct {
	Key                     string  `json:"key"`
	TotalHours              float64 `json:"totalHours"`
	TotalResidents          int     `json:"totalResidents"`
	EntryCount              int     `json:"entryCount"`
	AverageHoursPerResident float64 `json:"averageHoursPerResident"`
}

type OverviewStats struct {
	TotalEntries            int     `json:"totalEntries"`
	TotalHours              float64 `json:"totalHours"`
	TotalResidents          int     `json:"totalResidents"`
	AverageHoursPerResident float64 `json:"averageHoursPerResident"`
}

// FilterByDateRange keeps entries on or after the window start computed
// against now. Unknown filter values fall back to year-to-date.
func FilterByDateRange(entries []models.ServiceEntry, rangeFilter string, now time.Time) []models.ServiceEntry {
	var cutoff time.Time
	switch rangeFilter {
	case RangeMonthToDate:
		cutoff = utils.BeginningOfMonth(now)
	default:
		cutoff = utils.BeginningOfYear(now)
	}

	filtered := make([]models.ServiceEntry, 0, len(entries))
	for _, e := range entries {
		if !e.Date.Before(cutoff) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// AverageHoursPerResident guards the zero-residents case instead of
// dividing by zero.
func AverageHoursPerResident(totalHours float64, totalResidents int) float64 {
	if totalResidents <= 0 {
		return 0
	}
	return totalHours / float64(totalResidents)
}

// GroupByKey partitions entries by keyFn and sums hours, residents, and
// entry counts per group. Groups come back sorted by total hours descending,
// then key for a stable order.
func GroupByKey(entries []models.ServiceEntry, keyFn func(models.ServiceEntry) string) []GroupStats {
	byKey := map[string]*GroupStats{}
	for _, e := range entries {
		key := keyFn(e)
		stats, ok := byKey[key]
		if !ok {
			stats = &GroupStats{Key: key}
			byKey[key] = stats
		}
		stats.TotalHours += e.TotalHours
		stats.TotalResidents += e.NumberOfResidents
		stats.EntryCount++
	}

	groups := make([]GroupStats, 0, len(byKey))
	for _, stats := range byKey {
		stats.AverageHoursPerResident = AverageHoursPerResident(stats.TotalHours, stats.TotalResidents)
		groups = append(groups, *stats)
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].TotalHours != groups[j].TotalHours {
			return groups[i].TotalHours > groups[j].TotalHours
		}
		return groups[i].Key < groups[j].Key
	})
	return groups
}

// LocationStats aggregates per facility location. Each location's entries
// are capped to the MaxEntriesPerLocation most recent before the date
// filter runs.
func LocationStats(entries []models.ServiceEntry, rangeFilter string, now time.Time) []GroupStats {
	byLocation := map[string][]models.ServiceEntry{}
	for _, e := range entries {
		byLocation[e.Location] = append(byLocation[e.Location], e)
	}

	capped := make([]models.ServiceEntry, 0, len(entries))
	for _, locEntries := range byLocation {
		sort.Slice(locEntries, func(i, j int) bool {
			if !locEntries[i].Date.Equal(locEntries[j].Date) {
				return locEntries[i].Date.After(locEntries[j].Date)
			}
			return locEntries[i].CreatedAt.After(locEntries[j].CreatedAt)
		})
		if len(locEntries) > MaxEntriesPerLocation {
			locEntries = locEntries[:MaxEntriesPerLocation]
		}
		capped = append(capped, locEntries...)
	}

	return GroupByKey(FilterByDateRange(capped, rangeFilter, now), func(e models.ServiceEntry) string {
		return e.Location
	})
}

// CustomerStats aggregates per customer name over the date window.
func CustomerStats(entries []models.ServiceEntry, rangeFilter string, now time.Time) []GroupStats {
	return GroupByKey(FilterByDateRange(entries, rangeFilter, now), func(e models.ServiceEntry) string {
		return e.CustomerName
	})
}

// Overview sums the whole filtered collection.
func Overview(entries []models.ServiceEntry, rangeFilter string, now time.Time) OverviewStats {
	filtered := FilterByDateRange(entries, rangeFilter, now)
	stats := OverviewStats{TotalEntries: len(filtered)}
	for _, e := range filtered {
		stats.TotalHours += e.TotalHours
		stats.TotalResidents += e.NumberOfResidents
	}
	stats.AverageHoursPerResident = AverageHoursPerResident(stats.TotalHours, stats.TotalResidents)
	return stats
}
