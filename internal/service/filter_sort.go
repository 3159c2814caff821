package service

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/noah-isme/academia-console-api/internal/models"
)

// newNameCollator builds a locale-aware, case-insensitive comparator
// for person and course names. Collators carry internal buffers, so one
// is created per sort pass instead of being shared.
func newNameCollator() *collate.Collator {
	return collate.New(language.Spanish, collate.IgnoreCase)
}

// FilterRecords keeps records whose display text contains the query as
// a case-insensitive substring. An empty or whitespace-only query is a
// no-op and returns the input unchanged, order preserved.
func FilterRecords(records []models.RawRecord, query string) []models.RawRecord {
	query = strings.TrimSpace(query)
	if query == "" {
		return records
	}
	needle := strings.ToLower(query)
	filtered := make([]models.RawRecord, 0, len(records))
	for _, record := range records {
		if strings.Contains(strings.ToLower(record.FullName()), needle) ||
			strings.Contains(strings.ToLower(record.CourseName), needle) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// FilterGroups keeps groups whose owner name, or any nested sub-record
// course name, contains the query case-insensitively.
func FilterGroups(groups []models.ReportGroup, query string) []models.ReportGroup {
	query = strings.TrimSpace(query)
	if query == "" {
		return groups
	}
	needle := strings.ToLower(query)
	filtered := make([]models.ReportGroup, 0, len(groups))
	for _, group := range groups {
		if groupMatches(group, needle) {
			filtered = append(filtered, group)
		}
	}
	return filtered
}

func groupMatches(group models.ReportGroup, needle string) bool {
	if strings.Contains(strings.ToLower(group.FullName()), needle) {
		return true
	}
	for _, record := range group.Records {
		if strings.Contains(strings.ToLower(record.CourseName), needle) {
			return true
		}
	}
	return false
}

// SortRecords orders a copy of the collection by the selected key. The
// underlying sort is stable; ties keep their incoming order.
func SortRecords(records []models.RawRecord, key models.SortKey, ascending bool) []models.RawRecord {
	sorted := make([]models.RawRecord, len(records))
	copy(sorted, records)

	less := recordLess(key)
	sort.SliceStable(sorted, func(i, j int) bool {
		if ascending {
			return less(sorted[i], sorted[j])
		}
		return less(sorted[j], sorted[i])
	})
	return sorted
}

func recordLess(key models.SortKey) func(a, b models.RawRecord) bool {
	switch key {
	case models.SortByDate:
		return func(a, b models.RawRecord) bool {
			return a.Timestamp().Before(b.Timestamp())
		}
	case models.SortByAmount:
		return func(a, b models.RawRecord) bool {
			return a.AmountValue() < b.AmountValue()
		}
	case models.SortByCapacity:
		return func(a, b models.RawRecord) bool {
			return a.Capacity < b.Capacity
		}
	default:
		collator := newNameCollator()
		return func(a, b models.RawRecord) bool {
			return collator.CompareString(a.SortName(), b.SortName()) < 0
		}
	}
}
