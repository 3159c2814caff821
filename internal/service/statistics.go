package service

import (
	"math"
	"strconv"

	"github.com/noah-isme/academia-console-api/internal/models"
)

const passingScore = 7.0

// ComputeStatistics derives the summary-card numbers for the current
// filtered record set. It is a pure function: no state is carried
// between calls, and the same input always yields the same snapshot.
func ComputeStatistics(records []models.RawRecord, domain models.ReportDomain) models.StatisticsSnapshot {
	switch domain {
	case models.DomainFinance:
		return models.StatisticsSnapshot{Finance: financeStatistics(records)}
	case models.DomainCourses:
		return models.StatisticsSnapshot{Courses: courseStatistics(records)}
	default:
		return models.StatisticsSnapshot{Students: studentStatistics(records)}
	}
}

// studentStatistics counts distinct students per outcome. One student
// with several enrollment rows contributes once to each outcome bucket
// they appear in.
func studentStatistics(records []models.RawRecord) *models.StudentStatistics {
	students := map[string]struct{}{}
	approved := map[string]struct{}{}
	inProgress := map[string]struct{}{}
	failed := map[string]struct{}{}

	for _, record := range records {
		students[record.OwnerID] = struct{}{}
		switch status := record.NormalizedStatus(); {
		case status == models.StatusAprobado || status == models.StatusGraduado:
			approved[record.OwnerID] = struct{}{}
		case record.Score != nil && *record.Score >= passingScore:
			approved[record.OwnerID] = struct{}{}
		case status == models.StatusReprobado:
			failed[record.OwnerID] = struct{}{}
		case status == models.StatusInscrito || status == models.StatusActivo || status == models.StatusAusente:
			inProgress[record.OwnerID] = struct{}{}
		}
	}

	stats := &models.StudentStatistics{
		TotalStudents: len(students),
		Approved:      len(approved),
		InProgress:    len(inProgress),
		Failed:        len(failed),
		ApprovalRate:  "0",
	}
	if stats.TotalStudents > 0 {
		rate := float64(stats.Approved) / float64(stats.TotalStudents) * 100
		stats.ApprovalRate = strconv.FormatFloat(rate, 'f', 1, 64)
	}
	return stats
}

func financeStatistics(records []models.RawRecord) *models.FinanceStatistics {
	stats := &models.FinanceStatistics{TotalRecords: len(records)}
	for _, record := range records {
		stats.IncomeTotal += record.AmountValue()
		switch record.NormalizedStatus() {
		case models.StatusVerificado:
			stats.Verified++
		case models.StatusPendiente, models.StatusPagado:
			stats.Pending++
		}
	}
	if stats.TotalRecords > 0 {
		stats.AverageAmount = stats.IncomeTotal / float64(stats.TotalRecords)
	}
	return stats
}

func courseStatistics(records []models.RawRecord) *models.CourseStatistics {
	stats := &models.CourseStatistics{TotalCourses: len(records)}
	capacityTotal := 0
	for _, record := range records {
		capacityTotal += record.Capacity
		switch record.NormalizedStatus() {
		case models.StatusActivo:
			stats.Active++
		case models.StatusFinalizado:
			stats.Finalized++
		case models.StatusCancelado:
			stats.Cancelled++
		}
	}
	if stats.TotalCourses > 0 {
		stats.AverageCapacity = int(math.Round(float64(capacityTotal) / float64(stats.TotalCourses)))
	}
	return stats
}
