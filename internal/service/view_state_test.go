package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/academia-console-api/internal/models"
)

func testPeriod(key string) models.Period {
	return models.Period{
		Key:   key,
		Start: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
	}
}

func TestReportViewSortToggleFlipsDirection(t *testing.T) {
	view := NewReportView(models.DomainStudents)
	seq := view.BeginFetch(testPeriod("p1"), "")
	require.True(t, view.ApplyFetch(seq, nil))

	// name is the initial key, so re-selecting it flips to descending.
	view.SetSort(models.SortByName)
	result := view.Render(12)
	require.False(t, result.Ascending)

	view.SetSort(models.SortByName)
	result = view.Render(12)
	require.True(t, result.Ascending)
}

func TestReportViewNewSortKeyStartsAtDefaultDirection(t *testing.T) {
	view := NewReportView(models.DomainFinance)
	seq := view.BeginFetch(testPeriod("p1"), "")
	require.True(t, view.ApplyFetch(seq, nil))

	view.SetSort(models.SortByAmount)
	result := view.Render(10)
	require.Equal(t, models.SortByAmount, result.SortBy)
	require.False(t, result.Ascending)
}

func TestReportViewSearchChangeResetsPage(t *testing.T) {
	records := make([]models.RawRecord, 30)
	for i := range records {
		records[i] = studentRecord("stu-"+string(rune('a'+i)), "Ana", "García", "MAT-101", "Matemáticas I")
	}

	view := NewReportView(models.DomainStudents)
	seq := view.BeginFetch(testPeriod("p1"), "")
	require.True(t, view.ApplyFetch(seq, records))

	view.SetPage(2)
	require.Equal(t, 2, view.Render(12).Groups.Page)

	view.SetSearch("ana")
	require.Equal(t, 1, view.Render(12).Groups.Page)

	// Re-applying the same query keeps the page.
	view.SetPage(2)
	view.SetSearch("ana")
	require.Equal(t, 2, view.Render(12).Groups.Page)
}

func TestReportViewStaleFetchDropped(t *testing.T) {
	view := NewReportView(models.DomainStudents)

	first := view.BeginFetch(testPeriod("p1"), "")
	second := view.BeginFetch(testPeriod("p2"), "")

	fresh := []models.RawRecord{studentRecord("stu-2", "Luis", "Pérez", "FIS-201", "Física II")}
	require.True(t, view.ApplyFetch(second, fresh))

	stale := []models.RawRecord{studentRecord("stu-1", "Ana", "García", "MAT-101", "Matemáticas I")}
	require.False(t, view.ApplyFetch(first, stale))

	result := view.Render(12)
	require.Len(t, result.Groups.Items, 1)
	require.Equal(t, "stu-2", result.Groups.Items[0].OwnerID)
}

func TestReportViewPeriodChangeClearsCourseFilter(t *testing.T) {
	view := NewReportView(models.DomainStudents)

	view.BeginFetch(testPeriod("p1"), "crs-1")
	require.Equal(t, "crs-1", view.CourseID())

	view.BeginFetch(testPeriod("p2"), "crs-1")
	require.Equal(t, "", view.CourseID())

	// Same period keeps the selection.
	view.BeginFetch(testPeriod("p2"), "crs-2")
	require.Equal(t, "crs-2", view.CourseID())
}

func TestReportViewRenderPipeline(t *testing.T) {
	records := []models.RawRecord{
		studentRecord("stu-1", "Ana", "Torres", "MAT-101", "Matemáticas I"),
		studentRecord("stu-2", "Luis", "Acosta", "MAT-101", "Matemáticas I"),
		studentRecord("stu-3", "Carmen", "Díaz", "FIS-201", "Física II"),
	}

	view := NewReportView(models.DomainStudents)
	seq := view.BeginFetch(testPeriod("p1"), "")
	require.True(t, view.ApplyFetch(seq, records))

	view.SetSearch("matemáticas")
	result := view.Render(12)
	require.Len(t, result.Groups.Items, 2)
	require.Equal(t, "stu-2", result.Groups.Items[0].OwnerID)
	require.Equal(t, 2, result.TotalCount)
	require.Equal(t, 2, result.Statistics.Students.TotalStudents)
}
