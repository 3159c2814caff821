package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/academia-console-api/internal/models"
)

func studentRecord(ownerID, first, last, courseCode, courseName string) models.RawRecord {
	return models.RawRecord{
		Kind:       models.KindStudent,
		OwnerID:    ownerID,
		FirstName:  first,
		LastName:   last,
		CourseID:   "crs-" + courseCode,
		CourseCode: courseCode,
		CourseName: courseName,
	}
}

func TestFilterRecordsEmptyQueryReturnsInputUnchanged(t *testing.T) {
	records := []models.RawRecord{
		studentRecord("stu-1", "Ana", "García", "MAT-101", "Matemáticas I"),
		studentRecord("stu-2", "Luis", "Pérez", "FIS-201", "Física II"),
	}

	for _, query := range []string{"", "   ", "\t"} {
		filtered := FilterRecords(records, query)
		require.Len(t, filtered, 2)
		require.Equal(t, records[0].OwnerID, filtered[0].OwnerID)
		require.Equal(t, records[1].OwnerID, filtered[1].OwnerID)
	}
}

func TestFilterRecordsMatchesNameAndCourse(t *testing.T) {
	records := []models.RawRecord{
		studentRecord("stu-1", "Ana", "García", "MAT-101", "Matemáticas I"),
		studentRecord("stu-2", "Luis", "Pérez", "FIS-201", "Física II"),
		studentRecord("stu-3", "Carmen", "Díaz", "MAT-101", "Matemáticas I"),
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "by first name", query: "ana", want: []string{"stu-1"}},
		{name: "by last name mixed case", query: "PÉREZ", want: []string{"stu-2"}},
		{name: "by course name", query: "matemáticas", want: []string{"stu-1", "stu-3"}},
		{name: "no match", query: "química", want: nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			filtered := FilterRecords(records, tc.query)
			ids := make([]string, 0, len(filtered))
			for _, record := range filtered {
				ids = append(ids, record.OwnerID)
			}
			if tc.want == nil {
				require.Empty(t, ids)
				return
			}
			require.Equal(t, tc.want, ids)
		})
	}
}

func TestFilterRecordsPrefixQueryPreservesOrder(t *testing.T) {
	records := []models.RawRecord{
		studentRecord("stu-1", "Maria", "Lopez", "MAT-101", "Matemáticas I"),
		studentRecord("stu-2", "Marco", "Diaz", "FIS-201", "Física II"),
		studentRecord("stu-3", "Ana", "Ruiz", "QUI-301", "Química III"),
	}

	filtered := FilterRecords(records, "mar")
	require.Len(t, filtered, 2)
	require.Equal(t, "stu-1", filtered[0].OwnerID)
	require.Equal(t, "stu-2", filtered[1].OwnerID)
}

func TestSortRecordsByNameUsesLastNameFirst(t *testing.T) {
	records := []models.RawRecord{
		studentRecord("stu-1", "Zoe", "Álvarez", "MAT-101", "Matemáticas I"),
		studentRecord("stu-2", "Ana", "Torres", "MAT-101", "Matemáticas I"),
		studentRecord("stu-3", "Beto", "Castro", "MAT-101", "Matemáticas I"),
	}

	sorted := SortRecords(records, models.SortByName, true)
	require.Equal(t, "stu-1", sorted[0].OwnerID)
	require.Equal(t, "stu-3", sorted[1].OwnerID)
	require.Equal(t, "stu-2", sorted[2].OwnerID)

	// Input order untouched.
	require.Equal(t, "stu-1", records[0].OwnerID)
}

func TestSortRecordsByAmountDescending(t *testing.T) {
	amounts := []float64{50, 200, 125}
	records := make([]models.RawRecord, len(amounts))
	for i, amount := range amounts {
		a := amount
		records[i] = models.RawRecord{Kind: models.KindPayment, OwnerID: "stu-1", Amount: &a}
	}

	sorted := SortRecords(records, models.SortByAmount, false)
	require.Equal(t, 200.0, sorted[0].AmountValue())
	require.Equal(t, 125.0, sorted[1].AmountValue())
	require.Equal(t, 50.0, sorted[2].AmountValue())
}

func TestSortRecordsByDateMissingDatesOrderEarliest(t *testing.T) {
	early := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	withDate := func(id string, at *time.Time) models.RawRecord {
		return models.RawRecord{Kind: models.KindStudent, OwnerID: id, EnrolledAt: at}
	}
	records := []models.RawRecord{
		withDate("stu-late", &late),
		withDate("stu-none", nil),
		withDate("stu-early", &early),
	}

	sorted := SortRecords(records, models.SortByDate, true)
	require.Equal(t, "stu-none", sorted[0].OwnerID)
	require.Equal(t, "stu-early", sorted[1].OwnerID)
	require.Equal(t, "stu-late", sorted[2].OwnerID)
}

func TestSortRecordsStableOnTies(t *testing.T) {
	records := []models.RawRecord{
		studentRecord("stu-1", "Ana", "García", "MAT-101", "Matemáticas I"),
		studentRecord("stu-2", "Ana", "García", "FIS-201", "Física II"),
	}

	sorted := SortRecords(records, models.SortByName, true)
	require.Equal(t, "stu-1", sorted[0].OwnerID)
	require.Equal(t, "stu-2", sorted[1].OwnerID)
}
