package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/academia-console-api/internal/models"
)

func paymentRecord(ownerID, first, last, courseID, courseCode string, amount float64, status models.RecordStatus) models.RawRecord {
	a := amount
	return models.RawRecord{
		Kind:       models.KindPayment,
		OwnerID:    ownerID,
		FirstName:  first,
		LastName:   last,
		CourseID:   courseID,
		CourseCode: courseCode,
		CourseName: "Curso " + courseCode,
		Status:     status,
		Amount:     &a,
	}
}

func TestGroupRecordsStudentsDedupByCourseCode(t *testing.T) {
	records := []models.RawRecord{
		studentRecord("stu-1", "Ana", "García", "MAT-101", "Matemáticas I"),
		studentRecord("stu-1", "Ana", "García", "MAT-101", "Matemáticas I"),
		studentRecord("stu-1", "Ana", "García", "FIS-201", "Física II"),
		studentRecord("stu-2", "Luis", "Pérez", "MAT-101", "Matemáticas I"),
	}

	groups := GroupRecords(records, models.DomainStudents)
	require.Len(t, groups, 2)
	require.Equal(t, "stu-1", groups[0].OwnerID)
	require.Len(t, groups[0].Records, 2)
	require.Len(t, groups[1].Records, 1)
}

func TestGroupRecordsFinanceKeepsDuplicatesAndTotals(t *testing.T) {
	records := []models.RawRecord{
		paymentRecord("stu-1", "Ana", "García", "crs-1", "MAT-101", 100, models.StatusPagado),
		paymentRecord("stu-1", "Ana", "García", "crs-1", "MAT-101", 100, models.StatusPendiente),
		paymentRecord("stu-1", "Ana", "García", "crs-2", "FIS-201", 80, models.StatusVerificado),
		paymentRecord("stu-2", "Luis", "Pérez", "crs-1", "MAT-101", 50, models.StatusPendiente),
	}

	groups := GroupRecords(records, models.DomainFinance)
	require.Len(t, groups, 2)

	ana := groups[0]
	require.Equal(t, "stu-1", ana.OwnerID)
	require.Len(t, ana.Records, 3)
	require.Equal(t, 180.0, ana.TotalPaid)
	require.Equal(t, 100.0, ana.TotalPending)
	require.Len(t, ana.Courses, 2)
	require.Equal(t, "crs-1", ana.Courses[0].CourseID)
	require.Len(t, ana.Courses[0].Records, 2)

	luis := groups[1]
	require.Equal(t, 0.0, luis.TotalPaid)
	require.Equal(t, 50.0, luis.TotalPending)
}

func TestGroupRecordsFinanceSplitsPaidAndPending(t *testing.T) {
	records := []models.RawRecord{
		paymentRecord("payer-x", "X", "", "crs-a", "A-101", 50, models.StatusVerificado),
		paymentRecord("payer-x", "X", "", "crs-a", "A-101", 50, models.StatusPendiente),
	}

	groups := GroupRecords(records, models.DomainFinance)
	require.Len(t, groups, 1)
	require.Equal(t, 50.0, groups[0].TotalPaid)
	require.Equal(t, 50.0, groups[0].TotalPending)
	require.Len(t, groups[0].Records, 2)
}

func TestGroupRecordsFinanceMissingStatusCountsAsPending(t *testing.T) {
	record := paymentRecord("stu-1", "Ana", "García", "crs-1", "MAT-101", 75, "")

	groups := GroupRecords([]models.RawRecord{record}, models.DomainFinance)
	require.Len(t, groups, 1)
	require.Equal(t, 75.0, groups[0].TotalPending)
	require.Equal(t, 0.0, groups[0].TotalPaid)
}

func TestGroupRecordsCoursesGroupByCourse(t *testing.T) {
	course := func(courseID, code, name string) models.RawRecord {
		return models.RawRecord{
			Kind:       models.KindCourse,
			OwnerID:    courseID,
			CourseID:   courseID,
			CourseCode: code,
			CourseName: name,
			Capacity:   30,
		}
	}
	records := []models.RawRecord{
		course("crs-1", "MAT-101", "Matemáticas I"),
		course("crs-2", "FIS-201", "Física II"),
	}

	groups := GroupRecords(records, models.DomainCourses)
	require.Len(t, groups, 2)
	require.Equal(t, "Matemáticas I", groups[0].FullName())
}

func TestGroupOrderingFinanceAlwaysAlphabetical(t *testing.T) {
	policy := GroupOrdering(models.DomainFinance, models.SortByAmount, false)
	require.Equal(t, models.SortByName, policy.Key)
	require.True(t, policy.Ascending)

	policy = GroupOrdering(models.DomainStudents, models.SortByDate, false)
	require.Equal(t, models.SortByDate, policy.Key)
	require.False(t, policy.Ascending)
}

func TestOrderGroupsByNameAndAmount(t *testing.T) {
	groups := GroupRecords([]models.RawRecord{
		paymentRecord("stu-1", "Ana", "Zúñiga", "crs-1", "MAT-101", 300, models.StatusPagado),
		paymentRecord("stu-2", "Luis", "Acosta", "crs-1", "MAT-101", 100, models.StatusPagado),
	}, models.DomainFinance)

	byName := OrderGroups(groups, GroupOrderingPolicy{Key: models.SortByName, Ascending: true})
	require.Equal(t, "stu-2", byName[0].OwnerID)

	byAmount := OrderGroups(groups, GroupOrderingPolicy{Key: models.SortByAmount, Ascending: false})
	require.Equal(t, "stu-1", byAmount[0].OwnerID)
}
