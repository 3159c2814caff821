package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/academia-console-api/internal/models"
)

func newReportRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestReportRepositoryStudentRecords(t *testing.T) {
	db, mock, cleanup := newReportRepoMock(t)
	defer cleanup()
	repo := NewReportRepository(db)

	enrolledAt := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"owner_id", "first_name", "last_name", "course_id", "course_code", "course_name", "status", "score", "enrolled_at"}).
		AddRow("stu-1", "Ana", "García", "crs-1", "MAT-101", "Matemáticas I", "inscrito", 8.5, enrolledAt)
	mock.ExpectQuery(regexp.QuoteMeta("FROM enrollments e")).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "inscrito").
		WillReturnRows(rows)

	records, err := repo.StudentRecords(context.Background(), models.RecordFilter{
		Start:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:    time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		Status: models.StatusInscrito,
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, models.KindStudent, records[0].Kind)
	require.Equal(t, "García Ana", records[0].SortName())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepositoryPaymentRecordsWithFilters(t *testing.T) {
	db, mock, cleanup := newReportRepoMock(t)
	defer cleanup()
	repo := NewReportRepository(db)

	rows := sqlmock.NewRows([]string{"owner_id", "first_name", "last_name", "course_id", "course_code", "course_name", "status", "amount", "method", "paid_at"}).
		AddRow("stu-2", "Luis", "Pérez", "crs-1", "MAT-101", "Matemáticas I", "pagado", 150.0, "transferencia", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM payments p")).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "crs-1", "transferencia").
		WillReturnRows(rows)

	records, err := repo.PaymentRecords(context.Background(), models.RecordFilter{
		Start:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:      time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		CourseID: "crs-1",
		Method:   "transferencia",
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, models.KindPayment, records[0].Kind)
	require.Equal(t, 150.0, records[0].AmountValue())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepositoryCourseRecordsOccupancyBand(t *testing.T) {
	db, mock, cleanup := newReportRepoMock(t)
	defer cleanup()
	repo := NewReportRepository(db)

	startsAt := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"owner_id", "course_id", "course_code", "course_name", "status", "shift", "capacity", "starts_at", "ends_at", "enrolled"}).
		AddRow("crs-1", "crs-1", "MAT-101", "Matemáticas I", "activo", "mañana", 30, startsAt, nil, 28).
		AddRow("crs-2", "crs-2", "FIS-201", "Física II", "activo", "tarde", 40, startsAt, nil, 10)
	mock.ExpectQuery(regexp.QuoteMeta("FROM courses c")).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(rows)

	records, err := repo.CourseRecords(context.Background(), models.RecordFilter{
		Start:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:       time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		Occupancy: models.OccupancyHigh,
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "MAT-101", records[0].CourseCode)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepositoryDateRangeEmptyCatalog(t *testing.T) {
	db, mock, cleanup := newReportRepoMock(t)
	defer cleanup()
	repo := NewReportRepository(db)

	rows := sqlmock.NewRows([]string{"min_date", "max_date"}).AddRow(nil, nil)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT MIN(starts_at) AS min_date, MAX(ends_at) AS max_date FROM courses")).
		WillReturnRows(rows)

	bounds, err := repo.DateRange(context.Background())
	require.NoError(t, err)
	require.Nil(t, bounds.Start)
	require.Nil(t, bounds.End)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOccupancyBand(t *testing.T) {
	require.Equal(t, models.OccupancyLow, occupancyBand(10, 30))
	require.Equal(t, models.OccupancyMedium, occupancyBand(15, 30))
	require.Equal(t, models.OccupancyHigh, occupancyBand(28, 30))
	require.Equal(t, models.OccupancyLow, occupancyBand(5, 0))
}
