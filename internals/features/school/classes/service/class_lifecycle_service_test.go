// file: internals/features/school/classes/service/class_lifecycle_service_test.go
package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	database "bimbelku_backend/internals/databases"

	classModel "bimbelku_backend/internals/features/school/classes/model"
	enrollModel "bimbelku_backend/internals/features/school/enrollments/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func makeClassAt(t *testing.T, db *gorm.DB, status classModel.ClassStatus, start, end time.Time) classModel.ClassModel {
	t.Helper()
	c := classModel.ClassModel{
		ClassGrade:        "SD-6",
		ClassSection:      "A",
		ClassYear:         2026,
		ClassStatus:       status,
		ClassStartDate:    start,
		ClassEndDate:      end,
		ClassDayOfWeeks:   datatypes.NewJSONSlice([]int{1}),
		ClassTimeStart:    "15:00",
		ClassTimeEnd:      "16:30",
		ClassFeePerLesson: 100000,
		ClassMaxStudents:  10,
	}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func classStatus(t *testing.T, db *gorm.DB, id uuid.UUID) classModel.ClassStatus {
	t.Helper()
	var c classModel.ClassModel
	require.NoError(t, db.Where("class_id = ?", id).First(&c).Error)
	return c.ClassStatus
}

var sweepNow = time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)

func TestSweepActivatesUpcoming(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	due := makeClassAt(t, db, classModel.ClassStatusUpcoming,
		time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 12, 18, 0, 0, 0, 0, time.UTC))
	notYet := makeClassAt(t, db, classModel.ClassStatusUpcoming,
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 12, 18, 0, 0, 0, 0, time.UTC))

	result := RunLifecycleSweep(ctx, db, sweepNow)
	require.Equal(t, 1, result.Activated)
	require.Equal(t, 0, result.Closed)
	require.Equal(t, 0, result.Failed)

	require.Equal(t, classModel.ClassStatusActive, classStatus(t, db, due.ClassID))
	require.Equal(t, classModel.ClassStatusUpcoming, classStatus(t, db, notYet.ClassID))
}

func TestSweepClosesEndedAndCascadesEnrollments(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	ended := makeClassAt(t, db, classModel.ClassStatusActive,
		time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC))
	running := makeClassAt(t, db, classModel.ClassStatusActive,
		time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 12, 18, 0, 0, 0, 0, time.UTC))

	studentID := uuid.New()
	require.NoError(t, db.Create(&enrollModel.ClassEnrollmentModel{
		ClassEnrollmentClassID:    ended.ClassID,
		ClassEnrollmentStudentID:  studentID,
		ClassEnrollmentStatus:     enrollModel.EnrollmentStatusActive,
		ClassEnrollmentEnrolledAt: time.Now(),
	}).Error)

	result := RunLifecycleSweep(ctx, db, sweepNow)
	require.Equal(t, 1, result.Closed)

	require.Equal(t, classModel.ClassStatusClosed, classStatus(t, db, ended.ClassID))
	require.Equal(t, classModel.ClassStatusActive, classStatus(t, db, running.ClassID))

	var enr enrollModel.ClassEnrollmentModel
	require.NoError(t, db.Where("class_enrollment_student_id = ?", studentID).First(&enr).Error)
	require.Equal(t, enrollModel.EnrollmentStatusCompleted, enr.ClassEnrollmentStatus)
}

func TestCloseClassFromUpcomingCascadesEnrollments(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	// Enrollment ke kelas upcoming itu legal; penutupan dini (batal buka)
	// tetap harus menuntaskan enrollment aktifnya.
	upcoming := makeClassAt(t, db, classModel.ClassStatusUpcoming,
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 12, 18, 0, 0, 0, 0, time.UTC))

	studentID := uuid.New()
	require.NoError(t, db.Create(&enrollModel.ClassEnrollmentModel{
		ClassEnrollmentClassID:    upcoming.ClassID,
		ClassEnrollmentStudentID:  studentID,
		ClassEnrollmentStatus:     enrollModel.EnrollmentStatusActive,
		ClassEnrollmentEnrolledAt: time.Now(),
	}).Error)

	require.NoError(t, CloseClass(ctx, db, &upcoming))

	require.Equal(t, classModel.ClassStatusClosed, classStatus(t, db, upcoming.ClassID))

	var enr enrollModel.ClassEnrollmentModel
	require.NoError(t, db.Where("class_enrollment_student_id = ?", studentID).First(&enr).Error)
	require.Equal(t, enrollModel.EnrollmentStatusCompleted, enr.ClassEnrollmentStatus)
}

func TestSweepEndDateTodayStaysActive(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	// end_date hari ini = hari terakhir yang masih berjalan
	today := makeClassAt(t, db, classModel.ClassStatusActive,
		time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC))

	result := RunLifecycleSweep(ctx, db, sweepNow)
	require.Equal(t, 0, result.Closed)
	require.Equal(t, classModel.ClassStatusActive, classStatus(t, db, today.ClassID))
}

func TestSweepIsIdempotent(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	makeClassAt(t, db, classModel.ClassStatusUpcoming,
		time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC))

	// Kelas yang periodenya sudah lewat seluruhnya: diaktifkan lalu
	// ditutup pada sweep yang sama (fase tutup membaca ulang status).
	first := RunLifecycleSweep(ctx, db, sweepNow)
	require.Equal(t, SweepResult{Activated: 1, Closed: 1}, first)

	second := RunLifecycleSweep(ctx, db, sweepNow)
	require.Equal(t, SweepResult{}, second)
}
