// file: internals/features/school/enrollments/service/enrollment_service_test.go
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
	"bimbelku_backend/internals/helpers/apperr"

	classModel "bimbelku_backend/internals/features/school/classes/model"
	enrollModel "bimbelku_backend/internals/features/school/enrollments/model"
	studentModel "bimbelku_backend/internals/features/users/students/model"
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

func makeStudent(t *testing.T, db *gorm.DB, name string) studentModel.StudentModel {
	t.Helper()
	s := studentModel.StudentModel{
		StudentUserID: uuid.New(),
		StudentName:   name,
	}
	require.NoError(t, db.Create(&s).Error)
	return s
}

func makeClass(t *testing.T, db *gorm.DB, status classModel.ClassStatus, maxStudents int, days []int, start, end string) classModel.ClassModel {
	t.Helper()
	c := classModel.ClassModel{
		ClassGrade:        "SMP-2",
		ClassSection:      "A",
		ClassYear:         2026,
		ClassStatus:       status,
		ClassStartDate:    time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		ClassEndDate:      time.Date(2026, 12, 18, 0, 0, 0, 0, time.UTC),
		ClassDayOfWeeks:   datatypes.NewJSONSlice(days),
		ClassTimeStart:    start,
		ClassTimeEnd:      end,
		ClassFeePerLesson: 100000,
		ClassMaxStudents:  maxStudents,
	}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func TestEnrollBatch(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	class := makeClass(t, db, classModel.ClassStatusActive, 5, []int{1, 3}, "18:00", "19:30")
	budi := makeStudent(t, db, "Budi")
	sari := makeStudent(t, db, "Sari")

	summary, err := Enroll(ctx, db, class.ClassID, []EnrollCandidate{
		{StudentID: budi.StudentID, DiscountPercent: 10},
		{StudentID: sari.StudentID},
	})
	require.NoError(t, err)
	require.Equal(t, 0, summary.ActiveBefore)
	require.Equal(t, 2, summary.ActiveAfter)
	require.Len(t, summary.Enrolled, 2)
	require.Equal(t, "Budi", summary.Enrolled[0].StudentName)
	require.Equal(t, 10, summary.Enrolled[0].DiscountPercent)

	n, err := CountActive(db, class.ClassID)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)
}

func TestEnrollCapacityExceededIsAtomic(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	class := makeClass(t, db, classModel.ClassStatusActive, 2, []int{1}, "18:00", "19:30")
	first := makeStudent(t, db, "Budi")
	_, err := Enroll(ctx, db, class.ClassID, []EnrollCandidate{{StudentID: first.StudentID}})
	require.NoError(t, err)

	// Batch 2 murid, sisa slot 1 → seluruh batch ditolak
	a := makeStudent(t, db, "Sari")
	b := makeStudent(t, db, "Andi")
	_, err = Enroll(ctx, db, class.ClassID, []EnrollCandidate{
		{StudentID: a.StudentID},
		{StudentID: b.StudentID},
	})

	var capErr *apperr.CapacityExceededError
	require.ErrorAs(t, err, &capErr)
	require.Equal(t, 2, capErr.Requested)
	require.Equal(t, 1, capErr.Available)

	n, err := CountActive(db, class.ClassID)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestEnrollDuplicate(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	class := makeClass(t, db, classModel.ClassStatusActive, 5, []int{1}, "18:00", "19:30")
	budi := makeStudent(t, db, "Budi")

	_, err := Enroll(ctx, db, class.ClassID, []EnrollCandidate{{StudentID: budi.StudentID}})
	require.NoError(t, err)

	_, err = Enroll(ctx, db, class.ClassID, []EnrollCandidate{{StudentID: budi.StudentID}})
	var dupErr *apperr.DuplicateError
	require.ErrorAs(t, err, &dupErr)
}

func TestEnrollScheduleConflict(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	mtk := makeClass(t, db, classModel.ClassStatusActive, 5, []int{3}, "18:30", "19:30")
	fisika := makeClass(t, db, classModel.ClassStatusActive, 5, []int{3}, "19:00", "20:00")
	budi := makeStudent(t, db, "Budi")

	_, err := Enroll(ctx, db, mtk.ClassID, []EnrollCandidate{{StudentID: budi.StudentID}})
	require.NoError(t, err)

	_, err = Enroll(ctx, db, fisika.ClassID, []EnrollCandidate{{StudentID: budi.StudentID}})
	var confErr *apperr.ScheduleConflictError
	require.ErrorAs(t, err, &confErr)
	require.Equal(t, budi.StudentID, confErr.StudentID)
	require.Equal(t, mtk.ClassID, confErr.ConflictingClassID)
	require.Contains(t, confErr.Detail, "Rabu")
}

func TestEnrollIncompleteScheduleDoesNotConflict(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	// Kelas lama tanpa data jam: tidak boleh memblokir pendaftaran
	legacy := makeClass(t, db, classModel.ClassStatusActive, 5, []int{3}, "", "")
	baru := makeClass(t, db, classModel.ClassStatusActive, 5, []int{3}, "19:00", "20:00")
	budi := makeStudent(t, db, "Budi")

	_, err := Enroll(ctx, db, legacy.ClassID, []EnrollCandidate{{StudentID: budi.StudentID}})
	require.NoError(t, err)

	_, err = Enroll(ctx, db, baru.ClassID, []EnrollCandidate{{StudentID: budi.StudentID}})
	require.NoError(t, err)
}

func TestEnrollClosedClass(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	class := makeClass(t, db, classModel.ClassStatusClosed, 5, []int{1}, "18:00", "19:30")
	budi := makeStudent(t, db, "Budi")

	_, err := Enroll(ctx, db, class.ClassID, []EnrollCandidate{{StudentID: budi.StudentID}})
	var stateErr *apperr.InvalidStateError
	require.ErrorAs(t, err, &stateErr)
	require.Equal(t, "closed", stateErr.CurrentState)
}

func TestEnrollUnknownClassAndStudent(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	budi := makeStudent(t, db, "Budi")
	var nfErr *apperr.NotFoundError

	_, err := Enroll(ctx, db, uuid.New(), []EnrollCandidate{{StudentID: budi.StudentID}})
	require.ErrorAs(t, err, &nfErr)
	require.Equal(t, "class", nfErr.Entity)

	class := makeClass(t, db, classModel.ClassStatusActive, 5, []int{1}, "18:00", "19:30")
	_, err = Enroll(ctx, db, class.ClassID, []EnrollCandidate{{StudentID: uuid.New()}})
	require.ErrorAs(t, err, &nfErr)
	require.Equal(t, "student", nfErr.Entity)
}

func TestRemove(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	class := makeClass(t, db, classModel.ClassStatusActive, 5, []int{1}, "18:00", "19:30")
	budi := makeStudent(t, db, "Budi")
	_, err := Enroll(ctx, db, class.ClassID, []EnrollCandidate{{StudentID: budi.StudentID}})
	require.NoError(t, err)

	require.NoError(t, Remove(ctx, db, class.ClassID, budi.StudentID))

	// Hard delete: baris benar-benar hilang
	var count int64
	require.NoError(t, db.Model(&enrollModel.ClassEnrollmentModel{}).
		Where("class_enrollment_student_id = ?", budi.StudentID).
		Count(&count).Error)
	require.EqualValues(t, 0, count)

	// Remove kedua kali: tidak ada enrollment aktif
	err = Remove(ctx, db, class.ClassID, budi.StudentID)
	var valErr *apperr.ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestTransfer(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	from := makeClass(t, db, classModel.ClassStatusActive, 5, []int{1}, "18:00", "19:30")
	to := makeClass(t, db, classModel.ClassStatusActive, 5, []int{2}, "18:00", "19:30")
	budi := makeStudent(t, db, "Budi")
	_, err := Enroll(ctx, db, from.ClassID, []EnrollCandidate{{StudentID: budi.StudentID, DiscountPercent: 10}})
	require.NoError(t, err)

	summary, err := Transfer(ctx, db, from.ClassID, to.ClassID, budi.StudentID, TransferOptions{DiscountPercent: 10})
	require.NoError(t, err)
	require.Equal(t, to.ClassID, summary.ClassID)

	nFrom, _ := CountActive(db, from.ClassID)
	nTo, _ := CountActive(db, to.ClassID)
	require.EqualValues(t, 0, nFrom)
	require.EqualValues(t, 1, nTo)
}

func TestTransferRollsBackWhenTargetFull(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	from := makeClass(t, db, classModel.ClassStatusActive, 5, []int{1}, "18:00", "19:30")
	to := makeClass(t, db, classModel.ClassStatusActive, 1, []int{2}, "18:00", "19:30")

	occupant := makeStudent(t, db, "Sari")
	_, err := Enroll(ctx, db, to.ClassID, []EnrollCandidate{{StudentID: occupant.StudentID}})
	require.NoError(t, err)

	budi := makeStudent(t, db, "Budi")
	_, err = Enroll(ctx, db, from.ClassID, []EnrollCandidate{{StudentID: budi.StudentID}})
	require.NoError(t, err)

	_, err = Transfer(ctx, db, from.ClassID, to.ClassID, budi.StudentID, TransferOptions{})
	var capErr *apperr.CapacityExceededError
	require.ErrorAs(t, err, &capErr)

	// Removal di kelas asal ikut di-rollback
	nFrom, _ := CountActive(db, from.ClassID)
	require.EqualValues(t, 1, nFrom)
}
