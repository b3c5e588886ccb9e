// file: internals/features/finance/payments/service/reconciliation_service_test.go
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

	attendanceModel "bimbelku_backend/internals/features/school/attendance_sessions/model"
	classModel "bimbelku_backend/internals/features/school/classes/model"
	enrollModel "bimbelku_backend/internals/features/school/enrollments/model"
	paymentModel "bimbelku_backend/internals/features/finance/payments/model"
	teacherPaymentModel "bimbelku_backend/internals/features/finance/teacher_payments/model"
	studentModel "bimbelku_backend/internals/features/users/students/model"
	teacherModel "bimbelku_backend/internals/features/users/teachers/model"
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

func makeClass(t *testing.T, db *gorm.DB, teacherID *uuid.UUID) classModel.ClassModel {
	t.Helper()
	c := classModel.ClassModel{
		ClassGrade:        "SMP-3",
		ClassSection:      "A",
		ClassYear:         2026,
		ClassStatus:       classModel.ClassStatusActive,
		ClassStartDate:    time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		ClassEndDate:      time.Date(2026, 12, 18, 0, 0, 0, 0, time.UTC),
		ClassDayOfWeeks:   datatypes.NewJSONSlice([]int{3}),
		ClassTimeStart:    "15:00",
		ClassTimeEnd:      "16:30",
		ClassFeePerLesson: 100000,
		ClassMaxStudents:  10,
		ClassTeacherID:    teacherID,
	}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func makeEnrolledStudent(t *testing.T, db *gorm.DB, classID uuid.UUID, name string, discount int) studentModel.StudentModel {
	t.Helper()
	s := studentModel.StudentModel{StudentUserID: uuid.New(), StudentName: name}
	require.NoError(t, db.Create(&s).Error)
	require.NoError(t, db.Create(&enrollModel.ClassEnrollmentModel{
		ClassEnrollmentClassID:         classID,
		ClassEnrollmentStudentID:       s.StudentID,
		ClassEnrollmentDiscountPercent: discount,
		ClassEnrollmentStatus:          enrollModel.EnrollmentStatusActive,
		ClassEnrollmentEnrolledAt:      time.Now(),
	}).Error)
	return s
}

func makeSession(t *testing.T, db *gorm.DB, classID uuid.UUID, date time.Time) attendanceModel.AttendanceSessionModel {
	t.Helper()
	sess := attendanceModel.AttendanceSessionModel{
		AttendanceSessionClassID: classID,
		AttendanceSessionDate:    date,
	}
	require.NoError(t, db.Create(&sess).Error)
	return sess
}

func markAttendance(t *testing.T, db *gorm.DB, sessionID, studentID uuid.UUID, status attendanceModel.AttendanceStatus) {
	t.Helper()
	require.NoError(t, db.Create(&attendanceModel.AttendanceRecordModel{
		AttendanceRecordSessionID: sessionID,
		AttendanceRecordStudentID: studentID,
		AttendanceRecordStatus:    status,
	}).Error)
}

// Rabu-Rabu bulan Maret 2026
var marchWednesdays = []time.Time{
	time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
	time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
	time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC),
	time.Date(2026, 3, 25, 0, 0, 0, 0, time.UTC),
}

func TestComputePaymentAmounts(t *testing.T) {
	tests := []struct {
		name          string
		paid          int64
		wantRemaining int64
		wantStatus    paymentModel.PaymentStatus
	}{
		{"belum bayar", 0, 360000, paymentModel.PaymentStatusPending},
		{"bayar sebagian", 100000, 260000, paymentModel.PaymentStatusPartial},
		{"lunas pas", 360000, 0, paymentModel.PaymentStatusPaid},
		{"lebih bayar", 400000, -40000, paymentModel.PaymentStatusPaid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := paymentModel.PaymentModel{
				PaymentTotalLessons:    4,
				PaymentFeePerLesson:    100000,
				PaymentDiscountPercent: 10,
				PaymentPaidAmount:      tt.paid,
			}
			ComputePaymentAmounts(&p)
			require.EqualValues(t, 400000, p.PaymentTotalAmount)
			require.EqualValues(t, 40000, p.PaymentDiscountAmount)
			require.EqualValues(t, 360000, p.PaymentFinalAmount)
			require.EqualValues(t, tt.wantRemaining, p.PaymentRemainingAmount)
			require.Equal(t, tt.wantStatus, p.PaymentStatus)
		})
	}
}

func TestReconcileDerivesPaymentFromAttendance(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	class := makeClass(t, db, nil)
	budi := makeEnrolledStudent(t, db, class.ClassID, "Budi", 10)

	// 4 sesi Maret; Budi hadir 3, absen 1
	statuses := []attendanceModel.AttendanceStatus{
		attendanceModel.AttendanceStatusPresent,
		attendanceModel.AttendanceStatusPresent,
		attendanceModel.AttendanceStatusAbsent,
		attendanceModel.AttendanceStatusPresent,
	}
	var last attendanceModel.AttendanceSessionModel
	for i, date := range marchWednesdays {
		sess := makeSession(t, db, class.ClassID, date)
		markAttendance(t, db, sess.AttendanceSessionID, budi.StudentID, statuses[i])
		last = sess
	}

	require.NoError(t, Reconcile(ctx, db, &last))

	var payment paymentModel.PaymentModel
	require.NoError(t, db.
		Where("payment_student_id = ? AND payment_class_id = ?", budi.StudentID, class.ClassID).
		Where("payment_month = ? AND payment_year = ?", 3, 2026).
		First(&payment).Error)

	require.Equal(t, 4, payment.PaymentTotalLessons)
	require.Equal(t, 3, payment.PaymentAttendedLessons)
	require.EqualValues(t, 100000, payment.PaymentFeePerLesson)
	require.Equal(t, 10, payment.PaymentDiscountPercent)
	require.EqualValues(t, 400000, payment.PaymentTotalAmount)
	require.EqualValues(t, 40000, payment.PaymentDiscountAmount)
	require.EqualValues(t, 360000, payment.PaymentFinalAmount)
	require.EqualValues(t, 360000, payment.PaymentRemainingAmount)
	require.Equal(t, paymentModel.PaymentStatusPending, payment.PaymentStatus)
}

func TestReconcileIsIdempotent(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	class := makeClass(t, db, nil)
	budi := makeEnrolledStudent(t, db, class.ClassID, "Budi", 0)

	sess := makeSession(t, db, class.ClassID, marchWednesdays[0])
	markAttendance(t, db, sess.AttendanceSessionID, budi.StudentID, attendanceModel.AttendanceStatusPresent)

	require.NoError(t, Reconcile(ctx, db, &sess))
	var first paymentModel.PaymentModel
	require.NoError(t, db.Where("payment_student_id = ?", budi.StudentID).First(&first).Error)

	require.NoError(t, Reconcile(ctx, db, &sess))

	var count int64
	require.NoError(t, db.Model(&paymentModel.PaymentModel{}).Count(&count).Error)
	require.EqualValues(t, 1, count)

	var second paymentModel.PaymentModel
	require.NoError(t, db.Where("payment_student_id = ?", budi.StudentID).First(&second).Error)
	require.Equal(t, first.PaymentTotalLessons, second.PaymentTotalLessons)
	require.Equal(t, first.PaymentAttendedLessons, second.PaymentAttendedLessons)
	require.Equal(t, first.PaymentFinalAmount, second.PaymentFinalAmount)
	require.Equal(t, first.PaymentStatus, second.PaymentStatus)
}

func TestReconcilePreservesPaidAmount(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	class := makeClass(t, db, nil)
	budi := makeEnrolledStudent(t, db, class.ClassID, "Budi", 0)

	sess := makeSession(t, db, class.ClassID, marchWednesdays[0])
	markAttendance(t, db, sess.AttendanceSessionID, budi.StudentID, attendanceModel.AttendanceStatusPresent)
	require.NoError(t, Reconcile(ctx, db, &sess))

	var payment paymentModel.PaymentModel
	require.NoError(t, db.Where("payment_student_id = ?", budi.StudentID).First(&payment).Error)
	_, err := RecordPayment(ctx, db, payment.PaymentID, PayInput{Amount: 100000, Method: "cash"})
	require.NoError(t, err)

	// Sesi baru masuk → final naik, paid tidak disentuh
	sess2 := makeSession(t, db, class.ClassID, marchWednesdays[1])
	markAttendance(t, db, sess2.AttendanceSessionID, budi.StudentID, attendanceModel.AttendanceStatusLate)
	require.NoError(t, Reconcile(ctx, db, &sess2))

	require.NoError(t, db.Where("payment_student_id = ?", budi.StudentID).First(&payment).Error)
	require.Equal(t, 2, payment.PaymentTotalLessons)
	require.Equal(t, 2, payment.PaymentAttendedLessons) // late tetap dihitung hadir
	require.EqualValues(t, 100000, payment.PaymentPaidAmount)
	require.EqualValues(t, 200000, payment.PaymentFinalAmount)
	require.Equal(t, paymentModel.PaymentStatusPartial, payment.PaymentStatus)
}

func TestReconcileSkipsInactiveEnrollment(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	class := makeClass(t, db, nil)
	budi := makeEnrolledStudent(t, db, class.ClassID, "Budi", 0)

	sess := makeSession(t, db, class.ClassID, marchWednesdays[0])
	markAttendance(t, db, sess.AttendanceSessionID, budi.StudentID, attendanceModel.AttendanceStatusPresent)

	// Murid keluar sebelum rekonsiliasi jalan
	require.NoError(t, db.
		Where("class_enrollment_student_id = ?", budi.StudentID).
		Delete(&enrollModel.ClassEnrollmentModel{}).Error)

	require.NoError(t, Reconcile(ctx, db, &sess))

	var count int64
	require.NoError(t, db.Model(&paymentModel.PaymentModel{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestReconcileTeacherAccrual(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	teacher := teacherModel.TeacherModel{
		TeacherUserID:          uuid.New(),
		TeacherName:            "Pak Dedi",
		TeacherSalaryPerLesson: 50000,
	}
	require.NoError(t, db.Create(&teacher).Error)

	class := makeClass(t, db, &teacher.TeacherID)
	var last attendanceModel.AttendanceSessionModel
	for _, date := range marchWednesdays {
		last = makeSession(t, db, class.ClassID, date)
	}

	require.NoError(t, ReconcileTeacher(ctx, db, &last))

	var tp teacherPaymentModel.TeacherPaymentModel
	require.NoError(t, db.
		Where("teacher_payment_teacher_id = ?", teacher.TeacherID).
		Where("teacher_payment_month = ? AND teacher_payment_year = ?", 3, 2026).
		First(&tp).Error)
	require.EqualValues(t, 50000, tp.TeacherPaymentSalaryPerLesson)
	require.Len(t, []teacherPaymentModel.TeacherPaymentClass(tp.TeacherPaymentClasses), 1)
	require.Equal(t, 4, tp.TeacherPaymentClasses[0].TotalLessons)
	require.EqualValues(t, 200000, tp.TeacherPaymentTotalAmount)
	require.Equal(t, paymentModel.PaymentStatusPending, tp.TeacherPaymentStatus)

	// Rekonsiliasi ulang: entri kelas di-SET, bukan di-increment
	require.NoError(t, ReconcileTeacher(ctx, db, &last))
	require.NoError(t, db.
		Where("teacher_payment_teacher_id = ?", teacher.TeacherID).
		First(&tp).Error)
	require.Equal(t, 4, tp.TeacherPaymentClasses[0].TotalLessons)
	require.EqualValues(t, 200000, tp.TeacherPaymentTotalAmount)
}

func TestReconcileTeacherNoTeacher(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	class := makeClass(t, db, nil)
	sess := makeSession(t, db, class.ClassID, marchWednesdays[0])

	require.NoError(t, ReconcileTeacher(ctx, db, &sess))

	var count int64
	require.NoError(t, db.Model(&teacherPaymentModel.TeacherPaymentModel{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}
