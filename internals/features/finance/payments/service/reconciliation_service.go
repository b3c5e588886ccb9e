// file: internals/features/finance/payments/service/reconciliation_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceModel "bimbelku_backend/internals/features/school/attendance_sessions/model"
	classModel "bimbelku_backend/internals/features/school/classes/model"
	enrollModel "bimbelku_backend/internals/features/school/enrollments/model"
	paymentModel "bimbelku_backend/internals/features/finance/payments/model"
	teacherPaymentModel "bimbelku_backend/internals/features/finance/teacher_payments/model"
	teacherModel "bimbelku_backend/internals/features/users/teachers/model"
)

/* ======================================================
   ReconciliationEngine — derivasi Payment & TeacherPayment
   dari riwayat absensi. Semua field turunan DIHITUNG ULANG
   dari sumber (idempoten), tidak pernah di-increment.
====================================================== */

// ComputePaymentAmounts menghitung ulang semua kolom turunan dari kolom
// sumber + paid_amount. Pure function, dipanggil eksplisit oleh jalur
// commit (bukan hook penyimpanan).
func ComputePaymentAmounts(p *paymentModel.PaymentModel) {
	p.PaymentTotalAmount = int64(p.PaymentTotalLessons) * p.PaymentFeePerLesson
	p.PaymentDiscountAmount = p.PaymentTotalAmount * int64(p.PaymentDiscountPercent) / 100
	p.PaymentFinalAmount = p.PaymentTotalAmount - p.PaymentDiscountAmount
	p.PaymentRemainingAmount = p.PaymentFinalAmount - p.PaymentPaidAmount

	switch {
	case p.PaymentPaidAmount <= 0:
		p.PaymentStatus = paymentModel.PaymentStatusPending
	case p.PaymentPaidAmount < p.PaymentFinalAmount:
		p.PaymentStatus = paymentModel.PaymentStatusPartial
	default:
		p.PaymentStatus = paymentModel.PaymentStatusPaid
	}
}

// ComputeTeacherPaymentAmounts — analog untuk akrual gaji pengajar.
func ComputeTeacherPaymentAmounts(tp *teacherPaymentModel.TeacherPaymentModel) {
	var total int64
	for _, entry := range tp.TeacherPaymentClasses {
		total += int64(entry.TotalLessons) * tp.TeacherPaymentSalaryPerLesson
	}
	tp.TeacherPaymentTotalAmount = total
	tp.TeacherPaymentRemainingAmount = total - tp.TeacherPaymentPaidAmount

	switch {
	case tp.TeacherPaymentPaidAmount <= 0:
		tp.TeacherPaymentStatus = paymentModel.PaymentStatusPending
	case tp.TeacherPaymentPaidAmount < tp.TeacherPaymentTotalAmount:
		tp.TeacherPaymentStatus = paymentModel.PaymentStatusPartial
	default:
		tp.TeacherPaymentStatus = paymentModel.PaymentStatusPaid
	}
}

// monthRange: [awal bulan, awal bulan berikutnya) dari tanggal sesi.
func monthRange(d time.Time) (time.Time, time.Time) {
	from := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

// Reconcile menurunkan ulang Payment tiap murid yang tercatat di sesi ini
// untuk (kelas, bulan, tahun) sesi. Kegagalan per murid dicatat dan tidak
// menghentikan murid lain; error gabungan dikembalikan ke pemanggil, yang
// mencatatnya tanpa menggagalkan penulisan absensi yang sudah commit.
func Reconcile(ctx context.Context, db *gorm.DB, session *attendanceModel.AttendanceSessionModel) error {
	var class classModel.ClassModel
	if err := db.WithContext(ctx).Where("class_id = ?", session.AttendanceSessionClassID).First(&class).Error; err != nil {
		return fmt.Errorf("reconcile: load class %s: %w", session.AttendanceSessionClassID, err)
	}

	from, to := monthRange(session.AttendanceSessionDate)
	month := int(session.AttendanceSessionDate.Month())
	year := session.AttendanceSessionDate.Year()

	// totalLessons = jumlah sesi kelas pada bulan tsb (independen dari murid)
	var monthSessions []attendanceModel.AttendanceSessionModel
	if err := db.WithContext(ctx).
		Where("attendance_session_class_id = ?", class.ClassID).
		Where("attendance_session_date >= ? AND attendance_session_date < ?", from, to).
		Find(&monthSessions).Error; err != nil {
		return fmt.Errorf("reconcile: load sessions class=%s %d-%02d: %w", class.ClassID, year, month, err)
	}
	totalLessons := len(monthSessions)
	sessionIDs := make([]uuid.UUID, 0, totalLessons)
	for _, s := range monthSessions {
		sessionIDs = append(sessionIDs, s.AttendanceSessionID)
	}

	// Kehadiran per murid sepanjang bulan
	var monthRecords []attendanceModel.AttendanceRecordModel
	if len(sessionIDs) > 0 {
		if err := db.WithContext(ctx).
			Where("attendance_record_session_id IN ?", sessionIDs).
			Find(&monthRecords).Error; err != nil {
			return fmt.Errorf("reconcile: load records class=%s %d-%02d: %w", class.ClassID, year, month, err)
		}
	}
	attendedByStudent := map[uuid.UUID]int{}
	for _, rec := range monthRecords {
		if rec.AttendanceRecordStatus.Counted() {
			attendedByStudent[rec.AttendanceRecordStudentID]++
		}
	}

	// Murid yang tercatat di SESI INI
	var sessionRecords []attendanceModel.AttendanceRecordModel
	if err := db.WithContext(ctx).
		Where("attendance_record_session_id = ?", session.AttendanceSessionID).
		Find(&sessionRecords).Error; err != nil {
		return fmt.Errorf("reconcile: load session records %s: %w", session.AttendanceSessionID, err)
	}

	var errs []error
	for _, rec := range sessionRecords {
		studentID := rec.AttendanceRecordStudentID

		// Skip murid yang enrollment-nya sudah tidak aktif
		var enrollment enrollModel.ClassEnrollmentModel
		err := db.WithContext(ctx).
			Where("class_enrollment_student_id = ?", studentID).
			Where("class_enrollment_class_id = ?", class.ClassID).
			Where("class_enrollment_status = ?", enrollModel.EnrollmentStatusActive).
			First(&enrollment).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("reconcile student=%s class=%s %d-%02d: %w",
				studentID, class.ClassID, year, month, err))
			continue
		}

		if err := upsertPayment(ctx, db, &class, &enrollment, studentID, month, year,
			totalLessons, attendedByStudent[studentID]); err != nil {
			log.Printf("[RECONCILE ERROR] student=%s class=%s month=%d year=%d: %v",
				studentID, class.ClassID, month, year, err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func upsertPayment(ctx context.Context, db *gorm.DB, class *classModel.ClassModel, enrollment *enrollModel.ClassEnrollmentModel, studentID uuid.UUID, month, year, totalLessons, attendedLessons int) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var payment paymentModel.PaymentModel
		err := tx.
			Where("payment_student_id = ?", studentID).
			Where("payment_class_id = ?", class.ClassID).
			Where("payment_month = ? AND payment_year = ?", month, year).
			First(&payment).Error
		created := false
		if errors.Is(err, gorm.ErrRecordNotFound) {
			payment = paymentModel.PaymentModel{
				PaymentStudentID: studentID,
				PaymentClassID:   class.ClassID,
				PaymentMonth:     month,
				PaymentYear:      year,
				PaymentHistory:   []paymentModel.PaymentHistoryEntry{},
			}
			created = true
		} else if err != nil {
			return err
		}

		// Overwrite dari sumber saat ini; paid_amount tidak disentuh
		payment.PaymentTotalLessons = totalLessons
		payment.PaymentAttendedLessons = attendedLessons
		payment.PaymentFeePerLesson = class.ClassFeePerLesson
		payment.PaymentDiscountPercent = enrollment.ClassEnrollmentDiscountPercent
		ComputePaymentAmounts(&payment)

		if created {
			return tx.Create(&payment).Error
		}
		return tx.Save(&payment).Error
	})
}

// ReconcileTeacher memperbarui akrual gaji pengajar kelas sesi ini untuk
// (pengajar, bulan, tahun): entri kelas di-set ke jumlah sesi bulan itu,
// lalu total dihitung ulang atas seluruh array.
func ReconcileTeacher(ctx context.Context, db *gorm.DB, session *attendanceModel.AttendanceSessionModel) error {
	var class classModel.ClassModel
	if err := db.WithContext(ctx).Where("class_id = ?", session.AttendanceSessionClassID).First(&class).Error; err != nil {
		return fmt.Errorf("reconcile teacher: load class %s: %w", session.AttendanceSessionClassID, err)
	}
	if class.ClassTeacherID == nil {
		return nil // kelas tanpa pengajar: tidak ada akrual
	}

	var teacher teacherModel.TeacherModel
	if err := db.WithContext(ctx).Where("teacher_id = ?", *class.ClassTeacherID).First(&teacher).Error; err != nil {
		return fmt.Errorf("reconcile teacher: load teacher %s: %w", *class.ClassTeacherID, err)
	}

	from, to := monthRange(session.AttendanceSessionDate)
	month := int(session.AttendanceSessionDate.Month())
	year := session.AttendanceSessionDate.Year()

	var totalLessons int64
	if err := db.WithContext(ctx).
		Model(&attendanceModel.AttendanceSessionModel{}).
		Where("attendance_session_class_id = ?", class.ClassID).
		Where("attendance_session_date >= ? AND attendance_session_date < ?", from, to).
		Count(&totalLessons).Error; err != nil {
		return fmt.Errorf("reconcile teacher: count sessions class=%s %d-%02d: %w", class.ClassID, year, month, err)
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tp teacherPaymentModel.TeacherPaymentModel
		err := tx.
			Where("teacher_payment_teacher_id = ?", teacher.TeacherID).
			Where("teacher_payment_month = ? AND teacher_payment_year = ?", month, year).
			First(&tp).Error
		created := false
		if errors.Is(err, gorm.ErrRecordNotFound) {
			tp = teacherPaymentModel.TeacherPaymentModel{
				TeacherPaymentTeacherID: teacher.TeacherID,
				TeacherPaymentMonth:     month,
				TeacherPaymentYear:      year,
				TeacherPaymentHistory:   []paymentModel.PaymentHistoryEntry{},
			}
			created = true
		} else if err != nil {
			return err
		}

		tp.TeacherPaymentSalaryPerLesson = teacher.TeacherSalaryPerLesson

		// Cari/append entri kelas ini lalu set totalLessons (bukan increment)
		found := false
		classes := []teacherPaymentModel.TeacherPaymentClass(tp.TeacherPaymentClasses)
		for i := range classes {
			if classes[i].ClassID == class.ClassID {
				classes[i].TotalLessons = int(totalLessons)
				found = true
				break
			}
		}
		if !found {
			classes = append(classes, teacherPaymentModel.TeacherPaymentClass{
				ClassID:      class.ClassID,
				TotalLessons: int(totalLessons),
			})
		}
		tp.TeacherPaymentClasses = classes

		ComputeTeacherPaymentAmounts(&tp)

		if created {
			return tx.Create(&tp).Error
		}
		return tx.Save(&tp).Error
	})
}
