// file: internals/features/school/enrollments/service/enrollment_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bimbelku_backend/internals/helpers/apperr"

	classModel "bimbelku_backend/internals/features/school/classes/model"
	enrollModel "bimbelku_backend/internals/features/school/enrollments/model"
	scheduleSvc "bimbelku_backend/internals/features/school/schedules/service"
	studentModel "bimbelku_backend/internals/features/users/students/model"
)

/* ======================================================
   EnrollmentManager — enroll / remove / transfer
   Semua jalur tulis berjalan dalam SATU transaksi:
   validasi semua kandidat dulu, commit semua atau tidak sama sekali.
====================================================== */

type EnrollCandidate struct {
	StudentID       uuid.UUID
	DiscountPercent int
	Reason          *string
}

type EnrollmentConfirmation struct {
	EnrollmentID    uuid.UUID `json:"enrollment_id"`
	StudentID       uuid.UUID `json:"student_id"`
	StudentName     string    `json:"student_name"`
	DiscountPercent int       `json:"discount_percent"`
	EnrolledAt      time.Time `json:"enrolled_at"`
}

type EnrollmentSummary struct {
	ClassID      uuid.UUID                `json:"class_id"`
	ClassGrade   string                   `json:"class_grade"`
	ClassSection string                   `json:"class_section"`
	ClassYear    int                      `json:"class_year"`
	MaxStudents  int                      `json:"max_students"`
	ActiveBefore int                      `json:"active_before"`
	ActiveAfter  int                      `json:"active_after"`
	Enrolled     []EnrollmentConfirmation `json:"enrolled"`
}

// lockForUpdate: serialisasi check-kapasitas + tulis per kelas.
// SQLite (dipakai di test) single-writer & tidak kenal FOR UPDATE,
// jadi clause hanya dipasang di Postgres.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

func isActiveEnrollmentUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "uq_class_enrollments_active")
}

// Enroll mendaftarkan batch murid ke kelas secara atomik.
func Enroll(ctx context.Context, db *gorm.DB, classID uuid.UUID, batch []EnrollCandidate) (*EnrollmentSummary, error) {
	var summary *EnrollmentSummary
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		s, err := enrollTx(tx, classID, batch)
		if err != nil {
			return err
		}
		summary = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func enrollTx(tx *gorm.DB, classID uuid.UUID, batch []EnrollCandidate) (*EnrollmentSummary, error) {
	if len(batch) == 0 {
		return nil, apperr.Validation("batch", "daftar murid kosong")
	}
	for _, cand := range batch {
		if cand.DiscountPercent < 0 || cand.DiscountPercent > 100 {
			return nil, apperr.Validation("discount_percent", "harus 0–100")
		}
	}

	// 1) Kunci baris kelas → check kapasitas & tulis terserialisasi per kelas
	var class classModel.ClassModel
	if err := lockForUpdate(tx).
		Where("class_id = ?", classID).
		First(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("class", classID)
		}
		return nil, err
	}
	if class.ClassStatus == classModel.ClassStatusClosed {
		return nil, apperr.InvalidState("class", string(class.ClassStatus), "enroll")
	}

	// 2) Hitung enrollment aktif saat ini
	var activeCount int64
	if err := tx.Model(&enrollModel.ClassEnrollmentModel{}).
		Where("class_enrollment_class_id = ?", classID).
		Where("class_enrollment_status = ?", enrollModel.EnrollmentStatusActive).
		Count(&activeCount).Error; err != nil {
		return nil, err
	}

	// 3) Kapasitas
	available := class.ClassMaxStudents - int(activeCount)
	if available < 0 {
		available = 0
	}
	if int(activeCount)+len(batch) > class.ClassMaxStudents {
		return nil, apperr.CapacityExceeded(classID, len(batch), available)
	}

	classWindow := scheduleSvc.WindowFromClass(&class)

	// 4) Validasi SEMUA kandidat sebelum commit apa pun
	students := make(map[uuid.UUID]*studentModel.StudentModel, len(batch))
	for _, cand := range batch {
		var stu studentModel.StudentModel
		if err := tx.Where("student_id = ?", cand.StudentID).First(&stu).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("student", cand.StudentID)
			}
			return nil, err
		}
		students[cand.StudentID] = &stu

		// Duplikat: sudah aktif di kelas ini?
		var dup int64
		if err := tx.Model(&enrollModel.ClassEnrollmentModel{}).
			Where("class_enrollment_student_id = ?", cand.StudentID).
			Where("class_enrollment_class_id = ?", classID).
			Where("class_enrollment_status = ?", enrollModel.EnrollmentStatusActive).
			Count(&dup).Error; err != nil {
			return nil, err
		}
		if dup > 0 {
			return nil, apperr.Duplicate("enrollment",
				"student="+cand.StudentID.String()+" class="+classID.String())
		}

		// Bentrok jadwal vs kelas aktif lain yang diikuti murid ini
		var otherClasses []classModel.ClassModel
		if err := tx.
			Where("class_id IN (?)",
				tx.Session(&gorm.Session{NewDB: true}).
					Model(&enrollModel.ClassEnrollmentModel{}).
					Select("class_enrollment_class_id").
					Where("class_enrollment_student_id = ?", cand.StudentID).
					Where("class_enrollment_status = ?", enrollModel.EnrollmentStatusActive),
			).
			Where("class_id <> ?", classID).
			Find(&otherClasses).Error; err != nil {
			return nil, err
		}
		for i := range otherClasses {
			otherWindow := scheduleSvc.WindowFromClass(&otherClasses[i])
			if scheduleSvc.Overlaps(classWindow, otherWindow) {
				return nil, apperr.ScheduleConflict(
					cand.StudentID,
					otherClasses[i].ClassID,
					scheduleSvc.OverlapDetail(classWindow, otherWindow),
				)
			}
		}
	}

	// 5) Commit: semua baris dalam transaksi yang sama.
	// Index unik parsial tetap jadi jaring pengaman terakhir terhadap race.
	now := time.Now()
	confirmations := make([]EnrollmentConfirmation, 0, len(batch))
	for _, cand := range batch {
		row := enrollModel.ClassEnrollmentModel{
			ClassEnrollmentClassID:         classID,
			ClassEnrollmentStudentID:       cand.StudentID,
			ClassEnrollmentDiscountPercent: cand.DiscountPercent,
			ClassEnrollmentStatus:          enrollModel.EnrollmentStatusActive,
			ClassEnrollmentReason:          cand.Reason,
			ClassEnrollmentEnrolledAt:      now,
		}
		if err := tx.Create(&row).Error; err != nil {
			if isActiveEnrollmentUniqueViolation(err) {
				return nil, apperr.Duplicate("enrollment",
					"student="+cand.StudentID.String()+" class="+classID.String())
			}
			return nil, err
		}
		confirmations = append(confirmations, EnrollmentConfirmation{
			EnrollmentID:    row.ClassEnrollmentID,
			StudentID:       cand.StudentID,
			StudentName:     students[cand.StudentID].StudentName,
			DiscountPercent: cand.DiscountPercent,
			EnrolledAt:      row.ClassEnrollmentEnrolledAt,
		})
	}

	return &EnrollmentSummary{
		ClassID:      class.ClassID,
		ClassGrade:   class.ClassGrade,
		ClassSection: class.ClassSection,
		ClassYear:    class.ClassYear,
		MaxStudents:  class.ClassMaxStudents,
		ActiveBefore: int(activeCount),
		ActiveAfter:  int(activeCount) + len(batch),
		Enrolled:     confirmations,
	}, nil
}

// Remove menghapus keras enrollment aktif (studentID, classID).
func Remove(ctx context.Context, db *gorm.DB, classID, studentID uuid.UUID) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return removeTx(tx, classID, studentID)
	})
}

func removeTx(tx *gorm.DB, classID, studentID uuid.UUID) error {
	res := tx.
		Where("class_enrollment_class_id = ?", classID).
		Where("class_enrollment_student_id = ?", studentID).
		Where("class_enrollment_status = ?", enrollModel.EnrollmentStatusActive).
		Delete(&enrollModel.ClassEnrollmentModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.Validation("enrollment", "tidak ada enrollment aktif untuk murid ini di kelas ini")
	}
	return nil
}

type TransferOptions struct {
	DiscountPercent int
	Reason          *string
}

// Transfer = Remove(from) + Enroll(to) dalam SATU transaksi:
// kalau enroll gagal, removal ikut di-rollback.
func Transfer(ctx context.Context, db *gorm.DB, fromClassID, toClassID, studentID uuid.UUID, opts TransferOptions) (*EnrollmentSummary, error) {
	var summary *EnrollmentSummary
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := removeTx(tx, fromClassID, studentID); err != nil {
			return err
		}
		s, err := enrollTx(tx, toClassID, []EnrollCandidate{{
			StudentID:       studentID,
			DiscountPercent: opts.DiscountPercent,
			Reason:          opts.Reason,
		}})
		if err != nil {
			return err
		}
		summary = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// CountActive: jumlah enrollment aktif sebuah kelas (dipakai projection list).
func CountActive(db *gorm.DB, classID uuid.UUID) (int64, error) {
	var n int64
	err := db.Model(&enrollModel.ClassEnrollmentModel{}).
		Where("class_enrollment_class_id = ?", classID).
		Where("class_enrollment_status = ?", enrollModel.EnrollmentStatusActive).
		Count(&n).Error
	return n, err
}
