// file: internals/features/school/enrollments/model/class_enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — status enrollment
============================== */

type EnrollmentStatus string

const (
	EnrollmentStatusActive    EnrollmentStatus = "active"
	EnrollmentStatusCompleted EnrollmentStatus = "completed"
)

/* ==============================
   Model: class_enrollments
   Catatan: baris dihapus keras oleh Remove (bukan soft delete),
   jadi tidak ada kolom deleted_at di sini. Index unik parsial
   (murid, kelas) untuk status aktif dibuat di databases.Migrate.
============================== */

type ClassEnrollmentModel struct {
	// PK
	ClassEnrollmentID uuid.UUID `gorm:"column:class_enrollment_id;type:uuid;primaryKey" json:"class_enrollment_id"`

	// FK
	ClassEnrollmentClassID   uuid.UUID `gorm:"column:class_enrollment_class_id;type:uuid;not null;index" json:"class_enrollment_class_id"`
	ClassEnrollmentStudentID uuid.UUID `gorm:"column:class_enrollment_student_id;type:uuid;not null;index" json:"class_enrollment_student_id"`

	// Syarat biaya per-murid
	ClassEnrollmentDiscountPercent int `gorm:"column:class_enrollment_discount_percent;not null;default:0;check:class_enrollment_discount_percent>=0 AND class_enrollment_discount_percent<=100" json:"class_enrollment_discount_percent"`

	ClassEnrollmentStatus EnrollmentStatus `gorm:"column:class_enrollment_status;type:varchar(20);not null;default:'active';index" json:"class_enrollment_status"`
	ClassEnrollmentReason *string          `gorm:"column:class_enrollment_reason;type:text" json:"class_enrollment_reason,omitempty"`

	ClassEnrollmentEnrolledAt time.Time `gorm:"column:class_enrollment_enrolled_at;not null" json:"class_enrollment_enrolled_at"`

	// Audit
	ClassEnrollmentCreatedAt time.Time `gorm:"column:class_enrollment_created_at;not null;autoCreateTime" json:"class_enrollment_created_at"`
	ClassEnrollmentUpdatedAt time.Time `gorm:"column:class_enrollment_updated_at;not null;autoUpdateTime" json:"class_enrollment_updated_at"`
}

func (ClassEnrollmentModel) TableName() string { return "class_enrollments" }

func (m *ClassEnrollmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassEnrollmentID == uuid.Nil {
		m.ClassEnrollmentID = uuid.New()
	}
	if m.ClassEnrollmentStatus == "" {
		m.ClassEnrollmentStatus = EnrollmentStatusActive
	}
	if m.ClassEnrollmentEnrolledAt.IsZero() {
		m.ClassEnrollmentEnrolledAt = time.Now()
	}
	return nil
}
