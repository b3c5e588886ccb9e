// file: internals/features/finance/teacher_payments/model/teacher_payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	paymentModel "bimbelku_backend/internals/features/finance/payments/model"
)

/* ==============================
   Entri kelas dalam akrual gaji (jsonb)
============================== */

type TeacherPaymentClass struct {
	ClassID      uuid.UUID `json:"class_id"`
	TotalLessons int       `json:"total_lessons"`
}

/* ==============================
   Model: teacher_payments (akrual gaji bulanan per pengajar)
   Natural key: (teacher_id, month, year).
   total_amount selalu Σ(classes[i].total_lessons × salary_per_lesson),
   tidak pernah di-increment.
============================== */

type TeacherPaymentModel struct {
	// PK
	TeacherPaymentID uuid.UUID `gorm:"column:teacher_payment_id;type:uuid;primaryKey" json:"teacher_payment_id"`

	TeacherPaymentTeacherID uuid.UUID `gorm:"column:teacher_payment_teacher_id;type:uuid;not null;uniqueIndex:uq_teacher_payments_natural_key,priority:1" json:"teacher_payment_teacher_id"`
	TeacherPaymentMonth     int       `gorm:"column:teacher_payment_month;not null;uniqueIndex:uq_teacher_payments_natural_key,priority:2;check:teacher_payment_month>=1 AND teacher_payment_month<=12" json:"teacher_payment_month"`
	TeacherPaymentYear      int       `gorm:"column:teacher_payment_year;not null;uniqueIndex:uq_teacher_payments_natural_key,priority:3" json:"teacher_payment_year"`

	TeacherPaymentSalaryPerLesson int64 `gorm:"column:teacher_payment_salary_per_lesson;not null;default:0" json:"teacher_payment_salary_per_lesson"`

	TeacherPaymentClasses datatypes.JSONSlice[TeacherPaymentClass] `gorm:"column:teacher_payment_classes" json:"teacher_payment_classes"`

	// Turunan
	TeacherPaymentTotalAmount     int64 `gorm:"column:teacher_payment_total_amount;not null;default:0" json:"teacher_payment_total_amount"`
	TeacherPaymentPaidAmount      int64 `gorm:"column:teacher_payment_paid_amount;not null;default:0" json:"teacher_payment_paid_amount"`
	TeacherPaymentRemainingAmount int64 `gorm:"column:teacher_payment_remaining_amount;not null;default:0" json:"teacher_payment_remaining_amount"`

	TeacherPaymentStatus paymentModel.PaymentStatus `gorm:"column:teacher_payment_status;type:varchar(10);not null;default:'pending';index" json:"teacher_payment_status"`

	TeacherPaymentHistory datatypes.JSONSlice[paymentModel.PaymentHistoryEntry] `gorm:"column:teacher_payment_history" json:"teacher_payment_history"`

	// Audit
	TeacherPaymentCreatedAt time.Time `gorm:"column:teacher_payment_created_at;not null;autoCreateTime" json:"teacher_payment_created_at"`
	TeacherPaymentUpdatedAt time.Time `gorm:"column:teacher_payment_updated_at;not null;autoUpdateTime" json:"teacher_payment_updated_at"`
}

func (TeacherPaymentModel) TableName() string { return "teacher_payments" }

func (m *TeacherPaymentModel) BeforeCreate(tx *gorm.DB) error {
	if m.TeacherPaymentID == uuid.Nil {
		m.TeacherPaymentID = uuid.New()
	}
	if m.TeacherPaymentStatus == "" {
		m.TeacherPaymentStatus = paymentModel.PaymentStatusPending
	}
	return nil
}
