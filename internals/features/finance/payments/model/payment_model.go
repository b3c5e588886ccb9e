// file: internals/features/finance/payments/model/payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — status pembayaran
============================== */

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

/* ==============================
   Riwayat pembayaran (jsonb, append-only)
============================== */

type PaymentHistoryEntry struct {
	Amount int64     `json:"amount"`
	Date   time.Time `json:"date"`
	Method string    `json:"method"`
	Note   string    `json:"note,omitempty"`
}

/* ==============================
   Model: payments (tagihan SPP bulanan per murid per kelas)
   Natural key: (student_id, class_id, month, year).
   Semua kolom turunan DIHITUNG ULANG dari sumber oleh rekonsiliasi;
   hanya paid_amount + history yang terakumulasi lewat pembayaran manual.
============================== */

type PaymentModel struct {
	// PK
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;primaryKey" json:"payment_id"`

	PaymentStudentID uuid.UUID `gorm:"column:payment_student_id;type:uuid;not null;uniqueIndex:uq_payments_natural_key,priority:1" json:"payment_student_id"`
	PaymentClassID   uuid.UUID `gorm:"column:payment_class_id;type:uuid;not null;uniqueIndex:uq_payments_natural_key,priority:2" json:"payment_class_id"`
	PaymentMonth     int       `gorm:"column:payment_month;not null;uniqueIndex:uq_payments_natural_key,priority:3;check:payment_month>=1 AND payment_month<=12" json:"payment_month"`
	PaymentYear      int       `gorm:"column:payment_year;not null;uniqueIndex:uq_payments_natural_key,priority:4" json:"payment_year"`

	// Sumber perhitungan
	PaymentTotalLessons    int   `gorm:"column:payment_total_lessons;not null;default:0" json:"payment_total_lessons"`
	PaymentAttendedLessons int   `gorm:"column:payment_attended_lessons;not null;default:0" json:"payment_attended_lessons"`
	PaymentFeePerLesson    int64 `gorm:"column:payment_fee_per_lesson;not null;default:0" json:"payment_fee_per_lesson"`
	PaymentDiscountPercent int   `gorm:"column:payment_discount_percent;not null;default:0" json:"payment_discount_percent"`

	// Turunan
	PaymentTotalAmount     int64 `gorm:"column:payment_total_amount;not null;default:0" json:"payment_total_amount"`
	PaymentDiscountAmount  int64 `gorm:"column:payment_discount_amount;not null;default:0" json:"payment_discount_amount"`
	PaymentFinalAmount     int64 `gorm:"column:payment_final_amount;not null;default:0" json:"payment_final_amount"`
	PaymentPaidAmount      int64 `gorm:"column:payment_paid_amount;not null;default:0" json:"payment_paid_amount"`
	PaymentRemainingAmount int64 `gorm:"column:payment_remaining_amount;not null;default:0" json:"payment_remaining_amount"`

	PaymentStatus PaymentStatus `gorm:"column:payment_status;type:varchar(10);not null;default:'pending';index" json:"payment_status"`

	PaymentHistory datatypes.JSONSlice[PaymentHistoryEntry] `gorm:"column:payment_history" json:"payment_history"`

	// Audit
	PaymentCreatedAt time.Time `gorm:"column:payment_created_at;not null;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt time.Time `gorm:"column:payment_updated_at;not null;autoUpdateTime" json:"payment_updated_at"`
}

func (PaymentModel) TableName() string { return "payments" }

func (m *PaymentModel) BeforeCreate(tx *gorm.DB) error {
	if m.PaymentID == uuid.Nil {
		m.PaymentID = uuid.New()
	}
	if m.PaymentStatus == "" {
		m.PaymentStatus = PaymentStatusPending
	}
	return nil
}
