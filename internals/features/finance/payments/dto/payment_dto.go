// file: internals/features/finance/payments/dto/payment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	paymentModel "bimbelku_backend/internals/features/finance/payments/model"
)

/* ==============================
   Requests
============================== */

type PayDTO struct {
	Amount int64      `json:"amount" validate:"required,min=1"`
	Date   *time.Time `json:"date,omitempty"`
	Method string     `json:"method" validate:"required,max=40"`
	Note   string     `json:"note,omitempty" validate:"max=255"`
}

/* ==============================
   Response
============================== */

type PaymentResponse struct {
	PaymentID              uuid.UUID                          `json:"payment_id"`
	PaymentStudentID       uuid.UUID                          `json:"payment_student_id"`
	PaymentClassID         uuid.UUID                          `json:"payment_class_id"`
	PaymentMonth           int                                `json:"payment_month"`
	PaymentYear            int                                `json:"payment_year"`
	PaymentTotalLessons    int                                `json:"payment_total_lessons"`
	PaymentAttendedLessons int                                `json:"payment_attended_lessons"`
	PaymentFeePerLesson    int64                              `json:"payment_fee_per_lesson"`
	PaymentDiscountPercent int                                `json:"payment_discount_percent"`
	PaymentTotalAmount     int64                              `json:"payment_total_amount"`
	PaymentDiscountAmount  int64                              `json:"payment_discount_amount"`
	PaymentFinalAmount     int64                              `json:"payment_final_amount"`
	PaymentPaidAmount      int64                              `json:"payment_paid_amount"`
	PaymentRemainingAmount int64                              `json:"payment_remaining_amount"`
	PaymentStatus          string                             `json:"payment_status"`
	PaymentHistory         []paymentModel.PaymentHistoryEntry `json:"payment_history"`
	PaymentCreatedAt       time.Time                          `json:"payment_created_at"`
	PaymentUpdatedAt       time.Time                          `json:"payment_updated_at"`
}

func ToPaymentResponse(m *paymentModel.PaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentID:              m.PaymentID,
		PaymentStudentID:       m.PaymentStudentID,
		PaymentClassID:         m.PaymentClassID,
		PaymentMonth:           m.PaymentMonth,
		PaymentYear:            m.PaymentYear,
		PaymentTotalLessons:    m.PaymentTotalLessons,
		PaymentAttendedLessons: m.PaymentAttendedLessons,
		PaymentFeePerLesson:    m.PaymentFeePerLesson,
		PaymentDiscountPercent: m.PaymentDiscountPercent,
		PaymentTotalAmount:     m.PaymentTotalAmount,
		PaymentDiscountAmount:  m.PaymentDiscountAmount,
		PaymentFinalAmount:     m.PaymentFinalAmount,
		PaymentPaidAmount:      m.PaymentPaidAmount,
		PaymentRemainingAmount: m.PaymentRemainingAmount,
		PaymentStatus:          string(m.PaymentStatus),
		PaymentHistory:         []paymentModel.PaymentHistoryEntry(m.PaymentHistory),
		PaymentCreatedAt:       m.PaymentCreatedAt,
		PaymentUpdatedAt:       m.PaymentUpdatedAt,
	}
}
