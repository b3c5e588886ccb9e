// file: internals/features/finance/teacher_payments/dto/teacher_payment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	paymentModel "bimbelku_backend/internals/features/finance/payments/model"
	teacherPaymentModel "bimbelku_backend/internals/features/finance/teacher_payments/model"
)

type TeacherPaymentResponse struct {
	TeacherPaymentID              uuid.UUID                                 `json:"teacher_payment_id"`
	TeacherPaymentTeacherID       uuid.UUID                                 `json:"teacher_payment_teacher_id"`
	TeacherPaymentMonth           int                                       `json:"teacher_payment_month"`
	TeacherPaymentYear            int                                       `json:"teacher_payment_year"`
	TeacherPaymentSalaryPerLesson int64                                     `json:"teacher_payment_salary_per_lesson"`
	TeacherPaymentClasses         []teacherPaymentModel.TeacherPaymentClass `json:"teacher_payment_classes"`
	TeacherPaymentTotalAmount     int64                                     `json:"teacher_payment_total_amount"`
	TeacherPaymentPaidAmount      int64                                     `json:"teacher_payment_paid_amount"`
	TeacherPaymentRemainingAmount int64                                     `json:"teacher_payment_remaining_amount"`
	TeacherPaymentStatus          string                                    `json:"teacher_payment_status"`
	TeacherPaymentHistory         []paymentModel.PaymentHistoryEntry        `json:"teacher_payment_history"`
	TeacherPaymentCreatedAt       time.Time                                 `json:"teacher_payment_created_at"`
	TeacherPaymentUpdatedAt       time.Time                                 `json:"teacher_payment_updated_at"`
}

func ToTeacherPaymentResponse(m *teacherPaymentModel.TeacherPaymentModel) TeacherPaymentResponse {
	return TeacherPaymentResponse{
		TeacherPaymentID:              m.TeacherPaymentID,
		TeacherPaymentTeacherID:       m.TeacherPaymentTeacherID,
		TeacherPaymentMonth:           m.TeacherPaymentMonth,
		TeacherPaymentYear:            m.TeacherPaymentYear,
		TeacherPaymentSalaryPerLesson: m.TeacherPaymentSalaryPerLesson,
		TeacherPaymentClasses:         []teacherPaymentModel.TeacherPaymentClass(m.TeacherPaymentClasses),
		TeacherPaymentTotalAmount:     m.TeacherPaymentTotalAmount,
		TeacherPaymentPaidAmount:      m.TeacherPaymentPaidAmount,
		TeacherPaymentRemainingAmount: m.TeacherPaymentRemainingAmount,
		TeacherPaymentStatus:          string(m.TeacherPaymentStatus),
		TeacherPaymentHistory:         []paymentModel.PaymentHistoryEntry(m.TeacherPaymentHistory),
		TeacherPaymentCreatedAt:       m.TeacherPaymentCreatedAt,
		TeacherPaymentUpdatedAt:       m.TeacherPaymentUpdatedAt,
	}
}
