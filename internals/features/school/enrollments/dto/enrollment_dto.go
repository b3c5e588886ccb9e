// file: internals/features/school/enrollments/dto/enrollment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	enrollModel "bimbelku_backend/internals/features/school/enrollments/model"
)

/* ==============================
   Requests
============================== */

type EnrollCandidateDTO struct {
	StudentID       uuid.UUID `json:"student_id" validate:"required"`
	DiscountPercent int       `json:"discount_percent" validate:"min=0,max=100"`
	Reason          *string   `json:"reason,omitempty"`
}

type EnrollRequestDTO struct {
	Students []EnrollCandidateDTO `json:"students" validate:"required,min=1,dive"`
}

type RemoveRequestDTO struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
}

type TransferRequestDTO struct {
	StudentID       uuid.UUID `json:"student_id" validate:"required"`
	ToClassID       uuid.UUID `json:"to_class_id" validate:"required"`
	DiscountPercent int       `json:"discount_percent" validate:"min=0,max=100"`
	Reason          *string   `json:"reason,omitempty"`
}

/* ==============================
   Response
============================== */

type EnrollmentResponse struct {
	ClassEnrollmentID              uuid.UUID `json:"class_enrollment_id"`
	ClassEnrollmentClassID         uuid.UUID `json:"class_enrollment_class_id"`
	ClassEnrollmentStudentID       uuid.UUID `json:"class_enrollment_student_id"`
	ClassEnrollmentDiscountPercent int       `json:"class_enrollment_discount_percent"`
	ClassEnrollmentStatus          string    `json:"class_enrollment_status"`
	ClassEnrollmentReason          *string   `json:"class_enrollment_reason,omitempty"`
	ClassEnrollmentEnrolledAt      time.Time `json:"class_enrollment_enrolled_at"`
}

func ToEnrollmentResponse(m *enrollModel.ClassEnrollmentModel) EnrollmentResponse {
	return EnrollmentResponse{
		ClassEnrollmentID:              m.ClassEnrollmentID,
		ClassEnrollmentClassID:         m.ClassEnrollmentClassID,
		ClassEnrollmentStudentID:       m.ClassEnrollmentStudentID,
		ClassEnrollmentDiscountPercent: m.ClassEnrollmentDiscountPercent,
		ClassEnrollmentStatus:          string(m.ClassEnrollmentStatus),
		ClassEnrollmentReason:          m.ClassEnrollmentReason,
		ClassEnrollmentEnrolledAt:      m.ClassEnrollmentEnrolledAt,
	}
}
