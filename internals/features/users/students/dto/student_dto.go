// file: internals/features/users/students/dto/student_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	studentModel "bimbelku_backend/internals/features/users/students/model"
)

type StudentCreateDTO struct {
	StudentUserID uuid.UUID `json:"student_user_id" validate:"required"`
	StudentName   string    `json:"student_name" validate:"required,max=120"`
	StudentCode   *string   `json:"student_code,omitempty" validate:"omitempty,max=40"`
}

type StudentResponse struct {
	StudentID        uuid.UUID `json:"student_id"`
	StudentUserID    uuid.UUID `json:"student_user_id"`
	StudentName      string    `json:"student_name"`
	StudentCode      *string   `json:"student_code,omitempty"`
	StudentCreatedAt time.Time `json:"student_created_at"`
}

func ToStudentModel(d StudentCreateDTO) studentModel.StudentModel {
	return studentModel.StudentModel{
		StudentUserID: d.StudentUserID,
		StudentName:   d.StudentName,
		StudentCode:   d.StudentCode,
	}
}

func ToStudentResponse(m *studentModel.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:        m.StudentID,
		StudentUserID:    m.StudentUserID,
		StudentName:      m.StudentName,
		StudentCode:      m.StudentCode,
		StudentCreatedAt: m.StudentCreatedAt,
	}
}
