// file: internals/features/users/teachers/dto/teacher_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	teacherModel "bimbelku_backend/internals/features/users/teachers/model"
)

type TeacherCreateDTO struct {
	TeacherUserID          uuid.UUID `json:"teacher_user_id" validate:"required"`
	TeacherName            string    `json:"teacher_name" validate:"required,max=120"`
	TeacherSalaryPerLesson int64     `json:"teacher_salary_per_lesson" validate:"min=0"`
}

type TeacherResponse struct {
	TeacherID              uuid.UUID `json:"teacher_id"`
	TeacherUserID          uuid.UUID `json:"teacher_user_id"`
	TeacherName            string    `json:"teacher_name"`
	TeacherSalaryPerLesson int64     `json:"teacher_salary_per_lesson"`
	TeacherCreatedAt       time.Time `json:"teacher_created_at"`
}

func ToTeacherModel(d TeacherCreateDTO) teacherModel.TeacherModel {
	return teacherModel.TeacherModel{
		TeacherUserID:          d.TeacherUserID,
		TeacherName:            d.TeacherName,
		TeacherSalaryPerLesson: d.TeacherSalaryPerLesson,
	}
}

func ToTeacherResponse(m *teacherModel.TeacherModel) TeacherResponse {
	return TeacherResponse{
		TeacherID:              m.TeacherID,
		TeacherUserID:          m.TeacherUserID,
		TeacherName:            m.TeacherName,
		TeacherSalaryPerLesson: m.TeacherSalaryPerLesson,
		TeacherCreatedAt:       m.TeacherCreatedAt,
	}
}
