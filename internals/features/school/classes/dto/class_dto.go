// file: internals/features/school/classes/dto/class_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	classModel "bimbelku_backend/internals/features/school/classes/model"
)

/* ==============================
   Requests
============================== */

type ClassCreateDTO struct {
	ClassGrade        string     `json:"class_grade" validate:"required,max=40"`
	ClassSection      string     `json:"class_section" validate:"required,max=40"`
	ClassYear         int        `json:"class_year" validate:"required,min=2000"`
	ClassStartDate    time.Time  `json:"class_start_date" validate:"required"`
	ClassEndDate      time.Time  `json:"class_end_date" validate:"required"`
	ClassDayOfWeeks   []int      `json:"class_day_of_weeks" validate:"required,min=1,dive,min=0,max=6"`
	ClassTimeStart    string     `json:"class_time_start" validate:"required,len=5"`
	ClassTimeEnd      string     `json:"class_time_end" validate:"required,len=5"`
	ClassFeePerLesson int64      `json:"class_fee_per_lesson" validate:"min=0"`
	ClassMaxStudents  int        `json:"class_max_students" validate:"required,min=1"`
	ClassTeacherID    *uuid.UUID `json:"class_teacher_id,omitempty"`
}

type ClassUpdateStatusDTO struct {
	ClassStatus string `json:"class_status" validate:"required,oneof=upcoming active closed"`
}

type ClassAssignTeacherDTO struct {
	ClassTeacherID *uuid.UUID `json:"class_teacher_id"` // nil = lepas pengajar
}

/* ==============================
   Response
============================== */

type ClassResponse struct {
	ClassID           uuid.UUID  `json:"class_id"`
	ClassGrade        string     `json:"class_grade"`
	ClassSection      string     `json:"class_section"`
	ClassYear         int        `json:"class_year"`
	ClassStatus       string     `json:"class_status"`
	ClassStartDate    time.Time  `json:"class_start_date"`
	ClassEndDate      time.Time  `json:"class_end_date"`
	ClassDayOfWeeks   []int      `json:"class_day_of_weeks"`
	ClassTimeStart    string     `json:"class_time_start"`
	ClassTimeEnd      string     `json:"class_time_end"`
	ClassFeePerLesson int64      `json:"class_fee_per_lesson"`
	ClassMaxStudents  int        `json:"class_max_students"`
	ClassTeacherID    *uuid.UUID `json:"class_teacher_id,omitempty"`
	ClassActiveCount  int64      `json:"class_active_count"`
	ClassCreatedAt    time.Time  `json:"class_created_at"`
	ClassUpdatedAt    time.Time  `json:"class_updated_at"`
}

/* ==============================
   Mappers
============================== */

func ToClassModel(d ClassCreateDTO) classModel.ClassModel {
	return classModel.ClassModel{
		ClassGrade:        d.ClassGrade,
		ClassSection:      d.ClassSection,
		ClassYear:         d.ClassYear,
		ClassStatus:       classModel.ClassStatusUpcoming,
		ClassStartDate:    d.ClassStartDate,
		ClassEndDate:      d.ClassEndDate,
		ClassDayOfWeeks:   datatypes.JSONSlice[int](d.ClassDayOfWeeks),
		ClassTimeStart:    d.ClassTimeStart,
		ClassTimeEnd:      d.ClassTimeEnd,
		ClassFeePerLesson: d.ClassFeePerLesson,
		ClassMaxStudents:  d.ClassMaxStudents,
		ClassTeacherID:    d.ClassTeacherID,
	}
}

func ToClassResponse(m *classModel.ClassModel, activeCount int64) ClassResponse {
	return ClassResponse{
		ClassID:           m.ClassID,
		ClassGrade:        m.ClassGrade,
		ClassSection:      m.ClassSection,
		ClassYear:         m.ClassYear,
		ClassStatus:       string(m.ClassStatus),
		ClassStartDate:    m.ClassStartDate,
		ClassEndDate:      m.ClassEndDate,
		ClassDayOfWeeks:   []int(m.ClassDayOfWeeks),
		ClassTimeStart:    m.ClassTimeStart,
		ClassTimeEnd:      m.ClassTimeEnd,
		ClassFeePerLesson: m.ClassFeePerLesson,
		ClassMaxStudents:  m.ClassMaxStudents,
		ClassTeacherID:    m.ClassTeacherID,
		ClassActiveCount:  activeCount,
		ClassCreatedAt:    m.ClassCreatedAt,
		ClassUpdatedAt:    m.ClassUpdatedAt,
	}
}
