// file: internals/features/users/teachers/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeacherModel struct {
	// PK
	TeacherID uuid.UUID `gorm:"column:teacher_id;type:uuid;primaryKey" json:"teacher_id"`

	TeacherUserID uuid.UUID `gorm:"column:teacher_user_id;type:uuid;not null;index" json:"teacher_user_id"`
	TeacherName   string    `gorm:"column:teacher_name;type:varchar(120);not null" json:"teacher_name"`

	// Honor per pertemuan (basis akrual gaji bulanan)
	TeacherSalaryPerLesson int64 `gorm:"column:teacher_salary_per_lesson;not null;check:teacher_salary_per_lesson>=0" json:"teacher_salary_per_lesson"`

	// Audit & soft delete
	TeacherCreatedAt time.Time      `gorm:"column:teacher_created_at;not null;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time      `gorm:"column:teacher_updated_at;not null;autoUpdateTime" json:"teacher_updated_at"`
	TeacherDeletedAt gorm.DeletedAt `gorm:"column:teacher_deleted_at;index" json:"-"`
}

func (TeacherModel) TableName() string { return "teachers" }

func (m *TeacherModel) BeforeCreate(tx *gorm.DB) error {
	if m.TeacherID == uuid.Nil {
		m.TeacherID = uuid.New()
	}
	return nil
}
