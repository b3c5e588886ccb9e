// file: internals/features/users/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	// PK
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey" json:"student_id"`

	// Relasi ke akun user (dikelola subsistem auth eksternal)
	StudentUserID uuid.UUID `gorm:"column:student_user_id;type:uuid;not null;index" json:"student_user_id"`

	StudentName string  `gorm:"column:student_name;type:varchar(120);not null" json:"student_name"`
	StudentCode *string `gorm:"column:student_code;type:varchar(40)" json:"student_code,omitempty"`

	// Audit & soft delete
	StudentCreatedAt time.Time      `gorm:"column:student_created_at;not null;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;not null;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"-"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	return nil
}
