// file: internals/features/school/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — status kelas
============================== */

type ClassStatus string

const (
	ClassStatusUpcoming ClassStatus = "upcoming"
	ClassStatusActive   ClassStatus = "active"
	ClassStatusClosed   ClassStatus = "closed"
)

/* ==============================
   Model: classes
============================== */

type ClassModel struct {
	// PK
	ClassID uuid.UUID `gorm:"column:class_id;type:uuid;primaryKey" json:"class_id"`

	// Identitas
	ClassGrade   string `gorm:"column:class_grade;type:varchar(40);not null" json:"class_grade"`
	ClassSection string `gorm:"column:class_section;type:varchar(40);not null" json:"class_section"`
	ClassYear    int    `gorm:"column:class_year;not null;index" json:"class_year"`

	// Lifecycle
	ClassStatus ClassStatus `gorm:"column:class_status;type:varchar(20);not null;default:'upcoming';index" json:"class_status"`

	// Jadwal mingguan
	ClassStartDate  time.Time                `gorm:"column:class_start_date;type:date;not null" json:"class_start_date"`
	ClassEndDate    time.Time                `gorm:"column:class_end_date;type:date;not null" json:"class_end_date"`
	ClassDayOfWeeks datatypes.JSONSlice[int] `gorm:"column:class_day_of_weeks" json:"class_day_of_weeks"` // 0=Minggu .. 6=Sabtu
	ClassTimeStart  string                   `gorm:"column:class_time_start;type:varchar(5)" json:"class_time_start"` // "HH:MM"
	ClassTimeEnd    string                   `gorm:"column:class_time_end;type:varchar(5)" json:"class_time_end"`

	// Biaya & kapasitas
	ClassFeePerLesson int64 `gorm:"column:class_fee_per_lesson;not null;check:class_fee_per_lesson>=0" json:"class_fee_per_lesson"`
	ClassMaxStudents  int   `gorm:"column:class_max_students;not null;check:class_max_students>0" json:"class_max_students"`

	// Maksimal satu pengajar per kelas
	ClassTeacherID *uuid.UUID `gorm:"column:class_teacher_id;type:uuid;index" json:"class_teacher_id,omitempty"`

	// Audit & soft delete
	ClassCreatedAt time.Time      `gorm:"column:class_created_at;not null;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"column:class_updated_at;not null;autoUpdateTime" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"-"`
}

func (ClassModel) TableName() string { return "classes" }

func (m *ClassModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassID == uuid.Nil {
		m.ClassID = uuid.New()
	}
	if m.ClassStatus == "" {
		m.ClassStatus = ClassStatusUpcoming
	}
	return nil
}

// HasScheduleData: jadwal lengkap (hari + jam) — prasyarat pembuatan sesi absensi.
func (m *ClassModel) HasScheduleData() bool {
	return len(m.ClassDayOfWeeks) > 0 && m.ClassTimeStart != "" && m.ClassTimeEnd != ""
}
