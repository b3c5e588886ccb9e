// file: internals/features/school/attendance_sessions/model/attendance_record_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — status kehadiran
============================== */

type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "present"
	AttendanceStatusAbsent  AttendanceStatus = "absent"
	AttendanceStatusLate    AttendanceStatus = "late"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusAbsent, AttendanceStatusLate:
		return true
	}
	return false
}

// Counted: status yang dihitung sebagai hadir untuk rekonsiliasi tagihan.
func (s AttendanceStatus) Counted() bool {
	return s == AttendanceStatusPresent || s == AttendanceStatusLate
}

/* ==============================
   Model: attendance_records
   Satu baris per murid per sesi.
============================== */

type AttendanceRecordModel struct {
	// PK
	AttendanceRecordID uuid.UUID `gorm:"column:attendance_record_id;type:uuid;primaryKey" json:"attendance_record_id"`

	AttendanceRecordSessionID uuid.UUID `gorm:"column:attendance_record_session_id;type:uuid;not null;uniqueIndex:uq_attendance_records_session_student,priority:1" json:"attendance_record_session_id"`
	AttendanceRecordStudentID uuid.UUID `gorm:"column:attendance_record_student_id;type:uuid;not null;uniqueIndex:uq_attendance_records_session_student,priority:2;index" json:"attendance_record_student_id"`

	AttendanceRecordStatus    AttendanceStatus `gorm:"column:attendance_record_status;type:varchar(10);not null;default:'absent'" json:"attendance_record_status"`
	AttendanceRecordNote      *string          `gorm:"column:attendance_record_note;type:text" json:"attendance_record_note,omitempty"`
	AttendanceRecordCheckedAt *time.Time       `gorm:"column:attendance_record_checked_at" json:"attendance_record_checked_at,omitempty"`

	// Audit
	AttendanceRecordCreatedAt time.Time `gorm:"column:attendance_record_created_at;not null;autoCreateTime" json:"attendance_record_created_at"`
	AttendanceRecordUpdatedAt time.Time `gorm:"column:attendance_record_updated_at;not null;autoUpdateTime" json:"attendance_record_updated_at"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }

func (m *AttendanceRecordModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceRecordID == uuid.Nil {
		m.AttendanceRecordID = uuid.New()
	}
	if m.AttendanceRecordStatus == "" {
		m.AttendanceRecordStatus = AttendanceStatusAbsent
	}
	return nil
}
