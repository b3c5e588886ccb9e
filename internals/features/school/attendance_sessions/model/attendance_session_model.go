// file: internals/features/school/attendance_sessions/model/attendance_session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================
   Model: attendance_sessions
   Satu sesi per (kelas, tanggal) — dijaga index unik komposit.
============================== */

type AttendanceSessionModel struct {
	// PK
	AttendanceSessionID uuid.UUID `gorm:"column:attendance_session_id;type:uuid;primaryKey" json:"attendance_session_id"`

	AttendanceSessionClassID uuid.UUID `gorm:"column:attendance_session_class_id;type:uuid;not null;uniqueIndex:uq_attendance_sessions_class_date,priority:1" json:"attendance_session_class_id"`
	AttendanceSessionDate    time.Time `gorm:"column:attendance_session_date;type:date;not null;uniqueIndex:uq_attendance_sessions_class_date,priority:2" json:"attendance_session_date"`

	// Completed hanyalah penanda, bukan write-lock: updateSession tetap boleh.
	AttendanceSessionIsCompleted bool `gorm:"column:attendance_session_is_completed;not null;default:false" json:"attendance_session_is_completed"`

	// Audit
	AttendanceSessionCreatedAt time.Time `gorm:"column:attendance_session_created_at;not null;autoCreateTime" json:"attendance_session_created_at"`
	AttendanceSessionUpdatedAt time.Time `gorm:"column:attendance_session_updated_at;not null;autoUpdateTime" json:"attendance_session_updated_at"`

	// Relasi (eager load roster saat dibutuhkan)
	AttendanceSessionRecords []AttendanceRecordModel `gorm:"foreignKey:AttendanceRecordSessionID;references:AttendanceSessionID" json:"attendance_session_records,omitempty"`
}

func (AttendanceSessionModel) TableName() string { return "attendance_sessions" }

func (m *AttendanceSessionModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceSessionID == uuid.Nil {
		m.AttendanceSessionID = uuid.New()
	}
	return nil
}
