// file: internals/features/school/attendance_sessions/dto/attendance_session_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	attendanceModel "bimbelku_backend/internals/features/school/attendance_sessions/model"
)

/* ==============================
   Requests
============================== */

type GetOrCreateTodayDTO struct {
	ClassID uuid.UUID `json:"class_id" validate:"required"`
}

type UpdateRecordDTO struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Status    string    `json:"status" validate:"required,oneof=present absent late"`
	Note      *string   `json:"note,omitempty"`
}

type UpdateSessionDTO struct {
	Records []UpdateRecordDTO `json:"records" validate:"required,min=1,dive"`
}

/* ==============================
   Responses
============================== */

type AttendanceRecordResponse struct {
	AttendanceRecordID        uuid.UUID  `json:"attendance_record_id"`
	AttendanceRecordStudentID uuid.UUID  `json:"attendance_record_student_id"`
	AttendanceRecordStatus    string     `json:"attendance_record_status"`
	AttendanceRecordNote      *string    `json:"attendance_record_note,omitempty"`
	AttendanceRecordCheckedAt *time.Time `json:"attendance_record_checked_at,omitempty"`
}

type AttendanceSessionResponse struct {
	AttendanceSessionID          uuid.UUID                  `json:"attendance_session_id"`
	AttendanceSessionClassID     uuid.UUID                  `json:"attendance_session_class_id"`
	AttendanceSessionDate        time.Time                  `json:"attendance_session_date"`
	AttendanceSessionIsCompleted bool                       `json:"attendance_session_is_completed"`
	AttendanceSessionRecords     []AttendanceRecordResponse `json:"attendance_session_records"`
}

func ToAttendanceSessionResponse(m *attendanceModel.AttendanceSessionModel) AttendanceSessionResponse {
	records := make([]AttendanceRecordResponse, 0, len(m.AttendanceSessionRecords))
	for i := range m.AttendanceSessionRecords {
		rec := &m.AttendanceSessionRecords[i]
		records = append(records, AttendanceRecordResponse{
			AttendanceRecordID:        rec.AttendanceRecordID,
			AttendanceRecordStudentID: rec.AttendanceRecordStudentID,
			AttendanceRecordStatus:    string(rec.AttendanceRecordStatus),
			AttendanceRecordNote:      rec.AttendanceRecordNote,
			AttendanceRecordCheckedAt: rec.AttendanceRecordCheckedAt,
		})
	}
	return AttendanceSessionResponse{
		AttendanceSessionID:          m.AttendanceSessionID,
		AttendanceSessionClassID:     m.AttendanceSessionClassID,
		AttendanceSessionDate:        m.AttendanceSessionDate,
		AttendanceSessionIsCompleted: m.AttendanceSessionIsCompleted,
		AttendanceSessionRecords:     records,
	}
}
