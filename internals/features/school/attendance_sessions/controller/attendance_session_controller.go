// file: internals/features/school/attendance_sessions/controller/attendance_session_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "bimbelku_backend/internals/helpers"

	attendanceDTO "bimbelku_backend/internals/features/school/attendance_sessions/dto"
	attendanceModel "bimbelku_backend/internals/features/school/attendance_sessions/model"
	attendanceService "bimbelku_backend/internals/features/school/attendance_sessions/service"
)

type AttendanceSessionController struct {
	DB *gorm.DB
}

func NewAttendanceSessionController(db *gorm.DB) *AttendanceSessionController {
	return &AttendanceSessionController{DB: db}
}

// POST /api/a/attendance-sessions/today — get-or-create sesi hari ini
func (ctl *AttendanceSessionController) GetOrCreateToday(c *fiber.Ctx) error {
	var body attendanceDTO.GetOrCreateTodayDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if fieldErrors := helper.ValidateStruct(body); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	session, created, err := attendanceService.GetOrCreateToday(c.Context(), ctl.DB, body.ClassID, time.Now())
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	if created {
		return helper.JsonCreated(c, "attendance session created", attendanceDTO.ToAttendanceSessionResponse(session))
	}
	return helper.JsonOK(c, "ok", attendanceDTO.ToAttendanceSessionResponse(session))
}

// PUT /api/a/attendance-sessions/:id
// Rekonsiliasi tagihan/akrual ikut terpicu di service; kegagalannya hanya
// masuk log, tidak pernah menggagalkan response sukses ini.
func (ctl *AttendanceSessionController) UpdateSession(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "session id tidak valid")
	}

	var body attendanceDTO.UpdateSessionDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if fieldErrors := helper.ValidateStruct(body); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	entries := make([]attendanceService.UpdateEntry, 0, len(body.Records))
	for _, r := range body.Records {
		entries = append(entries, attendanceService.UpdateEntry{
			StudentID: r.StudentID,
			Status:    attendanceModel.AttendanceStatus(r.Status),
			Note:      r.Note,
		})
	}

	session, err := attendanceService.UpdateSession(c.Context(), ctl.DB, sessionID, entries)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "attendance updated", attendanceDTO.ToAttendanceSessionResponse(session))
}

// POST /api/a/attendance-sessions/:id/complete
func (ctl *AttendanceSessionController) Complete(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "session id tidak valid")
	}

	session, err := attendanceService.CompleteSession(c.Context(), ctl.DB, sessionID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "attendance session completed", attendanceDTO.ToAttendanceSessionResponse(session))
}

// GET /api/a/attendance-sessions/:id
func (ctl *AttendanceSessionController) GetByID(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "session id tidak valid")
	}

	session, err := attendanceService.GetByID(c.Context(), ctl.DB, sessionID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "ok", attendanceDTO.ToAttendanceSessionResponse(session))
}

// GET /api/a/attendance-sessions?class_id=&month=&year=
func (ctl *AttendanceSessionController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.Context()).
		Model(&attendanceModel.AttendanceSessionModel{}).
		Preload("AttendanceSessionRecords")

	if raw := c.Query("class_id"); raw != "" {
		classID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
		}
		q = q.Where("attendance_session_class_id = ?", classID)
	}
	if month, year := c.QueryInt("month"), c.QueryInt("year"); month >= 1 && month <= 12 && year > 0 {
		from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		q = q.Where("attendance_session_date >= ? AND attendance_session_date < ?", from, from.AddDate(0, 1, 0))
	}

	var sessions []attendanceModel.AttendanceSessionModel
	if err := q.Order("attendance_session_date ASC").Find(&sessions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list sessions")
	}

	items := make([]attendanceDTO.AttendanceSessionResponse, 0, len(sessions))
	for i := range sessions {
		items = append(items, attendanceDTO.ToAttendanceSessionResponse(&sessions[i]))
	}
	return helper.JsonOK(c, "ok", items)
}
