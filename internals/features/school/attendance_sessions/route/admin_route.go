// file: internals/features/school/attendance_sessions/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "bimbelku_backend/internals/features/school/attendance_sessions/controller"
)

// AttendanceSessionAdminRoutes — base: /api/a
func AttendanceSessionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := attendanceController.NewAttendanceSessionController(db)

	sessions := admin.Group("/attendance-sessions")
	sessions.Post("/today", ctl.GetOrCreateToday)
	sessions.Get("/", ctl.List)
	sessions.Get("/:id", ctl.GetByID)
	sessions.Put("/:id", ctl.UpdateSession)
	sessions.Post("/:id/complete", ctl.Complete)
}
