// file: internals/features/school/enrollments/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollController "bimbelku_backend/internals/features/school/enrollments/controller"
)

// EnrollmentAdminRoutes — base: /api/a
func EnrollmentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := enrollController.NewEnrollmentController(db)

	enrollments := admin.Group("/classes/:id/enrollments")
	enrollments.Post("/", ctl.Enroll)
	enrollments.Get("/", ctl.ListByClass)
	enrollments.Delete("/", ctl.Remove)
	enrollments.Post("/transfer", ctl.Transfer)
}
