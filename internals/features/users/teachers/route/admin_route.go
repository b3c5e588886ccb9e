// file: internals/features/users/teachers/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teacherController "bimbelku_backend/internals/features/users/teachers/controller"
)

// TeacherAdminRoutes — base: /api/a
func TeacherAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := teacherController.NewTeacherController(db)

	teachers := admin.Group("/teachers")
	teachers.Post("/", ctl.Create)
	teachers.Get("/", ctl.List)
	teachers.Get("/:id", ctl.GetByID)
}
