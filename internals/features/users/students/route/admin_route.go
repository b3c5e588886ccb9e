// file: internals/features/users/students/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "bimbelku_backend/internals/features/users/students/controller"
)

// StudentAdminRoutes — base: /api/a
func StudentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := studentController.NewStudentController(db)

	students := admin.Group("/students")
	students.Post("/", ctl.Create)
	students.Get("/", ctl.List)
	students.Get("/:id", ctl.GetByID)
}
