// file: internals/features/school/classes/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classController "bimbelku_backend/internals/features/school/classes/controller"
)

// ClassAdminRoutes — base: /api/a
func ClassAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := classController.NewClassController(db)

	classes := admin.Group("/classes")
	classes.Post("/", ctl.Create)
	classes.Get("/", ctl.List)
	classes.Post("/lifecycle/run", ctl.RunLifecycle)
	classes.Get("/:id", ctl.GetByID)
	classes.Patch("/:id/status", ctl.UpdateStatus)
	classes.Patch("/:id/teacher", ctl.AssignTeacher)
}
