// file: internals/features/finance/teacher_payments/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teacherPaymentController "bimbelku_backend/internals/features/finance/teacher_payments/controller"
)

// TeacherPaymentAdminRoutes — base: /api/a
func TeacherPaymentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := teacherPaymentController.NewTeacherPaymentController(db)

	teacherPayments := admin.Group("/teacher-payments")
	teacherPayments.Get("/", ctl.List)
	teacherPayments.Get("/:id", ctl.GetByID)
	teacherPayments.Post("/:id/pay", ctl.Pay)
}
