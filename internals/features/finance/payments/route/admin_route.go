// file: internals/features/finance/payments/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "bimbelku_backend/internals/features/finance/payments/controller"
)

// PaymentAdminRoutes — base: /api/a
func PaymentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := paymentController.NewPaymentController(db)

	payments := admin.Group("/payments")
	payments.Get("/", ctl.List)
	payments.Get("/:id", ctl.GetByID)
	payments.Post("/:id/pay", ctl.Pay)
}
