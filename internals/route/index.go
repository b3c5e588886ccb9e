// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bimbelku_backend/internals/configs"
	authMiddleware "bimbelku_backend/internals/middlewares/auth"

	attendanceRoute "bimbelku_backend/internals/features/school/attendance_sessions/route"
	classRoute "bimbelku_backend/internals/features/school/classes/route"
	enrollmentRoute "bimbelku_backend/internals/features/school/enrollments/route"
	paymentRoute "bimbelku_backend/internals/features/finance/payments/route"
	teacherPaymentRoute "bimbelku_backend/internals/features/finance/teacher_payments/route"
	studentRoute "bimbelku_backend/internals/features/users/students/route"
	teacherRoute "bimbelku_backend/internals/features/users/teachers/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		authMiddleware.RequireRoles("admin", "owner"),
	)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting User routes...")
	studentRoute.StudentAdminRoutes(admin, db)
	teacherRoute.TeacherAdminRoutes(admin, db)

	log.Println("[INFO] Mounting School routes...")
	classRoute.ClassAdminRoutes(admin, db)
	enrollmentRoute.EnrollmentAdminRoutes(admin, db)
	attendanceRoute.AttendanceSessionAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Finance routes...")
	paymentRoute.PaymentAdminRoutes(admin, db)
	teacherPaymentRoute.TeacherPaymentAdminRoutes(admin, db)
}
