// file: internals/databases/database.go
package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"bimbelku_backend/internals/configs"
	attendanceModel "bimbelku_backend/internals/features/school/attendance_sessions/model"
	classModel "bimbelku_backend/internals/features/school/classes/model"
	enrollModel "bimbelku_backend/internals/features/school/enrollments/model"
	paymentModel "bimbelku_backend/internals/features/finance/payments/model"
	teacherPaymentModel "bimbelku_backend/internals/features/finance/teacher_payments/model"
	studentModel "bimbelku_backend/internals/features/users/students/model"
	teacherModel "bimbelku_backend/internals/features/users/teachers/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := configs.GetEnv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=bimbelku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate menjalankan AutoMigrate semua model inti + index unik yang tidak
// bisa dinyatakan lewat tag GORM (partial unique index enrollment aktif).
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&studentModel.StudentModel{},
		&teacherModel.TeacherModel{},
		&classModel.ClassModel{},
		&enrollModel.ClassEnrollmentModel{},
		&attendanceModel.AttendanceSessionModel{},
		&attendanceModel.AttendanceRecordModel{},
		&paymentModel.PaymentModel{},
		&teacherPaymentModel.TeacherPaymentModel{},
	); err != nil {
		return err
	}

	// Safety net konkurensi: maksimal satu enrollment aktif per (murid, kelas).
	// Partial index didukung Postgres & SQLite.
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uq_class_enrollments_active
		ON class_enrollments (class_enrollment_student_id, class_enrollment_class_id)
		WHERE class_enrollment_status = 'active'
	`).Error; err != nil {
		return err
	}

	return nil
}
