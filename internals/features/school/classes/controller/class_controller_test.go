// file: internals/features/school/classes/controller/class_controller_test.go
package controller

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	database "bimbelku_backend/internals/databases"

	classModel "bimbelku_backend/internals/features/school/classes/model"
	enrollModel "bimbelku_backend/internals/features/school/enrollments/model"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	app := fiber.New()
	ctl := NewClassController(db)
	app.Patch("/classes/:id/status", ctl.UpdateStatus)
	return app, db
}

func TestUpdateStatusCloseUpcomingCascadesEnrollments(t *testing.T) {
	app, db := setupApp(t)

	upcoming := classModel.ClassModel{
		ClassGrade:        "SMP-1",
		ClassSection:      "A",
		ClassYear:         2026,
		ClassStatus:       classModel.ClassStatusUpcoming,
		ClassStartDate:    time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		ClassEndDate:      time.Date(2026, 12, 18, 0, 0, 0, 0, time.UTC),
		ClassDayOfWeeks:   datatypes.NewJSONSlice([]int{1}),
		ClassTimeStart:    "15:00",
		ClassTimeEnd:      "16:30",
		ClassFeePerLesson: 100000,
		ClassMaxStudents:  10,
	}
	require.NoError(t, db.Create(&upcoming).Error)

	studentID := uuid.New()
	require.NoError(t, db.Create(&enrollModel.ClassEnrollmentModel{
		ClassEnrollmentClassID:    upcoming.ClassID,
		ClassEnrollmentStudentID:  studentID,
		ClassEnrollmentStatus:     enrollModel.EnrollmentStatusActive,
		ClassEnrollmentEnrolledAt: time.Now(),
	}).Error)

	req := httptest.NewRequest(fiber.MethodPatch,
		"/classes/"+upcoming.ClassID.String()+"/status",
		strings.NewReader(`{"class_status":"closed"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var class classModel.ClassModel
	require.NoError(t, db.Where("class_id = ?", upcoming.ClassID).First(&class).Error)
	require.Equal(t, classModel.ClassStatusClosed, class.ClassStatus)

	// Override manual wajib cascade seperti scheduler: enrollment ikut tuntas
	var enr enrollModel.ClassEnrollmentModel
	require.NoError(t, db.Where("class_enrollment_student_id = ?", studentID).First(&enr).Error)
	require.Equal(t, enrollModel.EnrollmentStatusCompleted, enr.ClassEnrollmentStatus)
}
