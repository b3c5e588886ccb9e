// file: internals/features/school/enrollments/controller/enrollment_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "bimbelku_backend/internals/helpers"

	enrollDTO "bimbelku_backend/internals/features/school/enrollments/dto"
	enrollModel "bimbelku_backend/internals/features/school/enrollments/model"
	enrollService "bimbelku_backend/internals/features/school/enrollments/service"
)

type EnrollmentController struct {
	DB *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

// POST /api/a/classes/:id/enrollments — enroll batch (atomik)
func (ctl *EnrollmentController) Enroll(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class id tidak valid")
	}

	var body enrollDTO.EnrollRequestDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if fieldErrors := helper.ValidateStruct(body); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	batch := make([]enrollService.EnrollCandidate, 0, len(body.Students))
	for _, s := range body.Students {
		batch = append(batch, enrollService.EnrollCandidate{
			StudentID:       s.StudentID,
			DiscountPercent: s.DiscountPercent,
			Reason:          s.Reason,
		})
	}

	summary, err := enrollService.Enroll(c.Context(), ctl.DB, classID, batch)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "students enrolled", summary)
}

// DELETE /api/a/classes/:id/enrollments — remove satu murid
func (ctl *EnrollmentController) Remove(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class id tidak valid")
	}

	var body enrollDTO.RemoveRequestDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if fieldErrors := helper.ValidateStruct(body); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	if err := enrollService.Remove(c.Context(), ctl.DB, classID, body.StudentID); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonDeleted(c, "enrollment removed", fiber.Map{
		"class_id":   classID,
		"student_id": body.StudentID,
	})
}

// POST /api/a/classes/:id/enrollments/transfer — pindah kelas atomik
func (ctl *EnrollmentController) Transfer(c *fiber.Ctx) error {
	fromClassID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class id tidak valid")
	}

	var body enrollDTO.TransferRequestDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if fieldErrors := helper.ValidateStruct(body); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	summary, err := enrollService.Transfer(c.Context(), ctl.DB, fromClassID, body.ToClassID, body.StudentID,
		enrollService.TransferOptions{
			DiscountPercent: body.DiscountPercent,
			Reason:          body.Reason,
		})
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "student transferred", summary)
}

// GET /api/a/classes/:id/enrollments?status=
func (ctl *EnrollmentController) ListByClass(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class id tidak valid")
	}

	q := ctl.DB.WithContext(c.Context()).
		Where("class_enrollment_class_id = ?", classID)
	if status := c.Query("status"); status != "" {
		q = q.Where("class_enrollment_status = ?", status)
	}

	var rows []enrollModel.ClassEnrollmentModel
	if err := q.Order("class_enrollment_enrolled_at ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list enrollments")
	}

	items := make([]enrollDTO.EnrollmentResponse, 0, len(rows))
	for i := range rows {
		items = append(items, enrollDTO.ToEnrollmentResponse(&rows[i]))
	}
	return helper.JsonOK(c, "ok", items)
}
