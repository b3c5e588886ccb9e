// file: internals/features/finance/teacher_payments/controller/teacher_payment_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "bimbelku_backend/internals/helpers"

	paymentDTO "bimbelku_backend/internals/features/finance/payments/dto"
	paymentService "bimbelku_backend/internals/features/finance/payments/service"
	teacherPaymentDTO "bimbelku_backend/internals/features/finance/teacher_payments/dto"
	teacherPaymentModel "bimbelku_backend/internals/features/finance/teacher_payments/model"
)

type TeacherPaymentController struct {
	DB *gorm.DB
}

func NewTeacherPaymentController(db *gorm.DB) *TeacherPaymentController {
	return &TeacherPaymentController{DB: db}
}

// GET /api/a/teacher-payments?teacher_id=&month=&year=&status=
func (ctl *TeacherPaymentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&teacherPaymentModel.TeacherPaymentModel{})
	if raw := c.Query("teacher_id"); raw != "" {
		teacherID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "teacher_id tidak valid")
		}
		q = q.Where("teacher_payment_teacher_id = ?", teacherID)
	}
	if month := c.QueryInt("month"); month >= 1 && month <= 12 {
		q = q.Where("teacher_payment_month = ?", month)
	}
	if year := c.QueryInt("year"); year > 0 {
		q = q.Where("teacher_payment_year = ?", year)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("teacher_payment_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count teacher payments")
	}

	var rows []teacherPaymentModel.TeacherPaymentModel
	if err := q.
		Order("teacher_payment_year DESC, teacher_payment_month DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list teacher payments")
	}

	items := make([]teacherPaymentDTO.TeacherPaymentResponse, 0, len(rows))
	for i := range rows {
		items = append(items, teacherPaymentDTO.ToTeacherPaymentResponse(&rows[i]))
	}
	return helper.JsonList(c, "ok", items,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/teacher-payments/:id
func (ctl *TeacherPaymentController) GetByID(c *fiber.Ctx) error {
	teacherPaymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "teacher payment id tidak valid")
	}

	var tp teacherPaymentModel.TeacherPaymentModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("teacher_payment_id = ?", teacherPaymentID).
		First(&tp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "teacher payment tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load teacher payment")
	}
	return helper.JsonOK(c, "ok", teacherPaymentDTO.ToTeacherPaymentResponse(&tp))
}

// POST /api/a/teacher-payments/:id/pay — catat pembayaran gaji
func (ctl *TeacherPaymentController) Pay(c *fiber.Ctx) error {
	teacherPaymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "teacher payment id tidak valid")
	}

	var body paymentDTO.PayDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if fieldErrors := helper.ValidateStruct(body); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	tp, err := paymentService.RecordTeacherPayment(c.Context(), ctl.DB, teacherPaymentID, paymentService.PayInput{
		Amount: body.Amount,
		Date:   body.Date,
		Method: body.Method,
		Note:   body.Note,
	})
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "teacher payment recorded", teacherPaymentDTO.ToTeacherPaymentResponse(tp))
}
