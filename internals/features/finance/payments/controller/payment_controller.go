// file: internals/features/finance/payments/controller/payment_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "bimbelku_backend/internals/helpers"

	paymentDTO "bimbelku_backend/internals/features/finance/payments/dto"
	paymentModel "bimbelku_backend/internals/features/finance/payments/model"
	paymentService "bimbelku_backend/internals/features/finance/payments/service"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

// GET /api/a/payments?student_id=&class_id=&month=&year=&status=
func (ctl *PaymentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&paymentModel.PaymentModel{})
	if raw := c.Query("student_id"); raw != "" {
		studentID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		q = q.Where("payment_student_id = ?", studentID)
	}
	if raw := c.Query("class_id"); raw != "" {
		classID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
		}
		q = q.Where("payment_class_id = ?", classID)
	}
	if month := c.QueryInt("month"); month >= 1 && month <= 12 {
		q = q.Where("payment_month = ?", month)
	}
	if year := c.QueryInt("year"); year > 0 {
		q = q.Where("payment_year = ?", year)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("payment_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count payments")
	}

	var rows []paymentModel.PaymentModel
	if err := q.
		Order("payment_year DESC, payment_month DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list payments")
	}

	items := make([]paymentDTO.PaymentResponse, 0, len(rows))
	for i := range rows {
		items = append(items, paymentDTO.ToPaymentResponse(&rows[i]))
	}
	return helper.JsonList(c, "ok", items,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/payments/:id
func (ctl *PaymentController) GetByID(c *fiber.Ctx) error {
	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payment id tidak valid")
	}

	var payment paymentModel.PaymentModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("payment_id = ?", paymentID).
		First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "payment tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load payment")
	}
	return helper.JsonOK(c, "ok", paymentDTO.ToPaymentResponse(&payment))
}

// POST /api/a/payments/:id/pay — catat pembayaran kasir
func (ctl *PaymentController) Pay(c *fiber.Ctx) error {
	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payment id tidak valid")
	}

	var body paymentDTO.PayDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if fieldErrors := helper.ValidateStruct(body); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	payment, err := paymentService.RecordPayment(c.Context(), ctl.DB, paymentID, paymentService.PayInput{
		Amount: body.Amount,
		Date:   body.Date,
		Method: body.Method,
		Note:   body.Note,
	})
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "payment recorded", paymentDTO.ToPaymentResponse(payment))
}
