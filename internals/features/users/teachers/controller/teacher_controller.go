// file: internals/features/users/teachers/controller/teacher_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "bimbelku_backend/internals/helpers"

	teacherDTO "bimbelku_backend/internals/features/users/teachers/dto"
	teacherModel "bimbelku_backend/internals/features/users/teachers/model"
)

type TeacherController struct {
	DB *gorm.DB
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db}
}

// POST /api/a/teachers
func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	var body teacherDTO.TeacherCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if fieldErrors := helper.ValidateStruct(body); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	teacher := teacherDTO.ToTeacherModel(body)
	if err := ctl.DB.WithContext(c.Context()).Create(&teacher).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create teacher")
	}
	return helper.JsonCreated(c, "teacher created", teacherDTO.ToTeacherResponse(&teacher))
}

// GET /api/a/teachers/:id
func (ctl *TeacherController) GetByID(c *fiber.Ctx) error {
	teacherID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "teacher id tidak valid")
	}

	var teacher teacherModel.TeacherModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("teacher_id = ?", teacherID).
		First(&teacher).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "pengajar tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load teacher")
	}
	return helper.JsonOK(c, "ok", teacherDTO.ToTeacherResponse(&teacher))
}

// GET /api/a/teachers?search=
func (ctl *TeacherController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&teacherModel.TeacherModel{})
	if search := c.Query("search"); search != "" {
		q = q.Where("teacher_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count teachers")
	}

	var teachers []teacherModel.TeacherModel
	if err := q.
		Order("teacher_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&teachers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list teachers")
	}

	items := make([]teacherDTO.TeacherResponse, 0, len(teachers))
	for i := range teachers {
		items = append(items, teacherDTO.ToTeacherResponse(&teachers[i]))
	}
	return helper.JsonList(c, "ok", items,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
