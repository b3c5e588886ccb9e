// file: internals/features/users/students/controller/student_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "bimbelku_backend/internals/helpers"

	studentDTO "bimbelku_backend/internals/features/users/students/dto"
	studentModel "bimbelku_backend/internals/features/users/students/model"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// POST /api/a/students
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var body studentDTO.StudentCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if fieldErrors := helper.ValidateStruct(body); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	student := studentDTO.ToStudentModel(body)
	if err := ctl.DB.WithContext(c.Context()).Create(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create student")
	}
	return helper.JsonCreated(c, "student created", studentDTO.ToStudentResponse(&student))
}

// GET /api/a/students/:id
func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student id tidak valid")
	}

	var student studentModel.StudentModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("student_id = ?", studentID).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "murid tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load student")
	}
	return helper.JsonOK(c, "ok", studentDTO.ToStudentResponse(&student))
}

// GET /api/a/students?search=
func (ctl *StudentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&studentModel.StudentModel{})
	if search := c.Query("search"); search != "" {
		q = q.Where("student_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count students")
	}

	var students []studentModel.StudentModel
	if err := q.
		Order("student_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list students")
	}

	items := make([]studentDTO.StudentResponse, 0, len(students))
	for i := range students {
		items = append(items, studentDTO.ToStudentResponse(&students[i]))
	}
	return helper.JsonList(c, "ok", items,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
