// file: internals/features/school/classes/controller/class_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "bimbelku_backend/internals/helpers"

	classDTO "bimbelku_backend/internals/features/school/classes/dto"
	classModel "bimbelku_backend/internals/features/school/classes/model"
	classService "bimbelku_backend/internals/features/school/classes/service"
	enrollService "bimbelku_backend/internals/features/school/enrollments/service"
	teacherModel "bimbelku_backend/internals/features/users/teachers/model"
)

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

// POST /api/a/classes
func (ctl *ClassController) Create(c *fiber.Ctx) error {
	var body classDTO.ClassCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if fieldErrors := helper.ValidateStruct(body); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}
	if !body.ClassEndDate.After(body.ClassStartDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_end_date harus setelah class_start_date")
	}

	// Pengajar (kalau diisi) harus ada
	if body.ClassTeacherID != nil {
		var teacher teacherModel.TeacherModel
		if err := ctl.DB.WithContext(c.Context()).
			Where("teacher_id = ?", *body.ClassTeacherID).
			First(&teacher).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "pengajar tidak ditemukan")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load teacher")
		}
	}

	class := classDTO.ToClassModel(body)
	if err := ctl.DB.WithContext(c.Context()).Create(&class).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create class")
	}
	return helper.JsonCreated(c, "class created", classDTO.ToClassResponse(&class, 0))
}

// GET /api/a/classes/:id
func (ctl *ClassController) GetByID(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class id tidak valid")
	}

	var class classModel.ClassModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("class_id = ?", classID).
		First(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load class")
	}

	activeCount, err := enrollService.CountActive(ctl.DB.WithContext(c.Context()), classID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count enrollments")
	}
	return helper.JsonOK(c, "ok", classDTO.ToClassResponse(&class, activeCount))
}

// GET /api/a/classes?status=&year=
func (ctl *ClassController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&classModel.ClassModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("class_status = ?", status)
	}
	if year := c.QueryInt("year"); year > 0 {
		q = q.Where("class_year = ?", year)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count classes")
	}

	var classes []classModel.ClassModel
	if err := q.
		Order("class_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&classes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list classes")
	}

	items := make([]classDTO.ClassResponse, 0, len(classes))
	for i := range classes {
		activeCount, err := enrollService.CountActive(ctl.DB.WithContext(c.Context()), classes[i].ClassID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count enrollments")
		}
		items = append(items, classDTO.ToClassResponse(&classes[i], activeCount))
	}

	return helper.JsonList(c, "ok", items,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// PATCH /api/a/classes/:id/status — override manual oleh admin
func (ctl *ClassController) UpdateStatus(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class id tidak valid")
	}

	var body classDTO.ClassUpdateStatusDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if fieldErrors := helper.ValidateStruct(body); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	var class classModel.ClassModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("class_id = ?", classID).
		First(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load class")
	}

	newStatus := classModel.ClassStatus(body.ClassStatus)

	// SEMUA transisi ke closed lewat jalur cascade yang sama dengan scheduler,
	// termasuk dari upcoming: kelas upcoming bisa punya enrollment aktif.
	if newStatus == classModel.ClassStatusClosed && class.ClassStatus != classModel.ClassStatusClosed {
		if err := classService.CloseClass(c.Context(), ctl.DB, &class); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to close class")
		}
	} else {
		if err := ctl.DB.WithContext(c.Context()).
			Model(&classModel.ClassModel{}).
			Where("class_id = ?", classID).
			Update("class_status", newStatus).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update status")
		}
	}

	class.ClassStatus = newStatus
	return helper.JsonUpdated(c, "class status updated", classDTO.ToClassResponse(&class, 0))
}

// PATCH /api/a/classes/:id/teacher — assign/lepas pengajar (maks. satu)
func (ctl *ClassController) AssignTeacher(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class id tidak valid")
	}

	var body classDTO.ClassAssignTeacherDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}

	if body.ClassTeacherID != nil {
		var teacher teacherModel.TeacherModel
		if err := ctl.DB.WithContext(c.Context()).
			Where("teacher_id = ?", *body.ClassTeacherID).
			First(&teacher).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "pengajar tidak ditemukan")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load teacher")
		}
	}

	res := ctl.DB.WithContext(c.Context()).
		Model(&classModel.ClassModel{}).
		Where("class_id = ?", classID).
		Update("class_teacher_id", body.ClassTeacherID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to assign teacher")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "kelas tidak ditemukan")
	}
	return helper.JsonUpdated(c, "teacher assigned", fiber.Map{
		"class_id":         classID,
		"class_teacher_id": body.ClassTeacherID,
	})
}

// POST /api/a/classes/lifecycle/run — trigger manual sweep
func (ctl *ClassController) RunLifecycle(c *fiber.Ctx) error {
	result := classService.RunLifecycleSweep(c.Context(), ctl.DB, time.Now())
	return helper.JsonOK(c, "lifecycle sweep done", result)
}
