// file: internals/helpers/from_app_error.go
package helper

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"bimbelku_backend/internals/helpers/apperr"
)

// JsonAppError memetakan error domain (apperr) ke response JSON konsisten.
// Error di luar taksonomi → 500 (pesan asli tidak dibocorkan ke klien).
func JsonAppError(c *fiber.Ctx, err error) error {
	var (
		nf *apperr.NotFoundError
		du *apperr.DuplicateError
		ce *apperr.CapacityExceededError
		sc *apperr.ScheduleConflictError
		is *apperr.InvalidStateError
		ve *apperr.ValidationError
	)

	switch {
	case errors.As(err, &nf):
		return JsonError(c, fiber.StatusNotFound, nf.Error())
	case errors.As(err, &du):
		return JsonError(c, fiber.StatusConflict, du.Error())
	case errors.As(err, &ce):
		return JsonError(c, fiber.StatusConflict, ce.Error())
	case errors.As(err, &sc):
		return JsonError(c, fiber.StatusConflict, sc.Error())
	case errors.As(err, &is):
		return JsonError(c, fiber.StatusBadRequest, is.Error())
	case errors.As(err, &ve):
		return JsonError(c, fiber.StatusBadRequest, ve.Error())
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}

	return JsonError(c, fiber.StatusInternalServerError, fmt.Sprintf("internal error: %v", err))
}
