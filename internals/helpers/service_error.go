package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	ledgerservice "sekolahku_backend/internals/features/finance/ledger/service"
)

// FromServiceError memetakan taksonomi error layer service ke response JSON
// konsisten. *fiber.Error diteruskan apa adanya; sisanya 500.
func FromServiceError(c *fiber.Ctx, err error) error {
	switch {
	case ledgerservice.IsValidation(err):
		return Error(c, fiber.StatusBadRequest, err.Error())
	case ledgerservice.IsNotFound(err):
		return Error(c, fiber.StatusNotFound, err.Error())
	case ledgerservice.IsConflict(err):
		return Error(c, fiber.StatusConflict, err.Error())
	case ledgerservice.IsDependency(err):
		var de *ledgerservice.DependencyError
		errors.As(err, &de)
		return ErrorWithDetails(c, fiber.StatusConflict, de.Msg, fiber.Map{
			"dependent": de.Dependent,
			"count":     de.Count,
		})
	case errors.Is(err, ledgerservice.ErrNotFound):
		return Error(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}

	if fe, ok := err.(*fiber.Error); ok {
		return Error(c, fe.Code, fe.Message)
	}
	return Error(c, fiber.StatusInternalServerError, err.Error())
}
