package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	domainCaisse "feffi-backend/internal/domain/caisse"
	domainHierarchy "feffi-backend/internal/domain/hierarchy"
	domainMandataire "feffi-backend/internal/domain/mandataire"
	domainRapport "feffi-backend/internal/domain/rapport"
	domainUser "feffi-backend/internal/domain/user"
	"feffi-backend/internal/usecase/export"
)

// Envelope is the uniform response shape of every command.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func okData(c echo.Context, status int, data any) error {
	return c.JSON(status, Envelope{Success: true, Data: data})
}

func okMsg(c echo.Context, status int, msg string) error {
	return c.JSON(status, Envelope{Success: true, Message: msg})
}

func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, Envelope{Success: false, Error: msg})
}

func failValidation(c echo.Context, err error) error {
	return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:   "validation failed",
		Details: ToFieldErrors(err),
	})
}

// failErr maps domain sentinels onto HTTP codes; anything unrecognized is a
// transient store error and stays generic.
func failErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domainHierarchy.ErrInvalid),
		errors.Is(err, domainMandataire.ErrInvalid),
		errors.Is(err, domainCaisse.ErrInvalid),
		errors.Is(err, domainRapport.ErrInvalid),
		errors.Is(err, domainUser.ErrInvalid):
		return fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domainHierarchy.ErrNotFound),
		errors.Is(err, domainMandataire.ErrNotFound),
		errors.Is(err, domainCaisse.ErrNotFound),
		errors.Is(err, domainRapport.ErrNotFound),
		errors.Is(err, domainUser.ErrNotFound):
		return fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, domainHierarchy.ErrDuplicate),
		errors.Is(err, domainMandataire.ErrDuplicate),
		errors.Is(err, domainCaisse.ErrDuplicate),
		errors.Is(err, domainRapport.ErrDuplicate),
		errors.Is(err, domainUser.ErrDuplicateUsername):
		return fail(c, http.StatusConflict, err.Error())
	case errors.Is(err, domainHierarchy.ErrHasDependents):
		return fail(c, http.StatusConflict, err.Error())
	case errors.Is(err, domainUser.ErrInvalidPassword):
		return fail(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, export.ErrEmptyDataset):
		return fail(c, http.StatusBadRequest, err.Error())
	}
	return fail(c, http.StatusInternalServerError, "database error")
}
