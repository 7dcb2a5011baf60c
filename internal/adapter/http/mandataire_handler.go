package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	domain "feffi-backend/internal/domain/mandataire"
	"feffi-backend/internal/usecase/export"
	"feffi-backend/internal/usecase/mandataire"
)

type MandataireHandler struct{ uc *mandataire.Usecase }

func NewMandataireHandler(uc *mandataire.Usecase) *MandataireHandler {
	return &MandataireHandler{uc: uc}
}

func (h *MandataireHandler) Create(c echo.Context) error {
	var in domain.Mandataire
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&in); err != nil {
		return failValidation(c, err)
	}
	if err := h.uc.Create(c.Request().Context(), &in); err != nil {
		return failErr(c, err)
	}
	return c.JSON(http.StatusCreated, Envelope{Success: true, Data: in, Message: "Mandataire created successfully"})
}

func (h *MandataireHandler) Read(c echo.Context) error {
	if etabID := c.QueryParam("etablissement_id"); etabID != "" {
		rows, err := h.uc.SearchByEtablissement(c.Request().Context(), etabID)
		if err != nil {
			return failErr(c, err)
		}
		return okData(c, http.StatusOK, rows)
	}
	rows, err := h.uc.Read(c.Request().Context())
	if err != nil {
		return failErr(c, err)
	}
	return okData(c, http.StatusOK, rows)
}

func (h *MandataireHandler) Update(c echo.Context) error {
	var in domain.Mandataire
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&in); err != nil {
		return failValidation(c, err)
	}
	in.ID = c.Param("id")
	if err := h.uc.Update(c.Request().Context(), &in); err != nil {
		return failErr(c, err)
	}
	return okMsg(c, http.StatusOK, "Mandataire updated successfully")
}

func (h *MandataireHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return failErr(c, err)
	}
	return okMsg(c, http.StatusOK, "Mandataire deleted successfully")
}

// Export streams the contact list workbook; the client decides where to
// save it.
func (h *MandataireHandler) Export(c echo.Context) error {
	rows, err := h.uc.Read(c.Request().Context())
	if err != nil {
		return failErr(c, err)
	}
	f, err := export.Mandataires(rows)
	if err != nil {
		return failErr(c, err)
	}
	defer f.Close()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+export.Filename("mandataire", time.Now())+`"`)
	res.WriteHeader(http.StatusOK)
	return f.Write(res)
}
