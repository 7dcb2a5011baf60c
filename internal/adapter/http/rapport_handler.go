package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	domain "feffi-backend/internal/domain/rapport"
	"feffi-backend/internal/usecase/export"
	"feffi-backend/internal/usecase/rapport"
)

type RapportHandler struct{ uc *rapport.Usecase }

func NewRapportHandler(uc *rapport.Usecase) *RapportHandler { return &RapportHandler{uc: uc} }

func (h *RapportHandler) Create(c echo.Context) error {
	var in domain.Rapport
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&in); err != nil {
		return failValidation(c, err)
	}
	if err := h.uc.Create(c.Request().Context(), &in); err != nil {
		return failErr(c, err)
	}
	return c.JSON(http.StatusCreated, Envelope{Success: true, Data: in, Message: "Rapport created successfully"})
}

// Read returns every rapport, or a date-bounded slice for one etablissement
// when the three query params are present.
func (h *RapportHandler) Read(c echo.Context) error {
	etabID := c.QueryParam("etablissement_id")
	from, to := c.QueryParam("from"), c.QueryParam("to")
	if etabID != "" && from != "" && to != "" {
		rows, err := h.uc.SearchByEtablissementDate(c.Request().Context(), etabID, from, to)
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

func (h *RapportHandler) Update(c echo.Context) error {
	var in domain.Rapport
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
	return okMsg(c, http.StatusOK, "Rapport updated successfully")
}

func (h *RapportHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return failErr(c, err)
	}
	return okMsg(c, http.StatusOK, "Rapport deleted successfully")
}

func (h *RapportHandler) Export(c echo.Context) error {
	rows, err := h.uc.Read(c.Request().Context())
	if err != nil {
		return failErr(c, err)
	}
	f, err := export.Rapports(rows)
	if err != nil {
		return failErr(c, err)
	}
	defer f.Close()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+export.Filename("rapport", time.Now())+`"`)
	res.WriteHeader(http.StatusOK)
	return f.Write(res)
}
