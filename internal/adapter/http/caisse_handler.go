package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	domain "feffi-backend/internal/domain/caisse"
	"feffi-backend/internal/usecase/caisse"
	"feffi-backend/internal/usecase/export"
)

type CaisseHandler struct{ uc *caisse.Usecase }

func NewCaisseHandler(uc *caisse.Usecase) *CaisseHandler { return &CaisseHandler{uc: uc} }

func (h *CaisseHandler) Create(c echo.Context) error {
	var in domain.Caisse
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&in); err != nil {
		return failValidation(c, err)
	}
	if err := h.uc.Create(c.Request().Context(), &in); err != nil {
		return failErr(c, err)
	}
	return c.JSON(http.StatusCreated, Envelope{Success: true, Data: in, Message: "Caisse created successfully"})
}

func (h *CaisseHandler) Read(c echo.Context) error {
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

func (h *CaisseHandler) Update(c echo.Context) error {
	var in domain.Caisse
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
	return okMsg(c, http.StatusOK, "Caisse updated successfully")
}

func (h *CaisseHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return failErr(c, err)
	}
	return okMsg(c, http.StatusOK, "Caisse deleted successfully")
}

func (h *CaisseHandler) Export(c echo.Context) error {
	rows, err := h.uc.Read(c.Request().Context())
	if err != nil {
		return failErr(c, err)
	}
	f, err := export.Caisses(rows)
	if err != nil {
		return failErr(c, err)
	}
	defer f.Close()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+export.Filename("caisse", time.Now())+`"`)
	res.WriteHeader(http.StatusOK)
	return f.Write(res)
}
