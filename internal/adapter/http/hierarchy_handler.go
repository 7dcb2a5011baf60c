package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	domain "feffi-backend/internal/domain/hierarchy"
	"feffi-backend/internal/usecase/hierarchy"
)

type HierarchyHandler struct{ uc *hierarchy.Usecase }

func NewHierarchyHandler(uc *hierarchy.Usecase) *HierarchyHandler {
	return &HierarchyHandler{uc: uc}
}

// ---- cascade endpoints ----

// Children serves one step of the cascade. level=root lists the drens; any
// other level names the parent whose children are wanted, and an empty
// parent_id always yields an empty list.
func (h *HierarchyHandler) Children(c echo.Context) error {
	level := c.QueryParam("level")
	parentID := c.QueryParam("parent_id")

	if level == "root" {
		opts, err := h.uc.ListDrens(c.Request().Context())
		if err != nil {
			return failErr(c, err)
		}
		return okData(c, http.StatusOK, opts)
	}

	opts, err := h.uc.ListChildren(c.Request().Context(), hierarchy.Level(level), parentID)
	if err != nil {
		return failErr(c, err)
	}
	return okData(c, http.StatusOK, opts)
}

// Hydrate replays the cascade for a stored ancestor chain, either passed
// inline or looked up from an etablissement id.
func (h *HierarchyHandler) Hydrate(c echo.Context) error {
	if etabID := c.QueryParam("etablissement_id"); etabID != "" {
		hyd, err := h.uc.HydrateEtablissement(c.Request().Context(), etabID)
		if err != nil {
			return failErr(c, err)
		}
		return okData(c, http.StatusOK, hyd)
	}

	var sel hierarchy.Selection
	if err := c.Bind(&sel); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	hyd, err := h.uc.Hydrate(c.Request().Context(), sel)
	if err != nil {
		// partial hydration: upstream selections survive the failed fetch
		return c.JSON(http.StatusOK, Envelope{Success: false, Data: hyd, Error: "cascade interrupted"})
	}
	return okData(c, http.StatusOK, hyd)
}

// ---- dren ----

func (h *HierarchyHandler) CreateDren(c echo.Context) error {
	var d domain.Dren
	if err := c.Bind(&d); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := h.uc.CreateDren(c.Request().Context(), &d); err != nil {
		return failErr(c, err)
	}
	return c.JSON(http.StatusCreated, Envelope{Success: true, Data: d, Message: "DREN created successfully"})
}

func (h *HierarchyHandler) ReadDrens(c echo.Context) error {
	if term := c.QueryParam("search"); term != "" {
		rows, err := h.uc.SearchDrens(c.Request().Context(), term)
		if err != nil {
			return failErr(c, err)
		}
		return okData(c, http.StatusOK, rows)
	}
	rows, err := h.uc.ReadDrens(c.Request().Context())
	if err != nil {
		return failErr(c, err)
	}
	return okData(c, http.StatusOK, rows)
}

func (h *HierarchyHandler) UpdateDren(c echo.Context) error {
	var d domain.Dren
	if err := c.Bind(&d); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	d.ID = c.Param("id")
	if err := h.uc.UpdateDren(c.Request().Context(), &d); err != nil {
		return failErr(c, err)
	}
	return okMsg(c, http.StatusOK, "DREN updated successfully")
}

func (h *HierarchyHandler) DeleteDren(c echo.Context) error {
	if err := h.uc.DeleteDren(c.Request().Context(), c.Param("id")); err != nil {
		return failErr(c, err)
	}
	return okMsg(c, http.StatusOK, "DREN deleted successfully")
}

// ---- cisco ----

func (h *HierarchyHandler) CreateCisco(c echo.Context) error {
	var in domain.Cisco
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&in); err != nil {
		return failValidation(c, err)
	}
	if err := h.uc.CreateCisco(c.Request().Context(), &in); err != nil {
		return failErr(c, err)
	}
	return c.JSON(http.StatusCreated, Envelope{Success: true, Data: in, Message: "CISCO created successfully"})
}

func (h *HierarchyHandler) ReadCiscos(c echo.Context) error {
	rows, err := h.uc.ReadCiscos(c.Request().Context())
	if err != nil {
		return failErr(c, err)
	}
	return okData(c, http.StatusOK, rows)
}

func (h *HierarchyHandler) UpdateCisco(c echo.Context) error {
	var in domain.Cisco
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&in); err != nil {
		return failValidation(c, err)
	}
	in.ID = c.Param("id")
	if err := h.uc.UpdateCisco(c.Request().Context(), &in); err != nil {
		return failErr(c, err)
	}
	return okMsg(c, http.StatusOK, "CISCO updated successfully")
}

func (h *HierarchyHandler) DeleteCisco(c echo.Context) error {
	if err := h.uc.DeleteCisco(c.Request().Context(), c.Param("id")); err != nil {
		return failErr(c, err)
	}
	return okMsg(c, http.StatusOK, "CISCO deleted successfully")
}

// ---- zap ----

func (h *HierarchyHandler) CreateZap(c echo.Context) error {
	var in domain.Zap
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&in); err != nil {
		return failValidation(c, err)
	}
	if err := h.uc.CreateZap(c.Request().Context(), &in); err != nil {
		return failErr(c, err)
	}
	return c.JSON(http.StatusCreated, Envelope{Success: true, Data: in, Message: "ZAP created successfully"})
}

func (h *HierarchyHandler) ReadZaps(c echo.Context) error {
	rows, err := h.uc.ReadZaps(c.Request().Context())
	if err != nil {
		return failErr(c, err)
	}
	return okData(c, http.StatusOK, rows)
}

func (h *HierarchyHandler) UpdateZap(c echo.Context) error {
	var in domain.Zap
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&in); err != nil {
		return failValidation(c, err)
	}
	in.ID = c.Param("id")
	if err := h.uc.UpdateZap(c.Request().Context(), &in); err != nil {
		return failErr(c, err)
	}
	return okMsg(c, http.StatusOK, "ZAP updated successfully")
}

func (h *HierarchyHandler) DeleteZap(c echo.Context) error {
	if err := h.uc.DeleteZap(c.Request().Context(), c.Param("id")); err != nil {
		return failErr(c, err)
	}
	return okMsg(c, http.StatusOK, "ZAP deleted successfully")
}

// ---- etablissement ----

func (h *HierarchyHandler) CreateEtablissement(c echo.Context) error {
	var in domain.Etablissement
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&in); err != nil {
		return failValidation(c, err)
	}
	if err := h.uc.CreateEtablissement(c.Request().Context(), &in); err != nil {
		return failErr(c, err)
	}
	return c.JSON(http.StatusCreated, Envelope{Success: true, Data: in, Message: "Établissement created successfully"})
}

func (h *HierarchyHandler) ReadEtablissements(c echo.Context) error {
	rows, err := h.uc.ReadEtablissements(c.Request().Context())
	if err != nil {
		return failErr(c, err)
	}
	return okData(c, http.StatusOK, rows)
}

func (h *HierarchyHandler) UpdateEtablissement(c echo.Context) error {
	var in domain.Etablissement
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&in); err != nil {
		return failValidation(c, err)
	}
	in.ID = c.Param("id")
	if err := h.uc.UpdateEtablissement(c.Request().Context(), &in); err != nil {
		return failErr(c, err)
	}
	return okMsg(c, http.StatusOK, "Établissement updated successfully")
}

func (h *HierarchyHandler) DeleteEtablissement(c echo.Context) error {
	if err := h.uc.DeleteEtablissement(c.Request().Context(), c.Param("id")); err != nil {
		return failErr(c, err)
	}
	return okMsg(c, http.StatusOK, "Établissement deleted successfully")
}
