package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"feffi-backend/internal/usecase/auth"
)

type AuthHandler struct{ uc *auth.Usecase }

func NewAuthHandler(uc *auth.Usecase) *AuthHandler { return &AuthHandler{uc: uc} }

type credentialsReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return failValidation(c, err)
	}
	dto, err := h.uc.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(http.StatusCreated, Envelope{Success: true, Data: dto, Message: "Registration successful"})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return failValidation(c, err)
	}
	dto, err := h.uc.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: dto, Message: "Login successful"})
}

func (h *AuthHandler) ReadUsers(c echo.Context) error {
	users, err := h.uc.ReadUsers(c.Request().Context())
	if err != nil {
		return failErr(c, err)
	}
	return okData(c, http.StatusOK, users)
}

type updateUserReq struct {
	Username string `json:"username" validate:"required"`
	// blank password keeps the stored hash
	Password string `json:"password"`
}

func (h *AuthHandler) UpdateUser(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid user id")
	}
	var req updateUserReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return failValidation(c, err)
	}
	if err := h.uc.UpdateUser(c.Request().Context(), userID, req.Username, req.Password); err != nil {
		return failErr(c, err)
	}
	return okMsg(c, http.StatusOK, "User updated successfully")
}

func (h *AuthHandler) DeleteUser(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid user id")
	}
	if err := h.uc.DeleteUser(c.Request().Context(), userID); err != nil {
		return failErr(c, err)
	}
	return okMsg(c, http.StatusOK, "User deleted successfully")
}
