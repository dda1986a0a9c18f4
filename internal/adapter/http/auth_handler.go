package http

import (
	"net/http"

	"temple-membership-backend/internal/adapter/middleware"
	"temple-membership-backend/internal/usecase/auth"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct{ uc *auth.Usecase }

func NewAuthHandler(uc *auth.Usecase) *AuthHandler { return &AuthHandler{uc: uc} }

type signUpReq struct {
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,min=2"`
	Phone    string `json:"phone"     validate:"omitempty,phone10"`
}

type signInReq struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.SignUp(c.Request().Context(), auth.SignUpInput(req))
	if err != nil {
		code, body := errorJSON(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.SignIn(c.Request().Context(), auth.SignInInput(req))
	if err != nil {
		code, body := errorJSON(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, dto)
}

// Me echoes the authenticated principal; useful for session checks.
func (h *AuthHandler) Me(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"user_id":   p.UserID,
		"email":     p.Email,
		"full_name": p.FullName,
		"phone":     p.Phone,
	})
}
