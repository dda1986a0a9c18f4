package http

import (
	"io"
	"net/http"

	"temple-membership-backend/internal/adapter/middleware"
	profileUsecase "temple-membership-backend/internal/usecase/profile"

	"github.com/labstack/echo/v4"
)

type ProfileHandler struct{ uc *profileUsecase.Usecase }

func NewProfileHandler(uc *profileUsecase.Usecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) Get(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}
	dto, err := h.uc.Get(c.Request().Context(), p)
	if err != nil {
		code, body := errorJSON(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, dto)
}

type updateProfileReq struct {
	FullName string `json:"full_name" validate:"required,min=2"`
	Phone    string `json:"phone"     validate:"omitempty,phone10"`
}

func (h *ProfileHandler) Update(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}
	var req updateProfileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Update(c.Request().Context(), p, profileUsecase.UpdateInput(req))
	if err != nil {
		code, body := errorJSON(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ProfileHandler) UploadAvatar(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}
	fh, err := c.FormFile("avatar")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing avatar file"})
	}
	if fh.Size > maxUploadBytes {
		return c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "avatar exceeds 5 MB"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unreadable avatar file"})
	}
	defer f.Close()
	content, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil || len(content) > maxUploadBytes {
		return c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "avatar exceeds 5 MB"})
	}

	dto, err := h.uc.UploadAvatar(c.Request().Context(), p, profileUsecase.Avatar{
		ContentType: fh.Header.Get("Content-Type"),
		Content:     content,
	})
	if err != nil {
		code, body := errorJSON(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, dto)
}
