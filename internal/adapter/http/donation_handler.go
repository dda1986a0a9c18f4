package http

import (
	"net/http"

	"temple-membership-backend/internal/adapter/middleware"
	donationUsecase "temple-membership-backend/internal/usecase/donation"

	"github.com/labstack/echo/v4"
)

type DonationHandler struct{ uc *donationUsecase.Usecase }

func NewDonationHandler(uc *donationUsecase.Usecase) *DonationHandler {
	return &DonationHandler{uc: uc}
}

type recordDonationReq struct {
	DonorName string  `json:"donor_name" validate:"required,min=2"`
	Phone     string  `json:"phone"      validate:"required,phone10"`
	Amount    float64 `json:"amount"     validate:"required,gte=10"`
	UpiID     string  `json:"upi_id"     validate:"required,upi"`
}

func (h *DonationHandler) Record(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}
	var req recordDonationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Record(c.Request().Context(), p, donationUsecase.RecordInput(req))
	if err != nil {
		code, body := errorJSON(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *DonationHandler) ListAll(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}
	dtos, err := h.uc.ListAll(c.Request().Context(), p)
	if err != nil {
		code, body := errorJSON(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, dtos)
}
