package http

import (
	"net/http"

	"temple-membership-backend/internal/adapter/middleware"
	appDomain "temple-membership-backend/internal/domain/application"
	appUsecase "temple-membership-backend/internal/usecase/application"

	"github.com/labstack/echo/v4"
)

// AdminHandler covers the review surface: listing, status transitions,
// member-id issuance and record corrections. Role checks live in the usecase.
type AdminHandler struct{ uc *appUsecase.Usecase }

func NewAdminHandler(uc *appUsecase.Usecase) *AdminHandler { return &AdminHandler{uc: uc} }

func (h *AdminHandler) ListApplications(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}
	f := appDomain.ListFilter{
		Status:       appDomain.Status(c.QueryParam("status")),
		Name:         c.QueryParam("name"),
		AadharNumber: c.QueryParam("aadhar"),
	}
	dtos, err := h.uc.ListAll(c.Request().Context(), p, f)
	if err != nil {
		code, body := errorJSON(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, dtos)
}

type transitionReq struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

func (h *AdminHandler) UpdateStatus(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}
	applicationID := c.Param("application_id")
	if applicationID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing application_id path param"})
	}
	var req transitionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Transition(c.Request().Context(), p, applicationID, appDomain.Status(req.Status))
	if err != nil {
		code, body := errorJSON(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, dto)
}

type assignMemberIDReq struct {
	MemberID string `json:"member_id" validate:"required,min=3,max=32"`
}

func (h *AdminHandler) AssignMemberID(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}
	applicationID := c.Param("application_id")
	if applicationID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing application_id path param"})
	}
	var req assignMemberIDReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.AssignMemberID(c.Request().Context(), p, applicationID, req.MemberID)
	if err != nil {
		code, body := errorJSON(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, dto)
}

type adminUpdateReq struct {
	FullName     string `json:"full_name"     validate:"required,min=2"`
	Address      string `json:"address"       validate:"required,min=10"`
	Phone        string `json:"phone"         validate:"required,phone10"`
	City         string `json:"city"          validate:"required,min=2"`
	State        string `json:"state"         validate:"required,min=2"`
	Pincode      string `json:"pincode"       validate:"required,len=6,digits"`
	AadharNumber string `json:"aadhar_number" validate:"required,len=12,digits"`
}

func (h *AdminHandler) UpdateApplication(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}
	applicationID := c.Param("application_id")
	if applicationID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing application_id path param"})
	}
	var req adminUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.AdminUpdate(c.Request().Context(), p, applicationID, appUsecase.AdminUpdateInput(req))
	if err != nil {
		code, body := errorJSON(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, dto)
}
