package http

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	"temple-membership-backend/internal/adapter/middleware"
	appDomain "temple-membership-backend/internal/domain/application"
	appUsecase "temple-membership-backend/internal/usecase/application"

	"github.com/labstack/echo/v4"
)

type ApplicationHandler struct{ uc *appUsecase.Usecase }

func NewApplicationHandler(uc *appUsecase.Usecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

type submitReq struct {
	FullName     string `form:"full_name"     validate:"required,min=2"`
	Address      string `form:"address"       validate:"required,min=10"`
	Phone        string `form:"phone"         validate:"required,phone10"`
	City         string `form:"city"          validate:"required,min=2"`
	State        string `form:"state"         validate:"required,min=2"`
	Pincode      string `form:"pincode"       validate:"required,len=6,digits"`
	AadharNumber string `form:"aadhar_number" validate:"required,len=12,digits"`
	PaymentID    string `form:"payment_id"    validate:"omitempty,max=64"`
	// JSON array of {name, age, relation}
	FamilyMembers string `form:"family_members" validate:"omitempty"`
}

const maxUploadBytes = 5 << 20

// readDocument pulls one optional file part out of the multipart form.
func readDocument(c echo.Context, field string) (*appUsecase.Document, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile || err == multipart.ErrMessageTooLarge {
			return nil, nil
		}
		return nil, nil
	}
	if fh.Size > maxUploadBytes {
		return nil, echo.NewHTTPError(http.StatusRequestEntityTooLarge, field+" exceeds 5 MB")
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	content, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		return nil, err
	}
	if len(content) > maxUploadBytes {
		return nil, echo.NewHTTPError(http.StatusRequestEntityTooLarge, field+" exceeds 5 MB")
	}
	return &appUsecase.Document{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Content:     content,
	}, nil
}

// Submit handles the multipart membership form: text fields plus the identity
// document and passport photo parts.
func (h *ApplicationHandler) Submit(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	var req submitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid form"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	var family []appDomain.FamilyMember
	if req.FamilyMembers != "" {
		if err := json.Unmarshal([]byte(req.FamilyMembers), &family); err != nil {
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "family_members must be a JSON array"})
		}
	}

	identityDoc, err := readDocument(c, "identity_document")
	if err != nil {
		return err
	}
	passportPhoto, err := readDocument(c, "passport_photo")
	if err != nil {
		return err
	}

	dto, err := h.uc.Submit(c.Request().Context(), p, appUsecase.SubmitInput{
		FullName:      req.FullName,
		Address:       req.Address,
		Phone:         req.Phone,
		City:          req.City,
		State:         req.State,
		Pincode:       req.Pincode,
		AadharNumber:  req.AadharNumber,
		PaymentID:     req.PaymentID,
		FamilyMembers: family,
	}, identityDoc, passportPhoto)
	if err != nil {
		code, body := errorJSON(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ApplicationHandler) ListOwn(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}
	dtos, err := h.uc.ListForOwner(c.Request().Context(), p)
	if err != nil {
		code, body := errorJSON(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *ApplicationHandler) MemberCard(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}
	applicationID := c.Param("application_id")
	if applicationID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing application_id path param"})
	}
	card, err := h.uc.FetchMemberCard(c.Request().Context(), p, applicationID)
	if err != nil {
		code, body := errorJSON(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, card)
}
