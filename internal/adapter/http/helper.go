package http

import (
	"errors"
	"net/http"
	"strings"

	appDomain "temple-membership-backend/internal/domain/application"
	donationDomain "temple-membership-backend/internal/domain/donation"
	eventDomain "temple-membership-backend/internal/domain/event"
	profileDomain "temple-membership-backend/internal/domain/profile"
	userDomain "temple-membership-backend/internal/domain/user"

	authUsecase "temple-membership-backend/internal/usecase/auth"
	profileUsecase "temple-membership-backend/internal/usecase/profile"
)

// ---- helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

// errorStatus translates domain errors to HTTP. Infrastructure detail stays
// in the logs; responses carry only the mapped message.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, appDomain.ErrValidation),
		errors.Is(err, donationDomain.ErrValidation),
		errors.Is(err, eventDomain.ErrValidation),
		errors.Is(err, profileUsecase.ErrValidation),
		errors.Is(err, authUsecase.ErrValidation):
		return http.StatusUnprocessableEntity, err.Error()

	case errors.Is(err, appDomain.ErrConflict):
		return http.StatusConflict, err.Error()
	case errors.Is(err, appDomain.ErrApplicationDecided):
		return http.StatusConflict, "application has already been decided"
	case errors.Is(err, appDomain.ErrInvalidTransition):
		return http.StatusConflict, "invalid status transition"
	case errors.Is(err, appDomain.ErrNotApproved):
		return http.StatusConflict, "application not approved"
	case errors.Is(err, appDomain.ErrMemberIDMissing):
		return http.StatusConflict, "member id not assigned yet"
	case errors.Is(err, userDomain.ErrEmailTaken):
		return http.StatusConflict, err.Error()

	case errors.Is(err, appDomain.ErrAccessDenied),
		errors.Is(err, donationDomain.ErrAccessDenied),
		errors.Is(err, eventDomain.ErrAccessDenied):
		return http.StatusForbidden, "access denied"

	case errors.Is(err, userDomain.ErrInvalidCredentials):
		return http.StatusUnauthorized, err.Error()

	case errors.Is(err, appDomain.ErrNotFound),
		errors.Is(err, eventDomain.ErrNotFound),
		errors.Is(err, profileDomain.ErrNotFound),
		errors.Is(err, userDomain.ErrNotFound):
		return http.StatusNotFound, "not found"

	case errors.Is(err, appDomain.ErrUpload):
		return http.StatusBadGateway, "document upload failed"
	}
	return http.StatusInternalServerError, "something went wrong"
}

func errorJSON(err error) (int, ErrorResponse) {
	code, msg := errorStatus(err)
	return code, ErrorResponse{Error: msg}
}
