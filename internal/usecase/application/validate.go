package application

import (
	"fmt"
	"regexp"
	"strings"

	"temple-membership-backend/internal/domain/application"
)

var reDigits = regexp.MustCompile(`^\d+$`)

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

type fields struct {
	fullName     string
	address      string
	phone        string
	city         string
	state        string
	pincode      string
	aadharNumber string
}

func validateFields(f fields) error {
	switch {
	case len(strings.TrimSpace(f.fullName)) < 2:
		return fmt.Errorf("%w: name must be at least 2 characters", application.ErrValidation)
	case len(strings.TrimSpace(f.address)) < 10:
		return fmt.Errorf("%w: address must be at least 10 characters", application.ErrValidation)
	case len(digitsOnly(f.phone)) < 10:
		return fmt.Errorf("%w: phone must be at least 10 digits", application.ErrValidation)
	case len(f.aadharNumber) != 12 || !reDigits.MatchString(f.aadharNumber):
		return fmt.Errorf("%w: aadhar must be exactly 12 digits", application.ErrValidation)
	case len(f.pincode) != 6 || !reDigits.MatchString(f.pincode):
		return fmt.Errorf("%w: pincode must be exactly 6 digits", application.ErrValidation)
	case len(strings.TrimSpace(f.city)) < 2:
		return fmt.Errorf("%w: city must be at least 2 characters", application.ErrValidation)
	case len(strings.TrimSpace(f.state)) < 2:
		return fmt.Errorf("%w: state must be at least 2 characters", application.ErrValidation)
	}
	return nil
}

const maxDocumentBytes = 5 << 20

// extensions by allowed content type; anything else is rejected
var docExtensions = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"application/pdf": ".pdf",
}

func validateDocument(label string, d *Document) error {
	if d == nil {
		return nil
	}
	if len(d.Content) == 0 {
		return fmt.Errorf("%w: %s is empty", application.ErrValidation, label)
	}
	if len(d.Content) > maxDocumentBytes {
		return fmt.Errorf("%w: %s exceeds 5 MB", application.ErrValidation, label)
	}
	if _, ok := docExtensions[d.ContentType]; !ok {
		return fmt.Errorf("%w: %s must be jpeg, png or pdf", application.ErrValidation, label)
	}
	return nil
}
