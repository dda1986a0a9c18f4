package http

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
)

// PaymentHandler serves the static UPI payment details for the membership
// fee. Payment is manual: the client renders the deep link as a QR code and
// the transfer happens entirely off-system.
type PaymentHandler struct {
	upiID  string
	payee  string
	amount float64
}

func NewPaymentHandler(upiID, payee string, amount float64) *PaymentHandler {
	return &PaymentHandler{upiID: upiID, payee: payee, amount: amount}
}

func (h *PaymentHandler) Details(c echo.Context) error {
	link := fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%.0f&cu=INR",
		url.QueryEscape(h.upiID), url.QueryEscape(h.payee), h.amount)
	return c.JSON(http.StatusOK, map[string]any{
		"upi_id":     h.upiID,
		"payee_name": h.payee,
		"amount":     h.amount,
		"currency":   "INR",
		"upi_link":   link,
	})
}
