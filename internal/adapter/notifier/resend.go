package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.resend.com"

// ResendClient posts transactional email through the Resend HTTP API. The
// caller decides whether a failure matters; this client just reports it.
type ResendClient struct {
	apiKey  string
	from    string
	baseURL string
	client  *http.Client
}

func NewResendClient(apiKey, from string) *ResendClient {
	return &ResendClient{
		apiKey:  apiKey,
		from:    from,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// WithBaseURL points the client at a different endpoint (tests).
func (c *ResendClient) WithBaseURL(u string) *ResendClient {
	c.baseURL = u
	return c
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (c *ResendClient) SendMembershipConfirmation(ctx context.Context, email, fullName string, donationAmount float64, applicationID string) error {
	body, err := json.Marshal(sendRequest{
		From:    c.from,
		To:      []string{email},
		Subject: "Membership Application Confirmation",
		HTML:    confirmationHTML(fullName, donationAmount, applicationID),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("resend: status %d: %s", resp.StatusCode, detail)
	}
	return nil
}

func confirmationHTML(fullName string, donationAmount float64, applicationID string) string {
	return fmt.Sprintf(`<html><body>
<h2>Namaste, %s!</h2>
<p>Thank you for applying for temple membership. We have received your application.</p>
<p><strong>Application ID:</strong> %s<br>
<strong>Donation Amount:</strong> &#8377;%.0f<br>
<strong>Status:</strong> Pending Approval</p>
<p>You will receive another email once your application has been reviewed.
You can track the status anytime from your dashboard.</p>
</body></html>`, fullName, applicationID, donationAmount)
}
