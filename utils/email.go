package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"gopkg.in/gomail.v2"
)

const resendBaseURL = "https://api.resend.com"

// ResendClient sends transactional email through the Resend API
type ResendClient struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

// NewResendClient creates a client configured from the environment
func NewResendClient() *ResendClient {
	return &ResendClient{
		APIKey:  os.Getenv("RESEND_API_KEY"),
		BaseURL: resendBaseURL,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type resendResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Send delivers a single HTML email and returns the provider's message id.
// Failures are returned as a ProviderError carrying the provider's message.
func (r *ResendClient) Send(from, to, subject, html string) (string, error) {
	if r.APIKey == "" {
		return "", &ProviderError{Provider: "resend", Message: "API key not configured"}
	}

	payload, err := json.Marshal(resendRequest{
		From:    from,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal email payload: %v", err)
	}

	req, err := http.NewRequest("POST", r.BaseURL+"/emails", bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.Client.Do(req)
	if err != nil {
		return "", &ProviderError{Provider: "resend", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ProviderError{Provider: "resend", Err: err}
	}

	var parsed resendResponse
	if err := json.Unmarshal(body, &parsed); err != nil && resp.StatusCode < 300 {
		return "", &ProviderError{Provider: "resend", Message: "unexpected response: " + string(body)}
	}

	if resp.StatusCode >= 300 {
		message := parsed.Message
		if message == "" {
			message = string(body)
		}
		return "", &ProviderError{Provider: "resend", Message: message}
	}

	return parsed.ID, nil
}

// SenderIdentity returns the fixed From identity used for outbound mail
func SenderIdentity() string {
	if from := os.Getenv("EMAIL_FROM"); from != "" {
		return from
	}
	return "DhowLine Cruises <bookings@dhowline.ae>"
}

// SendEmail dispatches an HTML email through Resend, falling back to SMTP
// when no Resend key is configured. Returns the provider message id (empty
// for SMTP sends, which have none).
func SendEmail(to, subject, html string) (string, error) {
	client := NewResendClient()
	if client.APIKey != "" {
		return client.Send(SenderIdentity(), to, subject, html)
	}
	if err := SendEmailSMTP(to, subject, html); err != nil {
		return "", err
	}
	return "", nil
}

// SendEmailSMTP sends an email over plain SMTP. Used as the dev/fallback
// transport and for internal admin alerts.
func SendEmailSMTP(to, subject, html string) error {
	host := os.Getenv("SMTP_HOST")
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")

	m := gomail.NewMessage()
	m.SetHeader("From", SenderIdentity())
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	d := gomail.NewDialer(host, port, username, password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}
	return nil
}

// SendAdminAlert emails the operations inbox. Best effort; failures are
// logged by the caller.
func SendAdminAlert(subject, html string) error {
	alertTo := os.Getenv("ADMIN_ALERT_EMAIL")
	if alertTo == "" {
		return nil
	}
	return SendEmailSMTP(alertTo, subject, html)
}
