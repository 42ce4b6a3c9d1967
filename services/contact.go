package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/venoxy/portfolio-backend/config"
)

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

const resendEndpoint = "https://api.resend.com/emails"

// Mailer relays contact-form submissions to the portfolio owner's inbox via
// the Resend API.
type Mailer struct {
	apiKey    string
	fromEmail string
	toEmail   string
	client    *http.Client
}

// NewMailer reads RESEND_API_KEY, RESEND_FROM_EMAIL and CONTACT_EMAIL from
// configuration.
func NewMailer(cfg map[string]string) (*Mailer, error) {
	apiKey := config.GetString(cfg, "RESEND_API_KEY", "")
	if apiKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY is required")
	}
	fromEmail := config.GetString(cfg, "RESEND_FROM_EMAIL", "")
	if fromEmail == "" {
		return nil, fmt.Errorf("RESEND_FROM_EMAIL is required")
	}
	toEmail := config.GetString(cfg, "CONTACT_EMAIL", "")
	if toEmail == "" {
		return nil, fmt.Errorf("CONTACT_EMAIL is required")
	}

	return &Mailer{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		toEmail:   toEmail,
		client:    &http.Client{},
	}, nil
}

// SendContactMessage forwards one visitor message. The visitor's address
// goes in reply-to so answering the relayed mail reaches them directly.
func (m *Mailer) SendContactMessage(ctx context.Context, name, replyTo, message string) error {
	payload := ResendEmailRequest{
		From:    m.fromEmail,
		To:      []string{m.toEmail},
		ReplyTo: replyTo,
		Subject: fmt.Sprintf("Portfolio contact from %s", name),
		Html: fmt.Sprintf("<p><strong>%s</strong> (%s) wrote:</p><p>%s</p>",
			html.EscapeString(name), html.EscapeString(replyTo), html.EscapeString(message)),
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendEndpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to Resend API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil && errorResp.Message != "" {
			return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, errorResp.Message)
		}
		return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var emailResponse ResendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		log.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
	} else {
		log.Info().Str("emailId", emailResponse.ID).Msg("Relayed contact message via Resend")
	}
	return nil
}
