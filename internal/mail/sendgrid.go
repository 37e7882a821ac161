// Copyright (C) 2025 the travel-agency maintainers
// See root-dir/LICENSE for more information

package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/JuanCarriles/travel-agency/internal/model"
)

const defaultBaseURL = "https://api.sendgrid.com"

type SendGridConfig struct {
	APIKey    string
	BaseURL   string
	From      string
	FromName  string
	Recipient string
	Timeout   time.Duration
}

// SendGridConfigFromEnv reads the provider settings from the environment.
// Returns ok=false when no API key is configured.
func SendGridConfigFromEnv() (SendGridConfig, bool) {
	cfg := SendGridConfig{
		APIKey:    strings.TrimSpace(os.Getenv("SENDGRID_API_KEY")),
		BaseURL:   strings.TrimSpace(os.Getenv("SENDGRID_BASE_URL")),
		From:      strings.TrimSpace(os.Getenv("SENDGRID_FROM_EMAIL")),
		FromName:  strings.TrimSpace(os.Getenv("SENDGRID_FROM_NAME")),
		Recipient: strings.TrimSpace(os.Getenv("INQUIRY_RECIPIENT")),
	}
	return cfg, cfg.APIKey != ""
}

// NewSendGrid returns a Sender over the SendGrid v3 mail send API.
func NewSendGrid(cfg SendGridConfig) (*SendGrid, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("missing sendgrid api key")
	}
	if cfg.From == "" || cfg.Recipient == "" {
		return nil, fmt.Errorf("sender and recipient addresses are required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &SendGrid{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: slog.Default().WithGroup("mail"),
	}, nil
}

type SendGrid struct {
	cfg    SendGridConfig
	client *http.Client
	logger *slog.Logger
}

type sgAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sgPayload struct {
	Personalizations []struct {
		To []sgAddress `json:"to"`
	} `json:"personalizations"`
	From     sgAddress `json:"from"`
	ReplyTo  sgAddress `json:"reply_to"`
	Subject  string    `json:"subject"`
	Content  []struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	} `json:"content"`
}

func (s *SendGrid) SendInquiry(ctx context.Context, in *model.Inquiry, destination string) error {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "SendGrid.SendInquiry")
	defer span.End()
	span.SetAttributes(attribute.String("destination", destination))

	subject := "Website inquiry"
	if destination != "" {
		subject = fmt.Sprintf("Website inquiry: %s", destination)
	}

	payload := sgPayload{
		From:    sgAddress{Email: s.cfg.From, Name: s.cfg.FromName},
		ReplyTo: sgAddress{Email: in.Email, Name: in.Name},
		Subject: subject,
	}
	payload.Personalizations = append(payload.Personalizations, struct {
		To []sgAddress `json:"to"`
	}{To: []sgAddress{{Email: s.cfg.Recipient}}})
	payload.Content = append(payload.Content, struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	}{Type: "text/html", Value: inquiryBody(in, destination)})

	raw, err := json.Marshal(payload)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL+"/v3/mail/send", bytes.NewReader(raw))
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		err := fmt.Errorf("%w: provider returned %s: %s", ErrSendFailed, resp.Status, string(body))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.ErrorContext(ctx, "inquiry dispatch rejected", "status", resp.Status)
		return err
	}
	return nil
}

func inquiryBody(in *model.Inquiry, destination string) string {
	var b strings.Builder
	row := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&b, "<tr><td><b>%s</b></td><td>%s</td></tr>", label, html.EscapeString(value))
	}
	b.WriteString("<table>")
	row("Name", in.Name)
	row("Email", in.Email)
	row("Phone", in.Phone)
	row("People", in.People)
	row("Destination", destination)
	row("Language", in.Language)
	b.WriteString("</table>")
	fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(in.Message))
	return b.String()
}
