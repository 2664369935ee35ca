package mailclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/you-humble/consultancy-desk/intake/internal/model"
)

const sendPath = "/api/v1.0/email/send"

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// client talks to an EmailJS-compatible mail relay.
type client struct {
	baseURL   string
	publicKey string
	http      *http.Client
}

func NewClient(baseURL, publicKey string, httpClient *http.Client) *client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		publicKey: publicKey,
		http:      httpClient,
	}
}

func (c *client) Send(ctx context.Context, msg model.MailMessage) error {
	body, err := json.Marshal(sendRequest{
		ServiceID:      msg.ServiceID,
		TemplateID:     msg.TemplateID,
		UserID:         c.publicKey,
		TemplateParams: msg.Params,
	})
	if err != nil {
		return fmt.Errorf("encode mail request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sendPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrMailDelivery, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		reason, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: relay returned %s: %s", model.ErrMailDelivery, resp.Status, strings.TrimSpace(string(reason)))
	}

	return nil
}
