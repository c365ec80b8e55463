// Package mail sends the rendered digest through SendGrid's v3 mail send
// endpoint. Delivery itself is the provider's problem; a non-2xx answer is
// the run's terminal failure.
package mail

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sendgrid/rest"
	sendgrid "github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const defaultHost = "https://api.sendgrid.com"

type Config struct {
	APIKey string
	From   string
	To     string
	Host   string // override for tests; defaults to api.sendgrid.com
}

type Client struct {
	cfg Config
}

func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("sendgrid api key not set")
	}
	if strings.TrimSpace(cfg.To) == "" {
		return nil, errors.New("recipient address not set")
	}
	if strings.TrimSpace(cfg.From) == "" {
		cfg.From = cfg.To
	}
	if cfg.Host == "" {
		cfg.Host = defaultHost
	}
	return &Client{cfg: cfg}, nil
}

// Send posts one HTML email (with a plain-text fallback part) to the fixed
// recipient. No retries: the caller treats failure as fatal for the run.
func (c *Client) Send(ctx context.Context, subject, plainBody, htmlBody string) error {
	msg := sgmail.NewSingleEmail(
		sgmail.NewEmail("", c.cfg.From),
		subject,
		sgmail.NewEmail("", c.cfg.To),
		plainBody,
		htmlBody,
	)

	req := sendgrid.GetRequest(c.cfg.APIKey, "/v3/mail/send", c.cfg.Host)
	req.Method = rest.Post
	cli := &sendgrid.Client{Request: req}

	resp, err := cli.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid status %d: %s", resp.StatusCode, strings.TrimSpace(resp.Body))
	}
	return nil
}
