// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Sink delivery constants
const (
	DefaultEndpoint = "https://formspree.io/f/xkgzegyj" // Form relay used by the site
	MaxResponseLen  = 10 * 1024                         // Response body read before discarding (10KB)
	UserAgent       = "davirds-portfolio/1.0"           // User-Agent header value
)

// Payload is the JSON body sent to the sink.
type Payload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	WhatsApp string `json:"whatsapp"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
}

// PayloadFrom builds a payload from form values.
func PayloadFrom(f Fields) Payload {
	return Payload(f)
}

// Sink receives contact submissions. Send returns nil only when the message
// was accepted.
type Sink interface {
	Send(ctx context.Context, p Payload) error
}

// RejectedError reports a sink response outside the 2xx range.
type RejectedError struct {
	StatusCode int
	Body       string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("sink rejected submission: status %d", e.StatusCode)
}

// IsRejected reports whether err is a non-2xx sink response.
func IsRejected(err error) bool {
	var re *RejectedError
	return errors.As(err, &re)
}

// HTTPSink posts submissions as JSON to a fixed endpoint.
type HTTPSink struct {
	endpoint string
	client   *http.Client
}

// NewHTTPSink creates a sink for endpoint. A nil client uses a default client
// with connection pooling; request deadlines come from the caller's context.
func NewHTTPSink(endpoint string, client *http.Client) *HTTPSink {
	if client == nil {
		client = &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	return &HTTPSink{endpoint: endpoint, client: client}
}

// Endpoint returns the URL submissions are posted to.
func (s *HTTPSink) Endpoint() string {
	return s.endpoint
}

// Send performs exactly one POST. Any 2xx status is success.
func (s *HTTPSink) Send(ctx context.Context, p Payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, MaxResponseLen))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &RejectedError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}
	return nil
}
