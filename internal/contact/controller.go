// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultSubmitTimeout bounds a single sink call.
const DefaultSubmitTimeout = 15 * time.Second

// Submission errors.
var (
	// ErrSubmitInFlight is returned when a submit arrives while another one
	// is still waiting for the sink.
	ErrSubmitInFlight = errors.New("submission already in flight")
	// ErrInvalid is returned when validation fails; no sink call is made.
	ErrInvalid = errors.New("contact form is invalid")
	// ErrSubmitFailed wraps any sink failure, including timeouts.
	ErrSubmitFailed = errors.New("contact submission failed")
)

// Config holds controller dependencies.
type Config struct {
	Sink    Sink
	Timeout time.Duration // Upper bound for the sink call (default: 15s)
	Logger  *slog.Logger
}

// Controller owns the state of one visitor's contact form. It is safe for
// concurrent use; at most one submission is in flight at a time.
type Controller struct {
	mu      sync.Mutex
	state   State
	sink    Sink
	timeout time.Duration
	logger  *slog.Logger
}

// NewController creates a controller in the idle state with empty fields.
func NewController(cfg Config) *Controller {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultSubmitTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Controller{
		state:   State{Status: StatusIdle},
		sink:    cfg.Sink,
		timeout: cfg.Timeout,
		logger:  cfg.Logger,
	}
}

// State returns the current snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Change stores a new value for field and clears that field's error.
// WhatsApp input is reformatted from its digits on every change.
func (c *Controller) Change(field Field, value string) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.change(field, value)
	return c.state
}

// change applies one field edit. Callers hold c.mu.
func (c *Controller) change(field Field, value string) {
	if field == FieldWhatsApp {
		value = FormatPhone(value)
	}
	c.state.Fields = c.state.Fields.With(field, value)
	if c.state.Errors.Get(field) != "" {
		c.state.Errors = c.state.Errors.With(field, "")
	}
}

// Submit validates the form and, when valid, sends it to the sink exactly
// once. On success the fields are cleared; on failure they are kept so the
// visitor can retry by hand.
//
// The sink call is detached from ctx cancellation and bounded by the
// controller timeout instead.
func (c *Controller) Submit(ctx context.Context, t Translator) (State, error) {
	return c.SubmitValues(ctx, t, nil)
}

// SubmitValues is Submit for a posted form: values that differ from the
// stored ones are applied as changes first. Nothing is applied while another
// submission is in flight. Unchanged values are left alone, so an untouched
// WhatsApp field stays empty instead of becoming "+".
func (c *Controller) SubmitValues(ctx context.Context, t Translator, values map[Field]string) (State, error) {
	if t == nil {
		t = IdentityTranslator
	}

	c.mu.Lock()
	if c.state.Status == StatusSubmitting {
		s := c.state
		c.mu.Unlock()
		return s, ErrSubmitInFlight
	}

	for _, f := range AllFields() {
		if v, ok := values[f]; ok && v != c.state.Fields.Get(f) {
			c.change(f, v)
		}
	}

	errs, ok := Validate(t, c.state.Fields)
	c.state.Errors = errs
	if !ok {
		s := c.state
		c.mu.Unlock()
		return s, ErrInvalid
	}

	c.state.Status = StatusSubmitting
	c.state.Message = ""
	payload := PayloadFrom(c.state.Fields)
	c.mu.Unlock()

	id := uuid.NewString()
	logger := c.logger.With("submission_id", id)
	logger.Info("sending contact submission")

	start := time.Now()
	err := c.send(ctx, payload)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.state.Status = StatusError
		c.state.Message = t.T(KeySubmitError)
		logger.Warn("contact submission failed",
			"error", err,
			"rejected", IsRejected(err),
			"timeout", errors.Is(err, context.DeadlineExceeded),
			"duration", time.Since(start))
		return c.state, fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}

	c.state.Status = StatusSuccess
	c.state.Fields = Fields{}
	c.state.Message = t.T(KeySubmitSuccess)
	logger.Info("contact submission delivered", "duration", time.Since(start))
	return c.state, nil
}

// send calls the sink under the controller timeout.
func (c *Controller) send(ctx context.Context, p Payload) error {
	if c.sink == nil {
		return errors.New("no sink configured")
	}
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
	defer cancel()
	return c.sink.Send(sendCtx, p)
}
