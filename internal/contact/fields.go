// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

// Package contact implements the contact form: field state, validation,
// phone formatting and the single-shot submission to an external sink.
package contact

import "errors"

// Field identifies one input of the contact form.
type Field string

// Contact form fields, in display order.
const (
	FieldName     Field = "name"
	FieldEmail    Field = "email"
	FieldWhatsApp Field = "whatsapp"
	FieldSubject  Field = "subject"
	FieldMessage  Field = "message"
)

// ErrUnknownField is returned when a field name does not belong to the form.
var ErrUnknownField = errors.New("unknown contact field")

// AllFields returns every form field in display order.
func AllFields() []Field {
	return []Field{FieldName, FieldEmail, FieldWhatsApp, FieldSubject, FieldMessage}
}

// ParseField converts a form input name into a Field.
func ParseField(s string) (Field, error) {
	for _, f := range AllFields() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", ErrUnknownField
}

// Fields holds the current values of the contact form.
type Fields struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	WhatsApp string `json:"whatsapp"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
}

// Get returns the value of a field.
func (f Fields) Get(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldWhatsApp:
		return f.WhatsApp
	case FieldSubject:
		return f.Subject
	case FieldMessage:
		return f.Message
	}
	return ""
}

// With returns a copy of f with one field replaced.
func (f Fields) With(field Field, value string) Fields {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldWhatsApp:
		f.WhatsApp = value
	case FieldSubject:
		f.Subject = value
	case FieldMessage:
		f.Message = value
	}
	return f
}

// Errors holds one validation message per field. An empty string means the
// field is valid.
type Errors struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	WhatsApp string `json:"whatsapp"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
}

// Get returns the error message of a field.
func (e Errors) Get(field Field) string {
	return Fields(e).Get(field)
}

// With returns a copy of e with one field's message replaced.
func (e Errors) With(field Field, msg string) Errors {
	return Errors(Fields(e).With(field, msg))
}

// Valid reports whether no field carries an error.
func (e Errors) Valid() bool {
	return e == Errors{}
}

// Status is the lifecycle of one submission attempt.
type Status string

// Submission statuses.
const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

// State is an immutable snapshot of a form: values, per-field errors and the
// submission status with its banner message.
type State struct {
	Fields  Fields `json:"fields"`
	Errors  Errors `json:"errors"`
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

// Submitting reports whether a submission is in flight. The submit control
// must be disabled while this is true.
func (s State) Submitting() bool {
	return s.Status == StatusSubmitting
}
