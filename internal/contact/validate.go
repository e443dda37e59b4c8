// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

package contact

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MessageMinLength is the minimum length of a trimmed message, in characters.
const MessageMinLength = 10

// Translation keys used for validation and status messages.
const (
	KeyNameRequired        = "validation.nameRequired"
	KeyEmailRequired       = "validation.emailRequired"
	KeyEmailInvalid        = "validation.emailInvalid"
	KeyWhatsAppRequired    = "validation.whatsappRequired"
	KeyWhatsAppLength      = "validation.whatsappLength"
	KeyWhatsAppCountryCode = "validation.whatsappCountryCode"
	KeySubjectRequired     = "validation.subjectRequired"
	KeyMessageRequired     = "validation.messageRequired"
	KeyMessageMinLength    = "validation.messageMinLength"
	KeySubmitSuccess       = "contact.form.success"
	KeySubmitError         = "contact.form.error"
)

// Translator looks up a localized string by key. Implementations return the
// key itself when it is unknown.
type Translator interface {
	T(key string) string
}

// TranslatorFunc adapts a plain function to Translator.
type TranslatorFunc func(key string) string

// T implements Translator.
func (f TranslatorFunc) T(key string) string {
	return f(key)
}

// IdentityTranslator returns every key unchanged.
var IdentityTranslator Translator = TranslatorFunc(func(key string) string { return key })

// emailRegex is the simple local@domain.tld shape. Whitespace means the
// browser's notion of it: Unicode spaces, vertical tab and BOM included.
var emailRegex = regexp.MustCompile(`^[^\s\x0B\p{Z}\x{FEFF}@]+@[^\s\x0B\p{Z}\x{FEFF}@]+\.[^\s\x0B\p{Z}\x{FEFF}@]+$`)

// Validate checks every field independently and returns the per-field
// messages. The boolean is true when no field has an error.
func Validate(t Translator, f Fields) (Errors, bool) {
	if t == nil {
		t = IdentityTranslator
	}

	var errs Errors

	if strings.TrimSpace(f.Name) == "" {
		errs.Name = t.T(KeyNameRequired)
	}

	if strings.TrimSpace(f.Email) == "" {
		errs.Email = t.T(KeyEmailRequired)
	} else if !emailRegex.MatchString(f.Email) {
		errs.Email = t.T(KeyEmailInvalid)
	}

	if strings.TrimSpace(f.WhatsApp) == "" {
		errs.WhatsApp = t.T(KeyWhatsAppRequired)
	} else {
		errs.WhatsApp = validatePhone(t, f.WhatsApp)
	}

	if strings.TrimSpace(f.Subject) == "" {
		errs.Subject = t.T(KeySubjectRequired)
	}

	msg := strings.TrimSpace(f.Message)
	if msg == "" {
		errs.Message = t.T(KeyMessageRequired)
	} else if utf8.RuneCountInString(msg) < MessageMinLength {
		errs.Message = t.T(KeyMessageMinLength)
	}

	return errs, errs.Valid()
}

// validatePhone runs both phone checks in order. When both fail the
// country-code message replaces the length message.
func validatePhone(t Translator, value string) string {
	var msg string
	d := Digits(value)

	if len(d) < PhoneMinDigits || len(d) > PhoneMaxDigits {
		msg = t.T(KeyWhatsAppLength)
	}

	cc := d
	if len(cc) > 3 {
		cc = cc[:3]
	}
	if !countryCodeRegex.MatchString(cc) {
		msg = t.T(KeyWhatsAppCountryCode)
	}

	return msg
}
