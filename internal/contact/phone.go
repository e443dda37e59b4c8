// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

package contact

import (
	"regexp"
	"strings"
)

// Phone number bounds (E.164-inspired).
const (
	PhoneMinDigits = 7
	PhoneMaxDigits = 15

	// FormattedPhoneMaxLen is the input length limit of the WhatsApp field.
	FormattedPhoneMaxLen = 20
)

var (
	// nonDigitRegex matches everything except ASCII digits.
	nonDigitRegex = regexp.MustCompile(`\D`)
	// countryCodeRegex validates the leading country-code candidate.
	countryCodeRegex = regexp.MustCompile(`^[1-9]\d{0,2}$`)
)

// Digits strips every non-digit character from s.
func Digits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// FormatPhone renders raw input as an international number: a leading "+"
// followed by the digits grouped 3/3/4/rest. At most 15 digits are kept.
//
// The output is recomputed from the digits alone, so reformatting formatted
// output yields the same string.
func FormatPhone(raw string) string {
	d := Digits(raw)
	if len(d) > PhoneMaxDigits {
		d = d[:PhoneMaxDigits]
	}

	var b strings.Builder
	b.Grow(len(d) + 4)
	b.WriteByte('+')

	switch {
	case len(d) <= 3:
		b.WriteString(d)
	case len(d) <= 6:
		b.WriteString(d[:3])
		b.WriteByte(' ')
		b.WriteString(d[3:])
	case len(d) <= 10:
		b.WriteString(d[:3])
		b.WriteByte(' ')
		b.WriteString(d[3:6])
		b.WriteByte(' ')
		b.WriteString(d[6:])
	default:
		b.WriteString(d[:3])
		b.WriteByte(' ')
		b.WriteString(d[3:6])
		b.WriteByte(' ')
		b.WriteString(d[6:10])
		b.WriteByte(' ')
		b.WriteString(d[10:])
	}

	return b.String()
}
