// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

package contact

import "testing"

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "+"},
		{"one digit", "1", "+1"},
		{"three digits", "123", "+123"},
		{"four digits", "1234", "+123 4"},
		{"six digits", "123456", "+123 456"},
		{"seven digits", "1234567", "+123 456 7"},
		{"ten digits", "1234567890", "+123 456 7890"},
		{"eleven digits", "12345678901", "+123 456 7890 1"},
		{"twelve digits", "154899887766", "+154 899 8877 66"},
		{"fifteen digits", "123456789012345", "+123 456 7890 12345"},
		{"truncated past fifteen", "12345678901234567890", "+123 456 7890 12345"},
		{"brazilian mask", "+55 (11) 99999-9999", "+551 199 9999 999"},
		{"letters only", "abc", "+"},
		{"mixed garbage", "a1b2c3d4", "+123 4"},
		{"non-ascii digits stripped", "١٢٣4", "+4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPhone(tt.input); got != tt.want {
				t.Errorf("FormatPhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatPhone_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"+",
		"0",
		"12",
		"+123 45",
		"55 11 9 1295 0091",
		"(11) 91295-0091",
		"+1 (555) 010-9999 ext 12",
		"999999999999999999999",
		"+154 899 8877 66",
		"  +44 20 7946 0958  ",
	}

	for _, in := range inputs {
		once := FormatPhone(in)
		twice := FormatPhone(once)
		if once != twice {
			t.Errorf("FormatPhone not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestFormatPhone_EditMidString(t *testing.T) {
	// Deleting a separator mid-string reflows from the digits alone.
	before := FormatPhone("12345678")
	if before != "+123 456 78" {
		t.Fatalf("setup: got %q", before)
	}

	edited := "+123456 78"
	if got := FormatPhone(edited); got != before {
		t.Errorf("FormatPhone(%q) = %q, want %q", edited, got, before)
	}

	inserted := "+123 4956 78"
	if got := FormatPhone(inserted); got != "+123 495 678" {
		t.Errorf("FormatPhone(%q) = %q, want %q", inserted, got, "+123 495 678")
	}
}

func TestDigits(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"+55 (11) 91295-0091", "5511912950091"},
		{"no digits", ""},
		{"0a0", "00"},
	}

	for _, tt := range tests {
		if got := Digits(tt.input); got != tt.want {
			t.Errorf("Digits(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
