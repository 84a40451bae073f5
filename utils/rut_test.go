package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRUTValid(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain 8 digits", "123456785", "123456785"},
		{"with separators", "12.345.678-5", "123456785"},
		{"check digit K", "12345670-K", "12345670K"},
		{"lowercase k", "12345670-k", "12345670K"},
		{"remainder 11 gives 0", "12345675-0", "123456750"},
		{"7 digit body", "7654321-6", "76543216"},
		{"dots only", "12.345.6785", "123456785"},
		{"surrounding space", "  12345678-5 ", "123456785"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeRUT(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeRUTFormatErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"too short", "123456-5"},
		{"too long", "123456789-5"},
		{"letters in body", "12A45678-5"},
		{"bad check char", "12345678-X"},
		{"only separators", ".-"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NormalizeRUT(tc.in)
			assert.ErrorIs(t, err, ErrInvalidRUTFormat)
		})
	}
}

func TestNormalizeRUTChecksumErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"wrong digit", "12345678-4"},
		{"K where digit expected", "12345678-K"},
		{"digit where K expected", "12345670-1"},
		// Structurally fine, but the mod-11 check digit for this body is 0.
		{"wrong check digit for body", "17640901-K"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NormalizeRUT(tc.in)
			assert.ErrorIs(t, err, ErrInvalidRUTChecksum)
		})
	}
}

func TestRUTCheckDigitReferenceTable(t *testing.T) {
	// Reference values computed by hand with the 2..7 cycling multiplier.
	cases := map[string]string{
		"12345678": "5",
		"12345670": "K", // remainder 10
		"12345675": "0", // remainder 11
		"7654321":  "6",
		"17640901": "0",
		"11111111": "1",
	}
	for body, want := range cases {
		assert.Equal(t, want, rutCheckDigit(body), "body %s", body)
	}
}
