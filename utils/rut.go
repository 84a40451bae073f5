package utils

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrInvalidRUTFormat means the token does not look like a RUT at all.
	ErrInvalidRUTFormat = errors.New("invalid rut format")
	// ErrInvalidRUTChecksum means the structure is fine but the check digit
	// does not match the mod-11 algorithm.
	ErrInvalidRUTChecksum = errors.New("invalid rut checksum")
)

var rutPattern = regexp.MustCompile(`^\d{7,8}[0-9K]$`)

// NormalizeRUT strips dot and dash separators, uppercases, verifies the
// structure (7 or 8 digits plus a check character 0-9 or K) and enforces the
// mod-11 check digit. It returns the normalized RUT on success.
//
// The checksum is always enforced; there is no format-only mode.
func NormalizeRUT(raw string) (string, error) {
	rut := strings.ToUpper(strings.TrimSpace(raw))
	rut = strings.ReplaceAll(rut, ".", "")
	rut = strings.ReplaceAll(rut, "-", "")

	if !rutPattern.MatchString(rut) {
		return "", ErrInvalidRUTFormat
	}

	body := rut[:len(rut)-1]
	if rutCheckDigit(body) != rut[len(rut)-1:] {
		return "", ErrInvalidRUTChecksum
	}
	return rut, nil
}

// rutCheckDigit computes the expected check character for a digit-only body.
// The multiplier walks 2..7 from the least significant digit and wraps back
// to 2.
func rutCheckDigit(body string) string {
	sum := 0
	mult := 2
	for i := len(body) - 1; i >= 0; i-- {
		sum += int(body[i]-'0') * mult
		if mult == 7 {
			mult = 2
		} else {
			mult++
		}
	}

	switch remainder := 11 - (sum % 11); remainder {
	case 10:
		return "K"
	case 11:
		return "0"
	default:
		return string(rune('0' + remainder))
	}
}
