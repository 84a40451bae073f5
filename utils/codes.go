package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"math/big"
	"strings"
)

// Confirmation codes avoid ambiguous characters (no I, O, 0, 1) so they
// survive being read over the phone.
const reservationCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// ReservationCodeLength is the length of customer-facing confirmation codes.
const ReservationCodeLength = 8

// GenerateReservationCode returns a random confirmation code. Uses
// crypto/rand with rand.Int to avoid modulo bias.
func GenerateReservationCode() (string, error) {
	var sb strings.Builder
	alphaLen := big.NewInt(int64(len(reservationCodeAlphabet)))
	for i := 0; i < ReservationCodeLength; i++ {
		num, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(reservationCodeAlphabet[num.Int64()])
	}
	return sb.String(), nil
}

// GenerateSecureToken returns a hex token of the given byte length. Used for
// admin session tokens.
func GenerateSecureToken(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("invalid token length")
	}
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
