package services

import "errors"

// Sentinel errors surfaced by the service layer. Controllers map these to
// HTTP statuses; none are fatal to the process.
var (
	ErrInvalidDateRange     = errors.New("start date must be before end date")
	ErrRoomUnavailable      = errors.New("room is not available for the requested dates")
	ErrNotFound             = errors.New("record not found")
	ErrAlreadyProcessed     = errors.New("reservation already paid or not payable")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUnauthorized         = errors.New("admin session required")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidRoomInput     = errors.New("invalid room input")
	ErrInvalidSettings      = errors.New("invalid settings")
	ErrInvalidRoomStatus    = errors.New("invalid room status")
	ErrRoomInUse            = errors.New("room has reservations and cannot be deleted")
)
