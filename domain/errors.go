package domain

import "errors"

// Account errors
var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrAccountExists       = errors.New("account already exists")
	ErrProfileExists       = errors.New("role profile already exists")
	ErrProfileNotFound     = errors.New("role profile not found")
	ErrInvalidRegisterType = errors.New("invalid register type")
	ErrContactRequired     = errors.New("exactly one of email or phone number is required")
)

// OTP errors
var (
	ErrOTPNotFound = errors.New("otp not found")
	ErrOTPInvalid  = errors.New("invalid otp code")
	ErrOTPExpired  = errors.New("otp has expired")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
	ErrTokenRevoked   = errors.New("token has been revoked")
)

// Authorization errors
var (
	ErrRoleUnknown      = errors.New("system role is not recognized")
	ErrInsufficientRole = errors.New("insufficient role permissions")
	ErrNotBusOwner      = errors.New("account does not own this bus")
)

// Invitation errors
var (
	ErrInvitationNotFound    = errors.New("invitation not found")
	ErrInvitationExists      = errors.New("pending invitation already exists")
	ErrInvitationNotPending  = errors.New("invitation is no longer pending")
	ErrDriverAlreadyAssigned = errors.New("captain is already assigned to this bus")
	ErrDriverNotAssigned     = errors.New("captain is not assigned to this bus")
	ErrInviteeNotCaptain     = errors.New("invitee is not a captain")
)

// Fleet errors
var (
	ErrBusNotFound  = errors.New("bus not found")
	ErrTripNotFound = errors.New("trip not found")
)

// Dependency errors
var (
	ErrDeliveryFailed = errors.New("notification delivery failed")
)
