package domain

import "time"

// RegisterType is the role an account selected during onboarding.
type RegisterType string

const (
	RegisterTypeUnset    RegisterType = "unset"
	RegisterTypeCaptain  RegisterType = "captain"
	RegisterTypeBusOwner RegisterType = "bus_owner"
	RegisterTypeBoth     RegisterType = "both"
)

// ValidRegisterType reports whether t is a role a caller may select.
// The zero value "unset" is assigned by the system, never by a request.
func ValidRegisterType(t RegisterType) bool {
	switch t {
	case RegisterTypeCaptain, RegisterTypeBusOwner, RegisterTypeBoth:
		return true
	}
	return false
}

// RegisterStep tracks how far an account has progressed through onboarding.
type RegisterStep string

const (
	RegisterStepNone         RegisterStep = "none"
	RegisterStepDriverDone   RegisterStep = "completed_driver"
	RegisterStepBusOwnerDone RegisterStep = "completed_bus_owner"
)

// SystemRole is the administrative privilege level of an account.
type SystemRole string

const (
	SystemRoleUser       SystemRole = "user"
	SystemRoleAdmin      SystemRole = "admin"
	SystemRoleSuperAdmin SystemRole = "super_admin"
)

// RoleRank returns the privilege rank of a system role, or 0 when the
// role is not recognized.
func RoleRank(r SystemRole) int {
	switch r {
	case SystemRoleUser:
		return 1
	case SystemRoleAdmin:
		return 2
	case SystemRoleSuperAdmin:
		return 3
	}
	return 0
}

// Account represents a registered identity, independent of its role.
// Email, phone and username are each globally unique. SessionToken holds
// the single live token for the account; an empty value means logged out.
type Account struct {
	ID           uint
	Username     string
	Email        string
	Phone        string
	FirstName    string
	LastName     string
	RegisterType RegisterType
	RegisterStep RegisterStep
	SystemRole   SystemRole
	SessionToken string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RoleProfile holds role-specific extension data keyed by the owning
// account's ID. Driver and owner profiles are structurally parallel; the
// Valid* booleans only track that a document was uploaded, not that it
// was reviewed.
type RoleProfile struct {
	AccountID     uint
	PassportRef   string
	IDCardRef     string
	ValidPassport bool
	ValidIDCard   bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DocumentKind names an identity document a profile can carry.
type DocumentKind string

const (
	DocumentPassport DocumentKind = "passport"
	DocumentIDCard   DocumentKind = "idcard"
)

// Channel is the contact channel an OTP is delivered on.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelPhone Channel = "phone"
)

// OTPEntry is the single outstanding one-time code for an account.
type OTPEntry struct {
	AccountID uint      `json:"account_id"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the code is past its validity window.
func (o *OTPEntry) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}

// AuthResult is the outcome of a successful OTP validation.
type AuthResult struct {
	Account      *Account
	SessionToken string
	ExpiresAt    time.Time
}

// TokenClaims is the decoded identity carried by a session token.
type TokenClaims struct {
	AccountID uint  `json:"account_id"`
	IssuedAt  int64 `json:"iat"`
	ExpiresAt int64 `json:"exp"`
}

// InvitationStatus is the state of an owner-to-captain invitation.
// Accepted and rejected are terminal.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationRejected InvitationStatus = "rejected"
)

// Invitation is an owner's request to assign a captain to a bus.
type Invitation struct {
	ID        uint
	OwnerID   uint
	BusID     uint
	InviteeID uint
	Status    InvitationStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Bus is a vehicle registered by an owner account.
type Bus struct {
	ID                   uint
	OwnerID              uint
	BusNumber            int
	BoardSymbol          string
	DrivingLicenseNumber int
	Specification        string
	AirConditioner       bool
	ImageRef             string
	CreatedAt            time.Time
}

// Trip is a scheduled journey for a bus driven by an assigned captain.
type Trip struct {
	ID               uint
	BusID            uint
	DriverID         uint
	Date             string // YYYY-MM-DD
	StartTime        string // HH:MM:SS
	EndTime          string
	PassengerType    string
	SubscriptionType string
	StartAddress     string
	EndAddress       string
	CreatedAt        time.Time
}

// StopPoint is a named coordinate on a trip's route.
type StopPoint struct {
	ID        uint
	TripID    uint
	Name      string
	Latitude  float64
	Longitude float64
}

// BusLocation is the most recent reported position of a bus.
type BusLocation struct {
	BusID      uint      `json:"bus_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	ReportedAt time.Time `json:"reported_at"`
}

// Slider is a promotional image shown on the app's landing screen.
type Slider struct {
	ID       uint
	ImageURL string
	Caption  string
	Position int
}
