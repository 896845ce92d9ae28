package domain

import (
	"context"
	"time"
)

// AccountRepository defines account data access operations
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	FindByID(ctx context.Context, id uint) (*Account, error)
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByPhone(ctx context.Context, phone string) (*Account, error)
	// ExistsByIdentity runs the single combined uniqueness query over
	// username, email and phone.
	ExistsByIdentity(ctx context.Context, username, email, phone string) (bool, error)
	// UpdateSessionToken overwrites the stored token; an empty string
	// clears it (logout).
	UpdateSessionToken(ctx context.Context, id uint, token string) error
	UpdateRegisterType(ctx context.Context, id uint, t RegisterType) error
	UpdateRegisterStep(ctx context.Context, id uint, step RegisterStep) error
	UpdateSystemRole(ctx context.Context, id uint, role SystemRole) error
}

// ProfileRepository defines role-profile data access operations.
// Driver and owner profiles live in separate tables keyed by account ID.
type ProfileRepository interface {
	CreateDriver(ctx context.Context, profile *RoleProfile) error
	CreateOwner(ctx context.Context, profile *RoleProfile) error
	// CreateBoth inserts a driver and an owner profile for the same
	// account in one transaction; neither row survives a failure.
	CreateBoth(ctx context.Context, driver, owner *RoleProfile) error
	FindDriver(ctx context.Context, accountID uint) (*RoleProfile, error)
	FindOwner(ctx context.Context, accountID uint) (*RoleProfile, error)
	// SetDocument stores a document reference and flips the matching
	// presence flag on the table selected by the account's register type.
	SetDocument(ctx context.Context, accountID uint, t RegisterType, kind DocumentKind, ref string) error
}

// OTPStore persists at most one outstanding code per account.
type OTPStore interface {
	// Replace atomically removes any prior entry for the account and
	// stores the new one.
	Replace(ctx context.Context, entry *OTPEntry) error
	Find(ctx context.Context, accountID uint) (*OTPEntry, error)
	Delete(ctx context.Context, accountID uint) error
}

// InvitationRepository defines invitation data access operations
type InvitationRepository interface {
	// CreatePending inserts a pending invitation, failing with
	// ErrInvitationExists if one already exists for the (bus, invitee)
	// pair. Check and insert run in one transaction.
	CreatePending(ctx context.Context, inv *Invitation) error
	FindByID(ctx context.Context, id uint) (*Invitation, error)
	ListPendingForInvitee(ctx context.Context, inviteeID uint) ([]Invitation, error)
	// UpdateStatus transitions from -> to, failing with
	// ErrInvitationNotPending when the row is no longer in from.
	UpdateStatus(ctx context.Context, id uint, from, to InvitationStatus) error
}

// FleetRepository defines bus and assignment data access operations
type FleetRepository interface {
	CreateBus(ctx context.Context, bus *Bus) error
	FindBus(ctx context.Context, id uint) (*Bus, error)
	ListBusesByOwner(ctx context.Context, ownerID uint) ([]Bus, error)
	AssignDriver(ctx context.Context, busID, driverID uint) error
	IsDriverAssigned(ctx context.Context, busID, driverID uint) (bool, error)
	ListAssignedDrivers(ctx context.Context, busID uint) ([]uint, error)
}

// TripRepository defines trip and stop-point data access operations
type TripRepository interface {
	Create(ctx context.Context, trip *Trip) error
	FindByID(ctx context.Context, id uint) (*Trip, error)
	PreviousTrips(ctx context.Context, driverID uint, before time.Time) ([]Trip, error)
	UpcomingTrips(ctx context.Context, driverID uint, after time.Time) ([]Trip, error)
	AddStop(ctx context.Context, stop *StopPoint) error
	StopsByTrip(ctx context.Context, tripID uint) ([]StopPoint, error)
}

// LocationStore keeps the latest reported position per bus.
type LocationStore interface {
	Set(ctx context.Context, loc *BusLocation) error
	Get(ctx context.Context, busID uint) (*BusLocation, error)
}

// ContentRepository serves landing-screen content.
type ContentRepository interface {
	ListSliders(ctx context.Context) ([]Slider, error)
}

// NotificationService defines notification delivery operations
type NotificationService interface {
	SendSMS(to, message string) error
	SendEmail(to, subject, body string) error
}

// TokenService defines session token operations
type TokenService interface {
	Mint(accountID uint) (token string, expiresAt time.Time, err error)
	Parse(token string) (*TokenClaims, error)
}

// RegistrationService owns the onboarding state machine.
type RegistrationService interface {
	CreateBasicAccount(ctx context.Context, username, email, phone, firstName, lastName string) (*Account, error)
	SetRegisterType(ctx context.Context, accountID uint, t RegisterType) error
	// CompleteRoleProfile requires the account to pre-exist and mints a
	// session token on success.
	CompleteRoleProfile(ctx context.Context, accountID uint, t RegisterType) (*AuthResult, error)
}

// OTPService defines the one-time-code lifecycle.
type OTPService interface {
	Issue(ctx context.Context, account *Account, channel Channel) (*OTPEntry, error)
	Validate(ctx context.Context, accountID uint, code string) error
}

// AuthService defines login, session and identity resolution.
type AuthService interface {
	// Login issues an OTP for the account matching exactly one of email
	// or phone, and returns the account's ID.
	Login(ctx context.Context, email, phone string) (uint, error)
	ValidateOTP(ctx context.Context, email, phone, code string) (*AuthResult, error)
	// Authenticate resolves a presented bearer token to its account. The
	// token must verify cryptographically and equal the stored value.
	Authenticate(ctx context.Context, token string) (*Account, error)
	Logout(ctx context.Context, accountID uint) error
	Profile(ctx context.Context, accountID uint) (*Account, error)
}

// AuthorizationService defines role-gated access checks.
type AuthorizationService interface {
	// RequireRole fails with ErrInsufficientRole when the account's role
	// ranks below min, and ErrRoleUnknown when the role is unrecognized.
	RequireRole(account *Account, min SystemRole) error
	SetSystemRole(ctx context.Context, accountID uint, role SystemRole) error
}

// InvitationService owns the owner-to-captain invitation state machine.
type InvitationService interface {
	Create(ctx context.Context, ownerID, busID, inviteeID uint) (*Invitation, error)
	ListPending(ctx context.Context, inviteeID uint) ([]Invitation, error)
	Reply(ctx context.Context, invitationID, inviteeID uint, accept bool) (*Invitation, error)
}

// FleetService owns buses, trips and live locations.
type FleetService interface {
	RegisterBus(ctx context.Context, bus *Bus) (*Bus, error)
	ListOwnerBuses(ctx context.Context, ownerID uint) ([]Bus, error)
	CreateTrip(ctx context.Context, trip *Trip) (*Trip, error)
	PreviousTrips(ctx context.Context, driverID uint) ([]Trip, error)
	UpcomingTrips(ctx context.Context, driverID uint) ([]Trip, error)
	AddStop(ctx context.Context, stop *StopPoint) (*StopPoint, error)
	TripStops(ctx context.Context, tripID uint) ([]StopPoint, error)
	ReportLocation(ctx context.Context, driverID uint, loc *BusLocation) error
	Location(ctx context.Context, busID uint) (*BusLocation, error)
	// AssignedDrivers lists the captain account IDs on a bus; only the
	// bus's owner may read the list.
	AssignedDrivers(ctx context.Context, ownerID, busID uint) ([]uint, error)
}

// LocationPublisher receives each accepted location report, fanning it
// out to live subscribers.
type LocationPublisher interface {
	Publish(loc *BusLocation)
}

// DocumentService attaches identity documents to the active role profile.
type DocumentService interface {
	Attach(ctx context.Context, accountID uint, kind DocumentKind, ref string) error
	// Profiles resolves the account's role profiles; a profile the
	// account never completed comes back nil rather than as an error.
	Profiles(ctx context.Context, account *Account) (driver, owner *RoleProfile, err error)
}

// PolicyService defines authorization policy operations
type PolicyService interface {
	AddPolicy(role, resource, action string) error
	RemovePolicy(role, resource, action string) error
	CheckPermission(role, resource, action string) (bool, error)
	GetPolicies() [][]string
}

// CasbinEnforcer interface defines the methods we need from Casbin enforcer
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
