package domain

//go:generate mockgen -destination=../../mocks/mock_store.go -package=mocks github.com/metorial/identity-core/internal/identity/domain Store

import (
	"context"
	"time"
)

// Store is the transactional persistence boundary. Implementations
// must return (nil, nil) for lookups that match nothing; only real
// failures travel as errors.
//
// InTx runs fn against a transactional view of the store. fn returns
// the post-commit hooks to run; they are executed strictly after a
// successful commit and never inside the transaction.
type Store interface {
	InTx(ctx context.Context, fn func(tx Store) ([]func(), error)) error

	// Devices.
	GetDevice(ctx context.Context, id string) (*Device, error)
	CreateDevice(ctx context.Context, d *Device) error
	UpdateDeviceSeen(ctx context.Context, id, ip, ua string, lastActiveAt time.Time) error
	CreateDeviceHistory(ctx context.Context, h *DeviceHistory) error

	// Sessions.
	GetSession(ctx context.Context, id string) (*Session, error)
	CreateSession(ctx context.Context, s *Session) error
	BumpSession(ctx context.Context, id string, expiresAt time.Time) error
	TouchSession(ctx context.Context, id string, lastActiveAt time.Time) error
	EndSession(ctx context.Context, id string, at time.Time) error
	FindLiveSessionByUserDevice(ctx context.Context, userID, deviceID string, now time.Time) (*Session, error)
	FindLiveSession(ctx context.Context, userID, deviceID, appID string, now time.Time) (*Session, error)

	// Users.
	GetUser(ctx context.Context, id string) (*User, error)
	FindUserByEmail(ctx context.Context, email string) (*User, error)
	CreateUser(ctx context.Context, u *User) error
	CreateUserEmail(ctx context.Context, e *UserEmail) error
	ListUserEmails(ctx context.Context, userID string) ([]UserEmail, error)
	TouchUser(ctx context.Context, id string, lastActiveAt time.Time) error
	SetUserLastLogin(ctx context.Context, id string, at time.Time) error

	// Federation.
	ListSSOTenantsForApp(ctx context.Context, appID string) ([]SSOTenant, error)
	ListSSOProfilesByEmails(ctx context.Context, emails []string) ([]SSOProfile, error)

	// Auth intents.
	CreateIntent(ctx context.Context, i *AuthIntent) error
	GetIntent(ctx context.Context, id string) (*AuthIntent, error)
	SetIntentVerified(ctx context.Context, id string, at, expiresAt time.Time) error
	SetIntentCaptchaVerified(ctx context.Context, id string, at time.Time) error
	SetIntentUser(ctx context.Context, id, userID string) error
	ConsumeIntent(ctx context.Context, id string, at time.Time) (bool, error)
	CreateIntentStep(ctx context.Context, s *AuthIntentStep) error
	GetStep(ctx context.Context, id string) (*AuthIntentStep, error)
	SetStepVerified(ctx context.Context, id string, at time.Time) error
	CreateIntentCode(ctx context.Context, c *AuthIntentCode) error
	FindCode(ctx context.Context, stepID, code string) (*AuthIntentCode, error)
	CountCodes(ctx context.Context, intentID string) (int, error)
	LatestCodeIssuedAt(ctx context.Context, intentID string) (*time.Time, error)
	CreateVerificationAttempt(ctx context.Context, a *AuthIntentVerificationAttempt) error
	CountFailedVerifications(ctx context.Context, intentID string) (int, error)
	CountIntentsForIdentifierSince(ctx context.Context, identifier string, since time.Time) (int, error)

	// Auth attempts. GetAuthAttempt only returns attempts created after
	// notBefore; older ones are treated as not found.
	CreateAuthAttempt(ctx context.Context, a *AuthAttempt) error
	GetAuthAttempt(ctx context.Context, id string, notBefore time.Time) (*AuthAttempt, error)
	ConsumeAuthAttempt(ctx context.Context, id string) (bool, error)

	// Abuse blocks.
	GetActiveBlock(ctx context.Context, identifier string, now time.Time) (*AuthBlock, error)
	CreateBlock(ctx context.Context, b *AuthBlock) error

	// Access groups.
	ListAssignmentsForApp(ctx context.Context, appID string) ([]AccessGroupAssignment, error)
	ListAssignmentsForSurface(ctx context.Context, surfaceID string) ([]AccessGroupAssignment, error)
	GetAccessGroup(ctx context.Context, id string) (*AccessGroup, error)
	CreateAccessGroup(ctx context.Context, g *AccessGroup) error
	CreateAccessGroupRule(ctx context.Context, r *AccessGroupRule) error
	CreateAccessGroupAssignment(ctx context.Context, a *AccessGroupAssignment) error
	DeleteAccessGroup(ctx context.Context, id string) error

	// Audit.
	CreateAuditLog(ctx context.Context, l *AuditLog) error
}
