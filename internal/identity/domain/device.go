package domain

import "time"

// Device is an anonymous client identified by an opaque id plus a
// client-held secret. The secret is stored hashed; devices are never
// deleted, their IP/UA history is append-only.
type Device struct {
	ID               string
	ClientSecretHash string
	FirstIPAddress   string
	FirstUserAgent   string
	LastIPAddress    string
	LastUserAgent    string
	LastActiveAt     time.Time
	CreatedAt        time.Time
}

type DeviceHistory struct {
	ID        string
	DeviceID  string
	IPAddress string
	UserAgent string
	CreatedAt time.Time
}

// Session binds one user to one device, scoped to one app.
type Session struct {
	ID              string
	UserID          string
	DeviceID        string
	AppID           string
	ImpersonationID string
	ExpiresAt       time.Time
	LastActiveAt    time.Time
	LoggedOutAt     *time.Time
	CreatedAt       time.Time
}

// Alive reports whether the session can still authenticate requests.
// LoggedOutAt set and ExpiresAt passed are equivalent dead states.
func (s *Session) Alive(now time.Time) bool {
	return s.LoggedOutAt == nil && s.ExpiresAt.After(now)
}

// RequestContext carries the untrusted per-request client metadata.
type RequestContext struct {
	IPAddress string
	UserAgent string
}

// AuthContext is the cached value of a successful session lookup.
type AuthContext struct {
	Device  Device
	Session Session
	User    User
}
