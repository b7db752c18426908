package domain

import "time"

// AuthBlock is a timed lockout of an identifier. Blocks are only ever
// added; they expire by time comparison.
type AuthBlock struct {
	ID             string
	Identifier     string
	IdentifierType IdentifierType
	IPAddress      string
	BlockedUntil   time.Time
	CreatedAt      time.Time
}

type AuditLog struct {
	ID        string
	AppID     string
	Type      string
	UserID    string
	IPAddress string
	UserAgent string
	Metadata  map[string]string
	CreatedAt time.Time
}
