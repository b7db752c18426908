package constant

import "time"

const (
	// Session lifecycle.
	SessionLifetime     = 14 * 24 * time.Hour
	SessionBumpWindow   = 5 * 24 * time.Hour
	SessionCacheTTL     = 5 * time.Minute
	ActivityStaleAfter  = time.Hour
	AuthAttemptLifetime = time.Minute

	// AuthIntent lifecycle.
	IntentLifetime          = 30 * time.Minute
	IntentVerifiedExtension = 30 * time.Minute
	MaxVerificationFailures = 15
	MaxCodesPerIntent       = 10
	ResendCooldown          = 30 * time.Second
	CodeLength              = 6

	// Abuse limiter.
	AbuseWindow      = 10 * time.Minute
	AbuseMaxIntents  = 15
	AbuseBlockPeriod = 60 * time.Minute

	// Federation handoff.
	StateTokenLifetime = 10 * time.Minute

	// Suppress "new login" mail for accounts younger than this.
	NewLoginNotifyMinAge = 60 * time.Second

	DevModeCode = "111111"
)
