package domain

import "time"

type IdentifierType string

const IdentifierEmail IdentifierType = "email"

type IntentType string

const (
	IntentTypeLogin IntentType = "login"
	IntentTypeSSO   IntentType = "sso"
	IntentTypeOAuth IntentType = "oauth"
)

type StepType string

const StepEmailCode StepType = "email_code"

// AuthIntent is an in-progress verification flow for one identifier on
// one device. The nullable timestamps are the stored representation;
// code paths branch on the state computed from them, not on the raw
// fields.
type AuthIntent struct {
	ID                string
	ClientSecretHash  string
	DeviceID          string
	AppID             string
	Identifier        string
	IdentifierType    IdentifierType
	Type              IntentType
	UserID            string
	RedirectURL       string
	VerifiedAt        *time.Time
	CaptchaVerifiedAt *time.Time
	ConsumedAt        *time.Time
	ExpiresAt         time.Time
	CreatedAt         time.Time

	Steps []AuthIntentStep
}

func (i *AuthIntent) Expired(now time.Time) bool {
	return !i.ExpiresAt.After(now)
}

// CurrentStep is one past the last verified step in index order.
// Step sequences are linear; there is never more than one pending step
// to present.
func (i *AuthIntent) CurrentStep() *AuthIntentStep {
	for idx := range i.Steps {
		if i.Steps[idx].VerifiedAt == nil {
			return &i.Steps[idx]
		}
	}
	return nil
}

type AuthIntentStep struct {
	ID         string
	IntentID   string
	Index      int
	Type       StepType
	Email      string
	VerifiedAt *time.Time
	CreatedAt  time.Time
}

// AuthIntentCode is a one-time code issued for a step. Never updated,
// only compared for equality.
type AuthIntentCode struct {
	ID        string
	StepID    string
	Email     string
	Code      string
	CreatedAt time.Time
}

type VerificationStatus string

const (
	VerificationSuccess VerificationStatus = "success"
	VerificationFailure VerificationStatus = "failure"
)

type AuthIntentVerificationAttempt struct {
	ID        string
	IntentID  string
	StepID    string
	Status    VerificationStatus
	CreatedAt time.Time
}

type AttemptStatus string

const (
	AttemptPending  AttemptStatus = "pending"
	AttemptConsumed AttemptStatus = "consumed"
)

// AuthAttempt is a one-time ticket exchanged for a session. Only
// readable within one minute of creation; consumed exactly once via a
// conditional status flip.
type AuthAttempt struct {
	ID                  string
	ClientSecretHash    string
	Status              AttemptStatus
	UserID              string
	DeviceID            string
	AppID               string
	RedirectURL         string
	AuthIntentID        string
	UserImpersonationID string
	CreatedAt           time.Time
}
