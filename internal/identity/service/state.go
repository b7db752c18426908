package service

import "github.com/metorial/identity-core/internal/identity/domain"

// IntentState is the computed lifecycle position of an AuthIntent.
// Storage keeps plain timestamps for audit value; every branch on
// intent status goes through StateOf.
type IntentState string

const (
	StateNeedsVerification IntentState = "needs_verification"
	StateNeedsUser         IntentState = "needs_user"
	StateNeedsCaptcha      IntentState = "needs_captcha"
	StateVerified          IntentState = "verified"
	StateConsumed          IntentState = "consumed"
)

func StateOf(i *domain.AuthIntent) IntentState {
	if i.ConsumedAt != nil {
		return StateConsumed
	}
	for _, s := range i.Steps {
		if s.VerifiedAt == nil {
			return StateNeedsVerification
		}
	}
	if i.VerifiedAt == nil {
		return StateNeedsVerification
	}
	if i.UserID == "" {
		return StateNeedsUser
	}
	if i.CaptchaVerifiedAt == nil {
		return StateNeedsCaptcha
	}
	return StateVerified
}
