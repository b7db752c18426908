package dto

type IntentRef struct {
	IntentID     string `json:"intent_id"`
	IntentSecret string `json:"intent_secret"`

	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}

type VerifyStepInput struct {
	IntentRef
	StepID string `json:"step_id"`
	Code   string `json:"code"`
}

type ResendStepInput struct {
	IntentRef
	StepID string `json:"step_id"`
}

type VerifyCaptchaInput struct {
	IntentRef
	Token string `json:"token"`
}

type CreateUserInput struct {
	IntentRef
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	AcceptedTerms bool   `json:"accepted_terms"`
}

type CompleteInput struct {
	IntentRef
}
