package dto

type StartInput struct {
	Identifier   string `json:"identifier"`
	AppID        string `json:"app_id"`
	RedirectURL  string `json:"redirect_url"`
	CaptchaToken string `json:"captcha_token"`

	DeviceID     string `json:"-"`
	DeviceSecret string `json:"-"`
	IPAddress    string `json:"-"`
	UserAgent    string `json:"-"`
}

type StepOutput struct {
	ID       string `json:"id"`
	Index    int    `json:"index"`
	Type     string `json:"type"`
	Email    string `json:"email,omitempty"`
	Verified bool   `json:"verified"`
}

type IntentOutput struct {
	ID          string      `json:"id"`
	Secret      string      `json:"secret,omitempty"`
	State       string      `json:"state"`
	Identifier  string      `json:"identifier"`
	CurrentStep *StepOutput `json:"current_step,omitempty"`
	ExpiresAt   int64       `json:"expires_at"`
}

type AttemptOutput struct {
	ID          string `json:"id"`
	Secret      string `json:"secret"`
	RedirectURL string `json:"redirect_url,omitempty"`
}

// StartOutput carries either an intent to complete or, on the
// returning-device fast path, a ready auth attempt.
type StartOutput struct {
	Intent  *IntentOutput  `json:"intent,omitempty"`
	Attempt *AttemptOutput `json:"attempt,omitempty"`
}
