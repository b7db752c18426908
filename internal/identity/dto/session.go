package dto

type ExchangeInput struct {
	AttemptID     string `json:"attempt_id"`
	AttemptSecret string `json:"attempt_secret"`

	DeviceID     string `json:"-"`
	DeviceSecret string `json:"-"`
	IPAddress    string `json:"-"`
	UserAgent    string `json:"-"`
}

type ExchangeOutput struct {
	SessionID         string `json:"session_id"`
	ExpiresAt         int64  `json:"expires_at"`
	AuthorizationCode string `json:"authorization_code"`
	RedirectURL       string `json:"redirect_url,omitempty"`
}

type BootOutput struct {
	DeviceID     string      `json:"device_id"`
	DeviceSecret string      `json:"device_secret,omitempty"`
	User         *UserOutput `json:"user,omitempty"`
}

type UserOutput struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	ImageURL  string `json:"image_url,omitempty"`
}
