package service

//go:generate mockgen -destination=../../mocks/mock_collaborators.go -package=mocks github.com/metorial/identity-core/internal/identity/service CaptchaVerifier,FederationBridge,OAuthProvider,NotificationSender

import "context"

// CaptchaVerifier talks to the external CAPTCHA service. A transport
// failure is reported as an error and treated as fail-open by callers;
// only a definitive false fails the flow.
type CaptchaVerifier interface {
	Verify(ctx context.Context, token, ip string) (bool, error)
}

// FederationProfile is what the SSO bridge reports after a completed
// upstream login. Protocol detail stays in the bridge.
type FederationProfile struct {
	Email      string
	FirstName  string
	LastName   string
	ExternalID string
	Groups     []string
	Roles      []string
}

type FederationStart struct {
	URL string
}

type FederationBridge interface {
	StartAuth(ctx context.Context, tenantID, redirectURI, state, email string) (*FederationStart, error)
	CompleteAuth(ctx context.Context, authID string) (*FederationProfile, error)
}

type OAuthUserData struct {
	Email    string
	Name     string
	ID       string
	PhotoURL string
}

type OAuthProvider interface {
	Name() string
	GetAuthURL(state string) string
	ExchangeCodeForData(ctx context.Context, code string) (*OAuthUserData, error)
}

// NotificationSender queues outbound mail. Fire-and-forget from the
// core's perspective; delivery and retries live in the collaborator.
type NotificationSender interface {
	Send(ctx context.Context, template string, data map[string]string, to []string) error
}
