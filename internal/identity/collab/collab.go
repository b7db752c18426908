// Package collab holds thin clients for the external collaborators the
// core consumes: captcha verification, the federation/SSO bridge, OAuth
// providers and the notification queue. Protocol detail belongs to the
// collaborators; the clients here only move data.
package collab

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/metorial/identity-core/internal/identity/service"
)

// HTTPCaptchaVerifier checks tokens against a reCAPTCHA-style verify
// endpoint. Transport failures surface as errors so the caller can
// fail open.
type HTTPCaptchaVerifier struct {
	Endpoint string
	Secret   string
	Client   *http.Client
}

func NewHTTPCaptchaVerifier(endpoint, secret string) *HTTPCaptchaVerifier {
	return &HTTPCaptchaVerifier{
		Endpoint: endpoint,
		Secret:   secret,
		Client:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (v *HTTPCaptchaVerifier) Verify(ctx context.Context, token, ip string) (bool, error) {
	form := url.Values{}
	form.Set("secret", v.Secret)
	form.Set("response", token)
	form.Set("remoteip", ip)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.Client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	var body struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, err
	}
	return body.Success, nil
}

// BridgeClient talks to the federation/identity-bridge component.
type BridgeClient struct {
	BaseURL string
	Client  *http.Client
}

func NewBridgeClient(baseURL string) *BridgeClient {
	return &BridgeClient{BaseURL: baseURL, Client: &http.Client{Timeout: 10 * time.Second}}
}

func (b *BridgeClient) StartAuth(ctx context.Context, tenantID, redirectURI, state, email string) (*service.FederationStart, error) {
	payload, _ := json.Marshal(map[string]string{
		"tenant_id":    tenantID,
		"redirect_uri": redirectURI,
		"state":        state,
		"email":        email,
	})
	var out service.FederationStart
	if err := b.post(ctx, "/auth/start", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *BridgeClient) CompleteAuth(ctx context.Context, authID string) (*service.FederationProfile, error) {
	payload, _ := json.Marshal(map[string]string{"auth_id": authID})
	var out service.FederationProfile
	if err := b.post(ctx, "/auth/complete", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *BridgeClient) post(ctx context.Context, path string, payload []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.BaseURL+path, strings.NewReader(string(payload)))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bridge %s returned %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// OAuthClientConfig describes one social-login provider. Provider
// quirks stay in configuration; the client itself is protocol-generic.
type OAuthClientConfig struct {
	Name         string
	ClientID     string
	ClientSecret string
	AuthURL      string
	TokenURL     string
	UserInfoURL  string
	RedirectURL  string
	Scopes       []string
}

// OAuthClient runs the authorization-code flow against a configured
// provider and reads its userinfo document.
type OAuthClient struct {
	name        string
	conf        *oauth2.Config
	userInfoURL string
	client      *http.Client
}

func NewOAuthClient(cfg OAuthClientConfig) *OAuthClient {
	return &OAuthClient{
		name: cfg.Name,
		conf: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     oauth2.Endpoint{AuthURL: cfg.AuthURL, TokenURL: cfg.TokenURL},
			RedirectURL:  cfg.RedirectURL,
			Scopes:       cfg.Scopes,
		},
		userInfoURL: cfg.UserInfoURL,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *OAuthClient) Name() string { return c.name }

func (c *OAuthClient) GetAuthURL(state string) string {
	return c.conf.AuthCodeURL(state)
}

func (c *OAuthClient) ExchangeCodeForData(ctx context.Context, code string) (*service.OAuthUserData, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.client)
	tok, err := c.conf.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.userInfoURL, nil)
	if err != nil {
		return nil, err
	}
	tok.SetAuthHeader(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo returned %d", resp.StatusCode)
	}

	var info struct {
		Sub     string `json:"sub"`
		ID      string `json:"id"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	// OIDC-style providers report "sub", plain OAuth ones "id".
	id := info.Sub
	if id == "" {
		id = info.ID
	}
	return &service.OAuthUserData{Email: info.Email, Name: info.Name, ID: id, PhotoURL: info.Picture}, nil
}

// QueueNotifier posts notification jobs to the delivery queue. The
// queue owns retries; the core never waits on delivery.
type QueueNotifier struct {
	Endpoint string
	Client   *http.Client
}

func NewQueueNotifier(endpoint string) *QueueNotifier {
	return &QueueNotifier{Endpoint: endpoint, Client: &http.Client{Timeout: 5 * time.Second}}
}

func (n *QueueNotifier) Send(ctx context.Context, template string, data map[string]string, to []string) error {
	payload, _ := json.Marshal(map[string]any{
		"template": template,
		"data":     data,
		"to":       to,
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.Endpoint, strings.NewReader(string(payload)))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("notification queue returned %d", resp.StatusCode)
	}
	return nil
}

// LogNotifier replaces the queue in development.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n *LogNotifier) Send(_ context.Context, template string, data map[string]string, to []string) error {
	n.Logger.Info("notification", "template", template, "to", to, "data", data)
	return nil
}
