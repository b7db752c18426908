package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	autherror "github.com/metorial/identity-core/internal/errors"
	"github.com/metorial/identity-core/internal/identity/domain"
	"github.com/metorial/identity-core/internal/identity/dto"
	"github.com/metorial/identity-core/internal/identity/token"
	"github.com/metorial/identity-core/pkg/constant"
)

const (
	templateLoginCode = "login_code"
	templateNewLogin  = "new_login"
)

// IntentService drives the auth intent state machine from start to the
// one-time auth attempt. All multi-row mutations run inside a single
// transaction; notification sends run as post-commit hooks.
type IntentService struct {
	store    domain.Store
	sessions *SessionService
	limiter  *AbuseLimiter
	captcha  CaptchaVerifier
	notifier NotificationSender
	bridge   FederationBridge
	oauth    map[string]OAuthProvider
	state    *token.StateService
	devMode  bool
	logger   *slog.Logger
}

func NewIntentService(
	store domain.Store,
	sessions *SessionService,
	limiter *AbuseLimiter,
	captcha CaptchaVerifier,
	notifier NotificationSender,
	bridge FederationBridge,
	oauth []OAuthProvider,
	state *token.StateService,
	devMode bool,
	logger *slog.Logger,
) *IntentService {
	providers := make(map[string]OAuthProvider, len(oauth))
	for _, p := range oauth {
		providers[p.Name()] = p
	}
	return &IntentService{
		store:    store,
		sessions: sessions,
		limiter:  limiter,
		captcha:  captcha,
		notifier: notifier,
		bridge:   bridge,
		oauth:    providers,
		state:    state,
		devMode:  devMode,
		logger:   logger,
	}
}

// Start begins a login flow for an identifier on a device. The abuse
// limiter runs before anything else; a supplied captcha token is
// verified synchronously before any state is persisted. A device that
// already holds a live session for the identifier's user skips the
// intent entirely and gets an auth attempt.
func (s *IntentService) Start(ctx context.Context, input dto.StartInput, device *domain.Device) (*dto.StartOutput, error) {
	identifier := normalizeEmail(input.Identifier)
	rc := domain.RequestContext{IPAddress: input.IPAddress, UserAgent: input.UserAgent}

	if err := s.limiter.RegisterBlock(ctx, identifier, rc); err != nil {
		return nil, err
	}

	var captchaAt *time.Time
	if input.CaptchaToken != "" {
		if err := s.verifyCaptchaToken(ctx, input.CaptchaToken, input.IPAddress); err != nil {
			return nil, err
		}
		now := time.Now()
		captchaAt = &now
	}

	user, err := s.store.FindUserByEmail(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if user != nil {
		loggedIn, err := s.sessions.IsLoggedIn(ctx, user.ID, device.ID)
		if err != nil {
			return nil, err
		}
		if loggedIn {
			attempt, secret, err := s.createAttempt(ctx, s.store, user.ID, device.ID, input.AppID, input.RedirectURL, "")
			if err != nil {
				return nil, err
			}
			return &dto.StartOutput{Attempt: &dto.AttemptOutput{
				ID: attempt.ID, Secret: secret, RedirectURL: attempt.RedirectURL,
			}}, nil
		}
	}

	intentSecret := newSecret()
	secretHash, err := hashSecret(intentSecret)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	intent := &domain.AuthIntent{
		ID:                uuid.NewString(),
		ClientSecretHash:  secretHash,
		DeviceID:          device.ID,
		AppID:             input.AppID,
		Identifier:        identifier,
		IdentifierType:    domain.IdentifierEmail,
		Type:              domain.IntentTypeLogin,
		RedirectURL:       input.RedirectURL,
		CaptchaVerifiedAt: captchaAt,
		ExpiresAt:         now.Add(constant.IntentLifetime),
		CreatedAt:         now,
	}
	step := &domain.AuthIntentStep{
		ID:        uuid.NewString(),
		IntentID:  intent.ID,
		Index:     0,
		Type:      domain.StepEmailCode,
		Email:     identifier,
		CreatedAt: now,
	}

	err = s.store.InTx(ctx, func(tx domain.Store) ([]func(), error) {
		if err := tx.CreateIntent(ctx, intent); err != nil {
			return nil, err
		}
		if err := tx.CreateIntentStep(ctx, step); err != nil {
			return nil, err
		}
		send, err := s.issueCode(ctx, tx, step)
		if err != nil {
			return nil, err
		}
		return []func(){send}, nil
	})
	if err != nil {
		return nil, err
	}

	intent.Steps = []domain.AuthIntentStep{*step}
	return &dto.StartOutput{Intent: s.intentOutput(intent, intentSecret)}, nil
}

// Get returns the intent as the client sees it, for polling.
func (s *IntentService) Get(ctx context.Context, ref dto.IntentRef) (*dto.IntentOutput, error) {
	intent, err := s.loadIntent(ctx, ref)
	if err != nil {
		return nil, err
	}
	return s.intentOutput(intent, ""), nil
}

// VerifyStep checks a submitted code against a step. Steps verify in
// strict index order; every try is recorded; past the failure cap even
// a correct code is rejected.
func (s *IntentService) VerifyStep(ctx context.Context, input dto.VerifyStepInput) (*dto.IntentOutput, error) {
	intent, err := s.loadIntent(ctx, input.IntentRef)
	if err != nil {
		return nil, err
	}
	step := findStep(intent, input.StepID)
	if step == nil {
		return nil, autherror.ErrIntentNotFound
	}
	for _, other := range intent.Steps {
		if other.Index < step.Index && other.VerifiedAt == nil {
			return nil, autherror.ErrStepOutOfOrder
		}
	}

	// Failed tries are recorded outside the transaction below: a
	// rejection must not roll back its own audit row, or the failure
	// count would never grow.
	failures, err := s.store.CountFailedVerifications(ctx, intent.ID)
	if err != nil {
		return nil, err
	}
	if failures >= constant.MaxVerificationFailures {
		if err := s.recordVerification(ctx, s.store, intent.ID, step.ID, domain.VerificationFailure); err != nil {
			return nil, err
		}
		return nil, autherror.ErrTooManyAttempts
	}

	code, err := s.store.FindCode(ctx, step.ID, input.Code)
	if err != nil {
		return nil, err
	}
	if code == nil {
		if err := s.recordVerification(ctx, s.store, intent.ID, step.ID, domain.VerificationFailure); err != nil {
			return nil, err
		}
		return nil, autherror.ErrIncorrectCode
	}

	now := time.Now()
	err = s.store.InTx(ctx, func(tx domain.Store) ([]func(), error) {
		if err := s.recordVerification(ctx, tx, intent.ID, step.ID, domain.VerificationSuccess); err != nil {
			return nil, err
		}
		if err := tx.SetStepVerified(ctx, step.ID, now); err != nil {
			return nil, err
		}
		step.VerifiedAt = &now

		for _, other := range intent.Steps {
			if other.VerifiedAt == nil {
				return nil, nil
			}
		}
		expiresAt := now.Add(constant.IntentVerifiedExtension)
		if err := tx.SetIntentVerified(ctx, intent.ID, now, expiresAt); err != nil {
			return nil, err
		}
		intent.VerifiedAt = &now
		intent.ExpiresAt = expiresAt
		return nil, nil
	})
	if err != nil {
		return nil, err
	}
	return s.intentOutput(intent, ""), nil
}

// ResendStep issues a fresh code, throttled per intent.
func (s *IntentService) ResendStep(ctx context.Context, input dto.ResendStepInput) error {
	intent, err := s.loadIntent(ctx, input.IntentRef)
	if err != nil {
		return err
	}
	step := findStep(intent, input.StepID)
	if step == nil {
		return autherror.ErrIntentNotFound
	}

	issued, err := s.store.CountCodes(ctx, intent.ID)
	if err != nil {
		return err
	}
	if issued >= constant.MaxCodesPerIntent {
		return autherror.ErrTooManyCodes
	}
	last, err := s.store.LatestCodeIssuedAt(ctx, intent.ID)
	if err != nil {
		return err
	}
	if last != nil && time.Since(*last) < constant.ResendCooldown {
		return autherror.ErrResendTooSoon
	}

	return s.store.InTx(ctx, func(tx domain.Store) ([]func(), error) {
		send, err := s.issueCode(ctx, tx, step)
		if err != nil {
			return nil, err
		}
		return []func(){send}, nil
	})
}

// VerifyCaptcha checks the token with the external verifier and stamps
// the intent.
func (s *IntentService) VerifyCaptcha(ctx context.Context, input dto.VerifyCaptchaInput) (*dto.IntentOutput, error) {
	intent, err := s.loadIntent(ctx, input.IntentRef)
	if err != nil {
		return nil, err
	}
	if err := s.verifyCaptchaToken(ctx, input.Token, input.IPAddress); err != nil {
		return nil, err
	}
	now := time.Now()
	if err := s.store.SetIntentCaptchaVerified(ctx, intent.ID, now); err != nil {
		return nil, err
	}
	intent.CaptchaVerifiedAt = &now
	return s.intentOutput(intent, ""), nil
}

// CreateUser attaches an existing user matching the identifier or
// creates a new account. Only valid once verification is complete and
// no user is attached yet.
func (s *IntentService) CreateUser(ctx context.Context, input dto.CreateUserInput) (*dto.IntentOutput, error) {
	intent, err := s.loadIntent(ctx, input.IntentRef)
	if err != nil {
		return nil, err
	}
	if intent.VerifiedAt == nil {
		return nil, autherror.ErrIntentNotVerified
	}
	if intent.UserID != "" {
		return nil, autherror.ErrUserAlreadySet
	}
	if !input.AcceptedTerms {
		return nil, autherror.ErrTermsNotAccepted
	}

	now := time.Now()
	err = s.store.InTx(ctx, func(tx domain.Store) ([]func(), error) {
		user, err := tx.FindUserByEmail(ctx, intent.Identifier)
		if err != nil {
			return nil, err
		}
		if user == nil {
			user = &domain.User{
				ID:           uuid.NewString(),
				FirstName:    input.FirstName,
				LastName:     input.LastName,
				LastActiveAt: now,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if err := tx.CreateUser(ctx, user); err != nil {
				return nil, err
			}
			email := &domain.UserEmail{
				ID:         uuid.NewString(),
				UserID:     user.ID,
				Email:      intent.Identifier,
				VerifiedAt: &now,
				CreatedAt:  now,
			}
			if err := tx.CreateUserEmail(ctx, email); err != nil {
				return nil, err
			}
		}
		if err := tx.SetIntentUser(ctx, intent.ID, user.ID); err != nil {
			return nil, err
		}
		intent.UserID = user.ID
		return nil, nil
	})
	if err != nil {
		return nil, err
	}
	return s.intentOutput(intent, ""), nil
}

// Complete consumes a fully verified intent and mints the one-time
// auth attempt. The consumed stamp is a conditional write so double
// completion cannot mint two attempts.
func (s *IntentService) Complete(ctx context.Context, input dto.CompleteInput) (*dto.AttemptOutput, error) {
	intent, err := s.loadIntent(ctx, input.IntentRef)
	if err != nil {
		return nil, err
	}
	if StateOf(intent) != StateVerified {
		switch StateOf(intent) {
		case StateConsumed:
			return nil, autherror.ErrIntentConsumed
		case StateNeedsCaptcha:
			return nil, autherror.ErrCaptchaRequired
		default:
			return nil, autherror.ErrIntentNotVerified
		}
	}

	user, err := s.store.GetUser(ctx, intent.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	now := time.Now()
	var out *dto.AttemptOutput
	err = s.store.InTx(ctx, func(tx domain.Store) ([]func(), error) {
		stamped, err := tx.ConsumeIntent(ctx, intent.ID, now)
		if err != nil {
			return nil, err
		}
		if !stamped {
			return nil, autherror.ErrIntentConsumed
		}
		attempt, secret, err := s.createAttempt(ctx, tx, intent.UserID, intent.DeviceID, intent.AppID, intent.RedirectURL, intent.ID)
		if err != nil {
			return nil, err
		}
		out = &dto.AttemptOutput{ID: attempt.ID, Secret: secret, RedirectURL: attempt.RedirectURL}

		var hooks []func()
		if now.Sub(user.CreatedAt) > constant.NewLoginNotifyMinAge {
			hooks = append(hooks, func() {
				s.send(ctx, templateNewLogin, map[string]string{
					"first_name": user.FirstName,
				}, intent.Identifier)
			})
		}
		return hooks, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// StartSSO hands the flow off to the federation bridge, binding the
// intent into a signed state parameter.
func (s *IntentService) StartSSO(ctx context.Context, ref dto.IntentRef, tenantID string) (string, error) {
	intent, err := s.loadIntent(ctx, ref)
	if err != nil {
		return "", err
	}
	state, err := s.state.Sign(intent.ID, tenantID, "")
	if err != nil {
		return "", err
	}
	start, err := s.bridge.StartAuth(ctx, tenantID, intent.RedirectURL, state, intent.Identifier)
	if err != nil {
		return "", err
	}
	return start.URL, nil
}

// CompleteSSO verifies the signed state, pulls the profile from the
// bridge, and verifies the intent out-of-band when the asserted email
// matches the identifier.
func (s *IntentService) CompleteSSO(ctx context.Context, stateToken, authID string) (*dto.IntentOutput, error) {
	claims, err := s.state.Verify(stateToken)
	if err != nil {
		return nil, autherror.ErrIntentNotFound
	}
	profile, err := s.bridge.CompleteAuth(ctx, authID)
	if err != nil {
		return nil, err
	}
	return s.completeExternally(ctx, claims.IntentID, profile.Email, profile.FirstName, profile.LastName)
}

// StartOAuth returns the provider's consent URL with signed state.
func (s *IntentService) StartOAuth(ctx context.Context, ref dto.IntentRef, providerName string) (string, error) {
	provider, ok := s.oauth[providerName]
	if !ok {
		return "", autherror.Newf(autherror.KindNotFound, "unknown provider %q", providerName)
	}
	intent, err := s.loadIntent(ctx, ref)
	if err != nil {
		return "", err
	}
	state, err := s.state.Sign(intent.ID, "", providerName)
	if err != nil {
		return "", err
	}
	return provider.GetAuthURL(state), nil
}

// CompleteOAuth consumes the provider callback.
func (s *IntentService) CompleteOAuth(ctx context.Context, stateToken, code string) (*dto.IntentOutput, error) {
	claims, err := s.state.Verify(stateToken)
	if err != nil {
		return nil, autherror.ErrIntentNotFound
	}
	provider, ok := s.oauth[claims.Provider]
	if !ok {
		return nil, autherror.ErrIntentNotFound
	}
	data, err := provider.ExchangeCodeForData(ctx, code)
	if err != nil {
		return nil, err
	}
	return s.completeExternally(ctx, claims.IntentID, data.Email, data.Name, "")
}

// completeExternally marks every step of the intent verified based on
// an upstream identity assertion, then attaches or creates the user.
func (s *IntentService) completeExternally(ctx context.Context, intentID, email, firstName, lastName string) (*dto.IntentOutput, error) {
	intent, err := s.getLiveIntent(ctx, intentID)
	if err != nil {
		return nil, err
	}
	if normalizeEmail(email) != intent.Identifier {
		return nil, autherror.New(autherror.KindForbidden, "asserted identity does not match login flow")
	}

	now := time.Now()
	err = s.store.InTx(ctx, func(tx domain.Store) ([]func(), error) {
		for i := range intent.Steps {
			if intent.Steps[i].VerifiedAt != nil {
				continue
			}
			if err := tx.SetStepVerified(ctx, intent.Steps[i].ID, now); err != nil {
				return nil, err
			}
			intent.Steps[i].VerifiedAt = &now
		}
		expiresAt := now.Add(constant.IntentVerifiedExtension)
		if err := tx.SetIntentVerified(ctx, intent.ID, now, expiresAt); err != nil {
			return nil, err
		}
		intent.VerifiedAt = &now
		intent.ExpiresAt = expiresAt

		user, err := tx.FindUserByEmail(ctx, intent.Identifier)
		if err != nil {
			return nil, err
		}
		if user == nil {
			user = &domain.User{
				ID:           uuid.NewString(),
				FirstName:    firstName,
				LastName:     lastName,
				LastActiveAt: now,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if err := tx.CreateUser(ctx, user); err != nil {
				return nil, err
			}
			userEmail := &domain.UserEmail{
				ID:         uuid.NewString(),
				UserID:     user.ID,
				Email:      intent.Identifier,
				VerifiedAt: &now,
				CreatedAt:  now,
			}
			if err := tx.CreateUserEmail(ctx, userEmail); err != nil {
				return nil, err
			}
		}
		if err := tx.SetIntentUser(ctx, intent.ID, user.ID); err != nil {
			return nil, err
		}
		intent.UserID = user.ID
		return nil, nil
	})
	if err != nil {
		return nil, err
	}
	return s.intentOutput(intent, ""), nil
}

func (s *IntentService) createAttempt(ctx context.Context, store domain.Store, userID, deviceID, appID, redirectURL, intentID string) (*domain.AuthAttempt, string, error) {
	secret := newSecret()
	hash, err := hashSecret(secret)
	if err != nil {
		return nil, "", err
	}
	attempt := &domain.AuthAttempt{
		ID:               uuid.NewString(),
		ClientSecretHash: hash,
		Status:           domain.AttemptPending,
		UserID:           userID,
		DeviceID:         deviceID,
		AppID:            appID,
		RedirectURL:      redirectURL,
		AuthIntentID:     intentID,
		CreatedAt:        time.Now(),
	}
	if err := store.CreateAuthAttempt(ctx, attempt); err != nil {
		return nil, "", err
	}
	return attempt, secret, nil
}

// issueCode writes a code row and returns the post-commit send hook.
func (s *IntentService) issueCode(ctx context.Context, tx domain.Store, step *domain.AuthIntentStep) (func(), error) {
	value := newCode()
	if s.devMode {
		value = constant.DevModeCode
	}
	code := &domain.AuthIntentCode{
		ID:        uuid.NewString(),
		StepID:    step.ID,
		Email:     step.Email,
		Code:      value,
		CreatedAt: time.Now(),
	}
	if err := tx.CreateIntentCode(ctx, code); err != nil {
		return nil, err
	}
	email := step.Email
	return func() {
		if s.devMode {
			s.logger.Info("dev mode: skipping code delivery", "email", email)
			return
		}
		s.send(ctx, templateLoginCode, map[string]string{"code": value}, email)
	}, nil
}

// send is fire-and-forget: delivery failures are logged only.
func (s *IntentService) send(ctx context.Context, template string, data map[string]string, to string) {
	if err := s.notifier.Send(ctx, template, data, []string{to}); err != nil {
		s.logger.Warn("notification send failed", "template", template, "to", to, "error", err)
	}
}

func (s *IntentService) verifyCaptchaToken(ctx context.Context, captchaToken, ip string) error {
	ok, err := s.captcha.Verify(ctx, captchaToken, ip)
	if err != nil {
		// Verifier outage fails open so an external dependency cannot
		// lock every user out.
		s.logger.Error("captcha verifier unavailable, failing open", "error", err)
		return nil
	}
	if !ok {
		return autherror.ErrCaptchaFailed
	}
	return nil
}

// loadIntent authenticates client access to an intent. Unknown,
// expired and wrong-secret cases are indistinguishable to the caller.
func (s *IntentService) loadIntent(ctx context.Context, ref dto.IntentRef) (*domain.AuthIntent, error) {
	intent, err := s.getLiveIntent(ctx, ref.IntentID)
	if err != nil {
		return nil, err
	}
	if !secretMatches(intent.ClientSecretHash, ref.IntentSecret) {
		return nil, autherror.ErrIntentNotFound
	}
	return intent, nil
}

func (s *IntentService) getLiveIntent(ctx context.Context, id string) (*domain.AuthIntent, error) {
	intent, err := s.store.GetIntent(ctx, id)
	if err != nil {
		return nil, err
	}
	if intent == nil || intent.Expired(time.Now()) {
		return nil, autherror.ErrIntentNotFound
	}
	return intent, nil
}

func (s *IntentService) intentOutput(intent *domain.AuthIntent, secret string) *dto.IntentOutput {
	out := &dto.IntentOutput{
		ID:         intent.ID,
		Secret:     secret,
		State:      string(StateOf(intent)),
		Identifier: intent.Identifier,
		ExpiresAt:  intent.ExpiresAt.Unix(),
	}
	if step := intent.CurrentStep(); step != nil {
		out.CurrentStep = &dto.StepOutput{
			ID:    step.ID,
			Index: step.Index,
			Type:  string(step.Type),
			Email: step.Email,
		}
	}
	return out
}

func (s *IntentService) recordVerification(ctx context.Context, tx domain.Store, intentID, stepID string, status domain.VerificationStatus) error {
	return tx.CreateVerificationAttempt(ctx, &domain.AuthIntentVerificationAttempt{
		ID:        uuid.NewString(),
		IntentID:  intentID,
		StepID:    stepID,
		Status:    status,
		CreatedAt: time.Now(),
	})
}

func findStep(intent *domain.AuthIntent, stepID string) *domain.AuthIntentStep {
	for i := range intent.Steps {
		if intent.Steps[i].ID == stepID {
			return &intent.Steps[i]
		}
	}
	return nil
}
