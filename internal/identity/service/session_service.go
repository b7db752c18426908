package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	autherror "github.com/metorial/identity-core/internal/errors"
	"github.com/metorial/identity-core/internal/identity/cache"
	"github.com/metorial/identity-core/internal/identity/domain"
	"github.com/metorial/identity-core/internal/identity/dto"
	"github.com/metorial/identity-core/pkg/constant"
)

// SessionService owns the device and session lifecycle: the cached
// authenticate hot path, the one-shot attempt exchange that is the
// only writer of new sessions, and logout.
type SessionService struct {
	store  domain.Store
	cache  cache.Cache
	logger *slog.Logger
}

func NewSessionService(store domain.Store, c cache.Cache, logger *slog.Logger) *SessionService {
	return &SessionService{store: store, cache: c, logger: logger}
}

func sessionCacheKey(sessionID string) string { return "authsession:" + sessionID }
func userTag(userID string) string            { return "user:" + userID }

// EnsureDevice resolves the device for an id/secret pair, minting a
// fresh device (with its initial history row) when the pair is absent
// or invalid. The plaintext secret is only returned for new devices.
func (s *SessionService) EnsureDevice(ctx context.Context, deviceID, deviceSecret string, rc domain.RequestContext) (*domain.Device, string, error) {
	if deviceID != "" && deviceSecret != "" {
		device, err := s.store.GetDevice(ctx, deviceID)
		if err != nil {
			return nil, "", err
		}
		if device != nil && secretMatches(device.ClientSecretHash, deviceSecret) {
			return device, "", nil
		}
	}

	secret := newSecret()
	hash, err := hashSecret(secret)
	if err != nil {
		return nil, "", err
	}
	now := time.Now()
	device := &domain.Device{
		ID:               uuid.NewString(),
		ClientSecretHash: hash,
		FirstIPAddress:   rc.IPAddress,
		FirstUserAgent:   rc.UserAgent,
		LastIPAddress:    rc.IPAddress,
		LastUserAgent:    rc.UserAgent,
		LastActiveAt:     now,
		CreatedAt:        now,
	}
	err = s.store.InTx(ctx, func(tx domain.Store) ([]func(), error) {
		if err := tx.CreateDevice(ctx, device); err != nil {
			return nil, err
		}
		history := &domain.DeviceHistory{
			ID:        uuid.NewString(),
			DeviceID:  device.ID,
			IPAddress: rc.IPAddress,
			UserAgent: rc.UserAgent,
			CreatedAt: now,
		}
		return nil, tx.CreateDeviceHistory(ctx, history)
	})
	if err != nil {
		return nil, "", err
	}
	return device, secret, nil
}

// RecordDeviceUse refreshes last-seen device state and bumps the
// session expiry when it is close to expiring. History rows are only
// appended when the IP or UA actually changed. The returned flag tells
// the caller whether cached state went stale.
func (s *SessionService) RecordDeviceUse(ctx context.Context, device *domain.Device, rc domain.RequestContext, session *domain.Session) (bool, error) {
	now := time.Now()
	changed := false

	moved := device.LastIPAddress != rc.IPAddress || device.LastUserAgent != rc.UserAgent
	stale := now.Sub(device.LastActiveAt) > constant.ActivityStaleAfter

	err := s.store.InTx(ctx, func(tx domain.Store) ([]func(), error) {
		if moved || stale {
			if err := tx.UpdateDeviceSeen(ctx, device.ID, rc.IPAddress, rc.UserAgent, now); err != nil {
				return nil, err
			}
			changed = true
		}
		if moved {
			history := &domain.DeviceHistory{
				ID:        uuid.NewString(),
				DeviceID:  device.ID,
				IPAddress: rc.IPAddress,
				UserAgent: rc.UserAgent,
				CreatedAt: now,
			}
			if err := tx.CreateDeviceHistory(ctx, history); err != nil {
				return nil, err
			}
		}
		if session != nil {
			if session.ExpiresAt.Sub(now) < constant.SessionBumpWindow {
				if err := tx.BumpSession(ctx, session.ID, now.Add(constant.SessionLifetime)); err != nil {
					return nil, err
				}
				changed = true
			}
			if now.Sub(session.LastActiveAt) > constant.ActivityStaleAfter {
				if err := tx.TouchSession(ctx, session.ID, now); err != nil {
					return nil, err
				}
				changed = true
			}
		}
		return nil, nil
	})
	if err != nil {
		return false, err
	}
	return changed, nil
}

// Authenticate is the hot path for requests carrying a session id. The
// cached {device, session, user} read is never trusted on its own:
// device credentials and expiry are re-validated on every hit, and a
// mutation detected by RecordDeviceUse invalidates the entry.
func (s *SessionService) Authenticate(ctx context.Context, deviceID, deviceSecret, sessionID string, rc domain.RequestContext) (*domain.AuthContext, error) {
	if deviceID == "" || deviceSecret == "" || sessionID == "" {
		return nil, autherror.ErrInvalidSession
	}

	authCtx, err := s.findAuthSessionCached(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if authCtx == nil {
		return nil, autherror.ErrInvalidSession
	}

	now := time.Now()
	if authCtx.Session.DeviceID != deviceID || authCtx.Device.ID != deviceID {
		return nil, autherror.ErrInvalidSession
	}
	if !secretMatches(authCtx.Device.ClientSecretHash, deviceSecret) {
		return nil, autherror.ErrInvalidSession
	}
	if !authCtx.Session.Alive(now) {
		return nil, autherror.ErrInvalidSession
	}

	changed, err := s.RecordDeviceUse(ctx, &authCtx.Device, rc, &authCtx.Session)
	if err != nil {
		return nil, err
	}
	if changed {
		if err := s.cache.Invalidate(ctx, sessionCacheKey(sessionID)); err != nil {
			s.logger.Warn("session cache invalidate failed", "session_id", sessionID, "error", err)
		}
	}
	return authCtx, nil
}

func (s *SessionService) findAuthSessionCached(ctx context.Context, sessionID string) (*domain.AuthContext, error) {
	key := sessionCacheKey(sessionID)
	if raw, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Warn("session cache read failed", "session_id", sessionID, "error", err)
	} else if raw != nil {
		var authCtx domain.AuthContext
		if err := json.Unmarshal(raw, &authCtx); err == nil {
			return &authCtx, nil
		}
		s.logger.Warn("session cache entry corrupt", "session_id", sessionID)
	}

	authCtx, err := s.loadAuthSession(ctx, sessionID)
	if err != nil || authCtx == nil {
		return nil, err
	}
	raw, err := json.Marshal(authCtx)
	if err != nil {
		return authCtx, nil
	}
	if err := s.cache.Set(ctx, key, raw, constant.SessionCacheTTL, userTag(authCtx.User.ID)); err != nil {
		s.logger.Warn("session cache write failed", "session_id", sessionID, "error", err)
	}
	return authCtx, nil
}

func (s *SessionService) loadAuthSession(ctx context.Context, sessionID string) (*domain.AuthContext, error) {
	now := time.Now()
	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || !session.Alive(now) {
		return nil, nil
	}
	device, err := s.store.GetDevice(ctx, session.DeviceID)
	if err != nil {
		return nil, err
	}
	user, err := s.store.GetUser(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if device == nil || user == nil {
		return nil, nil
	}
	if now.Sub(user.LastActiveAt) > constant.ActivityStaleAfter {
		if err := s.store.TouchUser(ctx, user.ID, now); err != nil {
			s.logger.Warn("user activity touch failed", "user_id", user.ID, "error", err)
		} else {
			user.LastActiveAt = now
		}
	}
	return &domain.AuthContext{Device: *device, Session: *session, User: *user}, nil
}

// Exchange converts a pending auth attempt into a session exactly
// once. The caller must present the full device credential pair of the
// device the attempt was minted for. The conditional status flip is
// the replay barrier; the live session lookup behind it is defense in
// depth. A fresh authorization code is generated on every call,
// including the idempotent path.
func (s *SessionService) Exchange(ctx context.Context, input dto.ExchangeInput) (*dto.ExchangeOutput, error) {
	now := time.Now()
	attempt, err := s.store.GetAuthAttempt(ctx, input.AttemptID, now.Add(-constant.AuthAttemptLifetime))
	if err != nil {
		return nil, err
	}
	if attempt == nil || !secretMatches(attempt.ClientSecretHash, input.AttemptSecret) {
		return nil, autherror.ErrInvalidAuthAttempt
	}
	if attempt.DeviceID != input.DeviceID {
		return nil, autherror.ErrInvalidAuthAttempt
	}
	device, err := s.store.GetDevice(ctx, input.DeviceID)
	if err != nil {
		return nil, err
	}
	if device == nil || !secretMatches(device.ClientSecretHash, input.DeviceSecret) {
		return nil, autherror.ErrInvalidAuthAttempt
	}

	var session *domain.Session
	err = s.store.InTx(ctx, func(tx domain.Store) ([]func(), error) {
		flipped, err := tx.ConsumeAuthAttempt(ctx, attempt.ID)
		if err != nil {
			return nil, err
		}
		if !flipped {
			return nil, autherror.ErrInvalidAuthAttempt
		}

		existing, err := tx.FindLiveSession(ctx, attempt.UserID, attempt.DeviceID, attempt.AppID, now)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			session = existing
			return nil, nil
		}

		if err := tx.SetUserLastLogin(ctx, attempt.UserID, now); err != nil {
			return nil, err
		}
		session = &domain.Session{
			ID:              uuid.NewString(),
			UserID:          attempt.UserID,
			DeviceID:        attempt.DeviceID,
			AppID:           attempt.AppID,
			ImpersonationID: attempt.UserImpersonationID,
			ExpiresAt:       now.Add(constant.SessionLifetime),
			LastActiveAt:    now,
			CreatedAt:       now,
		}
		if err := tx.CreateSession(ctx, session); err != nil {
			return nil, err
		}

		audit := func() {
			s.writeAudit(ctx, attempt.AppID, "login", attempt.UserID, domain.RequestContext{
				IPAddress: input.IPAddress, UserAgent: input.UserAgent,
			})
		}
		return []func(){audit}, nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.ExchangeOutput{
		SessionID:         session.ID,
		ExpiresAt:         session.ExpiresAt.Unix(),
		AuthorizationCode: newSecret(),
		RedirectURL:       attempt.RedirectURL,
	}, nil
}

// Logout ends the session, collapses its expiry and drops it from the
// cache so a follow-up authenticate misses even within the TTL.
func (s *SessionService) Logout(ctx context.Context, authCtx *domain.AuthContext, rc domain.RequestContext) error {
	now := time.Now()
	err := s.store.InTx(ctx, func(tx domain.Store) ([]func(), error) {
		if err := tx.EndSession(ctx, authCtx.Session.ID, now); err != nil {
			return nil, err
		}
		audit := func() {
			s.writeAudit(ctx, authCtx.Session.AppID, "logout", authCtx.User.ID, rc)
		}
		return []func(){audit}, nil
	})
	if err != nil {
		return err
	}
	if err := s.cache.Invalidate(ctx, sessionCacheKey(authCtx.Session.ID)); err != nil {
		s.logger.Warn("session cache invalidate failed", "session_id", authCtx.Session.ID, "error", err)
	}
	return nil
}

// InvalidateUserSessions drops every cached session for the user by
// tag. Used whenever the user entity mutates; user changes are rare,
// so the broad invalidation is chosen over per-key precision.
func (s *SessionService) InvalidateUserSessions(ctx context.Context, userID string) error {
	return s.cache.InvalidateTag(ctx, userTag(userID))
}

// IsLoggedIn reports whether the device holds a live session for the
// user. Used by the start fast path.
func (s *SessionService) IsLoggedIn(ctx context.Context, userID, deviceID string) (bool, error) {
	session, err := s.store.FindLiveSessionByUserDevice(ctx, userID, deviceID, time.Now())
	if err != nil {
		return false, err
	}
	return session != nil, nil
}

// writeAudit is best effort: failures are logged, never propagated.
func (s *SessionService) writeAudit(ctx context.Context, appID, kind, userID string, rc domain.RequestContext) {
	entry := &domain.AuditLog{
		ID:        uuid.NewString(),
		AppID:     appID,
		Type:      kind,
		UserID:    userID,
		IPAddress: rc.IPAddress,
		UserAgent: rc.UserAgent,
		CreatedAt: time.Now(),
	}
	if err := s.store.CreateAuditLog(ctx, entry); err != nil {
		s.logger.Warn("audit write failed", "type", kind, "user_id", userID, "error", err)
	}
}
