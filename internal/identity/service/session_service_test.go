package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	autherror "github.com/metorial/identity-core/internal/errors"
	"github.com/metorial/identity-core/internal/identity/cache"
	"github.com/metorial/identity-core/internal/identity/domain"
	"github.com/metorial/identity-core/internal/identity/dto"
	"github.com/metorial/identity-core/internal/identity/service"
	"github.com/metorial/identity-core/internal/mocks"
	"github.com/metorial/identity-core/pkg/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	store   *mocks.MockStore
	service *service.SessionService
}

func newSessionFixture(ctrl *gomock.Controller) *sessionFixture {
	mockStore := mocks.NewMockStore(ctrl)
	return &sessionFixture{
		store:   mockStore,
		service: service.NewSessionService(mockStore, cache.NewMemory(), testLogger),
	}
}

func quietDevice(t *testing.T, secret string, rc domain.RequestContext) *domain.Device {
	t.Helper()
	return &domain.Device{
		ID:               "device-1",
		ClientSecretHash: hashOf(t, secret),
		LastIPAddress:    rc.IPAddress,
		LastUserAgent:    rc.UserAgent,
		LastActiveAt:     time.Now(),
		CreatedAt:        time.Now().Add(-24 * time.Hour),
	}
}

func liveSession(now time.Time) *domain.Session {
	return &domain.Session{
		ID:           "session-1",
		UserID:       "user-1",
		DeviceID:     "device-1",
		AppID:        "app-1",
		ExpiresAt:    now.Add(constant.SessionLifetime),
		LastActiveAt: now,
		CreatedAt:    now,
	}
}

func TestEnsureDevice_ReturnsExistingOnValidSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSessionFixture(ctrl)
	rc := domain.RequestContext{IPAddress: "1.2.3.4", UserAgent: "ua"}
	device := quietDevice(t, "dsecret", rc)

	f.store.EXPECT().GetDevice(gomock.Any(), "device-1").Return(device, nil)

	got, secret, err := f.service.EnsureDevice(context.Background(), "device-1", "dsecret", rc)
	require.NoError(t, err)
	assert.Equal(t, device, got)
	assert.Empty(t, secret)
}

func TestEnsureDevice_MintsOnBadSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSessionFixture(ctrl)
	rc := domain.RequestContext{IPAddress: "1.2.3.4", UserAgent: "ua"}

	f.store.EXPECT().GetDevice(gomock.Any(), "device-1").Return(quietDevice(t, "dsecret", rc), nil)
	expectTx(f.store)
	f.store.EXPECT().CreateDevice(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d *domain.Device) error {
			assert.NotEqual(t, "device-1", d.ID)
			assert.Equal(t, "1.2.3.4", d.FirstIPAddress)
			return nil
		})
	f.store.EXPECT().CreateDeviceHistory(gomock.Any(), gomock.Any()).Return(nil)

	got, secret, err := f.service.EnsureDevice(context.Background(), "device-1", "wrong", rc)
	require.NoError(t, err)
	assert.NotEqual(t, "device-1", got.ID)
	assert.NotEmpty(t, secret)
}

func TestEnsureDevice_MintsWithoutCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSessionFixture(ctrl)
	expectTx(f.store)
	f.store.EXPECT().CreateDevice(gomock.Any(), gomock.Any()).Return(nil)
	f.store.EXPECT().CreateDeviceHistory(gomock.Any(), gomock.Any()).Return(nil)

	got, secret, err := f.service.EnsureDevice(context.Background(), "", "", domain.RequestContext{})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.NotEmpty(t, secret)
}

func TestRecordDeviceUse_NoChangeIsQuiet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSessionFixture(ctrl)
	rc := domain.RequestContext{IPAddress: "1.2.3.4", UserAgent: "ua"}
	device := quietDevice(t, "dsecret", rc)

	expectTx(f.store)

	changed, err := f.service.RecordDeviceUse(context.Background(), device, rc, liveSession(time.Now()))
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestRecordDeviceUse_NetworkMoveAppendsHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSessionFixture(ctrl)
	device := quietDevice(t, "dsecret", domain.RequestContext{IPAddress: "1.2.3.4", UserAgent: "ua"})
	rc := domain.RequestContext{IPAddress: "5.6.7.8", UserAgent: "ua"}

	expectTx(f.store)
	f.store.EXPECT().UpdateDeviceSeen(gomock.Any(), "device-1", "5.6.7.8", "ua", gomock.Any()).Return(nil)
	f.store.EXPECT().CreateDeviceHistory(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, h *domain.DeviceHistory) error {
			assert.Equal(t, "5.6.7.8", h.IPAddress)
			return nil
		})

	changed, err := f.service.RecordDeviceUse(context.Background(), device, rc, nil)
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestRecordDeviceUse_StaleActivityTouchesWithoutHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSessionFixture(ctrl)
	rc := domain.RequestContext{IPAddress: "1.2.3.4", UserAgent: "ua"}
	device := quietDevice(t, "dsecret", rc)
	device.LastActiveAt = time.Now().Add(-2 * time.Hour)

	expectTx(f.store)
	f.store.EXPECT().UpdateDeviceSeen(gomock.Any(), "device-1", "1.2.3.4", "ua", gomock.Any()).Return(nil)

	changed, err := f.service.RecordDeviceUse(context.Background(), device, rc, nil)
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestRecordDeviceUse_BumpsExpiringSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSessionFixture(ctrl)
	rc := domain.RequestContext{IPAddress: "1.2.3.4", UserAgent: "ua"}
	device := quietDevice(t, "dsecret", rc)

	now := time.Now()
	session := liveSession(now)
	session.ExpiresAt = now.Add(3 * 24 * time.Hour)

	expectTx(f.store)
	f.store.EXPECT().BumpSession(gomock.Any(), "session-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, until time.Time) error {
			assert.WithinDuration(t, now.Add(constant.SessionLifetime), until, 5*time.Second)
			return nil
		})

	changed, err := f.service.RecordDeviceUse(context.Background(), device, rc, session)
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestAuthenticate_PopulatesAndReusesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSessionFixture(ctrl)
	rc := domain.RequestContext{IPAddress: "1.2.3.4", UserAgent: "ua"}
	now := time.Now()
	device := quietDevice(t, "dsecret", rc)
	user := &domain.User{ID: "user-1", LastActiveAt: now}

	f.store.EXPECT().GetSession(gomock.Any(), "session-1").Return(liveSession(now), nil).Times(1)
	f.store.EXPECT().GetDevice(gomock.Any(), "device-1").Return(device, nil).Times(1)
	f.store.EXPECT().GetUser(gomock.Any(), "user-1").Return(user, nil).Times(1)
	expectTx(f.store).Times(2)

	first, err := f.service.Authenticate(context.Background(), "device-1", "dsecret", "session-1", rc)
	require.NoError(t, err)
	assert.Equal(t, "user-1", first.User.ID)

	// Second call must be served from the cache (no store reads), yet
	// the device secret is still checked.
	second, err := f.service.Authenticate(context.Background(), "device-1", "dsecret", "session-1", rc)
	require.NoError(t, err)
	assert.Equal(t, first.Session.ID, second.Session.ID)

	_, err = f.service.Authenticate(context.Background(), "device-1", "wrong", "session-1", rc)
	assert.Equal(t, autherror.ErrInvalidSession, err)
}

func TestAuthenticate_MissingCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSessionFixture(ctrl)
	_, err := f.service.Authenticate(context.Background(), "", "", "", domain.RequestContext{})
	assert.Equal(t, autherror.ErrInvalidSession, err)
}

func TestAuthenticate_ExpiredSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSessionFixture(ctrl)
	now := time.Now()
	session := liveSession(now)
	session.ExpiresAt = now.Add(-time.Minute)

	f.store.EXPECT().GetSession(gomock.Any(), "session-1").Return(session, nil)

	_, err := f.service.Authenticate(context.Background(), "device-1", "dsecret", "session-1", domain.RequestContext{})
	assert.Equal(t, autherror.ErrInvalidSession, err)
}

func TestAuthenticate_SessionBoundToOtherDevice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSessionFixture(ctrl)
	rc := domain.RequestContext{IPAddress: "1.2.3.4", UserAgent: "ua"}
	now := time.Now()
	device := quietDevice(t, "dsecret", rc)
	device.ID = "device-2"
	session := liveSession(now)
	session.DeviceID = "device-2"

	f.store.EXPECT().GetSession(gomock.Any(), "session-1").Return(session, nil)
	f.store.EXPECT().GetDevice(gomock.Any(), "device-2").Return(device, nil)
	f.store.EXPECT().GetUser(gomock.Any(), "user-1").Return(&domain.User{ID: "user-1", LastActiveAt: now}, nil)

	_, err := f.service.Authenticate(context.Background(), "device-1", "dsecret", "session-1", rc)
	assert.Equal(t, autherror.ErrInvalidSession, err)
}

func TestLogout_ThenAuthenticateMisses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSessionFixture(ctrl)
	rc := domain.RequestContext{IPAddress: "1.2.3.4", UserAgent: "ua"}
	now := time.Now()
	device := quietDevice(t, "dsecret", rc)
	user := &domain.User{ID: "user-1", LastActiveAt: now}

	f.store.EXPECT().GetSession(gomock.Any(), "session-1").Return(liveSession(now), nil)
	f.store.EXPECT().GetDevice(gomock.Any(), "device-1").Return(device, nil)
	f.store.EXPECT().GetUser(gomock.Any(), "user-1").Return(user, nil)
	expectTx(f.store).Times(2)

	authCtx, err := f.service.Authenticate(context.Background(), "device-1", "dsecret", "session-1", rc)
	require.NoError(t, err)

	f.store.EXPECT().EndSession(gomock.Any(), "session-1", gomock.Any()).Return(nil)
	f.store.EXPECT().CreateAuditLog(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entry *domain.AuditLog) error {
			assert.Equal(t, "logout", entry.Type)
			return nil
		})
	require.NoError(t, f.service.Logout(context.Background(), authCtx, rc))

	// The cache entry is gone, so the next authenticate re-reads the
	// store and sees the ended session.
	ended := liveSession(now)
	ended.LoggedOutAt = &now
	f.store.EXPECT().GetSession(gomock.Any(), "session-1").Return(ended, nil)

	_, err = f.service.Authenticate(context.Background(), "device-1", "dsecret", "session-1", rc)
	assert.Equal(t, autherror.ErrInvalidSession, err)
}

func TestInvalidateUserSessions_DropsCachedEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSessionFixture(ctrl)
	rc := domain.RequestContext{IPAddress: "1.2.3.4", UserAgent: "ua"}
	now := time.Now()
	device := quietDevice(t, "dsecret", rc)
	user := &domain.User{ID: "user-1", LastActiveAt: now}

	f.store.EXPECT().GetSession(gomock.Any(), "session-1").Return(liveSession(now), nil).Times(2)
	f.store.EXPECT().GetDevice(gomock.Any(), "device-1").Return(device, nil).Times(2)
	f.store.EXPECT().GetUser(gomock.Any(), "user-1").Return(user, nil).Times(2)
	expectTx(f.store).Times(2)

	_, err := f.service.Authenticate(context.Background(), "device-1", "dsecret", "session-1", rc)
	require.NoError(t, err)

	require.NoError(t, f.service.InvalidateUserSessions(context.Background(), "user-1"))

	// Cache entry carried the user tag, so the reload hits the store.
	_, err = f.service.Authenticate(context.Background(), "device-1", "dsecret", "session-1", rc)
	assert.NoError(t, err)
}

func pendingAttempt(t *testing.T, secret string) *domain.AuthAttempt {
	t.Helper()
	return &domain.AuthAttempt{
		ID:               "attempt-1",
		ClientSecretHash: hashOf(t, secret),
		Status:           domain.AttemptPending,
		UserID:           "user-1",
		DeviceID:         "device-1",
		AppID:            "app-1",
		RedirectURL:      "https://app.example.com/done",
		CreatedAt:        time.Now(),
	}
}

func TestExchange_MintsSessionOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSessionFixture(ctrl)
	f.store.EXPECT().GetAuthAttempt(gomock.Any(), "attempt-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, notBefore time.Time) (*domain.AuthAttempt, error) {
			assert.WithinDuration(t, time.Now().Add(-constant.AuthAttemptLifetime), notBefore, 5*time.Second)
			return pendingAttempt(t, "asecret"), nil
		})
	f.store.EXPECT().GetDevice(gomock.Any(), "device-1").Return(quietDevice(t, "dsecret", domain.RequestContext{}), nil)
	expectTx(f.store)
	f.store.EXPECT().ConsumeAuthAttempt(gomock.Any(), "attempt-1").Return(true, nil)
	f.store.EXPECT().FindLiveSession(gomock.Any(), "user-1", "device-1", "app-1", gomock.Any()).Return(nil, nil)
	f.store.EXPECT().SetUserLastLogin(gomock.Any(), "user-1", gomock.Any()).Return(nil)

	var created *domain.Session
	f.store.EXPECT().CreateSession(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s *domain.Session) error {
			created = s
			return nil
		})
	f.store.EXPECT().CreateAuditLog(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entry *domain.AuditLog) error {
			assert.Equal(t, "login", entry.Type)
			assert.Equal(t, "user-1", entry.UserID)
			return nil
		})

	out, err := f.service.Exchange(context.Background(), dto.ExchangeInput{
		AttemptID: "attempt-1", AttemptSecret: "asecret", DeviceID: "device-1", DeviceSecret: "dsecret",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, created.ID, out.SessionID)
	assert.NotEmpty(t, out.AuthorizationCode)
	assert.Equal(t, "https://app.example.com/done", out.RedirectURL)
	assert.WithinDuration(t, time.Now().Add(constant.SessionLifetime), created.ExpiresAt, 5*time.Second)
}

func TestExchange_ReplayIsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSessionFixture(ctrl)
	f.store.EXPECT().GetAuthAttempt(gomock.Any(), "attempt-1", gomock.Any()).Return(pendingAttempt(t, "asecret"), nil)
	f.store.EXPECT().GetDevice(gomock.Any(), "device-1").Return(quietDevice(t, "dsecret", domain.RequestContext{}), nil)
	expectTx(f.store)
	f.store.EXPECT().ConsumeAuthAttempt(gomock.Any(), "attempt-1").Return(false, nil)

	_, err := f.service.Exchange(context.Background(), dto.ExchangeInput{
		AttemptID: "attempt-1", AttemptSecret: "asecret", DeviceID: "device-1", DeviceSecret: "dsecret",
	})
	assert.Equal(t, autherror.ErrInvalidAuthAttempt, err)
}

func TestExchange_ReusesLiveSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSessionFixture(ctrl)
	now := time.Now()
	f.store.EXPECT().GetAuthAttempt(gomock.Any(), "attempt-1", gomock.Any()).Return(pendingAttempt(t, "asecret"), nil)
	f.store.EXPECT().GetDevice(gomock.Any(), "device-1").Return(quietDevice(t, "dsecret", domain.RequestContext{}), nil)
	expectTx(f.store)
	f.store.EXPECT().ConsumeAuthAttempt(gomock.Any(), "attempt-1").Return(true, nil)
	f.store.EXPECT().FindLiveSession(gomock.Any(), "user-1", "device-1", "app-1", gomock.Any()).
		Return(liveSession(now), nil)

	out, err := f.service.Exchange(context.Background(), dto.ExchangeInput{
		AttemptID: "attempt-1", AttemptSecret: "asecret", DeviceID: "device-1", DeviceSecret: "dsecret",
	})
	require.NoError(t, err)
	assert.Equal(t, "session-1", out.SessionID)
	assert.NotEmpty(t, out.AuthorizationCode)
}

func TestExchange_Rejections(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSessionFixture(ctrl)

	t.Run("unknown or stale attempt", func(t *testing.T) {
		f.store.EXPECT().GetAuthAttempt(gomock.Any(), "attempt-1", gomock.Any()).Return(nil, nil)
		_, err := f.service.Exchange(context.Background(), dto.ExchangeInput{
			AttemptID: "attempt-1", AttemptSecret: "asecret", DeviceID: "device-1",
		})
		assert.Equal(t, autherror.ErrInvalidAuthAttempt, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		f.store.EXPECT().GetAuthAttempt(gomock.Any(), "attempt-1", gomock.Any()).Return(pendingAttempt(t, "asecret"), nil)
		_, err := f.service.Exchange(context.Background(), dto.ExchangeInput{
			AttemptID: "attempt-1", AttemptSecret: "wrong", DeviceID: "device-1",
		})
		assert.Equal(t, autherror.ErrInvalidAuthAttempt, err)
	})

	t.Run("wrong device", func(t *testing.T) {
		f.store.EXPECT().GetAuthAttempt(gomock.Any(), "attempt-1", gomock.Any()).Return(pendingAttempt(t, "asecret"), nil)
		_, err := f.service.Exchange(context.Background(), dto.ExchangeInput{
			AttemptID: "attempt-1", AttemptSecret: "asecret", DeviceID: "device-2",
		})
		assert.Equal(t, autherror.ErrInvalidAuthAttempt, err)
	})

	t.Run("wrong device secret", func(t *testing.T) {
		f.store.EXPECT().GetAuthAttempt(gomock.Any(), "attempt-1", gomock.Any()).Return(pendingAttempt(t, "asecret"), nil)
		f.store.EXPECT().GetDevice(gomock.Any(), "device-1").Return(quietDevice(t, "dsecret", domain.RequestContext{}), nil)
		_, err := f.service.Exchange(context.Background(), dto.ExchangeInput{
			AttemptID: "attempt-1", AttemptSecret: "asecret", DeviceID: "device-1", DeviceSecret: "wrong",
		})
		assert.Equal(t, autherror.ErrInvalidAuthAttempt, err)
	})

	t.Run("unknown device", func(t *testing.T) {
		f.store.EXPECT().GetAuthAttempt(gomock.Any(), "attempt-1", gomock.Any()).Return(pendingAttempt(t, "asecret"), nil)
		f.store.EXPECT().GetDevice(gomock.Any(), "device-1").Return(nil, nil)
		_, err := f.service.Exchange(context.Background(), dto.ExchangeInput{
			AttemptID: "attempt-1", AttemptSecret: "asecret", DeviceID: "device-1", DeviceSecret: "dsecret",
		})
		assert.Equal(t, autherror.ErrInvalidAuthAttempt, err)
	})
}
