package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/metorial/identity-core/internal/identity/domain"
	repo "github.com/metorial/identity-core/internal/identity/repository/postgres"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, *repo.Repository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, repo.NewRepository(mock)
}

var deviceColumns = []string{"id", "client_secret_hash", "first_ip_address", "first_user_agent",
	"last_ip_address", "last_user_agent", "last_active_at", "created_at"}

func TestGetDevice(t *testing.T) {
	mock, r := newMockRepo(t)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, client_secret_hash").
			WithArgs("device-1").
			WillReturnRows(pgxmock.NewRows(deviceColumns).
				AddRow("device-1", "hash", "1.2.3.4", "ua", "1.2.3.4", "ua", time.Now(), time.Now()))

		device, err := r.GetDevice(ctx, "device-1")
		require.NoError(t, err)
		assert.Equal(t, "device-1", device.ID)
		assert.Equal(t, "hash", device.ClientSecretHash)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, client_secret_hash").
			WithArgs("device-1").
			WillReturnError(pgx.ErrNoRows)

		device, err := r.GetDevice(ctx, "device-1")
		require.NoError(t, err)
		assert.Nil(t, device)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, client_secret_hash").
			WithArgs("device-1").
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetDevice(ctx, "device-1")
		assert.Error(t, err)
	})
}

var sessionColumns = []string{"id", "user_id", "device_id", "app_id", "impersonation_id",
	"expires_at", "last_active_at", "logged_out_at", "created_at"}

func TestFindLiveSession(t *testing.T) {
	mock, r := newMockRepo(t)
	ctx := context.Background()
	now := time.Now()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, device_id").
			WithArgs("user-1", "device-1", "app-1", pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows(sessionColumns).
				AddRow("session-1", "user-1", "device-1", "app-1", "",
					now.Add(14*24*time.Hour), now, nil, now))

		session, err := r.FindLiveSession(ctx, "user-1", "device-1", "app-1", now)
		require.NoError(t, err)
		assert.Equal(t, "session-1", session.ID)
		assert.Nil(t, session.LoggedOutAt)
	})

	t.Run("no live session", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, device_id").
			WithArgs("user-1", "device-1", "app-1", pgxmock.AnyArg()).
			WillReturnError(pgx.ErrNoRows)

		session, err := r.FindLiveSession(ctx, "user-1", "device-1", "app-1", now)
		require.NoError(t, err)
		assert.Nil(t, session)
	})
}

func TestConsumeAuthAttempt(t *testing.T) {
	mock, r := newMockRepo(t)
	ctx := context.Background()

	t.Run("flips pending attempt", func(t *testing.T) {
		mock.ExpectExec("UPDATE auth_attempts SET status").
			WithArgs("attempt-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		flipped, err := r.ConsumeAuthAttempt(ctx, "attempt-1")
		require.NoError(t, err)
		assert.True(t, flipped)
	})

	t.Run("already consumed", func(t *testing.T) {
		mock.ExpectExec("UPDATE auth_attempts SET status").
			WithArgs("attempt-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		flipped, err := r.ConsumeAuthAttempt(ctx, "attempt-1")
		require.NoError(t, err)
		assert.False(t, flipped)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("UPDATE auth_attempts SET status").
			WithArgs("attempt-1").
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.ConsumeAuthAttempt(ctx, "attempt-1")
		assert.Error(t, err)
	})
}

func TestConsumeIntent(t *testing.T) {
	mock, r := newMockRepo(t)
	ctx := context.Background()
	now := time.Now()

	t.Run("stamps once", func(t *testing.T) {
		mock.ExpectExec("UPDATE auth_intents").
			WithArgs("intent-1", now).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		stamped, err := r.ConsumeIntent(ctx, "intent-1", now)
		require.NoError(t, err)
		assert.True(t, stamped)
	})

	t.Run("lost the race", func(t *testing.T) {
		mock.ExpectExec("UPDATE auth_intents").
			WithArgs("intent-1", now).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		stamped, err := r.ConsumeIntent(ctx, "intent-1", now)
		require.NoError(t, err)
		assert.False(t, stamped)
	})
}

func TestGetAuthAttempt(t *testing.T) {
	mock, r := newMockRepo(t)
	ctx := context.Background()
	now := time.Now()
	columns := []string{"id", "client_secret_hash", "status", "user_id", "device_id",
		"app_id", "redirect_url", "auth_intent_id", "user_impersonation_id", "created_at"}

	t.Run("within window", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, client_secret_hash, status").
			WithArgs("attempt-1", pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow("attempt-1", "hash", domain.AttemptPending, "user-1", "device-1",
					"app-1", "https://app.example.com", "", "", now))

		attempt, err := r.GetAuthAttempt(ctx, "attempt-1", now.Add(-time.Minute))
		require.NoError(t, err)
		assert.Equal(t, domain.AttemptPending, attempt.Status)
	})

	t.Run("outside window reads as missing", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, client_secret_hash, status").
			WithArgs("attempt-1", pgxmock.AnyArg()).
			WillReturnError(pgx.ErrNoRows)

		attempt, err := r.GetAuthAttempt(ctx, "attempt-1", now.Add(-time.Minute))
		require.NoError(t, err)
		assert.Nil(t, attempt)
	})
}

func TestGetIntent(t *testing.T) {
	mock, r := newMockRepo(t)
	ctx := context.Background()
	now := time.Now()

	intentColumns := []string{"id", "client_secret_hash", "device_id", "app_id", "identifier",
		"identifier_type", "type", "user_id", "redirect_url", "verified_at",
		"captcha_verified_at", "consumed_at", "expires_at", "created_at"}
	stepColumns := []string{"id", "intent_id", "step_index", "type", "email", "verified_at", "created_at"}

	t.Run("loads intent with ordered steps", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, client_secret_hash, device_id").
			WithArgs("intent-1").
			WillReturnRows(pgxmock.NewRows(intentColumns).
				AddRow("intent-1", "hash", "device-1", "app-1", "a@b.com",
					domain.IdentifierEmail, domain.IntentTypeLogin, "", "",
					nil, nil, nil, now.Add(30*time.Minute), now))
		mock.ExpectQuery("SELECT id, intent_id, step_index").
			WithArgs("intent-1").
			WillReturnRows(pgxmock.NewRows(stepColumns).
				AddRow("step-0", "intent-1", 0, domain.StepEmailCode, "a@b.com", nil, now).
				AddRow("step-1", "intent-1", 1, domain.StepEmailCode, "a@b.com", nil, now))

		intent, err := r.GetIntent(ctx, "intent-1")
		require.NoError(t, err)
		require.Len(t, intent.Steps, 2)
		assert.Equal(t, 0, intent.Steps[0].Index)
		assert.Equal(t, domain.StepEmailCode, intent.Steps[0].Type)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, client_secret_hash, device_id").
			WithArgs("intent-1").
			WillReturnError(pgx.ErrNoRows)

		intent, err := r.GetIntent(ctx, "intent-1")
		require.NoError(t, err)
		assert.Nil(t, intent)
	})
}

func TestCounts(t *testing.T) {
	mock, r := newMockRepo(t)
	ctx := context.Background()

	t.Run("failed verifications", func(t *testing.T) {
		mock.ExpectQuery("SELECT count").
			WithArgs("intent-1").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))

		count, err := r.CountFailedVerifications(ctx, "intent-1")
		require.NoError(t, err)
		assert.Equal(t, 7, count)
	})

	t.Run("intents for identifier", func(t *testing.T) {
		mock.ExpectQuery("SELECT count").
			WithArgs("a@b.com", pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(16))

		count, err := r.CountIntentsForIdentifierSince(ctx, "a@b.com", time.Now())
		require.NoError(t, err)
		assert.Equal(t, 16, count)
	})

	t.Run("codes for intent", func(t *testing.T) {
		mock.ExpectQuery("SELECT count").
			WithArgs("intent-1").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

		count, err := r.CountCodes(ctx, "intent-1")
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})
}

func TestLatestCodeIssuedAt(t *testing.T) {
	mock, r := newMockRepo(t)
	ctx := context.Background()
	issued := time.Now().Add(-10 * time.Second)

	t.Run("returns latest timestamp", func(t *testing.T) {
		mock.ExpectQuery("SELECT c.created_at").
			WithArgs("intent-1").
			WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(issued))

		at, err := r.LatestCodeIssuedAt(ctx, "intent-1")
		require.NoError(t, err)
		require.NotNil(t, at)
		assert.WithinDuration(t, issued, *at, time.Second)
	})

	t.Run("no codes yet", func(t *testing.T) {
		mock.ExpectQuery("SELECT c.created_at").
			WithArgs("intent-1").
			WillReturnError(pgx.ErrNoRows)

		at, err := r.LatestCodeIssuedAt(ctx, "intent-1")
		require.NoError(t, err)
		assert.Nil(t, at)
	})
}

func TestGetActiveBlock(t *testing.T) {
	mock, r := newMockRepo(t)
	ctx := context.Background()
	now := time.Now()
	columns := []string{"id", "identifier", "identifier_type", "ip_address", "blocked_until", "created_at"}

	t.Run("active block", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, identifier").
			WithArgs("a@b.com", pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow("block-1", "a@b.com", domain.IdentifierEmail, "1.2.3.4", now.Add(time.Hour), now))

		block, err := r.GetActiveBlock(ctx, "a@b.com", now)
		require.NoError(t, err)
		assert.Equal(t, "block-1", block.ID)
	})

	t.Run("no block", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, identifier").
			WithArgs("a@b.com", pgxmock.AnyArg()).
			WillReturnError(pgx.ErrNoRows)

		block, err := r.GetActiveBlock(ctx, "a@b.com", now)
		require.NoError(t, err)
		assert.Nil(t, block)
	})
}

func TestGetAccessGroup(t *testing.T) {
	mock, r := newMockRepo(t)
	ctx := context.Background()
	now := time.Now()

	t.Run("loads group with rules", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, app_id, name").
			WithArgs("group-1").
			WillReturnRows(pgxmock.NewRows([]string{"id", "app_id", "name", "created_at"}).
				AddRow("group-1", "app-1", "staff", now))
		mock.ExpectQuery("SELECT id, group_id, type").
			WithArgs("group-1").
			WillReturnRows(pgxmock.NewRows([]string{"id", "group_id", "type", "value", "created_at"}).
				AddRow("rule-1", "group-1", domain.RuleEmailDomain, "example.com", now))

		group, err := r.GetAccessGroup(ctx, "group-1")
		require.NoError(t, err)
		require.Len(t, group.Rules, 1)
		assert.Equal(t, domain.RuleEmailDomain, group.Rules[0].Type)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, app_id, name").
			WithArgs("group-1").
			WillReturnError(pgx.ErrNoRows)

		group, err := r.GetAccessGroup(ctx, "group-1")
		require.NoError(t, err)
		assert.Nil(t, group)
	})
}

func TestListUserEmails(t *testing.T) {
	mock, r := newMockRepo(t)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery("SELECT id, user_id, email").
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "email", "verified_at", "created_at"}).
			AddRow("email-1", "user-1", "a@b.com", &now, now).
			AddRow("email-2", "user-1", "b@b.com", nil, now))

	emails, err := r.ListUserEmails(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, emails, 2)
	assert.NotNil(t, emails[0].VerifiedAt)
	assert.Nil(t, emails[1].VerifiedAt)
}

func TestInTx(t *testing.T) {
	ctx := context.Background()

	t.Run("commits and runs hooks", func(t *testing.T) {
		mock, r := newMockRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE sessions SET expires_at").
			WithArgs("session-1", pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		hookRan := false
		err := r.InTx(ctx, func(tx domain.Store) ([]func(), error) {
			if err := tx.BumpSession(ctx, "session-1", time.Now()); err != nil {
				return nil, err
			}
			return []func(){func() { hookRan = true }}, nil
		})
		require.NoError(t, err)
		assert.True(t, hookRan)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on error and skips hooks", func(t *testing.T) {
		mock, r := newMockRepo(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		hookRan := false
		err := r.InTx(ctx, func(tx domain.Store) ([]func(), error) {
			return []func(){func() { hookRan = true }}, fmt.Errorf("boom")
		})
		assert.Error(t, err)
		assert.False(t, hookRan)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("hooks skipped on commit failure", func(t *testing.T) {
		mock, r := newMockRepo(t)
		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(fmt.Errorf("commit failed"))

		hookRan := false
		err := r.InTx(ctx, func(tx domain.Store) ([]func(), error) {
			return []func(){func() { hookRan = true }}, nil
		})
		assert.Error(t, err)
		assert.False(t, hookRan)
	})
}

func TestCreateAuditLog(t *testing.T) {
	mock, r := newMockRepo(t)
	ctx := context.Background()

	mock.ExpectExec("INSERT INTO audit_logs").
		WithArgs("audit-1", "app-1", "login", "user-1", "1.2.3.4", "ua",
			pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := r.CreateAuditLog(ctx, &domain.AuditLog{
		ID: "audit-1", AppID: "app-1", Type: "login", UserID: "user-1",
		IPAddress: "1.2.3.4", UserAgent: "ua",
		Metadata:  map[string]string{"source": "exchange"},
		CreatedAt: time.Now(),
	})
	assert.NoError(t, err)
}
