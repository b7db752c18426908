package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/metorial/identity-core/internal/identity/domain"
)

// DBTX is satisfied by *pgxpool.Pool, pgx.Tx and the pgxmock pool.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Repository struct {
	db DBTX
}

func NewRepository(db DBTX) *Repository {
	return &Repository{db: db}
}

// InTx runs fn against a transactional repository. Hooks returned by
// fn run strictly after a successful commit.
func (r *Repository) InTx(ctx context.Context, fn func(tx domain.Store) ([]func(), error)) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	hooks, err := fn(&Repository{db: tx})
	if err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	for _, hook := range hooks {
		hook()
	}
	return nil
}

// Devices

func (r *Repository) GetDevice(ctx context.Context, id string) (*domain.Device, error) {
	query := `
		SELECT id, client_secret_hash, first_ip_address, first_user_agent,
		       last_ip_address, last_user_agent, last_active_at, created_at
		FROM devices
		WHERE id = $1
	`
	var d domain.Device
	err := r.db.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.ClientSecretHash, &d.FirstIPAddress, &d.FirstUserAgent,
		&d.LastIPAddress, &d.LastUserAgent, &d.LastActiveAt, &d.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get device: %w", err)
	}
	return &d, nil
}

func (r *Repository) CreateDevice(ctx context.Context, d *domain.Device) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO devices (id, client_secret_hash, first_ip_address, first_user_agent,
		                     last_ip_address, last_user_agent, last_active_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, d.ID, d.ClientSecretHash, d.FirstIPAddress, d.FirstUserAgent,
		d.LastIPAddress, d.LastUserAgent, d.LastActiveAt, d.CreatedAt)
	return err
}

func (r *Repository) UpdateDeviceSeen(ctx context.Context, id, ip, ua string, lastActiveAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE devices
		SET last_ip_address = $2, last_user_agent = $3, last_active_at = $4
		WHERE id = $1
	`, id, ip, ua, lastActiveAt)
	return err
}

func (r *Repository) CreateDeviceHistory(ctx context.Context, h *domain.DeviceHistory) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO device_history (id, device_id, ip_address, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, h.ID, h.DeviceID, h.IPAddress, h.UserAgent, h.CreatedAt)
	return err
}

// Sessions

const sessionColumns = `id, user_id, device_id, app_id, impersonation_id,
	expires_at, last_active_at, logged_out_at, created_at`

func scanSession(row pgx.Row) (*domain.Session, error) {
	var s domain.Session
	err := row.Scan(&s.ID, &s.UserID, &s.DeviceID, &s.AppID, &s.ImpersonationID,
		&s.ExpiresAt, &s.LastActiveAt, &s.LoggedOutAt, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan session: %w", err)
	}
	return &s, nil
}

func (r *Repository) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1`
	return scanSession(r.db.QueryRow(ctx, query, id))
}

func (r *Repository) CreateSession(ctx context.Context, s *domain.Session) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO sessions (id, user_id, device_id, app_id, impersonation_id,
		                      expires_at, last_active_at, logged_out_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, s.ID, s.UserID, s.DeviceID, s.AppID, s.ImpersonationID,
		s.ExpiresAt, s.LastActiveAt, s.LoggedOutAt, s.CreatedAt)
	return err
}

func (r *Repository) BumpSession(ctx context.Context, id string, expiresAt time.Time) error {
	_, err := r.db.Exec(ctx, `UPDATE sessions SET expires_at = $2 WHERE id = $1`, id, expiresAt)
	return err
}

func (r *Repository) TouchSession(ctx context.Context, id string, lastActiveAt time.Time) error {
	_, err := r.db.Exec(ctx, `UPDATE sessions SET last_active_at = $2 WHERE id = $1`, id, lastActiveAt)
	return err
}

func (r *Repository) EndSession(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE sessions SET logged_out_at = $2, expires_at = $2 WHERE id = $1
	`, id, at)
	return err
}

func (r *Repository) FindLiveSessionByUserDevice(ctx context.Context, userID, deviceID string, now time.Time) (*domain.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE user_id = $1 AND device_id = $2 AND logged_out_at IS NULL AND expires_at > $3
		ORDER BY created_at DESC
		LIMIT 1
	`
	return scanSession(r.db.QueryRow(ctx, query, userID, deviceID, now))
}

func (r *Repository) FindLiveSession(ctx context.Context, userID, deviceID, appID string, now time.Time) (*domain.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE user_id = $1 AND device_id = $2 AND app_id = $3
		  AND logged_out_at IS NULL AND expires_at > $4
		ORDER BY created_at DESC
		LIMIT 1
	`
	return scanSession(r.db.QueryRow(ctx, query, userID, deviceID, appID, now))
}

// Users

const userColumns = `id, first_name, last_name, image_url, last_login_at,
	last_active_at, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.ImageURL, &u.LastLoginAt,
		&u.LastActiveAt, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

func (r *Repository) GetUser(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *Repository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT u.id, u.first_name, u.last_name, u.image_url, u.last_login_at,
		       u.last_active_at, u.created_at, u.updated_at
		FROM users u
		JOIN user_emails e ON e.user_id = u.id
		WHERE e.email = $1
		LIMIT 1
	`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *Repository) CreateUser(ctx context.Context, u *domain.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, first_name, last_name, image_url, last_login_at,
		                   last_active_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, u.ID, u.FirstName, u.LastName, u.ImageURL, u.LastLoginAt,
		u.LastActiveAt, u.CreatedAt, u.UpdatedAt)
	return err
}

func (r *Repository) CreateUserEmail(ctx context.Context, e *domain.UserEmail) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO user_emails (id, user_id, email, verified_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, e.ID, e.UserID, e.Email, e.VerifiedAt, e.CreatedAt)
	return err
}

func (r *Repository) ListUserEmails(ctx context.Context, userID string) ([]domain.UserEmail, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, email, verified_at, created_at
		FROM user_emails
		WHERE user_id = $1
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list user emails: %w", err)
	}
	defer rows.Close()

	var emails []domain.UserEmail
	for rows.Next() {
		var e domain.UserEmail
		if err := rows.Scan(&e.ID, &e.UserID, &e.Email, &e.VerifiedAt, &e.CreatedAt); err != nil {
			return nil, err
		}
		emails = append(emails, e)
	}
	return emails, rows.Err()
}

func (r *Repository) TouchUser(ctx context.Context, id string, lastActiveAt time.Time) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET last_active_at = $2 WHERE id = $1`, id, lastActiveAt)
	return err
}

func (r *Repository) SetUserLastLogin(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET last_login_at = $2 WHERE id = $1`, id, at)
	return err
}

// Federation

func (r *Repository) ListSSOTenantsForApp(ctx context.Context, appID string) ([]domain.SSOTenant, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, app_id, name, created_at
		FROM sso_tenants
		WHERE app_id = $1 OR app_id = ''
	`, appID)
	if err != nil {
		return nil, fmt.Errorf("list sso tenants: %w", err)
	}
	defer rows.Close()

	var tenants []domain.SSOTenant
	for rows.Next() {
		var t domain.SSOTenant
		if err := rows.Scan(&t.ID, &t.AppID, &t.Name, &t.CreatedAt); err != nil {
			return nil, err
		}
		tenants = append(tenants, t)
	}
	return tenants, rows.Err()
}

func (r *Repository) ListSSOProfilesByEmails(ctx context.Context, emails []string) ([]domain.SSOProfile, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, tenant_id, email, external_id, groups, roles, created_at
		FROM sso_profiles
		WHERE email = ANY($1)
	`, emails)
	if err != nil {
		return nil, fmt.Errorf("list sso profiles: %w", err)
	}
	defer rows.Close()

	var profiles []domain.SSOProfile
	for rows.Next() {
		var p domain.SSOProfile
		if err := rows.Scan(&p.ID, &p.UserID, &p.TenantID, &p.Email, &p.ExternalID,
			&p.Groups, &p.Roles, &p.CreatedAt); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// Auth intents

func (r *Repository) CreateIntent(ctx context.Context, i *domain.AuthIntent) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO auth_intents (id, client_secret_hash, device_id, app_id, identifier,
		                          identifier_type, type, user_id, redirect_url, verified_at,
		                          captcha_verified_at, consumed_at, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`, i.ID, i.ClientSecretHash, i.DeviceID, i.AppID, i.Identifier,
		i.IdentifierType, i.Type, i.UserID, i.RedirectURL, i.VerifiedAt,
		i.CaptchaVerifiedAt, i.ConsumedAt, i.ExpiresAt, i.CreatedAt)
	return err
}

func (r *Repository) GetIntent(ctx context.Context, id string) (*domain.AuthIntent, error) {
	query := `
		SELECT id, client_secret_hash, device_id, app_id, identifier, identifier_type,
		       type, user_id, redirect_url, verified_at, captcha_verified_at,
		       consumed_at, expires_at, created_at
		FROM auth_intents
		WHERE id = $1
	`
	var i domain.AuthIntent
	err := r.db.QueryRow(ctx, query, id).Scan(
		&i.ID, &i.ClientSecretHash, &i.DeviceID, &i.AppID, &i.Identifier, &i.IdentifierType,
		&i.Type, &i.UserID, &i.RedirectURL, &i.VerifiedAt, &i.CaptchaVerifiedAt,
		&i.ConsumedAt, &i.ExpiresAt, &i.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get intent: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, intent_id, step_index, type, email, verified_at, created_at
		FROM auth_intent_steps
		WHERE intent_id = $1
		ORDER BY step_index
	`, id)
	if err != nil {
		return nil, fmt.Errorf("get intent steps: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var s domain.AuthIntentStep
		if err := rows.Scan(&s.ID, &s.IntentID, &s.Index, &s.Type, &s.Email, &s.VerifiedAt, &s.CreatedAt); err != nil {
			return nil, err
		}
		i.Steps = append(i.Steps, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *Repository) SetIntentVerified(ctx context.Context, id string, at, expiresAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE auth_intents SET verified_at = $2, expires_at = $3 WHERE id = $1
	`, id, at, expiresAt)
	return err
}

func (r *Repository) SetIntentCaptchaVerified(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE auth_intents SET captcha_verified_at = $2 WHERE id = $1
	`, id, at)
	return err
}

func (r *Repository) SetIntentUser(ctx context.Context, id, userID string) error {
	_, err := r.db.Exec(ctx, `UPDATE auth_intents SET user_id = $2 WHERE id = $1`, id, userID)
	return err
}

// ConsumeIntent stamps consumed_at and collapses the expiry, but only
// if the intent has not already been consumed.
func (r *Repository) ConsumeIntent(ctx context.Context, id string, at time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE auth_intents
		SET consumed_at = $2, expires_at = $2
		WHERE id = $1 AND consumed_at IS NULL
	`, id, at)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) CreateIntentStep(ctx context.Context, s *domain.AuthIntentStep) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO auth_intent_steps (id, intent_id, step_index, type, email, verified_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, s.ID, s.IntentID, s.Index, s.Type, s.Email, s.VerifiedAt, s.CreatedAt)
	return err
}

func (r *Repository) GetStep(ctx context.Context, id string) (*domain.AuthIntentStep, error) {
	query := `
		SELECT id, intent_id, step_index, type, email, verified_at, created_at
		FROM auth_intent_steps
		WHERE id = $1
	`
	var s domain.AuthIntentStep
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.IntentID, &s.Index, &s.Type, &s.Email, &s.VerifiedAt, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get step: %w", err)
	}
	return &s, nil
}

func (r *Repository) SetStepVerified(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE auth_intent_steps SET verified_at = $2 WHERE id = $1
	`, id, at)
	return err
}

func (r *Repository) CreateIntentCode(ctx context.Context, c *domain.AuthIntentCode) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO auth_intent_codes (id, step_id, email, code, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, c.ID, c.StepID, c.Email, c.Code, c.CreatedAt)
	return err
}

func (r *Repository) FindCode(ctx context.Context, stepID, code string) (*domain.AuthIntentCode, error) {
	query := `
		SELECT id, step_id, email, code, created_at
		FROM auth_intent_codes
		WHERE step_id = $1 AND code = $2
		LIMIT 1
	`
	var c domain.AuthIntentCode
	err := r.db.QueryRow(ctx, query, stepID, code).Scan(&c.ID, &c.StepID, &c.Email, &c.Code, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find code: %w", err)
	}
	return &c, nil
}

func (r *Repository) CountCodes(ctx context.Context, intentID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT count(*)
		FROM auth_intent_codes c
		JOIN auth_intent_steps s ON s.id = c.step_id
		WHERE s.intent_id = $1
	`, intentID).Scan(&count)
	return count, err
}

func (r *Repository) LatestCodeIssuedAt(ctx context.Context, intentID string) (*time.Time, error) {
	var at time.Time
	err := r.db.QueryRow(ctx, `
		SELECT c.created_at
		FROM auth_intent_codes c
		JOIN auth_intent_steps s ON s.id = c.step_id
		WHERE s.intent_id = $1
		ORDER BY c.created_at DESC
		LIMIT 1
	`, intentID).Scan(&at)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &at, nil
}

func (r *Repository) CreateVerificationAttempt(ctx context.Context, a *domain.AuthIntentVerificationAttempt) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO auth_intent_verification_attempts (id, intent_id, step_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, a.ID, a.IntentID, a.StepID, a.Status, a.CreatedAt)
	return err
}

func (r *Repository) CountFailedVerifications(ctx context.Context, intentID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT count(*)
		FROM auth_intent_verification_attempts
		WHERE intent_id = $1 AND status = 'failure'
	`, intentID).Scan(&count)
	return count, err
}

func (r *Repository) CountIntentsForIdentifierSince(ctx context.Context, identifier string, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT count(*)
		FROM auth_intents
		WHERE identifier = $1 AND created_at > $2
	`, identifier, since).Scan(&count)
	return count, err
}

// Auth attempts

func (r *Repository) CreateAuthAttempt(ctx context.Context, a *domain.AuthAttempt) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO auth_attempts (id, client_secret_hash, status, user_id, device_id,
		                           app_id, redirect_url, auth_intent_id, user_impersonation_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, a.ID, a.ClientSecretHash, a.Status, a.UserID, a.DeviceID,
		a.AppID, a.RedirectURL, a.AuthIntentID, a.UserImpersonationID, a.CreatedAt)
	return err
}

// GetAuthAttempt only sees attempts created after notBefore; older
// attempts are treated as not found, bounding the replay window.
func (r *Repository) GetAuthAttempt(ctx context.Context, id string, notBefore time.Time) (*domain.AuthAttempt, error) {
	query := `
		SELECT id, client_secret_hash, status, user_id, device_id,
		       app_id, redirect_url, auth_intent_id, user_impersonation_id, created_at
		FROM auth_attempts
		WHERE id = $1 AND created_at > $2
	`
	var a domain.AuthAttempt
	err := r.db.QueryRow(ctx, query, id, notBefore).Scan(
		&a.ID, &a.ClientSecretHash, &a.Status, &a.UserID, &a.DeviceID,
		&a.AppID, &a.RedirectURL, &a.AuthIntentID, &a.UserImpersonationID, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get auth attempt: %w", err)
	}
	return &a, nil
}

// ConsumeAuthAttempt is the replay barrier: a conditional flip from
// pending to consumed that can succeed for exactly one caller.
func (r *Repository) ConsumeAuthAttempt(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE auth_attempts SET status = 'consumed' WHERE id = $1 AND status = 'pending'
	`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Abuse blocks

func (r *Repository) GetActiveBlock(ctx context.Context, identifier string, now time.Time) (*domain.AuthBlock, error) {
	query := `
		SELECT id, identifier, identifier_type, ip_address, blocked_until, created_at
		FROM auth_blocks
		WHERE identifier = $1 AND blocked_until > $2
		ORDER BY blocked_until DESC
		LIMIT 1
	`
	var b domain.AuthBlock
	err := r.db.QueryRow(ctx, query, identifier, now).Scan(
		&b.ID, &b.Identifier, &b.IdentifierType, &b.IPAddress, &b.BlockedUntil, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get active block: %w", err)
	}
	return &b, nil
}

func (r *Repository) CreateBlock(ctx context.Context, b *domain.AuthBlock) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO auth_blocks (id, identifier, identifier_type, ip_address, blocked_until, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, b.ID, b.Identifier, b.IdentifierType, b.IPAddress, b.BlockedUntil, b.CreatedAt)
	return err
}

// Access groups

func (r *Repository) listAssignments(ctx context.Context, query, arg string) ([]domain.AccessGroupAssignment, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()

	var assignments []domain.AccessGroupAssignment
	for rows.Next() {
		var a domain.AccessGroupAssignment
		if err := rows.Scan(&a.ID, &a.GroupID, &a.AppID, &a.SurfaceID, &a.CreatedAt); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (r *Repository) ListAssignmentsForApp(ctx context.Context, appID string) ([]domain.AccessGroupAssignment, error) {
	return r.listAssignments(ctx, `
		SELECT id, group_id, app_id, surface_id, created_at
		FROM access_group_assignments
		WHERE app_id = $1
	`, appID)
}

func (r *Repository) ListAssignmentsForSurface(ctx context.Context, surfaceID string) ([]domain.AccessGroupAssignment, error) {
	return r.listAssignments(ctx, `
		SELECT id, group_id, app_id, surface_id, created_at
		FROM access_group_assignments
		WHERE surface_id = $1
	`, surfaceID)
}

func (r *Repository) GetAccessGroup(ctx context.Context, id string) (*domain.AccessGroup, error) {
	var g domain.AccessGroup
	err := r.db.QueryRow(ctx, `
		SELECT id, app_id, name, created_at FROM access_groups WHERE id = $1
	`, id).Scan(&g.ID, &g.AppID, &g.Name, &g.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get access group: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, group_id, type, value, created_at
		FROM access_group_rules
		WHERE group_id = $1
	`, id)
	if err != nil {
		return nil, fmt.Errorf("get access group rules: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var rule domain.AccessGroupRule
		if err := rows.Scan(&rule.ID, &rule.GroupID, &rule.Type, &rule.Value, &rule.CreatedAt); err != nil {
			return nil, err
		}
		g.Rules = append(g.Rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *Repository) CreateAccessGroup(ctx context.Context, g *domain.AccessGroup) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO access_groups (id, app_id, name, created_at)
		VALUES ($1, $2, $3, $4)
	`, g.ID, g.AppID, g.Name, g.CreatedAt)
	return err
}

func (r *Repository) CreateAccessGroupRule(ctx context.Context, rule *domain.AccessGroupRule) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO access_group_rules (id, group_id, type, value, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, rule.ID, rule.GroupID, rule.Type, rule.Value, rule.CreatedAt)
	return err
}

func (r *Repository) CreateAccessGroupAssignment(ctx context.Context, a *domain.AccessGroupAssignment) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO access_group_assignments (id, group_id, app_id, surface_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, a.ID, a.GroupID, a.AppID, a.SurfaceID, a.CreatedAt)
	return err
}

// DeleteAccessGroup cascades to the group's rules and assignments.
func (r *Repository) DeleteAccessGroup(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM access_groups WHERE id = $1`, id)
	return err
}

// Audit

func (r *Repository) CreateAuditLog(ctx context.Context, l *domain.AuditLog) error {
	metadata, err := json.Marshal(l.Metadata)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO audit_logs (id, app_id, type, user_id, ip_address, user_agent, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, l.ID, l.AppID, l.Type, l.UserID, l.IPAddress, l.UserAgent, metadata, l.CreatedAt)
	return err
}
