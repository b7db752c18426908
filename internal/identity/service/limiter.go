package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	autherror "github.com/metorial/identity-core/internal/errors"
	"github.com/metorial/identity-core/internal/identity/domain"
	"github.com/metorial/identity-core/pkg/constant"
)

// AbuseLimiter blocks identifiers that create too many auth intents in
// a trailing window. Blocks are only added; they expire by time.
type AbuseLimiter struct {
	store  domain.Store
	logger *slog.Logger
}

func NewAbuseLimiter(store domain.Store, logger *slog.Logger) *AbuseLimiter {
	return &AbuseLimiter{store: store, logger: logger}
}

// RegisterBlock runs before any auth action for the identifier. It
// rejects already-blocked identifiers and installs a new block when
// the trailing-window count crosses the threshold.
func (l *AbuseLimiter) RegisterBlock(ctx context.Context, identifier string, rc domain.RequestContext) error {
	if err := l.checkBlocked(ctx, identifier); err != nil {
		return err
	}
	return l.blockIfNeeded(ctx, identifier, rc)
}

func (l *AbuseLimiter) checkBlocked(ctx context.Context, identifier string) error {
	block, err := l.store.GetActiveBlock(ctx, identifier, time.Now())
	if err != nil {
		return err
	}
	if block != nil {
		return autherror.ErrIdentifierBlocked
	}
	return nil
}

func (l *AbuseLimiter) blockIfNeeded(ctx context.Context, identifier string, rc domain.RequestContext) error {
	now := time.Now()
	count, err := l.store.CountIntentsForIdentifierSince(ctx, identifier, now.Add(-constant.AbuseWindow))
	if err != nil {
		return err
	}
	if count <= constant.AbuseMaxIntents {
		return nil
	}
	block := &domain.AuthBlock{
		ID:             uuid.NewString(),
		Identifier:     identifier,
		IdentifierType: domain.IdentifierEmail,
		IPAddress:      rc.IPAddress,
		BlockedUntil:   now.Add(constant.AbuseBlockPeriod),
		CreatedAt:      now,
	}
	if err := l.store.CreateBlock(ctx, block); err != nil {
		return err
	}
	l.logger.Warn("identifier blocked for abuse",
		"identifier", identifier, "ip", rc.IPAddress, "until", block.BlockedUntil)
	return autherror.ErrIdentifierBlocked
}
