// Package job contains background deliveries that run on a schedule.
package job

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"zenvira/internal/delivery"
	"zenvira/internal/usecase"

	"go.uber.org/fx"
)

const defaultPurgeInterval = time.Hour

// SessionPurgerParams holds dependencies for the session purger, injected by Fx.
type SessionPurgerParams struct {
	fx.In

	Lc         fx.Lifecycle
	IdentityUC usecase.IdentityUsecase
	Logger     *slog.Logger
}

type sessionPurger struct {
	identityUC usecase.IdentityUsecase
	logger     *slog.Logger
	interval   time.Duration

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewSessionPurger creates the delivery that periodically deletes expired refresh tokens.
func NewSessionPurger(params SessionPurgerParams) delivery.Delivery {
	p := newSessionPurger(params.IdentityUC, params.Logger, defaultPurgeInterval)

	params.Lc.Append(fx.Hook{
		OnStop: p.shutdown,
	})

	return p
}

func newSessionPurger(identityUC usecase.IdentityUsecase, logger *slog.Logger, interval time.Duration) *sessionPurger {
	return &sessionPurger{
		identityUC: identityUC,
		logger:     logger,
		interval:   interval,
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// Serve purges once immediately and then on every tick until shutdown.
func (p *sessionPurger) Serve(ctx context.Context) error {
	defer close(p.done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		p.purge(ctx)

		select {
		case <-p.stop:
			return nil
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (p *sessionPurger) purge(ctx context.Context) {
	removed, err := p.identityUC.PurgeExpiredSessions(ctx)
	if err != nil {
		p.logger.Warn("Failed to purge expired sessions", slog.Any("error", err))

		return
	}

	if removed > 0 {
		p.logger.Info("Purged expired sessions", slog.Int64("removed", removed))
	}
}

func (p *sessionPurger) shutdown(ctx context.Context) error {
	p.stopOnce.Do(func() { close(p.stop) })

	select {
	case <-p.done:
	case <-ctx.Done():
	}

	return nil
}
