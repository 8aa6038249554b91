package domain

import (
	"context"
	"time"

	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/entities"
	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/repository"

	"go.uber.org/zap"
)

// ProjectSource is the optional remote project provider (Redmine).
type ProjectSource interface {
	Enabled() bool
	Host() string
	FetchProjects(ctx context.Context) ([]entities.Project, error)
}

// Notifier delivers event notifications; it degrades failures to a status
// instead of returning errors.
type Notifier interface {
	Notify(ctx context.Context, event entities.Event) entities.NotifyStatus
}

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx      context.Context
	log      *zap.SugaredLogger
	repo     repository.Repository
	source   ProjectSource
	notifier Notifier
	timeout  time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	source ProjectSource,
	notifier Notifier,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:      ctx,
		log:      log,
		repo:     repo,
		source:   source,
		notifier: notifier,
		timeout:  timeout,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
