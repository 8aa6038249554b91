package usecase

import (
	"context"
	"time"

	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/repository"
	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	ProjectUsecaseInterface
	TemplateUsecaseInterface
	ScheduleUsecaseInterface
	HolidayUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	source domain.ProjectSource,
	notifier domain.Notifier,
	timeout time.Duration,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, source, notifier, timeout)
}
