package usecase

import (
	"context"

	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/entities"
)

// ProjectUsecaseInterface abstracts project-related operations for delivery layer.
type ProjectUsecaseInterface interface {
	Projects(ctx context.Context) ([]entities.Project, *entities.ProjectMeta, error)
	AddProject(ctx context.Context, name string, memberNames []string) (*entities.Project, *entities.ProjectMeta, error)
	AddMembers(ctx context.Context, projectID string, memberNames []string) (*entities.Project, []entities.Member, *entities.ProjectMeta, error)
}

// TemplateUsecaseInterface abstracts the agenda template catalog.
type TemplateUsecaseInterface interface {
	Templates(ctx context.Context) ([]entities.AgendaTemplate, error)
}

// ScheduleUsecaseInterface abstracts schedule-related operations.
type ScheduleUsecaseInterface interface {
	Events(ctx context.Context, year, month int) ([]entities.Event, error)
	CreateEvent(ctx context.Context, input entities.EventInput) (*entities.Event, entities.NotifyStatus, error)
	UpdateEvent(ctx context.Context, eventID string, input entities.EventInput) (*entities.Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

// HolidayUsecaseInterface abstracts holiday-related operations.
type HolidayUsecaseInterface interface {
	Holidays(ctx context.Context) ([]entities.Holiday, error)
	AddHoliday(ctx context.Context, date, name string) (*entities.Holiday, error)
	RemoveHoliday(ctx context.Context, holidayID string) error
}
