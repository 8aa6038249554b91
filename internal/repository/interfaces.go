// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// ProjectInterface exposes the bundled project list and user-added data.
type ProjectInterface interface {
	LocalProjects(ctx context.Context) ([]entities.Project, error)
	CustomData(ctx context.Context) (entities.CustomData, error)
	AddCustomProject(ctx context.Context, name string, memberNames []string) (*entities.Project, error)
	AddCustomMembers(ctx context.Context, projectID string, memberNames []string) ([]entities.Member, error)
}

// TemplateInterface exposes the agenda template catalog.
type TemplateInterface interface {
	Templates(ctx context.Context) ([]entities.AgendaTemplate, error)
}

// ScheduleInterface exposes the persisted event list.
type ScheduleInterface interface {
	Events(ctx context.Context, year, month int) ([]entities.Event, error)
	InsertEvent(ctx context.Context, event entities.Event) (*entities.Event, error)
	UpdateEvent(ctx context.Context, event entities.Event) (*entities.Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

// HolidayInterface exposes the persisted holiday list.
type HolidayInterface interface {
	Holidays(ctx context.Context) ([]entities.Holiday, error)
	AddHoliday(ctx context.Context, holiday entities.Holiday) (*entities.Holiday, error)
	RemoveHoliday(ctx context.Context, holidayID string) error
}
