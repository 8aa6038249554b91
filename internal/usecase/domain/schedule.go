// Package domain contains application Usecases orchestrating domain logic by schedule.
package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/entities"
)

// Events lists the stored events for the given year and month.
func (u *Usecase) Events(ctx context.Context, year, month int) ([]entities.Event, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !isValidYear(year) || !isValidMonth(month) {
		return nil, entities.ErrInvalidYearMonth
	}
	return u.repo.Events(ctx, year, month)
}

// CreateEvent validates and stores a new event, then notifies the webhook
// sink. The notification outcome never fails the create; it is returned as
// a status alongside the event.
func (u *Usecase) CreateEvent(ctx context.Context, input entities.EventInput) (*entities.Event, entities.NotifyStatus, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	event, err := u.resolveEvent(ctx, input)
	if err != nil {
		return nil, "", err
	}

	created, err := u.repo.InsertEvent(ctx, *event)
	if err != nil {
		return nil, "", err
	}

	status := entities.NotifyNotConfigured
	if u.notifier != nil {
		status = u.notifier.Notify(ctx, *created)
	}
	return created, status, nil
}

// UpdateEvent revalidates every field and replaces the stored event,
// keeping its id and creation timestamp. Updates do not re-notify.
func (u *Usecase) UpdateEvent(ctx context.Context, eventID string, input entities.EventInput) (*entities.Event, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", entities.ErrInvalidArgument)
	}

	event, err := u.resolveEvent(ctx, input)
	if err != nil {
		return nil, err
	}
	event.ID = eventID
	return u.repo.UpdateEvent(ctx, *event)
}

// DeleteEvent removes the stored event.
func (u *Usecase) DeleteEvent(ctx context.Context, eventID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return fmt.Errorf("%w: event id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteEvent(ctx, eventID)
}

// resolveEvent turns raw input into a validated event. Meetings need a
// known project and a facilitator from that project; shared events need a
// title (free text or a resolvable project) and no facilitator.
func (u *Usecase) resolveEvent(ctx context.Context, input entities.EventInput) (*entities.Event, error) {
	eventType := entities.EventType(strings.TrimSpace(input.EventType))
	if eventType == "" {
		eventType = entities.TypeMeeting
	}
	if eventType != entities.TypeMeeting && eventType != entities.TypeShared {
		return nil, entities.ErrInvalidEventType
	}

	event := entities.Event{
		EventType:          eventType,
		FacilitatorMention: strings.TrimSpace(input.FacilitatorMention),
	}

	projectID := strings.TrimSpace(input.ProjectID)
	switch eventType {
	case entities.TypeMeeting:
		view, err := u.projectView(ctx)
		if err != nil {
			return nil, err
		}
		project, ok := view.byID[projectID]
		if !ok {
			return nil, entities.ErrUnknownProject
		}

		facilitatorID := strings.TrimSpace(input.FacilitatorID)
		var facilitator *entities.Member
		for i := range project.Members {
			if project.Members[i].ID == facilitatorID {
				facilitator = &project.Members[i]
				break
			}
		}
		if facilitator == nil {
			return nil, entities.ErrFacilitatorNotMember
		}

		event.ProjectID = project.ID
		event.ProjectName = project.Name
		event.FacilitatorID = facilitator.ID
		event.FacilitatorName = facilitator.Name

	case entities.TypeShared:
		title := strings.TrimSpace(input.ProjectName)
		if projectID != "" {
			view, err := u.projectView(ctx)
			if err != nil {
				return nil, err
			}
			if project, ok := view.byID[projectID]; ok {
				event.ProjectID = project.ID
				if title == "" {
					title = project.Name
				}
			}
		}
		if title == "" {
			return nil, entities.ErrEventTitleRequired
		}
		event.ProjectName = title
	}

	date := strings.TrimSpace(input.Date)
	if !isValidDate(date) {
		return nil, entities.ErrInvalidDate
	}
	startTime := strings.TrimSpace(input.StartTime)
	if !isValidTime(startTime) {
		return nil, entities.ErrInvalidTime
	}
	event.Date = date
	event.StartTime = startTime

	if agenda := strings.TrimSpace(input.CustomAgenda); agenda != "" {
		event.Agenda = agenda
		event.AgendaSource = entities.AgendaSourceCustom
		return &event, nil
	}

	templateID := strings.TrimSpace(input.TemplateID)
	if templateID == "" {
		return nil, entities.ErrAgendaRequired
	}
	templates, err := u.repo.Templates(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range templates {
		if t.ID == templateID {
			event.Agenda = t.Body
			event.AgendaSource = t.Name
			return &event, nil
		}
	}
	return nil, entities.ErrAgendaRequired
}
