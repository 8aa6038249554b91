// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrProjectNameRequired signals a missing custom project name.
	ErrProjectNameRequired = errors.New("project name required")
	// ErrMembersRequired signals an empty member name list.
	ErrMembersRequired = errors.New("members required")
	// ErrProjectNotFound signals a project id that resolves to nothing.
	ErrProjectNotFound = errors.New("project not found")
	// ErrUnknownProject signals an event referencing a project id that resolves to nothing.
	ErrUnknownProject = errors.New("unknown project")
	// ErrNoNewMembers signals that every submitted member name already exists.
	ErrNoNewMembers = errors.New("no new members")
	// ErrFacilitatorNotMember signals a facilitator outside the project's member list.
	ErrFacilitatorNotMember = errors.New("facilitator not a project member")
	// ErrInvalidDate signals a date not matching YYYY-MM-DD or not on the calendar.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidTime signals a start time not matching HH:MM.
	ErrInvalidTime = errors.New("invalid time")
	// ErrInvalidEventType signals an event type outside meeting/shared.
	ErrInvalidEventType = errors.New("invalid event type")
	// ErrEventTitleRequired signals a shared event without a title.
	ErrEventTitleRequired = errors.New("event title required")
	// ErrAgendaRequired signals neither a custom agenda nor a resolvable template.
	ErrAgendaRequired = errors.New("agenda required")
	// ErrInvalidYearMonth signals an out-of-range schedule query.
	ErrInvalidYearMonth = errors.New("invalid year or month")
	// ErrEventNotFound signals a missing schedule event.
	ErrEventNotFound = errors.New("event not found")
	// ErrHolidayNotFound signals a missing holiday entry.
	ErrHolidayNotFound = errors.New("holiday not found")
	// ErrHolidayFieldsRequired signals a holiday without date or name.
	ErrHolidayFieldsRequired = errors.New("holiday date and name required")
)
