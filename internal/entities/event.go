// Package entities contains core business entities.
package entities

import "time"

// EventType distinguishes facilitated meetings from shared calendar events.
type EventType string

const (
	// TypeMeeting marks a project meeting with a facilitator.
	TypeMeeting EventType = "meeting"
	// TypeShared marks a shared event without a facilitator requirement.
	TypeShared EventType = "shared"
)

// AgendaSourceCustom marks an agenda typed in by the user rather than
// resolved from a template.
const AgendaSourceCustom = "custom"

// Event is one scheduled calendar entry. The schedule is kept sorted by
// (Date, StartTime) ascending, ties broken by locale-aware project name.
type Event struct {
	ID                 string
	EventType          EventType
	ProjectID          string
	ProjectName        string
	FacilitatorID      string
	FacilitatorName    string
	FacilitatorMention string
	Date               string // YYYY-MM-DD
	StartTime          string // HH:MM
	Agenda             string
	AgendaSource       string
	CreatedAt          time.Time
}

// EventInput carries the raw fields of a create/update request before
// validation resolves them into an Event.
type EventInput struct {
	EventType          string
	ProjectID          string
	ProjectName        string
	FacilitatorID      string
	FacilitatorMention string
	TemplateID         string
	CustomAgenda       string
	Date               string
	StartTime          string
}

// NotifyStatus is the outcome of the webhook notification attempt.
type NotifyStatus string

const (
	// NotifySent means the webhook accepted the message.
	NotifySent NotifyStatus = "sent"
	// NotifyFailed means the webhook answered with a non-2xx status.
	NotifyFailed NotifyStatus = "failed"
	// NotifyError means the request itself failed.
	NotifyError NotifyStatus = "error"
	// NotifyNotConfigured means no webhook URL is set.
	NotifyNotConfigured NotifyStatus = "not-configured"
)
