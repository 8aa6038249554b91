// Package api defines the transport-level request and response types of the
// HTTP JSON surface. Field names match what the browser UI consumes.
package api

import "time"

// Member is one project member.
type Member struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Project is a project with its merged member list.
type Project struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Members []Member `json:"members"`
}

// RedmineMeta reports the remote source state inside ProjectMeta.
type RedmineMeta struct {
	Enabled bool    `json:"enabled"`
	Host    *string `json:"host"`
	Error   *string `json:"error"`
}

// ProjectCounts summarizes the merged project view.
type ProjectCounts struct {
	Projects       int `json:"projects"`
	CustomProjects int `json:"customProjects"`
	CustomMembers  int `json:"customMembers"`
}

// ProjectMeta describes the origin of the returned project list.
type ProjectMeta struct {
	SourceType string        `json:"sourceType"`
	FetchedAt  time.Time     `json:"fetchedAt"`
	Redmine    RedmineMeta   `json:"redmine"`
	Counts     ProjectCounts `json:"counts"`
}

// AgendaTemplate is one catalog entry with its precomputed body.
type AgendaTemplate struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Items []string `json:"items"`
	Body  string   `json:"body"`
}

// Event is one scheduled calendar entry.
type Event struct {
	ID                 string    `json:"id"`
	EventType          string    `json:"eventType"`
	ProjectID          string    `json:"projectId"`
	ProjectName        string    `json:"projectName"`
	FacilitatorID      string    `json:"facilitatorId"`
	FacilitatorName    string    `json:"facilitatorName"`
	FacilitatorMention string    `json:"facilitatorMention,omitempty"`
	Date               string    `json:"date"`
	StartTime          string    `json:"startTime"`
	Agenda             string    `json:"agenda"`
	AgendaSource       string    `json:"agendaSource"`
	CreatedAt          time.Time `json:"createdAt"`
}

// Holiday is one calendar annotation.
type Holiday struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Name string `json:"name"`
}

// CreateProjectRequest is the body of POST /api/projects/custom.
type CreateProjectRequest struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

// AddMembersRequest is the body of POST /api/projects/:id/custom-members.
type AddMembersRequest struct {
	Members []string `json:"members"`
}

// EventRequest is the body of POST /api/schedule and PUT /api/schedule/:id.
type EventRequest struct {
	EventType          string `json:"eventType"`
	ProjectID          string `json:"projectId"`
	ProjectName        string `json:"projectName"`
	FacilitatorID      string `json:"facilitatorId"`
	FacilitatorMention string `json:"facilitatorMention"`
	TemplateID         string `json:"templateId"`
	CustomAgenda       string `json:"customAgenda"`
	Date               string `json:"date"`
	StartTime          string `json:"startTime"`
}

// HolidayRequest is the body of POST /api/holidays.
type HolidayRequest struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// ErrorResponse is the envelope of every client or server error.
type ErrorResponse struct {
	Error string `json:"error"`
}
