package jsonfile

import (
	"time"

	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/entities"
)

// On-disk record shapes. Field names match the files the original
// deployment wrote, so an existing data directory keeps working.

type memberRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type projectRecord struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Members []memberRecord `json:"members"`
}

type templateRecord struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

type customDataRecord struct {
	Projects        []projectRecord           `json:"projects"`
	MemberOverrides map[string][]memberRecord `json:"memberOverrides"`
}

type eventRecord struct {
	ID                 string    `json:"id"`
	EventType          string    `json:"eventType,omitempty"`
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

type holidayRecord struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Name string `json:"name"`
}

func memberFromRecord(r memberRecord) entities.Member {
	return entities.Member{ID: r.ID, Name: r.Name}
}

func memberToRecord(m entities.Member) memberRecord {
	return memberRecord{ID: m.ID, Name: m.Name}
}

func projectFromRecord(r projectRecord) entities.Project {
	members := make([]entities.Member, 0, len(r.Members))
	for _, m := range r.Members {
		members = append(members, memberFromRecord(m))
	}
	return entities.Project{ID: r.ID, Name: r.Name, Members: members}
}

func projectToRecord(p entities.Project) projectRecord {
	members := make([]memberRecord, 0, len(p.Members))
	for _, m := range p.Members {
		members = append(members, memberToRecord(m))
	}
	return projectRecord{ID: p.ID, Name: p.Name, Members: members}
}

func eventFromRecord(r eventRecord) entities.Event {
	eventType := entities.EventType(r.EventType)
	if eventType != entities.TypeShared {
		eventType = entities.TypeMeeting
	}
	agendaSource := r.AgendaSource
	if agendaSource == "" {
		agendaSource = entities.AgendaSourceCustom
	}
	createdAt := r.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	return entities.Event{
		ID:                 r.ID,
		EventType:          eventType,
		ProjectID:          r.ProjectID,
		ProjectName:        r.ProjectName,
		FacilitatorID:      r.FacilitatorID,
		FacilitatorName:    r.FacilitatorName,
		FacilitatorMention: r.FacilitatorMention,
		Date:               r.Date,
		StartTime:          r.StartTime,
		Agenda:             r.Agenda,
		AgendaSource:       agendaSource,
		CreatedAt:          createdAt,
	}
}

func eventToRecord(e entities.Event) eventRecord {
	return eventRecord{
		ID:                 e.ID,
		EventType:          string(e.EventType),
		ProjectID:          e.ProjectID,
		ProjectName:        e.ProjectName,
		FacilitatorID:      e.FacilitatorID,
		FacilitatorName:    e.FacilitatorName,
		FacilitatorMention: e.FacilitatorMention,
		Date:               e.Date,
		StartTime:          e.StartTime,
		Agenda:             e.Agenda,
		AgendaSource:       e.AgendaSource,
		CreatedAt:          e.CreatedAt,
	}
}
