// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/api"
	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/entities"
)

// ToAPIMember maps entities.Member to transport model.
func ToAPIMember(m entities.Member) api.Member {
	return api.Member{ID: m.ID, Name: m.Name}
}

// ToAPIMemberList maps a slice of entities.Member to transport slice.
func ToAPIMemberList(members []entities.Member) []api.Member {
	res := make([]api.Member, 0, len(members))
	for _, m := range members {
		res = append(res, ToAPIMember(m))
	}
	return res
}

// ToAPIProject maps entities.Project to transport model.
func ToAPIProject(p entities.Project) api.Project {
	return api.Project{
		ID:      p.ID,
		Name:    p.Name,
		Members: ToAPIMemberList(p.Members),
	}
}

// ToAPIProjectList maps a slice of entities.Project to transport slice.
func ToAPIProjectList(projects []entities.Project) []api.Project {
	res := make([]api.Project, 0, len(projects))
	for _, p := range projects {
		res = append(res, ToAPIProject(p))
	}
	return res
}

// ToAPIProjectMeta maps the project view metadata to transport model. Host
// and error stay null while unset, matching the original wire format.
func ToAPIProjectMeta(meta entities.ProjectMeta) api.ProjectMeta {
	redmine := api.RedmineMeta{Enabled: meta.Redmine.Enabled}
	if meta.Redmine.Host != "" {
		host := meta.Redmine.Host
		redmine.Host = &host
	}
	if meta.Redmine.Error != "" {
		fetchErr := meta.Redmine.Error
		redmine.Error = &fetchErr
	}

	return api.ProjectMeta{
		SourceType: meta.SourceType,
		FetchedAt:  meta.FetchedAt,
		Redmine:    redmine,
		Counts: api.ProjectCounts{
			Projects:       meta.Counts.Projects,
			CustomProjects: meta.Counts.CustomProjects,
			CustomMembers:  meta.Counts.CustomMembers,
		},
	}
}

// ToAPITemplate maps entities.AgendaTemplate to transport model.
func ToAPITemplate(t entities.AgendaTemplate) api.AgendaTemplate {
	items := make([]string, len(t.Items))
	copy(items, t.Items)
	return api.AgendaTemplate{ID: t.ID, Name: t.Name, Items: items, Body: t.Body}
}

// ToAPITemplateList maps a slice of entities.AgendaTemplate to transport slice.
func ToAPITemplateList(templates []entities.AgendaTemplate) []api.AgendaTemplate {
	res := make([]api.AgendaTemplate, 0, len(templates))
	for _, t := range templates {
		res = append(res, ToAPITemplate(t))
	}
	return res
}

// ToAPIEvent maps entities.Event to transport model.
func ToAPIEvent(e entities.Event) api.Event {
	return api.Event{
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

// ToAPIEventList maps a slice of entities.Event to transport slice.
func ToAPIEventList(events []entities.Event) []api.Event {
	res := make([]api.Event, 0, len(events))
	for _, e := range events {
		res = append(res, ToAPIEvent(e))
	}
	return res
}

// FromAPIEventRequest builds the domain input from the transport body.
func FromAPIEventRequest(src api.EventRequest) entities.EventInput {
	return entities.EventInput{
		EventType:          src.EventType,
		ProjectID:          src.ProjectID,
		ProjectName:        src.ProjectName,
		FacilitatorID:      src.FacilitatorID,
		FacilitatorMention: src.FacilitatorMention,
		TemplateID:         src.TemplateID,
		CustomAgenda:       src.CustomAgenda,
		Date:               src.Date,
		StartTime:          src.StartTime,
	}
}

// ToAPIHoliday maps entities.Holiday to transport model.
func ToAPIHoliday(h entities.Holiday) api.Holiday {
	return api.Holiday{ID: h.ID, Date: h.Date, Name: h.Name}
}

// ToAPIHolidayList maps a slice of entities.Holiday to transport slice.
func ToAPIHolidayList(holidays []entities.Holiday) []api.Holiday {
	res := make([]api.Holiday, 0, len(holidays))
	for _, h := range holidays {
		res = append(res, ToAPIHoliday(h))
	}
	return res
}
