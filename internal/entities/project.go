// Package entities contains core business entities.
package entities

import "time"

// Member is one named person inside a project.
type Member struct {
	ID   string
	Name string
}

// Project aggregates members under an id and display name. Custom projects
// carry ids prefixed "custom-"; local and Redmine projects use source ids.
type Project struct {
	ID      string
	Name    string
	Members []Member
}

// Clone returns a deep copy so callers cannot mutate stored state.
func (p Project) Clone() Project {
	members := make([]Member, len(p.Members))
	copy(members, p.Members)
	return Project{ID: p.ID, Name: p.Name, Members: members}
}

// CustomData is the persisted shape of user-added projects and the extra
// members layered onto non-custom projects.
type CustomData struct {
	Projects        []Project           `json:"projects"`
	MemberOverrides map[string][]Member `json:"memberOverrides"`
}

// CustomMemberCount sums override members and custom project members.
func (d CustomData) CustomMemberCount() int {
	total := 0
	for _, members := range d.MemberOverrides {
		total += len(members)
	}
	for _, p := range d.Projects {
		total += len(p.Members)
	}
	return total
}

// RedmineMeta reports the state of the remote project source.
type RedmineMeta struct {
	Enabled bool
	Host    string
	Error   string
}

// ProjectCounts summarizes the merged project view.
type ProjectCounts struct {
	Projects       int
	CustomProjects int
	CustomMembers  int
}

// ProjectMeta describes where the current project view came from.
type ProjectMeta struct {
	SourceType string
	FetchedAt  time.Time
	Redmine    RedmineMeta
	Counts     ProjectCounts
}

// Source type values for ProjectMeta.
const (
	SourceLocal   = "local"
	SourceRedmine = "redmine"
)
