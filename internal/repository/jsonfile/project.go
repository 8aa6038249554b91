package jsonfile

import (
	"context"
	"os"
	"strings"

	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/entities"
)

func (s *Store) loadLocalProjects() error {
	var records []projectRecord
	if err := s.readJSON(localProjectsFile, &records); err != nil {
		return err
	}

	projects := make([]entities.Project, 0, len(records))
	for _, r := range records {
		projects = append(projects, projectFromRecord(r))
	}
	s.localProjects = projects
	return nil
}

// loadCustomData tolerates hand-edited files: nameless projects and members
// are dropped, missing ids are regenerated.
func (s *Store) loadCustomData() error {
	var record customDataRecord
	if err := s.readJSON(customDataFile, &record); err != nil {
		if os.IsNotExist(err) {
			s.custom = entities.CustomData{MemberOverrides: map[string][]entities.Member{}}
			return nil
		}
		return err
	}

	projects := make([]entities.Project, 0, len(record.Projects))
	for _, r := range record.Projects {
		if r.Name == "" {
			continue
		}
		if r.ID == "" {
			r.ID = newCustomProjectID()
		}
		project := entities.Project{ID: r.ID, Name: r.Name, Members: make([]entities.Member, 0, len(r.Members))}
		for _, m := range r.Members {
			if m.Name == "" {
				continue
			}
			if m.ID == "" {
				m.ID = newCustomMemberID(r.ID)
			}
			project.Members = append(project.Members, memberFromRecord(m))
		}
		projects = append(projects, project)
	}

	overrides := make(map[string][]entities.Member, len(record.MemberOverrides))
	for projectID, members := range record.MemberOverrides {
		normalized := make([]entities.Member, 0, len(members))
		for _, m := range members {
			if m.Name == "" {
				continue
			}
			if m.ID == "" {
				m.ID = newCustomMemberID(projectID)
			}
			normalized = append(normalized, memberFromRecord(m))
		}
		overrides[projectID] = normalized
	}

	s.custom = entities.CustomData{Projects: projects, MemberOverrides: overrides}
	return nil
}

func (s *Store) persistCustomDataLocked() error {
	record := customDataRecord{
		Projects:        make([]projectRecord, 0, len(s.custom.Projects)),
		MemberOverrides: make(map[string][]memberRecord, len(s.custom.MemberOverrides)),
	}
	for _, p := range s.custom.Projects {
		record.Projects = append(record.Projects, projectToRecord(p))
	}
	for projectID, members := range s.custom.MemberOverrides {
		converted := make([]memberRecord, 0, len(members))
		for _, m := range members {
			converted = append(converted, memberToRecord(m))
		}
		record.MemberOverrides[projectID] = converted
	}
	return s.writeJSON(customDataFile, record)
}

// LocalProjects returns the bundled project list.
func (s *Store) LocalProjects(_ context.Context) ([]entities.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects := make([]entities.Project, 0, len(s.localProjects))
	for _, p := range s.localProjects {
		projects = append(projects, p.Clone())
	}
	return projects, nil
}

// CustomData returns a deep copy of the user-added projects and overrides.
func (s *Store) CustomData(_ context.Context) (entities.CustomData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cloneCustomLocked(), nil
}

func (s *Store) cloneCustomLocked() entities.CustomData {
	data := entities.CustomData{
		Projects:        make([]entities.Project, 0, len(s.custom.Projects)),
		MemberOverrides: make(map[string][]entities.Member, len(s.custom.MemberOverrides)),
	}
	for _, p := range s.custom.Projects {
		data.Projects = append(data.Projects, p.Clone())
	}
	for projectID, members := range s.custom.MemberOverrides {
		cloned := make([]entities.Member, len(members))
		copy(cloned, members)
		data.MemberOverrides[projectID] = cloned
	}
	return data
}

// AddCustomProject stores a user-created project with generated ids.
func (s *Store) AddCustomProject(_ context.Context, name string, memberNames []string) (*entities.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projectID := newCustomProjectID()
	project := entities.Project{ID: projectID, Name: name, Members: make([]entities.Member, 0, len(memberNames))}
	for _, memberName := range memberNames {
		project.Members = append(project.Members, entities.Member{ID: newCustomMemberID(projectID), Name: memberName})
	}

	s.custom.Projects = append(s.custom.Projects, project)
	if err := s.persistCustomDataLocked(); err != nil {
		s.custom.Projects = s.custom.Projects[:len(s.custom.Projects)-1]
		return nil, err
	}

	s.log.Infow("custom project created", "project_id", projectID, "members", len(project.Members))
	cloned := project.Clone()
	return &cloned, nil
}

// AddCustomMembers appends members to a custom project, or to the override
// list of a non-custom project. Names already present (case-insensitive)
// are skipped; the returned slice holds only what was actually added.
func (s *Store) AddCustomMembers(_ context.Context, projectID string, memberNames []string) ([]entities.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.custom.Projects {
		if s.custom.Projects[i].ID != projectID {
			continue
		}
		added := appendNewMembers(&s.custom.Projects[i].Members, projectID, memberNames)
		if len(added) == 0 {
			return added, nil
		}
		if err := s.persistCustomDataLocked(); err != nil {
			return nil, err
		}
		s.log.Infow("custom members added", "project_id", projectID, "added", len(added))
		return added, nil
	}

	overrides := s.custom.MemberOverrides[projectID]
	added := appendNewMembers(&overrides, projectID, memberNames)
	s.custom.MemberOverrides[projectID] = overrides
	if len(added) == 0 {
		return added, nil
	}
	if err := s.persistCustomDataLocked(); err != nil {
		return nil, err
	}
	s.log.Infow("member overrides added", "project_id", projectID, "added", len(added))
	return added, nil
}

func appendNewMembers(members *[]entities.Member, projectID string, memberNames []string) []entities.Member {
	existing := make(map[string]struct{}, len(*members))
	for _, m := range *members {
		existing[strings.ToLower(m.Name)] = struct{}{}
	}

	added := make([]entities.Member, 0, len(memberNames))
	for _, name := range memberNames {
		key := strings.ToLower(name)
		if _, ok := existing[key]; ok {
			continue
		}
		member := entities.Member{ID: newCustomMemberID(projectID), Name: name}
		*members = append(*members, member)
		existing[key] = struct{}{}
		added = append(added, member)
	}
	return added
}
