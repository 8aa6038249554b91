// Package domain contains application Usecases orchestrating domain logic by project.
package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/entities"
)

// projectView is the merged, customization-layered project list with the
// metadata describing where it came from.
type projectView struct {
	projects []entities.Project
	byID     map[string]entities.Project
	meta     entities.ProjectMeta
}

// Projects returns the merged project view: remote or local base projects
// with member overrides layered in and custom projects appended.
func (u *Usecase) Projects(ctx context.Context) ([]entities.Project, *entities.ProjectMeta, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	view, err := u.projectView(ctx)
	if err != nil {
		return nil, nil, err
	}
	return view.projects, &view.meta, nil
}

// AddProject creates a user-defined project with the given members.
func (u *Usecase) AddProject(ctx context.Context, name string, memberNames []string) (*entities.Project, *entities.ProjectMeta, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	name = strings.TrimSpace(name)
	names := sanitizeMemberNames(memberNames)
	if name == "" {
		return nil, nil, entities.ErrProjectNameRequired
	}
	if len(names) == 0 {
		return nil, nil, entities.ErrMembersRequired
	}

	project, err := u.repo.AddCustomProject(ctx, name, names)
	if err != nil {
		return nil, nil, err
	}

	view, err := u.projectView(ctx)
	if err != nil {
		return nil, nil, err
	}
	return project, &view.meta, nil
}

// AddMembers layers extra members onto an existing project: appended
// directly for custom projects, recorded as overrides for everything else.
// Names that already exist (case-insensitive) are skipped; when nothing
// remains the call fails with ErrNoNewMembers.
func (u *Usecase) AddMembers(ctx context.Context, projectID string, memberNames []string) (*entities.Project, []entities.Member, *entities.ProjectMeta, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, nil, nil, fmt.Errorf("%w: project id is required", entities.ErrInvalidArgument)
	}
	names := sanitizeMemberNames(memberNames)
	if len(names) == 0 {
		return nil, nil, nil, entities.ErrMembersRequired
	}

	view, err := u.projectView(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	if _, ok := view.byID[projectID]; !ok {
		return nil, nil, nil, entities.ErrProjectNotFound
	}

	added, err := u.repo.AddCustomMembers(ctx, projectID, names)
	if err != nil {
		return nil, nil, nil, err
	}
	if len(added) == 0 {
		return nil, nil, nil, entities.ErrNoNewMembers
	}

	updated, err := u.projectView(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	project := updated.byID[projectID]
	return &project, added, &updated.meta, nil
}

func (u *Usecase) projectView(ctx context.Context) (*projectView, error) {
	base, meta, err := u.baseProjects(ctx)
	if err != nil {
		return nil, err
	}

	custom, err := u.repo.CustomData(ctx)
	if err != nil {
		return nil, err
	}

	combined := make([]entities.Project, 0, len(base)+len(custom.Projects))
	for _, p := range base {
		merged := p.Clone()
		merged.Members = mergeMembers(merged.Members, custom.MemberOverrides[p.ID])
		combined = append(combined, merged)
	}
	combined = append(combined, custom.Projects...)

	byID := make(map[string]entities.Project, len(combined))
	for _, p := range combined {
		byID[p.ID] = p
	}

	meta.Counts = entities.ProjectCounts{
		Projects:       len(combined),
		CustomProjects: len(custom.Projects),
		CustomMembers:  custom.CustomMemberCount(),
	}
	return &projectView{projects: combined, byID: byID, meta: meta}, nil
}

// baseProjects resolves the base list: the remote source when configured,
// with a silent downgrade to the bundled local list on any fetch failure.
func (u *Usecase) baseProjects(ctx context.Context) ([]entities.Project, entities.ProjectMeta, error) {
	meta := entities.ProjectMeta{
		SourceType: entities.SourceLocal,
		FetchedAt:  time.Now().UTC(),
	}
	if u.source != nil && u.source.Enabled() {
		meta.Redmine = entities.RedmineMeta{Enabled: true, Host: u.source.Host()}
	}

	if !meta.Redmine.Enabled {
		local, err := u.repo.LocalProjects(ctx)
		return local, meta, err
	}

	projects, err := u.source.FetchProjects(ctx)
	if err != nil {
		u.log.Errorw("redmine fetch failed, using local projects", "error", err)
		meta.Redmine.Error = err.Error()
		local, localErr := u.repo.LocalProjects(ctx)
		return local, meta, localErr
	}

	meta.SourceType = entities.SourceRedmine
	return projects, meta, nil
}

// mergeMembers is id-keyed and first-writer-wins: base members keep their
// entry, overrides only contribute ids not present yet.
func mergeMembers(primary, extra []entities.Member) []entities.Member {
	merged := make([]entities.Member, 0, len(primary)+len(extra))
	seen := make(map[string]struct{}, len(primary))
	for _, m := range primary {
		if _, ok := seen[m.ID]; ok {
			continue
		}
		seen[m.ID] = struct{}{}
		merged = append(merged, m)
	}
	for _, m := range extra {
		if _, ok := seen[m.ID]; ok {
			continue
		}
		seen[m.ID] = struct{}{}
		merged = append(merged, m)
	}
	return merged
}
