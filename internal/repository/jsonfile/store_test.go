package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/k-z-w-e-b-3-1-0/MtgCrd/config"
	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const projectsFixture = `[
  {
    "id": "p1",
    "name": "基盤",
    "members": [
      {"id": "m1", "name": "佐藤"},
      {"id": "m2", "name": "鈴木"}
    ]
  },
  {
    "id": "p2",
    "name": "分析",
    "members": [
      {"id": "m3", "name": "高橋"}
    ]
  }
]`

const templatesFixture = `[
  {
    "id": "t1",
    "name": "週次定例",
    "items": ["進捗確認", "今週の予定"]
  }
]`

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	writeFixture(t, dir, localProjectsFile, projectsFixture)
	writeFixture(t, dir, templatesFile, templatesFixture)
	return openStore(t, dir)
}

func openStore(t *testing.T, dir string) *Store {
	t.Helper()
	cfg := &config.Config{Storage: config.StorageConfig{DataDir: dir}}
	store := New(context.Background(), zap.NewNop().Sugar(), cfg)
	require.NoError(t, store.OnStart(context.Background()))
	return store
}

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestStore_OnStartRequiresBundledFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{Storage: config.StorageConfig{DataDir: dir}}
	store := New(context.Background(), zap.NewNop().Sugar(), cfg)
	require.Error(t, store.OnStart(context.Background()))

	writeFixture(t, dir, localProjectsFile, projectsFixture)
	store = New(context.Background(), zap.NewNop().Sugar(), cfg)
	require.Error(t, store.OnStart(context.Background()))
}

func TestStore_LoadsProjectsAndTemplates(t *testing.T) {
	store := newTestStore(t)

	projects, err := store.LocalProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)
	require.Equal(t, "基盤", projects[0].Name)

	templates, err := store.Templates(context.Background())
	require.NoError(t, err)
	require.Len(t, templates, 1)
	require.Equal(t, "- 進捗確認\n- 今週の予定", templates[0].Body)
}

func TestStore_AddCustomProjectPersists(t *testing.T) {
	store := newTestStore(t)

	project, err := store.AddCustomProject(context.Background(), "読書会", []string{"田中", "伊藤"})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(project.ID, "custom-"))
	require.Len(t, project.Members, 2)
	for _, m := range project.Members {
		require.True(t, strings.HasPrefix(m.ID, project.ID+"-member-"))
	}

	reloaded := openStore(t, store.cfg.DataDir)
	data, err := reloaded.CustomData(context.Background())
	require.NoError(t, err)
	require.Len(t, data.Projects, 1)
	require.Equal(t, project.ID, data.Projects[0].ID)
	require.Equal(t, "読書会", data.Projects[0].Name)
}

func TestStore_AddCustomMembersToOverrides(t *testing.T) {
	store := newTestStore(t)

	added, err := store.AddCustomMembers(context.Background(), "p1", []string{"伊藤", "佐藤新"})
	require.NoError(t, err)
	require.Len(t, added, 2)

	data, err := store.CustomData(context.Background())
	require.NoError(t, err)
	require.Len(t, data.MemberOverrides["p1"], 2)

	// names already present are skipped case-insensitively
	added, err = store.AddCustomMembers(context.Background(), "p1", []string{"伊藤", "ITO"})
	require.NoError(t, err)
	require.Len(t, added, 1)
	require.Equal(t, "ITO", added[0].Name)
}

func TestStore_AddCustomMembersToCustomProject(t *testing.T) {
	store := newTestStore(t)

	project, err := store.AddCustomProject(context.Background(), "読書会", []string{"田中"})
	require.NoError(t, err)

	added, err := store.AddCustomMembers(context.Background(), project.ID, []string{"田中", "伊藤"})
	require.NoError(t, err)
	require.Len(t, added, 1)
	require.Equal(t, "伊藤", added[0].Name)

	data, err := store.CustomData(context.Background())
	require.NoError(t, err)
	require.Len(t, data.Projects[0].Members, 2)
	require.Empty(t, data.MemberOverrides[project.ID])
}

func TestStore_InsertEventSortsAndFilters(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, ev := range []entities.Event{
		{EventType: entities.TypeMeeting, ProjectID: "p2", ProjectName: "分析", Date: "2026-09-15", StartTime: "14:00", Agenda: "x", AgendaSource: "custom"},
		{EventType: entities.TypeMeeting, ProjectID: "p1", ProjectName: "基盤", Date: "2026-09-15", StartTime: "09:30", Agenda: "x", AgendaSource: "custom"},
		{EventType: entities.TypeShared, ProjectName: "全体朝会", Date: "2026-10-01", StartTime: "10:00", Agenda: "x", AgendaSource: "custom"},
	} {
		_, err := store.InsertEvent(ctx, ev)
		require.NoError(t, err)
	}

	events, err := store.Events(ctx, 2026, 9)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, "09:30", events[0].StartTime)
	require.Equal(t, "14:00", events[1].StartTime)

	events, err = store.Events(ctx, 2026, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "全体朝会", events[0].ProjectName)

	events, err = store.Events(ctx, 2027, 9)
	require.NoError(t, err)
	require.Empty(t, events)
}

func TestStore_EventsSurviveReload(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.InsertEvent(ctx, entities.Event{
		EventType: entities.TypeMeeting, ProjectID: "p1", ProjectName: "基盤",
		FacilitatorID: "m1", FacilitatorName: "佐藤",
		Date: "2026-09-15", StartTime: "09:30", Agenda: "進捗", AgendaSource: "custom",
	})
	require.NoError(t, err)
	require.False(t, created.CreatedAt.IsZero())

	reloaded := openStore(t, store.cfg.DataDir)
	events, err := reloaded.Events(ctx, 2026, 9)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, created.ID, events[0].ID)
	require.Equal(t, "佐藤", events[0].FacilitatorName)
	require.Equal(t, created.CreatedAt.Unix(), events[0].CreatedAt.Unix())
}

func TestStore_UpdateEventKeepsCreatedAt(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.InsertEvent(ctx, entities.Event{
		EventType: entities.TypeMeeting, ProjectID: "p1", ProjectName: "基盤",
		Date: "2026-09-15", StartTime: "09:30", Agenda: "進捗", AgendaSource: "custom",
	})
	require.NoError(t, err)

	updated, err := store.UpdateEvent(ctx, entities.Event{
		ID: created.ID, EventType: entities.TypeMeeting, ProjectID: "p1", ProjectName: "基盤",
		Date: "2026-09-16", StartTime: "13:00", Agenda: "更新後", AgendaSource: "custom",
	})
	require.NoError(t, err)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)
	require.Equal(t, "2026-09-16", updated.Date)

	_, err = store.UpdateEvent(ctx, entities.Event{ID: "missing"})
	require.ErrorIs(t, err, entities.ErrEventNotFound)
}

func TestStore_DeleteEvent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.InsertEvent(ctx, entities.Event{
		EventType: entities.TypeMeeting, ProjectID: "p1", ProjectName: "基盤",
		Date: "2026-09-15", StartTime: "09:30", Agenda: "進捗", AgendaSource: "custom",
	})
	require.NoError(t, err)

	require.NoError(t, store.DeleteEvent(ctx, created.ID))
	require.ErrorIs(t, store.DeleteEvent(ctx, created.ID), entities.ErrEventNotFound)

	events, err := store.Events(ctx, 2026, 9)
	require.NoError(t, err)
	require.Empty(t, events)
}

func TestStore_Holidays(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	second, err := store.AddHoliday(ctx, entities.Holiday{Date: "2026-09-22", Name: "秋分の日"})
	require.NoError(t, err)
	first, err := store.AddHoliday(ctx, entities.Holiday{Date: "2026-09-21", Name: "敬老の日"})
	require.NoError(t, err)

	holidays, err := store.Holidays(ctx)
	require.NoError(t, err)
	require.Len(t, holidays, 2)
	require.Equal(t, first.ID, holidays[0].ID)
	require.Equal(t, second.ID, holidays[1].ID)

	reloaded := openStore(t, store.cfg.DataDir)
	holidays, err = reloaded.Holidays(ctx)
	require.NoError(t, err)
	require.Len(t, holidays, 2)

	require.NoError(t, store.RemoveHoliday(ctx, first.ID))
	require.ErrorIs(t, store.RemoveHoliday(ctx, first.ID), entities.ErrHolidayNotFound)
}

func TestStore_WritesPrettyPrintedFiles(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.InsertEvent(ctx, entities.Event{
		EventType: entities.TypeMeeting, ProjectID: "p1", ProjectName: "基盤",
		Date: "2026-09-15", StartTime: "09:30", Agenda: "進捗", AgendaSource: "custom",
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(store.cfg.DataDir, scheduleFile))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(raw), "[\n  {"))
	require.True(t, strings.HasSuffix(string(raw), "\n"))

	_, err = os.Stat(filepath.Join(store.cfg.DataDir, scheduleFile+".tmp"))
	require.True(t, os.IsNotExist(err))
}

func TestStore_LoadCustomDataNormalizes(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, localProjectsFile, projectsFixture)
	writeFixture(t, dir, templatesFile, templatesFixture)
	writeFixture(t, dir, customDataFile, `{
  "projects": [
    {"id": "", "name": "手編集", "members": [{"id": "", "name": "田中"}, {"id": "x", "name": ""}]},
    {"id": "custom-zzz", "name": "", "members": []}
  ],
  "memberOverrides": {
    "p1": [{"id": "", "name": "伊藤"}]
  }
}`)

	store := openStore(t, dir)
	data, err := store.CustomData(context.Background())
	require.NoError(t, err)

	require.Len(t, data.Projects, 1)
	require.NotEmpty(t, data.Projects[0].ID)
	require.Len(t, data.Projects[0].Members, 1)
	require.Equal(t, "田中", data.Projects[0].Members[0].Name)

	require.Len(t, data.MemberOverrides["p1"], 1)
	require.NotEmpty(t, data.MemberOverrides["p1"][0].ID)
}

func TestStore_LegacyEventRecordDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, localProjectsFile, projectsFixture)
	writeFixture(t, dir, templatesFile, templatesFixture)
	writeFixture(t, dir, scheduleFile, `[
  {
    "id": "evt-legacy",
    "projectId": "p1",
    "projectName": "基盤",
    "facilitatorId": "m1",
    "facilitatorName": "佐藤",
    "date": "2026-09-15",
    "startTime": "09:30",
    "agenda": "進捗",
    "agendaSource": ""
  }
]`)

	store := openStore(t, dir)
	events, err := store.Events(context.Background(), 2026, 9)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, entities.TypeMeeting, events[0].EventType)
	require.Equal(t, entities.AgendaSourceCustom, events[0].AgendaSource)
	require.False(t, events[0].CreatedAt.IsZero())
}
