// Package jsonfile implements the repository against whole-file JSON storage.
//
// Each collection lives in one pretty-printed JSON file under the data
// directory. Every mutation rewrites the owning file wholesale; there are no
// partial updates. Files are replaced atomically (temp file + rename) so a
// crash mid-write never leaves a torn file behind.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/k-z-w-e-b-3-1-0/MtgCrd/config"
	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/entities"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	localProjectsFile = "projects.json"
	templatesFile     = "agenda_templates.json"
	scheduleFile      = "schedule.json"
	customDataFile    = "custom_data.json"
	holidaysFile      = "holidays.json"
)

// Store keeps every collection in memory and mirrors mutations to disk.
type Store struct {
	baseCtx context.Context
	log     *zap.SugaredLogger
	cfg     config.StorageConfig

	// mu guards the collections below and the collator; fiber serves
	// requests from multiple goroutines even though each mutation is
	// itself a single read-modify-persist step.
	mu       sync.Mutex
	collator *collate.Collator

	localProjects []entities.Project
	templates     []entities.AgendaTemplate
	custom        entities.CustomData
	schedule      []entities.Event
	holidays      []entities.Holiday
}

// New creates a jsonfile repository instance.
func New(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config) *Store {
	return &Store{
		baseCtx: ctx,
		log:     log.Named("repo.jsonfile"),
		cfg:     cfg.Storage,
	}
}

// OnStart loads every collection from the data directory. The bundled
// project list and template catalog are required; the mutable files load as
// empty when missing.
func (s *Store) OnStart(_ context.Context) error {
	s.collator = collate.New(language.Japanese)

	if err := s.loadLocalProjects(); err != nil {
		return fmt.Errorf("load local projects: %w", err)
	}
	if err := s.loadTemplates(); err != nil {
		return fmt.Errorf("load agenda templates: %w", err)
	}
	if err := s.loadCustomData(); err != nil {
		return fmt.Errorf("load custom data: %w", err)
	}
	if err := s.loadSchedule(); err != nil {
		return fmt.Errorf("load schedule: %w", err)
	}
	if err := s.loadHolidays(); err != nil {
		return fmt.Errorf("load holidays: %w", err)
	}

	s.mu.Lock()
	s.sortScheduleLocked()
	s.sortHolidaysLocked()
	s.mu.Unlock()

	s.log.Infow("jsonfile store ready",
		"data_dir", s.cfg.DataDir,
		"projects", len(s.localProjects),
		"templates", len(s.templates),
		"events", len(s.schedule),
		"holidays", len(s.holidays),
	)
	return nil
}

// OnStop is a no-op; every mutation already persisted before returning.
func (s *Store) OnStop(_ context.Context) error { return nil }

func (s *Store) dataPath(name string) string {
	return filepath.Join(s.cfg.DataDir, name)
}

// readJSON decodes the named data file into v. Callers decide whether a
// missing file is an error.
func (s *Store) readJSON(name string, v any) error {
	raw, err := os.ReadFile(s.dataPath(name))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// writeJSON rewrites the named file wholesale: two-space indented, newline
// terminated, written to a temp file and renamed over the target.
func (s *Store) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	data = append(data, '\n')

	target := s.dataPath(name)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}
