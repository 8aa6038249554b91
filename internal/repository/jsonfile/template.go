package jsonfile

import (
	"context"
	"strings"

	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/entities"
)

// loadTemplates reads the catalog and precomputes each template body by
// joining items into a bulleted block.
func (s *Store) loadTemplates() error {
	var records []templateRecord
	if err := s.readJSON(templatesFile, &records); err != nil {
		return err
	}

	templates := make([]entities.AgendaTemplate, 0, len(records))
	for _, r := range records {
		lines := make([]string, 0, len(r.Items))
		for _, item := range r.Items {
			lines = append(lines, "- "+item)
		}
		templates = append(templates, entities.AgendaTemplate{
			ID:    r.ID,
			Name:  r.Name,
			Items: r.Items,
			Body:  strings.Join(lines, "\n"),
		})
	}
	s.templates = templates
	return nil
}

// Templates returns the read-only agenda template catalog.
func (s *Store) Templates(_ context.Context) ([]entities.AgendaTemplate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	templates := make([]entities.AgendaTemplate, 0, len(s.templates))
	for _, t := range s.templates {
		items := make([]string, len(t.Items))
		copy(items, t.Items)
		t.Items = items
		templates = append(templates, t)
	}
	return templates, nil
}
