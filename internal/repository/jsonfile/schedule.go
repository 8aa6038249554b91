package jsonfile

import (
	"context"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/entities"
)

func (s *Store) loadSchedule() error {
	var records []eventRecord
	if err := s.readJSON(scheduleFile, &records); err != nil {
		if os.IsNotExist(err) {
			s.schedule = []entities.Event{}
			return nil
		}
		return err
	}

	events := make([]entities.Event, 0, len(records))
	for _, r := range records {
		events = append(events, eventFromRecord(r))
	}
	s.schedule = events
	return nil
}

func (s *Store) persistScheduleLocked() error {
	records := make([]eventRecord, 0, len(s.schedule))
	for _, e := range s.schedule {
		records = append(records, eventToRecord(e))
	}
	return s.writeJSON(scheduleFile, records)
}

// sortScheduleLocked keeps the invariant order: (date, startTime) ascending,
// ties broken by locale-aware project name.
func (s *Store) sortScheduleLocked() {
	sort.SliceStable(s.schedule, func(i, j int) bool {
		keyI := s.schedule[i].Date + "T" + s.schedule[i].StartTime
		keyJ := s.schedule[j].Date + "T" + s.schedule[j].StartTime
		if keyI != keyJ {
			return keyI < keyJ
		}
		return s.collator.CompareString(s.schedule[i].ProjectName, s.schedule[j].ProjectName) < 0
	})
}

// Events returns the stored events whose date falls in the given year and
// month, in stored (sorted) order.
func (s *Store) Events(_ context.Context, year, month int) ([]entities.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := make([]entities.Event, 0)
	for _, e := range s.schedule {
		parts := strings.SplitN(e.Date, "-", 3)
		if len(parts) < 2 {
			continue
		}
		eventYear, errYear := strconv.Atoi(parts[0])
		eventMonth, errMonth := strconv.Atoi(parts[1])
		if errYear != nil || errMonth != nil {
			continue
		}
		if eventYear == year && eventMonth == month {
			events = append(events, e)
		}
	}
	return events, nil
}

// InsertEvent assigns a fresh id, appends, re-sorts and persists.
func (s *Store) InsertEvent(_ context.Context, event entities.Event) (*entities.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event.ID = newEventID(event.Date, event.StartTime)
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	s.schedule = append(s.schedule, event)
	s.sortScheduleLocked()
	if err := s.persistScheduleLocked(); err != nil {
		s.removeEventLocked(event.ID)
		return nil, err
	}

	s.log.Infow("event created", "event_id", event.ID, "date", event.Date, "start_time", event.StartTime)
	return &event, nil
}

// UpdateEvent replaces the stored event with the same id, preserving its
// creation timestamp, then re-sorts and persists.
func (s *Store) UpdateEvent(_ context.Context, event entities.Event) (*entities.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOfEventLocked(event.ID)
	if index < 0 {
		return nil, entities.ErrEventNotFound
	}

	previous := s.schedule[index]
	event.CreatedAt = previous.CreatedAt
	s.schedule[index] = event
	s.sortScheduleLocked()
	if err := s.persistScheduleLocked(); err != nil {
		s.schedule[s.indexOfEventLocked(event.ID)] = previous
		s.sortScheduleLocked()
		return nil, err
	}

	s.log.Infow("event updated", "event_id", event.ID)
	return &event, nil
}

// DeleteEvent removes the event and persists.
func (s *Store) DeleteEvent(_ context.Context, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOfEventLocked(eventID)
	if index < 0 {
		return entities.ErrEventNotFound
	}

	removed := s.schedule[index]
	s.schedule = append(s.schedule[:index], s.schedule[index+1:]...)
	if err := s.persistScheduleLocked(); err != nil {
		s.schedule = append(s.schedule, removed)
		s.sortScheduleLocked()
		return err
	}

	s.log.Infow("event deleted", "event_id", eventID)
	return nil
}

func (s *Store) indexOfEventLocked(eventID string) int {
	for i := range s.schedule {
		if s.schedule[i].ID == eventID {
			return i
		}
	}
	return -1
}

func (s *Store) removeEventLocked(eventID string) {
	if index := s.indexOfEventLocked(eventID); index >= 0 {
		s.schedule = append(s.schedule[:index], s.schedule[index+1:]...)
	}
}
