package jsonfile

import (
	"context"
	"os"
	"sort"

	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/entities"
)

func (s *Store) loadHolidays() error {
	var records []holidayRecord
	if err := s.readJSON(holidaysFile, &records); err != nil {
		if os.IsNotExist(err) {
			s.holidays = []entities.Holiday{}
			return nil
		}
		return err
	}

	holidays := make([]entities.Holiday, 0, len(records))
	for _, r := range records {
		if r.ID == "" {
			r.ID = newHolidayID()
		}
		holidays = append(holidays, entities.Holiday{ID: r.ID, Date: r.Date, Name: r.Name})
	}
	s.holidays = holidays
	return nil
}

func (s *Store) persistHolidaysLocked() error {
	records := make([]holidayRecord, 0, len(s.holidays))
	for _, h := range s.holidays {
		records = append(records, holidayRecord{ID: h.ID, Date: h.Date, Name: h.Name})
	}
	return s.writeJSON(holidaysFile, records)
}

func (s *Store) sortHolidaysLocked() {
	sort.SliceStable(s.holidays, func(i, j int) bool {
		if s.holidays[i].Date != s.holidays[j].Date {
			return s.holidays[i].Date < s.holidays[j].Date
		}
		return s.collator.CompareString(s.holidays[i].Name, s.holidays[j].Name) < 0
	})
}

// Holidays returns the stored holiday list in sorted order.
func (s *Store) Holidays(_ context.Context) ([]entities.Holiday, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	holidays := make([]entities.Holiday, len(s.holidays))
	copy(holidays, s.holidays)
	return holidays, nil
}

// AddHoliday stores the holiday with a generated id and persists.
func (s *Store) AddHoliday(_ context.Context, holiday entities.Holiday) (*entities.Holiday, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	holiday.ID = newHolidayID()
	s.holidays = append(s.holidays, holiday)
	s.sortHolidaysLocked()
	if err := s.persistHolidaysLocked(); err != nil {
		s.removeHolidayLocked(holiday.ID)
		return nil, err
	}

	s.log.Infow("holiday added", "holiday_id", holiday.ID, "date", holiday.Date)
	return &holiday, nil
}

// RemoveHoliday deletes the holiday and persists.
func (s *Store) RemoveHoliday(_ context.Context, holidayID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := -1
	for i := range s.holidays {
		if s.holidays[i].ID == holidayID {
			index = i
			break
		}
	}
	if index < 0 {
		return entities.ErrHolidayNotFound
	}

	removed := s.holidays[index]
	s.holidays = append(s.holidays[:index], s.holidays[index+1:]...)
	if err := s.persistHolidaysLocked(); err != nil {
		s.holidays = append(s.holidays, removed)
		s.sortHolidaysLocked()
		return err
	}

	s.log.Infow("holiday removed", "holiday_id", holidayID)
	return nil
}

func (s *Store) removeHolidayLocked(holidayID string) {
	for i := range s.holidays {
		if s.holidays[i].ID == holidayID {
			s.holidays = append(s.holidays[:i], s.holidays[i+1:]...)
			return
		}
	}
}
