// Package domain contains application Usecases orchestrating domain logic by holiday.
package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/entities"
)

// Holidays returns the stored holiday list.
func (u *Usecase) Holidays(ctx context.Context) ([]entities.Holiday, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.Holidays(ctx)
}

// AddHoliday stores a new holiday. Duplicate dates are allowed; entries
// only annotate calendar cells.
func (u *Usecase) AddHoliday(ctx context.Context, date, name string) (*entities.Holiday, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	date = strings.TrimSpace(date)
	name = strings.TrimSpace(name)
	if date == "" || name == "" {
		return nil, entities.ErrHolidayFieldsRequired
	}
	if !isValidDate(date) {
		return nil, entities.ErrInvalidDate
	}

	return u.repo.AddHoliday(ctx, entities.Holiday{Date: date, Name: name})
}

// RemoveHoliday deletes the stored holiday.
func (u *Usecase) RemoveHoliday(ctx context.Context, holidayID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	holidayID = strings.TrimSpace(holidayID)
	if holidayID == "" {
		return fmt.Errorf("%w: holiday id is required", entities.ErrInvalidArgument)
	}
	return u.repo.RemoveHoliday(ctx, holidayID)
}
