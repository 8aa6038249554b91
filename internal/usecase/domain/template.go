package domain

import (
	"context"

	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/entities"
)

// Templates returns the read-only agenda template catalog.
func (u *Usecase) Templates(ctx context.Context) ([]entities.AgendaTemplate, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.Templates(ctx)
}
