package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/pet-shelter/internal/domain/appointment"
	"github.com/BruksfildServices01/pet-shelter/internal/dto"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// ForUser lists a user's own appointments, newest first.
func (uc *ListAppointments) ForUser(ctx context.Context, userID uint) ([]dto.AppointmentView, error) {
	return uc.repo.ListForUser(ctx, userID)
}

func (uc *ListAppointments) All(ctx context.Context) ([]dto.AppointmentView, error) {
	return uc.repo.ListAll(ctx, 0)
}

func (uc *ListAppointments) Get(ctx context.Context, id uint) (*dto.AppointmentView, error) {
	return uc.repo.GetView(ctx, id)
}

func (uc *ListAppointments) Count(ctx context.Context) (int64, error) {
	return uc.repo.Count(ctx)
}
