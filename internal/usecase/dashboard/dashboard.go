package dashboard

import (
	"context"

	"github.com/BruksfildServices01/pet-shelter/internal/domain/appointment"
	"github.com/BruksfildServices01/pet-shelter/internal/domain/pet"
	"github.com/BruksfildServices01/pet-shelter/internal/domain/user"
	"github.com/BruksfildServices01/pet-shelter/internal/dto"
)

const recentAppointments = 5

type Overview struct {
	Stats  dto.DashboardStats
	Recent []dto.AppointmentView
}

type GetOverview struct {
	pets         pet.Repository
	users        user.Repository
	appointments appointment.Repository
}

func NewGetOverview(
	pets pet.Repository,
	users user.Repository,
	appointments appointment.Repository,
) *GetOverview {
	return &GetOverview{
		pets:         pets,
		users:        users,
		appointments: appointments,
	}
}

func (uc *GetOverview) Execute(ctx context.Context) (*Overview, error) {
	var (
		out Overview
		err error
	)

	if out.Stats.TotalPets, err = uc.pets.Count(ctx); err != nil {
		return nil, err
	}
	if out.Stats.TotalUsers, err = uc.users.CountUsers(ctx); err != nil {
		return nil, err
	}
	if out.Stats.TotalAppointments, err = uc.appointments.Count(ctx); err != nil {
		return nil, err
	}
	if out.Recent, err = uc.appointments.ListAll(ctx, recentAppointments); err != nil {
		return nil, err
	}

	return &out, nil
}
