package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/pet-shelter/internal/dto"
	"github.com/BruksfildServices01/pet-shelter/internal/models"
)

type Repository interface {
	// -------- Pet / User --------
	GetPet(
		ctx context.Context,
		id uint,
	) (*models.Pet, error)

	UserExists(
		ctx context.Context,
		id uint,
	) (bool, error)

	// -------- Availability --------
	IsTaken(
		ctx context.Context,
		petID uint,
		at time.Time,
		excludeID uint,
	) (bool, error)

	ListBookedTimes(
		ctx context.Context,
		petID uint,
		start time.Time,
		end time.Time,
	) ([]time.Time, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	// -------- Listings --------
	ListForUser(
		ctx context.Context,
		userID uint,
	) ([]dto.AppointmentView, error)

	ListAll(
		ctx context.Context,
		limit int,
	) ([]dto.AppointmentView, error)

	GetView(
		ctx context.Context,
		id uint,
	) (*dto.AppointmentView, error)

	Count(ctx context.Context) (int64, error)
}
