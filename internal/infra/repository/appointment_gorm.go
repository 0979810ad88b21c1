package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/pet-shelter/internal/domain/appointment"
	"github.com/BruksfildServices01/pet-shelter/internal/dto"
	"github.com/BruksfildServices01/pet-shelter/internal/httperr"
	"github.com/BruksfildServices01/pet-shelter/internal/models"
)

type AppointmentGormRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewAppointmentGormRepository(db *gorm.DB, timeout time.Duration) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db, timeout: timeout}
}

// --------------------------------------------------
// Pet / User
// --------------------------------------------------

func (r *AppointmentGormRepository) GetPet(
	ctx context.Context,
	id uint,
) (*models.Pet, error) {

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var pet models.Pet
	if err := r.db.WithContext(ctx).First(&pet, id).Error; err != nil {
		return nil, httperr.FromDB(err, "pet_not_found")
	}
	return &pet, nil
}

func (r *AppointmentGormRepository) UserExists(
	ctx context.Context,
	id uint,
) (bool, error) {

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, httperr.FromDB(err, "")
	}
	return count > 0, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) IsTaken(
	ctx context.Context,
	petID uint,
	at time.Time,
	excludeID uint,
) (bool, error) {

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"pet_id = ? AND appointment_dt = ? AND status <> ?",
			petID, at.UTC(), cancelledStatus,
		)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, httperr.FromDB(err, "")
	}
	return count > 0, nil
}

func (r *AppointmentGormRepository) ListBookedTimes(
	ctx context.Context,
	petID uint,
	start time.Time,
	end time.Time,
) ([]time.Time, error) {

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var times []time.Time
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"pet_id = ? AND status <> ? AND appointment_dt >= ? AND appointment_dt < ?",
			petID, cancelledStatus, start.UTC(), end.UTC(),
		).
		Order("appointment_dt ASC").
		Pluck("appointment_dt", &times).Error; err != nil {
		return nil, httperr.FromDB(err, "")
	}
	return times, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	ap.AppointmentDT = ap.AppointmentDT.UTC()
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(ap).Error
	if httperr.IsUniqueViolation(err) {
		return httperr.Conflict("slot_taken")
	}
	return httperr.FromDB(err, "")
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, httperr.FromDB(err, "appointment_not_found")
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	ap.AppointmentDT = ap.AppointmentDT.UTC()
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(ap).Error
	if httperr.IsUniqueViolation(err) {
		return httperr.Conflict("slot_taken")
	}
	return httperr.FromDB(err, "")
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return httperr.FromDB(res.Error, "")
	}
	if res.RowsAffected == 0 {
		return httperr.NotFound("appointment_not_found")
	}
	return nil
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

const appointmentViewColumns = `appointments.id,
	appointments.user_id,
	COALESCE(users.name, '') AS user_name,
	COALESCE(users.email, '') AS user_email,
	users.phone AS user_phone,
	appointments.pet_id,
	COALESCE(pets.name, '') AS pet_name,
	COALESCE(pets.type, '') AS pet_type,
	appointments.appointment_dt,
	appointments.status,
	appointments.notes`

func (r *AppointmentGormRepository) views(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("appointments").
		Select(appointmentViewColumns).
		Joins("LEFT JOIN users ON users.id = appointments.user_id").
		Joins("LEFT JOIN pets ON pets.id = appointments.pet_id")
}

func (r *AppointmentGormRepository) ListForUser(
	ctx context.Context,
	userID uint,
) ([]dto.AppointmentView, error) {

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var out []dto.AppointmentView
	if err := r.views(ctx).
		Where("appointments.user_id = ?", userID).
		Order("appointments.appointment_dt DESC").
		Scan(&out).Error; err != nil {
		return nil, httperr.FromDB(err, "")
	}
	return out, nil
}

// ListAll returns appointments newest first; limit <= 0 means no limit.
func (r *AppointmentGormRepository) ListAll(
	ctx context.Context,
	limit int,
) ([]dto.AppointmentView, error) {

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	q := r.views(ctx).Order("appointments.appointment_dt DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var out []dto.AppointmentView
	if err := q.Scan(&out).Error; err != nil {
		return nil, httperr.FromDB(err, "")
	}
	return out, nil
}

func (r *AppointmentGormRepository) GetView(
	ctx context.Context,
	id uint,
) (*dto.AppointmentView, error) {

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var out []dto.AppointmentView
	if err := r.views(ctx).
		Where("appointments.id = ?", id).
		Limit(1).
		Scan(&out).Error; err != nil {
		return nil, httperr.FromDB(err, "")
	}
	if len(out) == 0 {
		return nil, httperr.NotFound("appointment_not_found")
	}
	return &out[0], nil
}

func (r *AppointmentGormRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Appointment{}).Count(&count).Error; err != nil {
		return 0, httperr.FromDB(err, "")
	}
	return count, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
