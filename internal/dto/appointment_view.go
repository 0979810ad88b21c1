package dto

import "time"

// AppointmentView is an appointment joined with the names shown on profile,
// dashboard and admin pages.
type AppointmentView struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"user_id"`
	UserName      string    `json:"user_name"`
	UserEmail     string    `json:"user_email"`
	UserPhone     *string   `json:"user_phone"`
	PetID         uint      `json:"pet_id"`
	PetName       string    `json:"pet_name"`
	PetType       string    `json:"pet_type"`
	AppointmentDT time.Time `json:"appointment_dt"`
	Status        string    `json:"status"`
	Notes         *string   `json:"notes"`
}

type DashboardStats struct {
	TotalPets         int64 `json:"total_pets"`
	TotalUsers        int64 `json:"total_users"`
	TotalAppointments int64 `json:"total_appointments"`
}
