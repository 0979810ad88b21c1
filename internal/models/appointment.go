package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"user"`

	PetID uint `gorm:"not null;uniqueIndex:idx_appointments_pet_slot,where:status <> 'cancelled'" json:"pet_id"`
	Pet   Pet  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"pet"`

	// Always persisted in UTC so equal instants compare equal in every driver.
	AppointmentDT time.Time `gorm:"column:appointment_dt;not null;uniqueIndex:idx_appointments_pet_slot,where:status <> 'cancelled'" json:"appointment_dt"`

	Status string  `gorm:"size:20;not null;default:'scheduled'" json:"status"`
	Notes  *string `gorm:"size:255" json:"notes"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
