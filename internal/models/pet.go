package models

import "time"

type Pet struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Type        string  `gorm:"size:20;not null;index" json:"type"`
	Breed       string  `gorm:"size:100;not null" json:"breed"`
	Age         int     `gorm:"not null" json:"age"`
	Image       *string `gorm:"size:512" json:"image"`
	Description string  `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ImageURL returns the stored image reference or an empty string.
func (p Pet) ImageURL() string {
	if p.Image == nil {
		return ""
	}
	return *p.Image
}
