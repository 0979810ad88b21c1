package handlers

import (
	"strconv"
	"strings"

	domainPet "github.com/BruksfildServices01/pet-shelter/internal/domain/pet"
	ucUser "github.com/BruksfildServices01/pet-shelter/internal/usecase/user"
)

// Form fields arrive as strings and are validated by the use cases, so the
// messages shown to visitors come from one place.

type accountForm struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Password string `form:"password"`
	Phone    string `form:"phone"`
}

func (f accountForm) input() ucUser.AccountInput {
	return ucUser.AccountInput{
		Name:     f.Name,
		Email:    f.Email,
		Password: f.Password,
		Phone:    f.Phone,
	}
}

type loginForm struct {
	Email      string `form:"email"`
	Password   string `form:"password"`
	RememberMe string `form:"rememberMe"`
}

func (f loginForm) remember() bool {
	switch strings.ToLower(f.RememberMe) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

type bookingForm struct {
	Date  string `form:"date"`
	Time  string `form:"time"`
	Notes string `form:"notes"`
}

func (f bookingForm) dateAndTime() (string, string) {
	return strings.TrimSpace(f.Date), strings.TrimSpace(f.Time)
}

type petForm struct {
	Name        string `form:"name"`
	Type        string `form:"type"`
	Breed       string `form:"breed"`
	Age         string `form:"age"`
	Image       string `form:"image"`
	Description string `form:"description"`
}

// input maps a missing or non-numeric age to -1 so validation rejects it.
func (f petForm) input() domainPet.Input {
	age, err := strconv.Atoi(strings.TrimSpace(f.Age))
	if err != nil {
		age = -1
	}
	return domainPet.Input{
		Name:        strings.TrimSpace(f.Name),
		Type:        strings.TrimSpace(f.Type),
		Breed:       strings.TrimSpace(f.Breed),
		Age:         age,
		ImageURL:    f.Image,
		Description: strings.TrimSpace(f.Description),
	}
}

type appointmentForm struct {
	UserID        string `form:"user_id"`
	PetID         string `form:"pet_id"`
	AppointmentDT string `form:"appointment_dt"`
	Status        string `form:"status"`
	Notes         string `form:"notes"`
}

type statusForm struct {
	Status string `form:"status"`
}
