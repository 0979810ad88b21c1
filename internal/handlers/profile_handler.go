package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pet-shelter/internal/domain/user"
	"github.com/BruksfildServices01/pet-shelter/internal/session"
	ucAppointment "github.com/BruksfildServices01/pet-shelter/internal/usecase/appointment"
	ucUser "github.com/BruksfildServices01/pet-shelter/internal/usecase/user"
)

type ProfileHandler struct {
	profile      *ucUser.Profile
	appointments *ucAppointment.ListAppointments
	checker      *ucAppointment.SlotChecker
}

func NewProfileHandler(
	profile *ucUser.Profile,
	appointments *ucAppointment.ListAppointments,
	checker *ucAppointment.SlotChecker,
) *ProfileHandler {
	return &ProfileHandler{
		profile:      profile,
		appointments: appointments,
		checker:      checker,
	}
}

func (h *ProfileHandler) Show(c *gin.Context) {
	ctx := c.Request.Context()
	userID := actor(c)

	u, err := h.profile.Get(ctx, userID)
	if err != nil {
		fail(c, err, "/")
		return
	}

	appointments, err := h.appointments.ForUser(ctx, userID)
	if err != nil {
		fail(c, err, "/")
		return
	}

	render(c, http.StatusOK, "profile", "My Profile", gin.H{
		"User":         u,
		"Appointments": appointments,
		"Now":          h.checker.Now(),
	})
}

func (h *ProfileHandler) Edit(c *gin.Context) {
	var form accountForm
	if err := bind(c, &form); err != nil {
		fail(c, err, "/profile")
		return
	}

	userID := actor(c)
	u, err := h.profile.Update(c.Request.Context(), ucUser.UpdateUserInput{
		ActorID:      userID,
		ID:           userID,
		AccountInput: form.input(),
	})
	if err != nil {
		fail(c, err, "/profile")
		return
	}

	session.Get(c).SetUser(user.Identity{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	})

	flash(c, "success", "Profile updated successfully!")
	redirect(c, "/profile")
}
