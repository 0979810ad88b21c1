package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/pet-shelter/internal/domain/appointment"
	domainPet "github.com/BruksfildServices01/pet-shelter/internal/domain/pet"
	"github.com/BruksfildServices01/pet-shelter/internal/dto"
	"github.com/BruksfildServices01/pet-shelter/internal/httperr"
	ucAppointment "github.com/BruksfildServices01/pet-shelter/internal/usecase/appointment"
	ucPet "github.com/BruksfildServices01/pet-shelter/internal/usecase/pet"
	ucUser "github.com/BruksfildServices01/pet-shelter/internal/usecase/user"
)

const adminAppointmentsPath = "/admin/appointments"

var appointmentStatuses = []domain.Status{
	domain.StatusScheduled,
	domain.StatusCompleted,
	domain.StatusCancelled,
}

// ======================================================
// HANDLER
// ======================================================

type AdminAppointmentsHandler struct {
	list      *ucAppointment.ListAppointments
	update    *ucAppointment.UpdateAppointment
	setStatus *ucAppointment.SetAppointmentStatus
	remove    *ucAppointment.DeleteAppointment
	checker   *ucAppointment.SlotChecker
	users     *ucUser.ManageUsers
	pets      *ucPet.Catalog
}

func NewAdminAppointmentsHandler(
	list *ucAppointment.ListAppointments,
	update *ucAppointment.UpdateAppointment,
	setStatus *ucAppointment.SetAppointmentStatus,
	remove *ucAppointment.DeleteAppointment,
	checker *ucAppointment.SlotChecker,
	users *ucUser.ManageUsers,
	pets *ucPet.Catalog,
) *AdminAppointmentsHandler {
	return &AdminAppointmentsHandler{
		list:      list,
		update:    update,
		setStatus: setStatus,
		remove:    remove,
		checker:   checker,
		users:     users,
		pets:      pets,
	}
}

func (h *AdminAppointmentsHandler) List(c *gin.Context) {
	appointments, err := h.list.All(c.Request.Context())
	if err != nil {
		fail(c, err, "/dashboard")
		return
	}

	render(c, http.StatusOK, "admin_appointments", "Manage Appointments", gin.H{
		"Appointments": appointments,
		"Statuses":     appointmentStatuses,
	})
}

// --------------------------------------------------
// Edit
// --------------------------------------------------

func (h *AdminAppointmentsHandler) EditPage(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		fail(c, httperr.NotFound("appointment_not_found"), adminAppointmentsPath)
		return
	}

	view, err := h.list.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err, adminAppointmentsPath)
		return
	}

	h.editForm(c, http.StatusOK, view, h.formFromView(view), nil)
}

func (h *AdminAppointmentsHandler) Edit(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		fail(c, httperr.NotFound("appointment_not_found"), adminAppointmentsPath)
		return
	}

	var form appointmentForm
	if err := bind(c, &form); err != nil {
		fail(c, err, fmt.Sprintf("/admin/appointments/edit/%d", id))
		return
	}

	userID, _ := parseID(strings.TrimSpace(form.UserID))
	petID, _ := parseID(strings.TrimSpace(form.PetID))

	_, err := h.update.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		AdminID:  actor(c),
		ID:       id,
		UserID:   userID,
		PetID:    petID,
		DateTime: form.AppointmentDT,
		Status:   strings.TrimSpace(form.Status),
		Notes:    form.Notes,
	})
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			fail(c, err, adminAppointmentsPath)
			return
		}
		view, viewErr := h.list.Get(c.Request.Context(), id)
		if viewErr != nil {
			fail(c, viewErr, adminAppointmentsPath)
			return
		}
		h.editForm(c, statusFor(err), view, form, err)
		return
	}

	flash(c, "success", "Appointment updated successfully!")
	redirect(c, adminAppointmentsPath)
}

// --------------------------------------------------
// Delete / status
// --------------------------------------------------

func (h *AdminAppointmentsHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		fail(c, httperr.NotFound("appointment_not_found"), adminAppointmentsPath)
		return
	}

	if err := h.remove.Execute(c.Request.Context(), actor(c), id); err != nil {
		fail(c, err, adminAppointmentsPath)
		return
	}

	flash(c, "success", "Appointment deleted successfully!")
	redirect(c, adminAppointmentsPath)
}

func (h *AdminAppointmentsHandler) SetStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		fail(c, httperr.NotFound("appointment_not_found"), adminAppointmentsPath)
		return
	}

	var form statusForm
	if err := bind(c, &form); err != nil {
		fail(c, err, adminAppointmentsPath)
		return
	}

	ap, err := h.setStatus.Execute(c.Request.Context(), actor(c), id, form.Status)
	if err != nil {
		fail(c, err, adminAppointmentsPath)
		return
	}

	flash(c, "success", fmt.Sprintf("Appointment %s successfully!", ap.Status))
	redirect(c, adminAppointmentsPath)
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func (h *AdminAppointmentsHandler) formFromView(v *dto.AppointmentView) appointmentForm {
	form := appointmentForm{
		UserID:        fmt.Sprint(v.UserID),
		PetID:         fmt.Sprint(v.PetID),
		AppointmentDT: h.checker.Schedule().Format(v.AppointmentDT),
		Status:        v.Status,
	}
	if v.Notes != nil {
		form.Notes = *v.Notes
	}
	return form
}

func (h *AdminAppointmentsHandler) editForm(
	c *gin.Context,
	status int,
	view *dto.AppointmentView,
	form appointmentForm,
	err error,
) {
	ctx := c.Request.Context()

	users, usersErr := h.users.List(ctx)
	if usersErr != nil {
		fail(c, usersErr, adminAppointmentsPath)
		return
	}
	pets, petsErr := h.pets.List(ctx, domainPet.Filter{Sort: domainPet.SortAZ})
	if petsErr != nil {
		fail(c, petsErr, adminAppointmentsPath)
		return
	}

	data := gin.H{
		"Appointment": view,
		"Form":        form,
		"Users":       users,
		"Pets":        pets,
		"Statuses":    appointmentStatuses,
	}
	if err != nil {
		logUnexpected(c, err)
		data["Error"] = httperr.Message(err)
	}
	render(c, status, "admin_appointment_edit", "Edit Appointment", data)
}
