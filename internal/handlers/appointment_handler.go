package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/pet-shelter/internal/domain/appointment"
	"github.com/BruksfildServices01/pet-shelter/internal/httperr"
	"github.com/BruksfildServices01/pet-shelter/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/pet-shelter/internal/usecase/appointment"
	ucPet "github.com/BruksfildServices01/pet-shelter/internal/usecase/pet"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	catalog *ucPet.Catalog
	checker *ucAppointment.SlotChecker
	book    *ucAppointment.BookSlot
	cancel  *ucAppointment.CancelAppointment
}

func NewAppointmentHandler(
	catalog *ucPet.Catalog,
	checker *ucAppointment.SlotChecker,
	book *ucAppointment.BookSlot,
	cancel *ucAppointment.CancelAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		catalog: catalog,
		checker: checker,
		book:    book,
		cancel:  cancel,
	}
}

// ======================================================
// BOOKING PAGE
// ======================================================

func (h *AppointmentHandler) SchedulePage(c *gin.Context) {
	petID, ok := paramID(c, "petId")
	if !ok {
		fail(c, httperr.NotFound("pet_not_found"), "/pets")
		return
	}

	ctx := c.Request.Context()
	pet, err := h.catalog.Get(ctx, petID)
	if err != nil {
		fail(c, err, "/pets")
		return
	}

	schedule := h.checker.Schedule()
	minDate := h.checker.Now()
	if minDate.Before(schedule.WindowStart()) {
		minDate = schedule.WindowStart()
	}

	data := gin.H{
		"Pet":     pet,
		"Slots":   schedule.Slots(),
		"MinDate": minDate.Format(domain.DateLayout),
		"MaxDate": schedule.WindowEnd().Format(domain.DateLayout),
		"Date":    "",
	}

	// A chosen date lists its free slots without needing the JSON endpoint.
	if date := strings.TrimSpace(c.Query("date")); date != "" {
		available, err := h.checker.ListAvailable(ctx, pet.ID, date)
		if err != nil {
			logUnexpected(c, err)
			data["Error"] = httperr.Message(err)
		} else {
			data["Date"] = date
			data["Available"] = available
		}
	}

	render(c, http.StatusOK, "schedule", fmt.Sprintf("Book Appointment with %s", pet.Name), data)
}

// ======================================================
// BOOK
// ======================================================

func (h *AppointmentHandler) Schedule(c *gin.Context) {
	petID, ok := paramID(c, "petId")
	if !ok {
		fail(c, httperr.NotFound("pet_not_found"), "/pets")
		return
	}
	back := fmt.Sprintf("/appointments/schedule/%d", petID)

	var form bookingForm
	if err := bind(c, &form); err != nil {
		fail(c, err, back)
		return
	}
	date, clock := form.dateAndTime()

	_, err := h.book.Execute(c.Request.Context(), ucAppointment.BookSlotInput{
		UserID: actor(c),
		PetID:  petID,
		Date:   date,
		Time:   clock,
		Notes:  form.Notes,
	})
	if err != nil {
		if httperr.IsBusiness(err, "pet_not_found") {
			back = "/pets"
		}
		fail(c, err, back)
		return
	}

	flash(c, "success", "Appointment booked!")
	redirect(c, "/profile")
}

// ======================================================
// AVAILABLE SLOTS (JSON)
// ======================================================

// AvailableSlots answers with the free slot strings for a pet and day.
// Missing or malformed parameters yield an empty list.
func (h *AppointmentHandler) AvailableSlots(c *gin.Context) {
	date := strings.TrimSpace(c.Query("date"))
	petID, ok := parseID(strings.TrimSpace(c.Query("petId")))
	if date == "" || !ok {
		httpresp.Array[string](c, http.StatusOK, nil)
		return
	}

	slots, err := h.checker.ListAvailable(c.Request.Context(), petID, date)
	if err != nil {
		if httperr.KindOf(err) == httperr.KindValidation {
			httpresp.Array[string](c, http.StatusOK, nil)
			return
		}
		logUnexpected(c, err)
		httpresp.Array[string](c, statusFor(err), nil)
		return
	}

	httpresp.Array(c, http.StatusOK, slots)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		fail(c, httperr.NotFound("appointment_not_found"), "/profile")
		return
	}

	if _, err := h.cancel.Execute(c.Request.Context(), actor(c), id); err != nil {
		fail(c, err, "/profile")
		return
	}

	flash(c, "success", "Appointment cancelled successfully")
	redirect(c, "/profile")
}
