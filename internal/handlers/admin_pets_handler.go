package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	domainPet "github.com/BruksfildServices01/pet-shelter/internal/domain/pet"
	"github.com/BruksfildServices01/pet-shelter/internal/httperr"
	"github.com/BruksfildServices01/pet-shelter/internal/models"
	ucPet "github.com/BruksfildServices01/pet-shelter/internal/usecase/pet"
)

const photoField = "photoFile"

// ======================================================
// HANDLER
// ======================================================

type AdminPetsHandler struct {
	catalog *ucPet.Catalog
	manage  *ucPet.ManagePets
}

func NewAdminPetsHandler(catalog *ucPet.Catalog, manage *ucPet.ManagePets) *AdminPetsHandler {
	return &AdminPetsHandler{
		catalog: catalog,
		manage:  manage,
	}
}

func (h *AdminPetsHandler) List(c *gin.Context) {
	pets, err := h.catalog.List(c.Request.Context(), domainPet.Filter{})
	if err != nil {
		fail(c, err, "/dashboard")
		return
	}

	render(c, http.StatusOK, "admin_pets", "Manage Pets", gin.H{
		"Pets": pets,
	})
}

// --------------------------------------------------
// Add
// --------------------------------------------------

func (h *AdminPetsHandler) AddPage(c *gin.Context) {
	h.form(c, http.StatusOK, "/admin/pets/add", "Add Pet", petForm{}, nil)
}

func (h *AdminPetsHandler) Add(c *gin.Context) {
	var form petForm
	if err := bind(c, &form); err != nil {
		h.form(c, statusFor(err), "/admin/pets/add", "Add Pet", form, err)
		return
	}

	photo, closePhoto, err := openPhoto(c)
	if err != nil {
		h.form(c, statusFor(err), "/admin/pets/add", "Add Pet", form, err)
		return
	}
	defer closePhoto()

	if _, err := h.manage.Create(c.Request.Context(), ucPet.SavePetInput{
		AdminID: actor(c),
		Input:   form.input(),
		Photo:   photo,
	}); err != nil {
		h.form(c, statusFor(err), "/admin/pets/add", "Add Pet", form, err)
		return
	}

	flash(c, "success", "Pet added successfully!")
	redirect(c, "/admin/pets")
}

// --------------------------------------------------
// Edit
// --------------------------------------------------

func (h *AdminPetsHandler) EditPage(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		fail(c, httperr.NotFound("pet_not_found"), "/admin/pets")
		return
	}

	pet, err := h.catalog.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "/admin/pets")
		return
	}

	h.form(c, http.StatusOK, fmt.Sprintf("/admin/pets/edit/%d", id), "Edit Pet", formFromPet(pet), nil)
}

func (h *AdminPetsHandler) Edit(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		fail(c, httperr.NotFound("pet_not_found"), "/admin/pets")
		return
	}
	action := fmt.Sprintf("/admin/pets/edit/%d", id)

	var form petForm
	if err := bind(c, &form); err != nil {
		h.form(c, statusFor(err), action, "Edit Pet", form, err)
		return
	}

	photo, closePhoto, err := openPhoto(c)
	if err != nil {
		h.form(c, statusFor(err), action, "Edit Pet", form, err)
		return
	}
	defer closePhoto()

	if _, err := h.manage.Update(c.Request.Context(), ucPet.SavePetInput{
		AdminID: actor(c),
		ID:      id,
		Input:   form.input(),
		Photo:   photo,
	}); err != nil {
		if httperr.KindOf(err) == httperr.KindNotFound {
			fail(c, err, "/admin/pets")
			return
		}
		h.form(c, statusFor(err), action, "Edit Pet", form, err)
		return
	}

	flash(c, "success", "Pet updated successfully!")
	redirect(c, "/admin/pets")
}

// --------------------------------------------------
// Delete
// --------------------------------------------------

func (h *AdminPetsHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		fail(c, httperr.NotFound("pet_not_found"), "/admin/pets")
		return
	}

	if err := h.manage.Delete(c.Request.Context(), actor(c), id); err != nil {
		fail(c, err, "/admin/pets")
		return
	}

	flash(c, "success", "Pet deleted successfully!")
	redirect(c, "/admin/pets")
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func (h *AdminPetsHandler) form(c *gin.Context, status int, action, title string, form petForm, err error) {
	data := gin.H{
		"Action": action,
		"Form":   form,
		"Types":  domainPet.AllowedTypes,
	}
	if err != nil {
		logUnexpected(c, err)
		data["Error"] = httperr.Message(err)
	}
	render(c, status, "admin_pet_form", title, data)
}

// openPhoto returns the uploaded photo, or a nil reader when none was sent.
func openPhoto(c *gin.Context) (io.Reader, func(), error) {
	fh, err := c.FormFile(photoField)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, func() {}, nil
	}
	if err != nil {
		return nil, func() {}, httperr.Validation("invalid_image")
	}
	if fh.Size == 0 {
		return nil, func() {}, nil
	}

	f, err := fh.Open()
	if err != nil {
		return nil, func() {}, err
	}
	return f, func() { _ = f.Close() }, nil
}

func formFromPet(p *models.Pet) petForm {
	return petForm{
		Name:        p.Name,
		Type:        p.Type,
		Breed:       p.Breed,
		Age:         fmt.Sprint(p.Age),
		Image:       p.ImageURL(),
		Description: p.Description,
	}
}
