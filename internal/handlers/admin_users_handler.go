package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pet-shelter/internal/httperr"
	ucUser "github.com/BruksfildServices01/pet-shelter/internal/usecase/user"
)

const adminUsersPath = "/admin/users"

type AdminUsersHandler struct {
	users *ucUser.ManageUsers
}

func NewAdminUsersHandler(users *ucUser.ManageUsers) *AdminUsersHandler {
	return &AdminUsersHandler{users: users}
}

func (h *AdminUsersHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		fail(c, err, "/dashboard")
		return
	}

	render(c, http.StatusOK, "admin_users", "Manage Users", gin.H{
		"Users": users,
	})
}

func (h *AdminUsersHandler) Add(c *gin.Context) {
	var form accountForm
	if err := bind(c, &form); err != nil {
		fail(c, err, adminUsersPath)
		return
	}

	if _, err := h.users.Create(c.Request.Context(), actor(c), form.input()); err != nil {
		fail(c, err, adminUsersPath)
		return
	}

	flash(c, "success", "User added successfully!")
	redirect(c, adminUsersPath)
}

// Edit keeps the current password when the field is left blank.
func (h *AdminUsersHandler) Edit(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		fail(c, httperr.NotFound("user_not_found"), adminUsersPath)
		return
	}

	var form accountForm
	if err := bind(c, &form); err != nil {
		fail(c, err, adminUsersPath)
		return
	}

	if _, err := h.users.Update(c.Request.Context(), ucUser.UpdateUserInput{
		ActorID:      actor(c),
		ID:           id,
		AccountInput: form.input(),
	}); err != nil {
		fail(c, err, adminUsersPath)
		return
	}

	flash(c, "success", "User updated successfully!")
	redirect(c, adminUsersPath)
}

func (h *AdminUsersHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		fail(c, httperr.NotFound("user_not_found"), adminUsersPath)
		return
	}

	if err := h.users.Delete(c.Request.Context(), actor(c), id); err != nil {
		if httperr.IsBusiness(err, "user_has_appointments") {
			flash(c, "warning", httperr.Message(err))
			redirect(c, adminUsersPath)
			return
		}
		fail(c, err, adminUsersPath)
		return
	}

	flash(c, "success", "User deleted successfully!")
	redirect(c, adminUsersPath)
}
