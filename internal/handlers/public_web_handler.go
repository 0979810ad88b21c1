package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainPet "github.com/BruksfildServices01/pet-shelter/internal/domain/pet"
	"github.com/BruksfildServices01/pet-shelter/internal/httperr"
	ucPet "github.com/BruksfildServices01/pet-shelter/internal/usecase/pet"
)

type PublicWebHandler struct {
	catalog       *ucPet.Catalog
	secureCookies bool
}

func NewPublicWebHandler(catalog *ucPet.Catalog, secureCookies bool) *PublicWebHandler {
	return &PublicWebHandler{
		catalog:       catalog,
		secureCookies: secureCookies,
	}
}

func (h *PublicWebHandler) Home(c *gin.Context) {
	pets, err := h.catalog.RecentlyViewed(c.Request.Context(), readRecentlyViewed(c))
	if err != nil {
		logUnexpected(c, err)
		pets = nil
	}

	render(c, http.StatusOK, "index", "Home", gin.H{
		"RecentlyViewed": pets,
	})
}

func (h *PublicWebHandler) ListPets(c *gin.Context) {
	filter := domainPet.ParseFilter(c.Query("type"), c.Query("search"), c.Query("sort"))

	pets, err := h.catalog.List(c.Request.Context(), filter)
	if err != nil {
		logUnexpected(c, err)
		render(c, statusFor(err), "pets", "Pets", gin.H{
			"Error":  httperr.Message(err),
			"Filter": filter,
		})
		return
	}

	render(c, http.StatusOK, "pets", "Pets", gin.H{
		"Pets":   pets,
		"Filter": filter,
	})
}

func (h *PublicWebHandler) ShowPet(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		fail(c, httperr.NotFound("pet_not_found"), "/pets")
		return
	}

	pet, err := h.catalog.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "/pets")
		return
	}

	writeRecentlyViewed(c, ucPet.RememberViewed(readRecentlyViewed(c), pet.ID), h.secureCookies)

	render(c, http.StatusOK, "pet", pet.Name, gin.H{
		"Pet": pet,
	})
}
