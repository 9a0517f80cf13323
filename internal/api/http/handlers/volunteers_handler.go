package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/volunteer-hub/internal/service"
)

// VolunteersHandler exposes the standalone volunteers write path. Unlike the
// mock API it replies with plain text, matching its original form-post
// consumers.
type VolunteersHandler struct {
	volunteers *service.VolunteerService
}

// NewVolunteersHandler constructs the handler.
func NewVolunteersHandler(volunteers *service.VolunteerService) *VolunteersHandler {
	return &VolunteersHandler{volunteers: volunteers}
}

// Create handles POST /api/volunteers with form fields first_name,
// last_name, email, city.
func (h *VolunteersHandler) Create(c *fiber.Ctx) error {
	form := service.VolunteerForm{
		FirstName: c.FormValue("first_name"),
		LastName:  c.FormValue("last_name"),
		Email:     c.FormValue("email"),
		City:      c.FormValue("city"),
	}

	if _, err := h.volunteers.Save(c.UserContext(), form); err != nil {
		if errors.Is(err, service.ErrVolunteerFields) {
			return c.Status(http.StatusBadRequest).SendString(err.Error())
		}
		// Datastore details were already logged; the caller gets a
		// generic message.
		return c.Status(http.StatusInternalServerError).SendString(service.ErrVolunteerSave.Error())
	}

	return c.SendString("Регистрация успешно сохранена!")
}

// MethodNotAllowed rejects non-POST verbs on the volunteers path.
func (h *VolunteersHandler) MethodNotAllowed(c *fiber.Ctx) error {
	return c.Status(http.StatusMethodNotAllowed).SendString("Метод не поддерживается")
}
