package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/volunteer-hub/internal/api/dto"
	"github.com/spec-kit/volunteer-hub/internal/domain"
	"github.com/spec-kit/volunteer-hub/internal/observability"
	"github.com/spec-kit/volunteer-hub/internal/service"
)

// Success messages. The wording is part of the API contract.
const (
	msgUserRegistered    = "Пользователь зарегистрирован"
	msgLoginOK           = "Вход выполнен успешно"
	msgSignupOK          = "Регистрация на мероприятие выполнена"
	msgEventCreated      = "Мероприятие создано"
	msgCompletionOK      = "Участие подтверждено"
	msgUnknownAction     = "Неизвестное действие. Используйте параметр ?action=..."
	accessTokenCookieKey = "access_token"
)

type actionEntry struct {
	method  string
	handler fiber.Handler
}

// MockAPIHandler serves the action-dispatched API over session stores.
type MockAPIHandler struct {
	auth      *service.AuthService
	events    *service.EventService
	directory *service.DirectoryService
	metrics   *observability.Metrics
	actions   map[string]actionEntry
}

// NewMockAPIHandler constructs the handler and its action table.
func NewMockAPIHandler(auth *service.AuthService, events *service.EventService, directory *service.DirectoryService, metrics *observability.Metrics) *MockAPIHandler {
	h := &MockAPIHandler{auth: auth, events: events, directory: directory, metrics: metrics}
	h.actions = map[string]actionEntry{
		"get_events":            {fiber.MethodGet, h.getEvents},
		"register":              {fiber.MethodPost, h.register},
		"login":                 {fiber.MethodPost, h.login},
		"get_profile":           {fiber.MethodGet, h.getProfile},
		"register_for_event":    {fiber.MethodPost, h.registerForEvent},
		"get_ngos":              {fiber.MethodGet, h.getNGOs},
		"get_roles":             {fiber.MethodGet, h.getRoles},
		"create_event":          {fiber.MethodPost, h.createEvent},
		"complete_registration": {fiber.MethodPost, h.completeRegistration},
	}
	return h
}

// Dispatch routes by the action query parameter. An unknown action yields
// the guidance envelope with HTTP 200; a known action with the wrong verb
// yields a method-not-allowed envelope.
func (h *MockAPIHandler) Dispatch(c *fiber.Ctx) error {
	action := c.Query("action")
	entry, ok := h.actions[action]
	if !ok {
		return c.JSON(fiber.Map{"success": false, "message": msgUnknownAction})
	}
	if c.Method() != entry.method {
		return domain.ErrMethodNotAllowed
	}
	h.metrics.RecordAction(action)
	return entry.handler(c)
}

func (h *MockAPIHandler) getEvents(c *fiber.Ctx) error {
	details, err := h.events.ListEvents(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": dto.FromEventDetails(details)})
}

func (h *MockAPIHandler) register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	// A malformed body behaves like an empty one: validation reports the
	// missing fields.
	_ = c.BodyParser(&req)

	id, err := h.auth.RegisterUser(c.UserContext(), req.Name, req.Email, req.Password, req.RoleID.Int(), req.City)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": msgUserRegistered, "id": id})
}

func (h *MockAPIHandler) login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	_ = c.BodyParser(&req)

	result, err := h.auth.LoginUser(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": msgLoginOK,
		"user":    dto.FromUser(result.User, result.RoleName),
		"auth":    dto.AuthResponse{Token: result.Token, ExpiresAt: result.ExpiresAt},
	})
}

func (h *MockAPIHandler) getProfile(c *fiber.Ctx) error {
	userID, err := h.profileUserID(c)
	if err != nil {
		return err
	}

	profile, err := h.auth.Profile(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": dto.FromProfile(*profile)})
}

// profileUserID resolves the subject from the user_id query parameter, the
// Authorization header, or the access_token cookie, in that order.
func (h *MockAPIHandler) profileUserID(c *fiber.Ctx) (int, error) {
	if raw := c.Query("user_id"); raw != "" {
		id, _ := strconv.Atoi(raw)
		return id, nil
	}

	token := ""
	if header := c.Get(fiber.HeaderAuthorization); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			token = parts[1]
		}
	}
	if token == "" {
		token = c.Cookies(accessTokenCookieKey)
	}
	if token == "" {
		return 0, domain.ErrProfileID
	}
	return h.auth.ResolveUserID(token)
}

func (h *MockAPIHandler) registerForEvent(c *fiber.Ctx) error {
	var req dto.SignupRequest
	_ = c.BodyParser(&req)

	id, err := h.events.RegisterForEvent(c.UserContext(), req.EventID.Int(), req.VolunteerID.Int())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": msgSignupOK, "id": id})
}

func (h *MockAPIHandler) getNGOs(c *fiber.Ctx) error {
	ngos, err := h.directory.NGOs(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": dto.FromNGOs(ngos)})
}

func (h *MockAPIHandler) getRoles(c *fiber.Ctx) error {
	roles, err := h.directory.Roles(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": dto.FromRoles(roles)})
}

func (h *MockAPIHandler) createEvent(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	_ = c.BodyParser(&req)

	id, err := h.events.CreateEvent(c.UserContext(), service.CreateEventParams{
		Title:         req.Title,
		Description:   req.Description,
		NGOID:         req.NGOID.Int(),
		ScheduledAt:   req.ScheduledAt.Time(),
		Location:      req.Location,
		MaxVolunteers: req.MaxVolunteers.Int(),
		DurationHours: req.DurationHours.Int(),
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": msgEventCreated, "id": id})
}

func (h *MockAPIHandler) completeRegistration(c *fiber.Ctx) error {
	var req dto.CompleteRegistrationRequest
	_ = c.BodyParser(&req)

	completion, err := h.events.CompleteRegistration(c.UserContext(), service.CompleteRegistrationParams{
		RegistrationID: req.RegistrationID.Int(),
		HoursEarned:    req.HoursEarned.Int(),
		Rating:         req.Rating,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": msgCompletionOK, "data": dto.FromCompletion(*completion)})
}
