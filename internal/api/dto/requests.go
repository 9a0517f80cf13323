package dto

// RegisterRequest payload for new users.
type RegisterRequest struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	RoleID   IntValue `json:"role_id"`
	City     string   `json:"city"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest payload for registering a volunteer onto an event.
type SignupRequest struct {
	EventID     IntValue `json:"event_id"`
	VolunteerID IntValue `json:"volunteer_id"`
}

// CreateEventRequest payload for publishing a new event.
type CreateEventRequest struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	NGOID         IntValue `json:"ngo_id"`
	ScheduledAt   DateTime `json:"scheduled_at"`
	Location      string   `json:"location"`
	MaxVolunteers IntValue `json:"max_volunteers"`
	DurationHours IntValue `json:"duration_hours"`
}

// CompleteRegistrationRequest payload for confirming participation.
type CompleteRegistrationRequest struct {
	RegistrationID IntValue `json:"registration_id"`
	HoursEarned    IntValue `json:"hours_earned"`
	Rating         *float64 `json:"rating"`
}
