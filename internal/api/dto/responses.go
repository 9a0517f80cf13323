package dto

import (
	"time"

	"github.com/spec-kit/volunteer-hub/internal/domain"
	"github.com/spec-kit/volunteer-hub/internal/service"
)

// EventResponse is an event enriched with its organization's name.
type EventResponse struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	NGOID         int      `json:"ngo_id"`
	ScheduledAt   DateTime `json:"scheduled_at"`
	Location      string   `json:"location"`
	MaxVolunteers int      `json:"max_volunteers"`
	DurationHours int      `json:"duration_hours"`
	Status        string   `json:"status"`
	NGOName       string   `json:"ngo_name"`
}

// UserResponse is a user record with the password hash stripped.
type UserResponse struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	RoleID     int      `json:"role_id"`
	City       string   `json:"city"`
	TotalHours int      `json:"total_hours"`
	Rating     float64  `json:"rating"`
	CreatedAt  DateTime `json:"created_at"`
	RoleName   string   `json:"role_name"`
}

// RoleResponse mirrors a stored role.
type RoleResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// NGOResponse mirrors a stored organization.
type NGOResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RegistrationResponse is a sign-up, optionally enriched with event context.
type RegistrationResponse struct {
	ID           int       `json:"id"`
	EventID      int       `json:"event_id"`
	VolunteerID  int       `json:"volunteer_id"`
	RegisteredAt DateTime  `json:"registered_at"`
	HoursEarned  int       `json:"hours_earned"`
	Status       string    `json:"status"`
	Rating       *float64  `json:"rating,omitempty"`
	EventTitle   *string   `json:"event_title,omitempty"`
	ScheduledAt  *DateTime `json:"scheduled_at,omitempty"`
	Location     *string   `json:"location,omitempty"`
}

// CertificateResponse mirrors an issued certificate.
type CertificateResponse struct {
	ID            int      `json:"id"`
	VolunteerID   int      `json:"volunteer_id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	HoursRequired int      `json:"hours_required"`
	IssuedAt      DateTime `json:"issued_at"`
}

// ProfileResponse combines the sanitized user with role, registrations and
// certificates.
type ProfileResponse struct {
	UserResponse
	Role          *RoleResponse          `json:"role"`
	Registrations []RegistrationResponse `json:"registrations"`
	Certificates  []CertificateResponse  `json:"certificates"`
}

// AuthResponse carries the access token issued on login.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CompletionResponse reports the completed registration and its certificate.
type CompletionResponse struct {
	Registration RegistrationResponse `json:"registration"`
	Certificate  *CertificateResponse `json:"certificate,omitempty"`
	TotalHours   int                  `json:"total_hours"`
	Rating       float64              `json:"rating"`
}

// FromEventDetail maps a service event detail.
func FromEventDetail(d service.EventDetail) EventResponse {
	return EventResponse{
		ID:            d.Event.ID,
		Title:         d.Event.Title,
		Description:   d.Event.Description,
		NGOID:         d.Event.NGOID,
		ScheduledAt:   NewDateTime(d.Event.ScheduledAt),
		Location:      d.Event.Location,
		MaxVolunteers: d.Event.MaxVolunteers,
		DurationHours: d.Event.DurationHours,
		Status:        string(d.Event.Status),
		NGOName:       d.NGOName,
	}
}

// FromEventDetails maps a slice preserving order.
func FromEventDetails(details []service.EventDetail) []EventResponse {
	out := make([]EventResponse, 0, len(details))
	for _, d := range details {
		out = append(out, FromEventDetail(d))
	}
	return out
}

// FromUser maps a sanitized user.
func FromUser(u domain.User, roleName string) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		RoleID:     u.RoleID,
		City:       u.City,
		TotalHours: u.TotalHours,
		Rating:     u.Rating,
		CreatedAt:  NewDateTime(u.CreatedAt),
		RoleName:   roleName,
	}
}

// FromRoles maps stored roles.
func FromRoles(roles []domain.Role) []RoleResponse {
	out := make([]RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, RoleResponse{ID: r.ID, Name: r.Name})
	}
	return out
}

// FromNGOs maps stored organizations.
func FromNGOs(ngos []domain.NGO) []NGOResponse {
	out := make([]NGOResponse, 0, len(ngos))
	for _, n := range ngos {
		out = append(out, NGOResponse{ID: n.ID, Name: n.Name, Description: n.Description})
	}
	return out
}

// FromRegistrationDetail maps a registration with optional event context.
func FromRegistrationDetail(d service.RegistrationDetail) RegistrationResponse {
	resp := RegistrationResponse{
		ID:           d.Registration.ID,
		EventID:      d.Registration.EventID,
		VolunteerID:  d.Registration.VolunteerID,
		RegisteredAt: NewDateTime(d.Registration.RegisteredAt),
		HoursEarned:  d.Registration.HoursEarned,
		Status:       string(d.Registration.Status),
		Rating:       d.Registration.Rating,
	}
	if d.Event != nil {
		title := d.Event.Title
		scheduled := NewDateTime(d.Event.ScheduledAt)
		location := d.Event.Location
		resp.EventTitle = &title
		resp.ScheduledAt = &scheduled
		resp.Location = &location
	}
	return resp
}

// FromCertificate maps an issued certificate.
func FromCertificate(c domain.Certificate) CertificateResponse {
	return CertificateResponse{
		ID:            c.ID,
		VolunteerID:   c.VolunteerID,
		Title:         c.Title,
		Description:   c.Description,
		HoursRequired: c.HoursRequired,
		IssuedAt:      NewDateTime(c.IssuedAt),
	}
}

// FromCompletion maps a completion outcome.
func FromCompletion(c service.Completion) CompletionResponse {
	resp := CompletionResponse{
		Registration: FromRegistrationDetail(service.RegistrationDetail{
			Registration: c.Registration,
			Event:        c.Event,
		}),
		TotalHours: c.User.TotalHours,
		Rating:     c.User.Rating,
	}
	if c.Certificate != nil {
		cert := FromCertificate(*c.Certificate)
		resp.Certificate = &cert
	}
	return resp
}

// FromProfile maps a full profile aggregate.
func FromProfile(p service.Profile) ProfileResponse {
	resp := ProfileResponse{
		UserResponse:  FromUser(p.User, p.RoleName),
		Registrations: make([]RegistrationResponse, 0, len(p.Registrations)),
		Certificates:  make([]CertificateResponse, 0, len(p.Certificates)),
	}
	if p.Role != nil {
		resp.Role = &RoleResponse{ID: p.Role.ID, Name: p.Role.Name}
	}
	for _, r := range p.Registrations {
		resp.Registrations = append(resp.Registrations, FromRegistrationDetail(r))
	}
	for _, c := range p.Certificates {
		resp.Certificates = append(resp.Certificates, FromCertificate(c))
	}
	return resp
}
