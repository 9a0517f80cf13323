package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered        EventType = "user_registered"
	EventSignupCreated         EventType = "event_signup_created"
	EventRegistrationCompleted EventType = "registration_completed"
	EventCertificateIssued     EventType = "certificate_issued"
)

// Event represents a domain event emitted by services. SessionID names the
// session store the change happened in.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SessionID string      `json:"session_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
	RoleID int    `json:"role_id"`
}

// SignupCreatedPayload payload.
type SignupCreatedPayload struct {
	RegistrationID int `json:"registration_id"`
	EventID        int `json:"event_id"`
	VolunteerID    int `json:"volunteer_id"`
}

// RegistrationCompletedPayload payload.
type RegistrationCompletedPayload struct {
	RegistrationID int      `json:"registration_id"`
	VolunteerID    int      `json:"volunteer_id"`
	HoursEarned    int      `json:"hours_earned"`
	Rating         *float64 `json:"rating,omitempty"`
}

// CertificateIssuedPayload payload.
type CertificateIssuedPayload struct {
	CertificateID int    `json:"certificate_id"`
	VolunteerID   int    `json:"volunteer_id"`
	Title         string `json:"title"`
}
