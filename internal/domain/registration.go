package domain

import "time"

// RegistrationStatus represents lifecycle states for an event sign-up.
type RegistrationStatus string

const (
	RegistrationStatusRegistered RegistrationStatus = "registered"
	RegistrationStatusCompleted  RegistrationStatus = "completed"
)

// Registration links a volunteer to an event. Unique per (event, volunteer) pair.
type Registration struct {
	ID           int                `json:"id"`
	EventID      int                `json:"event_id"`
	VolunteerID  int                `json:"volunteer_id"`
	RegisteredAt time.Time          `json:"registered_at"`
	HoursEarned  int                `json:"hours_earned"`
	Status       RegistrationStatus `json:"status"`
	// Rating is the coordinator's mark (1..5) set when the registration is
	// completed; nil until then.
	Rating *float64 `json:"rating,omitempty"`
}

// Certificate is issued to a volunteer when a registration is completed.
type Certificate struct {
	ID            int       `json:"id"`
	VolunteerID   int       `json:"volunteer_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	HoursRequired int       `json:"hours_required"`
	IssuedAt      time.Time `json:"issued_at"`
}

// Volunteer is the row shape of the standalone volunteers write path. It is
// not connected to User records in the session store.
type Volunteer struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"created_at"`
}
