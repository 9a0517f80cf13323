package domain

import "time"

// EventStatus represents lifecycle states for an event.
type EventStatus string

const (
	EventStatusActive EventStatus = "active"
)

// Event is a volunteer activity published by an NGO.
type Event struct {
	ID            int         `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	NGOID         int         `json:"ngo_id"`
	ScheduledAt   time.Time   `json:"scheduled_at"`
	Location      string      `json:"location"`
	MaxVolunteers int         `json:"max_volunteers"`
	DurationHours int         `json:"duration_hours"`
	Status        EventStatus `json:"status"`
}

// NGO is a charitable organization hosting events.
type NGO struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
