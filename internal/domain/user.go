package domain

import "time"

// User is a registered participant. Most users carry the volunteer role;
// coordinators and admins share the same record shape.
type User struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"hashed_password"`
	RoleID         int       `json:"role_id"`
	City           string    `json:"city"`
	TotalHours     int       `json:"total_hours"`
	Rating         float64   `json:"rating"`
	CreatedAt      time.Time `json:"created_at"`
}

// Role is a fixed access level: admin, coordinator or volunteer.
type Role struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Role names present in the seed data.
const (
	RoleAdmin       = "admin"
	RoleCoordinator = "coordinator"
	RoleVolunteer   = "volunteer"
)
