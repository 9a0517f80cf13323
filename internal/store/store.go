// Package store holds the per-session table set backing the mock API. Each
// client session owns an isolated Store resolved through a Registry; all
// reads and writes on one Store run under its mutex, so check-then-insert
// uniqueness rules hold within a session.
package store

import (
	"sync"

	"github.com/spec-kit/volunteer-hub/internal/domain"
)

// Tables is the serializable state of one session store: the six collections
// plus the per-collection id counters.
type Tables struct {
	Users         []domain.User         `json:"users"`
	Events        []domain.Event        `json:"events"`
	Registrations []domain.Registration `json:"registrations"`
	Certificates  []domain.Certificate  `json:"certificates"`
	Roles         []domain.Role         `json:"roles"`
	NGOs          []domain.NGO          `json:"ngos"`

	NextUserID         int `json:"next_user_id"`
	NextEventID        int `json:"next_event_id"`
	NextRegistrationID int `json:"next_registration_id"`
	NextCertificateID  int `json:"next_certificate_id"`
}

// Store wraps Tables with mutual exclusion.
type Store struct {
	mu sync.Mutex
	t  Tables
}

// New builds a Store over the given tables.
func New(t Tables) *Store {
	return &Store{t: t}
}

// Snapshot returns a deep copy of the tables, safe to serialize.
func (s *Store) Snapshot() Tables {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.t
	snap.Users = append([]domain.User(nil), s.t.Users...)
	snap.Events = append([]domain.Event(nil), s.t.Events...)
	snap.Registrations = append([]domain.Registration(nil), s.t.Registrations...)
	snap.Certificates = append([]domain.Certificate(nil), s.t.Certificates...)
	snap.Roles = append([]domain.Role(nil), s.t.Roles...)
	snap.NGOs = append([]domain.NGO(nil), s.t.NGOs...)
	return snap
}

// Roles returns all roles in insertion order.
func (s *Store) Roles() []domain.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Role(nil), s.t.Roles...)
}

// RoleByID returns the first role with the given id.
func (s *Store) RoleByID(id int) (domain.Role, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.t.Roles {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Role{}, false
}

// RoleByName returns the first role with the given name.
func (s *Store) RoleByName(name string) (domain.Role, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.t.Roles {
		if r.Name == name {
			return r, true
		}
	}
	return domain.Role{}, false
}

// NGOs returns all organizations in insertion order.
func (s *Store) NGOs() []domain.NGO {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.NGO(nil), s.t.NGOs...)
}

// NGOByID returns the first organization with the given id.
func (s *Store) NGOByID(id int) (domain.NGO, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.t.NGOs {
		if n.ID == id {
			return n, true
		}
	}
	return domain.NGO{}, false
}

// Events returns all events in insertion order.
func (s *Store) Events() []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Event(nil), s.t.Events...)
}

// EventByID returns the first event with the given id.
func (s *Store) EventByID(id int) (domain.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.t.Events {
		if e.ID == id {
			return e, true
		}
	}
	return domain.Event{}, false
}

// CreateEvent assigns the next event id and appends the event.
func (s *Store) CreateEvent(e domain.Event) domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.t.NextEventID
	s.t.NextEventID++
	s.t.Events = append(s.t.Events, e)
	return e
}

// CreateUser inserts a user after checking email uniqueness. The check and
// the insert run under one lock acquisition.
func (s *Store) CreateUser(u domain.User) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.t.Users {
		if existing.Email == u.Email {
			return domain.User{}, domain.ErrEmailTaken
		}
	}
	u.ID = s.t.NextUserID
	s.t.NextUserID++
	s.t.Users = append(s.t.Users, u)
	return u, nil
}

// UserByEmail returns the first user with the given email, exact match.
func (s *Store) UserByEmail(email string) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.t.Users {
		if u.Email == email {
			return u, true
		}
	}
	return domain.User{}, false
}

// UserByID returns the first user with the given id.
func (s *Store) UserByID(id int) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.t.Users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}

// UpdateUser replaces the stored user with the same id.
func (s *Store) UpdateUser(u domain.User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.t.Users {
		if s.t.Users[i].ID == u.ID {
			s.t.Users[i] = u
			return true
		}
	}
	return false
}

// CreateRegistration inserts a sign-up after checking the (event, volunteer)
// pair is not already present.
func (s *Store) CreateRegistration(r domain.Registration) (domain.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.t.Registrations {
		if existing.EventID == r.EventID && existing.VolunteerID == r.VolunteerID {
			return domain.Registration{}, domain.ErrAlreadyRegistered
		}
	}
	r.ID = s.t.NextRegistrationID
	s.t.NextRegistrationID++
	s.t.Registrations = append(s.t.Registrations, r)
	return r, nil
}

// RegistrationByID returns the first registration with the given id.
func (s *Store) RegistrationByID(id int) (domain.Registration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.t.Registrations {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Registration{}, false
}

// RegistrationsByVolunteer returns the volunteer's sign-ups in insertion order.
func (s *Store) RegistrationsByVolunteer(volunteerID int) []domain.Registration {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Registration
	for _, r := range s.t.Registrations {
		if r.VolunteerID == volunteerID {
			out = append(out, r)
		}
	}
	return out
}

// UpdateRegistration replaces the stored registration with the same id.
func (s *Store) UpdateRegistration(r domain.Registration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.t.Registrations {
		if s.t.Registrations[i].ID == r.ID {
			s.t.Registrations[i] = r
			return true
		}
	}
	return false
}

// RegistrationCount reports the total number of stored sign-ups.
func (s *Store) RegistrationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.t.Registrations)
}

// CreateCertificate assigns the next certificate id and appends it.
func (s *Store) CreateCertificate(c domain.Certificate) domain.Certificate {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.t.NextCertificateID
	s.t.NextCertificateID++
	s.t.Certificates = append(s.t.Certificates, c)
	return c
}

// CertificatesByVolunteer returns the volunteer's certificates in insertion order.
func (s *Store) CertificatesByVolunteer(volunteerID int) []domain.Certificate {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Certificate
	for _, c := range s.t.Certificates {
		if c.VolunteerID == volunteerID {
			out = append(out, c)
		}
	}
	return out
}
