package service

import (
	"context"
	"time"

	"github.com/spec-kit/volunteer-hub/internal/domain"
	"github.com/spec-kit/volunteer-hub/internal/session"
	"github.com/spec-kit/volunteer-hub/internal/store"
)

// EventDetail is an event joined with its organization's name. The name is
// empty when the referenced NGO does not exist.
type EventDetail struct {
	Event   domain.Event
	NGOName string
}

// RegistrationDetail is a sign-up joined with its event, when the event
// exists; referential integrity is not enforced at sign-up time.
type RegistrationDetail struct {
	Registration domain.Registration
	Event        *domain.Event
}

// LoginResult bundles everything a successful login returns.
type LoginResult struct {
	User      domain.User
	RoleName  string
	Token     string
	ExpiresAt time.Time
}

// Profile aggregates a user with role, sign-ups and certificates.
type Profile struct {
	User          domain.User
	Role          *domain.Role
	RoleName      string
	Registrations []RegistrationDetail
	Certificates  []domain.Certificate
}

// Completion reports the outcome of confirming participation.
type Completion struct {
	Registration domain.Registration
	Event        *domain.Event
	Certificate  *domain.Certificate
	User         domain.User
}

// sessionStore resolves the calling session's store from the registry.
func sessionStore(ctx context.Context, stores store.Registry) (string, *store.Store, error) {
	sid, ok := session.FromContext(ctx)
	if !ok {
		return "", nil, domain.NewInternalError(session.ErrNoSession)
	}
	st, err := stores.Get(ctx, sid)
	if err != nil {
		return "", nil, domain.NewInternalError(err)
	}
	return sid, st, nil
}
