package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/volunteer-hub/internal/auth"
	"github.com/spec-kit/volunteer-hub/internal/config"
	"github.com/spec-kit/volunteer-hub/internal/domain"
	"github.com/spec-kit/volunteer-hub/internal/events"
	"github.com/spec-kit/volunteer-hub/internal/store"
)

// AuthService coordinates user registration, login and profile lookup.
type AuthService struct {
	stores     store.Registry
	tokens     *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
	now        func() time.Time
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, stores store.Registry, dispatcher events.Dispatcher) *AuthService {
	return &AuthService{
		stores:     stores,
		tokens:     auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		dispatcher: dispatcher,
		bcryptCost: cfg.BcryptCost,
		now:        time.Now,
	}
}

// RegisterUser creates a new account. Name, email and password are required
// as given, without trimming; roleID zero selects the volunteer role.
func (s *AuthService) RegisterUser(ctx context.Context, name, email, password string, roleID int, city string) (int, error) {
	if name == "" || email == "" || password == "" {
		return 0, domain.ErrRequiredFields
	}

	sid, st, err := sessionStore(ctx, s.stores)
	if err != nil {
		return 0, err
	}

	if roleID == 0 {
		if role, ok := st.RoleByName(domain.RoleVolunteer); ok {
			roleID = role.ID
		}
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return 0, domain.NewInternalError(err)
	}

	user, err := st.CreateUser(domain.User{
		Name:           name,
		Email:          email,
		HashedPassword: hash,
		RoleID:         roleID,
		City:           city,
		TotalHours:     0,
		Rating:         0.0,
		CreatedAt:      s.now(),
	})
	if err != nil {
		return 0, err
	}
	if err := s.stores.Save(ctx, sid, st); err != nil {
		return 0, domain.NewInternalError(err)
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventUserRegistered,
		SessionID: sid,
		Timestamp: s.now(),
		Payload: events.UserRegisteredPayload{
			UserID: user.ID,
			Email:  user.Email,
			RoleID: user.RoleID,
		},
	})

	return user.ID, nil
}

// LoginUser authenticates by email and password. The failure message never
// distinguishes an unknown email from a wrong password.
func (s *AuthService) LoginUser(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrLoginFields
	}

	_, st, err := sessionStore(ctx, s.stores)
	if err != nil {
		return nil, err
	}

	user, ok := st.UserByEmail(email)
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	if err := auth.ComparePassword(user.HashedPassword, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	roleName := domain.RoleVolunteer
	if role, found := st.RoleByID(user.RoleID); found {
		roleName = role.Name
	}

	token, expiresAt, err := s.tokens.GenerateToken(user.ID, roleName)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	return &LoginResult{User: user, RoleName: roleName, Token: token, ExpiresAt: expiresAt}, nil
}

// Profile loads a user with role, sign-ups and certificates.
func (s *AuthService) Profile(ctx context.Context, userID int) (*Profile, error) {
	_, st, err := sessionStore(ctx, s.stores)
	if err != nil {
		return nil, err
	}

	user, ok := st.UserByID(userID)
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	profile := &Profile{
		User:     user,
		RoleName: domain.RoleVolunteer,
	}
	if role, found := st.RoleByID(user.RoleID); found {
		profile.Role = &role
		profile.RoleName = role.Name
	}

	for _, reg := range st.RegistrationsByVolunteer(userID) {
		detail := RegistrationDetail{Registration: reg}
		if event, found := st.EventByID(reg.EventID); found {
			detail.Event = &event
		}
		profile.Registrations = append(profile.Registrations, detail)
	}
	profile.Certificates = st.CertificatesByVolunteer(userID)

	return profile, nil
}

// ResolveUserID extracts the user id from a login token.
func (s *AuthService) ResolveUserID(token string) (int, error) {
	claims, err := s.tokens.ParseToken(token)
	if err != nil {
		return 0, domain.ErrInvalidToken
	}
	return claims.UserID, nil
}
