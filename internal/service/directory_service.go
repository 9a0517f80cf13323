package service

import (
	"context"

	"github.com/spec-kit/volunteer-hub/internal/domain"
	"github.com/spec-kit/volunteer-hub/internal/store"
)

// DirectoryService serves the seeded reference collections.
type DirectoryService struct {
	stores store.Registry
}

// NewDirectoryService builds the service.
func NewDirectoryService(stores store.Registry) *DirectoryService {
	return &DirectoryService{stores: stores}
}

// Roles returns all roles in insertion order.
func (s *DirectoryService) Roles(ctx context.Context) ([]domain.Role, error) {
	_, st, err := sessionStore(ctx, s.stores)
	if err != nil {
		return nil, err
	}
	return st.Roles(), nil
}

// NGOs returns all organizations in insertion order.
func (s *DirectoryService) NGOs(ctx context.Context) ([]domain.NGO, error) {
	_, st, err := sessionStore(ctx, s.stores)
	if err != nil {
		return nil, err
	}
	return st.NGOs(), nil
}
