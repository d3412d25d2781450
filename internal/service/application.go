package service

import (
	"context"

	"github.com/hirebase/hirebase-go/internal/model"
)

// ApplicationStore is the read slice of the persistence layer for submitted
// applications.
type ApplicationStore interface {
	ListAll(ctx context.Context) ([]model.Application, error)
}

// ApplicationService lists submitted applications. A single read query, no
// business logic.
type ApplicationService struct {
	store ApplicationStore
}

// NewApplicationService creates a new ApplicationService.
func NewApplicationService(store ApplicationStore) *ApplicationService {
	return &ApplicationService{store: store}
}

// ListApplications returns all submitted applications. The result is never
// nil so the wire representation is always a JSON array.
func (s *ApplicationService) ListApplications(ctx context.Context) ([]model.Application, error) {
	applications, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if applications == nil {
		applications = []model.Application{}
	}
	return applications, nil
}
