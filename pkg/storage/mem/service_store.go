/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mem

import (
	"context"

	"github.com/google/uuid"

	"github.com/trustbloc/credvault/pkg/entity"
)

// ServiceStore manages DID document services in memory.
type ServiceStore struct {
	provider *Provider
}

// Upsert saves the service, generating an id when the caller supplied
// none, and returns the id written.
func (s *ServiceStore) Upsert(_ context.Context, service *entity.Service) (string, error) {
	p := s.provider

	p.mu.Lock()
	defer p.mu.Unlock()

	saved := *service
	if saved.ID == "" {
		saved.ID = uuid.NewString()
	}

	p.services[saved.ID] = &saved

	return saved.ID, nil
}

// FindByID looks up a service by id.
func (s *ServiceStore) FindByID(_ context.Context, id string) (*entity.Service, error) {
	p := s.provider

	p.mu.RLock()
	defer p.mu.RUnlock()

	service, ok := p.services[id]
	if !ok {
		return nil, entity.ErrDataNotFound
	}

	out := *service

	return &out, nil
}

// FindByIdentifierDID returns every service attached to the DID.
func (s *ServiceStore) FindByIdentifierDID(_ context.Context, did string) ([]*entity.Service, error) {
	p := s.provider

	p.mu.RLock()
	defer p.mu.RUnlock()

	var services []*entity.Service

	for _, service := range p.services {
		if service.IdentifierDID == did {
			out := *service
			services = append(services, &out)
		}
	}

	return services, nil
}

// DeleteByID removes the service.
func (s *ServiceStore) DeleteByID(_ context.Context, id string) error {
	p := s.provider

	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.services, id)

	return nil
}
