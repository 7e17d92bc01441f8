/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mem

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/trustbloc/credvault/pkg/entity"
)

// IdentifierStore manages identifiers in memory.
type IdentifierStore struct {
	provider *Provider
}

// Upsert saves the identifier keyed by DID and returns the persisted
// record. The stored id and creation time survive re-saves.
func (s *IdentifierStore) Upsert(_ context.Context, identifier *entity.Identifier) (*entity.Identifier, error) {
	p := s.provider

	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now().UTC()

	saved := *identifier
	saved.UpdatedAt = now

	if existing, ok := p.identifiers[identifier.DID]; ok {
		saved.ID = existing.ID
		saved.CreatedAt = existing.CreatedAt
	} else {
		if saved.ID == "" {
			saved.ID = uuid.NewString()
		}

		saved.CreatedAt = now

		p.insertSeq++
		p.insertion[saved.DID] = p.insertSeq
	}

	p.identifiers[saved.DID] = &saved

	out := saved

	return &out, nil
}

// FindByDID looks up an identifier by DID.
func (s *IdentifierStore) FindByDID(_ context.Context, did string) (*entity.Identifier, error) {
	p := s.provider

	p.mu.RLock()
	defer p.mu.RUnlock()

	identifier, ok := p.identifiers[did]
	if !ok {
		return nil, entity.ErrDataNotFound
	}

	out := *identifier

	return &out, nil
}

// FindByAlias looks up an identifier by alias within an organization.
func (s *IdentifierStore) FindByAlias(_ context.Context, organizationID, alias string) (*entity.Identifier, error) {
	p := s.provider

	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, identifier := range p.identifiers {
		if identifier.OrganizationID == organizationID && identifier.Alias == alias {
			out := *identifier

			return &out, nil
		}
	}

	return nil, entity.ErrDataNotFound
}

// List returns every identifier of the organization, oldest first.
func (s *IdentifierStore) List(_ context.Context, organizationID string) ([]*entity.Identifier, error) {
	p := s.provider

	p.mu.RLock()
	defer p.mu.RUnlock()

	var identifiers []*entity.Identifier

	for _, identifier := range p.identifiers {
		if identifier.OrganizationID == organizationID {
			out := *identifier
			identifiers = append(identifiers, &out)
		}
	}

	sort.Slice(identifiers, func(i, j int) bool {
		return p.insertion[identifiers[i].DID] < p.insertion[identifiers[j].DID]
	})

	return identifiers, nil
}

// UpdateAlias renames the identifier. Missing DID is a no-op.
func (s *IdentifierStore) UpdateAlias(_ context.Context, did, alias string) error {
	p := s.provider

	p.mu.Lock()
	defer p.mu.Unlock()

	if identifier, ok := p.identifiers[did]; ok {
		identifier.Alias = alias
		identifier.UpdatedAt = time.Now().UTC()
	}

	return nil
}

// DeleteByDID removes the identifier, severing key and service links.
func (s *IdentifierStore) DeleteByDID(_ context.Context, did string) error {
	p := s.provider

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, key := range p.cryptoKeys {
		if key.IdentifierDID == did {
			key.IdentifierDID = ""
		}
	}

	for _, service := range p.services {
		if service.IdentifierDID == did {
			service.IdentifierDID = ""
		}
	}

	delete(p.identifiers, did)
	delete(p.insertion, did)

	return nil
}
