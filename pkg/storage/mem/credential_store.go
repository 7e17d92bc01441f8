/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mem

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/trustbloc/credvault/pkg/entity"
)

// CredentialStore manages credentials in memory.
type CredentialStore struct {
	provider *Provider
}

// Upsert saves the credential keyed by content hash. The stored id
// survives re-saves of the same hash.
func (s *CredentialStore) Upsert(_ context.Context, credential *entity.Credential) (*entity.Credential, error) {
	p := s.provider

	p.mu.Lock()
	defer p.mu.Unlock()

	saved := *credential

	if existing, ok := p.credentials[credential.Hash]; ok {
		saved.ID = existing.ID
	} else if saved.ID == "" {
		saved.ID = uuid.NewString()
	}

	p.credentials[saved.Hash] = &saved

	out := saved

	return &out, nil
}

// FindByHash looks up a credential by hash within an organization.
func (s *CredentialStore) FindByHash(_ context.Context, organizationID, hash string) (*entity.Credential, error) {
	p := s.provider

	p.mu.RLock()
	defer p.mu.RUnlock()

	credential, ok := p.credentials[hash]
	if !ok || credential.OrganizationID != organizationID {
		return nil, entity.ErrDataNotFound
	}

	out := *credential

	return &out, nil
}

// FindByID looks up a credential by its secondary id within an
// organization.
func (s *CredentialStore) FindByID(_ context.Context, organizationID, id string) (*entity.Credential, error) {
	p := s.provider

	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, credential := range p.credentials {
		if credential.ID == id && credential.OrganizationID == organizationID {
			out := *credential

			return &out, nil
		}
	}

	return nil, entity.ErrDataNotFound
}

// FindByHashes returns the credentials matching the hashes within an
// organization; unmatched hashes are skipped.
func (s *CredentialStore) FindByHashes(_ context.Context, organizationID string,
	hashes []string) ([]*entity.Credential, error) {
	if len(hashes) == 0 {
		return nil, nil
	}

	p := s.provider

	p.mu.RLock()
	defer p.mu.RUnlock()

	var credentials []*entity.Credential

	for _, hash := range hashes {
		if credential, ok := p.credentials[hash]; ok && credential.OrganizationID == organizationID {
			out := *credential
			credentials = append(credentials, &out)
		}
	}

	return credentials, nil
}

// List pages through an organization's credentials, newest issuance
// first, optionally narrowed by issuer DID.
func (s *CredentialStore) List(_ context.Context, organizationID string, filter *entity.CredentialFilter,
	page *entity.Page) ([]*entity.Credential, error) {
	p := s.provider

	p.mu.RLock()
	defer p.mu.RUnlock()

	var credentials []*entity.Credential

	for _, credential := range p.credentials {
		if credential.OrganizationID != organizationID {
			continue
		}

		if filter != nil && filter.IssuerDID != "" && credential.IssuerID != filter.IssuerDID {
			continue
		}

		out := *credential
		credentials = append(credentials, &out)
	}

	sort.Slice(credentials, func(i, j int) bool {
		return credentials[i].IssuanceDate > credentials[j].IssuanceDate
	})

	if page.Offset >= len(credentials) {
		return nil, nil
	}

	credentials = credentials[page.Offset:]

	if len(credentials) > page.Limit {
		credentials = credentials[:page.Limit]
	}

	return credentials, nil
}

// DeleteByHash removes the credential and its dependents in the same
// order as the mongodb backend. Deleting a missing hash succeeds.
func (s *CredentialStore) DeleteByHash(_ context.Context, organizationID, hash string) error {
	p := s.provider

	p.mu.Lock()
	defer p.mu.Unlock()

	credential, ok := p.credentials[hash]
	if !ok || credential.OrganizationID != organizationID {
		return nil
	}

	delete(p.claims, hash)

	for id, link := range p.credentialMessages {
		if link.CredentialHash == hash {
			delete(p.credentialMessages, id)
		}
	}

	for id, link := range p.presentationCredentials {
		if link.CredentialHash == hash {
			delete(p.presentationCredentials, id)
		}
	}

	delete(p.encryptedCredentials, credential.ID)
	delete(p.credentials, hash)

	return nil
}
