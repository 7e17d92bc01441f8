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

// EncryptedCredentialStore manages encrypted twins in memory.
type EncryptedCredentialStore struct {
	provider *Provider
}

// Upsert saves the twin keyed by credential id.
func (s *EncryptedCredentialStore) Upsert(_ context.Context, encrypted *entity.EncryptedCredential) error {
	p := s.provider

	p.mu.Lock()
	defer p.mu.Unlock()

	saved := *encrypted

	if existing, ok := p.encryptedCredentials[encrypted.CredentialID]; ok {
		saved.ID = existing.ID
	} else if saved.ID == "" {
		saved.ID = uuid.NewString()
	}

	p.encryptedCredentials[saved.CredentialID] = &saved

	return nil
}

// FindByCredentialID looks up the twin of a credential.
func (s *EncryptedCredentialStore) FindByCredentialID(_ context.Context,
	credentialID string) (*entity.EncryptedCredential, error) {
	p := s.provider

	p.mu.RLock()
	defer p.mu.RUnlock()

	encrypted, ok := p.encryptedCredentials[credentialID]
	if !ok {
		return nil, entity.ErrDataNotFound
	}

	out := *encrypted

	return &out, nil
}

// DeleteByCredentialID removes the twin.
func (s *EncryptedCredentialStore) DeleteByCredentialID(_ context.Context, credentialID string) error {
	p := s.provider

	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.encryptedCredentials, credentialID)

	return nil
}

// ClaimStore manages credential claims in memory.
type ClaimStore struct {
	provider *Provider
}

// ReplaceForCredential swaps the credential's claim set.
func (s *ClaimStore) ReplaceForCredential(_ context.Context, credentialID string, claims []*entity.VCClaim) error {
	p := s.provider

	p.mu.Lock()
	defer p.mu.Unlock()

	if len(claims) == 0 {
		delete(p.claims, credentialID)

		return nil
	}

	saved := make([]*entity.VCClaim, 0, len(claims))

	for _, claim := range claims {
		c := *claim
		c.CredentialID = credentialID
		saved = append(saved, &c)
	}

	p.claims[credentialID] = saved

	return nil
}

// FindByCredentialID returns every claim indexed for the credential.
func (s *ClaimStore) FindByCredentialID(_ context.Context, credentialID string) ([]*entity.VCClaim, error) {
	p := s.provider

	p.mu.RLock()
	defer p.mu.RUnlock()

	claims := make([]*entity.VCClaim, 0, len(p.claims[credentialID]))

	for _, claim := range p.claims[credentialID] {
		out := *claim
		claims = append(claims, &out)
	}

	return claims, nil
}

// DeleteByCredentialID drops every claim of the credential.
func (s *ClaimStore) DeleteByCredentialID(_ context.Context, credentialID string) error {
	p := s.provider

	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.claims, credentialID)

	return nil
}
