/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mem

import (
	"context"
	"sort"

	"github.com/trustbloc/credvault/pkg/entity"
)

// PresentationStore manages presentations in memory.
type PresentationStore struct {
	provider *Provider
}

// Upsert saves the presentation keyed by content hash.
func (s *PresentationStore) Upsert(_ context.Context, presentation *entity.Presentation) error {
	p := s.provider

	p.mu.Lock()
	defer p.mu.Unlock()

	saved := *presentation
	p.presentations[saved.Hash] = &saved

	return nil
}

// FindByHash looks up a presentation by hash within a tenant.
func (s *PresentationStore) FindByHash(_ context.Context, tenantID, hash string) (*entity.Presentation, error) {
	p := s.provider

	p.mu.RLock()
	defer p.mu.RUnlock()

	presentation, ok := p.presentations[hash]
	if !ok || presentation.TenantID != tenantID {
		return nil, entity.ErrDataNotFound
	}

	out := *presentation

	return &out, nil
}

// List pages through a tenant's presentations, newest issuance first.
func (s *PresentationStore) List(_ context.Context, tenantID string, page *entity.Page) ([]*entity.Presentation, error) {
	p := s.provider

	p.mu.RLock()
	defer p.mu.RUnlock()

	var presentations []*entity.Presentation

	for _, presentation := range p.presentations {
		if presentation.TenantID == tenantID {
			out := *presentation
			presentations = append(presentations, &out)
		}
	}

	sort.Slice(presentations, func(i, j int) bool {
		return presentations[i].IssuanceDate > presentations[j].IssuanceDate
	})

	if page.Offset >= len(presentations) {
		return nil, nil
	}

	presentations = presentations[page.Offset:]

	if len(presentations) > page.Limit {
		presentations = presentations[:page.Limit]
	}

	return presentations, nil
}

// DeleteByHash removes the presentation and its link rows. Deleting a
// missing hash succeeds.
func (s *PresentationStore) DeleteByHash(_ context.Context, tenantID, hash string) error {
	p := s.provider

	p.mu.Lock()
	defer p.mu.Unlock()

	presentation, ok := p.presentations[hash]
	if !ok || presentation.TenantID != tenantID {
		return nil
	}

	for id, link := range p.presentationMessages {
		if link.PresentationHash == hash {
			delete(p.presentationMessages, id)
		}
	}

	for id, link := range p.presentationVerifiers {
		if link.PresentationHash == hash {
			delete(p.presentationVerifiers, id)
		}
	}

	for id, link := range p.presentationCredentials {
		if link.PresentationHash == hash {
			delete(p.presentationCredentials, id)
		}
	}

	delete(p.presentations, hash)

	return nil
}

// MessageStore manages messages in memory.
type MessageStore struct {
	provider *Provider
}

// Upsert saves the message keyed by id.
func (s *MessageStore) Upsert(_ context.Context, message *entity.Message) error {
	p := s.provider

	p.mu.Lock()
	defer p.mu.Unlock()

	saved := *message
	p.messages[saved.ID] = &saved

	return nil
}

// FindByID looks up a message by id.
func (s *MessageStore) FindByID(_ context.Context, id string) (*entity.Message, error) {
	p := s.provider

	p.mu.RLock()
	defer p.mu.RUnlock()

	message, ok := p.messages[id]
	if !ok {
		return nil, entity.ErrDataNotFound
	}

	out := *message

	return &out, nil
}

// DeleteByID removes the message and its credential/presentation links.
func (s *MessageStore) DeleteByID(_ context.Context, id string) error {
	p := s.provider

	p.mu.Lock()
	defer p.mu.Unlock()

	for key, link := range p.credentialMessages {
		if link.MessageID == id {
			delete(p.credentialMessages, key)
		}
	}

	for key, link := range p.presentationMessages {
		if link.MessageID == id {
			delete(p.presentationMessages, key)
		}
	}

	delete(p.messages, id)

	return nil
}
