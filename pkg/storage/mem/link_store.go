/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mem

import (
	"context"

	"github.com/trustbloc/credvault/pkg/entity"
)

// LinkStore manages join rows in memory.
type LinkStore struct {
	provider *Provider
}

// UpsertCredentialMessage links a credential to a message.
func (s *LinkStore) UpsertCredentialMessage(_ context.Context, link *entity.CredentialMessage) error {
	p := s.provider

	p.mu.Lock()
	defer p.mu.Unlock()

	saved := *link
	p.credentialMessages[linkID(link.CredentialHash, link.MessageID)] = &saved

	return nil
}

// CredentialHashesByMessage returns the credential hashes linked to the
// message.
func (s *LinkStore) CredentialHashesByMessage(_ context.Context, messageID string) ([]string, error) {
	p := s.provider

	p.mu.RLock()
	defer p.mu.RUnlock()

	var hashes []string

	for _, link := range p.credentialMessages {
		if link.MessageID == messageID {
			hashes = append(hashes, link.CredentialHash)
		}
	}

	return hashes, nil
}

// UpsertPresentationMessage links a presentation to a message.
func (s *LinkStore) UpsertPresentationMessage(_ context.Context, link *entity.PresentationMessage) error {
	p := s.provider

	p.mu.Lock()
	defer p.mu.Unlock()

	saved := *link
	p.presentationMessages[linkID(link.PresentationHash, link.MessageID)] = &saved

	return nil
}

// PresentationHashesByMessage returns the presentation hashes linked to
// the message.
func (s *LinkStore) PresentationHashesByMessage(_ context.Context, messageID string) ([]string, error) {
	p := s.provider

	p.mu.RLock()
	defer p.mu.RUnlock()

	var hashes []string

	for _, link := range p.presentationMessages {
		if link.MessageID == messageID {
			hashes = append(hashes, link.PresentationHash)
		}
	}

	return hashes, nil
}

// ReplaceVerifiers swaps the presentation's verifier set.
func (s *LinkStore) ReplaceVerifiers(_ context.Context, presentationHash string, verifierDIDs []string) error {
	p := s.provider

	p.mu.Lock()
	defer p.mu.Unlock()

	for id, link := range p.presentationVerifiers {
		if link.PresentationHash == presentationHash {
			delete(p.presentationVerifiers, id)
		}
	}

	for _, did := range verifierDIDs {
		p.presentationVerifiers[linkID(presentationHash, did)] = &entity.PresentationVerifier{
			PresentationHash: presentationHash,
			VerifierDID:      did,
		}
	}

	return nil
}

// VerifiersByPresentation returns the verifier DIDs of the
// presentation.
func (s *LinkStore) VerifiersByPresentation(_ context.Context, presentationHash string) ([]string, error) {
	p := s.provider

	p.mu.RLock()
	defer p.mu.RUnlock()

	var dids []string

	for _, link := range p.presentationVerifiers {
		if link.PresentationHash == presentationHash {
			dids = append(dids, link.VerifierDID)
		}
	}

	return dids, nil
}

// ReplaceCredentials swaps the presentation's credential set.
func (s *LinkStore) ReplaceCredentials(_ context.Context, presentationHash string, credentialHashes []string) error {
	p := s.provider

	p.mu.Lock()
	defer p.mu.Unlock()

	for id, link := range p.presentationCredentials {
		if link.PresentationHash == presentationHash {
			delete(p.presentationCredentials, id)
		}
	}

	for _, hash := range credentialHashes {
		p.presentationCredentials[linkID(presentationHash, hash)] = &entity.PresentationCredential{
			PresentationHash: presentationHash,
			CredentialHash:   hash,
		}
	}

	return nil
}

// CredentialHashesByPresentation returns the credential hashes the
// presentation carries.
func (s *LinkStore) CredentialHashesByPresentation(_ context.Context, presentationHash string) ([]string, error) {
	p := s.provider

	p.mu.RLock()
	defer p.mu.RUnlock()

	var hashes []string

	for _, link := range p.presentationCredentials {
		if link.PresentationHash == presentationHash {
			hashes = append(hashes, link.CredentialHash)
		}
	}

	return hashes, nil
}
