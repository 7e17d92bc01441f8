/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mem

import (
	"context"

	"github.com/trustbloc/credvault/pkg/entity"
)

// KeyStore manages crypto keys in memory.
type KeyStore struct {
	provider *Provider
}

// Upsert saves the key keyed by kid.
func (s *KeyStore) Upsert(_ context.Context, key *entity.CryptoKey) error {
	p := s.provider

	p.mu.Lock()
	defer p.mu.Unlock()

	saved := *key
	p.cryptoKeys[key.KID] = &saved

	return nil
}

// FindByKID looks up a key by kid.
func (s *KeyStore) FindByKID(_ context.Context, kid string) (*entity.CryptoKey, error) {
	p := s.provider

	p.mu.RLock()
	defer p.mu.RUnlock()

	key, ok := p.cryptoKeys[kid]
	if !ok {
		return nil, entity.ErrDataNotFound
	}

	out := *key

	return &out, nil
}

// FindByIdentifierDID returns every key attached to the DID.
func (s *KeyStore) FindByIdentifierDID(_ context.Context, did string) ([]*entity.CryptoKey, error) {
	p := s.provider

	p.mu.RLock()
	defer p.mu.RUnlock()

	var keys []*entity.CryptoKey

	for _, key := range p.cryptoKeys {
		if key.IdentifierDID == did {
			out := *key
			keys = append(keys, &out)
		}
	}

	return keys, nil
}

// DeleteByKID removes the key.
func (s *KeyStore) DeleteByKID(_ context.Context, kid string) error {
	p := s.provider

	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.cryptoKeys, kid)

	return nil
}

// PrivateKeyStore manages private keys in memory.
type PrivateKeyStore struct {
	provider *Provider
}

// Upsert saves the key keyed by alias.
func (s *PrivateKeyStore) Upsert(_ context.Context, key *entity.PrivateKey) error {
	p := s.provider

	p.mu.Lock()
	defer p.mu.Unlock()

	saved := *key
	p.privateKeys[key.Alias] = &saved

	return nil
}

// FindByAlias looks up a key by alias.
func (s *PrivateKeyStore) FindByAlias(_ context.Context, alias string) (*entity.PrivateKey, error) {
	p := s.provider

	p.mu.RLock()
	defer p.mu.RUnlock()

	key, ok := p.privateKeys[alias]
	if !ok {
		return nil, entity.ErrDataNotFound
	}

	out := *key

	return &out, nil
}

// DeleteByAlias removes the key.
func (s *PrivateKeyStore) DeleteByAlias(_ context.Context, alias string) error {
	p := s.provider

	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.privateKeys, alias)

	return nil
}
