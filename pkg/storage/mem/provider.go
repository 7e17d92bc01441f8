/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package mem is the in-memory storage backend. It carries the same
// contracts as the mongodb stores, keyed the same way, and backs the
// "mem" database type as well as the service unit tests.
package mem

import (
	"sync"

	"github.com/trustbloc/credvault/pkg/entity"
)

// Provider holds every in-memory store over one shared lock, which
// keeps cross-store operations such as the credential delete cascade
// consistent.
type Provider struct {
	mu sync.RWMutex

	identifiers          map[string]*entity.Identifier          // DID -> identifier
	cryptoKeys           map[string]*entity.CryptoKey           // kid -> key
	privateKeys          map[string]*entity.PrivateKey          // alias -> key
	services             map[string]*entity.Service             // id -> service
	credentials          map[string]*entity.Credential          // hash -> credential
	encryptedCredentials map[string]*entity.EncryptedCredential // credential id -> twin
	claims               map[string][]*entity.VCClaim           // credential id -> claims
	presentations        map[string]*entity.Presentation        // hash -> presentation
	messages             map[string]*entity.Message             // id -> message

	credentialMessages      map[string]*entity.CredentialMessage
	presentationMessages    map[string]*entity.PresentationMessage
	presentationVerifiers   map[string]*entity.PresentationVerifier
	presentationCredentials map[string]*entity.PresentationCredential

	insertSeq uint64
	insertion map[string]uint64 // DID -> insertion order, for List
}

// NewProvider creates Provider with empty stores.
func NewProvider() *Provider {
	return &Provider{
		identifiers:             make(map[string]*entity.Identifier),
		cryptoKeys:              make(map[string]*entity.CryptoKey),
		privateKeys:             make(map[string]*entity.PrivateKey),
		services:                make(map[string]*entity.Service),
		credentials:             make(map[string]*entity.Credential),
		encryptedCredentials:    make(map[string]*entity.EncryptedCredential),
		claims:                  make(map[string][]*entity.VCClaim),
		presentations:           make(map[string]*entity.Presentation),
		messages:                make(map[string]*entity.Message),
		credentialMessages:      make(map[string]*entity.CredentialMessage),
		presentationMessages:    make(map[string]*entity.PresentationMessage),
		presentationVerifiers:   make(map[string]*entity.PresentationVerifier),
		presentationCredentials: make(map[string]*entity.PresentationCredential),
		insertion:               make(map[string]uint64),
	}
}

// IdentifierStore returns the identifier store view.
func (p *Provider) IdentifierStore() *IdentifierStore {
	return &IdentifierStore{provider: p}
}

// KeyStore returns the crypto key store view.
func (p *Provider) KeyStore() *KeyStore {
	return &KeyStore{provider: p}
}

// PrivateKeyStore returns the private key store view.
func (p *Provider) PrivateKeyStore() *PrivateKeyStore {
	return &PrivateKeyStore{provider: p}
}

// ServiceStore returns the service store view.
func (p *Provider) ServiceStore() *ServiceStore {
	return &ServiceStore{provider: p}
}

// CredentialStore returns the credential store view.
func (p *Provider) CredentialStore() *CredentialStore {
	return &CredentialStore{provider: p}
}

// EncryptedCredentialStore returns the encrypted twin store view.
func (p *Provider) EncryptedCredentialStore() *EncryptedCredentialStore {
	return &EncryptedCredentialStore{provider: p}
}

// ClaimStore returns the claim store view.
func (p *Provider) ClaimStore() *ClaimStore {
	return &ClaimStore{provider: p}
}

// PresentationStore returns the presentation store view.
func (p *Provider) PresentationStore() *PresentationStore {
	return &PresentationStore{provider: p}
}

// MessageStore returns the message store view.
func (p *Provider) MessageStore() *MessageStore {
	return &MessageStore{provider: p}
}

// LinkStore returns the link store view.
func (p *Provider) LinkStore() *LinkStore {
	return &LinkStore{provider: p}
}

func linkID(a, b string) string {
	return a + "|" + b
}
