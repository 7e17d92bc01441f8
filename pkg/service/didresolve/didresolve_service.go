/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package didresolve assembles DID documents for vault-managed DIDs
// from stored identifiers, keys and services, falling back to the
// identity-agent's generic resolver for foreign DIDs.
package didresolve

//go:generate mockgen -destination didresolve_service_mocks_test.go -package didresolve_test -source=didresolve_service.go -mock_names agentResolver=MockAgentResolver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/credvault/internal/logfields"
	"github.com/trustbloc/credvault/pkg/entity"
	"github.com/trustbloc/credvault/pkg/restapi/resterr"
)

var logger = log.New("didresolve-service")

type identifierStore interface {
	FindByDID(ctx context.Context, did string) (*entity.Identifier, error)
}

type keyStore interface {
	FindByIdentifierDID(ctx context.Context, did string) ([]*entity.CryptoKey, error)
}

type serviceStore interface {
	FindByIdentifierDID(ctx context.Context, did string) ([]*entity.Service, error)
}

type agentResolver interface {
	ResolveDID(ctx context.Context, did string) (json.RawMessage, error)
}

// Config holds the dependencies of Service.
type Config struct {
	IdentifierStore identifierStore
	KeyStore        keyStore
	ServiceStore    serviceStore
	AgentResolver   agentResolver
	WebDIDDomain    string
}

// Service resolves DIDs.
type Service struct {
	identifierStore identifierStore
	keyStore        keyStore
	serviceStore    serviceStore
	agentResolver   agentResolver
	webDIDDomain    string
}

// VerificationMethod is one entry of a DID document's
// verificationMethod array.
type VerificationMethod struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Controller   string `json:"controller"`
	PublicKeyHex string `json:"publicKeyHex,omitempty"`
}

// DocumentService is one entry of a DID document's service array. A
// single endpoint is serialized unwrapped, matching common did:web
// documents in the wild.
type DocumentService struct {
	ID              string      `json:"id"`
	Type            string      `json:"type"`
	ServiceEndpoint interface{} `json:"serviceEndpoint"`
}

// Document is a DID document assembled from vault storage.
type Document struct {
	Context            []string             `json:"@context"`
	ID                 string               `json:"id"`
	VerificationMethod []VerificationMethod `json:"verificationMethod"`
	Service            []DocumentService    `json:"service,omitempty"`
}

// New creates Service.
func New(config *Config) *Service {
	return &Service{
		identifierStore: config.IdentifierStore,
		keyStore:        config.KeyStore,
		serviceStore:    config.ServiceStore,
		agentResolver:   config.AgentResolver,
		webDIDDomain:    config.WebDIDDomain,
	}
}

// WebDID builds the did:web DID served at
// /{organizationId}[/{alias}]/did.json.
func (s *Service) WebDID(organizationID, alias string) string {
	did := fmt.Sprintf("did:web:%s:%s", s.webDIDDomain, organizationID)

	if alias != "" {
		did = fmt.Sprintf("%s:%s", did, alias)
	}

	return did
}

// Resolve returns the DID document. Vault-managed DIDs are assembled
// locally; everything else goes through the agent's resolver. Both
// failure paths surface the same not-found error.
func (s *Service) Resolve(ctx context.Context, did string) (json.RawMessage, error) {
	document, err := s.resolveLocal(ctx, did)
	if err == nil {
		return document, nil
	}

	if !errors.Is(err, entity.ErrDataNotFound) {
		return nil, err
	}

	resolved, err := s.agentResolver.ResolveDID(ctx, did)
	if err != nil || len(resolved) == 0 {
		logger.Debugc(ctx, "DID not resolvable", logfields.WithDID(did), log.WithError(err))

		return nil, resterr.NewNotFoundError(resterr.DIDNotFound, entity.ErrDataNotFound)
	}

	return resolved, nil
}

func (s *Service) resolveLocal(ctx context.Context, did string) (json.RawMessage, error) {
	if _, err := s.identifierStore.FindByDID(ctx, did); err != nil {
		return nil, err
	}

	keys, err := s.keyStore.FindByIdentifierDID(ctx, did)
	if err != nil {
		return nil, err
	}

	services, err := s.serviceStore.FindByIdentifierDID(ctx, did)
	if err != nil {
		return nil, err
	}

	document := &Document{
		Context: []string{
			"https://www.w3.org/ns/did/v1",
			"https://w3id.org/security/suites/ed25519-2020/v1",
		},
		ID:                 did,
		VerificationMethod: make([]VerificationMethod, 0, len(keys)),
	}

	for _, key := range keys {
		document.VerificationMethod = append(document.VerificationMethod, VerificationMethod{
			ID:           fmt.Sprintf("%s#%s", did, key.KID),
			Type:         methodType(key.Type),
			Controller:   did,
			PublicKeyHex: key.PublicKeyHex,
		})
	}

	for _, service := range services {
		document.Service = append(document.Service, DocumentService{
			ID:              fmt.Sprintf("%s#%s", did, service.ID),
			Type:            service.Type,
			ServiceEndpoint: unwrapEndpoint(service.ServiceEndpoint),
		})
	}

	return json.Marshal(document)
}

func methodType(keyType entity.KeyType) string {
	if keyType == entity.KeyTypeEd25519 {
		return "Ed25519VerificationKey2020"
	}

	return "JsonWebKey2020"
}

func unwrapEndpoint(endpoints []string) interface{} {
	if len(endpoints) == 1 {
		return endpoints[0]
	}

	return endpoints
}
