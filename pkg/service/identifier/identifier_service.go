/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package identifier manages organization DIDs: creation through the
// identity-agent, alias management, and issuer resolution policy.
package identifier

//go:generate mockgen -destination identifier_service_mocks_test.go -package identifier_test -source=identifier_service.go -mock_names identifierStore=MockIdentifierStore,keyStore=MockKeyStore,privateKeyStore=MockPrivateKeyStore,serviceStore=MockServiceStore,agentClient=MockAgentClient

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/credvault/internal/logfields"
	"github.com/trustbloc/credvault/pkg/agent"
	"github.com/trustbloc/credvault/pkg/entity"
	"github.com/trustbloc/credvault/pkg/restapi/resterr"
	"github.com/trustbloc/credvault/pkg/tenancy"
)

var logger = log.New("identifier-service")

const (
	// StatusCreated is returned by EnsureDefault when a new default
	// identifier was created.
	StatusCreated = "created"
	// StatusAlreadyExists is returned by EnsureDefault when the
	// organization already had at least one identifier.
	StatusAlreadyExists = "already exists"

	defaultProvider = "did:web"
)

type identifierStore interface {
	Upsert(ctx context.Context, identifier *entity.Identifier) (*entity.Identifier, error)
	FindByDID(ctx context.Context, did string) (*entity.Identifier, error)
	FindByAlias(ctx context.Context, organizationID, alias string) (*entity.Identifier, error)
	List(ctx context.Context, organizationID string) ([]*entity.Identifier, error)
	UpdateAlias(ctx context.Context, did, alias string) error
	DeleteByDID(ctx context.Context, did string) error
}

type keyStore interface {
	Upsert(ctx context.Context, key *entity.CryptoKey) error
}

type privateKeyStore interface {
	Upsert(ctx context.Context, key *entity.PrivateKey) error
}

type serviceStore interface {
	Upsert(ctx context.Context, service *entity.Service) (string, error)
}

type agentClient interface {
	CreateIdentifier(ctx context.Context, alias, provider string) (*agent.Identifier, error)
	SetAlias(ctx context.Context, did, alias string) error
}

// Config holds the dependencies of Service.
type Config struct {
	IdentifierStore identifierStore
	KeyStore        keyStore
	PrivateKeyStore privateKeyStore
	ServiceStore    serviceStore
	AgentClient     agentClient
	WebDIDDomain    string
}

// Service manages identifiers for the organization in the request
// scope.
type Service struct {
	identifierStore identifierStore
	keyStore        keyStore
	privateKeyStore privateKeyStore
	serviceStore    serviceStore
	agentClient     agentClient
	webDIDDomain    string
}

// New creates Service.
func New(config *Config) *Service {
	return &Service{
		identifierStore: config.IdentifierStore,
		keyStore:        config.KeyStore,
		privateKeyStore: config.PrivateKeyStore,
		serviceStore:    config.ServiceStore,
		agentClient:     config.AgentClient,
		webDIDDomain:    config.WebDIDDomain,
	}
}

// Create asks the agent for a new DID scoped to the calling
// organization and persists the identifier with its keys and services.
// The persisted record is read back so the caller always sees what the
// database holds.
func (s *Service) Create(ctx context.Context, alias string) (*entity.Identifier, error) {
	scope, err := tenancy.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	fullAlias := s.constructAlias(scope.OrganizationID, alias)

	created, err := s.agentClient.CreateIdentifier(ctx, fullAlias, defaultProvider)
	if err != nil {
		return nil, resterr.NewUpstreamFailureError(fmt.Errorf("agent create identifier: %w", err))
	}

	if _, err = s.identifierStore.Upsert(ctx, &entity.Identifier{
		DID:             created.DID,
		OrganizationID:  scope.OrganizationID,
		Provider:        created.Provider,
		Alias:           fullAlias,
		ControllerKeyID: created.ControllerKeyID,
	}); err != nil {
		return nil, err
	}

	for i := range created.Keys {
		key := created.Keys[i]
		key.IdentifierDID = created.DID

		if err = s.keyStore.Upsert(ctx, &key); err != nil {
			return nil, err
		}
	}

	// Standalone signing material the agent hands back is kept separate
	// from the DID document keys.
	for i := range created.PrivateKeys {
		privateKey := created.PrivateKeys[i]

		if err = s.privateKeyStore.Upsert(ctx, &privateKey); err != nil {
			return nil, err
		}
	}

	for i := range created.Services {
		service := created.Services[i]
		service.IdentifierDID = created.DID
		service.TenantID = scope.TenantID

		if _, err = s.serviceStore.Upsert(ctx, &service); err != nil {
			return nil, err
		}
	}

	logger.Infoc(ctx, "identifier created",
		logfields.WithOrganizationID(scope.OrganizationID), logfields.WithDID(created.DID))

	return s.identifierStore.FindByDID(ctx, created.DID)
}

// Get returns the identifier with the given DID, scoped to the calling
// organization.
func (s *Service) Get(ctx context.Context, did string) (*entity.Identifier, error) {
	scope, err := tenancy.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	identifier, err := s.identifierStore.FindByDID(ctx, did)
	if errors.Is(err, entity.ErrDataNotFound) {
		return nil, resterr.NewNotFoundError(resterr.IdentifierNotFound, err)
	}

	if err != nil {
		return nil, err
	}

	if identifier.OrganizationID != scope.OrganizationID {
		return nil, resterr.NewNotFoundError(resterr.IdentifierNotFound, entity.ErrDataNotFound)
	}

	return identifier, nil
}

// List returns the calling organization's identifiers, oldest first.
func (s *Service) List(ctx context.Context) ([]*entity.Identifier, error) {
	scope, err := tenancy.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	return s.identifierStore.List(ctx, scope.OrganizationID)
}

// UpdateAlias renames the identifier with the agent and the store, then
// reads the record back.
func (s *Service) UpdateAlias(ctx context.Context, did, alias string) (*entity.Identifier, error) {
	scope, err := tenancy.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	if _, err = s.Get(ctx, did); err != nil {
		return nil, err
	}

	fullAlias := s.constructAlias(scope.OrganizationID, alias)

	if err = s.agentClient.SetAlias(ctx, did, fullAlias); err != nil {
		return nil, resterr.NewUpstreamFailureError(fmt.Errorf("agent set alias: %w", err))
	}

	if err = s.identifierStore.UpdateAlias(ctx, did, fullAlias); err != nil {
		return nil, err
	}

	logger.Infoc(ctx, "identifier alias updated",
		logfields.WithDID(did), logfields.WithAlias(fullAlias))

	return s.identifierStore.FindByDID(ctx, did)
}

// EnsureDefault guarantees the organization has at least one
// identifier. The returned status is StatusCreated when one was just
// created, StatusAlreadyExists otherwise.
func (s *Service) EnsureDefault(ctx context.Context) (*entity.Identifier, string, error) {
	identifiers, err := s.List(ctx)
	if err != nil {
		return nil, "", err
	}

	if len(identifiers) > 0 {
		return identifiers[0], StatusAlreadyExists, nil
	}

	created, err := s.Create(ctx, "")
	if err != nil {
		return nil, "", err
	}

	return created, StatusCreated, nil
}

// ResolveIssuer picks the issuing identifier for a credential request.
// An explicit alias or DID wins; with neither, the organization must
// own exactly one identifier.
func (s *Service) ResolveIssuer(ctx context.Context, ref *entity.IssuerRef) (*entity.Identifier, error) {
	scope, err := tenancy.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	if !ref.IsEmpty() {
		return s.resolveExplicit(ctx, scope, ref)
	}

	identifiers, err := s.identifierStore.List(ctx, scope.OrganizationID)
	if err != nil {
		return nil, err
	}

	switch len(identifiers) {
	case 0:
		return nil, resterr.NewPolicyViolationError("No identifiers found for organization")
	case 1:
		return identifiers[0], nil
	default:
		return nil, resterr.NewPolicyViolationError(
			"Multiple identifiers found for organization. " +
				"Please specify issuerDid when organization has more than one identifier.")
	}
}

func (s *Service) resolveExplicit(ctx context.Context, scope *tenancy.Context,
	ref *entity.IssuerRef) (*entity.Identifier, error) {
	var (
		identifier *entity.Identifier
		err        error
	)

	if ref.Alias != "" {
		identifier, err = s.identifierStore.FindByAlias(ctx, scope.OrganizationID,
			s.constructAlias(scope.OrganizationID, ref.Alias))
	} else {
		identifier, err = s.identifierStore.FindByDID(ctx, ref.DID)
	}

	if errors.Is(err, entity.ErrDataNotFound) {
		return nil, resterr.NewNotFoundError(resterr.IdentifierNotFound, err)
	}

	if err != nil {
		return nil, err
	}

	if identifier.OrganizationID != scope.OrganizationID {
		return nil, resterr.NewNotFoundError(resterr.IdentifierNotFound, entity.ErrDataNotFound)
	}

	return identifier, nil
}

// constructAlias namespaces an alias as domain:orgID[:alias]. A caller
// alias already carrying the prefix is kept as is.
func (s *Service) constructAlias(organizationID, alias string) string {
	prefix := fmt.Sprintf("%s:%s", s.webDIDDomain, organizationID)

	if alias == "" {
		return prefix
	}

	if strings.HasPrefix(alias, prefix) {
		return alias
	}

	return fmt.Sprintf("%s:%s", prefix, alias)
}
