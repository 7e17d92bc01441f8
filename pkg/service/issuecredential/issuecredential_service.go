/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package issuecredential orchestrates the credential lifecycle: issue
// through the identity-agent, persist the artifact with its encrypted
// twin and claim index, read, list, verify and delete.
package issuecredential

//go:generate mockgen -destination issuecredential_service_mocks_test.go -package issuecredential_test -source=issuecredential_service.go -mock_names issuerResolver=MockIssuerResolver,agentClient=MockAgentClient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/credvault/internal/logfields"
	"github.com/trustbloc/credvault/pkg/agent"
	"github.com/trustbloc/credvault/pkg/dataprotect"
	"github.com/trustbloc/credvault/pkg/entity"
	"github.com/trustbloc/credvault/pkg/restapi/resterr"
	"github.com/trustbloc/credvault/pkg/tenancy"
)

var logger = log.New("issuecredential-service")

type issuerResolver interface {
	ResolveIssuer(ctx context.Context, ref *entity.IssuerRef) (*entity.Identifier, error)
}

type credentialStore interface {
	Upsert(ctx context.Context, credential *entity.Credential) (*entity.Credential, error)
	FindByHash(ctx context.Context, organizationID, hash string) (*entity.Credential, error)
	FindByID(ctx context.Context, organizationID, id string) (*entity.Credential, error)
	List(ctx context.Context, organizationID string, filter *entity.CredentialFilter,
		page *entity.Page) ([]*entity.Credential, error)
	DeleteByHash(ctx context.Context, organizationID, hash string) error
}

type encryptedCredentialStore interface {
	Upsert(ctx context.Context, encrypted *entity.EncryptedCredential) error
}

type claimStore interface {
	ReplaceForCredential(ctx context.Context, credentialID string, claims []*entity.VCClaim) error
}

type agentClient interface {
	IssueCredential(ctx context.Context, issuerDID string, claims map[string]interface{}) (json.RawMessage, error)
	VerifyCredential(ctx context.Context, artifact json.RawMessage) (*agent.VerifyCredentialResponse, error)
}

type dataProtector interface {
	Encrypt(data []byte) (*dataprotect.Payload, error)
}

// Config holds the dependencies of Service.
type Config struct {
	IssuerResolver           issuerResolver
	CredentialStore          credentialStore
	EncryptedCredentialStore encryptedCredentialStore
	ClaimStore               claimStore
	AgentClient              agentClient
	DataProtector            dataProtector
}

// Service manages the credential lifecycle for the organization in the
// request scope.
type Service struct {
	issuerResolver           issuerResolver
	credentialStore          credentialStore
	encryptedCredentialStore encryptedCredentialStore
	claimStore               claimStore
	agentClient              agentClient
	dataProtector            dataProtector
}

// New creates Service.
func New(config *Config) *Service {
	return &Service{
		issuerResolver:           config.IssuerResolver,
		credentialStore:          config.CredentialStore,
		encryptedCredentialStore: config.EncryptedCredentialStore,
		claimStore:               config.ClaimStore,
		agentClient:              config.AgentClient,
		dataProtector:            config.DataProtector,
	}
}

// Create resolves the issuing identifier, has the agent sign the
// claims, and persists the resulting artifact.
func (s *Service) Create(ctx context.Context, claims map[string]interface{},
	issuerRef *entity.IssuerRef) (*entity.Credential, error) {
	if len(claims) == 0 {
		return nil, resterr.NewValidationError(fmt.Errorf("credential claims must not be empty"))
	}

	identifier, err := s.issuerResolver.ResolveIssuer(ctx, issuerRef)
	if err != nil {
		return nil, err
	}

	artifact, err := s.agentClient.IssueCredential(ctx, identifier.DID, claims)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, resterr.NewSigningTimeoutError(err)
		}

		return nil, resterr.NewUpstreamFailureError(fmt.Errorf("agent issue credential: %w", err))
	}

	return s.Save(ctx, artifact)
}

// Save persists a signed artifact: the credential row keyed by content
// hash, the encrypted twin keyed by credential id, and the claim index.
// Saving the same artifact twice is idempotent.
func (s *Service) Save(ctx context.Context, artifact json.RawMessage) (*entity.Credential, error) {
	scope, err := tenancy.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	parsed, err := entity.ParseCredential(artifact)
	if err != nil {
		return nil, resterr.NewValidationError(err)
	}

	hash, err := entity.ContentHash(artifact)
	if err != nil {
		return nil, resterr.NewValidationError(err)
	}

	saved, err := s.credentialStore.Upsert(ctx, &entity.Credential{
		Hash:           hash,
		ID:             parsed.ID,
		OrganizationID: scope.OrganizationID,
		IssuerID:       parsed.IssuerID,
		SubjectID:      parsed.SubjectID,
		Context:        parsed.Context,
		Type:           parsed.Type,
		IssuanceDate:   parsed.IssuanceDate,
		ExpirationDate: parsed.ExpirationDate,
		Raw:            artifact,
	})
	if err != nil {
		return nil, err
	}

	if err = s.saveEncryptedTwin(ctx, saved.ID, artifact); err != nil {
		return nil, err
	}

	if err = s.indexClaims(ctx, saved, parsed); err != nil {
		return nil, err
	}

	logger.Infoc(ctx, "credential saved",
		logfields.WithOrganizationID(scope.OrganizationID), logfields.WithCredentialHash(hash))

	return saved, nil
}

// Get returns the credential with the given hash.
func (s *Service) Get(ctx context.Context, hash string) (*entity.Credential, error) {
	scope, err := tenancy.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	credential, err := s.credentialStore.FindByHash(ctx, scope.OrganizationID, hash)
	if errors.Is(err, entity.ErrDataNotFound) {
		return nil, resterr.NewNotFoundError(resterr.CredentialNotFound, err)
	}

	if err != nil {
		return nil, err
	}

	return credential, nil
}

// List pages through the organization's credentials.
func (s *Service) List(ctx context.Context, filter *entity.CredentialFilter,
	page *entity.Page) ([]*entity.Credential, error) {
	scope, err := tenancy.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	if page == nil {
		page = entity.DefaultPage()
	}

	if err = page.Validate(); err != nil {
		return nil, resterr.NewValidationError(err)
	}

	return s.credentialStore.List(ctx, scope.OrganizationID, filter, page)
}

// Delete removes the credential and everything hanging off it. Deleting
// a missing hash succeeds.
func (s *Service) Delete(ctx context.Context, hash string) error {
	scope, err := tenancy.FromContext(ctx)
	if err != nil {
		return err
	}

	if err = s.credentialStore.DeleteByHash(ctx, scope.OrganizationID, hash); err != nil {
		return err
	}

	logger.Infoc(ctx, "credential deleted",
		logfields.WithOrganizationID(scope.OrganizationID), logfields.WithCredentialHash(hash))

	return nil
}

// Verify passes the signed artifact to the agent for verification.
func (s *Service) Verify(ctx context.Context, artifact json.RawMessage) (*agent.VerifyCredentialResponse, error) {
	result, err := s.agentClient.VerifyCredential(ctx, artifact)
	if err != nil {
		return nil, resterr.NewUpstreamFailureError(fmt.Errorf("agent verify credential: %w", err))
	}

	return result, nil
}

func (s *Service) saveEncryptedTwin(ctx context.Context, credentialID string, artifact json.RawMessage) error {
	payload, err := s.dataProtector.Encrypt(artifact)
	if err != nil {
		return fmt.Errorf("encrypt credential: %w", err)
	}

	return s.encryptedCredentialStore.Upsert(ctx, &entity.EncryptedCredential{
		Version:      1,
		CredentialID: credentialID,
		CipherText:   payload.CipherText,
		IV:           payload.IV,
		Tag:          payload.Tag,
		Key:          payload.Key,
		Algorithm:    payload.Algorithm,
	})
}

// indexClaims flattens the credential subject into one row per claim.
// Scalar values are stored verbatim; nested objects and arrays are
// stored JSON-encoded with the IsObj marker set.
func (s *Service) indexClaims(ctx context.Context, credential *entity.Credential,
	parsed *entity.ParsedCredential) error {
	claims := make([]*entity.VCClaim, 0, len(parsed.Subject))

	claimContext := make([]string, 0, len(parsed.Context))

	for _, item := range parsed.Context {
		if str, ok := item.(string); ok {
			claimContext = append(claimContext, str)
		}
	}

	for claimType, value := range parsed.Subject {
		if claimType == "id" {
			continue
		}

		claimValue, isObj, err := claimValueString(value)
		if err != nil {
			return err
		}

		claims = append(claims, &entity.VCClaim{
			Hash:           entity.ClaimHash(credential.Hash, claimType, claimValue),
			IssuerID:       credential.IssuerID,
			SubjectID:      credential.SubjectID,
			CredentialID:   credential.Hash,
			Context:        claimContext,
			CredentialType: credential.Type,
			Type:           claimType,
			Value:          claimValue,
			IsObj:          isObj,
		})
	}

	return s.claimStore.ReplaceForCredential(ctx, credential.Hash, claims)
}

func claimValueString(value interface{}) (string, bool, error) {
	switch v := value.(type) {
	case string:
		return v, false, nil
	case bool:
		return fmt.Sprintf("%t", v), false, nil
	case float64:
		return trimFloat(v), false, nil
	case nil:
		return "", false, nil
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return "", false, fmt.Errorf("encode claim value: %w", err)
		}

		return string(encoded), true, nil
	}
}

func trimFloat(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}

	return fmt.Sprintf("%g", v)
}
