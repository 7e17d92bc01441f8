/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package presentation stores verifiable presentations together with
// their verifier and credential links.
package presentation

//go:generate mockgen -destination presentation_service_mocks_test.go -package presentation_test -source=presentation_service.go

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/credvault/internal/logfields"
	"github.com/trustbloc/credvault/pkg/entity"
	"github.com/trustbloc/credvault/pkg/restapi/resterr"
	"github.com/trustbloc/credvault/pkg/tenancy"
)

var logger = log.New("presentation-service")

type presentationStore interface {
	Upsert(ctx context.Context, presentation *entity.Presentation) error
	FindByHash(ctx context.Context, tenantID, hash string) (*entity.Presentation, error)
	List(ctx context.Context, tenantID string, page *entity.Page) ([]*entity.Presentation, error)
	DeleteByHash(ctx context.Context, tenantID, hash string) error
}

type linkStore interface {
	ReplaceVerifiers(ctx context.Context, presentationHash string, verifierDIDs []string) error
	VerifiersByPresentation(ctx context.Context, presentationHash string) ([]string, error)
	ReplaceCredentials(ctx context.Context, presentationHash string, credentialHashes []string) error
	CredentialHashesByPresentation(ctx context.Context, presentationHash string) ([]string, error)
}

// Config holds the dependencies of Service.
type Config struct {
	PresentationStore presentationStore
	LinkStore         linkStore
}

// Service manages presentations for the tenant in the request scope.
type Service struct {
	presentationStore presentationStore
	linkStore         linkStore
}

// Detail is a stored presentation with its links hydrated.
type Detail struct {
	Presentation     *entity.Presentation `json:"presentation"`
	Verifiers        []string             `json:"verifiers,omitempty"`
	CredentialHashes []string             `json:"credentialHashes,omitempty"`
}

// New creates Service.
func New(config *Config) *Service {
	return &Service{
		presentationStore: config.PresentationStore,
		linkStore:         config.LinkStore,
	}
}

// Save persists a signed presentation keyed by content hash. The
// verifier and credential link sets are replaced wholesale, so saving
// the same artifact twice is idempotent.
func (s *Service) Save(ctx context.Context, artifact json.RawMessage) (*entity.Presentation, error) {
	scope, err := tenancy.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	parsed, err := entity.ParsePresentation(artifact)
	if err != nil {
		return nil, resterr.NewValidationError(err)
	}

	hash, err := entity.ContentHash(artifact)
	if err != nil {
		return nil, resterr.NewValidationError(err)
	}

	presentation := &entity.Presentation{
		Hash:           hash,
		TenantID:       scope.TenantID,
		HolderID:       parsed.HolderID,
		ID:             parsed.ID,
		Context:        parsed.Context,
		Type:           parsed.Type,
		IssuanceDate:   parsed.IssuanceDate,
		ExpirationDate: parsed.ExpirationDate,
		Raw:            artifact,
	}

	if err = s.presentationStore.Upsert(ctx, presentation); err != nil {
		return nil, err
	}

	if err = s.linkStore.ReplaceVerifiers(ctx, hash, parsed.Verifiers); err != nil {
		return nil, err
	}

	credentialHashes, err := embeddedCredentialHashes(artifact)
	if err != nil {
		return nil, resterr.NewValidationError(err)
	}

	if err = s.linkStore.ReplaceCredentials(ctx, hash, credentialHashes); err != nil {
		return nil, err
	}

	logger.Infoc(ctx, "presentation saved",
		logfields.WithTenantID(scope.TenantID), logfields.WithPresentationHash(hash))

	return presentation, nil
}

// Get returns the presentation with its links hydrated.
func (s *Service) Get(ctx context.Context, hash string) (*Detail, error) {
	scope, err := tenancy.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	presentation, err := s.presentationStore.FindByHash(ctx, scope.TenantID, hash)
	if errors.Is(err, entity.ErrDataNotFound) {
		return nil, resterr.NewNotFoundError(resterr.PresentationNotFound, err)
	}

	if err != nil {
		return nil, err
	}

	verifiers, err := s.linkStore.VerifiersByPresentation(ctx, hash)
	if err != nil {
		return nil, err
	}

	credentialHashes, err := s.linkStore.CredentialHashesByPresentation(ctx, hash)
	if err != nil {
		return nil, err
	}

	return &Detail{
		Presentation:     presentation,
		Verifiers:        verifiers,
		CredentialHashes: credentialHashes,
	}, nil
}

// List pages through the tenant's presentations.
func (s *Service) List(ctx context.Context, page *entity.Page) ([]*entity.Presentation, error) {
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

	return s.presentationStore.List(ctx, scope.TenantID, page)
}

// Delete removes the presentation and its link rows. Deleting a missing
// hash succeeds.
func (s *Service) Delete(ctx context.Context, hash string) error {
	scope, err := tenancy.FromContext(ctx)
	if err != nil {
		return err
	}

	if err = s.presentationStore.DeleteByHash(ctx, scope.TenantID, hash); err != nil {
		return err
	}

	logger.Infoc(ctx, "presentation deleted",
		logfields.WithTenantID(scope.TenantID), logfields.WithPresentationHash(hash))

	return nil
}

// embeddedCredentialHashes content-addresses every credential embedded
// in the presentation, whether signed as objects or as JWT strings.
func embeddedCredentialHashes(artifact json.RawMessage) ([]string, error) {
	var doc struct {
		VerifiableCredential []json.RawMessage `json:"verifiableCredential"`
	}

	if err := json.Unmarshal(artifact, &doc); err != nil {
		// A presentation without an embedded credential array is valid.
		return nil, nil //nolint: nilerr
	}

	hashes := make([]string, 0, len(doc.VerifiableCredential))

	for _, raw := range doc.VerifiableCredential {
		hash, err := entity.ContentHash(raw)
		if err != nil {
			return nil, err
		}

		hashes = append(hashes, hash)
	}

	return hashes, nil
}
