/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package message stores DIDComm-style messages and the credential and
// presentation attachments they carry.
package message

//go:generate mockgen -destination message_service_mocks_test.go -package message_test -source=message_service.go

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/credvault/internal/logfields"
	"github.com/trustbloc/credvault/pkg/entity"
	"github.com/trustbloc/credvault/pkg/restapi/resterr"
	"github.com/trustbloc/credvault/pkg/tenancy"
)

var logger = log.New("message-service")

type messageStore interface {
	Upsert(ctx context.Context, message *entity.Message) error
	FindByID(ctx context.Context, id string) (*entity.Message, error)
	DeleteByID(ctx context.Context, id string) error
}

type linkStore interface {
	UpsertCredentialMessage(ctx context.Context, link *entity.CredentialMessage) error
	CredentialHashesByMessage(ctx context.Context, messageID string) ([]string, error)
	UpsertPresentationMessage(ctx context.Context, link *entity.PresentationMessage) error
	PresentationHashesByMessage(ctx context.Context, messageID string) ([]string, error)
}

type credentialStore interface {
	FindByHashes(ctx context.Context, organizationID string, hashes []string) ([]*entity.Credential, error)
}

type presentationStore interface {
	FindByHash(ctx context.Context, tenantID, hash string) (*entity.Presentation, error)
}

// Config holds the dependencies of Service.
type Config struct {
	MessageStore      messageStore
	LinkStore         linkStore
	CredentialStore   credentialStore
	PresentationStore presentationStore
}

// Service manages messages for the tenant in the request scope.
type Service struct {
	messageStore      messageStore
	linkStore         linkStore
	credentialStore   credentialStore
	presentationStore presentationStore
}

// Attachments names the stored artifacts a message carries.
type Attachments struct {
	CredentialHashes   []string
	PresentationHashes []string
}

// Detail is a stored message with its attachments hydrated.
type Detail struct {
	Message       *entity.Message        `json:"message"`
	Credentials   []*entity.Credential   `json:"credentials,omitempty"`
	Presentations []*entity.Presentation `json:"presentations,omitempty"`
}

// New creates Service.
func New(config *Config) *Service {
	return &Service{
		messageStore:      config.MessageStore,
		linkStore:         config.LinkStore,
		credentialStore:   config.CredentialStore,
		presentationStore: config.PresentationStore,
	}
}

// Save persists the message and links its attachments. A missing id is
// generated. Re-saving the same id updates the message in place and
// adds any new links.
func (s *Service) Save(ctx context.Context, message *entity.Message,
	attachments *Attachments) (*entity.Message, error) {
	if _, err := tenancy.FromContext(ctx); err != nil {
		return nil, err
	}

	if message.Type == "" {
		return nil, resterr.NewValidationError(fmt.Errorf("message type is required"))
	}

	saved := *message
	if saved.ID == "" {
		saved.ID = uuid.NewString()
	}

	if err := s.messageStore.Upsert(ctx, &saved); err != nil {
		return nil, err
	}

	if attachments != nil {
		for _, hash := range attachments.CredentialHashes {
			if err := s.linkStore.UpsertCredentialMessage(ctx, &entity.CredentialMessage{
				CredentialHash: hash,
				MessageID:      saved.ID,
			}); err != nil {
				return nil, err
			}
		}

		for _, hash := range attachments.PresentationHashes {
			if err := s.linkStore.UpsertPresentationMessage(ctx, &entity.PresentationMessage{
				PresentationHash: hash,
				MessageID:        saved.ID,
			}); err != nil {
				return nil, err
			}
		}
	}

	logger.Infoc(ctx, "message saved", logfields.WithMessageID(saved.ID))

	return &saved, nil
}

// Get returns the message with its linked credentials and
// presentations hydrated, scoped to the caller's organization and
// tenant.
func (s *Service) Get(ctx context.Context, id string) (*Detail, error) {
	scope, err := tenancy.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	message, err := s.messageStore.FindByID(ctx, id)
	if errors.Is(err, entity.ErrDataNotFound) {
		return nil, resterr.NewNotFoundError(resterr.MessageNotFound, err)
	}

	if err != nil {
		return nil, err
	}

	credentialHashes, err := s.linkStore.CredentialHashesByMessage(ctx, id)
	if err != nil {
		return nil, err
	}

	credentials, err := s.credentialStore.FindByHashes(ctx, scope.OrganizationID, credentialHashes)
	if err != nil {
		return nil, err
	}

	presentationHashes, err := s.linkStore.PresentationHashesByMessage(ctx, id)
	if err != nil {
		return nil, err
	}

	var presentations []*entity.Presentation

	for _, hash := range presentationHashes {
		presentation, findErr := s.presentationStore.FindByHash(ctx, scope.TenantID, hash)
		if errors.Is(findErr, entity.ErrDataNotFound) {
			// Linked presentation belongs to another tenant.
			continue
		}

		if findErr != nil {
			return nil, findErr
		}

		presentations = append(presentations, presentation)
	}

	return &Detail{
		Message:       message,
		Credentials:   credentials,
		Presentations: presentations,
	}, nil
}

// Delete removes the message and its attachment links. Deleting a
// missing id succeeds.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := tenancy.FromContext(ctx); err != nil {
		return err
	}

	if err := s.messageStore.DeleteByID(ctx, id); err != nil {
		return err
	}

	logger.Infoc(ctx, "message deleted", logfields.WithMessageID(id))

	return nil
}
