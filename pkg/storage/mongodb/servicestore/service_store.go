/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package servicestore persists DID document service endpoints in
// mongodb.
package servicestore

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trustbloc/credvault/pkg/entity"
	"github.com/trustbloc/credvault/pkg/storage/mongodb"
)

type mongoDocument struct {
	ID              string   `bson:"_id"`
	Type            string   `bson:"type"`
	ServiceEndpoint []string `bson:"service_endpoint"`
	Description     string   `bson:"description,omitempty"`
	IdentifierDID   string   `bson:"identifier_did,omitempty"`
	TenantID        string   `bson:"tenant_id"`
}

// Store manages services in mongodb.
type Store struct {
	mongoClient *mongodb.Client
}

// New creates Store and its indexes.
func New(mongoClient *mongodb.Client) (*Store, error) {
	s := &Store{mongoClient: mongoClient}

	if err := s.migrate(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) migrate() error {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout()
	defer cancel()

	_, err := s.mongoClient.Database().Collection(mongodb.ServicesCollection).Indexes().
		CreateMany(ctxWithTimeout, []mongo.IndexModel{
			{
				Keys: bson.D{{Key: "identifier_did", Value: 1}},
			},
			{
				Keys: bson.D{{Key: "tenant_id", Value: 1}},
			},
		})

	return err
}

// Upsert saves the service, generating an id when the caller supplied
// none, and returns the id written.
func (s *Store) Upsert(ctx context.Context, service *entity.Service) (string, error) {
	collection := s.mongoClient.Database().Collection(mongodb.ServicesCollection)

	id := service.ID
	if id == "" {
		id = uuid.NewString()
	}

	_, err := collection.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{
			"type":             service.Type,
			"service_endpoint": service.ServiceEndpoint,
			"description":      service.Description,
			"identifier_did":   service.IdentifierDID,
			"tenant_id":        service.TenantID,
		},
	}, options.Update().SetUpsert(true))
	if err != nil {
		return "", fmt.Errorf("service upsert failed: %w", err)
	}

	return id, nil
}

// FindByID looks up a service by id.
func (s *Store) FindByID(ctx context.Context, id string) (*entity.Service, error) {
	collection := s.mongoClient.Database().Collection(mongodb.ServicesCollection)

	doc := &mongoDocument{}

	err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("service find failed: %w", err)
	}

	return docToService(doc), nil
}

// FindByIdentifierDID returns every service attached to the DID.
func (s *Store) FindByIdentifierDID(ctx context.Context, did string) ([]*entity.Service, error) {
	collection := s.mongoClient.Database().Collection(mongodb.ServicesCollection)

	cursor, err := collection.Find(ctx, bson.M{"identifier_did": did})
	if err != nil {
		return nil, fmt.Errorf("service list failed: %w", err)
	}

	defer func() {
		_ = cursor.Close(ctx) //nolint: errcheck
	}()

	var docs []mongoDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("service list decode failed: %w", err)
	}

	services := make([]*entity.Service, 0, len(docs))

	for i := range docs {
		services = append(services, docToService(&docs[i]))
	}

	return services, nil
}

// DeleteByID removes the service. Deleting a missing id succeeds.
func (s *Store) DeleteByID(ctx context.Context, id string) error {
	collection := s.mongoClient.Database().Collection(mongodb.ServicesCollection)

	if _, err := collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("service delete failed: %w", err)
	}

	return nil
}

func docToService(doc *mongoDocument) *entity.Service {
	return &entity.Service{
		ID:              doc.ID,
		Type:            doc.Type,
		ServiceEndpoint: doc.ServiceEndpoint,
		Description:     doc.Description,
		IdentifierDID:   doc.IdentifierDID,
		TenantID:        doc.TenantID,
	}
}
