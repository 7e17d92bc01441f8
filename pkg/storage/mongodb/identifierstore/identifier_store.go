/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package identifierstore manages organization identifiers in mongodb.
package identifierstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trustbloc/credvault/pkg/entity"
	"github.com/trustbloc/credvault/pkg/storage/mongodb"
)

type mongoDocument struct {
	DID             string    `bson:"_id"`
	ID              string    `bson:"id"`
	OrganizationID  string    `bson:"organization_id"`
	Provider        string    `bson:"provider"`
	Alias           string    `bson:"alias"`
	ControllerKeyID string    `bson:"controller_key_id,omitempty"`
	CreatedAt       time.Time `bson:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at"`
}

// Store manages identifiers in mongodb.
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

	_, err := s.mongoClient.Database().Collection(mongodb.IdentifiersCollection).Indexes().
		CreateMany(ctxWithTimeout, []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "id", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys: bson.D{{Key: "organization_id", Value: 1}},
			},
			{
				Keys:    bson.D{{Key: "organization_id", Value: 1}, {Key: "alias", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		})

	return err
}

// Upsert saves the identifier keyed by DID and returns the persisted
// record. Re-saving the same DID updates metadata in place; the stored
// id and creation time never change.
func (s *Store) Upsert(ctx context.Context, identifier *entity.Identifier) (*entity.Identifier, error) {
	collection := s.mongoClient.Database().Collection(mongodb.IdentifiersCollection)

	now := time.Now().UTC()

	update := bson.M{
		"$set": bson.M{
			"organization_id":   identifier.OrganizationID,
			"provider":          identifier.Provider,
			"alias":             identifier.Alias,
			"controller_key_id": identifier.ControllerKeyID,
			"updated_at":        now,
		},
		"$setOnInsert": bson.M{
			"id":         newIDOrDefault(identifier.ID),
			"created_at": now,
		},
	}

	doc := &mongoDocument{}

	err := collection.FindOneAndUpdate(ctx,
		bson.M{"_id": identifier.DID},
		update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(doc)
	if err != nil {
		return nil, fmt.Errorf("identifier upsert failed: %w", err)
	}

	return docToIdentifier(doc), nil
}

// FindByDID looks up an identifier by its globally unique DID.
func (s *Store) FindByDID(ctx context.Context, did string) (*entity.Identifier, error) {
	collection := s.mongoClient.Database().Collection(mongodb.IdentifiersCollection)

	doc := &mongoDocument{}

	err := collection.FindOne(ctx, bson.M{"_id": did}).Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("identifier find failed: %w", err)
	}

	return docToIdentifier(doc), nil
}

// FindByAlias looks up an identifier by alias within an organization.
func (s *Store) FindByAlias(ctx context.Context, organizationID, alias string) (*entity.Identifier, error) {
	collection := s.mongoClient.Database().Collection(mongodb.IdentifiersCollection)

	doc := &mongoDocument{}

	err := collection.FindOne(ctx, bson.M{
		"organization_id": organizationID,
		"alias":           alias,
	}).Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("identifier find failed: %w", err)
	}

	return docToIdentifier(doc), nil
}

// List returns every identifier owned by the organization, oldest
// first. The result is read fresh on every call; default-identifier
// resolution depends on it (no caching).
func (s *Store) List(ctx context.Context, organizationID string) ([]*entity.Identifier, error) {
	collection := s.mongoClient.Database().Collection(mongodb.IdentifiersCollection)

	cursor, err := collection.Find(ctx,
		bson.M{"organization_id": organizationID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("identifier list failed: %w", err)
	}

	defer func() {
		_ = cursor.Close(ctx) //nolint: errcheck
	}()

	var docs []mongoDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("identifier list decode failed: %w", err)
	}

	identifiers := make([]*entity.Identifier, 0, len(docs))

	for i := range docs {
		identifiers = append(identifiers, docToIdentifier(&docs[i]))
	}

	return identifiers, nil
}

// UpdateAlias renames the identifier. Missing DID is a no-op; callers
// read back the record and surface not-found themselves.
func (s *Store) UpdateAlias(ctx context.Context, did, alias string) error {
	collection := s.mongoClient.Database().Collection(mongodb.IdentifiersCollection)

	_, err := collection.UpdateOne(ctx,
		bson.M{"_id": did},
		bson.M{"$set": bson.M{"alias": alias, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return fmt.Errorf("identifier alias update failed: %w", err)
	}

	return nil
}

// DeleteByDID removes the identifier and severs key/service links
// (set-null, not cascade). Deleting a missing DID succeeds.
func (s *Store) DeleteByDID(ctx context.Context, did string) error {
	db := s.mongoClient.Database()

	// FK semantics: crypto_keys and services reference the identifier
	// with on-delete set-null.
	severLink := bson.M{"$set": bson.M{"identifier_did": ""}}

	if _, err := db.Collection(mongodb.CryptoKeysCollection).
		UpdateMany(ctx, bson.M{"identifier_did": did}, severLink); err != nil {
		return fmt.Errorf("identifier delete: sever keys failed: %w", err)
	}

	if _, err := db.Collection(mongodb.ServicesCollection).
		UpdateMany(ctx, bson.M{"identifier_did": did}, severLink); err != nil {
		return fmt.Errorf("identifier delete: sever services failed: %w", err)
	}

	if _, err := db.Collection(mongodb.IdentifiersCollection).
		DeleteOne(ctx, bson.M{"_id": did}); err != nil {
		return fmt.Errorf("identifier delete failed: %w", err)
	}

	return nil
}

func newIDOrDefault(id string) string {
	if id != "" {
		return id
	}

	return uuid.NewString()
}

func docToIdentifier(doc *mongoDocument) *entity.Identifier {
	return &entity.Identifier{
		ID:              doc.ID,
		DID:             doc.DID,
		OrganizationID:  doc.OrganizationID,
		Provider:        doc.Provider,
		Alias:           doc.Alias,
		ControllerKeyID: doc.ControllerKeyID,
		CreatedAt:       doc.CreatedAt,
		UpdatedAt:       doc.UpdatedAt,
	}
}
