/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package presentationstore persists verifiable presentations in
// mongodb, content-addressed by hash and scoped to a tenant.
package presentationstore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trustbloc/credvault/pkg/entity"
	"github.com/trustbloc/credvault/pkg/storage/mongodb"
)

type mongoDocument struct {
	Hash           string        `bson:"_id"`
	TenantID       string        `bson:"tenant_id"`
	HolderID       string        `bson:"holder_id"`
	ID             string        `bson:"id,omitempty"`
	Context        []interface{} `bson:"context,omitempty"`
	Type           []string      `bson:"type,omitempty"`
	IssuanceDate   string        `bson:"issuance_date,omitempty"`
	ExpirationDate string        `bson:"expiration_date,omitempty"`
	Raw            []byte        `bson:"raw,omitempty"`
}

// Store manages presentations in mongodb.
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

	_, err := s.mongoClient.Database().Collection(mongodb.PresentationsCollection).Indexes().
		CreateMany(ctxWithTimeout, []mongo.IndexModel{
			{
				Keys: bson.D{{Key: "tenant_id", Value: 1}},
			},
		})

	return err
}

// Upsert saves the presentation keyed by content hash.
func (s *Store) Upsert(ctx context.Context, presentation *entity.Presentation) error {
	collection := s.mongoClient.Database().Collection(mongodb.PresentationsCollection)

	_, err := collection.UpdateByID(ctx, presentation.Hash, bson.M{
		"$set": bson.M{
			"tenant_id":       presentation.TenantID,
			"holder_id":       presentation.HolderID,
			"id":              presentation.ID,
			"context":         presentation.Context,
			"type":            presentation.Type,
			"issuance_date":   presentation.IssuanceDate,
			"expiration_date": presentation.ExpirationDate,
			"raw":             []byte(presentation.Raw),
		},
	}, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("presentation upsert failed: %w", err)
	}

	return nil
}

// FindByHash looks up a presentation by hash within a tenant.
func (s *Store) FindByHash(ctx context.Context, tenantID, hash string) (*entity.Presentation, error) {
	collection := s.mongoClient.Database().Collection(mongodb.PresentationsCollection)

	doc := &mongoDocument{}

	err := collection.FindOne(ctx, bson.M{
		"_id":       hash,
		"tenant_id": tenantID,
	}).Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("presentation find failed: %w", err)
	}

	return docToPresentation(doc), nil
}

// List pages through a tenant's presentations, newest issuance first.
func (s *Store) List(ctx context.Context, tenantID string, page *entity.Page) ([]*entity.Presentation, error) {
	collection := s.mongoClient.Database().Collection(mongodb.PresentationsCollection)

	cursor, err := collection.Find(ctx, bson.M{"tenant_id": tenantID}, options.Find().
		SetSort(bson.D{{Key: "issuance_date", Value: -1}}).
		SetSkip(int64(page.Offset)).
		SetLimit(int64(page.Limit)),
	)
	if err != nil {
		return nil, fmt.Errorf("presentation list failed: %w", err)
	}

	defer func() {
		_ = cursor.Close(ctx) //nolint: errcheck
	}()

	var docs []mongoDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("presentation list decode failed: %w", err)
	}

	presentations := make([]*entity.Presentation, 0, len(docs))

	for i := range docs {
		presentations = append(presentations, docToPresentation(&docs[i]))
	}

	return presentations, nil
}

// DeleteByHash removes the presentation and its link rows. Link rows go
// first so a partial failure never leaves one pointing at a missing
// presentation. Deleting a missing hash succeeds.
func (s *Store) DeleteByHash(ctx context.Context, tenantID, hash string) error {
	presentation, err := s.FindByHash(ctx, tenantID, hash)
	if errors.Is(err, entity.ErrDataNotFound) {
		return nil
	}

	if err != nil {
		return err
	}

	db := s.mongoClient.Database()

	for _, name := range []string{
		mongodb.PresentationMessagesCollection,
		mongodb.PresentationVerifiersCollection,
		mongodb.PresentationCredentialsCollection,
	} {
		if _, err = db.Collection(name).
			DeleteMany(ctx, bson.M{"presentation_hash": presentation.Hash}); err != nil {
			return fmt.Errorf("presentation delete: %s cleanup failed: %w", name, err)
		}
	}

	if _, err = db.Collection(mongodb.PresentationsCollection).
		DeleteOne(ctx, bson.M{"_id": hash}); err != nil {
		return fmt.Errorf("presentation delete failed: %w", err)
	}

	return nil
}

func docToPresentation(doc *mongoDocument) *entity.Presentation {
	return &entity.Presentation{
		Hash:           doc.Hash,
		TenantID:       doc.TenantID,
		HolderID:       doc.HolderID,
		ID:             doc.ID,
		Context:        doc.Context,
		Type:           doc.Type,
		IssuanceDate:   doc.IssuanceDate,
		ExpirationDate: doc.ExpirationDate,
		Raw:            doc.Raw,
	}
}
