/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package privatekeystore persists standalone signing material keyed by
// an opaque alias.
package privatekeystore

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
	Alias         string         `bson:"_id"`
	Type          entity.KeyType `bson:"type"`
	PrivateKeyHex string         `bson:"private_key_hex"`
}

// Store manages private keys in mongodb.
type Store struct {
	mongoClient *mongodb.Client
}

// New creates Store.
func New(mongoClient *mongodb.Client) *Store {
	return &Store{mongoClient: mongoClient}
}

// Upsert saves the key keyed by alias.
func (s *Store) Upsert(ctx context.Context, key *entity.PrivateKey) error {
	collection := s.mongoClient.Database().Collection(mongodb.PrivateKeysCollection)

	_, err := collection.UpdateByID(ctx, key.Alias, bson.M{
		"$set": bson.M{
			"type":            key.Type,
			"private_key_hex": key.PrivateKeyHex,
		},
	}, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("private key upsert failed: %w", err)
	}

	return nil
}

// FindByAlias looks up a key by alias.
func (s *Store) FindByAlias(ctx context.Context, alias string) (*entity.PrivateKey, error) {
	collection := s.mongoClient.Database().Collection(mongodb.PrivateKeysCollection)

	doc := &mongoDocument{}

	err := collection.FindOne(ctx, bson.M{"_id": alias}).Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("private key find failed: %w", err)
	}

	return &entity.PrivateKey{
		Alias:         doc.Alias,
		Type:          doc.Type,
		PrivateKeyHex: doc.PrivateKeyHex,
	}, nil
}

// DeleteByAlias removes the key. Deleting a missing alias succeeds.
func (s *Store) DeleteByAlias(ctx context.Context, alias string) error {
	collection := s.mongoClient.Database().Collection(mongodb.PrivateKeysCollection)

	if _, err := collection.DeleteOne(ctx, bson.M{"_id": alias}); err != nil {
		return fmt.Errorf("private key delete failed: %w", err)
	}

	return nil
}
