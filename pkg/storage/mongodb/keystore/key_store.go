/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package keystore persists crypto keys linked to identifiers in
// mongodb. Standalone signing material lives in privatekeystore.
package keystore

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
	KID           string                 `bson:"_id"`
	KMS           string                 `bson:"kms"`
	Type          entity.KeyType         `bson:"type"`
	PublicKeyHex  string                 `bson:"public_key_hex"`
	PrivateKeyHex string                 `bson:"private_key_hex,omitempty"`
	Meta          map[string]interface{} `bson:"meta,omitempty"`
	IdentifierDID string                 `bson:"identifier_did,omitempty"`
}

// Store manages crypto keys in mongodb.
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

	_, err := s.mongoClient.Database().Collection(mongodb.CryptoKeysCollection).Indexes().
		CreateMany(ctxWithTimeout, []mongo.IndexModel{
			{
				Keys: bson.D{{Key: "identifier_did", Value: 1}},
			},
		})

	return err
}

// Upsert saves the key keyed by kid.
func (s *Store) Upsert(ctx context.Context, key *entity.CryptoKey) error {
	collection := s.mongoClient.Database().Collection(mongodb.CryptoKeysCollection)

	_, err := collection.UpdateByID(ctx, key.KID, bson.M{
		"$set": bson.M{
			"kms":             key.KMS,
			"type":            key.Type,
			"public_key_hex":  key.PublicKeyHex,
			"private_key_hex": key.PrivateKeyHex,
			"meta":            key.Meta,
			"identifier_did":  key.IdentifierDID,
		},
	}, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("crypto key upsert failed: %w", err)
	}

	return nil
}

// FindByKID looks up a key by its kid.
func (s *Store) FindByKID(ctx context.Context, kid string) (*entity.CryptoKey, error) {
	collection := s.mongoClient.Database().Collection(mongodb.CryptoKeysCollection)

	doc := &mongoDocument{}

	err := collection.FindOne(ctx, bson.M{"_id": kid}).Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("crypto key find failed: %w", err)
	}

	return docToKey(doc), nil
}

// FindByIdentifierDID returns every key attached to the DID.
func (s *Store) FindByIdentifierDID(ctx context.Context, did string) ([]*entity.CryptoKey, error) {
	collection := s.mongoClient.Database().Collection(mongodb.CryptoKeysCollection)

	cursor, err := collection.Find(ctx, bson.M{"identifier_did": did})
	if err != nil {
		return nil, fmt.Errorf("crypto key list failed: %w", err)
	}

	defer func() {
		_ = cursor.Close(ctx) //nolint: errcheck
	}()

	var docs []mongoDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("crypto key list decode failed: %w", err)
	}

	keys := make([]*entity.CryptoKey, 0, len(docs))

	for i := range docs {
		keys = append(keys, docToKey(&docs[i]))
	}

	return keys, nil
}

// DeleteByKID removes the key. Deleting a missing kid succeeds.
func (s *Store) DeleteByKID(ctx context.Context, kid string) error {
	collection := s.mongoClient.Database().Collection(mongodb.CryptoKeysCollection)

	if _, err := collection.DeleteOne(ctx, bson.M{"_id": kid}); err != nil {
		return fmt.Errorf("crypto key delete failed: %w", err)
	}

	return nil
}

func docToKey(doc *mongoDocument) *entity.CryptoKey {
	return &entity.CryptoKey{
		KID:           doc.KID,
		KMS:           doc.KMS,
		Type:          doc.Type,
		PublicKeyHex:  doc.PublicKeyHex,
		PrivateKeyHex: doc.PrivateKeyHex,
		Meta:          doc.Meta,
		IdentifierDID: doc.IdentifierDID,
	}
}
