/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package encryptedcredentialstore persists the encrypted twin of each
// credential, one-to-one by credential id.
package encryptedcredentialstore

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
	CredentialID string `bson:"_id"`
	ID           string `bson:"id"`
	Version      int    `bson:"version"`
	CipherText   string `bson:"cipher_text"`
	IV           string `bson:"iv"`
	Tag          string `bson:"tag"`
	Key          string `bson:"key"`
	Algorithm    string `bson:"algorithm"`
}

// Store manages encrypted credential twins in mongodb.
type Store struct {
	mongoClient *mongodb.Client
}

// New creates Store.
func New(mongoClient *mongodb.Client) *Store {
	return &Store{mongoClient: mongoClient}
}

// Upsert saves the twin keyed by credential id. Re-encrypting the same
// credential replaces the previous twin in place.
func (s *Store) Upsert(ctx context.Context, encrypted *entity.EncryptedCredential) error {
	collection := s.mongoClient.Database().Collection(mongodb.EncryptedCredentialsCollection)

	_, err := collection.UpdateByID(ctx, encrypted.CredentialID, bson.M{
		"$set": bson.M{
			"version":     encrypted.Version,
			"cipher_text": encrypted.CipherText,
			"iv":          encrypted.IV,
			"tag":         encrypted.Tag,
			"key":         encrypted.Key,
			"algorithm":   encrypted.Algorithm,
		},
		"$setOnInsert": bson.M{
			"id": newIDOrDefault(encrypted.ID),
		},
	}, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("encrypted credential upsert failed: %w", err)
	}

	return nil
}

// FindByCredentialID looks up the twin of a credential.
func (s *Store) FindByCredentialID(ctx context.Context, credentialID string) (*entity.EncryptedCredential, error) {
	collection := s.mongoClient.Database().Collection(mongodb.EncryptedCredentialsCollection)

	doc := &mongoDocument{}

	err := collection.FindOne(ctx, bson.M{"_id": credentialID}).Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("encrypted credential find failed: %w", err)
	}

	return &entity.EncryptedCredential{
		ID:           doc.ID,
		Version:      doc.Version,
		CredentialID: doc.CredentialID,
		CipherText:   doc.CipherText,
		IV:           doc.IV,
		Tag:          doc.Tag,
		Key:          doc.Key,
		Algorithm:    doc.Algorithm,
	}, nil
}

// DeleteByCredentialID removes the twin. Deleting a missing id
// succeeds.
func (s *Store) DeleteByCredentialID(ctx context.Context, credentialID string) error {
	collection := s.mongoClient.Database().Collection(mongodb.EncryptedCredentialsCollection)

	if _, err := collection.DeleteOne(ctx, bson.M{"_id": credentialID}); err != nil {
		return fmt.Errorf("encrypted credential delete failed: %w", err)
	}

	return nil
}

func newIDOrDefault(id string) string {
	if id != "" {
		return id
	}

	return uuid.NewString()
}
