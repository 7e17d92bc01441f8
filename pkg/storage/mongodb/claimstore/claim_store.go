/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package claimstore persists the flattened subject claims of stored
// credentials in mongodb.
package claimstore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/trustbloc/credvault/pkg/entity"
	"github.com/trustbloc/credvault/pkg/storage/mongodb"
)

type mongoDocument struct {
	Hash           string   `bson:"_id"`
	IssuerID       string   `bson:"issuer_id"`
	SubjectID      string   `bson:"subject_id,omitempty"`
	CredentialID   string   `bson:"credential_id"`
	Context        []string `bson:"context,omitempty"`
	CredentialType []string `bson:"credential_type,omitempty"`
	Type           string   `bson:"type"`
	Value          string   `bson:"value,omitempty"`
	IsObj          bool     `bson:"is_obj"`
}

// Store manages credential claims in mongodb.
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

	_, err := s.mongoClient.Database().Collection(mongodb.VCClaimsCollection).Indexes().
		CreateMany(ctxWithTimeout, []mongo.IndexModel{
			{
				Keys: bson.D{{Key: "credential_id", Value: 1}},
			},
		})

	return err
}

// ReplaceForCredential swaps the credential's claim set: the previous
// claims are dropped and the new ones inserted. Re-indexing the same
// credential is therefore idempotent.
func (s *Store) ReplaceForCredential(ctx context.Context, credentialID string, claims []*entity.VCClaim) error {
	collection := s.mongoClient.Database().Collection(mongodb.VCClaimsCollection)

	if _, err := collection.DeleteMany(ctx, bson.M{"credential_id": credentialID}); err != nil {
		return fmt.Errorf("claim replace: cleanup failed: %w", err)
	}

	if len(claims) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(claims))

	for _, claim := range claims {
		docs = append(docs, &mongoDocument{
			Hash:           claim.Hash,
			IssuerID:       claim.IssuerID,
			SubjectID:      claim.SubjectID,
			CredentialID:   credentialID,
			Context:        claim.Context,
			CredentialType: claim.CredentialType,
			Type:           claim.Type,
			Value:          claim.Value,
			IsObj:          claim.IsObj,
		})
	}

	if _, err := collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("claim replace: insert failed: %w", err)
	}

	return nil
}

// FindByCredentialID returns every claim indexed for the credential.
func (s *Store) FindByCredentialID(ctx context.Context, credentialID string) ([]*entity.VCClaim, error) {
	collection := s.mongoClient.Database().Collection(mongodb.VCClaimsCollection)

	cursor, err := collection.Find(ctx, bson.M{"credential_id": credentialID})
	if err != nil {
		return nil, fmt.Errorf("claim list failed: %w", err)
	}

	defer func() {
		_ = cursor.Close(ctx) //nolint: errcheck
	}()

	var docs []mongoDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("claim list decode failed: %w", err)
	}

	claims := make([]*entity.VCClaim, 0, len(docs))

	for i := range docs {
		doc := &docs[i]

		claims = append(claims, &entity.VCClaim{
			Hash:           doc.Hash,
			IssuerID:       doc.IssuerID,
			SubjectID:      doc.SubjectID,
			CredentialID:   doc.CredentialID,
			Context:        doc.Context,
			CredentialType: doc.CredentialType,
			Type:           doc.Type,
			Value:          doc.Value,
			IsObj:          doc.IsObj,
		})
	}

	return claims, nil
}

// DeleteByCredentialID drops every claim of the credential.
func (s *Store) DeleteByCredentialID(ctx context.Context, credentialID string) error {
	collection := s.mongoClient.Database().Collection(mongodb.VCClaimsCollection)

	if _, err := collection.DeleteMany(ctx, bson.M{"credential_id": credentialID}); err != nil {
		return fmt.Errorf("claim delete failed: %w", err)
	}

	return nil
}
