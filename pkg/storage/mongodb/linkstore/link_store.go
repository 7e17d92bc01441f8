/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package linkstore persists the join rows connecting credentials,
// presentations, messages and verifiers. Each row is keyed by the
// concatenation of its two sides, which makes every link upsert
// idempotent.
package linkstore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trustbloc/credvault/pkg/entity"
	"github.com/trustbloc/credvault/pkg/storage/mongodb"
)

// Store manages link rows in mongodb.
type Store struct {
	mongoClient *mongodb.Client
}

// New creates Store.
func New(mongoClient *mongodb.Client) *Store {
	return &Store{mongoClient: mongoClient}
}

// UpsertCredentialMessage links a credential to a message.
func (s *Store) UpsertCredentialMessage(ctx context.Context, link *entity.CredentialMessage) error {
	return s.upsertLink(ctx, mongodb.CredentialMessagesCollection,
		linkID(link.CredentialHash, link.MessageID),
		bson.M{
			"credential_hash": link.CredentialHash,
			"message_id":      link.MessageID,
		})
}

// CredentialHashesByMessage returns the credential hashes linked to the
// message.
func (s *Store) CredentialHashesByMessage(ctx context.Context, messageID string) ([]string, error) {
	return s.listLinks(ctx, mongodb.CredentialMessagesCollection,
		bson.M{"message_id": messageID}, "credential_hash")
}

// UpsertPresentationMessage links a presentation to a message.
func (s *Store) UpsertPresentationMessage(ctx context.Context, link *entity.PresentationMessage) error {
	return s.upsertLink(ctx, mongodb.PresentationMessagesCollection,
		linkID(link.PresentationHash, link.MessageID),
		bson.M{
			"presentation_hash": link.PresentationHash,
			"message_id":        link.MessageID,
		})
}

// PresentationHashesByMessage returns the presentation hashes linked to
// the message.
func (s *Store) PresentationHashesByMessage(ctx context.Context, messageID string) ([]string, error) {
	return s.listLinks(ctx, mongodb.PresentationMessagesCollection,
		bson.M{"message_id": messageID}, "presentation_hash")
}

// ReplaceVerifiers swaps the presentation's verifier set for the given
// DIDs.
func (s *Store) ReplaceVerifiers(ctx context.Context, presentationHash string, verifierDIDs []string) error {
	collection := s.mongoClient.Database().Collection(mongodb.PresentationVerifiersCollection)

	if _, err := collection.DeleteMany(ctx, bson.M{"presentation_hash": presentationHash}); err != nil {
		return fmt.Errorf("verifier replace: cleanup failed: %w", err)
	}

	for _, did := range verifierDIDs {
		if err := s.upsertLink(ctx, mongodb.PresentationVerifiersCollection,
			linkID(presentationHash, did),
			bson.M{
				"presentation_hash": presentationHash,
				"verifier_did":      did,
			}); err != nil {
			return err
		}
	}

	return nil
}

// VerifiersByPresentation returns the verifier DIDs of the
// presentation.
func (s *Store) VerifiersByPresentation(ctx context.Context, presentationHash string) ([]string, error) {
	return s.listLinks(ctx, mongodb.PresentationVerifiersCollection,
		bson.M{"presentation_hash": presentationHash}, "verifier_did")
}

// ReplaceCredentials swaps the presentation's credential set for the
// given hashes.
func (s *Store) ReplaceCredentials(ctx context.Context, presentationHash string, credentialHashes []string) error {
	collection := s.mongoClient.Database().Collection(mongodb.PresentationCredentialsCollection)

	if _, err := collection.DeleteMany(ctx, bson.M{"presentation_hash": presentationHash}); err != nil {
		return fmt.Errorf("presentation credential replace: cleanup failed: %w", err)
	}

	for _, hash := range credentialHashes {
		if err := s.upsertLink(ctx, mongodb.PresentationCredentialsCollection,
			linkID(presentationHash, hash),
			bson.M{
				"presentation_hash": presentationHash,
				"credential_hash":   hash,
			}); err != nil {
			return err
		}
	}

	return nil
}

// CredentialHashesByPresentation returns the credential hashes the
// presentation carries.
func (s *Store) CredentialHashesByPresentation(ctx context.Context, presentationHash string) ([]string, error) {
	return s.listLinks(ctx, mongodb.PresentationCredentialsCollection,
		bson.M{"presentation_hash": presentationHash}, "credential_hash")
}

func (s *Store) upsertLink(ctx context.Context, collectionName, id string, fields bson.M) error {
	collection := s.mongoClient.Database().Collection(collectionName)

	_, err := collection.UpdateByID(ctx, id, bson.M{"$set": fields}, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("%s upsert failed: %w", collectionName, err)
	}

	return nil
}

func (s *Store) listLinks(ctx context.Context, collectionName string, filter bson.M, field string) ([]string, error) {
	collection := s.mongoClient.Database().Collection(collectionName)

	cursor, err := collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s list failed: %w", collectionName, err)
	}

	defer func() {
		_ = cursor.Close(ctx) //nolint: errcheck
	}()

	var docs []bson.M
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%s list decode failed: %w", collectionName, err)
	}

	values := make([]string, 0, len(docs))

	for _, doc := range docs {
		if v, ok := doc[field].(string); ok {
			values = append(values, v)
		}
	}

	return values, nil
}

func linkID(a, b string) string {
	return a + "|" + b
}
