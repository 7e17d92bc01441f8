/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package credentialstore persists verifiable credentials in mongodb,
// content-addressed by hash.
package credentialstore

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
	Hash            string        `bson:"_id"`
	ID              string        `bson:"id"`
	OrganizationID  string        `bson:"organization_id"`
	IssuerID        string        `bson:"issuer_id,omitempty"`
	SubjectID       string        `bson:"subject_id,omitempty"`
	Context         []interface{} `bson:"context,omitempty"`
	Type            []string      `bson:"type,omitempty"`
	IssuanceDate    string        `bson:"issuance_date,omitempty"`
	ExpirationDate  string        `bson:"expiration_date,omitempty"`
	Raw             []byte        `bson:"raw,omitempty"`
	RevocationList  *int          `bson:"revocation_list,omitempty"`
	RevocationIndex *int          `bson:"revocation_index,omitempty"`
}

// Store manages credentials in mongodb.
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

	_, err := s.mongoClient.Database().Collection(mongodb.CredentialsCollection).Indexes().
		CreateMany(ctxWithTimeout, []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "id", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys: bson.D{{Key: "organization_id", Value: 1}},
			},
			{
				Keys: bson.D{{Key: "organization_id", Value: 1}, {Key: "issuer_id", Value: 1}},
			},
			{
				Keys: bson.D{{Key: "revocation_list", Value: 1}, {Key: "revocation_index", Value: 1}},
				Options: options.Index().SetUnique(true).
					SetPartialFilterExpression(bson.M{"revocation_list": bson.M{"$exists": true}}),
			},
		})

	return err
}

// Upsert saves the credential keyed by content hash and returns the
// persisted record. Re-saving the same hash leaves the stored id
// untouched, which is what makes save idempotent.
func (s *Store) Upsert(ctx context.Context, credential *entity.Credential) (*entity.Credential, error) {
	collection := s.mongoClient.Database().Collection(mongodb.CredentialsCollection)

	update := bson.M{
		"$set": bson.M{
			"organization_id":  credential.OrganizationID,
			"issuer_id":        credential.IssuerID,
			"subject_id":       credential.SubjectID,
			"context":          credential.Context,
			"type":             credential.Type,
			"issuance_date":    credential.IssuanceDate,
			"expiration_date":  credential.ExpirationDate,
			"raw":              []byte(credential.Raw),
			"revocation_list":  credential.RevocationList,
			"revocation_index": credential.RevocationIndex,
		},
		"$setOnInsert": bson.M{
			"id": newIDOrDefault(credential.ID),
		},
	}

	doc := &mongoDocument{}

	err := collection.FindOneAndUpdate(ctx,
		bson.M{"_id": credential.Hash},
		update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(doc)
	if err != nil {
		return nil, fmt.Errorf("credential upsert failed: %w", err)
	}

	return docToCredential(doc), nil
}

// FindByHash looks up a credential by hash within an organization.
func (s *Store) FindByHash(ctx context.Context, organizationID, hash string) (*entity.Credential, error) {
	collection := s.mongoClient.Database().Collection(mongodb.CredentialsCollection)

	doc := &mongoDocument{}

	err := collection.FindOne(ctx, bson.M{
		"_id":             hash,
		"organization_id": organizationID,
	}).Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("credential find failed: %w", err)
	}

	return docToCredential(doc), nil
}

// FindByID looks up a credential by its secondary id within an
// organization.
func (s *Store) FindByID(ctx context.Context, organizationID, id string) (*entity.Credential, error) {
	collection := s.mongoClient.Database().Collection(mongodb.CredentialsCollection)

	doc := &mongoDocument{}

	err := collection.FindOne(ctx, bson.M{
		"id":              id,
		"organization_id": organizationID,
	}).Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("credential find failed: %w", err)
	}

	return docToCredential(doc), nil
}

// FindByHashes returns the credentials matching the given hashes within
// an organization. Hashes without a match are silently skipped; an
// empty input short-circuits without touching the database.
func (s *Store) FindByHashes(ctx context.Context, organizationID string, hashes []string) ([]*entity.Credential, error) {
	if len(hashes) == 0 {
		return nil, nil
	}

	collection := s.mongoClient.Database().Collection(mongodb.CredentialsCollection)

	cursor, err := collection.Find(ctx, bson.M{
		"_id":             bson.M{"$in": hashes},
		"organization_id": organizationID,
	})
	if err != nil {
		return nil, fmt.Errorf("credential find failed: %w", err)
	}

	defer func() {
		_ = cursor.Close(ctx) //nolint: errcheck
	}()

	var docs []mongoDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("credential find decode failed: %w", err)
	}

	credentials := make([]*entity.Credential, 0, len(docs))

	for i := range docs {
		credentials = append(credentials, docToCredential(&docs[i]))
	}

	return credentials, nil
}

// List pages through an organization's credentials, newest issuance
// first, optionally narrowed by issuer DID.
func (s *Store) List(ctx context.Context, organizationID string, filter *entity.CredentialFilter,
	page *entity.Page) ([]*entity.Credential, error) {
	collection := s.mongoClient.Database().Collection(mongodb.CredentialsCollection)

	query := bson.M{"organization_id": organizationID}

	if filter != nil && filter.IssuerDID != "" {
		query["issuer_id"] = filter.IssuerDID
	}

	cursor, err := collection.Find(ctx, query, options.Find().
		SetSort(bson.D{{Key: "issuance_date", Value: -1}}).
		SetSkip(int64(page.Offset)).
		SetLimit(int64(page.Limit)),
	)
	if err != nil {
		return nil, fmt.Errorf("credential list failed: %w", err)
	}

	defer func() {
		_ = cursor.Close(ctx) //nolint: errcheck
	}()

	var docs []mongoDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("credential list decode failed: %w", err)
	}

	credentials := make([]*entity.Credential, 0, len(docs))

	for i := range docs {
		credentials = append(credentials, docToCredential(&docs[i]))
	}

	return credentials, nil
}

// DeleteByHash removes the credential and its dependents. Dependents go
// first, in fixed order, so a partial failure never leaves a child row
// pointing at a missing credential. Deleting a missing hash succeeds.
func (s *Store) DeleteByHash(ctx context.Context, organizationID, hash string) error {
	credential, err := s.FindByHash(ctx, organizationID, hash)
	if errors.Is(err, entity.ErrDataNotFound) {
		return nil
	}

	if err != nil {
		return err
	}

	db := s.mongoClient.Database()

	steps := []struct {
		collection string
		filter     bson.M
	}{
		{mongodb.VCClaimsCollection, bson.M{"credential_id": hash}},
		{mongodb.CredentialMessagesCollection, bson.M{"credential_hash": hash}},
		{mongodb.PresentationCredentialsCollection, bson.M{"credential_hash": hash}},
		{mongodb.EncryptedCredentialsCollection, bson.M{"credential_id": credential.ID}},
		{mongodb.CredentialsCollection, bson.M{"_id": hash}},
	}

	for _, step := range steps {
		if _, err = db.Collection(step.collection).DeleteMany(ctx, step.filter); err != nil {
			return fmt.Errorf("credential delete: %s cleanup failed: %w", step.collection, err)
		}
	}

	return nil
}

func newIDOrDefault(id string) string {
	if id != "" {
		return id
	}

	return uuid.NewString()
}

func docToCredential(doc *mongoDocument) *entity.Credential {
	return &entity.Credential{
		Hash:            doc.Hash,
		ID:              doc.ID,
		OrganizationID:  doc.OrganizationID,
		IssuerID:        doc.IssuerID,
		SubjectID:       doc.SubjectID,
		Context:         doc.Context,
		Type:            doc.Type,
		IssuanceDate:    doc.IssuanceDate,
		ExpirationDate:  doc.ExpirationDate,
		Raw:             doc.Raw,
		RevocationList:  doc.RevocationList,
		RevocationIndex: doc.RevocationIndex,
	}
}
