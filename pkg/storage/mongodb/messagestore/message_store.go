/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package messagestore persists DIDComm-style messages in mongodb.
package messagestore

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
	ID          string                 `bson:"_id"`
	Type        string                 `bson:"type"`
	Raw         string                 `bson:"raw,omitempty"`
	Data        map[string]interface{} `bson:"data,omitempty"`
	ReplyTo     []string               `bson:"reply_to,omitempty"`
	ReplyURL    string                 `bson:"reply_url,omitempty"`
	ThreadID    string                 `bson:"thread_id,omitempty"`
	CreatedAt   string                 `bson:"created_at,omitempty"`
	ExpiresAt   string                 `bson:"expires_at,omitempty"`
	FromID      string                 `bson:"from_id,omitempty"`
	ToID        string                 `bson:"to_id,omitempty"`
	ReturnRoute string                 `bson:"return_route,omitempty"`
}

// Store manages messages in mongodb.
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

	_, err := s.mongoClient.Database().Collection(mongodb.MessagesCollection).Indexes().
		CreateMany(ctxWithTimeout, []mongo.IndexModel{
			{
				Keys: bson.D{{Key: "thread_id", Value: 1}},
			},
		})

	return err
}

// Upsert saves the message keyed by id.
func (s *Store) Upsert(ctx context.Context, message *entity.Message) error {
	collection := s.mongoClient.Database().Collection(mongodb.MessagesCollection)

	_, err := collection.UpdateByID(ctx, message.ID, bson.M{
		"$set": bson.M{
			"type":         message.Type,
			"raw":          message.Raw,
			"data":         message.Data,
			"reply_to":     message.ReplyTo,
			"reply_url":    message.ReplyURL,
			"thread_id":    message.ThreadID,
			"created_at":   message.CreatedAt,
			"expires_at":   message.ExpiresAt,
			"from_id":      message.FromID,
			"to_id":        message.ToID,
			"return_route": message.ReturnRoute,
		},
	}, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("message upsert failed: %w", err)
	}

	return nil
}

// FindByID looks up a message by id.
func (s *Store) FindByID(ctx context.Context, id string) (*entity.Message, error) {
	collection := s.mongoClient.Database().Collection(mongodb.MessagesCollection)

	doc := &mongoDocument{}

	err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("message find failed: %w", err)
	}

	return docToMessage(doc), nil
}

// DeleteByID removes the message and its credential/presentation links.
// Deleting a missing id succeeds.
func (s *Store) DeleteByID(ctx context.Context, id string) error {
	db := s.mongoClient.Database()

	for _, name := range []string{
		mongodb.CredentialMessagesCollection,
		mongodb.PresentationMessagesCollection,
	} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{"message_id": id}); err != nil {
			return fmt.Errorf("message delete: %s cleanup failed: %w", name, err)
		}
	}

	if _, err := db.Collection(mongodb.MessagesCollection).DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("message delete failed: %w", err)
	}

	return nil
}

func docToMessage(doc *mongoDocument) *entity.Message {
	return &entity.Message{
		ID:          doc.ID,
		Type:        doc.Type,
		Raw:         doc.Raw,
		Data:        doc.Data,
		ReplyTo:     doc.ReplyTo,
		ReplyURL:    doc.ReplyURL,
		ThreadID:    doc.ThreadID,
		CreatedAt:   doc.CreatedAt,
		ExpiresAt:   doc.ExpiresAt,
		FromID:      doc.FromID,
		ToID:        doc.ToID,
		ReturnRoute: doc.ReturnRoute,
	}
}
