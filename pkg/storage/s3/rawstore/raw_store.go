/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package rawstore offloads raw credential and presentation artifacts
// to an S3 bucket, leaving only relational metadata in the database.
package rawstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/trustbloc/credvault/pkg/entity"
)

const contentType = "application/json"

type s3Uploader interface {
	PutObject(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, input *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, input *s3.DeleteObjectInput, opts ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Store reads and writes raw artifacts in S3, keyed by content hash.
type Store struct {
	s3Uploader s3Uploader
	bucket     string
}

// NewStore creates S3 Store.
func NewStore(s3Uploader s3Uploader, bucket string) *Store {
	return &Store{
		s3Uploader: s3Uploader,
		bucket:     bucket,
	}
}

// Put uploads the artifact under the given key.
func (p *Store) Put(ctx context.Context, key string, raw []byte) error {
	_, err := p.s3Uploader.PutObject(ctx, &s3.PutObjectInput{
		Body:        bytes.NewReader(raw),
		Key:         aws.String(key),
		Bucket:      aws.String(p.bucket),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload raw artifact: %w", err)
	}

	return nil
}

// Get downloads the artifact stored under the given key.
func (p *Store) Get(ctx context.Context, key string) ([]byte, error) {
	res, err := p.s3Uploader.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var awsError *types.NoSuchKey
		if errors.As(err, &awsError) {
			return nil, entity.ErrDataNotFound
		}

		if strings.Contains(err.Error(), "AccessDenied") {
			return nil, entity.ErrDataNotFound
		}

		return nil, fmt.Errorf("failed to get raw artifact from S3: %w", err)
	}

	defer func() {
		_ = res.Body.Close() //nolint: errcheck
	}()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read raw artifact body: %w", err)
	}

	return raw, nil
}

// Delete removes the artifact stored under the given key. Deleting a
// missing key succeeds.
func (p *Store) Delete(ctx context.Context, key string) error {
	_, err := p.s3Uploader.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete raw artifact: %w", err)
	}

	return nil
}

// CredentialKey is the S3 key of a credential artifact.
func CredentialKey(hash string) string {
	return "credentials/" + hash
}

// PresentationKey is the S3 key of a presentation artifact.
func PresentationKey(hash string) string {
	return "presentations/" + hash
}
