/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rawstore

import (
	"context"
	"errors"

	"github.com/trustbloc/credvault/pkg/entity"
)

type credentialStore interface {
	Upsert(ctx context.Context, credential *entity.Credential) (*entity.Credential, error)
	FindByHash(ctx context.Context, organizationID, hash string) (*entity.Credential, error)
	FindByID(ctx context.Context, organizationID, id string) (*entity.Credential, error)
	FindByHashes(ctx context.Context, organizationID string, hashes []string) ([]*entity.Credential, error)
	List(ctx context.Context, organizationID string, filter *entity.CredentialFilter,
		page *entity.Page) ([]*entity.Credential, error)
	DeleteByHash(ctx context.Context, organizationID, hash string) error
}

// CredentialDecorator keeps credential metadata in the wrapped store
// and the raw artifact in S3.
type CredentialDecorator struct {
	inner    credentialStore
	rawStore *Store
}

// NewCredentialDecorator creates CredentialDecorator.
func NewCredentialDecorator(inner credentialStore, rawStore *Store) *CredentialDecorator {
	return &CredentialDecorator{
		inner:    inner,
		rawStore: rawStore,
	}
}

// Upsert uploads the artifact before the metadata row lands, so any
// reader that sees the row can fetch the artifact.
func (d *CredentialDecorator) Upsert(ctx context.Context, credential *entity.Credential) (*entity.Credential, error) {
	if len(credential.Raw) > 0 {
		if err := d.rawStore.Put(ctx, CredentialKey(credential.Hash), credential.Raw); err != nil {
			return nil, err
		}
	}

	stripped := *credential
	stripped.Raw = nil

	saved, err := d.inner.Upsert(ctx, &stripped)
	if err != nil {
		return nil, err
	}

	saved.Raw = credential.Raw

	return saved, nil
}

// FindByHash returns the credential with its artifact hydrated from S3.
func (d *CredentialDecorator) FindByHash(ctx context.Context, organizationID, hash string) (*entity.Credential, error) {
	credential, err := d.inner.FindByHash(ctx, organizationID, hash)
	if err != nil {
		return nil, err
	}

	return d.hydrate(ctx, credential)
}

// FindByID returns the credential with its artifact hydrated from S3.
func (d *CredentialDecorator) FindByID(ctx context.Context, organizationID, id string) (*entity.Credential, error) {
	credential, err := d.inner.FindByID(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}

	return d.hydrate(ctx, credential)
}

// FindByHashes returns the matching credentials with artifacts hydrated
// from S3.
func (d *CredentialDecorator) FindByHashes(ctx context.Context, organizationID string,
	hashes []string) ([]*entity.Credential, error) {
	credentials, err := d.inner.FindByHashes(ctx, organizationID, hashes)
	if err != nil {
		return nil, err
	}

	for _, credential := range credentials {
		if _, err = d.hydrate(ctx, credential); err != nil {
			return nil, err
		}
	}

	return credentials, nil
}

// List pages through metadata only; artifacts stay in S3 until a
// single credential is fetched.
func (d *CredentialDecorator) List(ctx context.Context, organizationID string, filter *entity.CredentialFilter,
	page *entity.Page) ([]*entity.Credential, error) {
	return d.inner.List(ctx, organizationID, filter, page)
}

// DeleteByHash removes the metadata row and then the artifact.
func (d *CredentialDecorator) DeleteByHash(ctx context.Context, organizationID, hash string) error {
	if err := d.inner.DeleteByHash(ctx, organizationID, hash); err != nil {
		return err
	}

	return d.rawStore.Delete(ctx, CredentialKey(hash))
}

func (d *CredentialDecorator) hydrate(ctx context.Context, credential *entity.Credential) (*entity.Credential, error) {
	raw, err := d.rawStore.Get(ctx, CredentialKey(credential.Hash))
	if err != nil {
		// A row without an artifact is served as metadata only.
		if errors.Is(err, entity.ErrDataNotFound) {
			return credential, nil
		}

		return nil, err
	}

	credential.Raw = raw

	return credential, nil
}
