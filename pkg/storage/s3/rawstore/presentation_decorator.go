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

type presentationStore interface {
	Upsert(ctx context.Context, presentation *entity.Presentation) error
	FindByHash(ctx context.Context, tenantID, hash string) (*entity.Presentation, error)
	List(ctx context.Context, tenantID string, page *entity.Page) ([]*entity.Presentation, error)
	DeleteByHash(ctx context.Context, tenantID, hash string) error
}

// PresentationDecorator keeps presentation metadata in the wrapped
// store and the raw artifact in S3.
type PresentationDecorator struct {
	inner    presentationStore
	rawStore *Store
}

// NewPresentationDecorator creates PresentationDecorator.
func NewPresentationDecorator(inner presentationStore, rawStore *Store) *PresentationDecorator {
	return &PresentationDecorator{
		inner:    inner,
		rawStore: rawStore,
	}
}

// Upsert uploads the artifact before the metadata row lands.
func (d *PresentationDecorator) Upsert(ctx context.Context, presentation *entity.Presentation) error {
	if len(presentation.Raw) > 0 {
		if err := d.rawStore.Put(ctx, PresentationKey(presentation.Hash), presentation.Raw); err != nil {
			return err
		}
	}

	stripped := *presentation
	stripped.Raw = nil

	return d.inner.Upsert(ctx, &stripped)
}

// FindByHash returns the presentation with its artifact hydrated from
// S3.
func (d *PresentationDecorator) FindByHash(ctx context.Context, tenantID, hash string) (*entity.Presentation, error) {
	presentation, err := d.inner.FindByHash(ctx, tenantID, hash)
	if err != nil {
		return nil, err
	}

	raw, err := d.rawStore.Get(ctx, PresentationKey(hash))
	if err != nil {
		if errors.Is(err, entity.ErrDataNotFound) {
			return presentation, nil
		}

		return nil, err
	}

	presentation.Raw = raw

	return presentation, nil
}

// List pages through metadata only.
func (d *PresentationDecorator) List(ctx context.Context, tenantID string,
	page *entity.Page) ([]*entity.Presentation, error) {
	return d.inner.List(ctx, tenantID, page)
}

// DeleteByHash removes the metadata row and then the artifact.
func (d *PresentationDecorator) DeleteByHash(ctx context.Context, tenantID, hash string) error {
	if err := d.inner.DeleteByHash(ctx, tenantID, hash); err != nil {
		return err
	}

	return d.rawStore.Delete(ctx, PresentationKey(hash))
}
