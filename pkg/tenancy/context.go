/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package tenancy carries the authenticated tenant identity through a
// request call chain. The context is established once by the HTTP
// middleware and read explicitly via FromContext; it never leaks across
// requests.
package tenancy

import (
	"context"

	"github.com/trustbloc/credvault/pkg/restapi/resterr"
)

// Context is the authenticated identity of one inbound request.
type Context struct {
	OrganizationID string
	TenantID       string
	UserID         string
}

type contextKey struct{}

// WithContext returns ctx carrying tc.
func WithContext(ctx context.Context, tc *Context) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// FromContext returns the tenancy context established for this request.
// Calling it outside an active request scope fails loudly with
// resterr.ErrMissingTenantContext.
func FromContext(ctx context.Context) (*Context, error) {
	tc, ok := ctx.Value(contextKey{}).(*Context)
	if !ok || tc == nil {
		return nil, resterr.ErrMissingTenantContext
	}

	return tc, nil
}
