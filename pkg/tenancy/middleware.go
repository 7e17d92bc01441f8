/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package tenancy

import (
	"github.com/labstack/echo/v4"

	"github.com/trustbloc/credvault/pkg/restapi/resterr"
)

const (
	// OrganizationIDHeader carries the organization (tenant boundary) id.
	OrganizationIDHeader = "X-Organization-ID"
	// TenantIDHeader carries the tenant id; defaults to the organization
	// id when empty.
	TenantIDHeader = "X-Tenant-ID"
	// UserIDHeader optionally carries the acting user id.
	UserIDHeader = "X-User-ID"
)

// Middleware validates the request identity headers and establishes the
// tenancy context before any repository is touched. Missing identity
// headers abort the request with a missing-credential error.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			organizationID := c.Request().Header.Get(OrganizationIDHeader)
			if organizationID == "" {
				return resterr.NewMissingCredentialError(OrganizationIDHeader)
			}

			tenantID := c.Request().Header.Get(TenantIDHeader)
			if tenantID == "" {
				tenantID = organizationID
			}

			tc := &Context{
				OrganizationID: organizationID,
				TenantID:       tenantID,
				UserID:         c.Request().Header.Get(UserIDHeader),
			}

			req := c.Request()
			c.SetRequest(req.WithContext(WithContext(req.Context(), tc)))

			return next(c)
		}
	}
}
