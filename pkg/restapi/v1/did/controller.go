/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package did serves public did:web documents and generic DID
// resolution.
package did

//go:generate mockgen -destination controller_mocks_test.go -package did_test -source=controller.go -mock_names resolveService=MockResolveService

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trustbloc/credvault/pkg/restapi/resterr"
)

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type resolveService interface {
	Resolve(ctx context.Context, did string) (json.RawMessage, error)
	WebDID(organizationID, alias string) string
}

// Config holds the dependencies of Controller.
type Config struct {
	ResolveService resolveService
}

// Controller serves DID documents. The did.json routes are public: a
// did:web DID is only resolvable if anyone can fetch its document.
type Controller struct {
	resolveService resolveService
}

// NewController creates Controller and registers its routes.
func NewController(router router, config *Config) *Controller {
	c := &Controller{
		resolveService: config.ResolveService,
	}

	router.GET("/:organizationID/did.json", c.GetOrganizationDIDDocument)
	router.GET("/:organizationID/:alias/did.json", c.GetAliasDIDDocument)
	router.GET("/v1/dids/resolve", c.ResolveDID)

	return c
}

// GetOrganizationDIDDocument serves the organization's default DID
// document. GET /:organizationID/did.json.
func (c *Controller) GetOrganizationDIDDocument(ctx echo.Context) error {
	did := c.resolveService.WebDID(ctx.Param("organizationID"), "")

	return c.serveDocument(ctx, did)
}

// GetAliasDIDDocument serves the DID document of an aliased identifier.
// GET /:organizationID/:alias/did.json.
func (c *Controller) GetAliasDIDDocument(ctx echo.Context) error {
	did := c.resolveService.WebDID(ctx.Param("organizationID"), ctx.Param("alias"))

	return c.serveDocument(ctx, did)
}

// ResolveDID resolves an arbitrary DID.
// GET /v1/dids/resolve?did=.
func (c *Controller) ResolveDID(ctx echo.Context) error {
	did := ctx.QueryParam("did")
	if did == "" {
		return resterr.NewValidationError(fmt.Errorf("did query parameter is required"))
	}

	return c.serveDocument(ctx, did)
}

func (c *Controller) serveDocument(ctx echo.Context, did string) error {
	document, err := c.resolveService.Resolve(ctx.Request().Context(), did)
	if err != nil {
		return err
	}

	return ctx.JSONBlob(http.StatusOK, document)
}
