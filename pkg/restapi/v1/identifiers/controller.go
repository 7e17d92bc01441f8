/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package identifiers exposes identifier management over REST.
package identifiers

//go:generate mockgen -destination controller_mocks_test.go -package identifiers_test -source=controller.go -mock_names identifierService=MockIdentifierService

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trustbloc/credvault/pkg/entity"
	"github.com/trustbloc/credvault/pkg/service/identifier"
)

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type identifierService interface {
	Create(ctx context.Context, alias string) (*entity.Identifier, error)
	Get(ctx context.Context, did string) (*entity.Identifier, error)
	List(ctx context.Context) ([]*entity.Identifier, error)
	UpdateAlias(ctx context.Context, did, alias string) (*entity.Identifier, error)
	EnsureDefault(ctx context.Context) (*entity.Identifier, string, error)
}

// Config holds the dependencies of Controller.
type Config struct {
	IdentifierService identifierService
}

// Controller handles the /v1/identifiers API.
type Controller struct {
	identifierService identifierService
}

// CreateIdentifierRequest is the POST /v1/identifiers body.
type CreateIdentifierRequest struct {
	Alias string `json:"alias,omitempty"`
}

// UpdateAliasRequest is the PUT /v1/identifiers/alias body.
type UpdateAliasRequest struct {
	DID   string `json:"did"`
	Alias string `json:"alias"`
}

// ListIdentifiersResponse is the GET /v1/identifiers body.
type ListIdentifiersResponse struct {
	Identifiers []*entity.Identifier `json:"identifiers"`
}

// EnsureDefaultResponse is the POST /v1/identifiers/default body.
type EnsureDefaultResponse struct {
	Identifier *entity.Identifier `json:"identifier"`
	Status     string             `json:"status"`
}

// NewController creates Controller and registers its routes.
func NewController(router router, config *Config) *Controller {
	c := &Controller{
		identifierService: config.IdentifierService,
	}

	router.POST("/v1/identifiers", c.CreateIdentifier)
	router.GET("/v1/identifiers", c.ListIdentifiers)
	router.GET("/v1/identifiers/did/:did", c.GetIdentifier)
	router.PUT("/v1/identifiers/alias", c.UpdateAlias)
	router.POST("/v1/identifiers/default", c.EnsureDefault)

	return c
}

// CreateIdentifier creates a DID for the calling organization.
// POST /v1/identifiers.
func (c *Controller) CreateIdentifier(ctx echo.Context) error {
	var body CreateIdentifierRequest

	if err := ctx.Bind(&body); err != nil {
		return err
	}

	identifier, err := c.identifierService.Create(ctx.Request().Context(), body.Alias)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, identifier)
}

// ListIdentifiers returns the organization's identifiers.
// GET /v1/identifiers.
func (c *Controller) ListIdentifiers(ctx echo.Context) error {
	identifiers, err := c.identifierService.List(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, ListIdentifiersResponse{Identifiers: identifiers})
}

// GetIdentifier returns one identifier by DID.
// GET /v1/identifiers/did/:did.
func (c *Controller) GetIdentifier(ctx echo.Context) error {
	identifier, err := c.identifierService.Get(ctx.Request().Context(), ctx.Param("did"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, identifier)
}

// UpdateAlias renames an identifier.
// PUT /v1/identifiers/alias.
func (c *Controller) UpdateAlias(ctx echo.Context) error {
	var body UpdateAliasRequest

	if err := ctx.Bind(&body); err != nil {
		return err
	}

	identifier, err := c.identifierService.UpdateAlias(ctx.Request().Context(), body.DID, body.Alias)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, identifier)
}

// EnsureDefault guarantees the organization has an identifier.
// POST /v1/identifiers/default.
func (c *Controller) EnsureDefault(ctx echo.Context) error {
	ensured, status, err := c.identifierService.EnsureDefault(ctx.Request().Context())
	if err != nil {
		return err
	}

	httpStatus := http.StatusOK
	if status == identifier.StatusCreated {
		httpStatus = http.StatusCreated
	}

	return ctx.JSON(httpStatus, EnsureDefaultResponse{Identifier: ensured, Status: status})
}
