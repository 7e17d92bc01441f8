/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package credentials exposes the credential lifecycle over REST.
package credentials

//go:generate mockgen -destination controller_mocks_test.go -package credentials_test -source=controller.go -mock_names credentialService=MockCredentialService

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/trustbloc/credvault/pkg/agent"
	"github.com/trustbloc/credvault/pkg/entity"
	"github.com/trustbloc/credvault/pkg/restapi/resterr"
)

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type credentialService interface {
	Create(ctx context.Context, claims map[string]interface{}, issuerRef *entity.IssuerRef) (*entity.Credential, error)
	Save(ctx context.Context, artifact json.RawMessage) (*entity.Credential, error)
	Get(ctx context.Context, hash string) (*entity.Credential, error)
	List(ctx context.Context, filter *entity.CredentialFilter, page *entity.Page) ([]*entity.Credential, error)
	Delete(ctx context.Context, hash string) error
	Verify(ctx context.Context, artifact json.RawMessage) (*agent.VerifyCredentialResponse, error)
}

// Config holds the dependencies of Controller.
type Config struct {
	CredentialService credentialService
}

// Controller handles the /v1/credentials API.
type Controller struct {
	credentialService credentialService
}

// CreateCredentialRequest is the POST /v1/credentials body.
type CreateCredentialRequest struct {
	Credential map[string]interface{} `json:"credential"`
	IssuerDID  *entity.IssuerRef      `json:"issuerDid,omitempty"`
}

// SaveCredentialRequest is the POST /v1/credentials/save body.
type SaveCredentialRequest struct {
	VerifiableCredential json.RawMessage `json:"verifiableCredential"`
}

// VerifyCredentialRequest is the POST /v1/credentials/verify body.
type VerifyCredentialRequest struct {
	VerifiableCredential json.RawMessage `json:"verifiableCredential"`
}

// ListCredentialsResponse is the GET /v1/credentials body.
type ListCredentialsResponse struct {
	Credentials []*entity.Credential `json:"credentials"`
}

// NewController creates Controller and registers its routes.
func NewController(router router, config *Config) *Controller {
	c := &Controller{
		credentialService: config.CredentialService,
	}

	router.POST("/v1/credentials", c.CreateCredential)
	router.POST("/v1/credentials/save", c.SaveCredential)
	router.POST("/v1/credentials/verify", c.VerifyCredential)
	router.GET("/v1/credentials", c.ListCredentials)
	router.GET("/v1/credentials/:hash", c.GetCredential)
	router.DELETE("/v1/credentials/:hash", c.DeleteCredential)

	return c
}

// CreateCredential issues and stores a credential.
// POST /v1/credentials.
func (c *Controller) CreateCredential(ctx echo.Context) error {
	var body CreateCredentialRequest

	if err := ctx.Bind(&body); err != nil {
		return err
	}

	credential, err := c.credentialService.Create(ctx.Request().Context(), body.Credential, body.IssuerDID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, credential)
}

// SaveCredential stores an externally issued artifact.
// POST /v1/credentials/save.
func (c *Controller) SaveCredential(ctx echo.Context) error {
	var body SaveCredentialRequest

	if err := ctx.Bind(&body); err != nil {
		return err
	}

	if len(body.VerifiableCredential) == 0 {
		return resterr.NewValidationError(fmt.Errorf("verifiableCredential is required"))
	}

	credential, err := c.credentialService.Save(ctx.Request().Context(), body.VerifiableCredential)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, credential)
}

// VerifyCredential verifies a signed artifact through the agent.
// POST /v1/credentials/verify.
func (c *Controller) VerifyCredential(ctx echo.Context) error {
	var body VerifyCredentialRequest

	if err := ctx.Bind(&body); err != nil {
		return err
	}

	result, err := c.credentialService.Verify(ctx.Request().Context(), body.VerifiableCredential)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, result)
}

// ListCredentials pages through the organization's credentials.
// GET /v1/credentials?issuerDid=&offset=&limit=.
func (c *Controller) ListCredentials(ctx echo.Context) error {
	page, err := pageFromQuery(ctx)
	if err != nil {
		return err
	}

	var filter *entity.CredentialFilter

	if issuerDID := ctx.QueryParam("issuerDid"); issuerDID != "" {
		filter = &entity.CredentialFilter{IssuerDID: issuerDID}
	}

	credentials, err := c.credentialService.List(ctx.Request().Context(), filter, page)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, ListCredentialsResponse{Credentials: credentials})
}

// GetCredential returns one credential by content hash.
// GET /v1/credentials/:hash.
func (c *Controller) GetCredential(ctx echo.Context) error {
	credential, err := c.credentialService.Get(ctx.Request().Context(), ctx.Param("hash"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, credential)
}

// DeleteCredential removes a credential and its dependents.
// DELETE /v1/credentials/:hash.
func (c *Controller) DeleteCredential(ctx echo.Context) error {
	if err := c.credentialService.Delete(ctx.Request().Context(), ctx.Param("hash")); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// pageFromQuery builds the page from offset/limit query parameters,
// rejecting malformed values at the boundary.
func pageFromQuery(ctx echo.Context) (*entity.Page, error) {
	page := entity.DefaultPage()

	if offset := ctx.QueryParam("offset"); offset != "" {
		value, err := strconv.Atoi(offset)
		if err != nil {
			return nil, resterr.NewValidationError(fmt.Errorf("invalid offset: %w", err))
		}

		page.Offset = value
	}

	if limit := ctx.QueryParam("limit"); limit != "" {
		value, err := strconv.Atoi(limit)
		if err != nil {
			return nil, resterr.NewValidationError(fmt.Errorf("invalid limit: %w", err))
		}

		page.Limit = value
	}

	if err := page.Validate(); err != nil {
		return nil, resterr.NewValidationError(err)
	}

	return page, nil
}
