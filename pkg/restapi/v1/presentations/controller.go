/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package presentations exposes presentation storage over REST.
package presentations

//go:generate mockgen -destination controller_mocks_test.go -package presentations_test -source=controller.go -mock_names presentationService=MockPresentationService

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/trustbloc/credvault/pkg/entity"
	"github.com/trustbloc/credvault/pkg/restapi/resterr"
	"github.com/trustbloc/credvault/pkg/service/presentation"
)

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type presentationService interface {
	Save(ctx context.Context, artifact json.RawMessage) (*entity.Presentation, error)
	Get(ctx context.Context, hash string) (*presentation.Detail, error)
	List(ctx context.Context, page *entity.Page) ([]*entity.Presentation, error)
	Delete(ctx context.Context, hash string) error
}

// Config holds the dependencies of Controller.
type Config struct {
	PresentationService presentationService
}

// Controller handles the /v1/presentations API.
type Controller struct {
	presentationService presentationService
}

// SavePresentationRequest is the POST /v1/presentations body.
type SavePresentationRequest struct {
	VerifiablePresentation json.RawMessage `json:"verifiablePresentation"`
}

// ListPresentationsResponse is the GET /v1/presentations body.
type ListPresentationsResponse struct {
	Presentations []*entity.Presentation `json:"presentations"`
}

// NewController creates Controller and registers its routes.
func NewController(router router, config *Config) *Controller {
	c := &Controller{
		presentationService: config.PresentationService,
	}

	router.POST("/v1/presentations", c.SavePresentation)
	router.GET("/v1/presentations", c.ListPresentations)
	router.GET("/v1/presentations/:hash", c.GetPresentation)
	router.DELETE("/v1/presentations/:hash", c.DeletePresentation)

	return c
}

// SavePresentation stores a signed presentation.
// POST /v1/presentations.
func (c *Controller) SavePresentation(ctx echo.Context) error {
	var body SavePresentationRequest

	if err := ctx.Bind(&body); err != nil {
		return err
	}

	if len(body.VerifiablePresentation) == 0 {
		return resterr.NewValidationError(fmt.Errorf("verifiablePresentation is required"))
	}

	saved, err := c.presentationService.Save(ctx.Request().Context(), body.VerifiablePresentation)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, saved)
}

// ListPresentations pages through the tenant's presentations.
// GET /v1/presentations?offset=&limit=.
func (c *Controller) ListPresentations(ctx echo.Context) error {
	page := entity.DefaultPage()

	if offset := ctx.QueryParam("offset"); offset != "" {
		value, err := strconv.Atoi(offset)
		if err != nil {
			return resterr.NewValidationError(fmt.Errorf("invalid offset: %w", err))
		}

		page.Offset = value
	}

	if limit := ctx.QueryParam("limit"); limit != "" {
		value, err := strconv.Atoi(limit)
		if err != nil {
			return resterr.NewValidationError(fmt.Errorf("invalid limit: %w", err))
		}

		page.Limit = value
	}

	presentations, err := c.presentationService.List(ctx.Request().Context(), page)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, ListPresentationsResponse{Presentations: presentations})
}

// GetPresentation returns one presentation with its links.
// GET /v1/presentations/:hash.
func (c *Controller) GetPresentation(ctx echo.Context) error {
	detail, err := c.presentationService.Get(ctx.Request().Context(), ctx.Param("hash"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, detail)
}

// DeletePresentation removes a presentation and its links.
// DELETE /v1/presentations/:hash.
func (c *Controller) DeletePresentation(ctx echo.Context) error {
	if err := c.presentationService.Delete(ctx.Request().Context(), ctx.Param("hash")); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
