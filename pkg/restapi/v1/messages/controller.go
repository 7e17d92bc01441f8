/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package messages exposes message storage over REST.
package messages

//go:generate mockgen -destination controller_mocks_test.go -package messages_test -source=controller.go -mock_names messageService=MockMessageService

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trustbloc/credvault/pkg/entity"
	"github.com/trustbloc/credvault/pkg/service/message"
)

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type messageService interface {
	Save(ctx context.Context, msg *entity.Message, attachments *message.Attachments) (*entity.Message, error)
	Get(ctx context.Context, id string) (*message.Detail, error)
	Delete(ctx context.Context, id string) error
}

// Config holds the dependencies of Controller.
type Config struct {
	MessageService messageService
}

// Controller handles the /v1/messages API.
type Controller struct {
	messageService messageService
}

// SaveMessageRequest is the POST /v1/messages body.
type SaveMessageRequest struct {
	Message            *entity.Message `json:"message"`
	CredentialHashes   []string        `json:"credentialHashes,omitempty"`
	PresentationHashes []string        `json:"presentationHashes,omitempty"`
}

// NewController creates Controller and registers its routes.
func NewController(router router, config *Config) *Controller {
	c := &Controller{
		messageService: config.MessageService,
	}

	router.POST("/v1/messages", c.SaveMessage)
	router.GET("/v1/messages/:id", c.GetMessage)
	router.DELETE("/v1/messages/:id", c.DeleteMessage)

	return c
}

// SaveMessage stores a message and links its attachments.
// POST /v1/messages.
func (c *Controller) SaveMessage(ctx echo.Context) error {
	var body SaveMessageRequest

	if err := ctx.Bind(&body); err != nil {
		return err
	}

	if body.Message == nil {
		body.Message = &entity.Message{}
	}

	saved, err := c.messageService.Save(ctx.Request().Context(), body.Message, &message.Attachments{
		CredentialHashes:   body.CredentialHashes,
		PresentationHashes: body.PresentationHashes,
	})
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, saved)
}

// GetMessage returns one message with its attachments hydrated.
// GET /v1/messages/:id.
func (c *Controller) GetMessage(ctx echo.Context) error {
	detail, err := c.messageService.Get(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, detail)
}

// DeleteMessage removes a message and its attachment links.
// DELETE /v1/messages/:id.
func (c *Controller) DeleteMessage(ctx echo.Context) error {
	if err := c.messageService.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
