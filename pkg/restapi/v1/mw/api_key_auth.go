/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mw

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	header          = "X-API-Key"
	healthCheckPath = "/healthcheck"
	readinessPath   = "/ready"
	didDocumentPath = "/did.json"
)

// APIKeyAuth returns a middleware that authenticates requests using the
// API key from the X-API-Key header. Health probes and the public DID
// document routes stay open.
func APIKeyAuth(apiKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := strings.ToLower(c.Request().URL.Path)

			if strings.HasSuffix(path, healthCheckPath) || strings.HasSuffix(path, readinessPath) ||
				strings.HasSuffix(path, didDocumentPath) {
				return next(c)
			}

			apiKeyHeader := c.Request().Header.Get(header)
			if subtle.ConstantTimeCompare([]byte(apiKeyHeader), []byte(apiKey)) != 1 {
				return &echo.HTTPError{
					Code:    http.StatusUnauthorized,
					Message: "Unauthorized",
				}
			}

			return next(c)
		}
	}
}
