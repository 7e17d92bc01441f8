/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package health assembles the service health checks.
package health

import (
	"github.com/alexliesenfeld/health"

	"github.com/trustbloc/credvault/pkg/observability/health/mongo"
)

// Config selects which checks to run.
type Config struct {
	MongoDBURL string
}

// Get returns the configured checks. With the in-memory backend there
// is nothing external to probe and the list is empty.
func Get(config *Config) []health.Check {
	var checks []health.Check

	if config.MongoDBURL != "" {
		checks = append(checks, health.Check{
			Name:               "mongodb",
			Check:              mongo.New(config.MongoDBURL),
			MaxTimeInError:     1,
			MaxContiguousFails: 1,
		})
	}

	return checks
}
