/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package entity

import "fmt"

const (
	// DefaultPageLimit applies when a list request does not set a limit.
	DefaultPageLimit = 20
	// MaxPageLimit is the upper bound a caller may request.
	MaxPageLimit = 100
)

// Page bounds a list operation. Offset and limit outside the allowed
// range are rejected, never clamped.
type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// DefaultPage returns the page applied when the caller supplies none.
func DefaultPage() *Page {
	return &Page{Offset: 0, Limit: DefaultPageLimit}
}

// Validate rejects out-of-range offsets and limits.
func (p Page) Validate() error {
	if p.Offset < 0 {
		return fmt.Errorf("offset must not be negative, got %d", p.Offset)
	}

	if p.Limit < 1 {
		return fmt.Errorf("limit must be at least 1, got %d", p.Limit)
	}

	if p.Limit > MaxPageLimit {
		return fmt.Errorf("limit must not exceed %d, got %d", MaxPageLimit, p.Limit)
	}

	return nil
}
