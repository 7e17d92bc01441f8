/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// ContentHash computes the deterministic digest that content-addresses
// credentials and presentations. JSON objects are reduced to their
// canonical compact encoding (sorted keys) before hashing so that the
// same artifact always maps to the same row regardless of field order.
// A bare JSON string (a JWT artifact) is hashed over the string value
// itself.
func ContentHash(raw json.RawMessage) (string, error) {
	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", fmt.Errorf("content hash: invalid JSON: %w", err)
	}

	if s, ok := value.(string); ok {
		sum := sha256.Sum256([]byte(s))
		return hex.EncodeToString(sum[:]), nil
	}

	// encoding/json marshals map keys in sorted order, which gives a
	// canonical form for objects and arrays of objects.
	canonical, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("content hash: %w", err)
	}

	sum := sha256.Sum256(canonical)

	return hex.EncodeToString(sum[:]), nil
}

// ClaimHash keys a flattened claim row. It folds the credential hash,
// claim type and value so the same claim in two credentials never
// collides.
func ClaimHash(credentialHash, claimType, value string) string {
	sum := sha256.Sum256([]byte(credentialHash + "|" + claimType + "|" + value))
	return hex.EncodeToString(sum[:])
}
