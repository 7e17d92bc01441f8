/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package agent

import (
	"encoding/json"

	"github.com/trustbloc/credvault/pkg/entity"
)

// Identifier is the identity-agent's view of a created DID.
type Identifier struct {
	DID             string              `json:"did"`
	Provider        string              `json:"provider"`
	Alias           string              `json:"alias"`
	ControllerKeyID string              `json:"controllerKeyId,omitempty"`
	Keys            []entity.CryptoKey  `json:"keys,omitempty"`
	PrivateKeys     []entity.PrivateKey `json:"privateKeys,omitempty"`
	Services        []entity.Service    `json:"services,omitempty"`
}

// CreateIdentifierRequest asks the agent to create a DID and its keys.
type CreateIdentifierRequest struct {
	Alias    string `json:"alias"`
	Provider string `json:"provider,omitempty"`
}

// SetAliasRequest renames an existing DID.
type SetAliasRequest struct {
	DID   string `json:"did"`
	Alias string `json:"alias"`
}

// SetAliasResponse acknowledges an alias change.
type SetAliasResponse struct {
	Success bool `json:"success"`
}

// ResolveDIDRequest resolves a DID to its document.
type ResolveDIDRequest struct {
	DID string `json:"did"`
}

// ResolveDIDResponse carries the resolved DID document, if any.
type ResolveDIDResponse struct {
	DIDDocument json.RawMessage `json:"didDocument,omitempty"`
}

// IssueCredentialRequest asks the agent to sign a credential whose
// subject claims equal Claims and whose issuer is IssuerDID.
type IssueCredentialRequest struct {
	IssuerDID string                 `json:"issuerDid"`
	Claims    map[string]interface{} `json:"claims"`
}

// IssueCredentialResponse carries the signed artifact.
type IssueCredentialResponse struct {
	VerifiableCredential json.RawMessage `json:"verifiableCredential"`
}

// VerifyCredentialRequest asks the agent to verify a signed artifact.
type VerifyCredentialRequest struct {
	VerifiableCredential json.RawMessage `json:"verifiableCredential"`
}

// VerifyCredentialResponse is the agent's verification verdict.
type VerifyCredentialResponse struct {
	Verified bool   `json:"verified"`
	Error    string `json:"error,omitempty"`
}
