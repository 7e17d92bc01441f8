/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package entity defines the records persisted by the vault and the
// contracts shared by every storage backend.
package entity

import (
	"encoding/json"
	"errors"
	"time"
)

// ErrDataNotFound is returned by every store when the requested record
// does not exist.
var ErrDataNotFound = errors.New("data not found")

// KeyType is the cryptographic key type reported by the identity-agent.
type KeyType string

const (
	KeyTypeEd25519    KeyType = "Ed25519"
	KeyTypeSecp256k1  KeyType = "Secp256k1"
	KeyTypeSecp256r1  KeyType = "Secp256r1"
	KeyTypeX25519     KeyType = "X25519"
	KeyTypeBls12381G1 KeyType = "Bls12381G1"
	KeyTypeBls12381G2 KeyType = "Bls12381G2"
)

// EncryptionAlgorithmAESGCM is the only algorithm used for encrypted
// credential twins.
const EncryptionAlgorithmAESGCM = "AES_GCM"

// Identifier is a DID owned by an organization. The DID is globally
// unique; alias is unique within the organization.
type Identifier struct {
	ID              string    `json:"id"`
	DID             string    `json:"did"`
	OrganizationID  string    `json:"organizationId"`
	Provider        string    `json:"provider"`
	Alias           string    `json:"alias"`
	ControllerKeyID string    `json:"controllerKeyId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// CryptoKey is public key material linked to an identifier. The link is
// severed (set to empty), not cascaded, when the identifier goes away.
type CryptoKey struct {
	KID           string                 `json:"kid"`
	KMS           string                 `json:"kms"`
	Type          KeyType                `json:"type"`
	PublicKeyHex  string                 `json:"publicKeyHex"`
	PrivateKeyHex string                 `json:"privateKeyHex,omitempty"`
	Meta          map[string]interface{} `json:"meta,omitempty"`
	IdentifierDID string                 `json:"identifierDid,omitempty"`
}

// PrivateKey holds raw signing material keyed by an opaque alias,
// independent of any identifier linkage.
type PrivateKey struct {
	Alias         string  `json:"alias"`
	Type          KeyType `json:"type"`
	PrivateKeyHex string  `json:"privateKeyHex"`
}

// Service is a DID document service endpoint entry.
type Service struct {
	ID              string   `json:"id"`
	Type            string   `json:"type"`
	ServiceEndpoint []string `json:"serviceEndpoint"`
	Description     string   `json:"description,omitempty"`
	IdentifierDID   string   `json:"identifierDid,omitempty"`
	TenantID        string   `json:"tenantId"`
}

// Credential is a stored verifiable credential. Hash is the content
// hash of the signed artifact and acts as the primary key; ID is a
// secondary unique key defaulting to a generated id.
type Credential struct {
	Hash            string          `json:"hash"`
	ID              string          `json:"id"`
	OrganizationID  string          `json:"organizationId"`
	IssuerID        string          `json:"issuerId,omitempty"`
	SubjectID       string          `json:"subjectId,omitempty"`
	Context         []interface{}   `json:"context,omitempty"`
	Type            []string        `json:"type,omitempty"`
	IssuanceDate    string          `json:"issuanceDate"`
	ExpirationDate  string          `json:"expirationDate,omitempty"`
	Raw             json.RawMessage `json:"raw,omitempty"`
	RevocationList  *int            `json:"revocationList,omitempty"`
	RevocationIndex *int            `json:"revocationIndex,omitempty"`
}

// EncryptedCredential is the symmetric-encrypted duplicate of a
// credential's raw artifact, one-to-one by CredentialID.
type EncryptedCredential struct {
	ID           string `json:"id"`
	Version      int    `json:"version"`
	CredentialID string `json:"credentialId"`
	CipherText   string `json:"cipherText"`
	IV           string `json:"iv"`
	Tag          string `json:"tag"`
	Key          string `json:"key"`
	Algorithm    string `json:"algorithm"`
}

// VCClaim is one flattened subject claim of a credential, used for
// claim-level indexing and search. CredentialID holds the owning
// credential's content hash, not its secondary id.
type VCClaim struct {
	Hash           string   `json:"hash"`
	IssuerID       string   `json:"issuerId"`
	SubjectID      string   `json:"subjectId,omitempty"`
	CredentialID   string   `json:"credentialId"`
	Context        []string `json:"context,omitempty"`
	CredentialType []string `json:"credentialType,omitempty"`
	Type           string   `json:"type"`
	Value          string   `json:"value,omitempty"`
	IsObj          bool     `json:"isObj"`
}

// Presentation is a stored verifiable presentation, content-addressed
// by Hash.
type Presentation struct {
	Hash           string          `json:"hash"`
	TenantID       string          `json:"tenantId"`
	HolderID       string          `json:"holderId"`
	ID             string          `json:"id,omitempty"`
	Context        []interface{}   `json:"context,omitempty"`
	Type           []string        `json:"type,omitempty"`
	IssuanceDate   string          `json:"issuanceDate,omitempty"`
	ExpirationDate string          `json:"expirationDate,omitempty"`
	Raw            json.RawMessage `json:"raw,omitempty"`
}

// Message is a DIDComm-style message exchanged between identifiers.
type Message struct {
	ID          string                 `json:"id"`
	Type        string                 `json:"type"`
	Raw         string                 `json:"raw,omitempty"`
	Data        map[string]interface{} `json:"data,omitempty"`
	ReplyTo     []string               `json:"replyTo,omitempty"`
	ReplyURL    string                 `json:"replyUrl,omitempty"`
	ThreadID    string                 `json:"threadId,omitempty"`
	CreatedAt   string                 `json:"createdAt,omitempty"`
	ExpiresAt   string                 `json:"expiresAt,omitempty"`
	FromID      string                 `json:"fromId,omitempty"`
	ToID        string                 `json:"toId,omitempty"`
	ReturnRoute string                 `json:"returnRoute,omitempty"`
}

// CredentialMessage links a credential to a message. Both sides of the
// composite key cascade on delete.
type CredentialMessage struct {
	CredentialHash string `json:"credentialHash"`
	MessageID      string `json:"messageId"`
}

// PresentationMessage links a presentation to a message.
type PresentationMessage struct {
	PresentationHash string `json:"presentationHash"`
	MessageID        string `json:"messageId"`
}

// PresentationVerifier links a presentation to a verifier DID.
type PresentationVerifier struct {
	PresentationHash string `json:"presentationHash"`
	VerifierDID      string `json:"verifierDid"`
}

// PresentationCredential links a presentation to one of its credentials.
type PresentationCredential struct {
	PresentationHash string `json:"presentationHash"`
	CredentialHash   string `json:"credentialHash"`
}

// IssuerRef optionally names the issuing identifier of a credential by
// alias or DID. An empty ref requests default-identifier resolution.
type IssuerRef struct {
	Alias string `json:"alias,omitempty"`
	DID   string `json:"did,omitempty"`
}

// IsEmpty reports whether neither alias nor DID is set.
func (r *IssuerRef) IsEmpty() bool {
	return r == nil || (r.Alias == "" && r.DID == "")
}

// CredentialFilter narrows credential list operations.
type CredentialFilter struct {
	IssuerDID string
}
