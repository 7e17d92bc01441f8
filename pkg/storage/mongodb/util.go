/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mongodb

// Collection names shared by the stores. The credential delete cascade
// spans several of them, so the names live here rather than in the
// individual store packages.
const (
	IdentifiersCollection             = "identifiers"
	CryptoKeysCollection              = "crypto_keys"
	PrivateKeysCollection             = "private_keys"
	ServicesCollection                = "services"
	CredentialsCollection             = "credentials"
	EncryptedCredentialsCollection    = "encrypted_credentials"
	VCClaimsCollection                = "vc_claims"
	PresentationsCollection           = "presentations"
	MessagesCollection                = "messages"
	CredentialMessagesCollection      = "credential_messages"
	PresentationMessagesCollection    = "presentation_messages"
	PresentationVerifiersCollection   = "presentation_verifiers"
	PresentationCredentialsCollection = "presentation_credentials"
)
