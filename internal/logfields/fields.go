/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logfields

import (
	"go.uber.org/zap"
)

// Log Fields.
const (
	FieldOrganizationID   = "organizationID"
	FieldTenantID         = "tenantID"
	FieldDID              = "did"
	FieldAlias            = "alias"
	FieldCredentialHash   = "credentialHash"
	FieldCredentialID     = "credentialID"
	FieldPresentationHash = "presentationHash"
	FieldMessageID        = "messageID"
	FieldClaimCount       = "claimCount"
	FieldRawStoreKey      = "rawStoreKey"
	FieldHostURL          = "hostURL"
)

// WithOrganizationID sets the organizationID field.
func WithOrganizationID(value string) zap.Field {
	return zap.String(FieldOrganizationID, value)
}

// WithTenantID sets the tenantID field.
func WithTenantID(value string) zap.Field {
	return zap.String(FieldTenantID, value)
}

// WithDID sets the did field.
func WithDID(value string) zap.Field {
	return zap.String(FieldDID, value)
}

// WithAlias sets the alias field.
func WithAlias(value string) zap.Field {
	return zap.String(FieldAlias, value)
}

// WithCredentialHash sets the credentialHash field.
func WithCredentialHash(value string) zap.Field {
	return zap.String(FieldCredentialHash, value)
}

// WithCredentialID sets the credentialID field.
func WithCredentialID(value string) zap.Field {
	return zap.String(FieldCredentialID, value)
}

// WithPresentationHash sets the presentationHash field.
func WithPresentationHash(value string) zap.Field {
	return zap.String(FieldPresentationHash, value)
}

// WithMessageID sets the messageID field.
func WithMessageID(value string) zap.Field {
	return zap.String(FieldMessageID, value)
}

// WithClaimCount sets the claimCount field.
func WithClaimCount(value int) zap.Field {
	return zap.Int(FieldClaimCount, value)
}

// WithRawStoreKey sets the rawStoreKey field.
func WithRawStoreKey(value string) zap.Field {
	return zap.String(FieldRawStoreKey, value)
}

// WithHostURL sets the hostURL field.
func WithHostURL(value string) zap.Field {
	return zap.String(FieldHostURL, value)
}
