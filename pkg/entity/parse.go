/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package entity

import (
	"encoding/json"
	"fmt"
)

// ParsedCredential is the subset of a signed artifact the vault indexes.
// The artifact itself stays opaque; signing and full validation belong
// to the identity-agent.
type ParsedCredential struct {
	ID             string
	IssuerID       string
	SubjectID      string
	Context        []interface{}
	Type           []string
	IssuanceDate   string
	ExpirationDate string
	Subject        map[string]interface{}
}

// ParsedPresentation is the indexed subset of a signed presentation.
type ParsedPresentation struct {
	ID             string
	HolderID       string
	Context        []interface{}
	Type           []string
	IssuanceDate   string
	ExpirationDate string
	Verifiers      []string
}

// ParseCredential extracts index fields from a signed credential
// artifact.
func ParseCredential(raw json.RawMessage) (*ParsedCredential, error) {
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse credential: %w", err)
	}

	parsed := &ParsedCredential{
		ID:             stringField(doc, "id"),
		IssuerID:       extractIssuer(doc["issuer"]),
		Context:        anyArray(doc["@context"]),
		Type:           stringArray(doc["type"]),
		IssuanceDate:   stringField(doc, "issuanceDate"),
		ExpirationDate: stringField(doc, "expirationDate"),
	}

	if subject, ok := doc["credentialSubject"].(map[string]interface{}); ok {
		parsed.Subject = subject
		parsed.SubjectID = stringField(subject, "id")
	} else if subjects, ok := doc["credentialSubject"].([]interface{}); ok {
		for _, item := range subjects {
			m, isMap := item.(map[string]interface{})
			if !isMap {
				continue
			}

			if parsed.Subject == nil {
				parsed.Subject = m
			}

			if id := stringField(m, "id"); id != "" {
				parsed.SubjectID = id
				break
			}
		}
	}

	return parsed, nil
}

// ParsePresentation extracts index fields from a signed presentation
// artifact. The holder must be a DID string.
func ParsePresentation(raw json.RawMessage) (*ParsedPresentation, error) {
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse presentation: %w", err)
	}

	holder := stringField(doc, "holder")
	if holder == "" {
		return nil, fmt.Errorf("presentation holder must be a DID string")
	}

	return &ParsedPresentation{
		ID:             stringField(doc, "id"),
		HolderID:       holder,
		Context:        anyArray(doc["@context"]),
		Type:           stringArray(doc["type"]),
		IssuanceDate:   stringField(doc, "issuanceDate"),
		ExpirationDate: stringField(doc, "expirationDate"),
		Verifiers:      stringArray(doc["verifier"]),
	}, nil
}

func extractIssuer(issuer interface{}) string {
	switch v := issuer.(type) {
	case string:
		return v
	case map[string]interface{}:
		return stringField(v, "id")
	default:
		return ""
	}
}

func stringField(doc map[string]interface{}, key string) string {
	s, _ := doc[key].(string)
	return s
}

func anyArray(value interface{}) []interface{} {
	switch v := value.(type) {
	case nil:
		return nil
	case []interface{}:
		return v
	default:
		return []interface{}{v}
	}
}

func stringArray(value interface{}) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		return []string{v}
	case []interface{}:
		out := make([]string, 0, len(v))

		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}

		return out
	default:
		return nil
	}
}
