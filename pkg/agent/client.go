/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package agent is the REST client for the external identity-agent,
// which owns DID creation, key custody and credential signing. The
// vault never signs or resolves on its own.
package agent

//go:generate mockgen -destination client_mocks_test.go -package agent_test -source=client.go -mock_names httpClient=MockHTTPClient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	createIdentifierEndpoint = "/v1/identifiers"
	setAliasEndpoint         = "/v1/identifiers/alias"
	resolveDIDEndpoint       = "/v1/resolve"
	issueCredentialEndpoint  = "/v1/credentials/issue"
	verifyCredentialEndpoint = "/v1/credentials/verify"

	defaultCallTimeout = 15 * time.Second
	maxRetries         = 2
)

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client calls the identity-agent REST API.
type Client struct {
	hostURI     string
	client      httpClient
	callTimeout time.Duration
}

type clientOpts struct {
	callTimeout time.Duration
}

// ClientOpt configures Client.
type ClientOpt func(opts *clientOpts)

// WithCallTimeout bounds every agent call.
func WithCallTimeout(timeout time.Duration) ClientOpt {
	return func(opts *clientOpts) {
		opts.callTimeout = timeout
	}
}

// NewClient creates Client.
func NewClient(hostURI string, client httpClient, opts ...ClientOpt) *Client {
	op := &clientOpts{
		callTimeout: defaultCallTimeout,
	}

	for _, fn := range opts {
		fn(op)
	}

	return &Client{
		hostURI:     hostURI,
		client:      client,
		callTimeout: op.callTimeout,
	}
}

// CreateIdentifier creates a DID with the given alias.
func (c *Client) CreateIdentifier(ctx context.Context, alias, provider string) (*Identifier, error) {
	return sendInternal[CreateIdentifierRequest, Identifier](
		ctx,
		c,
		fmt.Sprintf("%s%s", c.hostURI, createIdentifierEndpoint),
		&CreateIdentifierRequest{Alias: alias, Provider: provider},
	)
}

// SetAlias renames the DID's alias.
func (c *Client) SetAlias(ctx context.Context, did, alias string) error {
	_, err := sendInternal[SetAliasRequest, SetAliasResponse](
		ctx,
		c,
		fmt.Sprintf("%s%s", c.hostURI, setAliasEndpoint),
		&SetAliasRequest{DID: did, Alias: alias},
	)

	return err
}

// ResolveDID resolves a DID through the agent's generic resolver.
func (c *Client) ResolveDID(ctx context.Context, did string) (json.RawMessage, error) {
	resp, err := sendInternal[ResolveDIDRequest, ResolveDIDResponse](
		ctx,
		c,
		fmt.Sprintf("%s%s", c.hostURI, resolveDIDEndpoint),
		&ResolveDIDRequest{DID: did},
	)
	if err != nil {
		return nil, err
	}

	return resp.DIDDocument, nil
}

// IssueCredential signs claims as issuerDID and returns the artifact.
func (c *Client) IssueCredential(ctx context.Context, issuerDID string,
	claims map[string]interface{}) (json.RawMessage, error) {
	resp, err := sendInternal[IssueCredentialRequest, IssueCredentialResponse](
		ctx,
		c,
		fmt.Sprintf("%s%s", c.hostURI, issueCredentialEndpoint),
		&IssueCredentialRequest{IssuerDID: issuerDID, Claims: claims},
	)
	if err != nil {
		return nil, err
	}

	return resp.VerifiableCredential, nil
}

// VerifyCredential verifies a signed artifact.
func (c *Client) VerifyCredential(ctx context.Context, artifact json.RawMessage) (*VerifyCredentialResponse, error) {
	return sendInternal[VerifyCredentialRequest, VerifyCredentialResponse](
		ctx,
		c,
		fmt.Sprintf("%s%s", c.hostURI, verifyCredentialEndpoint),
		&VerifyCredentialRequest{VerifiableCredential: artifact},
	)
}

func sendInternal[T any, V any](ctx context.Context, c *Client, url string, request *T) (*V, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	var final *V

	op := func() error {
		var opErr error

		final, opErr = sendOnce[T, V](ctxWithTimeout, c.client, url, request)

		return opErr
	}

	err := backoff.Retry(op,
		backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctxWithTimeout))
	if err != nil {
		return nil, err
	}

	return final, nil
}

func sendOnce[T any, V any](ctx context.Context, client httpClient, url string, request *T) (*V, error) {
	var buf bytes.Buffer

	if request != nil {
		if reqMarshalErr := json.NewEncoder(&buf).Encode(request); reqMarshalErr != nil {
			return nil, backoff.Permanent(reqMarshalErr)
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return nil, backoff.Permanent(err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, httpErr := client.Do(httpReq)
	if httpErr != nil {
		return nil, httpErr
	}

	defer func() {
		_ = resp.Body.Close() //nolint: errcheck
	}()

	body, bodyErr := io.ReadAll(resp.Body)
	if bodyErr != nil {
		return nil, bodyErr
	}

	if resp.StatusCode != http.StatusOK {
		respErr := fmt.Errorf("unexpected status code %v with body %v", resp.StatusCode, string(body))

		// Only server-side failures are worth retrying.
		if resp.StatusCode < http.StatusInternalServerError {
			return nil, backoff.Permanent(respErr)
		}

		return nil, respErr
	}

	var final V

	if unmarshalErr := json.Unmarshal(body, &final); unmarshalErr != nil {
		return nil, backoff.Permanent(unmarshalErr)
	}

	return &final, nil
}
