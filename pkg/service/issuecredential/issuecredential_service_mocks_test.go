// Code generated by MockGen. DO NOT EDIT.
// Source: issuecredential_service.go

// Package issuecredential_test is a generated GoMock package.
package issuecredential_test

import (
	context "context"
	json "encoding/json"
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
	agent "github.com/trustbloc/credvault/pkg/agent"
	dataprotect "github.com/trustbloc/credvault/pkg/dataprotect"
	entity "github.com/trustbloc/credvault/pkg/entity"
)

// MockIssuerResolver is a mock of issuerResolver interface.
type MockIssuerResolver struct {
	ctrl     *gomock.Controller
	recorder *MockIssuerResolverMockRecorder
}

// MockIssuerResolverMockRecorder is the mock recorder for MockIssuerResolver.
type MockIssuerResolverMockRecorder struct {
	mock *MockIssuerResolver
}

// NewMockIssuerResolver creates a new mock instance.
func NewMockIssuerResolver(ctrl *gomock.Controller) *MockIssuerResolver {
	mock := &MockIssuerResolver{ctrl: ctrl}
	mock.recorder = &MockIssuerResolverMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIssuerResolver) EXPECT() *MockIssuerResolverMockRecorder {
	return m.recorder
}

// ResolveIssuer mocks base method.
func (m *MockIssuerResolver) ResolveIssuer(ctx context.Context, ref *entity.IssuerRef) (*entity.Identifier, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ResolveIssuer", ctx, ref)
	ret0, _ := ret[0].(*entity.Identifier)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ResolveIssuer indicates an expected call of ResolveIssuer.
func (mr *MockIssuerResolverMockRecorder) ResolveIssuer(ctx, ref interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ResolveIssuer", reflect.TypeOf((*MockIssuerResolver)(nil).ResolveIssuer), ctx, ref)
}

// MockcredentialStore is a mock of credentialStore interface.
type MockcredentialStore struct {
	ctrl     *gomock.Controller
	recorder *MockcredentialStoreMockRecorder
}

// MockcredentialStoreMockRecorder is the mock recorder for MockcredentialStore.
type MockcredentialStoreMockRecorder struct {
	mock *MockcredentialStore
}

// NewMockcredentialStore creates a new mock instance.
func NewMockcredentialStore(ctrl *gomock.Controller) *MockcredentialStore {
	mock := &MockcredentialStore{ctrl: ctrl}
	mock.recorder = &MockcredentialStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockcredentialStore) EXPECT() *MockcredentialStoreMockRecorder {
	return m.recorder
}

// DeleteByHash mocks base method.
func (m *MockcredentialStore) DeleteByHash(ctx context.Context, organizationID, hash string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteByHash", ctx, organizationID, hash)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteByHash indicates an expected call of DeleteByHash.
func (mr *MockcredentialStoreMockRecorder) DeleteByHash(ctx, organizationID, hash interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteByHash", reflect.TypeOf((*MockcredentialStore)(nil).DeleteByHash), ctx, organizationID, hash)
}

// FindByHash mocks base method.
func (m *MockcredentialStore) FindByHash(ctx context.Context, organizationID, hash string) (*entity.Credential, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByHash", ctx, organizationID, hash)
	ret0, _ := ret[0].(*entity.Credential)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByHash indicates an expected call of FindByHash.
func (mr *MockcredentialStoreMockRecorder) FindByHash(ctx, organizationID, hash interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByHash", reflect.TypeOf((*MockcredentialStore)(nil).FindByHash), ctx, organizationID, hash)
}

// FindByID mocks base method.
func (m *MockcredentialStore) FindByID(ctx context.Context, organizationID, id string) (*entity.Credential, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByID", ctx, organizationID, id)
	ret0, _ := ret[0].(*entity.Credential)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByID indicates an expected call of FindByID.
func (mr *MockcredentialStoreMockRecorder) FindByID(ctx, organizationID, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByID", reflect.TypeOf((*MockcredentialStore)(nil).FindByID), ctx, organizationID, id)
}

// List mocks base method.
func (m *MockcredentialStore) List(ctx context.Context, organizationID string, filter *entity.CredentialFilter, page *entity.Page) ([]*entity.Credential, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, organizationID, filter, page)
	ret0, _ := ret[0].([]*entity.Credential)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockcredentialStoreMockRecorder) List(ctx, organizationID, filter, page interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockcredentialStore)(nil).List), ctx, organizationID, filter, page)
}

// Upsert mocks base method.
func (m *MockcredentialStore) Upsert(ctx context.Context, credential *entity.Credential) (*entity.Credential, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Upsert", ctx, credential)
	ret0, _ := ret[0].(*entity.Credential)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Upsert indicates an expected call of Upsert.
func (mr *MockcredentialStoreMockRecorder) Upsert(ctx, credential interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Upsert", reflect.TypeOf((*MockcredentialStore)(nil).Upsert), ctx, credential)
}

// MockencryptedCredentialStore is a mock of encryptedCredentialStore interface.
type MockencryptedCredentialStore struct {
	ctrl     *gomock.Controller
	recorder *MockencryptedCredentialStoreMockRecorder
}

// MockencryptedCredentialStoreMockRecorder is the mock recorder for MockencryptedCredentialStore.
type MockencryptedCredentialStoreMockRecorder struct {
	mock *MockencryptedCredentialStore
}

// NewMockencryptedCredentialStore creates a new mock instance.
func NewMockencryptedCredentialStore(ctrl *gomock.Controller) *MockencryptedCredentialStore {
	mock := &MockencryptedCredentialStore{ctrl: ctrl}
	mock.recorder = &MockencryptedCredentialStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockencryptedCredentialStore) EXPECT() *MockencryptedCredentialStoreMockRecorder {
	return m.recorder
}

// Upsert mocks base method.
func (m *MockencryptedCredentialStore) Upsert(ctx context.Context, encrypted *entity.EncryptedCredential) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Upsert", ctx, encrypted)
	ret0, _ := ret[0].(error)
	return ret0
}

// Upsert indicates an expected call of Upsert.
func (mr *MockencryptedCredentialStoreMockRecorder) Upsert(ctx, encrypted interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Upsert", reflect.TypeOf((*MockencryptedCredentialStore)(nil).Upsert), ctx, encrypted)
}

// MockclaimStore is a mock of claimStore interface.
type MockclaimStore struct {
	ctrl     *gomock.Controller
	recorder *MockclaimStoreMockRecorder
}

// MockclaimStoreMockRecorder is the mock recorder for MockclaimStore.
type MockclaimStoreMockRecorder struct {
	mock *MockclaimStore
}

// NewMockclaimStore creates a new mock instance.
func NewMockclaimStore(ctrl *gomock.Controller) *MockclaimStore {
	mock := &MockclaimStore{ctrl: ctrl}
	mock.recorder = &MockclaimStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockclaimStore) EXPECT() *MockclaimStoreMockRecorder {
	return m.recorder
}

// ReplaceForCredential mocks base method.
func (m *MockclaimStore) ReplaceForCredential(ctx context.Context, credentialID string, claims []*entity.VCClaim) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReplaceForCredential", ctx, credentialID, claims)
	ret0, _ := ret[0].(error)
	return ret0
}

// ReplaceForCredential indicates an expected call of ReplaceForCredential.
func (mr *MockclaimStoreMockRecorder) ReplaceForCredential(ctx, credentialID, claims interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReplaceForCredential", reflect.TypeOf((*MockclaimStore)(nil).ReplaceForCredential), ctx, credentialID, claims)
}

// MockAgentClient is a mock of agentClient interface.
type MockAgentClient struct {
	ctrl     *gomock.Controller
	recorder *MockAgentClientMockRecorder
}

// MockAgentClientMockRecorder is the mock recorder for MockAgentClient.
type MockAgentClientMockRecorder struct {
	mock *MockAgentClient
}

// NewMockAgentClient creates a new mock instance.
func NewMockAgentClient(ctrl *gomock.Controller) *MockAgentClient {
	mock := &MockAgentClient{ctrl: ctrl}
	mock.recorder = &MockAgentClientMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAgentClient) EXPECT() *MockAgentClientMockRecorder {
	return m.recorder
}

// IssueCredential mocks base method.
func (m *MockAgentClient) IssueCredential(ctx context.Context, issuerDID string, claims map[string]interface{}) (json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IssueCredential", ctx, issuerDID, claims)
	ret0, _ := ret[0].(json.RawMessage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// IssueCredential indicates an expected call of IssueCredential.
func (mr *MockAgentClientMockRecorder) IssueCredential(ctx, issuerDID, claims interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IssueCredential", reflect.TypeOf((*MockAgentClient)(nil).IssueCredential), ctx, issuerDID, claims)
}

// VerifyCredential mocks base method.
func (m *MockAgentClient) VerifyCredential(ctx context.Context, artifact json.RawMessage) (*agent.VerifyCredentialResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "VerifyCredential", ctx, artifact)
	ret0, _ := ret[0].(*agent.VerifyCredentialResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// VerifyCredential indicates an expected call of VerifyCredential.
func (mr *MockAgentClientMockRecorder) VerifyCredential(ctx, artifact interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "VerifyCredential", reflect.TypeOf((*MockAgentClient)(nil).VerifyCredential), ctx, artifact)
}

// MockdataProtector is a mock of dataProtector interface.
type MockdataProtector struct {
	ctrl     *gomock.Controller
	recorder *MockdataProtectorMockRecorder
}

// MockdataProtectorMockRecorder is the mock recorder for MockdataProtector.
type MockdataProtectorMockRecorder struct {
	mock *MockdataProtector
}

// NewMockdataProtector creates a new mock instance.
func NewMockdataProtector(ctrl *gomock.Controller) *MockdataProtector {
	mock := &MockdataProtector{ctrl: ctrl}
	mock.recorder = &MockdataProtectorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockdataProtector) EXPECT() *MockdataProtectorMockRecorder {
	return m.recorder
}

// Encrypt mocks base method.
func (m *MockdataProtector) Encrypt(data []byte) (*dataprotect.Payload, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Encrypt", data)
	ret0, _ := ret[0].(*dataprotect.Payload)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Encrypt indicates an expected call of Encrypt.
func (mr *MockdataProtectorMockRecorder) Encrypt(data interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Encrypt", reflect.TypeOf((*MockdataProtector)(nil).Encrypt), data)
}
