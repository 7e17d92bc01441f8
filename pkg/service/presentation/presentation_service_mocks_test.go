// Code generated by MockGen. DO NOT EDIT.
// Source: presentation_service.go

// Package presentation_test is a generated GoMock package.
package presentation_test

import (
	context "context"
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
	entity "github.com/trustbloc/credvault/pkg/entity"
)

// MockpresentationStore is a mock of presentationStore interface.
type MockpresentationStore struct {
	ctrl     *gomock.Controller
	recorder *MockpresentationStoreMockRecorder
}

// MockpresentationStoreMockRecorder is the mock recorder for MockpresentationStore.
type MockpresentationStoreMockRecorder struct {
	mock *MockpresentationStore
}

// NewMockpresentationStore creates a new mock instance.
func NewMockpresentationStore(ctrl *gomock.Controller) *MockpresentationStore {
	mock := &MockpresentationStore{ctrl: ctrl}
	mock.recorder = &MockpresentationStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockpresentationStore) EXPECT() *MockpresentationStoreMockRecorder {
	return m.recorder
}

// DeleteByHash mocks base method.
func (m *MockpresentationStore) DeleteByHash(ctx context.Context, tenantID, hash string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteByHash", ctx, tenantID, hash)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteByHash indicates an expected call of DeleteByHash.
func (mr *MockpresentationStoreMockRecorder) DeleteByHash(ctx, tenantID, hash interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteByHash", reflect.TypeOf((*MockpresentationStore)(nil).DeleteByHash), ctx, tenantID, hash)
}

// FindByHash mocks base method.
func (m *MockpresentationStore) FindByHash(ctx context.Context, tenantID, hash string) (*entity.Presentation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByHash", ctx, tenantID, hash)
	ret0, _ := ret[0].(*entity.Presentation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByHash indicates an expected call of FindByHash.
func (mr *MockpresentationStoreMockRecorder) FindByHash(ctx, tenantID, hash interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByHash", reflect.TypeOf((*MockpresentationStore)(nil).FindByHash), ctx, tenantID, hash)
}

// List mocks base method.
func (m *MockpresentationStore) List(ctx context.Context, tenantID string, page *entity.Page) ([]*entity.Presentation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, tenantID, page)
	ret0, _ := ret[0].([]*entity.Presentation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockpresentationStoreMockRecorder) List(ctx, tenantID, page interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockpresentationStore)(nil).List), ctx, tenantID, page)
}

// Upsert mocks base method.
func (m *MockpresentationStore) Upsert(ctx context.Context, presentation *entity.Presentation) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Upsert", ctx, presentation)
	ret0, _ := ret[0].(error)
	return ret0
}

// Upsert indicates an expected call of Upsert.
func (mr *MockpresentationStoreMockRecorder) Upsert(ctx, presentation interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Upsert", reflect.TypeOf((*MockpresentationStore)(nil).Upsert), ctx, presentation)
}

// MocklinkStore is a mock of linkStore interface.
type MocklinkStore struct {
	ctrl     *gomock.Controller
	recorder *MocklinkStoreMockRecorder
}

// MocklinkStoreMockRecorder is the mock recorder for MocklinkStore.
type MocklinkStoreMockRecorder struct {
	mock *MocklinkStore
}

// NewMocklinkStore creates a new mock instance.
func NewMocklinkStore(ctrl *gomock.Controller) *MocklinkStore {
	mock := &MocklinkStore{ctrl: ctrl}
	mock.recorder = &MocklinkStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MocklinkStore) EXPECT() *MocklinkStoreMockRecorder {
	return m.recorder
}

// CredentialHashesByPresentation mocks base method.
func (m *MocklinkStore) CredentialHashesByPresentation(ctx context.Context, presentationHash string) ([]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CredentialHashesByPresentation", ctx, presentationHash)
	ret0, _ := ret[0].([]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CredentialHashesByPresentation indicates an expected call of CredentialHashesByPresentation.
func (mr *MocklinkStoreMockRecorder) CredentialHashesByPresentation(ctx, presentationHash interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CredentialHashesByPresentation", reflect.TypeOf((*MocklinkStore)(nil).CredentialHashesByPresentation), ctx, presentationHash)
}

// ReplaceCredentials mocks base method.
func (m *MocklinkStore) ReplaceCredentials(ctx context.Context, presentationHash string, credentialHashes []string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReplaceCredentials", ctx, presentationHash, credentialHashes)
	ret0, _ := ret[0].(error)
	return ret0
}

// ReplaceCredentials indicates an expected call of ReplaceCredentials.
func (mr *MocklinkStoreMockRecorder) ReplaceCredentials(ctx, presentationHash, credentialHashes interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReplaceCredentials", reflect.TypeOf((*MocklinkStore)(nil).ReplaceCredentials), ctx, presentationHash, credentialHashes)
}

// ReplaceVerifiers mocks base method.
func (m *MocklinkStore) ReplaceVerifiers(ctx context.Context, presentationHash string, verifierDIDs []string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReplaceVerifiers", ctx, presentationHash, verifierDIDs)
	ret0, _ := ret[0].(error)
	return ret0
}

// ReplaceVerifiers indicates an expected call of ReplaceVerifiers.
func (mr *MocklinkStoreMockRecorder) ReplaceVerifiers(ctx, presentationHash, verifierDIDs interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReplaceVerifiers", reflect.TypeOf((*MocklinkStore)(nil).ReplaceVerifiers), ctx, presentationHash, verifierDIDs)
}

// VerifiersByPresentation mocks base method.
func (m *MocklinkStore) VerifiersByPresentation(ctx context.Context, presentationHash string) ([]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "VerifiersByPresentation", ctx, presentationHash)
	ret0, _ := ret[0].([]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// VerifiersByPresentation indicates an expected call of VerifiersByPresentation.
func (mr *MocklinkStoreMockRecorder) VerifiersByPresentation(ctx, presentationHash interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "VerifiersByPresentation", reflect.TypeOf((*MocklinkStore)(nil).VerifiersByPresentation), ctx, presentationHash)
}
