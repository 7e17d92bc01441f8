// Code generated by MockGen. DO NOT EDIT.
// Source: controller.go

// Package credentials_test is a generated GoMock package.
package credentials_test

import (
	context "context"
	json "encoding/json"
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
	echo "github.com/labstack/echo/v4"
	agent "github.com/trustbloc/credvault/pkg/agent"
	entity "github.com/trustbloc/credvault/pkg/entity"
)

// Mockrouter is a mock of router interface.
type Mockrouter struct {
	ctrl     *gomock.Controller
	recorder *MockrouterMockRecorder
}

// MockrouterMockRecorder is the mock recorder for Mockrouter.
type MockrouterMockRecorder struct {
	mock *Mockrouter
}

// NewMockrouter creates a new mock instance.
func NewMockrouter(ctrl *gomock.Controller) *Mockrouter {
	mock := &Mockrouter{ctrl: ctrl}
	mock.recorder = &MockrouterMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *Mockrouter) EXPECT() *MockrouterMockRecorder {
	return m.recorder
}

// DELETE mocks base method.
func (m_2 *Mockrouter) DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	m_2.ctrl.T.Helper()
	varargs := []interface{}{path, h}
	for _, a := range m {
		varargs = append(varargs, a)
	}
	ret := m_2.ctrl.Call(m_2, "DELETE", varargs...)
	ret0, _ := ret[0].(*echo.Route)
	return ret0
}

// DELETE indicates an expected call of DELETE.
func (mr *MockrouterMockRecorder) DELETE(path, h interface{}, m ...interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]interface{}{path, h}, m...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DELETE", reflect.TypeOf((*Mockrouter)(nil).DELETE), varargs...)
}

// GET mocks base method.
func (m_2 *Mockrouter) GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	m_2.ctrl.T.Helper()
	varargs := []interface{}{path, h}
	for _, a := range m {
		varargs = append(varargs, a)
	}
	ret := m_2.ctrl.Call(m_2, "GET", varargs...)
	ret0, _ := ret[0].(*echo.Route)
	return ret0
}

// GET indicates an expected call of GET.
func (mr *MockrouterMockRecorder) GET(path, h interface{}, m ...interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]interface{}{path, h}, m...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GET", reflect.TypeOf((*Mockrouter)(nil).GET), varargs...)
}

// POST mocks base method.
func (m_2 *Mockrouter) POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	m_2.ctrl.T.Helper()
	varargs := []interface{}{path, h}
	for _, a := range m {
		varargs = append(varargs, a)
	}
	ret := m_2.ctrl.Call(m_2, "POST", varargs...)
	ret0, _ := ret[0].(*echo.Route)
	return ret0
}

// POST indicates an expected call of POST.
func (mr *MockrouterMockRecorder) POST(path, h interface{}, m ...interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]interface{}{path, h}, m...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "POST", reflect.TypeOf((*Mockrouter)(nil).POST), varargs...)
}

// MockCredentialService is a mock of credentialService interface.
type MockCredentialService struct {
	ctrl     *gomock.Controller
	recorder *MockCredentialServiceMockRecorder
}

// MockCredentialServiceMockRecorder is the mock recorder for MockCredentialService.
type MockCredentialServiceMockRecorder struct {
	mock *MockCredentialService
}

// NewMockCredentialService creates a new mock instance.
func NewMockCredentialService(ctrl *gomock.Controller) *MockCredentialService {
	mock := &MockCredentialService{ctrl: ctrl}
	mock.recorder = &MockCredentialServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCredentialService) EXPECT() *MockCredentialServiceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockCredentialService) Create(ctx context.Context, claims map[string]interface{}, issuerRef *entity.IssuerRef) (*entity.Credential, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, claims, issuerRef)
	ret0, _ := ret[0].(*entity.Credential)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockCredentialServiceMockRecorder) Create(ctx, claims, issuerRef interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockCredentialService)(nil).Create), ctx, claims, issuerRef)
}

// Delete mocks base method.
func (m *MockCredentialService) Delete(ctx context.Context, hash string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, hash)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockCredentialServiceMockRecorder) Delete(ctx, hash interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockCredentialService)(nil).Delete), ctx, hash)
}

// Get mocks base method.
func (m *MockCredentialService) Get(ctx context.Context, hash string) (*entity.Credential, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, hash)
	ret0, _ := ret[0].(*entity.Credential)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockCredentialServiceMockRecorder) Get(ctx, hash interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockCredentialService)(nil).Get), ctx, hash)
}

// List mocks base method.
func (m *MockCredentialService) List(ctx context.Context, filter *entity.CredentialFilter, page *entity.Page) ([]*entity.Credential, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, filter, page)
	ret0, _ := ret[0].([]*entity.Credential)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockCredentialServiceMockRecorder) List(ctx, filter, page interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockCredentialService)(nil).List), ctx, filter, page)
}

// Save mocks base method.
func (m *MockCredentialService) Save(ctx context.Context, artifact json.RawMessage) (*entity.Credential, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Save", ctx, artifact)
	ret0, _ := ret[0].(*entity.Credential)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Save indicates an expected call of Save.
func (mr *MockCredentialServiceMockRecorder) Save(ctx, artifact interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Save", reflect.TypeOf((*MockCredentialService)(nil).Save), ctx, artifact)
}

// Verify mocks base method.
func (m *MockCredentialService) Verify(ctx context.Context, artifact json.RawMessage) (*agent.VerifyCredentialResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Verify", ctx, artifact)
	ret0, _ := ret[0].(*agent.VerifyCredentialResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Verify indicates an expected call of Verify.
func (mr *MockCredentialServiceMockRecorder) Verify(ctx, artifact interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Verify", reflect.TypeOf((*MockCredentialService)(nil).Verify), ctx, artifact)
}
