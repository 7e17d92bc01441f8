// Code generated by MockGen. DO NOT EDIT.
// Source: controller.go

// Package identifiers_test is a generated GoMock package.
package identifiers_test

import (
	context "context"
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
	echo "github.com/labstack/echo/v4"
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

// PUT mocks base method.
func (m_2 *Mockrouter) PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	m_2.ctrl.T.Helper()
	varargs := []interface{}{path, h}
	for _, a := range m {
		varargs = append(varargs, a)
	}
	ret := m_2.ctrl.Call(m_2, "PUT", varargs...)
	ret0, _ := ret[0].(*echo.Route)
	return ret0
}

// PUT indicates an expected call of PUT.
func (mr *MockrouterMockRecorder) PUT(path, h interface{}, m ...interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]interface{}{path, h}, m...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PUT", reflect.TypeOf((*Mockrouter)(nil).PUT), varargs...)
}

// MockIdentifierService is a mock of identifierService interface.
type MockIdentifierService struct {
	ctrl     *gomock.Controller
	recorder *MockIdentifierServiceMockRecorder
}

// MockIdentifierServiceMockRecorder is the mock recorder for MockIdentifierService.
type MockIdentifierServiceMockRecorder struct {
	mock *MockIdentifierService
}

// NewMockIdentifierService creates a new mock instance.
func NewMockIdentifierService(ctrl *gomock.Controller) *MockIdentifierService {
	mock := &MockIdentifierService{ctrl: ctrl}
	mock.recorder = &MockIdentifierServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIdentifierService) EXPECT() *MockIdentifierServiceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockIdentifierService) Create(ctx context.Context, alias string) (*entity.Identifier, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, alias)
	ret0, _ := ret[0].(*entity.Identifier)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockIdentifierServiceMockRecorder) Create(ctx, alias interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockIdentifierService)(nil).Create), ctx, alias)
}

// EnsureDefault mocks base method.
func (m *MockIdentifierService) EnsureDefault(ctx context.Context) (*entity.Identifier, string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EnsureDefault", ctx)
	ret0, _ := ret[0].(*entity.Identifier)
	ret1, _ := ret[1].(string)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// EnsureDefault indicates an expected call of EnsureDefault.
func (mr *MockIdentifierServiceMockRecorder) EnsureDefault(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EnsureDefault", reflect.TypeOf((*MockIdentifierService)(nil).EnsureDefault), ctx)
}

// Get mocks base method.
func (m *MockIdentifierService) Get(ctx context.Context, did string) (*entity.Identifier, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, did)
	ret0, _ := ret[0].(*entity.Identifier)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockIdentifierServiceMockRecorder) Get(ctx, did interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockIdentifierService)(nil).Get), ctx, did)
}

// List mocks base method.
func (m *MockIdentifierService) List(ctx context.Context) ([]*entity.Identifier, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx)
	ret0, _ := ret[0].([]*entity.Identifier)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockIdentifierServiceMockRecorder) List(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockIdentifierService)(nil).List), ctx)
}

// UpdateAlias mocks base method.
func (m *MockIdentifierService) UpdateAlias(ctx context.Context, did, alias string) (*entity.Identifier, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateAlias", ctx, did, alias)
	ret0, _ := ret[0].(*entity.Identifier)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateAlias indicates an expected call of UpdateAlias.
func (mr *MockIdentifierServiceMockRecorder) UpdateAlias(ctx, did, alias interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateAlias", reflect.TypeOf((*MockIdentifierService)(nil).UpdateAlias), ctx, did, alias)
}
