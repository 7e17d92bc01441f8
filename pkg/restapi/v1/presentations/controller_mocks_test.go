// Code generated by MockGen. DO NOT EDIT.
// Source: controller.go

// Package presentations_test is a generated GoMock package.
package presentations_test

import (
	context "context"
	json "encoding/json"
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
	echo "github.com/labstack/echo/v4"
	entity "github.com/trustbloc/credvault/pkg/entity"
	presentation "github.com/trustbloc/credvault/pkg/service/presentation"
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

// MockPresentationService is a mock of presentationService interface.
type MockPresentationService struct {
	ctrl     *gomock.Controller
	recorder *MockPresentationServiceMockRecorder
}

// MockPresentationServiceMockRecorder is the mock recorder for MockPresentationService.
type MockPresentationServiceMockRecorder struct {
	mock *MockPresentationService
}

// NewMockPresentationService creates a new mock instance.
func NewMockPresentationService(ctrl *gomock.Controller) *MockPresentationService {
	mock := &MockPresentationService{ctrl: ctrl}
	mock.recorder = &MockPresentationServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPresentationService) EXPECT() *MockPresentationServiceMockRecorder {
	return m.recorder
}

// Delete mocks base method.
func (m *MockPresentationService) Delete(ctx context.Context, hash string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, hash)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockPresentationServiceMockRecorder) Delete(ctx, hash interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockPresentationService)(nil).Delete), ctx, hash)
}

// Get mocks base method.
func (m *MockPresentationService) Get(ctx context.Context, hash string) (*presentation.Detail, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, hash)
	ret0, _ := ret[0].(*presentation.Detail)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockPresentationServiceMockRecorder) Get(ctx, hash interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockPresentationService)(nil).Get), ctx, hash)
}

// List mocks base method.
func (m *MockPresentationService) List(ctx context.Context, page *entity.Page) ([]*entity.Presentation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, page)
	ret0, _ := ret[0].([]*entity.Presentation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockPresentationServiceMockRecorder) List(ctx, page interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockPresentationService)(nil).List), ctx, page)
}

// Save mocks base method.
func (m *MockPresentationService) Save(ctx context.Context, artifact json.RawMessage) (*entity.Presentation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Save", ctx, artifact)
	ret0, _ := ret[0].(*entity.Presentation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Save indicates an expected call of Save.
func (mr *MockPresentationServiceMockRecorder) Save(ctx, artifact interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Save", reflect.TypeOf((*MockPresentationService)(nil).Save), ctx, artifact)
}
