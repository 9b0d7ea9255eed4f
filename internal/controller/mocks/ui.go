// Package mocks provides testify doubles for the controller ports.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"sift.dev/pkg/sift/internal/controller"
	m "sift.dev/pkg/sift/internal/model"
)

// MockUI is a testify mock for controller.UI.
type MockUI struct {
	mock.Mock
}

var _ controller.UI = (*MockUI)(nil)

// NewMockUI creates a mock that asserts its expectations on cleanup.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	mockUI := &MockUI{}
	mockUI.Test(t)

	t.Cleanup(func() { mockUI.AssertExpectations(t) })

	return mockUI
}

// DisplayMatches provides a mock function.
func (_m *MockUI) DisplayMatches(ctx context.Context, groups []m.FileMatchGroup) error {
	ret := _m.Called(ctx, groups)

	return ret.Error(0)
}
