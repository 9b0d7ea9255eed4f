// Package mocks provides testify doubles for the domain interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"sift.dev/pkg/sift/internal/domain"
)

// MockWorkflow is a testify mock for domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

var _ domain.Workflow = (*MockWorkflow)(nil)

// NewMockWorkflow creates a mock that asserts its expectations on cleanup.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	mockWorkflow := &MockWorkflow{}
	mockWorkflow.Test(t)

	t.Cleanup(func() { mockWorkflow.AssertExpectations(t) })

	return mockWorkflow
}

// Search provides a mock function.
func (_m *MockWorkflow) Search(ctx context.Context, args domain.SearchArgs) error {
	ret := _m.Called(ctx, args)

	return ret.Error(0)
}
