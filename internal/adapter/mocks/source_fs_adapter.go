// Package mocks provides testify doubles for the adapter ports.
package mocks

import (
	"context"
	"os"

	"github.com/stretchr/testify/mock"
	"sift.dev/pkg/sift/internal/adapter"
	m "sift.dev/pkg/sift/internal/model"
)

// MockSourceFSAdapter is a testify mock for adapter.SourceFSAdapter.
type MockSourceFSAdapter struct {
	mock.Mock
}

var _ adapter.SourceFSAdapter = (*MockSourceFSAdapter)(nil)

// NewMockSourceFSAdapter creates a mock that asserts its expectations on cleanup.
func NewMockSourceFSAdapter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSourceFSAdapter {
	mockAdapter := &MockSourceFSAdapter{}
	mockAdapter.Test(t)

	t.Cleanup(func() { mockAdapter.AssertExpectations(t) })

	return mockAdapter
}

// Getwd provides a mock function.
func (_m *MockSourceFSAdapter) Getwd(ctx context.Context) (m.Path, error) {
	ret := _m.Called(ctx)

	return ret.Get(0).(m.Path), ret.Error(1)
}

// Walk provides a mock function. When the expectation returns a
// []WalkEntry as its second value, each entry is fed to fn in order.
func (_m *MockSourceFSAdapter) Walk(ctx context.Context, root m.Path, recursive bool, fn adapter.FilepathWalkFunc) error {
	ret := _m.Called(ctx, root, recursive, fn)

	if len(ret) > 1 {
		entries, _ := ret.Get(1).([]WalkEntry)
		for _, entry := range entries {
			if err := fn(entry.Path, entry.Info, entry.Err); err != nil {
				return err
			}
		}
	}

	return ret.Error(0)
}

// ReadFile provides a mock function.
func (_m *MockSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	ret := _m.Called(ctx, path)

	var data []byte
	if v := ret.Get(0); v != nil {
		data = v.([]byte)
	}

	return data, ret.Error(1)
}

// FileInfo provides a mock function.
func (_m *MockSourceFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	ret := _m.Called(ctx, path)

	var info os.FileInfo
	if v := ret.Get(0); v != nil {
		info = v.(os.FileInfo)
	}

	return info, ret.Error(1)
}

// WalkEntry is one callback invocation replayed by the Walk mock.
type WalkEntry struct {
	Path string
	Info os.FileInfo
	Err  error
}
