package gn

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockQuerier is a testify mock of Querier
type MockQuerier struct {
	mock.Mock
}

// NewMockQuerier creates a MockQuerier that asserts its expectations on cleanup
func NewMockQuerier(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQuerier {
	m := &MockQuerier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockQuerier) Sources(ctx context.Context, outputDir, target string) ([]string, error) {
	args := m.Called(ctx, outputDir, target)
	var sources []string
	if v := args.Get(0); v != nil {
		sources = v.([]string)
	}
	return sources, args.Error(1)
}
