// Package mocks holds testify mocks of the datasources interfaces. Each mock offers an
// EXPECT() helper so tests can write mock.EXPECT().Method(args...).Return(...).
package mocks

import (
	"github.com/stretchr/testify/mock"
)

// TestingT is the subset of *testing.T the constructors need.
type TestingT interface {
	mock.TestingT
	Cleanup(func())
}

func register(m *mock.Mock, t TestingT) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

// ret returns the i'th return value as T, or T's zero value when it was set to nil.
func ret[T any](args mock.Arguments, i int) T {
	v, _ := args.Get(i).(T)
	return v
}
