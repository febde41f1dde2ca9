package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// ObjectStorage is a mock type for the ObjectStorage type
type ObjectStorage struct {
	mock.Mock
}

// Put provides a mock function with given fields: ctx, path, body, contentType
func (_m *ObjectStorage) Put(ctx context.Context, path string, body []byte, contentType string) error {
	ret := _m.Called(ctx, path, body, contentType)

	return ret.Error(0)
}

// PublicURL provides a mock function with given fields: path
func (_m *ObjectStorage) PublicURL(path string) string {
	ret := _m.Called(path)

	var r0 string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(string)
	}

	return r0
}

// SignedURL provides a mock function with given fields: ctx, path, expiry
func (_m *ObjectStorage) SignedURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	ret := _m.Called(ctx, path, expiry)

	var r0 string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(string)
	}

	return r0, ret.Error(1)
}

// NewObjectStorage creates a new instance of ObjectStorage. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewObjectStorage(t interface {
	mock.TestingT
	Cleanup(func())
}) *ObjectStorage {
	m := &ObjectStorage{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
