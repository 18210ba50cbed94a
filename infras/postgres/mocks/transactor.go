package mocks

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/mock/gomock"
)

// PassThrough makes WithTransaction run fn with a nil transaction and return its error.
func PassThrough(m *MockTransactor) *gomock.Call {
	return m.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(*sqlx.Tx) error) error {
			return fn(nil)
		}).AnyTimes()
}
