package testhelper

import (
	"testing"

	"github.com/pashagolub/pgxmock/v2"
)

// NewMockPool returns a pgxmock pool that verifies all expectations on cleanup.
func NewMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("testhelper: pgxmock.NewPool: %v", err)
	}

	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unfulfilled pgxmock expectations: %v", err)
		}
		mock.Close()
	})

	return mock
}
