package database

import (
	"context"
	"errors"
	"testing"

	errs "github.com/kunalPisolkar24/payflow/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestErrorMapper_MapError(t *testing.T) {
	mapper := NewErrorMapper()

	testCases := []struct {
		name     string
		err      error
		expected error
	}{
		{"Serialization failure", errors.New("ERROR: could not serialize access due to concurrent update (SQLSTATE 40001)"), errs.ErrStorageConflict},
		{"Deadlock", errors.New("ERROR: deadlock detected (SQLSTATE 40P01)"), errs.ErrStorageConflict},
		{"Connection refused", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), errs.ErrDatabaseConnection},
		{"Deadline", context.DeadlineExceeded, errs.ErrDatabaseConnection},
		{"Already mapped", errs.ErrStorageConflict, errs.ErrStorageConflict},
		{"Unknown", errors.New("something odd"), errs.ErrInternalServer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, mapper.MapError(tc.err, "commit"), tc.expected)
		})
	}

	assert.NoError(t, mapper.MapError(nil, "commit"))
}
