package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRetryGivesUpOnDataErrors(t *testing.T) {
	calls := 0
	dataErr := errors.New("record not found")
	err := withRetry(func() error {
		calls++
		return dataErr
	})
	assert.Equal(t, 1, calls)
	assert.Equal(t, dataErr, err)
}

func TestWithRetryRetriesTransientFailures(t *testing.T) {
	calls := 0
	err := withRetry(func() error {
		calls++
		if calls < 3 {
			return errors.New("dial tcp: connection refused")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithRetrySurfacesTransientErrorAfterExhaustion(t *testing.T) {
	calls := 0
	err := withRetry(func() error {
		calls++
		return errors.New("read: connection reset by peer")
	})
	assert.Equal(t, retryAttempts, calls)

	var transient *TransientError
	require.ErrorAs(t, err, &transient)
}
