// Package store implements the tenant-scoped data-access layer over the
// five OMEX tables (users, products, customers, sales, sale_items).
// Every query is filtered by the authenticated user's id; rows belonging
// to another tenant behave exactly like missing rows.
package store

import (
	"errors"
	"net"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for callers that need raw reporting
// queries (dashboard, analytics).
func (s *Store) DB() *gorm.DB {
	return s.db
}

const (
	retryAttempts = 3
	retryBackoff  = 150 * time.Millisecond
)

// withRetry runs fn up to retryAttempts times, retrying only failures
// classified as transient. The last error is returned wrapped as a
// TransientError so callers can distinguish it from data errors.
func withRetry(fn func() error) error {
	var err error
	for attempt := 0; attempt < retryAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(retryBackoff * time.Duration(attempt))
		}
		err = fn()
		if err == nil || !isTransient(err) {
			return err
		}
	}
	return &TransientError{Err: err}
}

func isTransient(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "i/o timeout")
}
