package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestPostgresClassify_Retryable(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	retryable := []string{
		pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		pgerrcode.CannotConnectNow,
	}

	for _, code := range retryable {
		if got := classifier.Classify(pgError(code)); got != Retryable {
			t.Errorf("code %s: expected Retryable, got %v", code, got)
		}
	}
}

func TestPostgresClassify_NonRetryable(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	nonRetryable := []string{
		pgerrcode.UniqueViolation,
		pgerrcode.ForeignKeyViolation,
		pgerrcode.SyntaxError,
		pgerrcode.InvalidTextRepresentation,
	}

	for _, code := range nonRetryable {
		if got := classifier.Classify(pgError(code)); got != NonRetryable {
			t.Errorf("code %s: expected NonRetryable, got %v", code, got)
		}
	}
}

func TestPostgresClassify_NonPgError(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	if got := classifier.Classify(errors.New("plain error")); got != NonRetryable {
		t.Errorf("expected NonRetryable for non-pg error, got %v", got)
	}
	if got := classifier.Classify(nil); got != NonRetryable {
		t.Errorf("expected NonRetryable for nil error, got %v", got)
	}
}

func TestPostgresViolation(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	cases := []struct {
		code string
		want Violation
	}{
		{pgerrcode.UniqueViolation, ViolationUnique},
		{pgerrcode.ForeignKeyViolation, ViolationForeignKey},
		{pgerrcode.NotNullViolation, ViolationOther},
		{pgerrcode.CheckViolation, ViolationOther},
		{pgerrcode.ConnectionException, ViolationNone},
	}

	for _, tc := range cases {
		if got := classifier.Violation(pgError(tc.code)); got != tc.want {
			t.Errorf("code %s: expected %v, got %v", tc.code, tc.want, got)
		}
	}
}

func TestPostgresViolation_WrappedError(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	wrapped := fmt.Errorf("insert failed: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation})
	if got := classifier.Violation(wrapped); got != ViolationUnique {
		t.Errorf("expected ViolationUnique through wrapping, got %v", got)
	}
}
