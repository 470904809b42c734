package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mattn/go-sqlite3"
)

func sqliteError(code sqlite3.ErrNo, extended sqlite3.ErrNoExtended) error {
	return sqlite3.Error{Code: code, ExtendedCode: extended}
}

func TestSQLiteClassify_Retryable(t *testing.T) {
	classifier := NewSQLiteErrorClassifier()

	if got := classifier.Classify(sqliteError(sqlite3.ErrBusy, 0)); got != Retryable {
		t.Errorf("SQLITE_BUSY: expected Retryable, got %v", got)
	}
	if got := classifier.Classify(sqliteError(sqlite3.ErrLocked, 0)); got != Retryable {
		t.Errorf("SQLITE_LOCKED: expected Retryable, got %v", got)
	}
}

func TestSQLiteClassify_NonRetryable(t *testing.T) {
	classifier := NewSQLiteErrorClassifier()

	if got := classifier.Classify(sqliteError(sqlite3.ErrConstraint, sqlite3.ErrConstraintUnique)); got != NonRetryable {
		t.Errorf("constraint violation: expected NonRetryable, got %v", got)
	}
	if got := classifier.Classify(errors.New("plain error")); got != NonRetryable {
		t.Errorf("plain error: expected NonRetryable, got %v", got)
	}
}

func TestSQLiteViolation(t *testing.T) {
	classifier := NewSQLiteErrorClassifier()

	cases := []struct {
		name     string
		code     sqlite3.ErrNo
		extended sqlite3.ErrNoExtended
		want     Violation
	}{
		{"unique", sqlite3.ErrConstraint, sqlite3.ErrConstraintUnique, ViolationUnique},
		{"primary key", sqlite3.ErrConstraint, sqlite3.ErrConstraintPrimaryKey, ViolationUnique},
		{"foreign key", sqlite3.ErrConstraint, sqlite3.ErrConstraintForeignKey, ViolationForeignKey},
		{"not null", sqlite3.ErrConstraint, sqlite3.ErrConstraintNotNull, ViolationOther},
		{"busy", sqlite3.ErrBusy, 0, ViolationNone},
	}

	for _, tc := range cases {
		if got := classifier.Violation(sqliteError(tc.code, tc.extended)); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestSQLiteViolation_WrappedError(t *testing.T) {
	classifier := NewSQLiteErrorClassifier()

	wrapped := fmt.Errorf("insert failed: %w", sqliteError(sqlite3.ErrConstraint, sqlite3.ErrConstraintForeignKey))
	if got := classifier.Violation(wrapped); got != ViolationForeignKey {
		t.Errorf("expected ViolationForeignKey through wrapping, got %v", got)
	}
}
