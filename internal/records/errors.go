package records

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// The service translates driver-level failures into four domain categories
// at its boundary with the persistence gateway. Validation errors
// (validation.Error) are the fifth category and never reach the store.

// ReferentialError reports a payload foreign key naming a non-existent row.
type ReferentialError struct {
	Field string
}

func (e *ReferentialError) Error() string {
	return fmt.Sprintf("referenced %s does not exist", e.Field)
}

// DuplicateError reports a uniqueness violation (email, isbn).
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate value for %s", e.Field)
}

// StorageLimitError reports a value the store cannot hold.
type StorageLimitError struct{}

func (e *StorageLimitError) Error() string {
	return "value exceeds storage limits"
}

// StoreError wraps any other store-level failure. Its message stays opaque;
// the underlying error is only for logs (and non-production responses).
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return "unexpected store error"
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// translateStoreErr remaps a driver error into the taxonomy. probe, when
// non-nil, is consulted on foreign-key violations to name the dangling
// reference; SQLite's error text does not carry the column.
func translateStoreErr(err error, probe func() string) error {
	var serr sqlite3.Error
	if !errors.As(err, &serr) {
		return &StoreError{Err: err}
	}

	switch serr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return &DuplicateError{Field: uniqueField(serr.Error())}
	case sqlite3.ErrConstraintForeignKey:
		field := "reference"
		if probe != nil {
			if f := probe(); f != "" {
				field = f
			}
		}
		return &ReferentialError{Field: field}
	case sqlite3.ErrConstraintCheck, sqlite3.ErrConstraintNotNull:
		return &StorageLimitError{}
	}
	if serr.Code == sqlite3.ErrTooBig {
		return &StorageLimitError{}
	}
	return &StoreError{Err: err}
}

// uniqueField pulls the column name out of a message like
// "UNIQUE constraint failed: members.email".
func uniqueField(msg string) string {
	if i := strings.LastIndex(msg, ": "); i >= 0 {
		msg = msg[i+2:]
	}
	if i := strings.LastIndex(msg, "."); i >= 0 {
		return strings.TrimSpace(msg[i+1:])
	}
	return "value"
}
