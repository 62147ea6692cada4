package records

import (
	"errors"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateStoreErr_Unique(t *testing.T) {
	err := translateStoreErr(sqlite3.Error{
		Code:         sqlite3.ErrConstraint,
		ExtendedCode: sqlite3.ErrConstraintUnique,
	}, nil)

	var derr *DuplicateError
	require.ErrorAs(t, err, &derr)
}

func TestTranslateStoreErr_ForeignKeyUsesProbe(t *testing.T) {
	err := translateStoreErr(sqlite3.Error{
		Code:         sqlite3.ErrConstraint,
		ExtendedCode: sqlite3.ErrConstraintForeignKey,
	}, func() string { return "authorid" })

	var rerr *ReferentialError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "authorid", rerr.Field)
}

func TestTranslateStoreErr_ForeignKeyWithoutProbe(t *testing.T) {
	err := translateStoreErr(sqlite3.Error{
		Code:         sqlite3.ErrConstraint,
		ExtendedCode: sqlite3.ErrConstraintForeignKey,
	}, nil)

	var rerr *ReferentialError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "reference", rerr.Field)
}

func TestTranslateStoreErr_Check(t *testing.T) {
	err := translateStoreErr(sqlite3.Error{
		Code:         sqlite3.ErrConstraint,
		ExtendedCode: sqlite3.ErrConstraintCheck,
	}, nil)

	var serr *StorageLimitError
	require.ErrorAs(t, err, &serr)
}

func TestTranslateStoreErr_Unexpected(t *testing.T) {
	cause := errors.New("disk I/O error")

	err := translateStoreErr(cause, nil)

	var serr *StoreError
	require.ErrorAs(t, err, &serr)
	// The opaque message hides the cause; Unwrap keeps it for logs.
	assert.Equal(t, "unexpected store error", serr.Error())
	assert.ErrorIs(t, err, cause)
}

func TestUniqueField(t *testing.T) {
	tests := []struct {
		msg  string
		want string
	}{
		{"UNIQUE constraint failed: members.email", "email"},
		{"UNIQUE constraint failed: books.isbn", "isbn"},
		{"UNIQUE constraint failed", "value"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, uniqueField(tt.msg))
	}
}
