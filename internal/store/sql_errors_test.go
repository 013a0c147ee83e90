package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("x"), want: NonRetryable},
		{name: "serialization failure", err: pgError(pgerrcode.SerializationFailure), want: Retryable},
		{name: "deadlock wrapped", err: fmt.Errorf("wrap: %w", pgError(pgerrcode.DeadlockDetected)), want: Retryable},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: Retryable},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: NonRetryable},
		{name: "syntax error", err: pgError(pgerrcode.SyntaxError), want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestPostgresErrorClassifier_IsUniqueViolation(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.True(t, c.IsUniqueViolation(pgError(pgerrcode.UniqueViolation)))
	assert.True(t, c.IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation})))
	assert.False(t, c.IsUniqueViolation(pgError(pgerrcode.ForeignKeyViolation)))
	assert.False(t, c.IsUniqueViolation(errors.New("unique")))
}

func TestPostgresErrorClassifier_IsForeignKeyViolation(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.True(t, c.IsForeignKeyViolation(pgError(pgerrcode.ForeignKeyViolation)))
	assert.True(t, c.IsForeignKeyViolation(fmt.Errorf("insert: %w", pgError(pgerrcode.ForeignKeyViolation))))
	assert.False(t, c.IsForeignKeyViolation(pgError(pgerrcode.UniqueViolation)))
	assert.False(t, c.IsForeignKeyViolation(nil))
}

func TestWithForeignKeys(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{dsn: "fortuna.db", want: "fortuna.db?_foreign_keys=on"},
		{dsn: "file:fortuna.db?_busy_timeout=5000", want: "file:fortuna.db?_busy_timeout=5000&_foreign_keys=on"},
		{dsn: "file:fortuna.db?_foreign_keys=off", want: "file:fortuna.db?_foreign_keys=off"},
		{dsn: "file:fortuna.db?cache=shared&_fk=1", want: "file:fortuna.db?cache=shared&_fk=1"},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			assert.Equal(t, tt.want, withForeignKeys(tt.dsn))
		})
	}
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	unique := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
	pk := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}
	check := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintCheck}
	busy := sqlite3.Error{Code: sqlite3.ErrBusy}
	fk := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}

	assert.True(t, c.IsUniqueViolation(unique))
	assert.True(t, c.IsUniqueViolation(fmt.Errorf("wrap: %w", pk)))
	assert.False(t, c.IsUniqueViolation(check))
	assert.False(t, c.IsUniqueViolation(errors.New("UNIQUE constraint failed")))

	assert.True(t, c.IsForeignKeyViolation(fmt.Errorf("wrap: %w", fk)))
	assert.False(t, c.IsForeignKeyViolation(unique))
	assert.False(t, c.IsUniqueViolation(fk))

	assert.Equal(t, Retryable, c.Classify(busy))
	assert.Equal(t, NonRetryable, c.Classify(unique))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("x")))
}
