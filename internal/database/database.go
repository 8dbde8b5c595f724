// Package database is the thin relational access layer the rest of the
// system talks to. It wraps a *gorm.DB and only deals in raw statements.
package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrNoRows is returned by QueryRow when the statement matched nothing.
var ErrNoRows = errors.New("no rows in result set")

// Executor is the set of operations the bootstrapper and the schedule
// packages need from storage. *DB implements it.
type Executor interface {
	Execute(sql string, args ...any) error
	Query(dest any, sql string, args ...any) error
	QueryRow(dest any, sql string, args ...any) error
	UseSchema(name string) error
}

// DB is the relational access facade.
type DB struct {
	gorm *gorm.DB
	log  logrus.FieldLogger
}

func New(db *gorm.DB, log logrus.FieldLogger) *DB {
	return &DB{gorm: db, log: log.WithField("component", "database")}
}

// Execute runs a statement that returns no rows.
func (d *DB) Execute(sql string, args ...any) error {
	if err := d.gorm.Exec(sql, args...).Error; err != nil {
		return d.fail("execute", sql, err)
	}
	return nil
}

// Query scans every result row into dest, which must point to a slice.
func (d *DB) Query(dest any, sql string, args ...any) error {
	if err := d.gorm.Raw(sql, args...).Scan(dest).Error; err != nil {
		return d.fail("query", sql, err)
	}
	return nil
}

// QueryRow scans the first result row into dest and reports ErrNoRows
// when there is none.
func (d *DB) QueryRow(dest any, sql string, args ...any) error {
	res := d.gorm.Raw(sql, args...).Scan(dest)
	if res.Error != nil {
		return d.fail("query", sql, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("query %s: %w", summarize(sql), ErrNoRows)
	}
	return nil
}

// UseSchema points unqualified table names at the given schema for the
// rest of the session.
func (d *DB) UseSchema(name string) error {
	if err := d.gorm.Exec("SET search_path TO " + pq.QuoteIdentifier(name)).Error; err != nil {
		d.log.WithError(err).WithField("schema", name).Debug("Failed to use schema")
		return fmt.Errorf("failed to use %s: %w", name, err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (d *DB) Close() error {
	d.log.Info("Disconnecting from database")

	sqlDB, err := d.gorm.DB()
	if err != nil {
		return fmt.Errorf("failed closing db connection: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		d.log.WithError(err).Debug("Failed closing db connection")
		return fmt.Errorf("failed closing db connection: %w", err)
	}
	return nil
}

// fail wraps a statement error for the caller. The caller decides whether it
// is worth an error entry, so the facade only traces it.
func (d *DB) fail(op, sql string, err error) error {
	stmt := summarize(sql)
	d.log.WithError(err).WithField("statement", stmt).Debugf("Failed to %s statement", op)
	return fmt.Errorf("%s %s: %w", op, stmt, err)
}

// summarize shortens a statement to its leading words for error messages,
// e.g. "INSERT INTO route".
func summarize(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) > 3 {
		fields = fields[:3]
	}
	return strings.Join(fields, " ")
}
