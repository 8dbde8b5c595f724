// Package bootstrap makes sure the train schema and its reference data
// exist before anything else touches storage.
package bootstrap

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"train_routes/internal/database"
	"train_routes/internal/models"
)

const (
	schemaCountQuery = "SELECT COUNT(*) FROM information_schema.schemata WHERE schema_name = ?"
	tableCountQuery  = "SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = ? AND table_name IN ?"
)

// Bootstrapper creates the schema, the seven tables and the seed data.
// It never drops or rewrites anything that already exists.
type Bootstrapper struct {
	db      database.Executor
	fixture *Fixture
	log     logrus.FieldLogger
}

func New(db database.Executor, fixture *Fixture, log logrus.FieldLogger) *Bootstrapper {
	return &Bootstrapper{db: db, fixture: fixture, log: log.WithField("component", "bootstrap")}
}

// Run provisions the named schema and leaves the session using it. Tables
// are (re)created and seeded only when the catalog does not list exactly
// the expected set.
func (b *Bootstrapper) Run(schema string) error {
	b.log.WithField("schema", schema).Info("Initializing train system")

	if err := b.ensureSchema(schema); err != nil {
		return err
	}
	if err := b.db.UseSchema(schema); err != nil {
		return err
	}

	var count int64
	if err := b.db.QueryRow(&count, tableCountQuery, schema, TableNames()); err != nil {
		return fmt.Errorf("failed counting tables in %s: %w", schema, err)
	}
	if count == int64(len(tables)) {
		b.log.WithField("tables", count).Info("Schema complete, skipping table creation")
		return nil
	}

	b.log.WithFields(logrus.Fields{"found": count, "expected": len(tables)}).Warn("Schema incomplete, creating tables and seeding")
	if err := b.createTables(); err != nil {
		return err
	}
	return b.seed()
}

func (b *Bootstrapper) ensureSchema(schema string) error {
	var count int64
	if err := b.db.QueryRow(&count, schemaCountQuery, schema); err != nil {
		return fmt.Errorf("failed looking up schema %s: %w", schema, err)
	}
	if count > 0 {
		return nil
	}

	b.log.WithField("schema", schema).Info("Creating schema")
	if err := b.db.Execute("CREATE SCHEMA IF NOT EXISTS " + pq.QuoteIdentifier(schema)); err != nil {
		return fmt.Errorf("failed creating schema %s: %w", schema, err)
	}
	return nil
}

func (b *Bootstrapper) createTables() error {
	for _, t := range tables {
		for _, stmt := range t.Statements {
			if err := b.db.Execute(stmt); err != nil {
				return fmt.Errorf("failed creating table %s: %w", t.Name, err)
			}
		}
	}
	return nil
}

func (b *Bootstrapper) seed() error {
	f := b.fixture
	inserts := []struct {
		table   string
		columns []string
		rows    [][]any
	}{
		{"station", []string{"idstation", "name"}, rowsOf(f.Stations, func(s models.Station) []any { return []any{s.ID, s.Name} })},
		{"city", []string{"idcity", "name", "station_idstation"}, rowsOf(f.Cities, func(c models.City) []any { return []any{c.ID, c.Name, c.StationID} })},
		{"platform", []string{"idplatform", "nr", "station_idstation"}, rowsOf(f.Platforms, func(p models.Platform) []any { return []any{p.ID, p.Number, p.StationID} })},
		{"traintype", []string{"idtraintype", "name"}, rowsOf(f.TrainTypes, func(tt models.TrainType) []any { return []any{tt.ID, tt.Name} })},
		{"train", []string{"nrtrain", "traintype_idtraintype", "acquisition"}, rowsOf(f.Trains, func(t models.Train) []any { return []any{t.Number, t.TrainTypeID, t.Acquisition} })},
		{"train_has_platform", []string{"train_nrtrain", "platform_idplatform", "start"}, rowsOf(f.Assignments, func(a models.TrainPlatform) []any { return []any{a.TrainNumber, a.PlatformID, a.Start} })},
		{"route", []string{"idroute", "arrival", "departure", "train_nrtrain", "direction"}, rowsOf(f.Routes, func(r models.Route) []any { return []any{r.ID, r.Arrival, r.Departure, r.TrainNumber, r.Direction} })},
	}

	for _, ins := range inserts {
		if len(ins.rows) == 0 {
			continue
		}
		if err := b.db.Execute(insertStatement(ins.table, ins.columns, len(ins.rows)), flatten(ins.rows)...); err != nil {
			return fmt.Errorf("failed inserting %s: %w", ins.table, err)
		}
		b.log.WithFields(logrus.Fields{"table": ins.table, "rows": len(ins.rows)}).Debug("Seeded table")
	}

	for _, t := range tables {
		if t.Serial == "" {
			continue
		}
		if err := b.db.Execute(syncSequenceStatement(t.Name, t.Serial)); err != nil {
			return fmt.Errorf("failed syncing id sequence of %s: %w", t.Name, err)
		}
	}
	return nil
}

// insertStatement builds a multi-row insert that leaves existing rows alone.
func insertStatement(table string, columns []string, rows int) string {
	placeholders := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ") + ")"
	values := make([]string, rows)
	for i := range values {
		values[i] = placeholders
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES %s ON CONFLICT DO NOTHING",
		table, strings.Join(columns, ", "), strings.Join(values, ", "))
}

// syncSequenceStatement moves a serial sequence past the highest stored id,
// since seeded rows carry explicit ids.
func syncSequenceStatement(table, column string) string {
	return fmt.Sprintf("SELECT setval(pg_get_serial_sequence('%s', '%s'), COALESCE(MAX(%s), 0) + 1, false) FROM %s",
		table, column, column, table)
}

func rowsOf[T any](items []T, row func(T) []any) [][]any {
	out := make([][]any, len(items))
	for i, item := range items {
		out[i] = row(item)
	}
	return out
}

func flatten(rows [][]any) []any {
	var out []any
	for _, r := range rows {
		out = append(out, r...)
	}
	return out
}
