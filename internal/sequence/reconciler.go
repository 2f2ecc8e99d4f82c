// Package sequence realigns id generators with the ids actually stored.
//
// Rows loaded with explicit ids (restores, bulk imports) do not advance a
// table's generator, so the next insert would collide with an existing row.
// The reconciler runs once at startup, before traffic, and sets every
// generator so the next id is max(id)+1, or 1 for an empty table.
package sequence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var reconcileTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "sequence_reconcile_total",
		Help: "Id generator realignments per table and result",
	},
	[]string{"table", "result"},
)

// Target names a table and its generated id column.
type Target struct {
	Table  string
	Column string
}

// Outcome is the result of reconciling one target.
type Outcome struct {
	Table  string
	Column string
	NextID int64 // next id the store will hand out; 0 when Err is set
	Err    error
}

// Report lists one outcome per target, in target order.
type Report []Outcome

// Failed returns the outcomes that did not succeed.
func (r Report) Failed() []Outcome {
	var failed []Outcome
	for _, o := range r {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return failed
}

// TargetsFor derives targets from gorm models: their table name and primary
// key column.
func TargetsFor(db *gorm.DB, models ...interface{}) ([]Target, error) {
	targets := make([]Target, 0, len(models))
	for _, m := range models {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(m); err != nil {
			return nil, fmt.Errorf("parse model %T: %w", m, err)
		}
		pk := stmt.Schema.PrioritizedPrimaryField
		if pk == nil {
			return nil, fmt.Errorf("model %T has no single primary key", m)
		}
		targets = append(targets, Target{Table: stmt.Schema.Table, Column: pk.DBName})
	}
	return targets, nil
}

type Reconciler struct {
	db      *gorm.DB
	targets []Target
}

func NewReconciler(db *gorm.DB, targets ...Target) *Reconciler {
	return &Reconciler{db: db, targets: targets}
}

// Run reconciles every target inside one transaction. Each target runs in
// its own savepoint, so a missing table or sequence only fails that target
// and the rest still commit. Run never returns an error; see Report.
func (r *Reconciler) Run(ctx context.Context) Report {
	report := make(Report, 0, len(r.targets))

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, t := range r.targets {
			var next int64
			err := tx.Transaction(func(stx *gorm.DB) error {
				var err error
				next, err = realign(stx, t)
				return err
			})
			report = append(report, Outcome{Table: t.Table, Column: t.Column, NextID: next, Err: err})
		}
		return nil
	})
	if err != nil {
		// begin or commit failed, so nothing took effect
		report = report[:0]
		for _, t := range r.targets {
			report = append(report, Outcome{Table: t.Table, Column: t.Column, Err: err})
		}
	}

	for i := range report {
		record(&report[i])
	}
	return report
}

func record(o *Outcome) {
	if o.Err != nil {
		o.NextID = 0
		reconcileTotal.WithLabelValues(o.Table, "error").Inc()
		slog.Warn("sequence reconcile skipped", "table", o.Table, "column", o.Column, "error", o.Err)
		return
	}
	reconcileTotal.WithLabelValues(o.Table, "ok").Inc()
	slog.Debug("sequence reconciled", "table", o.Table, "column", o.Column, "next_id", o.NextID)
}

func realign(tx *gorm.DB, t Target) (int64, error) {
	switch name := tx.Dialector.Name(); name {
	case "postgres":
		return realignPostgres(tx, t)
	case "sqlite":
		return realignSQLite(tx, t)
	default:
		return 0, fmt.Errorf("id generator reset not supported for %s", name)
	}
}

// setval(seq, max+1, false) makes max+1 the next value handed out.
func realignPostgres(tx *gorm.DB, t Target) (int64, error) {
	var next sql.NullInt64
	err := tx.Raw(
		"SELECT setval(pg_get_serial_sequence(?, ?), COALESCE((SELECT MAX(?) FROM ?), 0) + 1, false)",
		t.Table, t.Column, clause.Column{Name: t.Column}, clause.Table{Name: t.Table},
	).Scan(&next).Error
	if err != nil {
		return 0, err
	}
	if !next.Valid {
		return 0, fmt.Errorf("%s.%s has no owned sequence", t.Table, t.Column)
	}
	return next.Int64, nil
}

// AUTOINCREMENT tables keep their counter in sqlite_sequence; the row is
// missing until the first insert.
func realignSQLite(tx *gorm.DB, t Target) (int64, error) {
	var maxID int64
	err := tx.Raw("SELECT COALESCE(MAX(?), 0) FROM ?", clause.Column{Name: t.Column}, clause.Table{Name: t.Table}).
		Scan(&maxID).Error
	if err != nil {
		return 0, err
	}

	res := tx.Exec("UPDATE sqlite_sequence SET seq = ? WHERE name = ?", maxID, t.Table)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 && maxID > 0 {
		if err := tx.Exec("INSERT INTO sqlite_sequence (name, seq) VALUES (?, ?)", t.Table, maxID).Error; err != nil {
			return 0, err
		}
	}
	return maxID + 1, nil
}

// ErrNoTargets is returned by NewReconcilerFor when no models are given.
var ErrNoTargets = errors.New("sequence: no targets")

// NewReconcilerFor builds a reconciler for the tables of the given models.
func NewReconcilerFor(db *gorm.DB, models ...interface{}) (*Reconciler, error) {
	if len(models) == 0 {
		return nil, ErrNoTargets
	}
	targets, err := TargetsFor(db, models...)
	if err != nil {
		return nil, err
	}
	return NewReconciler(db, targets...), nil
}
