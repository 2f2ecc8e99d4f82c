package database

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/eventhub/event-management-backend/config"
	"github.com/eventhub/event-management-backend/internal/apperror"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type parent struct {
	ParentID int64  `gorm:"column:parent_id;primaryKey"`
	Name     string `gorm:"size:20;not null"`
}

func (parent) TableName() string { return "parent" }

type child struct {
	ChildID  int64   `gorm:"column:child_id;primaryKey"`
	ParentID int64   `gorm:"not null"`
	Parent   *parent `gorm:"constraint:OnDelete:RESTRICT"`
}

func (child) TableName() string { return "child" }

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(config.DriverSQLite, SQLiteDSN(filepath.Join(t.TempDir(), "test.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func TestCreateTablesIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, CreateTables(db, &parent{}, &child{}))
	require.NoError(t, db.Create(&parent{Name: "kept"}).Error)
	require.NoError(t, CreateTables(db, &parent{}, &child{}))

	var count int64
	require.NoError(t, db.Model(&parent{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "existing rows survive a second pass")
}

func TestSQLiteForeignKeyIsClassified(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, CreateTables(db, &parent{}, &child{}))

	require.True(t, db.Migrator().HasConstraint(&child{}, "Parent"))

	err := db.Create(&child{ParentID: 42}).Error
	require.Error(t, err)

	assert.True(t, IsForeignKeyViolation(err))
	classified := Classify(err, "create child")
	assert.True(t, apperror.Is(classified, apperror.KindConstraint))
}

func TestPing(t *testing.T) {
	db := openTestDB(t)
	assert.NoError(t, Ping(context.Background(), db))
}

func TestClassifyPostgresCodes(t *testing.T) {
	tests := []struct {
		code string
		want apperror.Kind
	}{
		{"23503", apperror.KindConstraint},
		{"23502", apperror.KindConstraint},
		{"22001", apperror.KindConstraint},
		{"08006", apperror.KindUnavailable},
		{"57P01", apperror.KindUnavailable},
		{"42P01", apperror.KindInternal},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: tt.code})
			assert.Equal(t, tt.want, apperror.KindOf(Classify(err, "op")))
		})
	}
}

func TestClassifyGormSentinels(t *testing.T) {
	assert.Equal(t, apperror.KindConstraint, apperror.KindOf(Classify(gorm.ErrForeignKeyViolated, "op")))
	assert.Equal(t, apperror.KindConstraint, apperror.KindOf(Classify(gorm.ErrDuplicatedKey, "op")))
	assert.Equal(t, apperror.KindUnavailable, apperror.KindOf(Classify(context.DeadlineExceeded, "op")))
	assert.Nil(t, Classify(nil, "op"))

	already := apperror.Validation("x", "y")
	assert.Same(t, already, Classify(already, "op"))
}
