package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/eventhub/event-management-backend/internal/apperror"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// IsForeignKeyViolation reports whether err is a foreign key failure from
// either supported store.
func IsForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	if code, ok := pgCode(err); ok {
		return code == "23503"
	}
	if code, ok := sqliteCode(err); ok {
		return code == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY
	}
	return false
}

// IsConstraintViolation reports integrity failures: foreign key, not null,
// unique, check and value too long for its column.
func IsConstraintViolation(err error) bool {
	if IsForeignKeyViolation(err) ||
		errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	if code, ok := pgCode(err); ok {
		return strings.HasPrefix(code, "23") || code == "22001"
	}
	if code, ok := sqliteCode(err); ok {
		return code&0xff == sqlite3.SQLITE_CONSTRAINT
	}
	return false
}

// IsUnavailable reports connectivity and transient failures.
func IsUnavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) || pgconn.Timeout(err) {
		return true
	}
	if code, ok := pgCode(err); ok {
		// 08 connection exception, 53 insufficient resources, 57P admin shutdown
		return strings.HasPrefix(code, "08") || strings.HasPrefix(code, "53") || strings.HasPrefix(code, "57P")
	}
	if code, ok := sqliteCode(err); ok {
		switch code & 0xff {
		case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED, sqlite3.SQLITE_CANTOPEN, sqlite3.SQLITE_IOERR:
			return true
		}
		return false
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

// Classify turns a store error into an apperror. op names the failed
// operation and prefixes the message.
func Classify(err error, op string) error {
	if err == nil {
		return nil
	}
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return err
	}

	switch {
	case IsForeignKeyViolation(err):
		return apperror.Constraint("foreign_key_violation", op+": referenced record does not exist", err)
	case IsConstraintViolation(err):
		return apperror.Constraint("constraint_violation", op+": constraint violated", err)
	case IsUnavailable(err):
		return apperror.Unavailable(op+": store unavailable", err)
	default:
		return apperror.Internal(op+" failed", err)
	}
}

func pgCode(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, true
	}
	return "", false
}

func sqliteCode(err error) (int, bool) {
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code(), true
	}
	return 0, false
}
