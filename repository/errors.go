package repository

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/yeremiapane/ecommerce-api/utils"
	"gorm.io/gorm"
)

const (
	mysqlDuplicateEntry     = 1062
	mysqlRowIsReferenced    = 1451
	mysqlNoReferencedRow    = 1452
	postgresUniqueViolation = "23505"
	postgresFKViolation     = "23503"
)

// isDuplicateKey reports whether err is a unique or primary key violation,
// whether or not gorm already translated it.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == postgresUniqueViolation
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlRowIsReferenced || myErr.Number == mysqlNoReferencedRow
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == postgresFKViolation
	}
	return false
}

// translateWrite maps a failed write onto the error taxonomy. Errors that are
// already CustomErrors pass through; conflict and missing may be nil when the
// write cannot produce that kind of violation.
func translateWrite(err error, op string, conflict, missing *utils.CustomError) error {
	if err == nil {
		return nil
	}
	var appErr *utils.CustomError
	if errors.As(err, &appErr) {
		return err
	}
	if conflict != nil && isDuplicateKey(err) {
		return conflict.Wrap(err)
	}
	if missing != nil && isForeignKeyViolation(err) {
		return missing.Wrap(err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func translateRead(err error, op string, missing *utils.CustomError) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return missing.Wrap(err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
