// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file translates driver errors into failure values so
// constraint violations cross the store boundary with a machine-readable code
// and table name, whichever driver produced them.
package repo

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/tbourn/newsroom-api/internal/failure"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// sqliteConstraintRE matches modernc/glebarez messages such as
// "NOT NULL constraint failed: comments.body (1299)" and
// "FOREIGN KEY constraint failed (787)".
var sqliteConstraintRE = regexp.MustCompile(`(NOT NULL|UNIQUE|FOREIGN KEY) constraint failed(?:: ([A-Za-z_][A-Za-z0-9_]*)\.([A-Za-z_][A-Za-z0-9_]*))?`)

// pgKeyColumnRE extracts the column from Postgres details such as
// `Key (topic)=(dogs) is not present in table "topics".`
var pgKeyColumnRE = regexp.MustCompile(`^Key \(([A-Za-z_][A-Za-z0-9_]*)\)=`)

// translate converts a driver constraint error into a failure.Constraint.
// Any other error, including nil and ErrNotFound, is returned unchanged.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := failure.As(err); ok {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch code := failure.Code(pgErr.Code); code {
		case failure.NotNullViolation, failure.ForeignKeyViolation,
			failure.UniqueViolation, failure.InvalidTextRepresentation:
			column := pgErr.ColumnName
			if column == "" {
				if m := pgKeyColumnRE.FindStringSubmatch(pgErr.Detail); m != nil {
					column = m[1]
				}
			}
			detail := pgErr.Detail
			if detail == "" && column != "" {
				detail = pgErr.TableName + "." + column
			}
			return failure.Constraint(code, pgErr.TableName, column, detail, err)
		}
		return err
	}

	if m := sqliteConstraintRE.FindStringSubmatch(err.Error()); m != nil {
		var code failure.Code
		switch m[1] {
		case "NOT NULL":
			code = failure.NotNullViolation
		case "UNIQUE":
			code = failure.UniqueViolation
		case "FOREIGN KEY":
			code = failure.ForeignKeyViolation
		}
		detail := ""
		if m[2] != "" {
			detail = m[2] + "." + m[3]
		}
		return failure.Constraint(code, m[2], m[3], detail, err)
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return failure.Constraint(failure.UniqueViolation, "", "", "", err)
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return failure.Constraint(failure.ForeignKeyViolation, "", "", "", err)
	}
	return err
}

// reference names a foreign key to verify before an insert.
type reference struct {
	column   string
	value    string
	table    string
	keyField string
}

// missingReference returns a ForeignKeyViolation for the first reference whose
// target row does not exist, using the same detail text Postgres reports.
// SQLite's own FK error does not name the column, so inserts verify their
// references up front inside the insert transaction.
func missingReference(tx *gorm.DB, table string, refs ...reference) error {
	for _, r := range refs {
		var n int64
		if err := tx.Table(r.table).Where(r.keyField+" = ?", r.value).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			detail := fmt.Sprintf("Key (%s)=(%s) is not present in table %q.", r.column, r.value, r.table)
			return failure.Constraint(failure.ForeignKeyViolation, table, r.column, detail, nil)
		}
	}
	return nil
}
