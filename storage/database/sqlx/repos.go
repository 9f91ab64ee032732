// Package sqlxrepos implements the entity repositories against Postgres.
// It is the single canonical SQL backend; the inmem package mirrors its
// semantics for tests.
package sqlxrepos

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"
)

const pqUniqueViolation = "23505"

// trapNoRowsErr maps the driver's "no rows" err to the entity's notFound sentinel.
func trapNoRowsErr(err, notFound error, msg string) error {
	if err == sql.ErrNoRows {
		return notFound
	}
	return errors.Wrap(err, msg)
}

func isUniqueViolation(err error) bool {
	pqErr, ok := errors.Cause(err).(*pq.Error)
	return ok && pqErr.Code == pqUniqueViolation
}

// rowsAffected maps a zero-row update/delete to the entity's notFound sentinel.
func rowsAffected(res sql.Result, notFound error, msg string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, msg)
	}
	if n == 0 {
		return notFound
	}
	return nil
}

// authorDisplayName resolves a user's display name by id. A missing account,
// an empty name or a failed lookup all degrade to a placeholder label so that
// listings never abort on a dangling author reference.
func authorDisplayName(ctx context.Context, q sqlx.QueryerContext, id int) string {
	var name null.String
	err := sqlx.GetContext(ctx, q, &name, `SELECT nom FROM utilisateur WHERE id = $1`, id)
	if err != nil || !name.Valid || name.String == "" {
		return fmt.Sprintf("User %d", id)
	}
	return name.String
}
