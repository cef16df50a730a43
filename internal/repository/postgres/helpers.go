package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// ErrDuplicateKey marks a unique-constraint violation, in practice always a
// slug (or subscriber email) collision. Services map it to their own
// conflict sentinel.
var ErrDuplicateKey = errors.New("duplicate key")

// escapeLike neutralizes LIKE metacharacters in user-supplied search text
// so a query like "100%" matches literally instead of everything.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

func translateError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return ErrDuplicateKey
	}
	return err
}
