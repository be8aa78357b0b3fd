package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/aliskhannn/wordbook/internal/domain"
)

const (
	classInvalidAuthorization = "28"    // invalid_authorization_specification, invalid_password
	codeInsufficientPrivilege = "42501" // insufficient_privilege
)

// isUnauthorized reports whether err carries a PostgreSQL authorization failure.
func isUnauthorized(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return strings.HasPrefix(pgErr.Code, classInvalidAuthorization) || pgErr.Code == codeInsufficientPrivilege
}

// wrapError marks authorization failures with domain.ErrUnauthorized.
func wrapError(err error) error {
	if err == nil || !isUnauthorized(err) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
}
