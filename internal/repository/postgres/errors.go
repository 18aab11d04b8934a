package postgres

import "strings"

// isUniqueViolation checks if the error is a PostgreSQL unique constraint violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}

// isForeignKeyViolation checks if the error is a PostgreSQL foreign key violation (SQLSTATE 23503).
func isForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23503")
}

// isCheckViolation checks if the error is a PostgreSQL check constraint violation (SQLSTATE 23514).
func isCheckViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23514")
}

// isConstraintViolation reports whether the error is any integrity
// constraint violation that should surface to the client as a 400.
func isConstraintViolation(err error) bool {
	return isUniqueViolation(err) || isForeignKeyViolation(err) || isCheckViolation(err)
}
