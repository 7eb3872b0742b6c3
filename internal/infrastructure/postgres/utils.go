package postgres

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/freelancer-crm/internal/domain"
)

const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return hasSQLState(err, sqlStateUniqueViolation)
}

// isForeignKeyViolation verifica si un error es una violación de llave foránea (23503).
func isForeignKeyViolation(err error) bool {
	return hasSQLState(err, sqlStateForeignKeyViolation)
}

func hasSQLState(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// writeError traduce errores de escritura a errores de dominio conservando el original.
func writeError(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return fmt.Errorf("%s: %w: %v", op, domain.ErrDuplicate, err)
	case isForeignKeyViolation(err):
		return fmt.Errorf("%s: %w: %v", op, domain.ErrMissingReference, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// stamp asigna ID y marcas de tiempo si el caller no las definió.
func stamp(id *string, createdAt, updatedAt *time.Time) {
	if *id == "" {
		*id = uuid.New().String()
	}
	now := time.Now().UTC()
	if createdAt.IsZero() {
		*createdAt = now
	}
	if updatedAt != nil && updatedAt.IsZero() {
		*updatedAt = *createdAt
	}
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefStr(p *string) string {
	if p != nil {
		return *p
	}
	return ""
}

// textArray evita enviar NULL a columnas TEXT[] NOT NULL.
func textArray(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// jsonObject evita enviar NULL a columnas JSONB NOT NULL.
func jsonObject[V any](m map[string]V) map[string]V {
	if m == nil {
		return map[string]V{}
	}
	return m
}
