package repository

import "context"

// StatsRepository consultas read-only de volumen por tabla.
type StatsRepository interface {
	// CountRows devuelve el número de filas por entidad (clave = nombre de tabla).
	CountRows(ctx context.Context) (map[string]int64, error)
}
