package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/freelancer-crm/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// Tables lista las tablas del modelo en orden de dependencia.
var Tables = []string{
	"accounts", "clients", "projects", "tasks", "communications", "invoices",
	"leads", "opportunities", "notes", "tags", "reminders",
}

// StatsRepo consultas de volumen por tabla.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador.
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// CountRows cuenta las filas de cada tabla del modelo en una sola consulta.
func (r *StatsRepo) CountRows(ctx context.Context) (map[string]int64, error) {
	query := `
		SELECT 'accounts', COUNT(*) FROM accounts
		UNION ALL SELECT 'clients', COUNT(*) FROM clients
		UNION ALL SELECT 'projects', COUNT(*) FROM projects
		UNION ALL SELECT 'tasks', COUNT(*) FROM tasks
		UNION ALL SELECT 'communications', COUNT(*) FROM communications
		UNION ALL SELECT 'invoices', COUNT(*) FROM invoices
		UNION ALL SELECT 'leads', COUNT(*) FROM leads
		UNION ALL SELECT 'opportunities', COUNT(*) FROM opportunities
		UNION ALL SELECT 'notes', COUNT(*) FROM notes
		UNION ALL SELECT 'tags', COUNT(*) FROM tags
		UNION ALL SELECT 'reminders', COUNT(*) FROM reminders`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("count rows: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64, len(Tables))
	for rows.Next() {
		var table string
		var n int64
		if err := rows.Scan(&table, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[table] = n
	}
	return counts, rows.Err()
}
