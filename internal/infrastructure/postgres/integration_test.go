package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/freelancer-crm/internal/application/seed"
	"github.com/jhoicas/freelancer-crm/internal/domain"
	"github.com/jhoicas/freelancer-crm/internal/domain/entity"
	"github.com/jhoicas/freelancer-crm/internal/infrastructure/postgres"
	"github.com/jhoicas/freelancer-crm/pkg/config"
	"github.com/jhoicas/freelancer-crm/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Contenedor PostgreSQL
// ──────────────────────────────────────────────────────────────────────────────

// startPostgres levanta postgres:16-alpine, aplica migraciones y devuelve el pool.
func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("prueba de integración omitida en modo -short (requiere Docker)")
	}
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_DB":       "freelancer_crm",
				"POSTGRES_USER":     "crm",
				"POSTGRES_PASSWORD": "crm",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("Docker no disponible: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, config.DBConfig{
		DatabaseURL: fmt.Sprintf("postgres://crm:crm@%s:%s/freelancer_crm?sslmode=disable", host, port.Port()),
		MaxConns:    5,
	})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.RunMigrations(pool, logger.Nop()))
	return pool
}

func repositories(pool *pgxpool.Pool) seed.Repositories {
	return seed.Repositories{
		Accounts:       postgres.NewAccountRepository(pool),
		Clients:        postgres.NewClientRepository(pool),
		Projects:       postgres.NewProjectRepository(pool),
		Tasks:          postgres.NewTaskRepository(pool),
		Communications: postgres.NewCommunicationRepository(pool),
		Invoices:       postgres.NewInvoiceRepository(pool),
		Leads:          postgres.NewLeadRepository(pool),
		Opportunities:  postgres.NewOpportunityRepository(pool),
		Notes:          postgres.NewNoteRepository(pool),
		Tags:           postgres.NewTagRepository(pool),
		Reminders:      postgres.NewReminderRepository(pool),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestIntegration_SeedCompleto(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()

	creds := seed.Credentials{Email: "demo@freelancercrm.com", Password: "demo123"}
	seeder := seed.NewSeeder(repositories(pool), creds, bcrypt.MinCost, logger.Nop())

	// ── 1. Primera corrida ────────────────────────────────────────────────────
	report, err := seeder.Run(ctx)
	require.NoError(t, err)
	assert.True(t, report.AccountCreated)

	counts, err := postgres.NewStatsRepository(pool).CountRows(ctx)
	require.NoError(t, err)
	assert.Equal(t, report.Counts(), counts)

	// ── 2. Lectura de una factura con ítems ───────────────────────────────────
	var invoiceID string
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT id FROM invoices WHERE invoice_number = 'INV-2024-001'`).Scan(&invoiceID))
	inv, err := postgres.NewInvoiceRepository(pool).GetByID(ctx, invoiceID)
	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.NotEmpty(t, inv.Items)
	assert.Equal(t, report.AccountID, inv.AccountID)

	// ── 3. Segunda corrida: misma cuenta, choca con el número de factura ──────
	second, err := seeder.Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.False(t, second.AccountCreated)
	assert.Equal(t, report.AccountID, second.AccountID)

	counts, err = postgres.NewStatsRepository(pool).CountRows(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts["accounts"])
	assert.Equal(t, 2*report.Counts()["clients"], counts["clients"])
	assert.Equal(t, report.Counts()["invoices"], counts["invoices"])
}

func TestIntegration_UpsertCuentaIdempotente(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()
	repo := postgres.NewAccountRepository(pool)

	first := &entity.Account{Email: "otra@freelancercrm.com", PasswordHash: "x", Name: "Primera"}
	created, err := repo.Upsert(ctx, first)
	require.NoError(t, err)
	assert.True(t, created)

	second := &entity.Account{Email: "otra@freelancercrm.com", PasswordHash: "y", Name: "Segunda"}
	created, err = repo.Upsert(ctx, second)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Primera", second.Name, "no sobrescribe el perfil existente")

	missing, err := repo.GetByEmail(ctx, "nadie@freelancercrm.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestIntegration_ReferenciaInexistente(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()

	err := postgres.NewClientRepository(pool).Create(ctx, &entity.Client{
		AccountID: "00000000-0000-0000-0000-000000000000",
		Name:      "Huérfano",
		Status:    entity.ClientActive,
		Priority:  entity.PriorityLow,
	})
	assert.ErrorIs(t, err, domain.ErrMissingReference)
}
