// seed puebla PostgreSQL con la cuenta demo del freelancer y su cartera de ejemplo
// (clientes, proyectos, tareas, comunicaciones, facturas, leads, oportunidades,
// notas, etiquetas y recordatorios).
//
// Uso: go run ./cmd/seed [--migrate=false]
//
// Es idempotente solo para la cuenta: una segunda corrida reutiliza la cuenta demo
// y vuelve a insertar los datos dependientes hasta chocar con el número de factura único.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jhoicas/freelancer-crm/internal/application/seed"
	"github.com/jhoicas/freelancer-crm/internal/infrastructure/postgres"
	"github.com/jhoicas/freelancer-crm/pkg/config"
	"github.com/jhoicas/freelancer-crm/pkg/logger"
)

var migrateFlag bool

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Carga los datos de demostración de FreelancerCRM",
	Long: `Crea (si no existe) la cuenta demo y siembra sus registros dependientes
en orden: clientes, proyectos, tareas, comunicaciones, facturas, leads,
oportunidades, notas, etiquetas y recordatorios.

La conexión se configura con DATABASE_URL o DB_HOST/DB_PORT/DB_USER/...
y la cuenta con SEED_EMAIL / SEED_PASSWORD.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSeed,
}

func init() {
	rootCmd.Flags().BoolVar(&migrateFlag, "migrate", true, "aplica migraciones pendientes antes de sembrar (SEED_RUN_MIGRATIONS)")
}

// loggedError marca un error que runSeed ya registró con zerolog.
type loggedError struct{ error }

func (e loggedError) Unwrap() error { return e.error }

func main() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError imprime solo los errores que no pasaron por el logger
// (argumentos, flags o fallos previos a crearlo).
func reportError(w io.Writer, err error) {
	if errors.As(err, new(loggedError)) {
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	runMigrations := cfg.Seed.RunMigrations
	if cmd.Flags().Changed("migrate") {
		runMigrations = migrateFlag
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("conexión a PostgreSQL")
		return loggedError{err}
	}
	defer pool.Close()

	if runMigrations {
		if err := postgres.RunMigrations(pool, log); err != nil {
			log.Error().Err(err).Msg("migraciones")
			return loggedError{err}
		}
	}

	seeder := seed.NewSeeder(seed.Repositories{
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
	}, seed.Credentials{
		Email:    cfg.Seed.Email,
		Password: cfg.Seed.Password,
	}, cfg.Seed.BcryptCost, log)

	report, err := seeder.Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("seed interrumpido")
		return loggedError{err}
	}

	log.Info().
		Str("account_id", report.AccountID).
		Bool("account_created", report.AccountCreated).
		Interface("counts", report.Counts()).
		Msg("seed completado")

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Datos de demostración cargados.")
	fmt.Fprintf(out, "  Email:      %s\n", cfg.Seed.Email)
	fmt.Fprintf(out, "  Contraseña: %s\n", cfg.Seed.Password)
	return nil
}
