package seed

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/freelancer-crm/internal/domain"
	"github.com/jhoicas/freelancer-crm/internal/domain/entity"
	"github.com/jhoicas/freelancer-crm/internal/domain/repository"
	"github.com/jhoicas/freelancer-crm/pkg/logger"
)

// DefaultBcryptCost costo de hash de la contraseña demo.
const DefaultBcryptCost = 12

// Repositories puertos de persistencia usados por el seeder.
type Repositories struct {
	Accounts       repository.AccountRepository
	Clients        repository.ClientRepository
	Projects       repository.ProjectRepository
	Tasks          repository.TaskRepository
	Communications repository.CommunicationRepository
	Invoices       repository.InvoiceRepository
	Leads          repository.LeadRepository
	Opportunities  repository.OpportunityRepository
	Notes          repository.NoteRepository
	Tags           repository.TagRepository
	Reminders      repository.ReminderRepository
}

// Credentials cuenta demo a crear.
type Credentials struct {
	Email    string
	Password string
}

// Report resumen de una corrida del seeder.
type Report struct {
	AccountID      string
	AccountCreated bool
	Accounts       int
	Clients        int
	Projects       int
	Tasks          int
	Communications int
	Invoices       int
	Leads          int
	Opportunities  int
	Notes          int
	Tags           int
	Reminders      int
}

// Counts devuelve los conteos indexados por nombre de tabla.
func (r *Report) Counts() map[string]int64 {
	return map[string]int64{
		"accounts":       int64(r.Accounts),
		"clients":        int64(r.Clients),
		"projects":       int64(r.Projects),
		"tasks":          int64(r.Tasks),
		"communications": int64(r.Communications),
		"invoices":       int64(r.Invoices),
		"leads":          int64(r.Leads),
		"opportunities":  int64(r.Opportunities),
		"notes":          int64(r.Notes),
		"tags":           int64(r.Tags),
		"reminders":      int64(r.Reminders),
	}
}

// Seeder puebla la base con la cuenta demo y sus datos dependientes, tier por tier.
type Seeder struct {
	repos Repositories
	creds Credentials
	cost  int
	log   *logger.Logger
}

// NewSeeder construye el seeder. cost <= 0 usa DefaultBcryptCost.
func NewSeeder(repos Repositories, creds Credentials, cost int, log *logger.Logger) *Seeder {
	if cost <= 0 {
		cost = DefaultBcryptCost
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Seeder{repos: repos, creds: creds, cost: cost, log: log}
}

// Bootstrap crea la cuenta demo si su email no existe; si existe la deja intacta.
// Devuelve la cuenta almacenada y si fue creada en esta llamada.
func Bootstrap(ctx context.Context, repo repository.AccountRepository, creds Credentials, cost int) (*entity.Account, bool, error) {
	if creds.Email == "" || creds.Password == "" {
		return nil, false, fmt.Errorf("bootstrap: email y password son requeridos: %w", domain.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), cost)
	if err != nil {
		return nil, false, fmt.Errorf("hash password: %w", err)
	}
	account := demoAccount(creds.Email)
	account.PasswordHash = string(hash)
	created, err := repo.Upsert(ctx, account)
	if err != nil {
		return nil, false, fmt.Errorf("bootstrap account: %w", err)
	}
	return account, created, nil
}

// Run ejecuta la siembra completa. Cada tier espera al anterior; dentro de un tier
// las inserciones son concurrentes y el primer error aborta la corrida.
func (s *Seeder) Run(ctx context.Context) (*Report, error) {
	account, created, err := Bootstrap(ctx, s.repos.Accounts, s.creds, s.cost)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("email", account.Email).Bool("created", created).Msg("cuenta demo lista")
	rep := &Report{AccountID: account.ID, AccountCreated: created, Accounts: 1}
	aid := account.ID

	clients := demoClients(aid)
	if rep.Clients, err = runTier(ctx, s.log, "clients", clients, s.repos.Clients.Create); err != nil {
		return rep, err
	}
	clientIDs := ids(clients, func(c *entity.Client) string { return c.ID })

	projects := demoProjects(aid, clientIDs)
	if rep.Projects, err = runTier(ctx, s.log, "projects", projects, s.repos.Projects.Create); err != nil {
		return rep, err
	}
	projectIDs := ids(projects, func(p *entity.Project) string { return p.ID })

	if rep.Tasks, err = runTier(ctx, s.log, "tasks", demoTasks(aid, projectIDs), s.repos.Tasks.Create); err != nil {
		return rep, err
	}

	comms := demoCommunications(aid, clientIDs, projectIDs)
	if rep.Communications, err = runTier(ctx, s.log, "communications", comms, s.repos.Communications.Create); err != nil {
		return rep, err
	}

	invoices := demoInvoices(aid, clientIDs, projectIDs)
	for _, inv := range invoices {
		if !inv.TotalMatches() {
			s.log.Warn().
				Str("invoice", inv.InvoiceNumber).
				Str("total", inv.Total.String()).
				Str("expected", inv.ExpectedTotal().String()).
				Msg("total de factura distinto de amount + tax")
		}
	}
	if rep.Invoices, err = runTier(ctx, s.log, "invoices", invoices, s.repos.Invoices.Create); err != nil {
		return rep, err
	}

	leads := demoLeads(aid)
	if rep.Leads, err = runTier(ctx, s.log, "leads", leads, s.repos.Leads.Create); err != nil {
		return rep, err
	}
	leadIDs := ids(leads, func(l *entity.Lead) string { return l.ID })

	opps := demoOpportunities(aid, leadIDs)
	if rep.Opportunities, err = runTier(ctx, s.log, "opportunities", opps, s.repos.Opportunities.Create); err != nil {
		return rep, err
	}

	notes := demoNotes(aid, clientIDs, projectIDs)
	if rep.Notes, err = runTier(ctx, s.log, "notes", notes, s.repos.Notes.Create); err != nil {
		return rep, err
	}

	if rep.Tags, err = runTier(ctx, s.log, "tags", demoTags(aid), s.repos.Tags.Create); err != nil {
		return rep, err
	}

	reminders := demoReminders(aid, clientIDs)
	if rep.Reminders, err = runTier(ctx, s.log, "reminders", reminders, s.repos.Reminders.Create); err != nil {
		return rep, err
	}

	return rep, nil
}

type validatable interface {
	Validate() error
}

// runTier valida y crea todos los ítems del tier en paralelo y espera a que terminen.
func runTier[T validatable](ctx context.Context, log *logger.Logger, tier string, items []T, create func(context.Context, T) error) (int, error) {
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return 0, fmt.Errorf("seed %s: %w", tier, err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, it := range items {
		g.Go(func() error {
			return create(gctx, it)
		})
	}
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Str("tier", tier).Msg("fallo creando tier")
		return 0, fmt.Errorf("seed %s: %w", tier, err)
	}

	log.Info().Str("tier", tier).Int("count", len(items)).Msg("tier sembrado")
	return len(items), nil
}

func ids[T any](items []T, id func(T) string) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = id(it)
	}
	return out
}
