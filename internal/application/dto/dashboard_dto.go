package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/freelancer-crm/internal/domain/entity"
)

// ── Filas de las vistas ────────────────────────────────────────────────────────

// ClientRow fila de la tabla de clientes.
type ClientRow struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Company       string              `json:"company"`
	Email         string              `json:"email"`
	Phone         string              `json:"phone"`
	Status        entity.ClientStatus `json:"status"`
	Priority      entity.Priority     `json:"priority"`
	LastContact   time.Time           `json:"last_contact"`
	TotalProjects int                 `json:"total_projects"`
	TotalRevenue  decimal.Decimal     `json:"total_revenue"`
	Tags          []string            `json:"tags"`
}

// LeadRow fila de la tabla de leads.
type LeadRow struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Company   string            `json:"company,omitempty"`
	Email     string            `json:"email,omitempty"`
	Phone     string            `json:"phone,omitempty"`
	Status    entity.LeadStatus `json:"status"`
	Priority  entity.Priority   `json:"priority"`
	Value     decimal.Decimal   `json:"value"`
	Source    string            `json:"source,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	NextStep  string            `json:"next_step,omitempty"`
}

// InvoiceRow fila de la tabla de facturas. Client es el nombre mostrado, no un ID.
type InvoiceRow struct {
	ID            string               `json:"id"`
	InvoiceNumber string               `json:"invoice_number"`
	Title         string               `json:"title"`
	Client        string               `json:"client"`
	Amount        decimal.Decimal      `json:"amount"`
	Tax           decimal.Decimal      `json:"tax"`
	Total         decimal.Decimal      `json:"total"`
	Status        entity.InvoiceStatus `json:"status"`
	DueDate       time.Time            `json:"due_date"`
	SentAt        *time.Time           `json:"sent_at,omitempty"`
}

// CommunicationRow fila del registro de comunicaciones.
type CommunicationRow struct {
	ID        string                     `json:"id"`
	Type      entity.CommunicationType   `json:"type"`
	Subject   string                     `json:"subject"`
	Client    string                     `json:"client"`
	Direction entity.Direction           `json:"direction"`
	Status    entity.CommunicationStatus `json:"status"`
	Time      time.Time                  `json:"time"`
	Notes     string                     `json:"notes,omitempty"`
}

// ProjectRow tarjeta del tablero de proyectos.
type ProjectRow struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Status      entity.ProjectStatus `json:"status"`
	Priority    entity.Priority      `json:"priority"`
	Client      string               `json:"client"`
	StartDate   time.Time            `json:"start_date"`
	Deadline    time.Time            `json:"deadline"`
	Progress    int                  `json:"progress"`
	Budget      decimal.Decimal      `json:"budget"`
	Team        []string             `json:"team"`
	Tags        []string             `json:"tags"`
}

// EventRow evento del calendario. Time es la hora local "HH:MM".
type EventRow struct {
	ID     string           `json:"id"`
	Title  string           `json:"title"`
	Date   time.Time        `json:"date"`
	Time   string           `json:"time"`
	Type   entity.EventType `json:"type"`
	Client string           `json:"client,omitempty"`
}

// ── Filtros (query string) ─────────────────────────────────────────────────────
// Los filtros de enumeración aceptan "" o "all" (cualquier capitalización) como "sin filtro".

// ClientFilter filtros de GET /api/dashboard/clients.
type ClientFilter struct {
	Search   string `query:"search"`
	Status   string `query:"status"`
	Priority string `query:"priority"`
}

// LeadFilter filtros de GET /api/dashboard/leads.
type LeadFilter struct {
	Search   string `query:"search"`
	Status   string `query:"status"`
	Priority string `query:"priority"`
}

// InvoiceFilter filtros de GET /api/dashboard/invoices.
type InvoiceFilter struct {
	Search string `query:"search"`
	Status string `query:"status"`
}

// CommunicationFilter filtros de GET /api/dashboard/communications.
type CommunicationFilter struct {
	Search string `query:"search"`
	Type   string `query:"type"`
}

// ProjectFilter filtros de GET /api/dashboard/projects.
type ProjectFilter struct {
	Search string `query:"search"`
}

// ── Formularios de creación ────────────────────────────────────────────────────

// CreateClientRequest formulario de nuevo cliente. Name es obligatorio.
type CreateClientRequest struct {
	Name     string `json:"name"`
	Company  string `json:"company"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Status   string `json:"status"`   // default ACTIVE
	Priority string `json:"priority"` // default MEDIUM
}

// CreateLeadRequest formulario de nuevo lead. Name es obligatorio.
type CreateLeadRequest struct {
	Name     string          `json:"name"`
	Company  string          `json:"company"`
	Email    string          `json:"email"`
	Phone    string          `json:"phone"`
	Status   string          `json:"status"`   // default NEW
	Priority string          `json:"priority"` // default MEDIUM
	Value    decimal.Decimal `json:"value"`
	Source   string          `json:"source"` // default Website
	NextStep string          `json:"next_step"`
}

// CreateInvoiceRequest formulario de nueva factura. Número, título y cliente son obligatorios.
// Total se toma tal cual; no se recalcula.
type CreateInvoiceRequest struct {
	InvoiceNumber string          `json:"invoice_number"`
	Title         string          `json:"title"`
	Client        string          `json:"client"`
	Amount        decimal.Decimal `json:"amount"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`   // default DRAFT
	DueDate       *time.Time      `json:"due_date"` // default hoy
}

// CreateCommunicationRequest formulario de nueva comunicación. Cliente y asunto son obligatorios.
type CreateCommunicationRequest struct {
	Type      string     `json:"type"`      // default EMAIL
	Subject   string     `json:"subject"`
	Client    string     `json:"client"`
	Direction string     `json:"direction"` // default OUTBOUND
	Status    string     `json:"status"`    // default DRAFT
	Time      *time.Time `json:"time"`      // default ahora
	Notes     string     `json:"notes"`
}

// CreateProjectRequest formulario de nuevo proyecto. Título y cliente son obligatorios.
type CreateProjectRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Client      string          `json:"client"`
	Status      string          `json:"status"`   // default PLANNING
	Priority    string          `json:"priority"` // default MEDIUM
	StartDate   *time.Time      `json:"start_date"`
	Deadline    *time.Time      `json:"deadline"`
	Progress    int             `json:"progress"`
	Budget      decimal.Decimal `json:"budget"`
}

// ── Tablero y calendario ───────────────────────────────────────────────────────

// MoveProjectRequest cuerpo de POST /api/dashboard/projects/:id/move.
type MoveProjectRequest struct {
	Status string `json:"status"`
	Index  int    `json:"index"`
}

// BoardColumn columna del tablero kanban.
type BoardColumn struct {
	Status   entity.ProjectStatus `json:"status"`
	Title    string               `json:"title"`
	Projects []ProjectRow         `json:"projects"`
}

// CalendarMonthResponse eventos de un mes.
type CalendarMonthResponse struct {
	Month  string     `json:"month"` // YYYY-MM
	Label  string     `json:"label"` // ej: "February 2024"
	Events []EventRow `json:"events"`
}

// ── Resumen ────────────────────────────────────────────────────────────────────

// DashboardOverviewDTO respuesta de GET /api/dashboard/overview.
type DashboardOverviewDTO struct {
	TotalClients     int                          `json:"total_clients"`
	ClientsByStatus  map[entity.ClientStatus]int  `json:"clients_by_status"`
	ActiveProjects   int                          `json:"active_projects"`
	ProjectsByStatus map[entity.ProjectStatus]int `json:"projects_by_status"`
	PaidRevenue      decimal.Decimal              `json:"paid_revenue"`    // total de facturas PAID
	Outstanding      decimal.Decimal              `json:"outstanding"`     // SENT + VIEWED + OVERDUE
	PipelineValue    decimal.Decimal              `json:"pipeline_value"`  // leads abiertos (ni WON ni LOST)
	UpcomingEvents   []EventRow                   `json:"upcoming_events"` // próximos eventos desde hoy
}

// StatsResponse respuesta de GET /api/stats: filas por tabla.
type StatsResponse struct {
	Counts map[string]int64 `json:"counts"`
}
