package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/freelancer-crm/internal/application/dashboard"
	"github.com/jhoicas/freelancer-crm/internal/application/dto"
)

// DashboardHandler expone las vistas del dashboard en memoria.
type DashboardHandler struct {
	store *dashboard.Store
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(store *dashboard.Store) *DashboardHandler {
	return &DashboardHandler{store: store}
}

// ── Clientes ──────────────────────────────────────────────────────────────────

// ListClients godoc
// @Summary      Listar clientes
// @Tags         dashboard
// @Produce      json
// @Param        search    query  string  false  "Texto libre (nombre, empresa, email)"
// @Param        status    query  string  false  "ACTIVE | PROSPECT | INACTIVE | all"
// @Param        priority  query  string  false  "LOW | MEDIUM | HIGH | all"
// @Success      200  {array}   dto.ClientRow
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard/clients [get]
func (h *DashboardHandler) ListClients(c *fiber.Ctx) error {
	var f dto.ClientFilter
	if err := c.QueryParser(&f); err != nil {
		return invalidBody(c)
	}
	out, err := h.store.ListClients(f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateClient godoc
// @Summary      Crear cliente
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClientRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.ClientRow
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/dashboard/clients [post]
func (h *DashboardHandler) CreateClient(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.store.CreateClient(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ── Leads ─────────────────────────────────────────────────────────────────────

// ListLeads GET /api/dashboard/leads
func (h *DashboardHandler) ListLeads(c *fiber.Ctx) error {
	var f dto.LeadFilter
	if err := c.QueryParser(&f); err != nil {
		return invalidBody(c)
	}
	out, err := h.store.ListLeads(f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateLead POST /api/dashboard/leads
func (h *DashboardHandler) CreateLead(c *fiber.Ctx) error {
	var in dto.CreateLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.store.CreateLead(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ── Facturas ──────────────────────────────────────────────────────────────────

// ListInvoices GET /api/dashboard/invoices
func (h *DashboardHandler) ListInvoices(c *fiber.Ctx) error {
	var f dto.InvoiceFilter
	if err := c.QueryParser(&f); err != nil {
		return invalidBody(c)
	}
	out, err := h.store.ListInvoices(f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateInvoice POST /api/dashboard/invoices
func (h *DashboardHandler) CreateInvoice(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.store.CreateInvoice(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ── Comunicaciones ────────────────────────────────────────────────────────────

// ListCommunications GET /api/dashboard/communications
func (h *DashboardHandler) ListCommunications(c *fiber.Ctx) error {
	var f dto.CommunicationFilter
	if err := c.QueryParser(&f); err != nil {
		return invalidBody(c)
	}
	out, err := h.store.ListCommunications(f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateCommunication POST /api/dashboard/communications
func (h *DashboardHandler) CreateCommunication(c *fiber.Ctx) error {
	var in dto.CreateCommunicationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.store.CreateCommunication(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ── Proyectos ─────────────────────────────────────────────────────────────────

// ListProjects GET /api/dashboard/projects
func (h *DashboardHandler) ListProjects(c *fiber.Ctx) error {
	var f dto.ProjectFilter
	if err := c.QueryParser(&f); err != nil {
		return invalidBody(c)
	}
	return c.JSON(h.store.ListProjects(f))
}

// CreateProject POST /api/dashboard/projects
func (h *DashboardHandler) CreateProject(c *fiber.Ctx) error {
	var in dto.CreateProjectRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.store.CreateProject(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Board godoc
// @Summary      Tablero kanban de proyectos
// @Tags         dashboard
// @Produce      json
// @Param        search  query  string  false  "Texto libre"
// @Success      200  {array}  dto.BoardColumn
// @Router       /api/dashboard/projects/board [get]
func (h *DashboardHandler) Board(c *fiber.Ctx) error {
	var f dto.ProjectFilter
	if err := c.QueryParser(&f); err != nil {
		return invalidBody(c)
	}
	return c.JSON(h.store.Board(f))
}

// MoveProject godoc
// @Summary      Mover tarjeta del tablero
// @Description  Cambia el estado del proyecto y lo ubica en la posición index de la columna destino.
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del proyecto"
// @Param        body  body  dto.MoveProjectRequest  true  "Columna y posición destino"
// @Success      200   {object}  dto.ProjectRow
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/dashboard/projects/{id}/move [post]
func (h *DashboardHandler) MoveProject(c *fiber.Ctx) error {
	var in dto.MoveProjectRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.store.MoveProject(c.Params("id"), in.Status, in.Index)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ── Calendario y resumen ──────────────────────────────────────────────────────

// Calendar GET /api/dashboard/calendar?month=YYYY-MM
func (h *DashboardHandler) Calendar(c *fiber.Ctx) error {
	year, month, err := h.store.ParseMonth(c.Query("month"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(h.store.CalendarMonth(year, month))
}

// Overview GET /api/dashboard/overview
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	out, err := h.store.Overview(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Reset restaura los datos de ejemplo. POST /api/dashboard/reset
func (h *DashboardHandler) Reset(c *fiber.Ctx) error {
	h.store.Reset()
	return c.SendStatus(fiber.StatusNoContent)
}
