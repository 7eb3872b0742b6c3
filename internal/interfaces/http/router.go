package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/freelancer-crm/internal/application/billing"
	"github.com/jhoicas/freelancer-crm/internal/application/dashboard"
	"github.com/jhoicas/freelancer-crm/internal/domain/repository"
)

// RouterDeps dependencias para el router. Stats e InvoicePDF son opcionales:
// sin base de datos solo se monta el dashboard.
type RouterDeps struct {
	Dashboard  *dashboard.Store
	Stats      repository.StatsRepository
	InvoicePDF *billing.PDFUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Dashboard (datos de ejemplo en memoria)
	dash := api.Group("/dashboard")
	dh := NewDashboardHandler(deps.Dashboard)
	dash.Get("/clients", dh.ListClients)
	dash.Post("/clients", dh.CreateClient)
	dash.Get("/leads", dh.ListLeads)
	dash.Post("/leads", dh.CreateLead)
	dash.Get("/invoices", dh.ListInvoices)
	dash.Post("/invoices", dh.CreateInvoice)
	dash.Get("/communications", dh.ListCommunications)
	dash.Post("/communications", dh.CreateCommunication)
	dash.Get("/projects/board", dh.Board)
	dash.Post("/projects/:id/move", dh.MoveProject)
	dash.Get("/projects", dh.ListProjects)
	dash.Post("/projects", dh.CreateProject)
	dash.Get("/calendar", dh.Calendar)
	dash.Get("/overview", dh.Overview)
	dash.Post("/reset", dh.Reset)

	// Registros persistidos
	if deps.Stats != nil {
		api.Get("/stats", NewStatsHandler(deps.Stats).Get)
	}
	if deps.InvoicePDF != nil {
		api.Get("/invoices/:id/pdf", NewInvoiceHandler(deps.InvoicePDF).DownloadPDF)
	}
}
