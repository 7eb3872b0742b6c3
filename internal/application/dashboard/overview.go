package dashboard

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/freelancer-crm/internal/application/dto"
	"github.com/jhoicas/freelancer-crm/internal/domain/entity"
)

const overviewUpcomingEvents = 5 // eventos en el widget de agenda

// Overview calcula el resumen del panel a partir del estado actual del Store.
//
// Tres cálculos en paralelo:
//  1. clientes por estado
//  2. proyectos por estado
//  3. montos de facturas y pipeline de leads
func (s *Store) Overview(ctx context.Context) (*dto.DashboardOverviewDTO, error) {
	type clientsResult struct {
		total    int
		byStatus map[entity.ClientStatus]int
	}
	type projectsResult struct {
		byStatus map[entity.ProjectStatus]int
	}
	type moneyResult struct {
		paid, outstanding, pipeline decimal.Decimal
	}

	clientsCh := make(chan clientsResult, 1)
	projectsCh := make(chan projectsResult, 1)
	moneyCh := make(chan moneyResult, 1)

	go func() {
		res := clientsResult{byStatus: map[entity.ClientStatus]int{}}
		for _, c := range s.Clients.All() {
			res.total++
			res.byStatus[c.Status]++
		}
		clientsCh <- res
	}()
	go func() {
		res := projectsResult{byStatus: map[entity.ProjectStatus]int{}}
		for _, st := range entity.ProjectStatuses() {
			res.byStatus[st] = 0
		}
		for _, p := range s.Projects.All() {
			res.byStatus[p.Status]++
		}
		projectsCh <- res
	}()
	go func() {
		res := moneyResult{paid: decimal.Zero, outstanding: decimal.Zero, pipeline: decimal.Zero}
		for _, inv := range s.Invoices.All() {
			switch inv.Status {
			case entity.InvoicePaid:
				res.paid = res.paid.Add(inv.Total)
			case entity.InvoiceSent, entity.InvoiceViewed, entity.InvoiceOverdue:
				res.outstanding = res.outstanding.Add(inv.Total)
			}
		}
		for _, l := range s.Leads.All() {
			if l.Status != entity.LeadWon && l.Status != entity.LeadLost {
				res.pipeline = res.pipeline.Add(l.Value)
			}
		}
		moneyCh <- res
	}()

	var (
		clients  clientsResult
		projects projectsResult
		money    moneyResult
	)
	for range 3 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case clients = <-clientsCh:
		case projects = <-projectsCh:
		case money = <-moneyCh:
		}
	}

	return &dto.DashboardOverviewDTO{
		TotalClients:     clients.total,
		ClientsByStatus:  clients.byStatus,
		ActiveProjects:   projects.byStatus[entity.ProjectInProgress],
		ProjectsByStatus: projects.byStatus,
		PaidRevenue:      money.paid,
		Outstanding:      money.outstanding,
		PipelineValue:    money.pipeline,
		UpcomingEvents:   s.upcomingEvents(overviewUpcomingEvents),
	}, nil
}
