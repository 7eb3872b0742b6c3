package dashboard_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/freelancer-crm/internal/application/dashboard"
	"github.com/jhoicas/freelancer-crm/internal/application/dto"
	"github.com/jhoicas/freelancer-crm/internal/domain"
	"github.com/jhoicas/freelancer-crm/internal/domain/entity"
)

var fixedNow = time.Date(2024, 2, 12, 15, 4, 0, 0, time.UTC)

func newStore() *dashboard.Store {
	return dashboard.NewStore(dashboard.WithClock(func() time.Time { return fixedNow }))
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtros: el resultado es un subconjunto ordenado y cada fila cumple el predicado
// ─────────────────────────────────────────────────────────────────────────────

var searches = []string{"", "sarah", "TECH", "consulting", "e-commerce", "zzz", "INV-2024", "design", "Plus"}

func TestListClients_SubconjuntoQueCumpleFiltros(t *testing.T) {
	s := newStore()
	all := s.Clients.All()
	statuses := []string{"", "all", "ALL", "active", "PROSPECT", "inactive"}
	priorities := []string{"", "all", "high", "Medium", "LOW"}

	for _, q := range searches {
		for _, st := range statuses {
			for _, pr := range priorities {
				got, err := s.ListClients(dto.ClientFilter{Search: q, Status: st, Priority: pr})
				require.NoError(t, err)
				assertOrderedSubset(t, all, got, func(c dto.ClientRow) string { return c.ID })
				for _, c := range got {
					assert.True(t, containsAny(q, c.Name, c.Company, c.Email), "%q en %s", q, c.Name)
					if st != "" && !strings.EqualFold(st, "all") {
						assert.Equal(t, entity.NormalizeEnum(st), string(c.Status))
					}
					if pr != "" && !strings.EqualFold(pr, "all") {
						assert.Equal(t, entity.NormalizeEnum(pr), string(c.Priority))
					}
				}
			}
		}
	}
}

func TestListClients_SinFiltrosDevuelveTodo(t *testing.T) {
	s := newStore()
	got, err := s.ListClients(dto.ClientFilter{Status: "all", Priority: "all"})
	require.NoError(t, err)
	assert.Len(t, got, 5)
}

func TestListClients_BusquedaSinMayusculas(t *testing.T) {
	s := newStore()
	got, err := s.ListClients(dto.ClientFilter{Search: "TECHCORP"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Sarah Johnson", got[0].Name)
}

func TestListClients_EstadoDesconocido(t *testing.T) {
	_, err := newStore().ListClients(dto.ClientFilter{Status: "archived"})
	assert.True(t, errors.Is(err, domain.ErrInvalidEnum))
}

func TestListLeads_FiltrosCombinados(t *testing.T) {
	s := newStore()
	for _, q := range searches {
		for _, st := range []string{"", "all", "NEW", "contacted", "proposal-sent", "won"} {
			got, err := s.ListLeads(dto.LeadFilter{Search: q, Status: st})
			require.NoError(t, err)
			assertOrderedSubset(t, s.Leads.All(), got, func(l dto.LeadRow) string { return l.ID })
			for _, l := range got {
				assert.True(t, containsAny(q, l.Name, l.Company, l.Email), "%q en %s", q, l.Name)
				if st != "" && st != "all" {
					assert.Equal(t, entity.NormalizeEnum(st), string(l.Status))
				}
			}
		}
	}

	got, err := s.ListLeads(dto.LeadFilter{Priority: "high"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestListInvoices_BusquedaYEstado(t *testing.T) {
	s := newStore()
	for _, q := range searches {
		for _, st := range []string{"", "ALL", "paid", "sent", "overdue", "cancelled"} {
			got, err := s.ListInvoices(dto.InvoiceFilter{Search: q, Status: st})
			require.NoError(t, err)
			assertOrderedSubset(t, s.Invoices.All(), got, func(i dto.InvoiceRow) string { return i.ID })
			for _, inv := range got {
				assert.True(t, containsAny(q, inv.InvoiceNumber, inv.Title, inv.Client), "%q en %s", q, inv.InvoiceNumber)
			}
		}
	}

	got, err := s.ListInvoices(dto.InvoiceFilter{Search: "inv-2024-00", Status: "paid"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "INV-2024-001", got[0].InvoiceNumber)
}

func TestListCommunications_BusquedaPorCampo(t *testing.T) {
	s := newStore()
	for _, q := range searches {
		for _, typ := range []string{"", "all", "email", "CALL", "meeting", "message"} {
			got, err := s.ListCommunications(dto.CommunicationFilter{Search: q, Type: typ})
			require.NoError(t, err)
			assertOrderedSubset(t, s.Communications.All(), got, func(c dto.CommunicationRow) string { return c.ID })
			for _, c := range got {
				assert.True(t, containsAny(q, c.Subject, c.Client), "%q en %s", q, c.Subject)
			}
		}
	}
}

// Un texto que solo aparece al unir dos campos no debe coincidir.
func TestBusqueda_NoCruzaLimitesDeCampo(t *testing.T) {
	s := newStore()

	leads, err := s.ListLeads(dto.LeadFilter{Search: "on Co"})
	require.NoError(t, err)
	for _, l := range leads {
		assert.True(t, containsAny("on Co", l.Name, l.Company, l.Email), "%s / %s", l.Name, l.Company)
	}
	assert.Empty(t, leads)

	invoices, err := s.ListInvoices(dto.InvoiceFilter{Search: "001 Website"})
	require.NoError(t, err)
	assert.Empty(t, invoices)

	comms, err := s.ListCommunications(dto.CommunicationFilter{Search: "Planning Marketing"})
	require.NoError(t, err)
	assert.Empty(t, comms)
}

func TestListClients_PrioridadUrgenteRechazada(t *testing.T) {
	s := newStore()
	_, err := s.ListClients(dto.ClientFilter{Priority: "URGENT"})
	assert.True(t, errors.Is(err, domain.ErrInvalidEnum))

	_, err = s.ListLeads(dto.LeadFilter{Priority: "urgent"})
	assert.True(t, errors.Is(err, domain.ErrInvalidEnum))

	got, err := s.ListClients(dto.ClientFilter{Priority: "high"})
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

func TestListCommunications_PorTipo(t *testing.T) {
	s := newStore()
	got, err := s.ListCommunications(dto.CommunicationFilter{Type: "call"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, entity.CommCall, got[0].Type)

	got, err = s.ListCommunications(dto.CommunicationFilter{Search: "marketing masters"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Roadmap Planning", got[0].Subject)
}

func TestListProjects_BusquedaEnDescripcion(t *testing.T) {
	got := newStore().ListProjects(dto.ProjectFilter{Search: "LEGACY"})
	require.Len(t, got, 1)
	assert.Equal(t, "Database Migration", got[0].Title)
}

// ─────────────────────────────────────────────────────────────────────────────
// Formularios: un alta rechazada no cambia la colección
// ─────────────────────────────────────────────────────────────────────────────

func TestCreate_RechazadoNoCambiaLongitud(t *testing.T) {
	s := newStore()
	cases := []struct {
		name   string
		create func() error
		length func() int
	}{
		{"client sin nombre", func() error { _, err := s.CreateClient(dto.CreateClientRequest{Company: "X"}); return err }, s.Clients.Len},
		{"client estado inválido", func() error {
			_, err := s.CreateClient(dto.CreateClientRequest{Name: "X", Status: "gone"})
			return err
		}, s.Clients.Len},
		{"client prioridad urgente", func() error {
			_, err := s.CreateClient(dto.CreateClientRequest{Name: "X", Priority: "urgent"})
			return err
		}, s.Clients.Len},
		{"lead sin nombre", func() error { _, err := s.CreateLead(dto.CreateLeadRequest{Email: "a@b.c"}); return err }, s.Leads.Len},
		{"invoice sin número", func() error {
			_, err := s.CreateInvoice(dto.CreateInvoiceRequest{Title: "T", Client: "C"})
			return err
		}, s.Invoices.Len},
		{"invoice sin cliente", func() error {
			_, err := s.CreateInvoice(dto.CreateInvoiceRequest{InvoiceNumber: "INV-9", Title: "T"})
			return err
		}, s.Invoices.Len},
		{"communication sin asunto", func() error {
			_, err := s.CreateCommunication(dto.CreateCommunicationRequest{Client: "C"})
			return err
		}, s.Communications.Len},
		{"project sin cliente", func() error {
			_, err := s.CreateProject(dto.CreateProjectRequest{Title: "T"})
			return err
		}, s.Projects.Len},
		{"project progreso fuera de rango", func() error {
			_, err := s.CreateProject(dto.CreateProjectRequest{Title: "T", Client: "C", Progress: 120})
			return err
		}, s.Projects.Len},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := tc.length()
			assert.Error(t, tc.create())
			assert.Equal(t, before, tc.length())
		})
	}
}

func TestCreateClient_ValoresPorDefectoYAlFrente(t *testing.T) {
	s := newStore()
	row, err := s.CreateClient(dto.CreateClientRequest{Name: "Nora Vance", Company: "Vance LLC"})
	require.NoError(t, err)

	assert.NotEmpty(t, row.ID)
	assert.Equal(t, entity.ClientActive, row.Status)
	assert.Equal(t, entity.PriorityMedium, row.Priority)
	assert.Equal(t, time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC), row.LastContact)

	all := s.Clients.All()
	require.Len(t, all, 6)
	assert.Equal(t, row.ID, all[0].ID)
}

func TestCreateLead_FuenteWebsitePorDefecto(t *testing.T) {
	row, err := newStore().CreateLead(dto.CreateLeadRequest{Name: "Ann", Value: decimal.NewFromInt(500)})
	require.NoError(t, err)
	assert.Equal(t, "Website", row.Source)
	assert.Equal(t, entity.LeadNew, row.Status)
	assert.Equal(t, fixedNow, row.CreatedAt)
}

func TestCreateInvoice_TotalSeGuardaTalCual(t *testing.T) {
	row, err := newStore().CreateInvoice(dto.CreateInvoiceRequest{
		InvoiceNumber: "INV-2024-006", Title: "Audit", Client: "TechCorp Solutions",
		Amount: decimal.NewFromInt(1000), Tax: decimal.NewFromInt(80), Total: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceDraft, row.Status)
	assert.True(t, row.Total.Equal(decimal.NewFromInt(1000)))
}

func TestCreateCommunication_ValoresPorDefecto(t *testing.T) {
	row, err := newStore().CreateCommunication(dto.CreateCommunicationRequest{Client: "C", Subject: "Hola"})
	require.NoError(t, err)
	assert.Equal(t, entity.CommEmail, row.Type)
	assert.Equal(t, entity.DirectionOutbound, row.Direction)
	assert.Equal(t, entity.CommStatusDraft, row.Status)
	assert.Equal(t, fixedNow, row.Time)
}

// ─────────────────────────────────────────────────────────────────────────────
// Kanban
// ─────────────────────────────────────────────────────────────────────────────

func TestBoard_CincoColumnasEnOrden(t *testing.T) {
	cols := newStore().Board(dto.ProjectFilter{})
	require.Len(t, cols, 5)
	assert.Equal(t, entity.ProjectPlanning, cols[0].Status)
	assert.Equal(t, "In Progress", cols[1].Title)
	assert.Empty(t, cols[4].Projects)

	require.Len(t, cols[1].Projects, 2)
	assert.Equal(t, "Website Redesign", cols[1].Projects[0].Title)
	assert.Equal(t, "Brand Identity Design", cols[1].Projects[1].Title)
}

func TestMoveProject_SoloCambiaElEstadoDelMovido(t *testing.T) {
	for _, dest := range entity.ProjectStatuses() {
		for idx := -1; idx <= 4; idx++ {
			s := newStore()
			before := rowsByID(s.Projects.All())

			moved, err := s.MoveProject("2", string(dest), idx)
			require.NoError(t, err)
			assert.Equal(t, dest, moved.Status)

			after := rowsByID(s.Projects.All())
			require.Len(t, after, len(before))
			for id, row := range before {
				if id == "2" {
					want := row
					want.Status = dest
					assert.Equal(t, want, after[id], "solo cambia el estado del proyecto movido")
					continue
				}
				assert.Equal(t, row, after[id], "proyecto %s no debe cambiar", id)
			}
		}
	}
}

func TestMoveProject_PosicionDentroDeLaColumna(t *testing.T) {
	s := newStore()
	_, err := s.MoveProject("2", "in-progress", 1)
	require.NoError(t, err)

	col := s.Board(dto.ProjectFilter{})[1]
	require.Len(t, col.Projects, 3)
	assert.Equal(t, []string{"1", "2", "5"}, ids(col.Projects))

	_, err = s.MoveProject("3", "IN_PROGRESS", 99)
	require.NoError(t, err)
	col = s.Board(dto.ProjectFilter{})[1]
	assert.Equal(t, []string{"1", "2", "5", "3"}, ids(col.Projects), "índice acotado al final")

	_, err = s.MoveProject("5", "IN_PROGRESS", 0)
	require.NoError(t, err)
	col = s.Board(dto.ProjectFilter{})[1]
	assert.Equal(t, []string{"5", "1", "2", "3"}, ids(col.Projects))
}

func TestMoveProject_ColumnaVacia(t *testing.T) {
	s := newStore()
	_, err := s.MoveProject("4", "cancelled", 0)
	require.NoError(t, err)
	col := s.Board(dto.ProjectFilter{})[4]
	assert.Equal(t, []string{"4"}, ids(col.Projects))
}

func TestMoveProject_Errores(t *testing.T) {
	s := newStore()
	_, err := s.MoveProject("999", "planning", 0)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = s.MoveProject("1", "archived", 0)
	assert.True(t, errors.Is(err, domain.ErrInvalidEnum))
	assert.Equal(t, entity.ProjectInProgress, rowsByID(s.Projects.All())["1"].Status)
}

// ─────────────────────────────────────────────────────────────────────────────
// Calendario, resumen y reset
// ─────────────────────────────────────────────────────────────────────────────

func TestEventsForMonth_OrdenadosPorFechaYHora(t *testing.T) {
	s := newStore()
	s.Events.Prepend(dto.EventRow{ID: "x", Title: "Early call", Date: time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC), Time: "08:00", Type: entity.EventCall})

	events := s.EventsForMonth(2024, time.February)
	require.Len(t, events, 5)
	assert.Equal(t, "1", events[0].ID)
	assert.Equal(t, "x", events[1].ID)
	assert.Equal(t, "2", events[2].ID)

	assert.Empty(t, s.EventsForMonth(2024, time.March))
}

func TestParseMonth(t *testing.T) {
	s := newStore()
	y, m, err := s.ParseMonth("2024-02")
	require.NoError(t, err)
	assert.Equal(t, 2024, y)
	assert.Equal(t, time.February, m)

	_, _, err = s.ParseMonth("febrero")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	y, m, err = s.ParseMonth("")
	require.NoError(t, err)
	assert.Equal(t, 2024, y)
	assert.Equal(t, time.February, m)
}

func TestOverview_Totales(t *testing.T) {
	ov, err := newStore().Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, ov.TotalClients)
	assert.Equal(t, 3, ov.ClientsByStatus[entity.ClientActive])
	assert.Equal(t, 2, ov.ActiveProjects)
	assert.Equal(t, 0, ov.ProjectsByStatus[entity.ProjectCancelled])
	assert.True(t, ov.PaidRevenue.Equal(decimal.NewFromInt(8100)))
	assert.True(t, ov.Outstanding.Equal(decimal.NewFromInt(4320+9720+2000)))
	assert.True(t, ov.PipelineValue.Equal(decimal.NewFromInt(15000+30000+8000+12000)))
	require.Len(t, ov.UpcomingEvents, 3, "desde el 12 de febrero")
	assert.Equal(t, "2", ov.UpcomingEvents[0].ID)
}

func TestReset_RestauraDatosIniciales(t *testing.T) {
	s := newStore()
	_, err := s.CreateClient(dto.CreateClientRequest{Name: "Temp"})
	require.NoError(t, err)
	_, err = s.MoveProject("1", "cancelled", 0)
	require.NoError(t, err)

	s.Reset()
	assert.Equal(t, 5, s.Clients.Len())
	assert.Equal(t, entity.ProjectInProgress, rowsByID(s.Projects.All())["1"].Status)
}

// ─────────────────────────────────────────────────────────────────────────────
// helpers
// ─────────────────────────────────────────────────────────────────────────────

func containsAny(q string, fields ...string) bool {
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), strings.ToLower(q)) {
			return true
		}
	}
	return false
}

func assertOrderedSubset[T any](t *testing.T, all, got []T, id func(T) string) {
	t.Helper()
	pos := 0
	for _, g := range got {
		for pos < len(all) && id(all[pos]) != id(g) {
			pos++
		}
		if !assert.Less(t, pos, len(all), "fila %s fuera de orden o inexistente", id(g)) {
			return
		}
		pos++
	}
}

func rowsByID(rows []dto.ProjectRow) map[string]dto.ProjectRow {
	m := make(map[string]dto.ProjectRow, len(rows))
	for _, r := range rows {
		m[r.ID] = r
	}
	return m
}

func ids(rows []dto.ProjectRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}
