// Package dashboard mantiene el estado en memoria de las vistas del panel
// (clientes, leads, facturas, comunicaciones, proyectos y calendario) y las
// operaciones de filtrado, alta y tablero kanban sobre ese estado.
package dashboard

import (
	"time"

	"github.com/jhoicas/freelancer-crm/internal/application/dto"
)

// Store agrupa una colección por vista. Se crea una vez y se inyecta en los handlers.
type Store struct {
	Clients        *Collection[dto.ClientRow]
	Leads          *Collection[dto.LeadRow]
	Invoices       *Collection[dto.InvoiceRow]
	Communications *Collection[dto.CommunicationRow]
	Projects       *Collection[dto.ProjectRow]
	Events         *Collection[dto.EventRow]

	now func() time.Time
}

// Option configura el Store.
type Option func(*Store)

// WithClock fija el reloj usado para fechas por defecto (tests).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore construye el Store con los datos de demostración.
func NewStore(opts ...Option) *Store {
	s := &Store{
		Clients:        NewCollection(seedClients),
		Leads:          NewCollection(seedLeads),
		Invoices:       NewCollection(seedInvoices),
		Communications: NewCollection(seedCommunications),
		Projects:       NewCollection(seedProjects),
		Events:         NewCollection(seedEvents),
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reset restaura todas las vistas a los datos iniciales.
func (s *Store) Reset() {
	s.Clients.Reset()
	s.Leads.Reset()
	s.Invoices.Reset()
	s.Communications.Reset()
	s.Projects.Reset()
	s.Events.Reset()
}

// today fecha actual a medianoche UTC.
func (s *Store) today() time.Time {
	n := s.now().UTC()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}
