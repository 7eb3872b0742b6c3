package dashboard

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/freelancer-crm/internal/application/dto"
	"github.com/jhoicas/freelancer-crm/internal/domain"
	"github.com/jhoicas/freelancer-crm/internal/domain/entity"
)

// ── Clientes ───────────────────────────────────────────────────────────────────

// ListClients filtra por búsqueda (nombre, empresa o email), estado y prioridad.
func (s *Store) ListClients(f dto.ClientFilter) ([]dto.ClientRow, error) {
	status, err := enumFilter(f.Status, entity.ParseClientStatus)
	if err != nil {
		return nil, err
	}
	priority, err := contactPriorityFilter(f.Priority)
	if err != nil {
		return nil, err
	}
	return s.Clients.Filter(func(c dto.ClientRow) bool {
		return anyContainsFold(f.Search, c.Name, c.Company, c.Email) &&
			matchEnum(status, c.Status) &&
			matchEnum(priority, c.Priority)
	}), nil
}

// CreateClient agrega un cliente al frente de la lista. Sin nombre no se crea nada.
func (s *Store) CreateClient(in dto.CreateClientRequest) (*dto.ClientRow, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("client: name es requerido: %w", domain.ErrInvalidInput)
	}
	status, err := enumOrDefault(in.Status, entity.ClientActive, entity.ParseClientStatus)
	if err != nil {
		return nil, err
	}
	priority, err := enumOrDefault(in.Priority, entity.PriorityMedium, entity.ParsePriority)
	if err != nil {
		return nil, err
	}
	if !priority.ValidForContact() {
		return nil, fmt.Errorf("client priority %q: %w", priority, domain.ErrInvalidEnum)
	}
	row := dto.ClientRow{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Company:      in.Company,
		Email:        in.Email,
		Phone:        in.Phone,
		Status:       status,
		Priority:     priority,
		LastContact:  s.today(),
		TotalRevenue: decimal.Zero,
		Tags:         []string{},
	}
	s.Clients.Prepend(row)
	return &row, nil
}

// contactPriorityFilter como enumFilter pero sin URGENT, que no aplica a clientes ni leads.
func contactPriorityFilter(raw string) (*entity.Priority, error) {
	p, err := enumFilter(raw, entity.ParsePriority)
	if err != nil {
		return nil, err
	}
	if p != nil && !p.ValidForContact() {
		return nil, fmt.Errorf("priority %q: %w", raw, domain.ErrInvalidEnum)
	}
	return p, nil
}

// ── Leads ──────────────────────────────────────────────────────────────────────

// ListLeads filtra por búsqueda (nombre, empresa o email), estado y prioridad.
func (s *Store) ListLeads(f dto.LeadFilter) ([]dto.LeadRow, error) {
	status, err := enumFilter(f.Status, entity.ParseLeadStatus)
	if err != nil {
		return nil, err
	}
	priority, err := contactPriorityFilter(f.Priority)
	if err != nil {
		return nil, err
	}
	return s.Leads.Filter(func(l dto.LeadRow) bool {
		return anyContainsFold(f.Search, l.Name, l.Company, l.Email) &&
			matchEnum(status, l.Status) &&
			matchEnum(priority, l.Priority)
	}), nil
}

// CreateLead agrega un lead al frente. Sin nombre no se crea nada.
func (s *Store) CreateLead(in dto.CreateLeadRequest) (*dto.LeadRow, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("lead: name es requerido: %w", domain.ErrInvalidInput)
	}
	status, err := enumOrDefault(in.Status, entity.LeadNew, entity.ParseLeadStatus)
	if err != nil {
		return nil, err
	}
	priority, err := enumOrDefault(in.Priority, entity.PriorityMedium, entity.ParsePriority)
	if err != nil {
		return nil, err
	}
	if !priority.ValidForContact() {
		return nil, fmt.Errorf("lead priority %q: %w", priority, domain.ErrInvalidEnum)
	}
	source := in.Source
	if source == "" {
		source = "Website"
	}
	row := dto.LeadRow{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Company:   in.Company,
		Email:     in.Email,
		Phone:     in.Phone,
		Status:    status,
		Priority:  priority,
		Value:     in.Value,
		Source:    source,
		CreatedAt: s.now().UTC(),
		NextStep:  in.NextStep,
	}
	s.Leads.Prepend(row)
	return &row, nil
}

// ── Facturas ───────────────────────────────────────────────────────────────────

// ListInvoices filtra por búsqueda (número, título o cliente) y estado.
func (s *Store) ListInvoices(f dto.InvoiceFilter) ([]dto.InvoiceRow, error) {
	status, err := enumFilter(f.Status, entity.ParseInvoiceStatus)
	if err != nil {
		return nil, err
	}
	return s.Invoices.Filter(func(inv dto.InvoiceRow) bool {
		return anyContainsFold(f.Search, inv.InvoiceNumber, inv.Title, inv.Client) &&
			matchEnum(status, inv.Status)
	}), nil
}

// CreateInvoice agrega una factura al frente. Número, título y cliente son obligatorios.
func (s *Store) CreateInvoice(in dto.CreateInvoiceRequest) (*dto.InvoiceRow, error) {
	if in.InvoiceNumber == "" || in.Title == "" || in.Client == "" {
		return nil, fmt.Errorf("invoice: invoice_number, title y client son requeridos: %w", domain.ErrInvalidInput)
	}
	status, err := enumOrDefault(in.Status, entity.InvoiceDraft, entity.ParseInvoiceStatus)
	if err != nil {
		return nil, err
	}
	due := s.today()
	if in.DueDate != nil {
		due = *in.DueDate
	}
	row := dto.InvoiceRow{
		ID:            uuid.NewString(),
		InvoiceNumber: in.InvoiceNumber,
		Title:         in.Title,
		Client:        in.Client,
		Amount:        in.Amount,
		Tax:           in.Tax,
		Total:         in.Total,
		Status:        status,
		DueDate:       due,
	}
	s.Invoices.Prepend(row)
	return &row, nil
}

// ── Comunicaciones ─────────────────────────────────────────────────────────────

// ListCommunications filtra por búsqueda (asunto o cliente) y tipo.
func (s *Store) ListCommunications(f dto.CommunicationFilter) ([]dto.CommunicationRow, error) {
	typ, err := enumFilter(f.Type, entity.ParseCommunicationType)
	if err != nil {
		return nil, err
	}
	return s.Communications.Filter(func(c dto.CommunicationRow) bool {
		return anyContainsFold(f.Search, c.Subject, c.Client) && matchEnum(typ, c.Type)
	}), nil
}

// CreateCommunication registra una comunicación al frente. Cliente y asunto son obligatorios.
func (s *Store) CreateCommunication(in dto.CreateCommunicationRequest) (*dto.CommunicationRow, error) {
	if in.Client == "" || in.Subject == "" {
		return nil, fmt.Errorf("communication: client y subject son requeridos: %w", domain.ErrInvalidInput)
	}
	typ, err := enumOrDefault(in.Type, entity.CommEmail, entity.ParseCommunicationType)
	if err != nil {
		return nil, err
	}
	dir, err := enumOrDefault(in.Direction, entity.DirectionOutbound, entity.ParseDirection)
	if err != nil {
		return nil, err
	}
	status, err := enumOrDefault(in.Status, entity.CommStatusDraft, entity.ParseCommunicationStatus)
	if err != nil {
		return nil, err
	}
	at := s.now().UTC()
	if in.Time != nil {
		at = *in.Time
	}
	row := dto.CommunicationRow{
		ID:        uuid.NewString(),
		Type:      typ,
		Subject:   in.Subject,
		Client:    in.Client,
		Direction: dir,
		Status:    status,
		Time:      at,
		Notes:     in.Notes,
	}
	s.Communications.Prepend(row)
	return &row, nil
}
