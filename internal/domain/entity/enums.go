package entity

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jhoicas/freelancer-crm/internal/domain"
)

// Enumeraciones cerradas de estado, prioridad y tipo. Los valores canónicos van en
// mayúsculas con guion bajo; Parse* acepta cualquier capitalización y "-" o espacio
// como separador ("in-progress" → IN_PROGRESS).

// ClientStatus estado comercial de un cliente.
type ClientStatus string

const (
	ClientActive   ClientStatus = "ACTIVE"
	ClientProspect ClientStatus = "PROSPECT"
	ClientInactive ClientStatus = "INACTIVE"
)

var clientStatuses = []ClientStatus{ClientActive, ClientProspect, ClientInactive}

// Priority prioridad compartida por clientes, proyectos, tareas, leads y recordatorios.
// URGENT solo aplica a proyectos y tareas.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

var priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// ProjectStatus columna del tablero kanban.
type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "PLANNING"
	ProjectInProgress ProjectStatus = "IN_PROGRESS"
	ProjectOnHold     ProjectStatus = "ON_HOLD"
	ProjectCompleted  ProjectStatus = "COMPLETED"
	ProjectCancelled  ProjectStatus = "CANCELLED"
)

var projectStatuses = []ProjectStatus{ProjectPlanning, ProjectInProgress, ProjectOnHold, ProjectCompleted, ProjectCancelled}

// TaskStatus estado de una tarea.
type TaskStatus string

const (
	TaskTodo       TaskStatus = "TODO"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskCompleted  TaskStatus = "COMPLETED"
)

var taskStatuses = []TaskStatus{TaskTodo, TaskInProgress, TaskCompleted}

// CommunicationType canal de la comunicación.
type CommunicationType string

const (
	CommEmail   CommunicationType = "EMAIL"
	CommCall    CommunicationType = "CALL"
	CommMeeting CommunicationType = "MEETING"
	CommMessage CommunicationType = "MESSAGE"
)

var communicationTypes = []CommunicationType{CommEmail, CommCall, CommMeeting, CommMessage}

// Direction sentido de la comunicación.
type Direction string

const (
	DirectionInbound  Direction = "INBOUND"
	DirectionOutbound Direction = "OUTBOUND"
)

var directions = []Direction{DirectionInbound, DirectionOutbound}

// CommunicationStatus estado de entrega.
type CommunicationStatus string

const (
	CommStatusDraft     CommunicationStatus = "DRAFT"
	CommStatusScheduled CommunicationStatus = "SCHEDULED"
	CommStatusSent      CommunicationStatus = "SENT"
	CommStatusDelivered CommunicationStatus = "DELIVERED"
	CommStatusRead      CommunicationStatus = "READ"
	CommStatusFailed    CommunicationStatus = "FAILED"
)

var communicationStatuses = []CommunicationStatus{
	CommStatusDraft, CommStatusScheduled, CommStatusSent, CommStatusDelivered, CommStatusRead, CommStatusFailed,
}

// InvoiceStatus estado de cobro de la factura.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "DRAFT"
	InvoiceSent      InvoiceStatus = "SENT"
	InvoiceViewed    InvoiceStatus = "VIEWED"
	InvoicePaid      InvoiceStatus = "PAID"
	InvoiceOverdue   InvoiceStatus = "OVERDUE"
	InvoiceCancelled InvoiceStatus = "CANCELLED"
)

var invoiceStatuses = []InvoiceStatus{InvoiceDraft, InvoiceSent, InvoiceViewed, InvoicePaid, InvoiceOverdue, InvoiceCancelled}

// LeadStatus etapa del lead en el pipeline.
type LeadStatus string

const (
	LeadNew          LeadStatus = "NEW"
	LeadContacted    LeadStatus = "CONTACTED"
	LeadQualified    LeadStatus = "QUALIFIED"
	LeadProposalSent LeadStatus = "PROPOSAL_SENT"
	LeadNegotiation  LeadStatus = "NEGOTIATION"
	LeadWon          LeadStatus = "WON"
	LeadLost         LeadStatus = "LOST"
)

var leadStatuses = []LeadStatus{LeadNew, LeadContacted, LeadQualified, LeadProposalSent, LeadNegotiation, LeadWon, LeadLost}

// OpportunityStatus etapa de la oportunidad.
type OpportunityStatus string

const (
	OpportunityProspecting   OpportunityStatus = "PROSPECTING"
	OpportunityQualification OpportunityStatus = "QUALIFICATION"
	OpportunityProposal      OpportunityStatus = "PROPOSAL"
	OpportunityNegotiation   OpportunityStatus = "NEGOTIATION"
	OpportunityClosedWon     OpportunityStatus = "CLOSED_WON"
	OpportunityClosedLost    OpportunityStatus = "CLOSED_LOST"
)

var opportunityStatuses = []OpportunityStatus{
	OpportunityProspecting, OpportunityQualification, OpportunityProposal,
	OpportunityNegotiation, OpportunityClosedWon, OpportunityClosedLost,
}

// NoteType clasificación de la nota.
type NoteType string

const (
	NoteClient  NoteType = "CLIENT"
	NoteGeneral NoteType = "GENERAL"
)

var noteTypes = []NoteType{NoteClient, NoteGeneral}

// ReminderType motivo del recordatorio.
type ReminderType string

const (
	ReminderFollowUp ReminderType = "FOLLOW_UP"
	ReminderInvoice  ReminderType = "INVOICE"
)

var reminderTypes = []ReminderType{ReminderFollowUp, ReminderInvoice}

// EventType tipo de evento del calendario.
type EventType string

const (
	EventMeeting  EventType = "MEETING"
	EventCall     EventType = "CALL"
	EventDeadline EventType = "DEADLINE"
	EventFollowUp EventType = "FOLLOW_UP"
)

var eventTypes = []EventType{EventMeeting, EventCall, EventDeadline, EventFollowUp}

// Valid informa si el valor pertenece a su enumeración.
func (s ClientStatus) Valid() bool        { return slices.Contains(clientStatuses, s) }
func (p Priority) Valid() bool            { return slices.Contains(priorities, p) }
func (s ProjectStatus) Valid() bool       { return slices.Contains(projectStatuses, s) }
func (s TaskStatus) Valid() bool          { return slices.Contains(taskStatuses, s) }
func (t CommunicationType) Valid() bool   { return slices.Contains(communicationTypes, t) }
func (d Direction) Valid() bool           { return slices.Contains(directions, d) }
func (s CommunicationStatus) Valid() bool { return slices.Contains(communicationStatuses, s) }
func (s InvoiceStatus) Valid() bool       { return slices.Contains(invoiceStatuses, s) }
func (s LeadStatus) Valid() bool          { return slices.Contains(leadStatuses, s) }
func (s OpportunityStatus) Valid() bool   { return slices.Contains(opportunityStatuses, s) }
func (t NoteType) Valid() bool            { return slices.Contains(noteTypes, t) }
func (t ReminderType) Valid() bool        { return slices.Contains(reminderTypes, t) }
func (t EventType) Valid() bool           { return slices.Contains(eventTypes, t) }

// ValidForContact informa si la prioridad es admisible para clientes y leads (sin URGENT).
func (p Priority) ValidForContact() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// ProjectStatuses devuelve las columnas del tablero en orden de presentación.
func ProjectStatuses() []ProjectStatus { return slices.Clone(projectStatuses) }

// ParseClientStatus normaliza s y lo valida contra los estados de cliente.
func ParseClientStatus(s string) (ClientStatus, error) { return parseEnum(s, clientStatuses) }

// ParsePriority normaliza s y lo valida contra las prioridades (incluye URGENT).
func ParsePriority(s string) (Priority, error) { return parseEnum(s, priorities) }

// ParseProjectStatus normaliza s y lo valida contra las columnas del tablero.
func ParseProjectStatus(s string) (ProjectStatus, error) { return parseEnum(s, projectStatuses) }

// ParseTaskStatus normaliza s y lo valida contra los estados de tarea.
func ParseTaskStatus(s string) (TaskStatus, error) { return parseEnum(s, taskStatuses) }

// ParseCommunicationType normaliza s y lo valida contra los canales de comunicación.
func ParseCommunicationType(s string) (CommunicationType, error) {
	return parseEnum(s, communicationTypes)
}

// ParseDirection normaliza s y lo valida contra INBOUND/OUTBOUND.
func ParseDirection(s string) (Direction, error) { return parseEnum(s, directions) }

// ParseCommunicationStatus normaliza s y lo valida contra los estados de entrega.
func ParseCommunicationStatus(s string) (CommunicationStatus, error) {
	return parseEnum(s, communicationStatuses)
}

// ParseInvoiceStatus normaliza s y lo valida contra los estados de factura.
func ParseInvoiceStatus(s string) (InvoiceStatus, error) { return parseEnum(s, invoiceStatuses) }

// ParseLeadStatus normaliza s y lo valida contra las etapas del lead.
func ParseLeadStatus(s string) (LeadStatus, error) { return parseEnum(s, leadStatuses) }

// ParseOpportunityStatus normaliza s y lo valida contra las etapas de la oportunidad.
func ParseOpportunityStatus(s string) (OpportunityStatus, error) {
	return parseEnum(s, opportunityStatuses)
}

// ParseNoteType normaliza s y lo valida contra los tipos de nota.
func ParseNoteType(s string) (NoteType, error) { return parseEnum(s, noteTypes) }

// ParseReminderType normaliza s y lo valida contra los tipos de recordatorio.
func ParseReminderType(s string) (ReminderType, error) { return parseEnum(s, reminderTypes) }

// ParseEventType normaliza s y lo valida contra los tipos de evento.
func ParseEventType(s string) (EventType, error) { return parseEnum(s, eventTypes) }

var enumSeparators = strings.NewReplacer("-", "_", " ", "_")

// NormalizeEnum lleva un valor libre a la forma canónica (mayúsculas, "_").
func NormalizeEnum(s string) string {
	return enumSeparators.Replace(strings.ToUpper(strings.TrimSpace(s)))
}

func parseEnum[T ~string](s string, allowed []T) (T, error) {
	v := T(NormalizeEnum(s))
	if !slices.Contains(allowed, v) {
		var zero T
		return zero, fmt.Errorf("%w: %q", domain.ErrInvalidEnum, s)
	}
	return v, nil
}
