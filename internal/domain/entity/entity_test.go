package entity_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/freelancer-crm/internal/domain"
	"github.com/jhoicas/freelancer-crm/internal/domain/entity"
)

func TestParseProjectStatus_AceptaFormasDelTablero(t *testing.T) {
	cases := map[string]entity.ProjectStatus{
		"planning":    entity.ProjectPlanning,
		"in-progress": entity.ProjectInProgress,
		"On Hold":     entity.ProjectOnHold,
		"COMPLETED":   entity.ProjectCompleted,
		" cancelled ": entity.ProjectCancelled,
	}
	for in, want := range cases {
		got, err := entity.ParseProjectStatus(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseEnum_ValorDesconocido(t *testing.T) {
	_, err := entity.ParseClientStatus("archived")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidEnum))

	_, err = entity.ParseLeadStatus("")
	assert.True(t, errors.Is(err, domain.ErrInvalidEnum), "vacío no es un valor válido")
}

func TestPriority_ValidForContact(t *testing.T) {
	assert.True(t, entity.PriorityHigh.ValidForContact())
	assert.False(t, entity.PriorityUrgent.ValidForContact(), "URGENT solo aplica a proyectos y tareas")
	assert.True(t, entity.PriorityUrgent.Valid())
}

func TestProjectStatuses_OrdenDeColumnas(t *testing.T) {
	cols := entity.ProjectStatuses()
	require.Len(t, cols, 5)
	assert.Equal(t, entity.ProjectPlanning, cols[0])
	assert.Equal(t, entity.ProjectCancelled, cols[4])

	cols[0] = "X"
	assert.Equal(t, entity.ProjectPlanning, entity.ProjectStatuses()[0], "devuelve una copia")
}

func TestInvoice_TotalNoSeImpone(t *testing.T) {
	inv := &entity.Invoice{
		AccountID: "a", ClientID: "c", InvoiceNumber: "INV-1", Status: entity.InvoiceDraft,
		Amount: decimal.NewFromInt(7500), Tax: decimal.NewFromInt(600), Total: decimal.NewFromInt(9000),
	}
	assert.NoError(t, inv.Validate(), "un total inconsistente no invalida la factura")
	assert.False(t, inv.TotalMatches())
	assert.True(t, inv.ExpectedTotal().Equal(decimal.NewFromInt(8100)))
}

func TestProject_ProgressFueraDeRango(t *testing.T) {
	p := &entity.Project{
		AccountID: "a", ClientID: "c", Title: "Web",
		Status: entity.ProjectCompleted, Priority: entity.PriorityHigh, Progress: 0,
	}
	assert.NoError(t, p.Validate(), "COMPLETED con progreso 0 es admisible")

	p.Progress = 101
	assert.True(t, errors.Is(p.Validate(), domain.ErrOutOfRange))
}

func TestTag_ColorHexadecimal(t *testing.T) {
	tag := &entity.Tag{AccountID: "a", Name: "Design", Color: "#10B981"}
	assert.NoError(t, tag.Validate())

	tag.Color = "green"
	assert.True(t, errors.Is(tag.Validate(), domain.ErrInvalidInput))
}

func TestOpportunity_ProbabilidadFueraDeRango(t *testing.T) {
	o := &entity.Opportunity{
		AccountID: "a", LeadID: "l", Title: "Migración",
		Status: entity.OpportunityProposal, Probability: 150,
	}
	assert.True(t, errors.Is(o.Validate(), domain.ErrOutOfRange))
}

func TestParseFunciones_AceptanCanonicoYRechazanDesconocido(t *testing.T) {
	parsers := map[string]func(string) error{
		"ACTIVE":        func(s string) error { _, err := entity.ParseClientStatus(s); return err },
		"URGENT":        func(s string) error { _, err := entity.ParsePriority(s); return err },
		"ON_HOLD":       func(s string) error { _, err := entity.ParseProjectStatus(s); return err },
		"TODO":          func(s string) error { _, err := entity.ParseTaskStatus(s); return err },
		"MEETING":       func(s string) error { _, err := entity.ParseCommunicationType(s); return err },
		"INBOUND":       func(s string) error { _, err := entity.ParseDirection(s); return err },
		"DELIVERED":     func(s string) error { _, err := entity.ParseCommunicationStatus(s); return err },
		"OVERDUE":       func(s string) error { _, err := entity.ParseInvoiceStatus(s); return err },
		"PROPOSAL_SENT": func(s string) error { _, err := entity.ParseLeadStatus(s); return err },
		"CLOSED_WON":    func(s string) error { _, err := entity.ParseOpportunityStatus(s); return err },
		"GENERAL":       func(s string) error { _, err := entity.ParseNoteType(s); return err },
		"FOLLOW_UP":     func(s string) error { _, err := entity.ParseReminderType(s); return err },
		"DEADLINE":      func(s string) error { _, err := entity.ParseEventType(s); return err },
	}
	for valid, parse := range parsers {
		assert.NoError(t, parse(valid), valid)
		assert.True(t, errors.Is(parse("desconocido"), domain.ErrInvalidEnum), valid)
	}
}
