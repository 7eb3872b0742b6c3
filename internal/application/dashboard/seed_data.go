package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/freelancer-crm/internal/application/dto"
	"github.com/jhoicas/freelancer-crm/internal/domain/entity"
)

// Datos iniciales de cada vista. Cada llamada devuelve slices nuevos.

func seedClients() []dto.ClientRow {
	return []dto.ClientRow{
		{
			ID: "1", Name: "Sarah Johnson", Company: "TechCorp Solutions", Email: "sarah@techcorp.com",
			Phone: "+1 (555) 123-4567", Status: entity.ClientActive, Priority: entity.PriorityHigh,
			LastContact: date(2024, 1, 15), TotalProjects: 3, TotalRevenue: decimal.NewFromInt(15000),
			Tags: []string{"Technology", "Enterprise"},
		},
		{
			ID: "2", Name: "Mike Chen", Company: "Design Studio Pro", Email: "mike@designstudio.com",
			Phone: "+1 (555) 234-5678", Status: entity.ClientActive, Priority: entity.PriorityMedium,
			LastContact: date(2024, 1, 10), TotalProjects: 2, TotalRevenue: decimal.NewFromInt(8500),
			Tags: []string{"Design", "Creative"},
		},
		{
			ID: "3", Name: "Emma Rodriguez", Company: "Marketing Masters", Email: "emma@marketingmasters.com",
			Phone: "+1 (555) 345-6789", Status: entity.ClientProspect, Priority: entity.PriorityHigh,
			LastContact: date(2024, 1, 12), TotalProjects: 0, TotalRevenue: decimal.Zero,
			Tags: []string{"Marketing", "Startup"},
		},
		{
			ID: "4", Name: "David Wilson", Company: "Consulting Group", Email: "david@consultinggroup.com",
			Phone: "+1 (555) 456-7890", Status: entity.ClientInactive, Priority: entity.PriorityLow,
			LastContact: date(2023, 12, 20), TotalProjects: 1, TotalRevenue: decimal.NewFromInt(5000),
			Tags: []string{"Consulting", "B2B"},
		},
		{
			ID: "5", Name: "Lisa Thompson", Company: "E-commerce Plus", Email: "lisa@ecommerceplus.com",
			Phone: "+1 (555) 567-8901", Status: entity.ClientActive, Priority: entity.PriorityMedium,
			LastContact: date(2024, 1, 8), TotalProjects: 4, TotalRevenue: decimal.NewFromInt(22000),
			Tags: []string{"E-commerce", "Retail"},
		},
	}
}

func seedLeads() []dto.LeadRow {
	return []dto.LeadRow{
		{
			ID: "1", Name: "David Wilson", Company: "Consulting Group", Email: "david@consultinggroup.com",
			Status: entity.LeadContacted, Priority: entity.PriorityMedium, Value: decimal.NewFromInt(15000),
			Source: "Website", CreatedAt: date(2024, 1, 12), NextStep: "Schedule demo",
		},
		{
			ID: "2", Name: "Lisa Thompson", Company: "E-commerce Plus", Email: "lisa@ecommerceplus.com",
			Status: entity.LeadQualified, Priority: entity.PriorityHigh, Value: decimal.NewFromInt(30000),
			Source: "Referral", CreatedAt: date(2024, 1, 18), NextStep: "Send proposal",
		},
		{
			ID: "3", Name: "Emma Rodriguez", Company: "Marketing Masters", Email: "emma@marketingmasters.com",
			Status: entity.LeadNew, Priority: entity.PriorityHigh, Value: decimal.NewFromInt(8000),
			Source: "Cold Outreach", CreatedAt: date(2024, 1, 22), NextStep: "Discovery call",
		},
		{
			ID: "4", Name: "Mike Chen", Company: "Design Studio Pro", Email: "mike@designstudio.com",
			Status: entity.LeadProposalSent, Priority: entity.PriorityMedium, Value: decimal.NewFromInt(12000),
			Source: "Website", CreatedAt: date(2024, 1, 25), NextStep: "Follow up",
		},
	}
}

func seedInvoices() []dto.InvoiceRow {
	return []dto.InvoiceRow{
		{
			ID: "1", InvoiceNumber: "INV-2024-001", Title: "Website Redesign - Phase 1", Client: "TechCorp Solutions",
			Amount: decimal.NewFromInt(7500), Tax: decimal.NewFromInt(600), Total: decimal.NewFromInt(8100),
			Status: entity.InvoicePaid, DueDate: date(2024, 1, 31), SentAt: datePtr(2024, 1, 15),
		},
		{
			ID: "2", InvoiceNumber: "INV-2024-002", Title: "Marketing Campaign - Final Payment", Client: "Marketing Masters",
			Amount: decimal.NewFromInt(4000), Tax: decimal.NewFromInt(320), Total: decimal.NewFromInt(4320),
			Status: entity.InvoiceSent, DueDate: date(2024, 2, 15), SentAt: datePtr(2024, 2, 1),
		},
		{
			ID: "3", InvoiceNumber: "INV-2024-003", Title: "Mobile App - Milestone 1", Client: "E-commerce Plus",
			Amount: decimal.NewFromInt(9000), Tax: decimal.NewFromInt(720), Total: decimal.NewFromInt(9720),
			Status: entity.InvoiceViewed, DueDate: date(2024, 3, 5), SentAt: datePtr(2024, 2, 27),
		},
		{
			ID: "4", InvoiceNumber: "INV-2024-004", Title: "Consulting - January", Client: "Consulting Group",
			Amount: decimal.NewFromInt(2000), Tax: decimal.Zero, Total: decimal.NewFromInt(2000),
			Status: entity.InvoiceOverdue, DueDate: date(2024, 1, 20), SentAt: datePtr(2024, 1, 10),
		},
		{
			ID: "5", InvoiceNumber: "INV-2024-005", Title: "Design Sprint", Client: "Design Studio Pro",
			Amount: decimal.NewFromInt(3200), Tax: decimal.NewFromInt(256), Total: decimal.NewFromInt(3456),
			Status: entity.InvoiceDraft, DueDate: date(2024, 3, 20),
		},
	}
}

func seedCommunications() []dto.CommunicationRow {
	return []dto.CommunicationRow{
		{
			ID: "1", Type: entity.CommEmail, Subject: "Project Update - Website Redesign", Client: "TechCorp Solutions",
			Direction: entity.DirectionOutbound, Status: entity.CommStatusSent,
			Time: time.Date(2024, 1, 18, 10, 0, 0, 0, time.UTC), Notes: "Client happy with progress",
		},
		{
			ID: "2", Type: entity.CommCall, Subject: "Kickoff Call - Mobile App", Client: "E-commerce Plus",
			Direction: entity.DirectionInbound, Status: entity.CommStatusSent,
			Time: time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC), Notes: "Need proposal by end of week",
		},
		{
			ID: "3", Type: entity.CommMeeting, Subject: "Roadmap Planning", Client: "Marketing Masters",
			Direction: entity.DirectionOutbound, Status: entity.CommStatusScheduled,
			Time: time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC),
		},
		{
			ID: "4", Type: entity.CommMessage, Subject: "Design Feedback", Client: "Design Studio Pro",
			Direction: entity.DirectionInbound, Status: entity.CommStatusRead,
			Time: time.Date(2024, 2, 5, 12, 15, 0, 0, time.UTC),
		},
	}
}

func seedProjects() []dto.ProjectRow {
	return []dto.ProjectRow{
		{
			ID: "1", Title: "Website Redesign", Description: "Complete redesign of the company website with modern UI/UX",
			Status: entity.ProjectInProgress, Priority: entity.PriorityHigh, Client: "TechCorp Solutions",
			StartDate: date(2024, 1, 1), Deadline: date(2024, 2, 15), Progress: 65, Budget: decimal.NewFromInt(15000),
			Team: []string{"John Doe", "Jane Smith"}, Tags: []string{"Web Design", "UI/UX"},
		},
		{
			ID: "2", Title: "Mobile App Development", Description: "iOS and Android app for e-commerce platform",
			Status: entity.ProjectPlanning, Priority: entity.PriorityUrgent, Client: "E-commerce Plus",
			StartDate: date(2024, 1, 15), Deadline: date(2024, 4, 30), Progress: 15, Budget: decimal.NewFromInt(25000),
			Team: []string{"Mike Chen", "Sarah Johnson"}, Tags: []string{"Mobile", "E-commerce"},
		},
		{
			ID: "3", Title: "Marketing Campaign", Description: "Digital marketing campaign for product launch",
			Status: entity.ProjectCompleted, Priority: entity.PriorityMedium, Client: "Marketing Masters",
			StartDate: date(2023, 12, 1), Deadline: date(2024, 1, 31), Progress: 100, Budget: decimal.NewFromInt(8000),
			Team: []string{"Emma Rodriguez"}, Tags: []string{"Marketing", "Digital"},
		},
		{
			ID: "4", Title: "Database Migration", Description: "Migrate legacy database to cloud infrastructure",
			Status: entity.ProjectOnHold, Priority: entity.PriorityLow, Client: "Consulting Group",
			StartDate: date(2024, 1, 10), Deadline: date(2024, 3, 15), Progress: 30, Budget: decimal.NewFromInt(12000),
			Team: []string{"David Wilson"}, Tags: []string{"Database", "Cloud"},
		},
		{
			ID: "5", Title: "Brand Identity Design", Description: "Create new brand identity and guidelines",
			Status: entity.ProjectInProgress, Priority: entity.PriorityMedium, Client: "Design Studio Pro",
			StartDate: date(2024, 1, 5), Deadline: date(2024, 2, 28), Progress: 45, Budget: decimal.NewFromInt(6000),
			Team: []string{"Lisa Thompson"}, Tags: []string{"Branding", "Design"},
		},
	}
}

func seedEvents() []dto.EventRow {
	return []dto.EventRow{
		{ID: "1", Title: "Kickoff Meeting - Mobile App", Date: date(2024, 2, 10), Time: "09:00", Type: entity.EventMeeting, Client: "E-commerce Plus"},
		{ID: "2", Title: "Invoice Due - Marketing Campaign", Date: date(2024, 2, 15), Time: "17:00", Type: entity.EventDeadline, Client: "Marketing Masters"},
		{ID: "3", Title: "Follow up with Mike", Date: date(2024, 2, 20), Time: "10:00", Type: entity.EventFollowUp, Client: "Design Studio Pro"},
		{ID: "4", Title: "Client Call - Progress Review", Date: date(2024, 2, 22), Time: "14:00", Type: entity.EventCall, Client: "TechCorp Solutions"},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}
