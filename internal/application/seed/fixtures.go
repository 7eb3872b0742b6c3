package seed

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/freelancer-crm/internal/domain/entity"
)

// Datos de demostración. Cada función devuelve entidades nuevas con ID ya asignado;
// las referencias a tiers anteriores se resuelven por índice en los slices de IDs.

// demoAccount perfil de la cuenta de demostración (sin contraseña).
func demoAccount(email string) *entity.Account {
	return &entity.Account{
		Email:      email,
		Name:       "John Doe",
		Company:    "Freelance Studio",
		Phone:      "+1 (555) 123-4567",
		Timezone:   "America/New_York",
		Currency:   "USD",
		HourlyRate: decimal.NewFromInt(75),
		Bio:        "Full-stack developer with 5+ years of experience in web and mobile development.",
		Skills:     []string{"React", "Node.js", "TypeScript", "Python", "AWS"},
		Website:    "https://johndoe.dev",
		SocialLinks: map[string]string{
			"linkedin": "https://linkedin.com/in/johndoe",
			"github":   "https://github.com/johndoe",
			"twitter":  "https://twitter.com/johndoe",
		},
		Settings: map[string]any{
			"theme": "light",
			"notifications": map[string]any{
				"email": true,
				"push":  true,
				"sms":   false,
			},
		},
	}
}

func demoClients(accountID string) []*entity.Client {
	return []*entity.Client{
		{
			ID: newID(), AccountID: accountID,
			Name: "Sarah Johnson", Email: "sarah@techcorp.com", Phone: "+1 (555) 123-4567",
			Company: "TechCorp Solutions", Website: "https://techcorp.com",
			Address: "123 Business St", City: "San Francisco", State: "CA", Country: "USA", PostalCode: "94105",
			Industry: "Technology", Source: "Referral",
			Status: entity.ClientActive, Priority: entity.PriorityHigh,
			Notes:        "Great client, always pays on time. Interested in long-term projects.",
			Tags:         []string{"Technology", "Enterprise", "Long-term"},
			SocialLinks:  map[string]string{"linkedin": "https://linkedin.com/in/sarahjohnson"},
			CustomFields: map[string]any{"annualRevenue": 5000000, "employeeCount": 50, "preferredContact": "email"},
		},
		{
			ID: newID(), AccountID: accountID,
			Name: "Mike Chen", Email: "mike@designstudio.com", Phone: "+1 (555) 234-5678",
			Company: "Design Studio Pro", Website: "https://designstudiopro.com",
			Address: "456 Creative Ave", City: "New York", State: "NY", Country: "USA", PostalCode: "10001",
			Industry: "Design", Source: "Website",
			Status: entity.ClientActive, Priority: entity.PriorityMedium,
			Notes:        "Creative agency, needs regular design work. Good communication.",
			Tags:         []string{"Design", "Creative", "Agency"},
			SocialLinks:  map[string]string{"instagram": "https://instagram.com/designstudiopro"},
			CustomFields: map[string]any{"annualRevenue": 2000000, "employeeCount": 15, "preferredContact": "phone"},
		},
		{
			ID: newID(), AccountID: accountID,
			Name: "Emma Rodriguez", Email: "emma@marketingmasters.com", Phone: "+1 (555) 345-6789",
			Company: "Marketing Masters", Website: "https://marketingmasters.com",
			Address: "789 Marketing Blvd", City: "Los Angeles", State: "CA", Country: "USA", PostalCode: "90210",
			Industry: "Marketing", Source: "Cold Outreach",
			Status: entity.ClientProspect, Priority: entity.PriorityHigh,
			Notes:        "Startup company, looking for affordable solutions. High potential.",
			Tags:         []string{"Marketing", "Startup", "High Potential"},
			SocialLinks:  map[string]string{"twitter": "https://twitter.com/marketingmasters"},
			CustomFields: map[string]any{"annualRevenue": 500000, "employeeCount": 8, "preferredContact": "email"},
		},
	}
}

func demoProjects(accountID string, clients []string) []*entity.Project {
	return []*entity.Project{
		{
			ID: newID(), AccountID: accountID, ClientID: clients[0],
			Title:       "Website Redesign",
			Description: "Complete redesign of the company website with modern UI/UX, responsive design, and improved user experience.",
			Status:      entity.ProjectInProgress, Priority: entity.PriorityHigh,
			StartDate: dayPtr(2024, 1, 1), EndDate: dayPtr(2024, 2, 15), Deadline: dayPtr(2024, 2, 15),
			Budget: decimal.NewFromInt(15000), HourlyRate: decimal.NewFromInt(75), TotalHours: decimal.NewFromInt(120),
			Progress: 65,
			Tags:     []string{"Web Design", "UI/UX", "Responsive"},
			CustomFields: map[string]any{
				"technologies": []string{"React", "Next.js", "Tailwind CSS"},
				"deliverables": []string{"Design mockups", "Frontend code", "Documentation"},
			},
		},
		{
			ID: newID(), AccountID: accountID, ClientID: clients[1],
			Title:       "Mobile App Development",
			Description: "iOS and Android app for e-commerce platform with payment integration and user management.",
			Status:      entity.ProjectPlanning, Priority: entity.PriorityUrgent,
			StartDate: dayPtr(2024, 1, 15), EndDate: dayPtr(2024, 4, 30), Deadline: dayPtr(2024, 4, 30),
			Budget: decimal.NewFromInt(25000), HourlyRate: decimal.NewFromInt(85), TotalHours: decimal.NewFromInt(200),
			Progress: 15,
			Tags:     []string{"Mobile", "E-commerce", "React Native"},
			CustomFields: map[string]any{
				"technologies": []string{"React Native", "Node.js", "Stripe"},
				"deliverables": []string{"iOS app", "Android app", "Backend API"},
			},
		},
		{
			ID: newID(), AccountID: accountID, ClientID: clients[2],
			Title:       "Marketing Campaign",
			Description: "Digital marketing campaign for product launch including social media, email marketing, and PPC.",
			Status:      entity.ProjectCompleted, Priority: entity.PriorityMedium,
			StartDate: dayPtr(2023, 12, 1), EndDate: dayPtr(2024, 1, 31), Deadline: dayPtr(2024, 1, 31),
			Budget: decimal.NewFromInt(8000), HourlyRate: decimal.NewFromInt(60), TotalHours: decimal.NewFromInt(80),
			Progress: 100,
			Tags:     []string{"Marketing", "Digital", "Campaign"},
			CustomFields: map[string]any{
				"platforms":    []string{"Facebook", "Instagram", "Google Ads"},
				"deliverables": []string{"Campaign strategy", "Creative assets", "Performance report"},
			},
		},
	}
}

func demoTasks(accountID string, projects []string) []*entity.Task {
	return []*entity.Task{
		{
			ID: newID(), AccountID: accountID, ProjectID: projects[0],
			Title:       "Design Homepage Mockup",
			Description: "Create wireframes and design mockups for the homepage",
			Status:      entity.TaskCompleted, Priority: entity.PriorityHigh,
			DueDate:        dayPtr(2024, 1, 20),
			EstimatedHours: decimal.NewFromInt(8), ActualHours: ptr(decimal.RequireFromString("7.5")),
			Order: 1, Tags: []string{"Design", "UI/UX"},
		},
		{
			ID: newID(), AccountID: accountID, ProjectID: projects[0],
			Title:       "Implement Responsive Navigation",
			Description: "Build responsive navigation component with mobile menu",
			Status:      entity.TaskInProgress, Priority: entity.PriorityHigh,
			DueDate:        dayPtr(2024, 1, 25),
			EstimatedHours: decimal.NewFromInt(6), ActualHours: ptr(decimal.NewFromInt(3)),
			Order: 2, Tags: []string{"Development", "Frontend"},
		},
		{
			ID: newID(), AccountID: accountID, ProjectID: projects[1],
			Title:       "Set up React Native Environment",
			Description: "Configure development environment for React Native app",
			Status:      entity.TaskTodo, Priority: entity.PriorityMedium,
			DueDate:        dayPtr(2024, 1, 30),
			EstimatedHours: decimal.NewFromInt(4),
			Order:          1, Tags: []string{"Setup", "Mobile"},
		},
	}
}

func demoCommunications(accountID string, clients, projects []string) []*entity.Communication {
	return []*entity.Communication{
		{
			ID: newID(), AccountID: accountID, ClientID: clients[0], ProjectID: projects[0],
			Type:    entity.CommEmail,
			Subject: "Project Update - Website Redesign",
			Content: "Hi Sarah, I wanted to update you on the progress of the website redesign project. " +
				"We have completed the homepage mockups and are now working on the responsive navigation. " +
				"Everything is on track for the February 15th deadline.",
			Direction: entity.DirectionOutbound, Status: entity.CommStatusSent,
			SentAt:      ptr(time.Date(2024, 1, 18, 10, 0, 0, 0, time.UTC)),
			Notes:       "Client was happy with the progress update",
			Attachments: []string{"mockup-homepage.pdf"},
		},
		{
			ID: newID(), AccountID: accountID, ClientID: clients[1], ProjectID: projects[1],
			Type:      entity.CommCall,
			Subject:   "Project Kickoff Call",
			Content:   "Discussed project requirements, timeline, and deliverables for the mobile app development project.",
			Direction: entity.DirectionInbound, Status: entity.CommStatusSent,
			SentAt:   ptr(time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)),
			Duration: ptr(45),
			Notes:    "Client is excited about the project. Need to send proposal by end of week.",
		},
	}
}

func demoInvoices(accountID string, clients, projects []string) []*entity.Invoice {
	return []*entity.Invoice{
		{
			ID: newID(), AccountID: accountID, ClientID: clients[0], ProjectID: projects[0],
			InvoiceNumber: "INV-2024-001",
			Title:         "Website Redesign - Phase 1",
			Description:   "Payment for homepage design and initial development work",
			Amount:        decimal.NewFromInt(7500), Tax: decimal.NewFromInt(600), Total: decimal.NewFromInt(8100),
			Currency: "USD", Status: entity.InvoicePaid,
			DueDate:       day(2024, 1, 31),
			SentAt:        ptr(time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)),
			PaidAt:        ptr(time.Date(2024, 1, 20, 15, 30, 0, 0, time.UTC)),
			PaymentMethod: "Bank Transfer",
			Notes:         "Payment received on time. Client was satisfied with the work.",
			Items: []entity.InvoiceItem{
				item("Homepage Design", 1, 5000),
				item("Responsive Navigation", 1, 2500),
			},
			CustomFields: map[string]any{"paymentTerms": "Net 15", "lateFees": "2% per month"},
		},
		{
			ID: newID(), AccountID: accountID, ClientID: clients[2], ProjectID: projects[2],
			InvoiceNumber: "INV-2024-002",
			Title:         "Marketing Campaign - Final Payment",
			Description:   "Final payment for completed marketing campaign",
			Amount:        decimal.NewFromInt(4000), Tax: decimal.NewFromInt(320), Total: decimal.NewFromInt(4320),
			Currency: "USD", Status: entity.InvoiceSent,
			DueDate: day(2024, 2, 15),
			SentAt:  ptr(time.Date(2024, 2, 1, 11, 0, 0, 0, time.UTC)),
			Notes:   "Campaign completed successfully. Awaiting payment.",
			Items: []entity.InvoiceItem{
				item("Campaign Management", 1, 3000),
				item("Performance Report", 1, 1000),
			},
			CustomFields: map[string]any{"paymentTerms": "Net 30", "lateFees": "1.5% per month"},
		},
	}
}

func demoLeads(accountID string) []*entity.Lead {
	return []*entity.Lead{
		{
			ID: newID(), AccountID: accountID,
			Name: "David Wilson", Email: "david@consultinggroup.com", Phone: "+1 (555) 456-7890",
			Company: "Consulting Group", Source: "Website Contact Form",
			Status: entity.LeadContacted, Priority: entity.PriorityMedium,
			Value: decimal.NewFromInt(15000),
			Notes: "Interested in database migration project. Has legacy system that needs modernization.",
			Tags:  []string{"Consulting", "Database", "Legacy"},
			CustomFields: map[string]any{
				"companySize": "25 employees", "industry": "Consulting", "timeline": "3-6 months",
			},
		},
		{
			ID: newID(), AccountID: accountID,
			Name: "Lisa Thompson", Email: "lisa@ecommerceplus.com", Phone: "+1 (555) 567-8901",
			Company: "E-commerce Plus", Source: "Referral",
			Status: entity.LeadQualified, Priority: entity.PriorityHigh,
			Value: decimal.NewFromInt(30000),
			Notes: "Referred by Sarah Johnson. Looking for e-commerce platform development.",
			Tags:  []string{"E-commerce", "Referral", "High Value"},
			CustomFields: map[string]any{
				"companySize": "50 employees", "industry": "E-commerce", "timeline": "6-12 months",
			},
		},
	}
}

func demoOpportunities(accountID string, leads []string) []*entity.Opportunity {
	return []*entity.Opportunity{
		{
			ID: newID(), AccountID: accountID, LeadID: leads[0],
			Title:             "Database Migration Project",
			Description:       "Migrate legacy database system to modern cloud infrastructure",
			Value:             decimal.NewFromInt(15000),
			Probability:       75,
			Status:            entity.OpportunityProposal,
			ExpectedCloseDate: dayPtr(2024, 3, 15),
			Notes:             "Client is evaluating proposals. Decision expected in 2 weeks.",
			Tags:              []string{"Database", "Migration", "Cloud"},
			CustomFields: map[string]any{
				"competitors":   []string{"TechCorp", "DataFlow"},
				"decisionMaker": "David Wilson",
				"budget":        "15000-20000",
			},
		},
	}
}

func demoNotes(accountID string, clients, projects []string) []*entity.Note {
	return []*entity.Note{
		{
			ID: newID(), AccountID: accountID, ClientID: clients[0], ProjectID: projects[0],
			Title: "Client Meeting Notes",
			Content: "Met with Sarah to discuss the website redesign project. She was very happy with the initial " +
				"mockups and provided good feedback. Need to incorporate the new branding guidelines she shared.",
			Type: entity.NoteClient,
			Tags: []string{"Meeting", "Feedback", "Branding"},
		},
		{
			ID: newID(), AccountID: accountID,
			Title: "Project Ideas",
			Content: "Potential project ideas for future development: 1) Mobile app for inventory management, " +
				"2) Customer portal with analytics, 3) Integration with third-party services",
			Type:      entity.NoteGeneral,
			IsPrivate: true,
			Tags:      []string{"Ideas", "Planning", "Future"},
		},
	}
}

func demoTags(accountID string) []*entity.Tag {
	return []*entity.Tag{
		{ID: newID(), AccountID: accountID, Name: "High Priority", Color: "#EF4444"},
		{ID: newID(), AccountID: accountID, Name: "Web Development", Color: "#3B82F6"},
		{ID: newID(), AccountID: accountID, Name: "Design", Color: "#10B981"},
		{ID: newID(), AccountID: accountID, Name: "Marketing", Color: "#F59E0B"},
	}
}

func demoReminders(accountID string, clients []string) []*entity.Reminder {
	return []*entity.Reminder{
		{
			ID: newID(), AccountID: accountID, ClientID: clients[1],
			Title:       "Follow up with Mike Chen",
			Description: "Check on the mobile app project proposal status",
			DueDate:     time.Date(2024, 1, 25, 10, 0, 0, 0, time.UTC),
			Type:        entity.ReminderFollowUp, Priority: entity.PriorityHigh,
		},
		{
			ID: newID(), AccountID: accountID, ClientID: clients[2],
			Title:       "Send invoice reminder",
			Description: "Send payment reminder for Marketing Campaign invoice",
			DueDate:     time.Date(2024, 2, 20, 9, 0, 0, 0, time.UTC),
			Type:        entity.ReminderInvoice, Priority: entity.PriorityMedium,
		},
	}
}

func newID() string { return uuid.NewString() }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(y int, m time.Month, d int) *time.Time { return ptr(day(y, m, d)) }

func ptr[T any](v T) *T { return &v }

func item(desc string, qty, rate int64) entity.InvoiceItem {
	q, r := decimal.NewFromInt(qty), decimal.NewFromInt(rate)
	return entity.InvoiceItem{Description: desc, Quantity: q, Rate: r, Amount: q.Mul(r)}
}
