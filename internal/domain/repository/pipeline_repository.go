package repository

import (
	"context"

	"github.com/jhoicas/freelancer-crm/internal/domain/entity"
)

// LeadRepository define el puerto de persistencia para Lead.
type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
}

// OpportunityRepository define el puerto de persistencia para Opportunity.
type OpportunityRepository interface {
	Create(ctx context.Context, opportunity *entity.Opportunity) error
}
