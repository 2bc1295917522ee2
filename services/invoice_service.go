package services

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"backend/apperrors"
	"backend/models"
)

// Project statuses from which an invoice may be generated.
var invoicingAllowedStatuses = map[string]bool{
	models.StatusVisiteTechnique: true,
	models.StatusChantierTermine: true,
	models.StatusLivre:           true,
}

type InvoiceStore interface {
	GetProject(ctx context.Context, orgID, projectID string) (*models.Project, error)
	ListChantiersByProject(ctx context.Context, orgID, projectID string) ([]models.Chantier, error)
	ListQuotesByProject(ctx context.Context, orgID, projectID string) ([]models.Quote, error)
	CreateInvoice(ctx context.Context, invoice *models.Invoice) error
}

type InvoiceService struct {
	Store InvoiceStore
}

// GenerateInvoiceForProject creates one draft invoice for a project.
// Preconditions: the project exists for the org (NotFound), its status is in
// the invoicing set (Forbidden), at least one quote exists and the resolved
// amount is a positive finite number (Validation). Nothing is written when
// any precondition fails. The amount prefers the latest chantier's recorded
// revenue and falls back to the latest quote's amount.
func (s *InvoiceService) GenerateInvoiceForProject(ctx context.Context, orgID, projectID string) (*models.Invoice, error) {
	project, err := s.Store.GetProject(ctx, orgID, projectID)
	if err != nil {
		return nil, err
	}
	if !invoicingAllowedStatuses[project.Status] {
		return nil, apperrors.Forbidden("facturation impossible au statut %s", project.Status)
	}

	quotes, err := s.Store.ListQuotesByProject(ctx, orgID, projectID)
	if err != nil {
		return nil, err
	}
	if len(quotes) == 0 {
		return nil, apperrors.Validation("aucun devis pour le projet %s", project.Reference)
	}

	chantiers, err := s.Store.ListChantiersByProject(ctx, orgID, projectID)
	if err != nil {
		return nil, err
	}

	amount := latestChantierRevenue(chantiers)
	if amount <= 0 {
		amount = latestQuote(quotes).Amount
	}
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, apperrors.Validation("montant de facture invalide: %v", amount)
	}

	now := time.Now()
	invoice := &models.Invoice{
		ID:        uuid.NewString(),
		OrgID:     orgID,
		ProjectID: projectID,
		Reference: project.Reference + "-FACT-" + now.Format("20060102150405"),
		Amount:    amount,
		Status:    models.InvoiceStatusBrouillon,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.CreateInvoice(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// Latest means created_at then id, so rows sharing a timestamp still resolve
// deterministically.
func latestChantierRevenue(chantiers []models.Chantier) float64 {
	var latest *models.Chantier
	for i := range chantiers {
		c := &chantiers[i]
		if latest == nil || c.CreatedAt.After(latest.CreatedAt) ||
			(c.CreatedAt.Equal(latest.CreatedAt) && c.ID > latest.ID) {
			latest = c
		}
	}
	if latest == nil {
		return 0
	}
	return latest.Revenue
}

func latestQuote(quotes []models.Quote) models.Quote {
	latest := quotes[0]
	for _, q := range quotes[1:] {
		if q.CreatedAt.After(latest.CreatedAt) ||
			(q.CreatedAt.Equal(latest.CreatedAt) && q.ID > latest.ID) {
			latest = q
		}
	}
	return latest
}
