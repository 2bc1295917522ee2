package services

import (
	"context"
	"fmt"

	"backend/apperrors"
	"backend/models"
)

type QuoteSendStore interface {
	GetQuote(ctx context.Context, orgID, quoteID string) (*models.Quote, error)
	GetProject(ctx context.Context, orgID, projectID string) (*models.Project, error)
	GetSettings(ctx context.Context, orgID string) (models.OrganizationSettings, error)
	UpdateQuoteStatus(ctx context.Context, orgID, quoteID, status string) error
}

type QuoteMailer interface {
	SendTemplatedEmail(templateType string, data EmailData) error
}

type QuoteService struct {
	Store  QuoteSendStore
	Mailer QuoteMailer
}

// QuoteSendResult reports a delivered quote: the persisted row (now ENVOYE)
// and the address it went to.
type QuoteSendResult struct {
	Quote  models.Quote `json:"quote"`
	SentTo string       `json:"sent_to"`
}

// SendQuoteToClient emails the quote notification to the project's client
// and marks the quote ENVOYE. The status write happens only after the mail
// went out; a mail failure leaves the quote in its previous status.
func (s *QuoteService) SendQuoteToClient(ctx context.Context, orgID, quoteID string) (*QuoteSendResult, error) {
	quote, err := s.Store.GetQuote(ctx, orgID, quoteID)
	if err != nil {
		return nil, err
	}
	project, err := s.Store.GetProject(ctx, orgID, quote.ProjectID)
	if err != nil {
		return nil, err
	}
	if project.ClientEmail == "" {
		return nil, apperrors.Validation("le projet n'a pas d'adresse email client")
	}
	settings, err := s.Store.GetSettings(ctx, orgID)
	if err != nil {
		return nil, err
	}

	if err := s.Mailer.SendTemplatedEmail("quote_sent", EmailData{
		Email:       project.ClientEmail,
		ClientName:  project.ClientName,
		ProjectRef:  project.Reference,
		QuoteRef:    quote.Reference,
		Amount:      fmt.Sprintf("%.2f", quote.Amount),
		CompanyName: settings.CompanyName,
	}); err != nil {
		return nil, err
	}

	if err := s.Store.UpdateQuoteStatus(ctx, orgID, quote.ID, models.QuoteStatusEnvoye); err != nil {
		return nil, err
	}
	quote.Status = models.QuoteStatusEnvoye
	return &QuoteSendResult{Quote: *quote, SentTo: project.ClientEmail}, nil
}
