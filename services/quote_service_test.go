package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend/apperrors"
	"backend/models"
)

type fakeQuoteStore struct {
	quote        *models.Quote
	project      *models.Project
	statusWrites []string
	failUpdate   bool
}

func (f *fakeQuoteStore) GetQuote(_ context.Context, _, quoteID string) (*models.Quote, error) {
	if f.quote == nil || f.quote.ID != quoteID {
		return nil, apperrors.NotFound("devis %s introuvable", quoteID)
	}
	copied := *f.quote
	return &copied, nil
}

func (f *fakeQuoteStore) GetProject(_ context.Context, _, projectID string) (*models.Project, error) {
	if f.project == nil || f.project.ID != projectID {
		return nil, apperrors.NotFound("projet %s introuvable", projectID)
	}
	copied := *f.project
	return &copied, nil
}

func (f *fakeQuoteStore) GetSettings(_ context.Context, orgID string) (models.OrganizationSettings, error) {
	return models.DefaultOrganizationSettings(orgID), nil
}

func (f *fakeQuoteStore) UpdateQuoteStatus(_ context.Context, _, _, status string) error {
	if f.failUpdate {
		return assert.AnError
	}
	f.statusWrites = append(f.statusWrites, status)
	return nil
}

type fakeQuoteMailer struct {
	sent []EmailData
	fail bool
}

func (f *fakeQuoteMailer) SendTemplatedEmail(_ string, data EmailData) error {
	if f.fail {
		return assert.AnError
	}
	f.sent = append(f.sent, data)
	return nil
}

func quoteSendFixture() (*fakeQuoteStore, *fakeQuoteMailer, *QuoteService) {
	store := &fakeQuoteStore{
		quote: &models.Quote{ID: "q1", OrgID: "org", ProjectID: "p1", Reference: "DEV-CD54321",
			Amount: 9500, Status: models.QuoteStatusBrouillon},
		project: &models.Project{ID: "p1", OrgID: "org", Reference: "PRJ-AB12345",
			ClientName: "SCI Les Tilleuls", ClientEmail: "contact@tilleuls.fr"},
	}
	mailer := &fakeQuoteMailer{}
	return store, mailer, &QuoteService{Store: store, Mailer: mailer}
}

func TestSendQuoteMarksQuoteSent(t *testing.T) {
	store, mailer, svc := quoteSendFixture()

	result, err := svc.SendQuoteToClient(context.Background(), "org", "q1")
	require.NoError(t, err)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "contact@tilleuls.fr", mailer.sent[0].Email)
	assert.Equal(t, "9500.00", mailer.sent[0].Amount)

	require.Equal(t, []string{models.QuoteStatusEnvoye}, store.statusWrites, "quote must be persisted as ENVOYE after the mail went out")
	assert.Equal(t, models.QuoteStatusEnvoye, result.Quote.Status)
	assert.Equal(t, "contact@tilleuls.fr", result.SentTo)
}

func TestSendQuoteMailFailureKeepsStatus(t *testing.T) {
	store, mailer, svc := quoteSendFixture()
	mailer.fail = true

	_, err := svc.SendQuoteToClient(context.Background(), "org", "q1")
	require.Error(t, err)
	assert.Empty(t, store.statusWrites, "a failed mail must not touch the quote status")
}

func TestSendQuoteRequiresClientEmail(t *testing.T) {
	store, mailer, svc := quoteSendFixture()
	store.project.ClientEmail = ""

	_, err := svc.SendQuoteToClient(context.Background(), "org", "q1")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Empty(t, mailer.sent)
	assert.Empty(t, store.statusWrites)
}

func TestSendQuoteUnknownQuote(t *testing.T) {
	_, _, svc := quoteSendFixture()

	_, err := svc.SendQuoteToClient(context.Background(), "org", "nope")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
