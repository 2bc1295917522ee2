package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend/apperrors"
	"backend/models"
)

type fakeInvoiceStore struct {
	project   *models.Project
	chantiers []models.Chantier
	quotes    []models.Quote
	created   []*models.Invoice
}

func (f *fakeInvoiceStore) GetProject(_ context.Context, _, projectID string) (*models.Project, error) {
	if f.project == nil || f.project.ID != projectID {
		return nil, apperrors.NotFound("projet %s introuvable", projectID)
	}
	copied := *f.project
	return &copied, nil
}

func (f *fakeInvoiceStore) ListChantiersByProject(_ context.Context, _, _ string) ([]models.Chantier, error) {
	return f.chantiers, nil
}

func (f *fakeInvoiceStore) ListQuotesByProject(_ context.Context, _, _ string) ([]models.Quote, error) {
	return f.quotes, nil
}

func (f *fakeInvoiceStore) CreateInvoice(_ context.Context, invoice *models.Invoice) error {
	f.created = append(f.created, invoice)
	return nil
}

func invoiceFixture(status string) *fakeInvoiceStore {
	return &fakeInvoiceStore{
		project: &models.Project{ID: "p1", OrgID: "org", Reference: "PRJ-AB12345", Status: status},
		quotes: []models.Quote{
			{ID: "q1", ProjectID: "p1", Amount: 8000, CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "q2", ProjectID: "p1", Amount: 9500, CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		},
	}
}

func TestGenerateInvoiceHappyPath(t *testing.T) {
	store := invoiceFixture(models.StatusChantierTermine)
	svc := &InvoiceService{Store: store}

	invoice, err := svc.GenerateInvoiceForProject(context.Background(), "org", "p1")
	require.NoError(t, err)
	require.Len(t, store.created, 1)

	assert.Equal(t, models.InvoiceStatusBrouillon, invoice.Status)
	assert.Equal(t, 9500.0, invoice.Amount, "latest quote amount when no chantier revenue")
	assert.True(t, strings.HasPrefix(invoice.Reference, "PRJ-AB12345-FACT-"), "reference = %s", invoice.Reference)
	assert.NotEmpty(t, invoice.ID)
}

func TestGenerateInvoicePrefersLatestChantierRevenue(t *testing.T) {
	store := invoiceFixture(models.StatusLivre)
	store.chantiers = []models.Chantier{
		{ID: "c1", Revenue: 7000, CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "c2", Revenue: 12000, CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}
	svc := &InvoiceService{Store: store}

	invoice, err := svc.GenerateInvoiceForProject(context.Background(), "org", "p1")
	require.NoError(t, err)
	assert.Equal(t, 12000.0, invoice.Amount)
}

func TestGenerateInvoiceFallsBackWhenChantierRevenueZero(t *testing.T) {
	store := invoiceFixture(models.StatusVisiteTechnique)
	store.chantiers = []models.Chantier{{ID: "c1", Revenue: 0}}
	svc := &InvoiceService{Store: store}

	invoice, err := svc.GenerateInvoiceForProject(context.Background(), "org", "p1")
	require.NoError(t, err)
	assert.Equal(t, 9500.0, invoice.Amount)
}

func TestGenerateInvoiceTieBreaksOnID(t *testing.T) {
	sameInstant := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("quotes sharing a timestamp", func(t *testing.T) {
		for _, quotes := range [][]models.Quote{
			{{ID: "q1", Amount: 8000, CreatedAt: sameInstant}, {ID: "q2", Amount: 9500, CreatedAt: sameInstant}},
			{{ID: "q2", Amount: 9500, CreatedAt: sameInstant}, {ID: "q1", Amount: 8000, CreatedAt: sameInstant}},
		} {
			store := invoiceFixture(models.StatusChantierTermine)
			store.quotes = quotes
			svc := &InvoiceService{Store: store}

			invoice, err := svc.GenerateInvoiceForProject(context.Background(), "org", "p1")
			require.NoError(t, err)
			assert.Equal(t, 9500.0, invoice.Amount, "the greater id wins regardless of slice order")
		}
	})

	t.Run("chantiers sharing a timestamp", func(t *testing.T) {
		for _, chantiers := range [][]models.Chantier{
			{{ID: "c1", Revenue: 7000, CreatedAt: sameInstant}, {ID: "c2", Revenue: 12000, CreatedAt: sameInstant}},
			{{ID: "c2", Revenue: 12000, CreatedAt: sameInstant}, {ID: "c1", Revenue: 7000, CreatedAt: sameInstant}},
		} {
			store := invoiceFixture(models.StatusLivre)
			store.chantiers = chantiers
			svc := &InvoiceService{Store: store}

			invoice, err := svc.GenerateInvoiceForProject(context.Background(), "org", "p1")
			require.NoError(t, err)
			assert.Equal(t, 12000.0, invoice.Amount)
		}
	})
}

func TestGenerateInvoiceStatusPrecondition(t *testing.T) {
	for _, status := range []string{models.StatusNouveau, models.StatusEnCours, models.StatusDevisSigne, models.StatusCloture} {
		store := invoiceFixture(status)
		svc := &InvoiceService{Store: store}

		_, err := svc.GenerateInvoiceForProject(context.Background(), "org", "p1")
		require.Error(t, err, "status %s", status)
		assert.True(t, apperrors.IsForbidden(err), "status %s should be forbidden, got %v", status, err)
		assert.Empty(t, store.created, "nothing may be written on a failed precondition")
	}
}

func TestGenerateInvoiceRequiresQuote(t *testing.T) {
	store := invoiceFixture(models.StatusChantierTermine)
	store.quotes = nil
	svc := &InvoiceService{Store: store}

	_, err := svc.GenerateInvoiceForProject(context.Background(), "org", "p1")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Empty(t, store.created)
}

func TestGenerateInvoiceRejectsNonPositiveAmount(t *testing.T) {
	store := invoiceFixture(models.StatusChantierTermine)
	store.quotes = []models.Quote{{ID: "q1", Amount: 0, CreatedAt: time.Now()}}
	svc := &InvoiceService{Store: store}

	_, err := svc.GenerateInvoiceForProject(context.Background(), "org", "p1")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Empty(t, store.created)
}

func TestGenerateInvoiceUnknownProject(t *testing.T) {
	svc := &InvoiceService{Store: &fakeInvoiceStore{}}

	_, err := svc.GenerateInvoiceForProject(context.Background(), "org", "nope")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
