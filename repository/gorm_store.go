package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"backend/apperrors"
	"backend/models"
)

// GormStore is the production persistence layer. Every read and write is
// scoped to an organization id; there is no cross-tenant access path.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func notFoundOr(err error, format string, args ...interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound(format, args...)
	}
	return err
}

func (s *GormStore) CreateProject(ctx context.Context, project *models.Project) error {
	linesJSON, err := json.Marshal(project.ProductLines)
	if err != nil {
		return err
	}
	var delegateID *string
	if project.DelegateID != "" {
		delegateID = &project.DelegateID
	}
	row := models.ProjectGorm{
		ID:           project.ID,
		OrgID:        project.OrgID,
		Reference:    project.Reference,
		ClientName:   project.ClientName,
		ClientEmail:  project.ClientEmail,
		ClientPhone:  project.ClientPhone,
		Address:      project.Address,
		City:         project.City,
		PostalCode:   project.PostalCode,
		Salesperson:  project.Salesperson,
		BuildingType: project.BuildingType,
		DelegateID:   delegateID,
		Status:       project.Status,
		ProductLines: datatypes.JSON(linesJSON),
		CreatedAt:    project.CreatedAt,
		UpdatedAt:    project.UpdatedAt,
	}
	return s.DB.WithContext(ctx).Create(&row).Error
}

func (s *GormStore) CreateChantier(ctx context.Context, chantier *models.Chantier) error {
	costsJSON, err := json.Marshal(chantier.AdditionalCosts)
	if err != nil {
		return err
	}
	row := models.ChantierGorm{
		ID:              chantier.ID,
		OrgID:           chantier.OrgID,
		ProjectID:       chantier.ProjectID,
		Reference:       chantier.Reference,
		Address:         chantier.Address,
		City:            chantier.City,
		PostalCode:      chantier.PostalCode,
		Status:          chantier.Status,
		PlannedStart:    chantier.PlannedStart,
		PlannedEnd:      chantier.PlannedEnd,
		Revenue:         chantier.Revenue,
		AdditionalCosts: datatypes.JSON(costsJSON),
		TravauxChoice:   chantier.TravauxChoice,
		Subcontractor:   chantier.Subcontractor,
		IsLighting:      chantier.IsLighting,
		CreatedAt:       chantier.CreatedAt,
		UpdatedAt:       chantier.UpdatedAt,
	}
	return s.DB.WithContext(ctx).Create(&row).Error
}

func (s *GormStore) CreateQuote(ctx context.Context, quote *models.Quote) error {
	row := models.QuoteGorm{
		ID:        quote.ID,
		OrgID:     quote.OrgID,
		ProjectID: quote.ProjectID,
		Reference: quote.Reference,
		Amount:    quote.Amount,
		Status:    quote.Status,
		Notes:     quote.Notes,
		CreatedAt: quote.CreatedAt,
		UpdatedAt: quote.UpdatedAt,
	}
	return s.DB.WithContext(ctx).Create(&row).Error
}

func (s *GormStore) GetProject(ctx context.Context, orgID, projectID string) (*models.Project, error) {
	var row models.ProjectGorm
	err := s.DB.WithContext(ctx).Where("id = ? AND org_id = ?", projectID, orgID).First(&row).Error
	if err != nil {
		return nil, notFoundOr(err, "projet %s introuvable", projectID)
	}
	project := row.ToProject()
	return &project, nil
}

func (s *GormStore) UpdateProjectStatus(ctx context.Context, orgID, projectID, status string) error {
	res := s.DB.WithContext(ctx).Model(&models.ProjectGorm{}).
		Where("id = ? AND org_id = ?", projectID, orgID).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("projet %s introuvable", projectID)
	}
	return nil
}

func (s *GormStore) ListProjects(ctx context.Context, orgID string) ([]models.Project, error) {
	var rows []models.ProjectGorm
	err := s.DB.WithContext(ctx).Where("org_id = ?", orgID).
		Order("created_at ASC, id ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	projects := make([]models.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, row.ToProject())
	}
	return projects, nil
}

func (s *GormStore) GetChantier(ctx context.Context, orgID, chantierID string) (*models.Chantier, error) {
	var row models.ChantierGorm
	err := s.DB.WithContext(ctx).Where("id = ? AND org_id = ?", chantierID, orgID).First(&row).Error
	if err != nil {
		return nil, notFoundOr(err, "chantier %s introuvable", chantierID)
	}
	chantier := row.ToChantier()
	return &chantier, nil
}

func (s *GormStore) ListChantiersByProject(ctx context.Context, orgID, projectID string) ([]models.Chantier, error) {
	var rows []models.ChantierGorm
	err := s.DB.WithContext(ctx).Where("project_id = ? AND org_id = ?", projectID, orgID).
		Order("created_at ASC, id ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	chantiers := make([]models.Chantier, 0, len(rows))
	for _, row := range rows {
		chantiers = append(chantiers, row.ToChantier())
	}
	return chantiers, nil
}

func (s *GormStore) UpdateChantierStatus(ctx context.Context, orgID, chantierID, status string) error {
	res := s.DB.WithContext(ctx).Model(&models.ChantierGorm{}).
		Where("id = ? AND org_id = ?", chantierID, orgID).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("chantier %s introuvable", chantierID)
	}
	return nil
}

// UpdateChantierCosts persists the rentability-relevant fields of a chantier.
func (s *GormStore) UpdateChantierCosts(ctx context.Context, orgID string, chantier *models.Chantier) error {
	costsJSON, err := json.Marshal(chantier.AdditionalCosts)
	if err != nil {
		return err
	}
	res := s.DB.WithContext(ctx).Model(&models.ChantierGorm{}).
		Where("id = ? AND org_id = ?", chantier.ID, orgID).
		Updates(map[string]interface{}{
			"revenue":                chantier.Revenue,
			"cout_main_oeuvre_m2_ht": chantier.CoutMainOeuvreM2HT,
			"cout_isolation_m2":      chantier.CoutIsolationM2,
			"isolation_utilisee_m2":  chantier.IsolationUtiliseeM2,
			"surface_facturee_m2":    chantier.SurfaceFactureeM2,
			"nombre_luminaires":      chantier.NombreLuminaires,
			"has_commission":         chantier.HasCommission,
			"montant_commission":     chantier.MontantCommission,
			"additional_costs":       datatypes.JSON(costsJSON),
			"travaux_choice":         chantier.TravauxChoice,
			"travaux_description":    chantier.TravauxDescription,
			"travaux_montant":        chantier.TravauxMontant,
			"travaux_financed":       chantier.TravauxFinanced,
			"is_lighting":            chantier.IsLighting,
			"updated_at":             time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("chantier %s introuvable", chantier.ID)
	}
	return nil
}

func (s *GormStore) GetQuote(ctx context.Context, orgID, quoteID string) (*models.Quote, error) {
	var row models.QuoteGorm
	err := s.DB.WithContext(ctx).Where("id = ? AND org_id = ?", quoteID, orgID).First(&row).Error
	if err != nil {
		return nil, notFoundOr(err, "devis %s introuvable", quoteID)
	}
	quote := row.ToQuote()
	return &quote, nil
}

func (s *GormStore) UpdateQuoteStatus(ctx context.Context, orgID, quoteID, status string) error {
	res := s.DB.WithContext(ctx).Model(&models.QuoteGorm{}).
		Where("id = ? AND org_id = ?", quoteID, orgID).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("devis %s introuvable", quoteID)
	}
	return nil
}

func (s *GormStore) ListQuotesByProject(ctx context.Context, orgID, projectID string) ([]models.Quote, error) {
	var rows []models.QuoteGorm
	err := s.DB.WithContext(ctx).Where("project_id = ? AND org_id = ?", projectID, orgID).
		Order("created_at ASC, id ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	quotes := make([]models.Quote, 0, len(rows))
	for _, row := range rows {
		quotes = append(quotes, row.ToQuote())
	}
	return quotes, nil
}

func (s *GormStore) CreateInvoice(ctx context.Context, invoice *models.Invoice) error {
	row := models.InvoiceGorm{
		ID:        invoice.ID,
		OrgID:     invoice.OrgID,
		ProjectID: invoice.ProjectID,
		Reference: invoice.Reference,
		Amount:    invoice.Amount,
		Status:    invoice.Status,
		CreatedAt: invoice.CreatedAt,
		UpdatedAt: invoice.UpdatedAt,
	}
	return s.DB.WithContext(ctx).Create(&row).Error
}

func (s *GormStore) ListInvoicesByProject(ctx context.Context, orgID, projectID string) ([]models.Invoice, error) {
	var rows []models.InvoiceGorm
	err := s.DB.WithContext(ctx).Where("project_id = ? AND org_id = ?", projectID, orgID).
		Order("created_at ASC, id ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	invoices := make([]models.Invoice, 0, len(rows))
	for _, row := range rows {
		invoices = append(invoices, row.ToInvoice())
	}
	return invoices, nil
}

func (s *GormStore) GetDelegate(ctx context.Context, orgID, delegateID string) (*models.Delegate, error) {
	var row models.DelegateGorm
	err := s.DB.WithContext(ctx).Where("id = ? AND org_id = ?", delegateID, orgID).First(&row).Error
	if err != nil {
		return nil, notFoundOr(err, "délégataire %s introuvable", delegateID)
	}
	delegate := row.ToDelegate()
	return &delegate, nil
}

// GetProductMap loads the catalog entries for the given ids, keyed by id.
// Missing ids are simply absent from the map; the Prime CEE calculator
// skips unresolved lines rather than failing.
func (s *GormStore) GetProductMap(ctx context.Context, orgID string, productIDs []string) (map[string]models.Product, error) {
	if len(productIDs) == 0 {
		return map[string]models.Product{}, nil
	}
	var rows []models.ProductGorm
	err := s.DB.WithContext(ctx).Where("org_id = ? AND id IN ?", orgID, productIDs).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]models.Product, len(rows))
	for _, row := range rows {
		out[row.ID] = row.ToProduct()
	}
	return out, nil
}

// GetSettings loads the organization settings row, falling back to the
// documented defaults when none exists.
func (s *GormStore) GetSettings(ctx context.Context, orgID string) (models.OrganizationSettings, error) {
	var row models.OrganizationSettingsGorm
	err := s.DB.WithContext(ctx).Where("org_id = ?", orgID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DefaultOrganizationSettings(orgID), nil
		}
		return models.OrganizationSettings{}, err
	}
	return row.ToSettings(), nil
}

// SaveSettings upserts the organization settings row. A negative
// bonification is clamped to 0 here so the calculators can assume the
// documented precondition.
func (s *GormStore) SaveSettings(ctx context.Context, settings models.OrganizationSettings) error {
	if settings.PrimeBonification < 0 {
		settings.PrimeBonification = 0
	}
	buildingTypes, err := json.Marshal(settings.BuildingTypes)
	if err != nil {
		return err
	}
	usages, err := json.Marshal(settings.Usages)
	if err != nil {
		return err
	}
	row := models.OrganizationSettingsGorm{
		OrgID:             settings.OrgID,
		CompanyName:       settings.CompanyName,
		CompanyAddress:    settings.CompanyAddress,
		CompanySiret:      settings.CompanySiret,
		PrimeBonification: settings.PrimeBonification,
		BackupWebhookURL:  settings.BackupWebhookURL,
		BuildingTypes:     datatypes.JSON(buildingTypes),
		Usages:            datatypes.JSON(usages),
		UpdatedAt:         time.Now(),
	}
	return s.DB.WithContext(ctx).Save(&row).Error
}

// ListOrgIDsWithBackupWebhook returns the organizations the nightly backup
// job must export, with their configured webhook URLs.
func (s *GormStore) ListOrgIDsWithBackupWebhook(ctx context.Context) (map[string]string, error) {
	var rows []models.OrganizationSettingsGorm
	err := s.DB.WithContext(ctx).Where("backup_webhook_url <> ''").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.OrgID] = row.BackupWebhookURL
	}
	return out, nil
}

func (s *GormStore) CountProjects(ctx context.Context, orgID string) (int, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(&models.ProjectGorm{}).Where("org_id = ?", orgID).Count(&count).Error
	return int(count), err
}

// ListProjectExports pages through an organization's projects with their
// nested chantiers, quotes and invoices, ordered stably for chunking.
func (s *GormStore) ListProjectExports(ctx context.Context, orgID string, offset, limit int) ([]models.ProjectExport, error) {
	var rows []models.ProjectGorm
	err := s.DB.WithContext(ctx).Where("org_id = ?", orgID).
		Order("created_at ASC, id ASC").Offset(offset).Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	exports := make([]models.ProjectExport, 0, len(rows))
	for _, row := range rows {
		project := row.ToProject()
		chantiers, err := s.ListChantiersByProject(ctx, orgID, project.ID)
		if err != nil {
			return nil, err
		}
		quotes, err := s.ListQuotesByProject(ctx, orgID, project.ID)
		if err != nil {
			return nil, err
		}
		invoices, err := s.ListInvoicesByProject(ctx, orgID, project.ID)
		if err != nil {
			return nil, err
		}
		exports = append(exports, models.ProjectExport{
			Project:   project,
			Chantiers: chantiers,
			Quotes:    quotes,
			Invoices:  invoices,
		})
	}
	return exports, nil
}
