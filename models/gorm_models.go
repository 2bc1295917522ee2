package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// GORM-compatible rows. JSON columns (product lines, params schemas, kWh
// cumac tables, additional costs) are stored as jsonb and decoded into the
// typed structures of models.go by the converters below.

// ProjectGorm represents the projects table with GORM tags
type ProjectGorm struct {
	ID           string         `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	OrgID        string         `gorm:"column:org_id;type:uuid;not null;index" json:"org_id"`
	Reference    string         `gorm:"column:reference;not null" json:"reference"`
	ClientName   string         `gorm:"column:client_name" json:"client_name"`
	ClientEmail  string         `gorm:"column:client_email" json:"client_email"`
	ClientPhone  string         `gorm:"column:client_phone" json:"client_phone"`
	Address      string         `gorm:"column:address" json:"address"`
	City         string         `gorm:"column:city" json:"city"`
	PostalCode   string         `gorm:"column:postal_code" json:"postal_code"`
	Salesperson  string         `gorm:"column:salesperson" json:"salesperson"`
	BuildingType string         `gorm:"column:building_type" json:"building_type"`
	DelegateID   *string        `gorm:"column:delegate_id;type:uuid" json:"delegate_id,omitempty"`
	Status       string         `gorm:"column:status;not null;default:'NOUVEAU'" json:"status"`
	ProductLines datatypes.JSON `gorm:"column:product_lines" json:"product_lines"`
	CreatedAt    time.Time      `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (ProjectGorm) TableName() string {
	return "projects"
}

// ToProject decodes the JSON columns into the plain domain struct.
func (p ProjectGorm) ToProject() Project {
	var lines []ProductLine
	if len(p.ProductLines) > 0 {
		json.Unmarshal(p.ProductLines, &lines)
	}
	delegateID := ""
	if p.DelegateID != nil {
		delegateID = *p.DelegateID
	}
	return Project{
		ID:           p.ID,
		OrgID:        p.OrgID,
		Reference:    p.Reference,
		ClientName:   p.ClientName,
		ClientEmail:  p.ClientEmail,
		ClientPhone:  p.ClientPhone,
		Address:      p.Address,
		City:         p.City,
		PostalCode:   p.PostalCode,
		Salesperson:  p.Salesperson,
		BuildingType: p.BuildingType,
		DelegateID:   delegateID,
		Status:       p.Status,
		ProductLines: lines,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ChantierGorm represents the chantiers table with GORM tags
type ChantierGorm struct {
	ID                  string         `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	OrgID               string         `gorm:"column:org_id;type:uuid;not null;index" json:"org_id"`
	ProjectID           string         `gorm:"column:project_id;type:uuid;not null;index" json:"project_id"`
	Reference           string         `gorm:"column:reference;not null" json:"reference"`
	Address             string         `gorm:"column:address" json:"address"`
	City                string         `gorm:"column:city" json:"city"`
	PostalCode          string         `gorm:"column:postal_code" json:"postal_code"`
	Status              string         `gorm:"column:status;not null;default:'A_PLANIFIER'" json:"status"`
	PlannedStart        *time.Time     `gorm:"column:planned_start" json:"planned_start,omitempty"`
	PlannedEnd          *time.Time     `gorm:"column:planned_end" json:"planned_end,omitempty"`
	ActualStart         *time.Time     `gorm:"column:actual_start" json:"actual_start,omitempty"`
	ActualEnd           *time.Time     `gorm:"column:actual_end" json:"actual_end,omitempty"`
	Revenue             float64        `gorm:"column:revenue;type:numeric(12,2);default:0" json:"revenue"`
	CoutMainOeuvreM2HT  float64        `gorm:"column:cout_main_oeuvre_m2_ht;type:numeric(12,2);default:0" json:"cout_main_oeuvre_m2_ht"`
	CoutIsolationM2     float64        `gorm:"column:cout_isolation_m2;type:numeric(12,2);default:0" json:"cout_isolation_m2"`
	IsolationUtiliseeM2 float64        `gorm:"column:isolation_utilisee_m2;type:numeric(12,2);default:0" json:"isolation_utilisee_m2"`
	SurfaceFactureeM2   float64        `gorm:"column:surface_facturee_m2;type:numeric(12,2);default:0" json:"surface_facturee_m2"`
	NombreLuminaires    float64        `gorm:"column:nombre_luminaires;type:numeric(12,2);default:0" json:"nombre_luminaires"`
	HasCommission       bool           `gorm:"column:has_commission;default:false" json:"has_commission"`
	MontantCommission   float64        `gorm:"column:montant_commission;type:numeric(12,2);default:0" json:"montant_commission"`
	AdditionalCosts     datatypes.JSON `gorm:"column:additional_costs" json:"additional_costs"`
	TravauxChoice       string         `gorm:"column:travaux_choice;default:'NA'" json:"travaux_choice"`
	TravauxDescription  string         `gorm:"column:travaux_description" json:"travaux_description"`
	TravauxMontant      float64        `gorm:"column:travaux_montant;type:numeric(12,2);default:0" json:"travaux_montant"`
	TravauxFinanced     bool           `gorm:"column:travaux_financed;default:false" json:"travaux_financed"`
	Subcontractor       string         `gorm:"column:subcontractor" json:"subcontractor"`
	PaymentConfirmed    bool           `gorm:"column:payment_confirmed;default:false" json:"payment_confirmed"`
	IsLighting          bool           `gorm:"column:is_lighting;default:false" json:"is_lighting"`
	CreatedAt           time.Time      `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt           time.Time      `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (ChantierGorm) TableName() string {
	return "chantiers"
}

func (c ChantierGorm) ToChantier() Chantier {
	var costs []AdditionalCost
	if len(c.AdditionalCosts) > 0 {
		json.Unmarshal(c.AdditionalCosts, &costs)
	}
	return Chantier{
		ID:                  c.ID,
		OrgID:               c.OrgID,
		ProjectID:           c.ProjectID,
		Reference:           c.Reference,
		Address:             c.Address,
		City:                c.City,
		PostalCode:          c.PostalCode,
		Status:              c.Status,
		PlannedStart:        c.PlannedStart,
		PlannedEnd:          c.PlannedEnd,
		ActualStart:         c.ActualStart,
		ActualEnd:           c.ActualEnd,
		Revenue:             c.Revenue,
		CoutMainOeuvreM2HT:  c.CoutMainOeuvreM2HT,
		CoutIsolationM2:     c.CoutIsolationM2,
		IsolationUtiliseeM2: c.IsolationUtiliseeM2,
		SurfaceFactureeM2:   c.SurfaceFactureeM2,
		NombreLuminaires:    c.NombreLuminaires,
		HasCommission:       c.HasCommission,
		MontantCommission:   c.MontantCommission,
		AdditionalCosts:     costs,
		TravauxChoice:       c.TravauxChoice,
		TravauxDescription:  c.TravauxDescription,
		TravauxMontant:      c.TravauxMontant,
		TravauxFinanced:     c.TravauxFinanced,
		Subcontractor:       c.Subcontractor,
		PaymentConfirmed:    c.PaymentConfirmed,
		IsLighting:          c.IsLighting,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

// QuoteGorm represents the quotes table with GORM tags
type QuoteGorm struct {
	ID        string    `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	OrgID     string    `gorm:"column:org_id;type:uuid;not null;index" json:"org_id"`
	ProjectID string    `gorm:"column:project_id;type:uuid;not null;index" json:"project_id"`
	Reference string    `gorm:"column:reference;not null" json:"reference"`
	Amount    float64   `gorm:"column:amount;type:numeric(12,2);default:0" json:"amount"`
	Status    string    `gorm:"column:status;default:'BROUILLON'" json:"status"`
	Notes     string    `gorm:"column:notes" json:"notes"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (QuoteGorm) TableName() string {
	return "quotes"
}

func (q QuoteGorm) ToQuote() Quote {
	return Quote{
		ID:        q.ID,
		OrgID:     q.OrgID,
		ProjectID: q.ProjectID,
		Reference: q.Reference,
		Amount:    q.Amount,
		Status:    q.Status,
		Notes:     q.Notes,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

// InvoiceGorm represents the invoices table with GORM tags
type InvoiceGorm struct {
	ID        string    `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	OrgID     string    `gorm:"column:org_id;type:uuid;not null;index" json:"org_id"`
	ProjectID string    `gorm:"column:project_id;type:uuid;not null;index" json:"project_id"`
	Reference string    `gorm:"column:reference;not null" json:"reference"`
	Amount    float64   `gorm:"column:amount;type:numeric(12,2);not null" json:"amount"`
	Status    string    `gorm:"column:status;not null;default:'BROUILLON'" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (InvoiceGorm) TableName() string {
	return "invoices"
}

func (i InvoiceGorm) ToInvoice() Invoice {
	return Invoice{
		ID:        i.ID,
		OrgID:     i.OrgID,
		ProjectID: i.ProjectID,
		Reference: i.Reference,
		Amount:    i.Amount,
		Status:    i.Status,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

// ProductGorm represents the products catalog table with GORM tags
type ProductGorm struct {
	ID           string         `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	OrgID        string         `gorm:"column:org_id;type:uuid;not null;index" json:"org_id"`
	Code         string         `gorm:"column:code;not null" json:"code"`
	Name         string         `gorm:"column:name;not null" json:"name"`
	Category     string         `gorm:"column:category" json:"category"`
	ParamsSchema datatypes.JSON `gorm:"column:params_schema" json:"params_schema"`
	KwhCumac     datatypes.JSON `gorm:"column:kwh_cumac" json:"kwh_cumac"`
	CreatedAt    time.Time      `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (ProductGorm) TableName() string {
	return "products"
}

func (p ProductGorm) ToProduct() Product {
	var schema []ParamField
	if len(p.ParamsSchema) > 0 {
		json.Unmarshal(p.ParamsSchema, &schema)
	}
	kwh := map[string]float64{}
	if len(p.KwhCumac) > 0 {
		json.Unmarshal(p.KwhCumac, &kwh)
	}
	return Product{
		ID:           p.ID,
		OrgID:        p.OrgID,
		Code:         p.Code,
		Name:         p.Name,
		Category:     p.Category,
		ParamsSchema: schema,
		KwhCumac:     kwh,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// DelegateGorm represents the delegates table with GORM tags
type DelegateGorm struct {
	ID             string    `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	OrgID          string    `gorm:"column:org_id;type:uuid;not null;index" json:"org_id"`
	Name           string    `gorm:"column:name;not null" json:"name"`
	PriceEurPerMwh float64   `gorm:"column:price_eur_per_mwh;type:numeric(10,2);not null" json:"price_eur_per_mwh"`
	CreatedAt      time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (DelegateGorm) TableName() string {
	return "delegates"
}

func (d DelegateGorm) ToDelegate() Delegate {
	return Delegate{
		ID:             d.ID,
		OrgID:          d.OrgID,
		Name:           d.Name,
		PriceEurPerMwh: d.PriceEurPerMwh,
		CreatedAt:      d.CreatedAt,
	}
}

// OrganizationSettingsGorm represents the organization_settings table
type OrganizationSettingsGorm struct {
	OrgID             string         `gorm:"primaryKey;column:org_id;type:uuid" json:"org_id"`
	CompanyName       string         `gorm:"column:company_name" json:"company_name"`
	CompanyAddress    string         `gorm:"column:company_address" json:"company_address"`
	CompanySiret      string         `gorm:"column:company_siret" json:"company_siret"`
	PrimeBonification float64        `gorm:"column:prime_bonification;type:numeric(8,4);default:1" json:"prime_bonification"`
	BackupWebhookURL  string         `gorm:"column:backup_webhook_url" json:"backup_webhook_url"`
	BuildingTypes     datatypes.JSON `gorm:"column:building_types" json:"building_types"`
	Usages            datatypes.JSON `gorm:"column:usages" json:"usages"`
	UpdatedAt         time.Time      `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (OrganizationSettingsGorm) TableName() string {
	return "organization_settings"
}

func (s OrganizationSettingsGorm) ToSettings() OrganizationSettings {
	var buildingTypes, usages []string
	if len(s.BuildingTypes) > 0 {
		json.Unmarshal(s.BuildingTypes, &buildingTypes)
	}
	if len(s.Usages) > 0 {
		json.Unmarshal(s.Usages, &usages)
	}
	return OrganizationSettings{
		OrgID:             s.OrgID,
		CompanyName:       s.CompanyName,
		CompanyAddress:    s.CompanyAddress,
		CompanySiret:      s.CompanySiret,
		PrimeBonification: s.PrimeBonification,
		BackupWebhookURL:  s.BackupWebhookURL,
		BuildingTypes:     buildingTypes,
		Usages:            usages,
	}
}

// UserGorm represents the users table with GORM tags
type UserGorm struct {
	ID        string    `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	OrgID     string    `gorm:"column:org_id;type:uuid;not null;index" json:"org_id"`
	Email     string    `gorm:"column:email;not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"column:password;not null" json:"-"`
	FirstName string    `gorm:"column:first_name" json:"first_name"`
	LastName  string    `gorm:"column:last_name" json:"last_name"`
	Role      string    `gorm:"column:role;default:'commercial'" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (UserGorm) TableName() string {
	return "users"
}
