package models

import (
	"time"
)

// Project status vocabulary. The canonical order over these codes lives in
// services/status_order.go; chantiers share the same vocabulary.
const (
	StatusNouveau          = "NOUVEAU"
	StatusEtude            = "ETUDE"
	StatusDevisEnvoye      = "DEVIS_ENVOYE"
	StatusDevisSigne       = "DEVIS_SIGNE"
	StatusAccepte          = "ACCEPTE"
	StatusVisiteTechnique  = "VISITE_TECHNIQUE"
	StatusAPlanifier       = "A_PLANIFIER"
	StatusChantierPlanifie = "CHANTIER_PLANIFIE"
	StatusEnCours          = "EN_COURS"
	StatusChantierEnCours  = "CHANTIER_EN_COURS"
	StatusChantierTermine  = "CHANTIER_TERMINE"
	StatusLivre            = "LIVRE"
	StatusFactureEnvoyee   = "FACTURE_ENVOYEE"
	StatusAH               = "AH"
	StatusAAF              = "AAF"
	StatusCloture          = "CLOTURE"
	StatusAnnule           = "ANNULE"
	StatusAbandonne        = "ABANDONNE"
)

// Invoice statuses.
const (
	InvoiceStatusBrouillon = "BROUILLON"
	InvoiceStatusEnvoyee   = "ENVOYEE"
	InvoiceStatusPayee     = "PAYEE"
)

// Quote statuses.
const (
	QuoteStatusBrouillon = "BROUILLON"
	QuoteStatusEnvoye    = "ENVOYE"
	QuoteStatusSigne     = "SIGNE"
	QuoteStatusRefuse    = "REFUSE"
)

// Travaux non subventionnés choice sentinel. Any other value means a real
// surcharge is attached to the chantier.
const TravauxChoiceNA = "NA"

// Param field kinds for dynamic product parameter schemas.
const (
	ParamKindText     = "text"
	ParamKindNumber   = "number"
	ParamKindSelect   = "select"
	ParamKindTextarea = "textarea"
	ParamKindCheckbox = "checkbox"
)

type User struct {
	ID        string    `json:"id" example:"7f9c5f0e-0a3e-4a5e-9a3d-1c2b3d4e5f60"`
	OrgID     string    `json:"org_id" example:"b1e2c3d4-0000-4000-8000-000000000001"`
	Email     string    `json:"email" example:"user@example.com"`
	Password  string    `json:"password" example:""`
	FirstName string    `json:"first_name" example:"Marie"`
	LastName  string    `json:"last_name" example:"Durand"`
	Role      string    `json:"role" example:"commercial"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2024-01-15T10:30:00Z"`
}

type Session struct {
	UserID                string    `json:"user_id"`
	OrgID                 string    `json:"org_id"`
	SessionID             string    `json:"session_id"`
	HostName              string    `json:"host_name"`
	IPAddress             string    `json:"ip_address"`
	Timestamp             time.Time `json:"timestp"`
	ExpiresAt             time.Time `json:"expires_at"`
	RefreshToken          string    `json:"refresh_token,omitempty"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at,omitempty"`
}

// ParamField describes one dynamic parameter of a product's schema.
type ParamField struct {
	Name     string      `json:"name" example:"surface_m2"`
	Label    string      `json:"label" example:"Surface (m²)"`
	Kind     string      `json:"kind" example:"number"`
	Options  []string    `json:"options,omitempty"`
	Default  interface{} `json:"default,omitempty"`
	Required bool        `json:"required,omitempty"`
}

// ProductLine is one selected product on a project, with its quantity and
// the values entered for the product's dynamic parameters.
type ProductLine struct {
	ProductID string                 `json:"product_id" example:"a0b1c2d3-0000-4000-8000-000000000010"`
	Quantity  float64                `json:"quantity" example:"1"`
	Params    map[string]interface{} `json:"params"`
}

// AdditionalCost is one extra cost line on a chantier. Lines with an empty
// label are incomplete UI rows and are ignored by the rentability sum.
type AdditionalCost struct {
	Label         string  `json:"label" example:"Location nacelle"`
	AmountHT      float64 `json:"amount_ht" example:"350"`
	MontantTVA    float64 `json:"montant_tva" example:"70"`
	TotalTTC      float64 `json:"total_ttc" example:"420"`
	AttachmentURL string  `json:"attachment_url,omitempty"`
}

type Project struct {
	ID           string        `json:"id"`
	OrgID        string        `json:"org_id"`
	Reference    string        `json:"reference" example:"PRJ-AB12345"`
	ClientName   string        `json:"client_name" example:"SCI Les Tilleuls"`
	ClientEmail  string        `json:"client_email" example:"contact@tilleuls.fr"`
	ClientPhone  string        `json:"client_phone" example:"0601020304"`
	Address      string        `json:"address" example:"12 rue des Lilas"`
	City         string        `json:"city" example:"Lyon"`
	PostalCode   string        `json:"postal_code" example:"69003"`
	Salesperson  string        `json:"salesperson" example:"Marie Durand"`
	BuildingType string        `json:"building_type" example:"maison_individuelle"`
	DelegateID   string        `json:"delegate_id,omitempty"`
	Status       string        `json:"status" example:"NOUVEAU"`
	ProductLines []ProductLine `json:"product_lines"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type Chantier struct {
	ID                  string           `json:"id"`
	OrgID               string           `json:"org_id"`
	ProjectID           string           `json:"project_id"`
	Reference           string           `json:"reference" example:"CH-XY67890"`
	Address             string           `json:"address"`
	City                string           `json:"city"`
	PostalCode          string           `json:"postal_code"`
	Status              string           `json:"status" example:"CHANTIER_PLANIFIE"`
	PlannedStart        *time.Time       `json:"planned_start,omitempty"`
	PlannedEnd          *time.Time       `json:"planned_end,omitempty"`
	ActualStart         *time.Time       `json:"actual_start,omitempty"`
	ActualEnd           *time.Time       `json:"actual_end,omitempty"`
	Revenue             float64          `json:"revenue" example:"10000"`
	CoutMainOeuvreM2HT  float64          `json:"cout_main_oeuvre_m2_ht" example:"20"`
	CoutIsolationM2     float64          `json:"cout_isolation_m2" example:"30"`
	IsolationUtiliseeM2 float64          `json:"isolation_utilisee_m2" example:"100"`
	SurfaceFactureeM2   float64          `json:"surface_facturee_m2" example:"100"`
	NombreLuminaires    float64          `json:"nombre_luminaires" example:"0"`
	HasCommission       bool             `json:"has_commission"`
	MontantCommission   float64          `json:"montant_commission" example:"500"`
	AdditionalCosts     []AdditionalCost `json:"additional_costs"`
	TravauxChoice       string           `json:"travaux_choice" example:"NA"`
	TravauxDescription  string           `json:"travaux_description,omitempty"`
	TravauxMontant      float64          `json:"travaux_montant"`
	TravauxFinanced     bool             `json:"travaux_financed"`
	Subcontractor       string           `json:"subcontractor,omitempty"`
	PaymentConfirmed    bool             `json:"payment_confirmed"`
	IsLighting          bool             `json:"is_lighting"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

type Quote struct {
	ID        string    `json:"id"`
	OrgID     string    `json:"org_id"`
	ProjectID string    `json:"project_id"`
	Reference string    `json:"reference" example:"DEV-CD54321"`
	Amount    float64   `json:"amount" example:"10000"`
	Status    string    `json:"status" example:"ENVOYE"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Invoice struct {
	ID        string    `json:"id"`
	OrgID     string    `json:"org_id"`
	ProjectID string    `json:"project_id"`
	Reference string    `json:"reference" example:"PRJ-AB12345-FACT-20240115103000"`
	Amount    float64   `json:"amount" example:"10000"`
	Status    string    `json:"status" example:"BROUILLON"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Product is a catalog entry. KwhCumac maps building type to the certified
// kWh cumac coefficient; a missing key means the product cannot contribute
// to the Prime CEE for that building type.
type Product struct {
	ID           string             `json:"id"`
	OrgID        string             `json:"org_id"`
	Code         string             `json:"code" example:"BAR-EN-101"`
	Name         string             `json:"name" example:"Isolation combles perdus"`
	Category     string             `json:"category" example:"isolation"`
	ParamsSchema []ParamField       `json:"params_schema"`
	KwhCumac     map[string]float64 `json:"kwh_cumac"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

type Delegate struct {
	ID             string    `json:"id"`
	OrgID          string    `json:"org_id"`
	Name           string    `json:"name" example:"CertiNergy"`
	PriceEurPerMwh float64   `json:"price_eur_per_mwh" example:"10"`
	CreatedAt      time.Time `json:"created_at"`
}

// OrganizationSettings is the per-organization configuration record. It
// replaces module-level default data: the hardcoded defaults apply only when
// no row exists for the org.
type OrganizationSettings struct {
	OrgID             string   `json:"org_id"`
	CompanyName       string   `json:"company_name" example:"Renov Energie"`
	CompanyAddress    string   `json:"company_address"`
	CompanySiret      string   `json:"company_siret"`
	PrimeBonification float64  `json:"prime_bonification" example:"1.2"`
	BackupWebhookURL  string   `json:"backup_webhook_url,omitempty"`
	BuildingTypes     []string `json:"building_types"`
	Usages            []string `json:"usages"`
}

// DefaultOrganizationSettings returns the documented defaults used when an
// organization has no settings row yet.
func DefaultOrganizationSettings(orgID string) OrganizationSettings {
	return OrganizationSettings{
		OrgID:             orgID,
		CompanyName:       "Renov Energie",
		PrimeBonification: 1.0,
		BuildingTypes: []string{
			"maison_individuelle",
			"appartement",
			"immeuble_collectif",
			"tertiaire",
		},
		Usages: []string{"residentiel", "tertiaire"},
	}
}

// ProjectExport is the snapshot shape sent by the backup export webhook.
type ProjectExport struct {
	Project   Project    `json:"project"`
	Chantiers []Chantier `json:"chantiers"`
	Quotes    []Quote    `json:"quotes"`
	Invoices  []Invoice  `json:"invoices"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required" example:"EN_COURS"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:""`
}

type LoginResponse struct {
	SessionID    string `json:"session_id"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}
