package models

import (
	"testing"

	"gorm.io/datatypes"
)

func TestProjectGormDecodesJSONColumns(t *testing.T) {
	delegateID := "d-1"
	row := ProjectGorm{
		ID:           "p-1",
		OrgID:        "org-1",
		Reference:    "PRJ-AB12345",
		DelegateID:   &delegateID,
		Status:       StatusEtude,
		ProductLines: datatypes.JSON(`[{"product_id":"prod-1","quantity":2,"params":{"surface_m2":40}}]`),
	}

	project := row.ToProject()
	if project.DelegateID != "d-1" {
		t.Errorf("delegate id = %q", project.DelegateID)
	}
	if len(project.ProductLines) != 1 {
		t.Fatalf("product lines = %d, want 1", len(project.ProductLines))
	}
	line := project.ProductLines[0]
	if line.ProductID != "prod-1" || line.Quantity != 2 {
		t.Errorf("line = %+v", line)
	}
	if line.Params["surface_m2"] != 40.0 {
		t.Errorf("params = %v", line.Params)
	}

	// A nil delegate column maps to the empty string.
	row.DelegateID = nil
	if got := row.ToProject().DelegateID; got != "" {
		t.Errorf("delegate id = %q, want empty", got)
	}
}

func TestChantierGormDecodesAdditionalCosts(t *testing.T) {
	row := ChantierGorm{
		ID:              "c-1",
		Status:          StatusChantierEnCours,
		AdditionalCosts: datatypes.JSON(`[{"label":"Location nacelle","amount_ht":350,"montant_tva":70,"total_ttc":420}]`),
	}

	chantier := row.ToChantier()
	if len(chantier.AdditionalCosts) != 1 {
		t.Fatalf("costs = %d, want 1", len(chantier.AdditionalCosts))
	}
	cost := chantier.AdditionalCosts[0]
	if cost.Label != "Location nacelle" || cost.AmountHT != 350 || cost.MontantTVA != 70 {
		t.Errorf("cost = %+v", cost)
	}

	// Malformed or empty JSON degrades to no costs, never a panic.
	row.AdditionalCosts = nil
	if got := row.ToChantier().AdditionalCosts; len(got) != 0 {
		t.Errorf("costs = %v, want none", got)
	}
}

func TestProductGormDecodesSchemaAndCoefficients(t *testing.T) {
	row := ProductGorm{
		ID:           "prod-1",
		Code:         "BAR-EN-101",
		ParamsSchema: datatypes.JSON(`[{"name":"surface_m2","label":"Surface (m²)","kind":"number","required":true}]`),
		KwhCumac:     datatypes.JSON(`{"maison_individuelle":1700,"appartement":1200}`),
	}

	product := row.ToProduct()
	if len(product.ParamsSchema) != 1 || product.ParamsSchema[0].Kind != ParamKindNumber {
		t.Errorf("schema = %+v", product.ParamsSchema)
	}
	if product.KwhCumac["maison_individuelle"] != 1700 {
		t.Errorf("kwh cumac = %v", product.KwhCumac)
	}
}

func TestDefaultOrganizationSettings(t *testing.T) {
	settings := DefaultOrganizationSettings("org-1")
	if settings.OrgID != "org-1" {
		t.Errorf("org id = %q", settings.OrgID)
	}
	if settings.PrimeBonification != 1.0 {
		t.Errorf("bonification = %v, want 1.0", settings.PrimeBonification)
	}
	if len(settings.BuildingTypes) == 0 {
		t.Error("default building types must not be empty")
	}
}
