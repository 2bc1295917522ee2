package services

import (
	"math"
	"testing"

	"backend/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func primeCeeFixture() PrimeCeeInput {
	return PrimeCeeInput{
		BuildingType:      "maison_individuelle",
		Delegate:          &models.Delegate{ID: "d1", Name: "CertiNergy", PriceEurPerMwh: 10},
		PrimeBonification: 1.2,
		Products: []models.ProductLine{
			{ProductID: "prod-iso", Quantity: 1, Params: map[string]interface{}{"surface_m2": 50}},
		},
		ProductMap: map[string]models.Product{
			"prod-iso": {
				ID:   "prod-iso",
				Code: "BAR-EN-101",
				Name: "Isolation combles perdus",
				ParamsSchema: []models.ParamField{
					{Name: "surface_m2", Label: "Surface (m²)", Kind: models.ParamKindNumber},
				},
				KwhCumac: map[string]float64{"maison_individuelle": 100},
			},
		},
	}
}

func TestComputePrimeCeeConcreteExample(t *testing.T) {
	result := ComputePrimeCee(primeCeeFixture())
	if result == nil {
		t.Fatal("expected a result")
	}
	if len(result.Products) != 1 {
		t.Fatalf("expected 1 product result, got %d", len(result.Products))
	}
	p := result.Products[0]
	if !almostEqual(p.ValorisationPerUnitMwh, 0.12) {
		t.Errorf("per-unit MWh = %v, want 0.12", p.ValorisationPerUnitMwh)
	}
	if !almostEqual(p.ValorisationTotalMwh, 6) {
		t.Errorf("total MWh = %v, want 6", p.ValorisationTotalMwh)
	}
	if !almostEqual(p.ValorisationTotalEur, 60) {
		t.Errorf("total EUR = %v, want 60", p.ValorisationTotalEur)
	}
	if !almostEqual(result.TotalPrime, 60) {
		t.Errorf("total prime = %v, want 60", result.TotalPrime)
	}
	if !almostEqual(result.TotalValorisationMwh, 6) {
		t.Errorf("total valorisation = %v, want 6", result.TotalValorisationMwh)
	}
}

func TestComputePrimeCeePreconditions(t *testing.T) {
	noDelegate := primeCeeFixture()
	noDelegate.Delegate = nil
	if ComputePrimeCee(noDelegate) != nil {
		t.Error("no delegate should yield nil")
	}

	noBuildingType := primeCeeFixture()
	noBuildingType.BuildingType = ""
	if ComputePrimeCee(noBuildingType) != nil {
		t.Error("no building type should yield nil")
	}

	noLines := primeCeeFixture()
	noLines.Products = nil
	if ComputePrimeCee(noLines) != nil {
		t.Error("no product line should yield nil")
	}
}

func TestComputePrimeCeeExcludesEcoProducts(t *testing.T) {
	input := primeCeeFixture()
	input.ProductMap["prod-eco"] = models.Product{
		ID:       "prod-eco",
		Code:     "eco-pack-01",
		Name:     "Pack économie",
		KwhCumac: map[string]float64{"maison_individuelle": 9999},
	}
	input.Products = append(input.Products, models.ProductLine{ProductID: "prod-eco", Quantity: 1})

	result := ComputePrimeCee(input)
	if result == nil {
		t.Fatal("expected a result")
	}
	if len(result.Products) != 1 {
		t.Fatalf("the ECO line must be skipped, got %d product results", len(result.Products))
	}
	if !almostEqual(result.TotalPrime, 60) {
		t.Errorf("total prime = %v, want 60 without the excluded line", result.TotalPrime)
	}

	// A project with only excluded lines has zero eligible lines.
	onlyEco := primeCeeFixture()
	onlyEco.Products = []models.ProductLine{{ProductID: "prod-eco", Quantity: 1}}
	onlyEco.ProductMap = map[string]models.Product{"prod-eco": input.ProductMap["prod-eco"]}
	if ComputePrimeCee(onlyEco) != nil {
		t.Error("only excluded lines should yield nil")
	}
}

func TestComputePrimeCeeMissingCoefficient(t *testing.T) {
	input := primeCeeFixture()
	input.ProductMap["prod-vmc"] = models.Product{
		ID:       "prod-vmc",
		Code:     "BAR-TH-127",
		Name:     "VMC double flux",
		KwhCumac: map[string]float64{"appartement": 200},
	}
	input.Products = append(input.Products, models.ProductLine{ProductID: "prod-vmc", Quantity: 2})

	result := ComputePrimeCee(input)
	if result == nil {
		t.Fatal("expected a result")
	}
	if len(result.MissingCoefficients) != 1 || result.MissingCoefficients[0] != "BAR-TH-127 – VMC double flux" {
		t.Errorf("missing coefficients = %v", result.MissingCoefficients)
	}
	if !almostEqual(result.TotalPrime, 60) {
		t.Errorf("the missing-coefficient line must not contribute, total = %v", result.TotalPrime)
	}
}

func TestComputePrimeCeeIsAdditiveOverLines(t *testing.T) {
	input := primeCeeFixture()
	input.Products = append(input.Products, input.Products[0])

	result := ComputePrimeCee(input)
	if result == nil {
		t.Fatal("expected a result")
	}
	if !almostEqual(result.TotalPrime, 120) {
		t.Errorf("two identical lines should double the prime, got %v", result.TotalPrime)
	}
}

func TestComputePrimeCeeUnresolvedLineSkipped(t *testing.T) {
	input := primeCeeFixture()
	input.Products = append(input.Products, models.ProductLine{ProductID: "inexistant", Quantity: 3})

	result := ComputePrimeCee(input)
	if result == nil {
		t.Fatal("expected a result")
	}
	if len(result.Products) != 1 {
		t.Fatalf("unresolved line must be skipped, got %d results", len(result.Products))
	}
}

func TestIsExcludedProduct(t *testing.T) {
	if !IsExcludedProduct(models.Product{Code: "ECO-01"}) {
		t.Error("ECO prefix should be excluded")
	}
	if !IsExcludedProduct(models.Product{Code: "eco-01"}) {
		t.Error("exclusion is case-insensitive")
	}
	if IsExcludedProduct(models.Product{Code: "BAR-EN-101"}) {
		t.Error("regular code should not be excluded")
	}
}
