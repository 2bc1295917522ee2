package services

import (
	"math"

	"backend/models"
)

type RentabilityInput struct {
	Revenue             float64                 `json:"revenue"`
	CoutMainOeuvreM2HT  float64                 `json:"cout_main_oeuvre_m2_ht"`
	CoutIsolationM2     float64                 `json:"cout_isolation_m2"`
	IsolationUtiliseeM2 float64                 `json:"isolation_utilisee_m2"`
	SurfaceFactureeM2   float64                 `json:"surface_facturee_m2"`
	NombreLuminaires    float64                 `json:"nombre_luminaires"`
	HasCommission       bool                    `json:"has_commission"`
	MontantCommission   float64                 `json:"montant_commission"`
	TravauxChoice       string                  `json:"travaux_choice"`
	TravauxMontant      float64                 `json:"travaux_montant"`
	AdditionalCosts     []models.AdditionalCost `json:"additional_costs"`
	IsLighting          bool                    `json:"is_lighting"`
}

type RentabilityResult struct {
	Revenue              float64 `json:"revenue"`
	TotalCosts           float64 `json:"total_costs"`
	MarginTotal          float64 `json:"margin_total"`
	MarginRate           float64 `json:"margin_rate"`
	MarginPerUnit        float64 `json:"margin_per_unit"`
	UnitLabel            string  `json:"unit_label"`
	UnitsUsed            float64 `json:"units_used"`
	AdditionalCostsTotal float64 `json:"additional_costs_total"`
}

// sanitize coerces a possibly malformed numeric input to a finite value.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// RentabilityInputFromChantier maps a chantier row onto the calculator input.
func RentabilityInputFromChantier(c models.Chantier) RentabilityInput {
	return RentabilityInput{
		Revenue:             c.Revenue,
		CoutMainOeuvreM2HT:  c.CoutMainOeuvreM2HT,
		CoutIsolationM2:     c.CoutIsolationM2,
		IsolationUtiliseeM2: c.IsolationUtiliseeM2,
		SurfaceFactureeM2:   c.SurfaceFactureeM2,
		NombreLuminaires:    c.NombreLuminaires,
		HasCommission:       c.HasCommission,
		MontantCommission:   c.MontantCommission,
		TravauxChoice:       c.TravauxChoice,
		TravauxMontant:      c.TravauxMontant,
		AdditionalCosts:     c.AdditionalCosts,
		IsLighting:          c.IsLighting,
	}
}

// CalculateRentability applies the chantier cost model: labor and material
// costs scale with the installed isolation area (or the luminaire count for
// lighting lines), commission is flat when enabled, the non-subsidized-works
// amount applies unless the choice is NA, and additional cost lines count
// only when their label is filled in (empty-label rows are incomplete UI
// rows, not zero-cost items). marginRate and marginPerUnit are 0 when their
// denominator is not strictly positive.
func CalculateRentability(input RentabilityInput) RentabilityResult {
	revenue := sanitize(input.Revenue)
	laborRate := sanitize(input.CoutMainOeuvreM2HT)
	materialRate := sanitize(input.CoutIsolationM2)
	installedArea := sanitize(input.IsolationUtiliseeM2)
	billedArea := sanitize(input.SurfaceFactureeM2)
	luminaires := sanitize(input.NombreLuminaires)

	var laborCost, materialCost float64
	unitLabel := "m²"
	unitsUsed := billedArea
	if input.IsLighting {
		unitLabel = "luminaire"
		unitsUsed = luminaires
		laborCost = laborRate * luminaires
		materialCost = materialRate * luminaires
	} else {
		laborCost = laborRate * installedArea
		materialCost = materialRate * installedArea
	}

	var commission float64
	if input.HasCommission {
		commission = sanitize(input.MontantCommission)
	}

	var surcharge float64
	if input.TravauxChoice != "" && input.TravauxChoice != models.TravauxChoiceNA {
		surcharge = sanitize(input.TravauxMontant)
	}

	var additionalTotal float64
	for _, cost := range input.AdditionalCosts {
		if cost.Label == "" {
			continue
		}
		additionalTotal += sanitize(cost.AmountHT) + sanitize(cost.MontantTVA)
	}

	totalCosts := laborCost + materialCost + commission + surcharge + additionalTotal
	marginTotal := revenue - totalCosts

	var marginRate float64
	if revenue > 0 {
		marginRate = marginTotal / revenue
	}

	var marginPerUnit float64
	if unitsUsed > 0 {
		marginPerUnit = marginTotal / unitsUsed
	}

	return RentabilityResult{
		Revenue:              revenue,
		TotalCosts:           totalCosts,
		MarginTotal:          marginTotal,
		MarginRate:           marginRate,
		MarginPerUnit:        marginPerUnit,
		UnitLabel:            unitLabel,
		UnitsUsed:            unitsUsed,
		AdditionalCostsTotal: additionalTotal,
	}
}
