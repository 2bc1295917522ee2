package services

import (
	"fmt"
	"strings"

	"backend/models"
)

// Products whose code carries this prefix are economy-pack entries excluded
// from the Prime CEE computation and from default selection visibility.
const excludedCodePrefix = "ECO"

type PrimeCeeInput struct {
	Products          []models.ProductLine
	BuildingType      string
	Delegate          *models.Delegate
	PrimeBonification float64
	ProductMap        map[string]models.Product
}

type PrimeCeeProductResult struct {
	ProductID              string  `json:"product_id"`
	Code                   string  `json:"code"`
	Name                   string  `json:"name"`
	Quantity               float64 `json:"quantity"`
	Multiplier             float64 `json:"multiplier"`
	KwhCumac               float64 `json:"kwh_cumac"`
	ValorisationPerUnitMwh float64 `json:"valorisation_per_unit_mwh"`
	ValorisationTotalMwh   float64 `json:"valorisation_total_mwh"`
	ValorisationPerUnitEur float64 `json:"valorisation_per_unit_eur"`
	ValorisationTotalEur   float64 `json:"valorisation_total_eur"`
}

type PrimeCeeResult struct {
	Products             []PrimeCeeProductResult `json:"products"`
	MissingCoefficients  []string                `json:"missing_coefficients,omitempty"`
	TotalPrime           float64                 `json:"total_prime"`
	TotalValorisationMwh float64                 `json:"total_valorisation_mwh"`
}

// IsExcludedProduct reports whether a catalog entry is omitted from the
// Prime CEE computation by the code-prefix convention.
func IsExcludedProduct(p models.Product) bool {
	return strings.HasPrefix(strings.ToUpper(p.Code), excludedCodePrefix)
}

// ComputePrimeCee computes the subsidized rebate for a project's selected
// products. It returns nil, not an error, when a precondition is missing
// (no delegate, no building type, or no eligible product line): callers
// render a per-precondition "cannot compute yet" hint instead of an error.
//
// Per line: valorisation_per_unit_MWh = kwh_cumac × bonification / 1000,
// then scaled by quantity × multiplier and priced at the delegate's €/MWh.
// Lines that do not resolve to a catalog entry, or that are excluded, are
// silently skipped; lines whose catalog entry lacks a coefficient for the
// building type are skipped and reported in MissingCoefficients. No rounding
// happens here; formatting is the caller's concern.
func ComputePrimeCee(input PrimeCeeInput) *PrimeCeeResult {
	if input.Delegate == nil || input.BuildingType == "" {
		return nil
	}

	eligible := 0
	result := &PrimeCeeResult{}
	for _, line := range input.Products {
		product, ok := input.ProductMap[line.ProductID]
		if !ok || IsExcludedProduct(product) {
			continue
		}
		eligible++

		kwhCumac, ok := product.KwhCumac[input.BuildingType]
		if !ok {
			result.MissingCoefficients = append(result.MissingCoefficients,
				fmt.Sprintf("%s – %s", product.Code, product.Name))
			continue
		}

		multiplier := ResolveMultiplier(product, line)
		perUnitMwh := kwhCumac * input.PrimeBonification / 1000
		totalMwh := perUnitMwh * line.Quantity * multiplier
		perUnitEur := perUnitMwh * input.Delegate.PriceEurPerMwh
		totalEur := totalMwh * input.Delegate.PriceEurPerMwh

		result.Products = append(result.Products, PrimeCeeProductResult{
			ProductID:              product.ID,
			Code:                   product.Code,
			Name:                   product.Name,
			Quantity:               line.Quantity,
			Multiplier:             multiplier,
			KwhCumac:               kwhCumac,
			ValorisationPerUnitMwh: perUnitMwh,
			ValorisationTotalMwh:   totalMwh,
			ValorisationPerUnitEur: perUnitEur,
			ValorisationTotalEur:   totalEur,
		})
		result.TotalPrime += totalEur
		result.TotalValorisationMwh += totalMwh
	}

	if eligible == 0 {
		return nil
	}
	return result
}
