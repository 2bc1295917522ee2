package services

import (
	"math"
	"strconv"
	"strings"

	"backend/apperrors"
	"backend/models"
)

// CoerceNumber turns an arbitrary dynamic-parameter value into a float64.
// Invalid, non-numeric and non-finite values all become 0 so a malformed
// form value can never push NaN into persisted fields.
func CoerceNumber(value interface{}) float64 {
	var n float64
	switch v := value.(type) {
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int64:
		n = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(v, ",", ".")), 64)
		if err != nil {
			return 0
		}
		n = parsed
	case bool:
		if v {
			n = 1
		}
	default:
		return 0
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// ValidateParams checks a key→value map against a product's declared field
// list. Unknown keys are rejected, select values must be one of the declared
// options, and missing fields fall back to their declared default. The
// returned map only ever contains declared fields.
func ValidateParams(schema []models.ParamField, values map[string]interface{}) (map[string]interface{}, error) {
	declared := make(map[string]models.ParamField, len(schema))
	for _, f := range schema {
		declared[f.Name] = f
	}
	for name := range values {
		if _, ok := declared[name]; !ok {
			return nil, apperrors.Validation("paramètre inconnu: %q", name)
		}
	}

	out := make(map[string]interface{}, len(schema))
	for _, f := range schema {
		v, present := values[f.Name]
		if !present || v == nil {
			if f.Required && f.Default == nil {
				return nil, apperrors.Validation("paramètre requis manquant: %q", f.Name)
			}
			if f.Default != nil {
				out[f.Name] = f.Default
			}
			continue
		}
		switch f.Kind {
		case models.ParamKindNumber:
			out[f.Name] = CoerceNumber(v)
		case models.ParamKindCheckbox:
			b, ok := v.(bool)
			if !ok {
				b = CoerceNumber(v) != 0
			}
			out[f.Name] = b
		case models.ParamKindSelect:
			s, ok := v.(string)
			if !ok {
				return nil, apperrors.Validation("paramètre %q: valeur de liste invalide", f.Name)
			}
			if len(f.Options) > 0 && !containsOption(f.Options, s) {
				return nil, apperrors.Validation("paramètre %q: option inconnue %q", f.Name, s)
			}
			out[f.Name] = s
		default: // text, textarea
			if s, ok := v.(string); ok {
				out[f.Name] = s
			} else {
				return nil, apperrors.Validation("paramètre %q: texte attendu", f.Name)
			}
		}
	}
	return out, nil
}

// NormalizeProductLines validates every line's dynamic params against the
// declared schema of its catalog entry and replaces them with the normalized
// map. A line referencing an unknown product id is rejected here, at the
// boundary, so the calculators only ever see resolvable lines with declared
// fields.
func NormalizeProductLines(lines []models.ProductLine, products map[string]models.Product) ([]models.ProductLine, error) {
	if len(lines) == 0 {
		return lines, nil
	}
	out := make([]models.ProductLine, 0, len(lines))
	for _, line := range lines {
		product, ok := products[line.ProductID]
		if !ok {
			return nil, apperrors.Validation("produit inconnu: %q", line.ProductID)
		}
		params, err := ValidateParams(product.ParamsSchema, line.Params)
		if err != nil {
			return nil, err
		}
		line.Params = params
		out = append(out, line)
	}
	return out, nil
}

func containsOption(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}

// ResolveMultiplier extracts the numeric multiplier (area in m², luminaire
// count, …) for a product line: the first number-kind field of the declared
// schema, coerced from the line's params, falling back to the field default.
// A schema with no number field yields 1 (the line counts by quantity only);
// a declared number field with an absent or invalid value yields 0.
func ResolveMultiplier(product models.Product, line models.ProductLine) float64 {
	for _, f := range product.ParamsSchema {
		if f.Kind != models.ParamKindNumber {
			continue
		}
		if v, ok := line.Params[f.Name]; ok {
			return CoerceNumber(v)
		}
		if f.Default != nil {
			return CoerceNumber(f.Default)
		}
		return 0
	}
	return 1
}
