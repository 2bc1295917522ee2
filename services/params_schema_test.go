package services

import (
	"math"
	"testing"

	"backend/models"
)

func TestCoerceNumber(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want float64
	}{
		{"float64", 12.5, 12.5},
		{"int", 7, 7},
		{"string", "42", 42},
		{"string with comma decimal", "3,5", 3.5},
		{"string with spaces", " 8 ", 8},
		{"garbage string", "abc", 0},
		{"bool true", true, 1},
		{"bool false", false, 0},
		{"nil", nil, 0},
		{"NaN", math.NaN(), 0},
		{"infinity", math.Inf(1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CoerceNumber(tt.in); got != tt.want {
				t.Errorf("CoerceNumber(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidateParams(t *testing.T) {
	schema := []models.ParamField{
		{Name: "surface_m2", Kind: models.ParamKindNumber, Required: true},
		{Name: "usage", Kind: models.ParamKindSelect, Options: []string{"residentiel", "tertiaire"}, Default: "residentiel"},
		{Name: "commentaire", Kind: models.ParamKindTextarea},
	}

	t.Run("valid values coerced", func(t *testing.T) {
		out, err := ValidateParams(schema, map[string]interface{}{
			"surface_m2": "120,5",
			"usage":      "tertiaire",
		})
		if err != nil {
			t.Fatal(err)
		}
		if out["surface_m2"] != 120.5 {
			t.Errorf("surface = %v, want 120.5", out["surface_m2"])
		}
		if out["usage"] != "tertiaire" {
			t.Errorf("usage = %v", out["usage"])
		}
	})

	t.Run("default applies when absent", func(t *testing.T) {
		out, err := ValidateParams(schema, map[string]interface{}{"surface_m2": 10})
		if err != nil {
			t.Fatal(err)
		}
		if out["usage"] != "residentiel" {
			t.Errorf("usage default = %v", out["usage"])
		}
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		if _, err := ValidateParams(schema, map[string]interface{}{"surface_m2": 10, "intrus": 1}); err == nil {
			t.Error("expected a validation error")
		}
	})

	t.Run("missing required rejected", func(t *testing.T) {
		if _, err := ValidateParams(schema, map[string]interface{}{}); err == nil {
			t.Error("expected a validation error")
		}
	})

	t.Run("unknown select option rejected", func(t *testing.T) {
		if _, err := ValidateParams(schema, map[string]interface{}{"surface_m2": 10, "usage": "industriel"}); err == nil {
			t.Error("expected a validation error")
		}
	})
}

func TestNormalizeProductLines(t *testing.T) {
	catalog := map[string]models.Product{
		"prod-1": {ID: "prod-1", ParamsSchema: []models.ParamField{
			{Name: "surface_m2", Kind: models.ParamKindNumber, Required: true},
			{Name: "usage", Kind: models.ParamKindSelect, Options: []string{"residentiel", "tertiaire"}, Default: "residentiel"},
		}},
	}

	t.Run("params coerced and defaults filled", func(t *testing.T) {
		lines, err := NormalizeProductLines([]models.ProductLine{
			{ProductID: "prod-1", Quantity: 2, Params: map[string]interface{}{"surface_m2": "120,5"}},
		}, catalog)
		if err != nil {
			t.Fatal(err)
		}
		if lines[0].Params["surface_m2"] != 120.5 {
			t.Errorf("surface = %v, want 120.5", lines[0].Params["surface_m2"])
		}
		if lines[0].Params["usage"] != "residentiel" {
			t.Errorf("usage default = %v", lines[0].Params["usage"])
		}
	})

	t.Run("unknown product id rejected", func(t *testing.T) {
		_, err := NormalizeProductLines([]models.ProductLine{{ProductID: "nope"}}, catalog)
		if err == nil {
			t.Error("expected a validation error")
		}
	})

	t.Run("undeclared param rejected", func(t *testing.T) {
		_, err := NormalizeProductLines([]models.ProductLine{
			{ProductID: "prod-1", Params: map[string]interface{}{"surface_m2": 10, "intrus": 1}},
		}, catalog)
		if err == nil {
			t.Error("expected a validation error")
		}
	})

	t.Run("no lines passes through", func(t *testing.T) {
		lines, err := NormalizeProductLines(nil, catalog)
		if err != nil {
			t.Fatal(err)
		}
		if len(lines) != 0 {
			t.Errorf("lines = %v, want none", lines)
		}
	})
}

func TestResolveMultiplier(t *testing.T) {
	numberProduct := models.Product{ParamsSchema: []models.ParamField{
		{Name: "couleur", Kind: models.ParamKindText},
		{Name: "surface_m2", Kind: models.ParamKindNumber, Default: 25},
	}}

	t.Run("value from line params", func(t *testing.T) {
		got := ResolveMultiplier(numberProduct, models.ProductLine{Params: map[string]interface{}{"surface_m2": "50"}})
		if got != 50 {
			t.Errorf("multiplier = %v, want 50", got)
		}
	})

	t.Run("default when absent", func(t *testing.T) {
		got := ResolveMultiplier(numberProduct, models.ProductLine{})
		if got != 25 {
			t.Errorf("multiplier = %v, want 25", got)
		}
	})

	t.Run("invalid value degrades to 0", func(t *testing.T) {
		got := ResolveMultiplier(numberProduct, models.ProductLine{Params: map[string]interface{}{"surface_m2": "n/a"}})
		if got != 0 {
			t.Errorf("multiplier = %v, want 0", got)
		}
	})

	t.Run("no number field means count by quantity", func(t *testing.T) {
		textOnly := models.Product{ParamsSchema: []models.ParamField{{Name: "couleur", Kind: models.ParamKindText}}}
		if got := ResolveMultiplier(textOnly, models.ProductLine{}); got != 1 {
			t.Errorf("multiplier = %v, want 1", got)
		}
	})

	t.Run("no declared default and no value yields 0", func(t *testing.T) {
		noDefault := models.Product{ParamsSchema: []models.ParamField{{Name: "surface_m2", Kind: models.ParamKindNumber}}}
		if got := ResolveMultiplier(noDefault, models.ProductLine{}); got != 0 {
			t.Errorf("multiplier = %v, want 0", got)
		}
	})
}
