package services

import (
	"testing"

	"backend/apperrors"
	"backend/models"
)

func TestEnsureProjectStatusTransition(t *testing.T) {
	tests := []struct {
		name    string
		current string
		next    string
		wantErr bool
	}{
		{"forward move", models.StatusNouveau, models.StatusEtude, false},
		{"big forward jump", models.StatusNouveau, models.StatusCloture, false},
		{"idempotent re-save", models.StatusEnCours, models.StatusEnCours, false},
		{"creation with empty current", "", models.StatusDevisEnvoye, false},
		{"regression rejected", models.StatusLivre, models.StatusEnCours, true},
		{"one-step regression rejected", models.StatusEtude, models.StatusNouveau, true},
		{"unknown next rejected", models.StatusNouveau, "PAS_UN_STATUT", true},
		{"unknown current rejected", "PAS_UN_STATUT", models.StatusEtude, true},
		{"empty next rejected", models.StatusNouveau, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := EnsureProjectStatusTransition(tt.current, tt.next)
			if (err != nil) != tt.wantErr {
				t.Fatalf("EnsureProjectStatusTransition(%q, %q) error = %v, wantErr %v", tt.current, tt.next, err, tt.wantErr)
			}
			if err != nil && !apperrors.IsValidation(err) {
				t.Errorf("expected a validation error, got %v", err)
			}
		})
	}
}

func TestProjectTransitionMonotonicityExhaustive(t *testing.T) {
	all := AllStatuses()
	for i, current := range all {
		for j, next := range all {
			err := EnsureProjectStatusTransition(current, next)
			if j < i && err == nil {
				t.Errorf("%s -> %s is a regression and must fail", current, next)
			}
			if j >= i && err != nil {
				t.Errorf("%s -> %s is forward and must pass, got %v", current, next, err)
			}
		}
	}
}

func TestEnsureChantierStatusTransition(t *testing.T) {
	tests := []struct {
		name    string
		current string
		next    string
		wantErr bool
	}{
		{"forward move", models.StatusChantierPlanifie, models.StatusChantierEnCours, false},
		{"legacy current translated", "EN_PREPARATION", models.StatusChantierEnCours, false},
		{"legacy terminal blocks regression", "TERMINE", models.StatusEnCours, true},
		{"unrecognized current accepted as history", "VIEUX_STATUT", models.StatusEnCours, false},
		{"regression rejected", models.StatusChantierTermine, models.StatusChantierEnCours, true},
		{"unknown next rejected", models.StatusEnCours, "PAS_UN_STATUT", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := EnsureChantierStatusTransition(tt.current, tt.next)
			if (err != nil) != tt.wantErr {
				t.Fatalf("EnsureChantierStatusTransition(%q, %q) error = %v, wantErr %v", tt.current, tt.next, err, tt.wantErr)
			}
		})
	}
}

func TestEnsureProjectStatusNotBehindChantiers(t *testing.T) {
	chantiers := []models.Chantier{
		{Status: models.StatusChantierPlanifie},
		{Status: models.StatusChantierTermine},
		{Status: "EN_PREPARATION"},
	}

	if err := EnsureProjectStatusNotBehindChantiers(models.StatusLivre, chantiers); err != nil {
		t.Errorf("status at the floor or above should pass, got %v", err)
	}
	if err := EnsureProjectStatusNotBehindChantiers(models.StatusChantierTermine, chantiers); err != nil {
		t.Errorf("status equal to the floor should pass, got %v", err)
	}
	if err := EnsureProjectStatusNotBehindChantiers(models.StatusEnCours, chantiers); err == nil {
		t.Error("status behind the most advanced chantier should be rejected")
	}
	if err := EnsureProjectStatusNotBehindChantiers(models.StatusNouveau, nil); err != nil {
		t.Errorf("no chantiers means no floor, got %v", err)
	}
}
