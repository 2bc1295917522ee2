package services

import (
	"backend/apperrors"
	"backend/models"
)

// EnsureProjectStatusTransition validates a proposed project status change.
// Rules: next must be a known status; current, when set, must be known; the
// change must never regress in the canonical order. Equal current/next is an
// idempotent re-save and is accepted. An empty current is the creation case
// and is accepted for any known next.
func EnsureProjectStatusTransition(current, next string) error {
	nextIdx, ok := StatusIndex(next)
	if !ok {
		return apperrors.Validation("statut inconnu: %q", next)
	}
	if current == "" {
		return nil
	}
	currentIdx, ok := StatusIndex(current)
	if !ok {
		return apperrors.Validation("statut actuel inconnu: %q", current)
	}
	if nextIdx < currentIdx {
		return apperrors.Validation("transition de statut interdite: %s -> %s (retour en arrière)", current, next)
	}
	return nil
}

// EnsureChantierStatusTransition is the chantier analog of the project
// guard. The stored current status may still be a legacy value; it is
// normalized before comparison so historical rows never crash the guard.
// Only next is strictly checked against the canonical vocabulary.
func EnsureChantierStatusTransition(current, next string) error {
	nextIdx, ok := StatusIndex(next)
	if !ok {
		return apperrors.Validation("statut chantier inconnu: %q", next)
	}
	if current == "" {
		return nil
	}
	normalized, ok := NormalizeChantierStatus(current)
	if !ok {
		// Legacy-of-legacy value used only as history: accept the move.
		return nil
	}
	currentIdx, _ := StatusIndex(normalized)
	if nextIdx < currentIdx {
		return apperrors.Validation("transition de statut chantier interdite: %s -> %s", current, next)
	}
	return nil
}

// EnsureProjectStatusNotBehindChantiers rejects a manual project status edit
// that would put the project strictly behind its most advanced chantier.
// System-triggered syncs never call this; they only ever advance.
func EnsureProjectStatusNotBehindChantiers(next string, chantiers []models.Chantier) error {
	floor := DeriveProjectStatusFromChantiers(chantiers)
	if floor == "" {
		return nil
	}
	nextIdx, ok := StatusIndex(next)
	if !ok {
		return apperrors.Validation("statut inconnu: %q", next)
	}
	floorIdx, _ := StatusIndex(floor)
	if nextIdx < floorIdx {
		return apperrors.Validation("le statut projet %s serait en retard sur ses chantiers (%s)", next, floor)
	}
	return nil
}
