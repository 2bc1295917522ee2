package services

import "backend/models"

// projectStatusOrder is the canonical total order over status codes. Both
// projects and chantiers draw from this single vocabulary; a transition is
// forward when the target index is >= the current index.
var projectStatusOrder = []string{
	models.StatusNouveau,
	models.StatusEtude,
	models.StatusDevisEnvoye,
	models.StatusDevisSigne,
	models.StatusAccepte,
	models.StatusVisiteTechnique,
	models.StatusAPlanifier,
	models.StatusChantierPlanifie,
	models.StatusEnCours,
	models.StatusChantierEnCours,
	models.StatusChantierTermine,
	models.StatusLivre,
	models.StatusFactureEnvoyee,
	models.StatusAH,
	models.StatusAAF,
	models.StatusCloture,
	models.StatusAnnule,
	models.StatusAbandonne,
}

var projectStatusIndex = buildStatusIndex(projectStatusOrder)

// legacyChantierStatusMap translates statuses from the retired
// chantier-specific vocabulary into the unified order. Applied only when a
// stored status is not already a known canonical value.
var legacyChantierStatusMap = map[string]string{
	"PLANIFIE":       models.StatusAPlanifier,
	"EN_PREPARATION": models.StatusAPlanifier,
	"EN_COURS":       models.StatusEnCours,
	"SUSPENDU":       models.StatusEnCours,
	"TERMINE":        models.StatusLivre,
	"LIVRE":          models.StatusLivre,
}

func buildStatusIndex(order []string) map[string]int {
	idx := make(map[string]int, len(order))
	for i, s := range order {
		idx[s] = i
	}
	return idx
}

// StatusIndex returns the position of a status in the canonical order.
func StatusIndex(status string) (int, bool) {
	i, ok := projectStatusIndex[status]
	return i, ok
}

// IsKnownStatus reports whether status is part of the canonical order.
func IsKnownStatus(status string) bool {
	_, ok := projectStatusIndex[status]
	return ok
}

// AllStatuses returns the canonical order, lowest first.
func AllStatuses() []string {
	out := make([]string, len(projectStatusOrder))
	copy(out, projectStatusOrder)
	return out
}

// NormalizeChantierStatus maps a stored chantier status onto the canonical
// vocabulary. Unknown canonical values go through the legacy translation
// table; a status known to neither is returned unchanged with ok=false so
// callers can treat it as history rather than crash on it.
func NormalizeChantierStatus(status string) (string, bool) {
	if IsKnownStatus(status) {
		return status, true
	}
	if mapped, ok := legacyChantierStatusMap[status]; ok {
		return mapped, true
	}
	return status, false
}
