package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"backend/models"
	"backend/repository"
	"backend/services"
)

// RentabilityUpdateRequest carries the chantier cost fields edited in the
// profitability panel. Every numeric field is coerced defensively by the
// calculator, so a malformed value degrades to 0 instead of failing.
type RentabilityUpdateRequest struct {
	Revenue             float64                 `json:"revenue"`
	CoutMainOeuvreM2HT  float64                 `json:"cout_main_oeuvre_m2_ht"`
	CoutIsolationM2     float64                 `json:"cout_isolation_m2"`
	IsolationUtiliseeM2 float64                 `json:"isolation_utilisee_m2"`
	SurfaceFactureeM2   float64                 `json:"surface_facturee_m2"`
	NombreLuminaires    float64                 `json:"nombre_luminaires"`
	HasCommission       bool                    `json:"has_commission"`
	MontantCommission   float64                 `json:"montant_commission"`
	AdditionalCosts     []models.AdditionalCost `json:"additional_costs"`
	TravauxChoice       string                  `json:"travaux_choice"`
	TravauxDescription  string                  `json:"travaux_description"`
	TravauxMontant      float64                 `json:"travaux_montant"`
	TravauxFinanced     bool                    `json:"travaux_financed"`
	IsLighting          bool                    `json:"is_lighting"`
}

// RentabilityUpdateResponse returns the persisted chantier together with the
// recomputed margin figures.
type RentabilityUpdateResponse struct {
	Chantier    models.Chantier            `json:"chantier"`
	Rentability services.RentabilityResult `json:"rentability"`
}

// ChantierCreateRequest carries the fields of a new chantier. Reference is
// generated server-side; an omitted address falls back to the project's.
type ChantierCreateRequest struct {
	Address       string     `json:"address"`
	City          string     `json:"city"`
	PostalCode    string     `json:"postal_code"`
	PlannedStart  *time.Time `json:"planned_start"`
	PlannedEnd    *time.Time `json:"planned_end"`
	Revenue       float64    `json:"revenue"`
	Subcontractor string     `json:"subcontractor"`
	IsLighting    bool       `json:"is_lighting"`
}

// CreateChantierHandler creates a chantier under a project
// @Summary Create chantier
// @Description Create a chantier for the project in status A_PLANIFIER with a generated reference
// @Tags Chantiers
// @Accept json
// @Produce json
// @Param Authorization header string true "Session ID"
// @Param id path string true "Project ID"
// @Param request body ChantierCreateRequest true "Chantier fields"
// @Success 201 {object} models.Chantier
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/projects/{id}/chantiers [post]
func CreateChantierHandler(db *sql.DB, store *repository.GormStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := requireSession(c, db)
		if !ok {
			return
		}
		orgID, ok := resolveOrgID(c, user)
		if !ok {
			return
		}

		var req ChantierCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "invalid chantier payload"})
			return
		}

		ctx := c.Request.Context()
		project, err := store.GetProject(ctx, orgID, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}

		if req.Address == "" {
			req.Address = project.Address
			req.City = project.City
			req.PostalCode = project.PostalCode
		}

		now := time.Now()
		chantier := &models.Chantier{
			ID:            uuid.NewString(),
			OrgID:         orgID,
			ProjectID:     project.ID,
			Reference:     repository.GenerateChantierReference(),
			Address:       req.Address,
			City:          req.City,
			PostalCode:    req.PostalCode,
			Status:        models.StatusAPlanifier,
			PlannedStart:  req.PlannedStart,
			PlannedEnd:    req.PlannedEnd,
			Revenue:       req.Revenue,
			TravauxChoice: models.TravauxChoiceNA,
			Subcontractor: req.Subcontractor,
			IsLighting:    req.IsLighting,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := store.CreateChantier(ctx, chantier); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, chantier)
	}
}

// UpdateChantierStatusHandler moves a chantier to a new status
// @Summary Update chantier status
// @Description Apply a forward-only status transition to a chantier, then pull the parent project forward when the chantier is now the most advanced one.
// @Tags Chantiers
// @Accept json
// @Produce json
// @Param Authorization header string true "Session ID"
// @Param id path string true "Chantier ID"
// @Param request body models.StatusUpdateRequest true "Target status"
// @Success 200 {object} models.Chantier
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/chantiers/{id}/status [put]
func UpdateChantierStatusHandler(db *sql.DB, sync *services.StatusSyncService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := requireSession(c, db)
		if !ok {
			return
		}
		orgID, ok := resolveOrgID(c, user)
		if !ok {
			return
		}

		var req models.StatusUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "status is required"})
			return
		}

		chantier, err := sync.UpdateChantierStatus(c.Request.Context(), orgID, c.Param("id"), req.Status)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, chantier)
	}
}

// GetChantierHandler returns one chantier
// @Summary Get chantier
// @Description Return one chantier by id, scoped to the caller's organization
// @Tags Chantiers
// @Produce json
// @Param Authorization header string true "Session ID"
// @Param id path string true "Chantier ID"
// @Success 200 {object} models.Chantier
// @Failure 404 {object} models.ErrorResponse
// @Router /api/chantiers/{id} [get]
func GetChantierHandler(db *sql.DB, store *repository.GormStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := requireSession(c, db)
		if !ok {
			return
		}
		orgID, ok := resolveOrgID(c, user)
		if !ok {
			return
		}

		chantier, err := store.GetChantier(c.Request.Context(), orgID, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, chantier)
	}
}

// UpdateChantierRentabilityHandler persists chantier costs and recomputes margins
// @Summary Update chantier rentability inputs
// @Description Persist the chantier's cost fields and return the recomputed margin figures
// @Tags Chantiers
// @Accept json
// @Produce json
// @Param Authorization header string true "Session ID"
// @Param id path string true "Chantier ID"
// @Param request body RentabilityUpdateRequest true "Cost fields"
// @Success 200 {object} RentabilityUpdateResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/chantiers/{id}/rentability [put]
func UpdateChantierRentabilityHandler(db *sql.DB, store *repository.GormStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := requireSession(c, db)
		if !ok {
			return
		}
		orgID, ok := resolveOrgID(c, user)
		if !ok {
			return
		}

		var req RentabilityUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "invalid rentability payload"})
			return
		}

		ctx := c.Request.Context()
		chantier, err := store.GetChantier(ctx, orgID, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}

		chantier.Revenue = req.Revenue
		chantier.CoutMainOeuvreM2HT = req.CoutMainOeuvreM2HT
		chantier.CoutIsolationM2 = req.CoutIsolationM2
		chantier.IsolationUtiliseeM2 = req.IsolationUtiliseeM2
		chantier.SurfaceFactureeM2 = req.SurfaceFactureeM2
		chantier.NombreLuminaires = req.NombreLuminaires
		chantier.HasCommission = req.HasCommission
		chantier.MontantCommission = req.MontantCommission
		chantier.AdditionalCosts = req.AdditionalCosts
		chantier.TravauxChoice = req.TravauxChoice
		chantier.TravauxDescription = req.TravauxDescription
		chantier.TravauxMontant = req.TravauxMontant
		chantier.TravauxFinanced = req.TravauxFinanced
		chantier.IsLighting = req.IsLighting

		if err := store.UpdateChantierCosts(ctx, orgID, chantier); err != nil {
			respondError(c, err)
			return
		}

		result := services.CalculateRentability(services.RentabilityInputFromChantier(*chantier))
		c.JSON(http.StatusOK, RentabilityUpdateResponse{
			Chantier:    *chantier,
			Rentability: result,
		})
	}
}
