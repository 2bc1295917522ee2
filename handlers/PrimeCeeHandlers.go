package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/models"
	"backend/repository"
	"backend/services"
)

// PrimeCeeEstimateRequest asks for a Prime CEE estimate of one project.
type PrimeCeeEstimateRequest struct {
	ProjectID string `json:"project_id" binding:"required"`
}

// EstimatePrimeCeeHandler computes the Prime CEE for a project
// @Summary Estimate Prime CEE
// @Description Compute the subsidized rebate for the project's selected products. When a precondition is missing (delegate, building type, eligible products) the response is an informational hint, not an error.
// @Tags PrimeCee
// @Accept json
// @Produce json
// @Param Authorization header string true "Session ID"
// @Param request body PrimeCeeEstimateRequest true "Project to estimate"
// @Success 200 {object} services.PrimeCeeResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/prime-cee/estimate [post]
func EstimatePrimeCeeHandler(db *sql.DB, store *repository.GormStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := requireSession(c, db)
		if !ok {
			return
		}
		orgID, ok := resolveOrgID(c, user)
		if !ok {
			return
		}

		var req PrimeCeeEstimateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "project_id is required"})
			return
		}

		ctx := c.Request.Context()
		project, err := store.GetProject(ctx, orgID, req.ProjectID)
		if err != nil {
			respondError(c, err)
			return
		}

		if project.DelegateID == "" {
			c.JSON(http.StatusOK, models.InfoResponse{Info: "Sélectionnez un délégataire pour calculer la prime CEE."})
			return
		}
		if project.BuildingType == "" {
			c.JSON(http.StatusOK, models.InfoResponse{Info: "Renseignez le type de bâtiment pour calculer la prime CEE."})
			return
		}

		delegate, err := store.GetDelegate(ctx, orgID, project.DelegateID)
		if err != nil {
			respondError(c, err)
			return
		}
		settings, err := store.GetSettings(ctx, orgID)
		if err != nil {
			respondError(c, err)
			return
		}

		productIDs := make([]string, 0, len(project.ProductLines))
		for _, line := range project.ProductLines {
			productIDs = append(productIDs, line.ProductID)
		}
		productMap, err := store.GetProductMap(ctx, orgID, productIDs)
		if err != nil {
			respondError(c, err)
			return
		}

		result := services.ComputePrimeCee(services.PrimeCeeInput{
			Products:          project.ProductLines,
			BuildingType:      project.BuildingType,
			Delegate:          delegate,
			PrimeBonification: settings.PrimeBonification,
			ProductMap:        productMap,
		})
		if result == nil {
			c.JSON(http.StatusOK, models.InfoResponse{Info: "Ajoutez au moins un produit éligible pour calculer la prime CEE."})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
