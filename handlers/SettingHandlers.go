package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/models"
	"backend/repository"
)

// GetSettingsHandler returns the organization settings
// @Summary Get organization settings
// @Description Return the caller organization's settings, or the documented defaults when none are saved yet
// @Tags Settings
// @Produce json
// @Param Authorization header string true "Session ID"
// @Success 200 {object} models.OrganizationSettings
// @Failure 401 {object} models.ErrorResponse
// @Router /api/settings [get]
func GetSettingsHandler(db *sql.DB, store *repository.GormStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := requireSession(c, db)
		if !ok {
			return
		}
		orgID, ok := resolveOrgID(c, user)
		if !ok {
			return
		}

		settings, err := store.GetSettings(c.Request.Context(), orgID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

// UpdateSettingsHandler saves the organization settings
// @Summary Update organization settings
// @Description Upsert the caller organization's settings. A negative prime bonification is clamped to 0.
// @Tags Settings
// @Accept json
// @Produce json
// @Param Authorization header string true "Session ID"
// @Param request body models.OrganizationSettings true "Settings"
// @Success 200 {object} models.OrganizationSettings
// @Failure 400 {object} models.ErrorResponse
// @Router /api/settings [put]
func UpdateSettingsHandler(db *sql.DB, store *repository.GormStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := requireSession(c, db)
		if !ok {
			return
		}
		orgID, ok := resolveOrgID(c, user)
		if !ok {
			return
		}

		var settings models.OrganizationSettings
		if err := c.ShouldBindJSON(&settings); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "invalid settings payload"})
			return
		}
		settings.OrgID = orgID

		ctx := c.Request.Context()
		if err := store.SaveSettings(ctx, settings); err != nil {
			respondError(c, err)
			return
		}

		saved, err := store.GetSettings(ctx, orgID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, saved)
	}
}
