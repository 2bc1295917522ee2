package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/apperrors"
	"backend/models"
	"backend/repository"
	"backend/services"
)

// RunBackupHandler exports the organization's data to its webhook
// @Summary Run backup export
// @Description Push every project of the organization to the configured webhook in fixed-size chunks. A partial failure is reported, never fatal.
// @Tags Backup
// @Produce json
// @Param Authorization header string true "Session ID"
// @Success 200 {object} services.BackupResult
// @Failure 400 {object} models.ErrorResponse
// @Router /api/organizations/backup/run [post]
func RunBackupHandler(db *sql.DB, store *repository.GormStore, backup *services.BackupService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := requireSession(c, db)
		if !ok {
			return
		}
		orgID, ok := resolveOrgID(c, user)
		if !ok {
			return
		}

		ctx := c.Request.Context()
		settings, err := store.GetSettings(ctx, orgID)
		if err != nil {
			respondError(c, err)
			return
		}
		if settings.BackupWebhookURL == "" {
			respondError(c, apperrors.Validation("aucune URL de webhook de sauvegarde configurée"))
			return
		}

		result, err := backup.ExportOrganizationBackup(ctx, orgID, settings.BackupWebhookURL, services.BackupOptions{})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// TestBackupWebhookHandler sends a ping to the configured webhook
// @Summary Test backup webhook
// @Description Validate the configured webhook URL and send a single ping payload
// @Tags Backup
// @Produce json
// @Param Authorization header string true "Session ID"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/organizations/backup/test [post]
func TestBackupWebhookHandler(db *sql.DB, store *repository.GormStore, backup *services.BackupService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := requireSession(c, db)
		if !ok {
			return
		}
		orgID, ok := resolveOrgID(c, user)
		if !ok {
			return
		}

		ctx := c.Request.Context()
		settings, err := store.GetSettings(ctx, orgID)
		if err != nil {
			respondError(c, err)
			return
		}
		if settings.BackupWebhookURL == "" {
			respondError(c, apperrors.Validation("aucune URL de webhook de sauvegarde configurée"))
			return
		}

		if err := backup.TestBackupWebhook(ctx, settings.BackupWebhookURL); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.MessageResponse{Message: "webhook joignable"})
	}
}
