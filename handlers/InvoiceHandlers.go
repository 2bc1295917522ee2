package handlers

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/logger"
	"backend/repository"
	"backend/services"
)

// GenerateInvoiceHandler creates a draft invoice for a project
// @Summary Generate project invoice
// @Description Create one draft invoice for the project. The project must be in an invoicing-compatible status and carry at least one quote; nothing is written when a precondition fails.
// @Tags Invoices
// @Produce json
// @Param Authorization header string true "Session ID"
// @Param id path string true "Project ID"
// @Success 201 {object} models.Invoice
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/projects/{id}/invoice [post]
func GenerateInvoiceHandler(db *sql.DB, store *repository.GormStore, invoices *services.InvoiceService, emails *services.EmailService) gin.HandlerFunc {
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
		invoice, err := invoices.GenerateInvoiceForProject(ctx, orgID, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}

		// Client notification is best effort; a mail failure never undoes
		// the invoice.
		project, projErr := store.GetProject(ctx, orgID, invoice.ProjectID)
		if projErr == nil && project.ClientEmail != "" {
			settings, _ := store.GetSettings(ctx, orgID)
			if mailErr := emails.SendTemplatedEmail("invoice_created", services.EmailData{
				Email:       project.ClientEmail,
				ClientName:  project.ClientName,
				ProjectRef:  project.Reference,
				InvoiceRef:  invoice.Reference,
				Amount:      fmt.Sprintf("%.2f", invoice.Amount),
				CompanyName: settings.CompanyName,
			}); mailErr != nil {
				logger.Warn("invoice notification for %s not sent: %v", invoice.Reference, mailErr)
			}
		}

		c.JSON(http.StatusCreated, invoice)
	}
}

// ListProjectInvoicesHandler lists a project's invoices
// @Summary List project invoices
// @Description Return every invoice generated for the project
// @Tags Invoices
// @Produce json
// @Param Authorization header string true "Session ID"
// @Param id path string true "Project ID"
// @Success 200 {array} models.Invoice
// @Failure 401 {object} models.ErrorResponse
// @Router /api/projects/{id}/invoices [get]
func ListProjectInvoicesHandler(db *sql.DB, store *repository.GormStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := requireSession(c, db)
		if !ok {
			return
		}
		orgID, ok := resolveOrgID(c, user)
		if !ok {
			return
		}

		invoices, err := store.ListInvoicesByProject(c.Request.Context(), orgID, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, invoices)
	}
}
