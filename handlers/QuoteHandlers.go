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

// QuoteCreateRequest carries the fields of a new quote.
type QuoteCreateRequest struct {
	Amount float64 `json:"amount" binding:"required"`
	Notes  string  `json:"notes"`
}

// CreateQuoteHandler creates a quote under a project
// @Summary Create quote
// @Description Create a draft quote for the project with a generated reference
// @Tags Quotes
// @Accept json
// @Produce json
// @Param Authorization header string true "Session ID"
// @Param id path string true "Project ID"
// @Param request body QuoteCreateRequest true "Quote fields"
// @Success 201 {object} models.Quote
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/projects/{id}/quotes [post]
func CreateQuoteHandler(db *sql.DB, store *repository.GormStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := requireSession(c, db)
		if !ok {
			return
		}
		orgID, ok := resolveOrgID(c, user)
		if !ok {
			return
		}

		var req QuoteCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "a positive amount is required"})
			return
		}

		ctx := c.Request.Context()
		project, err := store.GetProject(ctx, orgID, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}

		now := time.Now()
		quote := &models.Quote{
			ID:        uuid.NewString(),
			OrgID:     orgID,
			ProjectID: project.ID,
			Reference: repository.GenerateQuoteReference(),
			Amount:    req.Amount,
			Status:    models.QuoteStatusBrouillon,
			Notes:     req.Notes,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := store.CreateQuote(ctx, quote); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, quote)
	}
}

// SendQuoteHandler emails a quote to the project's client
// @Summary Send quote to client
// @Description Email the quote notification to the client attached to the project and mark the quote ENVOYE
// @Tags Quotes
// @Produce json
// @Param Authorization header string true "Session ID"
// @Param id path string true "Quote ID"
// @Success 200 {object} services.QuoteSendResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/quotes/{id}/send [post]
func SendQuoteHandler(db *sql.DB, quotes *services.QuoteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := requireSession(c, db)
		if !ok {
			return
		}
		orgID, ok := resolveOrgID(c, user)
		if !ok {
			return
		}

		result, err := quotes.SendQuoteToClient(c.Request.Context(), orgID, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
