package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/apperrors"
	"backend/logger"
	"backend/models"
	"backend/storage"
)

// requireSession authenticates the request by its Authorization session id
// and returns the user. Writes the 401 response itself when the session is
// missing or invalid.
func requireSession(c *gin.Context, db *sql.DB) (*models.User, bool) {
	sessionID := c.GetHeader("Authorization")
	if sessionID == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: "Session ID required"})
		return nil, false
	}

	user, err := storage.GetUserBySessionID(db, sessionID)
	if err != nil || user == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: "Invalid session"})
		return nil, false
	}
	return user, true
}

// resolveOrgID returns the tenant id for the request: the X-Org-ID header
// when present (it must match the session's organization), otherwise the
// session's organization.
func resolveOrgID(c *gin.Context, user *models.User) (string, bool) {
	headerOrg := c.GetHeader("X-Org-ID")
	if headerOrg == "" {
		return user.OrgID, true
	}
	if headerOrg != user.OrgID {
		c.JSON(http.StatusForbidden, models.ErrorResponse{Message: "organization mismatch"})
		return "", false
	}
	return headerOrg, true
}

// respondError maps a service error to its HTTP status. Unexpected errors
// are logged and returned with a generic message so internals never leak.
func respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError && !apperrors.IsConfiguration(err) {
		logger.Error("unexpected error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(status, models.ErrorResponse{Message: "internal server error"})
		return
	}
	c.JSON(status, models.ErrorResponse{Message: err.Error()})
}
