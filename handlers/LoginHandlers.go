package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"backend/models"
	"backend/storage"
	"backend/utils"
)

const sessionLifetime = 15 * 24 * time.Hour

// LoginHandler handles user authentication
// @Summary Login user
// @Description Authenticate with email and password and open a session
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/login [post]
func LoginHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "email and password are required"})
			return
		}

		user, err := storage.GetUserByEmail(db, req.Email)
		if err != nil || !utils.ValidatePassword(user.Password, req.Password) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: "invalid credentials"})
			return
		}

		sessionID := uuid.NewString()
		accessToken, err := utils.GenerateJWT(user.Email)
		if err != nil {
			respondError(c, err)
			return
		}
		refreshToken, err := utils.GenerateRefreshToken(user.Email, sessionID)
		if err != nil {
			respondError(c, err)
			return
		}

		now := time.Now()
		session := &models.Session{
			UserID:                user.ID,
			OrgID:                 user.OrgID,
			SessionID:             sessionID,
			HostName:              c.Request.UserAgent(),
			IPAddress:             c.ClientIP(),
			Timestamp:             now,
			ExpiresAt:             now.Add(sessionLifetime),
			RefreshToken:          refreshToken,
			RefreshTokenExpiresAt: now.Add(sessionLifetime),
		}
		if err := storage.SaveSession(db, session, true); err != nil {
			respondError(c, err)
			return
		}

		user.Password = ""
		c.JSON(http.StatusOK, models.LoginResponse{
			SessionID:    sessionID,
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			User:         *user,
		})
	}
}

// ValidateSessionHandler checks whether a session id is still valid
// @Summary Validate session
// @Description Return the user attached to the Authorization session id
// @Tags Authentication
// @Produce json
// @Param Authorization header string true "Session ID"
// @Success 200 {object} models.User
// @Failure 401 {object} models.ErrorResponse
// @Router /api/validate_session [get]
func ValidateSessionHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := requireSession(c, db)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// LogoutHandler closes the current session
// @Summary Logout user
// @Description Delete the session identified by the Authorization header
// @Tags Authentication
// @Produce json
// @Param Authorization header string true "Session ID"
// @Success 200 {object} models.MessageResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/logout [post]
func LogoutHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := requireSession(c, db); !ok {
			return
		}
		if err := storage.DeleteSession(db, c.GetHeader("Authorization")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.MessageResponse{Message: "logged out"})
	}
}
