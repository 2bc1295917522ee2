package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"backend/models"
	"backend/storage"
	"backend/utils"
)

// CreateUserRequest carries the fields of a new user account.
type CreateUserRequest struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

// RefreshTokenRequest carries the refresh token issued at login.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshTokenResponse returns the freshly minted access token.
type RefreshTokenResponse struct {
	AccessToken string `json:"access_token"`
}

// CreateUserHandler creates a user in the caller's organization
// @Summary Create user
// @Description Create a user account in the caller's organization. Admin only.
// @Tags Users
// @Accept json
// @Produce json
// @Param Authorization header string true "Session ID"
// @Param request body CreateUserRequest true "User fields"
// @Success 201 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Router /api/users [post]
func CreateUserHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := requireSession(c, db)
		if !ok {
			return
		}
		if user.Role != "admin" {
			utils.ErrorResponse(c, "droits insuffisants", http.StatusForbidden)
			return
		}

		var req CreateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, "email and password are required", http.StatusBadRequest)
			return
		}

		hashed, err := utils.HashPassword(req.Password)
		if err != nil {
			respondError(c, err)
			return
		}

		role := req.Role
		if role == "" {
			role = "commercial"
		}
		now := time.Now()
		if err := storage.CreateUser(db, &models.User{
			ID:        uuid.NewString(),
			OrgID:     user.OrgID,
			Email:     req.Email,
			Password:  hashed,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Role:      role,
			CreatedAt: now,
			UpdatedAt: now,
		}); err != nil {
			respondError(c, err)
			return
		}
		utils.SuccessResponse(c, "utilisateur créé", http.StatusCreated)
	}
}

// RefreshTokenHandler exchanges a refresh token for a new access token
// @Summary Refresh access token
// @Description Validate the refresh token against its session and issue a new short-lived access token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} RefreshTokenResponse
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Router /api/refresh_token [post]
func RefreshTokenHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RefreshTokenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, "refresh_token is required", http.StatusBadRequest)
			return
		}

		token, err := utils.ValidateJWT(req.RefreshToken)
		if err != nil {
			utils.ErrorResponse(c, "invalid refresh token", http.StatusUnauthorized)
			return
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["type"] != "refresh" {
			utils.ErrorResponse(c, "invalid refresh token", http.StatusUnauthorized)
			return
		}
		sessionID, _ := claims["sessionId"].(string)
		email, _ := claims["email"].(string)

		// The session must still be open; a logout revokes the refresh token.
		user, err := storage.GetUserBySessionID(db, sessionID)
		if err != nil || user.Email != email {
			utils.ErrorResponse(c, "session expired", http.StatusUnauthorized)
			return
		}

		accessToken, err := utils.GenerateJWT(user.Email)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, RefreshTokenResponse{AccessToken: accessToken})
	}
}
