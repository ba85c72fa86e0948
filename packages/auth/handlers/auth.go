package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Zattox/RavensPedia-sub000/config"
	"github.com/Zattox/RavensPedia-sub000/packages/auth/middleware"
	"github.com/Zattox/RavensPedia-sub000/packages/auth/models"
	"github.com/Zattox/RavensPedia-sub000/packages/auth/utils"
	"github.com/Zattox/RavensPedia-sub000/packages/core/apperrors"
)

type AuthHandler struct {
	DB     *gorm.DB
	Tokens *utils.TokenManager
	Config *config.Settings
}

func NewAuthHandler(db *gorm.DB, tokens *utils.TokenManager, cfg *config.Settings) *AuthHandler {
	return &AuthHandler{
		DB:     db,
		Tokens: tokens,
		Config: cfg,
	}
}

func (h *AuthHandler) setTokenCookies(c *gin.Context, pair *utils.TokenPair) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AccessTokenCookie, pair.AccessToken,
		h.Config.AccessTokenMinutes*60, "/", "", true, false)
	c.SetCookie(middleware.RefreshTokenCookie, pair.RefreshToken,
		h.Config.RefreshTokenDays*24*3600, "/", "", true, false)
}

func (h *AuthHandler) clearTokenCookies(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", true, false)
	c.SetCookie(middleware.RefreshTokenCookie, "", -1, "/", "", true, false)
}

func respondError(c *gin.Context, err error) {
	c.JSON(apperrors.Status(err), gin.H{"error": apperrors.Message(err)})
}

// @Summary User Registration
// @Description Register a new user and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param user body models.RegisterRequest true "User registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/register/ [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.User
	if err := h.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		respondError(c, apperrors.Conflict("User %s already exists", req.Email))
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	user := models.User{
		Email:    req.Email,
		Password: hashedPassword,
		Role:     models.RoleUser,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		respondError(c, err)
		return
	}

	pair, err := h.Tokens.GeneratePair(h.DB, user.ID, uuid.NewString())
	if err != nil {
		respondError(c, err)
		return
	}
	h.setTokenCookies(c, pair)

	c.JSON(http.StatusCreated, gin.H{
		"user": user,
		"tokens": models.TokenPairResponse{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
			TokenType:    "Bearer",
		},
	})
}

// @Summary User Login
// @Description Login with email and password, starting a fresh session
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "User login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login/ [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := h.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		respondError(c, apperrors.Unauthorized("Wrong email or password"))
		return
	}
	if !utils.CheckPassword(req.Password, user.Password) {
		respondError(c, apperrors.Unauthorized("Wrong email or password"))
		return
	}

	// Each login opens its own session under a fresh device id.
	pair, err := h.Tokens.GeneratePair(h.DB, user.ID, uuid.NewString())
	if err != nil {
		respondError(c, err)
		return
	}
	h.setTokenCookies(c, pair)

	c.JSON(http.StatusOK, gin.H{
		"user": user,
		"tokens": models.TokenPairResponse{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
			TokenType:    "Bearer",
		},
	})
}

// @Summary Refresh Token Pair
// @Description Rotate the session's access/refresh pair
// @Tags auth
// @Produce json
// @Success 200 {object} models.TokenPairResponse
// @Failure 401 {object} map[string]string
// @Router /auth/refresh/ [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(middleware.RefreshTokenCookie)
	if err != nil || refreshToken == "" {
		respondError(c, apperrors.Unauthorized("Authorization required"))
		return
	}

	pair, err := h.Tokens.Refresh(h.DB, refreshToken)
	if err != nil {
		respondError(c, err)
		return
	}
	h.setTokenCookies(c, pair)

	c.JSON(http.StatusOK, models.TokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "Bearer",
	})
}

// @Summary Logout
// @Description Revoke the session's tokens and clear the cookies
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/logout/ [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	revoked := 0
	if accessToken, ok := middleware.ExtractAccessToken(c); ok {
		if claims, err := h.Tokens.Parse(accessToken); err == nil {
			if err := utils.RevokeByJTI(h.DB, claims.ID); err == nil {
				revoked++
			}
		}
	}
	if refreshToken, err := c.Cookie(middleware.RefreshTokenCookie); err == nil && refreshToken != "" {
		if claims, err := h.Tokens.Parse(refreshToken); err == nil {
			if err := utils.RevokeByJTI(h.DB, claims.ID); err == nil {
				revoked++
			}
		}
	}

	h.clearTokenCookies(c)
	if revoked == 0 {
		respondError(c, apperrors.Unauthorized("Tokens not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// @Summary Current User
// @Description Get the authenticated user's profile
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string
// @Router /auth/me/ [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		respondError(c, apperrors.Unauthorized("Authorization required"))
		return
	}

	var user models.User
	if err := h.DB.First(&user, userID).Error; err != nil {
		respondError(c, apperrors.Unauthorized("User not found"))
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary Change User Role
// @Description Grant USER or ADMIN to another user (super admin only)
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.ChangeRoleRequest true "Role change request"
// @Success 200 {object} models.User
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/change_user_role/ [patch]
func (h *AuthHandler) ChangeUserRole(c *gin.Context) {
	var req models.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.AssignableRole(req.NewRole) {
		respondError(c, apperrors.BadInput("The new_role field must be one of USER, ADMIN"))
		return
	}

	currentUserID, _ := middleware.GetUserID(c)

	var target models.User
	if err := h.DB.Where("email = ?", req.Email).First(&target).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, apperrors.NotFound("User %s not found", req.Email))
			return
		}
		respondError(c, err)
		return
	}
	if target.ID == currentUserID {
		respondError(c, apperrors.Forbidden("Cannot change your own role"))
		return
	}

	if err := h.DB.Model(&target).Update("role", req.NewRole).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, target)
}
