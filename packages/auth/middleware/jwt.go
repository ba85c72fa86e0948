package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Zattox/RavensPedia-sub000/packages/auth/models"
	"github.com/Zattox/RavensPedia-sub000/packages/auth/utils"
	"github.com/Zattox/RavensPedia-sub000/packages/core/apperrors"
)

// Cookie names shared with the auth handlers.
const (
	AccessTokenCookie  = "user_access_token"
	RefreshTokenCookie = "user_refresh_token"
)

// ExtractAccessToken reads the access token from the cookie, falling
// back to the Authorization header for non-browser clients.
func ExtractAccessToken(c *gin.Context) (string, bool) {
	if token, err := c.Cookie(AccessTokenCookie); err == nil && token != "" {
		return token, true
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer "), true
	}
	return "", false
}

// JWTMiddleware authenticates the request. A token must carry a valid
// signature and a live server-side record to pass.
func JWTMiddleware(tm *utils.TokenManager, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := ExtractAccessToken(c)
		if !ok {
			abort(c, apperrors.Unauthorized("Authorization required"))
			return
		}

		claims, err := tm.Parse(tokenString)
		if err != nil {
			abort(c, err)
			return
		}
		if claims.TokenType != models.TokenTypeAccess {
			abort(c, apperrors.Unauthorized("Invalid token"))
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			abort(c, err)
			return
		}
		if _, err := utils.LookupLive(db, claims.ID, time.Now()); err != nil {
			abort(c, err)
			return
		}

		c.Set("user_id", userID)
		c.Set("device_id", claims.DeviceID)
		c.Set("access_jti", claims.ID)
		c.Next()
	}
}

// GetUserID returns the authenticated user's id.
func GetUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// GetDeviceID returns the session's device id.
func GetDeviceID(c *gin.Context) (string, bool) {
	v, exists := c.Get("device_id")
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}

func abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(apperrors.Status(err), gin.H{"error": apperrors.Message(err)})
}
