package middleware

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Zattox/RavensPedia-sub000/packages/auth/models"
	"github.com/Zattox/RavensPedia-sub000/packages/core/apperrors"
)

// RequireAnyRole lets the request through only when the authenticated
// user holds one of the given roles. Must run after JWTMiddleware.
func RequireAnyRole(db *gorm.DB, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := GetUserID(c)
		if !exists {
			abort(c, apperrors.Unauthorized("Authorization required"))
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			abort(c, apperrors.Unauthorized("User not found"))
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Set("user_role", user.Role)
				c.Next()
				return
			}
		}
		abort(c, apperrors.Forbidden("Insufficient permissions"))
	}
}

// RequireAdmin is the write-guard used by the content endpoints.
func RequireAdmin(db *gorm.DB) gin.HandlerFunc {
	return RequireAnyRole(db, models.RoleAdmin, models.RoleSuperAdmin)
}

// RequireSuperAdmin guards role management.
func RequireSuperAdmin(db *gorm.DB) gin.HandlerFunc {
	return RequireAnyRole(db, models.RoleSuperAdmin)
}
