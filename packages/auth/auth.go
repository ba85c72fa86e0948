package auth

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Zattox/RavensPedia-sub000/config"
	"github.com/Zattox/RavensPedia-sub000/packages/auth/handlers"
	"github.com/Zattox/RavensPedia-sub000/packages/auth/middleware"
	"github.com/Zattox/RavensPedia-sub000/packages/auth/utils"
)

// Module wires the auth handlers and exposes the guards the content
// routes hang their write protection on.
type Module struct {
	Handler *handlers.AuthHandler
	Tokens  *utils.TokenManager

	db *gorm.DB
}

func NewModule(db *gorm.DB, cfg *config.Settings) *Module {
	tokens := utils.NewTokenManager(cfg)
	return &Module{
		Handler: handlers.NewAuthHandler(db, tokens, cfg),
		Tokens:  tokens,
		db:      db,
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/register/", m.Handler.Register)
		auth.POST("/login/", m.Handler.Login)
		auth.POST("/refresh/", m.Handler.Refresh)
		auth.POST("/logout/", m.Handler.Logout)
		auth.GET("/me/", m.JWTMiddleware(), m.Handler.Me)
		auth.PATCH("/change_user_role/", m.JWTMiddleware(), m.RequireSuperAdmin(), m.Handler.ChangeUserRole)
	}
}

func (m *Module) JWTMiddleware() gin.HandlerFunc {
	return middleware.JWTMiddleware(m.Tokens, m.db)
}

func (m *Module) RequireAdmin() gin.HandlerFunc {
	return middleware.RequireAdmin(m.db)
}

func (m *Module) RequireSuperAdmin() gin.HandlerFunc {
	return middleware.RequireSuperAdmin(m.db)
}
