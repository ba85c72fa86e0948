package auth

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Zattox/RavensPedia-sub000/config"
	"github.com/Zattox/RavensPedia-sub000/packages/auth/middleware"
	"github.com/Zattox/RavensPedia-sub000/packages/auth/models"
	"github.com/Zattox/RavensPedia-sub000/packages/auth/utils"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.User{}, &models.Token{}); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate RSA key: %v", err)
	}
	cfg := &config.Settings{
		JWTPrivateKey:      key,
		JWTPublicKey:       &key.PublicKey,
		AccessTokenMinutes: 15,
		RefreshTokenDays:   14,
	}

	r := gin.New()
	NewModule(db, cfg).SetupRoutes(r)
	return r, db
}

func doJSON(r *gin.Engine, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func cookieByName(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %s not set", name)
	return nil
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error body %q: %v", w.Body.String(), err)
	}
	return body["error"]
}

func register(t *testing.T, r *gin.Engine, email string) *httptest.ResponseRecorder {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/auth/register/", models.RegisterRequest{
		Email: email, Password: "password123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s = %d: %s", email, w.Code, w.Body.String())
	}
	return w
}

func TestRegister(t *testing.T) {
	r, _ := newTestRouter(t)

	w := register(t, r, "user@example.com")
	access := cookieByName(t, w, middleware.AccessTokenCookie)
	refresh := cookieByName(t, w, middleware.RefreshTokenCookie)
	if access.Value == "" || refresh.Value == "" {
		t.Fatal("expected both token cookies to carry values")
	}
	if !access.Secure || access.HttpOnly {
		t.Fatalf("unexpected access cookie flags: secure=%v httpOnly=%v", access.Secure, access.HttpOnly)
	}

	var body struct {
		User   models.User             `json:"user"`
		Tokens models.TokenPairResponse `json:"tokens"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.User.Role != models.RoleUser {
		t.Fatalf("role = %s, want USER", body.User.Role)
	}
	if body.Tokens.TokenType != "Bearer" {
		t.Fatalf("token type = %s, want Bearer", body.Tokens.TokenType)
	}

	dup := doJSON(r, http.MethodPost, "/auth/register/", models.RegisterRequest{
		Email: "user@example.com", Password: "password123",
	})
	if dup.Code != http.StatusConflict {
		t.Fatalf("duplicate register = %d", dup.Code)
	}
	if got := errorMessage(t, dup); got != "User user@example.com already exists" {
		t.Fatalf("error = %q", got)
	}
}

func TestLoginWrongCredentials(t *testing.T) {
	r, _ := newTestRouter(t)
	register(t, r, "user@example.com")

	for _, req := range []models.LoginRequest{
		{Email: "user@example.com", Password: "wrong-password"},
		{Email: "nobody@example.com", Password: "password123"},
	} {
		w := doJSON(r, http.MethodPost, "/auth/login/", req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("login = %d, want 401", w.Code)
		}
		if got := errorMessage(t, w); got != "Wrong email or password" {
			t.Fatalf("error = %q", got)
		}
	}
}

func TestMe(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/auth/me/", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated me = %d, want 401", w.Code)
	}

	reg := register(t, r, "user@example.com")
	access := cookieByName(t, reg, middleware.AccessTokenCookie)

	w = doJSON(r, http.MethodGet, "/auth/me/", nil, access)
	if w.Code != http.StatusOK {
		t.Fatalf("me = %d: %s", w.Code, w.Body.String())
	}
	var user models.User
	if err := json.Unmarshal(w.Body.Bytes(), &user); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if user.Email != "user@example.com" {
		t.Fatalf("email = %s", user.Email)
	}
}

func TestRefreshRotation(t *testing.T) {
	r, _ := newTestRouter(t)
	reg := register(t, r, "user@example.com")
	oldRefresh := cookieByName(t, reg, middleware.RefreshTokenCookie)

	w := doJSON(r, http.MethodPost, "/auth/refresh/", nil, oldRefresh)
	if w.Code != http.StatusOK {
		t.Fatalf("refresh = %d: %s", w.Code, w.Body.String())
	}
	newRefresh := cookieByName(t, w, middleware.RefreshTokenCookie)
	if newRefresh.Value == oldRefresh.Value {
		t.Fatal("expected a rotated refresh token")
	}

	// The replaced refresh token is revoked.
	w = doJSON(r, http.MethodPost, "/auth/refresh/", nil, oldRefresh)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("reused refresh = %d, want 401", w.Code)
	}
	if got := errorMessage(t, w); got != "Token revoked" {
		t.Fatalf("error = %q", got)
	}

	w = doJSON(r, http.MethodPost, "/auth/refresh/", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("cookieless refresh = %d, want 401", w.Code)
	}
	if got := errorMessage(t, w); got != "Authorization required" {
		t.Fatalf("error = %q", got)
	}
}

func TestLogout(t *testing.T) {
	r, _ := newTestRouter(t)
	reg := register(t, r, "user@example.com")
	access := cookieByName(t, reg, middleware.AccessTokenCookie)
	refresh := cookieByName(t, reg, middleware.RefreshTokenCookie)

	w := doJSON(r, http.MethodPost, "/auth/logout/", nil, access, refresh)
	if w.Code != http.StatusOK {
		t.Fatalf("logout = %d: %s", w.Code, w.Body.String())
	}

	// The revoked access token no longer authenticates.
	w = doJSON(r, http.MethodGet, "/auth/me/", nil, access)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("me after logout = %d, want 401", w.Code)
	}

	w = doJSON(r, http.MethodPost, "/auth/logout/", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("cookieless logout = %d, want 401", w.Code)
	}
	if got := errorMessage(t, w); got != "Tokens not found" {
		t.Fatalf("error = %q", got)
	}
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) {
	t.Helper()
	hashed, err := utils.HashPassword("password123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	user := models.User{Email: email, Password: hashed, Role: role}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user %s: %v", email, err)
	}
}

func login(t *testing.T, r *gin.Engine, email string) *http.Cookie {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/auth/login/", models.LoginRequest{
		Email: email, Password: "password123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s = %d: %s", email, w.Code, w.Body.String())
	}
	return cookieByName(t, w, middleware.AccessTokenCookie)
}

func TestChangeUserRole(t *testing.T) {
	r, db := newTestRouter(t)
	seedUser(t, db, "root@example.com", models.RoleSuperAdmin)
	register(t, r, "user@example.com")
	rootAccess := login(t, r, "root@example.com")

	w := doJSON(r, http.MethodPatch, "/auth/change_user_role/", models.ChangeRoleRequest{
		Email: "user@example.com", NewRole: models.RoleAdmin,
	}, rootAccess)
	if w.Code != http.StatusOK {
		t.Fatalf("change role = %d: %s", w.Code, w.Body.String())
	}
	var target models.User
	if err := db.Where("email = ?", "user@example.com").First(&target).Error; err != nil {
		t.Fatalf("target missing: %v", err)
	}
	if target.Role != models.RoleAdmin {
		t.Fatalf("role = %s, want ADMIN", target.Role)
	}

	w = doJSON(r, http.MethodPatch, "/auth/change_user_role/", models.ChangeRoleRequest{
		Email: "user@example.com", NewRole: models.RoleSuperAdmin,
	}, rootAccess)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("grant SUPER_ADMIN = %d, want 400", w.Code)
	}
	if got := errorMessage(t, w); got != "The new_role field must be one of USER, ADMIN" {
		t.Fatalf("error = %q", got)
	}

	w = doJSON(r, http.MethodPatch, "/auth/change_user_role/", models.ChangeRoleRequest{
		Email: "root@example.com", NewRole: models.RoleUser,
	}, rootAccess)
	if w.Code != http.StatusForbidden {
		t.Fatalf("self change = %d, want 403", w.Code)
	}
	if got := errorMessage(t, w); got != "Cannot change your own role" {
		t.Fatalf("error = %q", got)
	}

	w = doJSON(r, http.MethodPatch, "/auth/change_user_role/", models.ChangeRoleRequest{
		Email: "ghost@example.com", NewRole: models.RoleUser,
	}, rootAccess)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown target = %d, want 404", w.Code)
	}
}

func TestChangeUserRoleRequiresSuperAdmin(t *testing.T) {
	r, _ := newTestRouter(t)
	reg := register(t, r, "user@example.com")
	access := cookieByName(t, reg, middleware.AccessTokenCookie)

	w := doJSON(r, http.MethodPatch, "/auth/change_user_role/", models.ChangeRoleRequest{
		Email: "user@example.com", NewRole: models.RoleAdmin,
	}, access)
	if w.Code != http.StatusForbidden {
		t.Fatalf("non-superadmin change = %d, want 403", w.Code)
	}
	if got := errorMessage(t, w); got != "Insufficient permissions" {
		t.Fatalf("error = %q", got)
	}
}
