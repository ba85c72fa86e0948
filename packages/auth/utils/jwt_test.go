package utils

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Zattox/RavensPedia-sub000/config"
	"github.com/Zattox/RavensPedia-sub000/packages/auth/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
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
	return db
}

func newTestManager(t *testing.T) *TokenManager {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate RSA key: %v", err)
	}
	return NewTokenManager(&config.Settings{
		JWTPrivateKey:      key,
		JWTPublicKey:       &key.PublicKey,
		AccessTokenMinutes: 15,
		RefreshTokenDays:   14,
	})
}

func liveToken(t *testing.T, db *gorm.DB, userID uint, tokenType string) *models.Token {
	t.Helper()
	var record models.Token
	err := db.Where("user_id = ? AND token_type = ? AND revoked = ?", userID, tokenType, false).
		First(&record).Error
	if err != nil {
		t.Fatalf("no live %s token for user %d: %v", tokenType, userID, err)
	}
	return &record
}

func TestGeneratePairAndParse(t *testing.T) {
	db := newTestDB(t)
	m := newTestManager(t)
	deviceID := uuid.NewString()

	pair, err := m.GeneratePair(db, 7, deviceID)
	if err != nil {
		t.Fatalf("GeneratePair failed: %v", err)
	}

	claims, err := m.Parse(pair.AccessToken)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if claims.TokenType != models.TokenTypeAccess {
		t.Fatalf("token type = %s, want access", claims.TokenType)
	}
	if claims.DeviceID != deviceID {
		t.Fatalf("device id = %s, want %s", claims.DeviceID, deviceID)
	}
	userID, err := claims.UserID()
	if err != nil {
		t.Fatalf("UserID failed: %v", err)
	}
	if userID != 7 {
		t.Fatalf("user id = %d, want 7", userID)
	}

	refreshClaims, err := m.Parse(pair.RefreshToken)
	if err != nil {
		t.Fatalf("Parse refresh failed: %v", err)
	}
	if refreshClaims.TokenType != models.TokenTypeRefresh {
		t.Fatalf("token type = %s, want refresh", refreshClaims.TokenType)
	}
}

func TestParseRejectsForeignSignature(t *testing.T) {
	db := newTestDB(t)
	signer := newTestManager(t)
	verifier := newTestManager(t)

	pair, err := signer.GeneratePair(db, 1, uuid.NewString())
	if err != nil {
		t.Fatalf("GeneratePair failed: %v", err)
	}
	_, err = verifier.Parse(pair.AccessToken)
	if err == nil || err.Error() != "Invalid token" {
		t.Fatalf("expected Invalid token, got %v", err)
	}
}

func TestGeneratePairRevokesPreviousSessionPair(t *testing.T) {
	db := newTestDB(t)
	m := newTestManager(t)
	deviceID := uuid.NewString()

	if _, err := m.GeneratePair(db, 1, deviceID); err != nil {
		t.Fatalf("first pair failed: %v", err)
	}
	oldAccess := liveToken(t, db, 1, models.TokenTypeAccess)

	if _, err := m.GeneratePair(db, 1, deviceID); err != nil {
		t.Fatalf("second pair failed: %v", err)
	}

	_, err := LookupLive(db, oldAccess.JTI, time.Now())
	if err == nil || err.Error() != "Token revoked" {
		t.Fatalf("expected Token revoked, got %v", err)
	}

	var live int64
	db.Model(&models.Token{}).
		Where("user_id = ? AND device_id = ? AND revoked = ?", 1, deviceID, false).
		Count(&live)
	if live != 2 {
		t.Fatalf("expected exactly one live pair, got %d live tokens", live)
	}
}

func TestSessionsAreIndependentPerDevice(t *testing.T) {
	db := newTestDB(t)
	m := newTestManager(t)

	if _, err := m.GeneratePair(db, 1, "device-a"); err != nil {
		t.Fatalf("device-a pair failed: %v", err)
	}
	accessA := liveToken(t, db, 1, models.TokenTypeAccess)

	if _, err := m.GeneratePair(db, 1, "device-b"); err != nil {
		t.Fatalf("device-b pair failed: %v", err)
	}

	if _, err := LookupLive(db, accessA.JTI, time.Now()); err != nil {
		t.Fatalf("device-a session should survive a device-b login: %v", err)
	}
}

func TestRefreshRotatesAndPreservesExpiry(t *testing.T) {
	db := newTestDB(t)
	m := newTestManager(t)

	pair, err := m.GeneratePair(db, 1, uuid.NewString())
	if err != nil {
		t.Fatalf("GeneratePair failed: %v", err)
	}
	originalRefresh := liveToken(t, db, 1, models.TokenTypeRefresh)

	rotated, err := m.Refresh(db, pair.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if rotated.RefreshToken == pair.RefreshToken {
		t.Fatal("expected a new refresh token string")
	}

	newRefresh := liveToken(t, db, 1, models.TokenTypeRefresh)
	if newRefresh.JTI == originalRefresh.JTI {
		t.Fatal("expected a new refresh record")
	}
	if newRefresh.ExpiredTime != originalRefresh.ExpiredTime {
		t.Fatalf("refresh expiry extended: %d -> %d", originalRefresh.ExpiredTime, newRefresh.ExpiredTime)
	}

	// The replaced refresh token is dead.
	_, err = m.Refresh(db, pair.RefreshToken)
	if err == nil || err.Error() != "Token revoked" {
		t.Fatalf("expected Token revoked, got %v", err)
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	db := newTestDB(t)
	m := newTestManager(t)

	pair, err := m.GeneratePair(db, 1, uuid.NewString())
	if err != nil {
		t.Fatalf("GeneratePair failed: %v", err)
	}
	_, err = m.Refresh(db, pair.AccessToken)
	if err == nil || err.Error() != "Invalid token" {
		t.Fatalf("expected Invalid token, got %v", err)
	}
}

func TestRevokeByJTI(t *testing.T) {
	db := newTestDB(t)
	m := newTestManager(t)

	if _, err := m.GeneratePair(db, 1, uuid.NewString()); err != nil {
		t.Fatalf("GeneratePair failed: %v", err)
	}
	record := liveToken(t, db, 1, models.TokenTypeAccess)

	if err := RevokeByJTI(db, record.JTI); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	// Revoking twice finds nothing live.
	if err := RevokeByJTI(db, record.JTI); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
	if err := RevokeByJTI(db, "unknown-jti"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestLookupLiveRejectsExpiredRecord(t *testing.T) {
	db := newTestDB(t)

	record := models.Token{
		JTI:         uuid.NewString(),
		UserID:      1,
		DeviceID:    uuid.NewString(),
		TokenType:   models.TokenTypeAccess,
		ExpiredTime: time.Now().Add(-time.Minute).Unix(),
	}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("failed to seed token record: %v", err)
	}

	_, err := LookupLive(db, record.JTI, time.Now())
	if err == nil || err.Error() != "Token expired" {
		t.Fatalf("expected Token expired, got %v", err)
	}
	_, err = LookupLive(db, "unknown-jti", time.Now())
	if err == nil || err.Error() != "Token not found" {
		t.Fatalf("expected Token not found, got %v", err)
	}
}

func TestCleanupTokens(t *testing.T) {
	db := newTestDB(t)

	seed := []models.Token{
		{JTI: uuid.NewString(), UserID: 1, DeviceID: "d", TokenType: models.TokenTypeAccess,
			ExpiredTime: time.Now().Add(time.Hour).Unix(), Revoked: true},
		{JTI: uuid.NewString(), UserID: 1, DeviceID: "d", TokenType: models.TokenTypeAccess,
			ExpiredTime: time.Now().Add(-time.Hour).Unix()},
		{JTI: uuid.NewString(), UserID: 1, DeviceID: "d", TokenType: models.TokenTypeAccess,
			ExpiredTime: time.Now().Add(time.Hour).Unix()},
	}
	if err := db.Create(&seed).Error; err != nil {
		t.Fatalf("failed to seed token records: %v", err)
	}

	deleted, err := CleanupTokens(db)
	if err != nil {
		t.Fatalf("cleanup failed: %v", err)
	}
	if deleted != 2 {
		t.Fatalf("deleted = %d, want 2", deleted)
	}

	var remaining int64
	db.Model(&models.Token{}).Count(&remaining)
	if remaining != 1 {
		t.Fatalf("remaining = %d, want 1", remaining)
	}
}
