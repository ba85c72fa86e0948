package utils

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Zattox/RavensPedia-sub000/config"
	"github.com/Zattox/RavensPedia-sub000/packages/auth/models"
	"github.com/Zattox/RavensPedia-sub000/packages/core/apperrors"
)

// Claims carries the device binding and token kind on top of the
// registered JWT claims. Subject holds the user id.
type Claims struct {
	DeviceID  string `json:"device_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies RS256 JWTs and keeps their server-side
// records. One session is one (user, device) pair holding exactly one
// live access/refresh pair.
type TokenManager struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenManager(cfg *config.Settings) *TokenManager {
	return &TokenManager{
		privateKey: cfg.JWTPrivateKey,
		publicKey:  cfg.JWTPublicKey,
		accessTTL:  time.Duration(cfg.AccessTokenMinutes) * time.Minute,
		refreshTTL: time.Duration(cfg.RefreshTokenDays) * 24 * time.Hour,
	}
}

// TokenPair is a freshly issued access/refresh pair with its JTIs
// already persisted.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

func (m *TokenManager) sign(userID uint, deviceID, tokenType, jti string, expiresAt time.Time) (string, error) {
	claims := Claims{
		DeviceID:  deviceID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(m.privateKey)
}

// Parse verifies the signature and expiry and returns the claims.
func (m *TokenManager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.publicKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.Unauthorized("Token expired")
		}
		return nil, apperrors.Unauthorized("Invalid token")
	}
	if !token.Valid {
		return nil, apperrors.Unauthorized("Invalid token")
	}
	return claims, nil
}

// UserID extracts the numeric subject.
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, apperrors.Unauthorized("Invalid token")
	}
	return uint(id), nil
}

// GeneratePair issues a new access/refresh pair for the session,
// revoking whatever pair the session held before.
func (m *TokenManager) GeneratePair(db *gorm.DB, userID uint, deviceID string) (*TokenPair, error) {
	now := time.Now()
	return m.issuePair(db, userID, deviceID, now.Add(m.accessTTL), now.Add(m.refreshTTL))
}

func (m *TokenManager) issuePair(db *gorm.DB, userID uint, deviceID string, accessExp, refreshExp time.Time) (*TokenPair, error) {
	accessJTI := uuid.NewString()
	refreshJTI := uuid.NewString()

	accessToken, err := m.sign(userID, deviceID, models.TokenTypeAccess, accessJTI, accessExp)
	if err != nil {
		return nil, err
	}
	refreshToken, err := m.sign(userID, deviceID, models.TokenTypeRefresh, refreshJTI, refreshExp)
	if err != nil {
		return nil, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Token{}).
			Where("user_id = ? AND device_id = ? AND revoked = ?", userID, deviceID, false).
			Update("revoked", true).Error; err != nil {
			return err
		}
		records := []models.Token{
			{JTI: accessJTI, UserID: userID, DeviceID: deviceID, TokenType: models.TokenTypeAccess, ExpiredTime: accessExp.Unix()},
			{JTI: refreshJTI, UserID: userID, DeviceID: deviceID, TokenType: models.TokenTypeRefresh, ExpiredTime: refreshExp.Unix()},
		}
		return tx.Create(&records).Error
	})
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh rotates the session's pair from a live refresh token. The new
// refresh token keeps the expiry of the one it replaces, so a session
// cannot extend itself indefinitely.
func (m *TokenManager) Refresh(db *gorm.DB, refreshTokenString string) (*TokenPair, error) {
	claims, err := m.Parse(refreshTokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != models.TokenTypeRefresh {
		return nil, apperrors.Unauthorized("Invalid token")
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil, err
	}

	var record models.Token
	if err := db.Where("jti = ?", claims.ID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Unauthorized("Token not found")
		}
		return nil, err
	}
	if record.Revoked {
		return nil, apperrors.Unauthorized("Token revoked")
	}
	if record.Expired(time.Now()) {
		return nil, apperrors.Unauthorized("Token expired")
	}

	refreshExp := time.Unix(record.ExpiredTime, 0)
	return m.issuePair(db, userID, claims.DeviceID, time.Now().Add(m.accessTTL), refreshExp)
}

// RevokeByJTI marks a single token record revoked.
func RevokeByJTI(db *gorm.DB, jti string) error {
	result := db.Model(&models.Token{}).Where("jti = ? AND revoked = ?", jti, false).Update("revoked", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// LookupLive returns the stored record of a token if it is still live.
func LookupLive(db *gorm.DB, jti string, now time.Time) (*models.Token, error) {
	var record models.Token
	if err := db.Where("jti = ?", jti).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Unauthorized("Token not found")
		}
		return nil, err
	}
	if record.Revoked {
		return nil, apperrors.Unauthorized("Token revoked")
	}
	if record.Expired(now) {
		return nil, apperrors.Unauthorized("Token expired")
	}
	return &record, nil
}

// CleanupTokens deletes revoked and expired token records. Called
// periodically from the scheduler.
func CleanupTokens(db *gorm.DB) (int64, error) {
	result := db.Where("revoked = ? OR expired_time <= ?", true, time.Now().Unix()).Delete(&models.Token{})
	return result.RowsAffected, result.Error
}
