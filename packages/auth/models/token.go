package models

import (
	"time"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Token is the server-side record of an issued JWT. A token is live only
// while its record exists, is not revoked and has not passed its expiry.
type Token struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	JTI         string `gorm:"size:36;not null;uniqueIndex" json:"jti"`
	UserID      uint   `gorm:"not null;index" json:"user_id"`
	DeviceID    string `gorm:"size:36;not null;index" json:"device_id"`
	TokenType   string `gorm:"size:10;not null" json:"token_type"`
	ExpiredTime int64  `gorm:"not null" json:"expired_time"`
	Revoked     bool   `gorm:"not null;default:false" json:"revoked"`

	User *User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (Token) TableName() string {
	return "tokens"
}

func (t *Token) Expired(now time.Time) bool {
	return t.ExpiredTime <= now.Unix()
}

// TokenPairResponse mirrors the cookie payload in the response body so
// non-browser clients can store the tokens themselves.
type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}
