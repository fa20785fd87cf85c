package model

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

const (
	// SessionIDBytes random bytes produce a 64-character hex token.
	SessionIDBytes  = 32
	SessionIDLength = SessionIDBytes * 2

	// SessionDuration is the fixed lifetime of a session from creation.
	SessionDuration = 7 * 24 * time.Hour
)

// Session is an opaque bearer token granting an authenticated identity for a
// bounded time. Expiry is enforced lazily at resolve time and eagerly by the
// cleanup sweep.
type Session struct {
	ID        string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	ExpiredAt time.Time `gorm:"not null" json:"expired_at"`
}

// NewSessionID returns a high-entropy random hex token.
func NewSessionID() string {
	b := make([]byte, SessionIDBytes)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// Expired reports whether the session is past its lifetime at t.
func (s *Session) Expired(t time.Time) bool {
	return s.ExpiredAt.Before(t)
}
