package models

import "time"

// RefreshToken stores an issued refresh token so it can be rotated or revoked.
// UserID is interpreted against the table named by Role.
type RefreshToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	Role      Role      `gorm:"size:20;not null" json:"role"`
	Token     string    `gorm:"size:512;uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
	IsRevoked bool      `gorm:"default:false" json:"isRevoked"`
	CreatedAt time.Time `json:"createdAt"`
}
