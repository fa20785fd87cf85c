package model

import "time"

// User represents an admin panel account. Passwords are stored as bcrypt
// hashes only. CreatedBy/UpdatedBy are self-referential audit links resolved
// with a bounded preload, never a recursive eager load.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Username    string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	Password    string    `gorm:"type:varchar(255);not null" json:"-"`
	RoleID      uint      `gorm:"not null" json:"role_id"`
	Role        *Role     `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE" json:"role,omitempty"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	CreatedByID *uint     `json:"created_by_id"`
	CreatedBy   *User     `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL" json:"created_by,omitempty"`
	UpdatedByID *uint     `json:"updated_by_id"`
	UpdatedBy   *User     `gorm:"foreignKey:UpdatedByID;constraint:OnDelete:SET NULL" json:"updated_by,omitempty"`
}
