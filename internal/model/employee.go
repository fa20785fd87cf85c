package model

import "time"

// Employee is an external chat participant keyed by their messaging-platform
// id, so the primary key is not auto-incremented.
type Employee struct {
	ID          int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name        string    `gorm:"type:varchar(150)" json:"name"`
	IsBanned    bool      `gorm:"not null;default:false" json:"is_banned"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	UpdatedByID *uint     `json:"updated_by_id"`
	UpdatedBy   *User     `gorm:"foreignKey:UpdatedByID;constraint:OnDelete:SET NULL" json:"-"`
}
