package model

import "time"

const (
	MenuButtonTextMaxLength = 64
	MenuAnswerMaxLength     = 2048
)

// MenuItem is one Q&A entry of the bot FAQ menu. Button texts are globally
// unique.
type MenuItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ButtonText  string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"button_text"`
	Answer      string    `gorm:"type:varchar(2048);not null" json:"answer"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	CreatedByID *uint     `json:"created_by_id"`
	CreatedBy   *User     `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL" json:"-"`
	UpdatedByID *uint     `json:"updated_by_id"`
	UpdatedBy   *User     `gorm:"foreignKey:UpdatedByID;constraint:OnDelete:SET NULL" json:"-"`
}
