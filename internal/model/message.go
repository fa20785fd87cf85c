package model

import "time"

// MessageTextMaxLength bounds a single message body.
const MessageTextMaxLength = 2048

// Message is one entry of a chat between an employee and the managers.
// Immutable once created except for the is_read flag.
type Message struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID int64     `gorm:"not null;index" json:"employee_id"`
	Employee   *Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE" json:"-"`
	Text       string    `gorm:"type:varchar(2048)" json:"text"`
	ManagerID  *uint     `json:"manager_id"`
	Manager    *User     `gorm:"foreignKey:ManagerID;constraint:OnDelete:SET NULL" json:"manager,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	IsRead     bool      `gorm:"not null;default:false" json:"is_read"`
}
