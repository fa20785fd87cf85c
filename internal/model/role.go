package model

import "time"

// Capability names one category of mutation a role may perform.
type Capability string

const (
	CapEditSettings Capability = "can_edit_settings"
	CapEditUsers    Capability = "can_edit_users"
	CapSendMessages Capability = "can_send_messages"
	CapEditMenu     Capability = "can_edit_menu"
)

// Role groups four independent capability flags under a unique name.
type Role struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"name"`
	CanEditSettings bool      `gorm:"not null;default:false" json:"can_edit_settings"`
	CanEditUsers    bool      `gorm:"not null;default:false" json:"can_edit_users"`
	CanSendMessages bool      `gorm:"not null;default:false" json:"can_send_messages"`
	CanEditMenu     bool      `gorm:"not null;default:false" json:"can_edit_menu"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Has reports whether the role carries the given capability.
func (r *Role) Has(cap Capability) bool {
	switch cap {
	case CapEditSettings:
		return r.CanEditSettings
	case CapEditUsers:
		return r.CanEditUsers
	case CapSendMessages:
		return r.CanSendMessages
	case CapEditMenu:
		return r.CanEditMenu
	}
	return false
}
