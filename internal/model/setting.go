package model

const (
	SettingValueMaxLength = 256

	// Integer-typed setting values must satisfy 0 < v < SettingIntMaxValue.
	SettingIntMaxValue = 4096
)

// Setting is one named configuration value consumed by the bot. When IntType
// is set the value is an int encoded as a string and bounds-checked on update.
type Setting struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(150);not null" json:"name"`
	Value       string `gorm:"type:varchar(256);default:''" json:"value"`
	IntType     bool   `gorm:"not null;default:false" json:"int_type"`
	Description string `gorm:"type:varchar(512);default:''" json:"description"`
}
