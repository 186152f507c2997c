package model

import (
	"time"

	"github.com/google/uuid"
)

// ChannelSettingModel is the GORM-specific struct for the 'notification_channel_settings' table.
// Each profile stores one row per channel with its on/off switch and severity filter.
type ChannelSettingModel struct {
	Profile      string `gorm:"type:varchar(64);primaryKey"`
	Channel      string `gorm:"type:varchar(16);primaryKey"`
	Enabled      bool   `gorm:"not null;default:false"`
	RedEnabled   bool   `gorm:"not null;default:true"`
	AmberEnabled bool   `gorm:"not null;default:true"`
	GreenEnabled bool   `gorm:"not null;default:true"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ChannelSettingModel) TableName() string {
	return "notification_channel_settings"
}

// RecipientModel is the GORM-specific struct for the 'notification_recipients' table.
// Position keeps the operator's insertion order.
type RecipientModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Profile   string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_recipient_unique,priority:1"`
	Channel   string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_recipient_unique,priority:2"`
	Value     string    `gorm:"type:varchar(320);not null;uniqueIndex:idx_recipient_unique,priority:3"`
	Position  int       `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecipientModel) TableName() string {
	return "notification_recipients"
}

// All lists every model for schema migration.
func All() []any {
	return []any{
		&ChannelSettingModel{},
		&RecipientModel{},
	}
}
