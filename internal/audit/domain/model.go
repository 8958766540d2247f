package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// AuditLog records one successful mutation made through the API.
type AuditLog struct {
	ID         snowflake.ID      `gorm:"primaryKey" json:"id"`
	Action     string            `gorm:"column:action;type:varchar(64);not null" json:"action"`
	TargetType string            `gorm:"column:target_type;type:varchar(32);not null;index:idx_audit_logs_target" json:"targetType"`
	TargetID   *string           `gorm:"column:target_id;type:varchar(64);index:idx_audit_logs_target" json:"targetId,omitempty"`
	Metadata   datatypes.JSONMap `gorm:"column:metadata" json:"metadata,omitempty"`
	IPAddress  *string           `gorm:"column:ip_address;type:varchar(64)" json:"ipAddress,omitempty"`
	UserAgent  *string           `gorm:"column:user_agent" json:"userAgent,omitempty"`
	CreatedAt  time.Time         `gorm:"column:created_at;not null" json:"createdAt"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
