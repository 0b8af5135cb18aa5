package models

import "time"

// Registro persistido da trilha de auditoria do bot. A agenda em si nunca
// é reconstruída a partir daqui.
type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	EventID string `gorm:"size:36;uniqueIndex" json:"event_id"`
	UserID  string `gorm:"size:64;index" json:"user_id"`
	Action  string `gorm:"size:50;not null" json:"action"`

	BookingID  string `gorm:"size:36" json:"booking_id"`
	Slot       string `gorm:"size:5" json:"slot"`
	ClientName string `gorm:"size:100" json:"client_name"`
	Service    string `gorm:"size:50" json:"service"`

	CreatedAt time.Time `json:"created_at"`
}
