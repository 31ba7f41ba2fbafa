package models

import "time"

type ChatMessage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SessionID  string `gorm:"type:text;not null;index" json:"sessionId"`
	Message    string `gorm:"type:text;not null" json:"message"`
	IsFromUser bool   `gorm:"not null" json:"isFromUser"`

	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`
}
