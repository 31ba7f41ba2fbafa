package models

import "time"

// Kayıt oluşturulur ama hiçbir zaman gönderilmez; status 'pending' kalır.
type SmsNotification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint `json:"appointmentId"`

	PhoneNumber string `gorm:"size:20;not null" json:"phoneNumber"`
	Message     string `gorm:"type:text;not null" json:"message"`
	Status      string `gorm:"size:50;not null;default:'pending'" json:"status"` // pending, sent, failed

	SentAt    *time.Time `json:"sentAt"`
	CreatedAt time.Time  `json:"createdAt"`
}
