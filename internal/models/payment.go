package models

import "time"

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint         `json:"appointmentId"`
	Appointment   *Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Amount        float64 `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentMethod string  `gorm:"size:50;not null" json:"paymentMethod"` // bank_transfer, eft, paytr
	PaymentStatus string  `gorm:"size:50;not null;default:'pending'" json:"paymentStatus"`

	TransactionID string     `gorm:"size:255" json:"transactionId"`
	PaymentDate   *time.Time `json:"paymentDate"`

	CreatedAt time.Time `json:"createdAt"`
}
