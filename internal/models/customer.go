package models

import "time"

// Email booking sırasında önce aranır, sonra eklenir (unique index yok).
type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string `gorm:"size:255;not null" json:"firstName"`
	LastName  string `gorm:"size:255;not null" json:"lastName"`
	Email     string `gorm:"size:255;not null" json:"email"`
	Phone     string `gorm:"size:20;not null" json:"phone"`

	CreatedAt time.Time `json:"createdAt"`
}
