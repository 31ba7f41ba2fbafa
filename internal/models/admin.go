package models

import "time"

type Admin struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email    string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Role     string `gorm:"size:50;not null;default:'admin'" json:"role"`

	CreatedAt time.Time `json:"createdAt"`
}
