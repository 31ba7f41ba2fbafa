package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint      `json:"customerId"`
	Customer   *Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer,omitempty"`

	PackageID uint            `json:"packageId"`
	Package   *ServicePackage `gorm:"foreignKey:PackageID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"package,omitempty"`

	AppointmentDate time.Time `gorm:"not null" json:"appointmentDate"`

	Status string `gorm:"size:50;not null;default:'pending'" json:"status"`
	Notes  string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
