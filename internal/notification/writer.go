package notification

import (
	"gorm.io/gorm"

	"github.com/randevuapp/booking-api/internal/models"
)

// Writer persists notification rows. Status stays at the column
// default ("pending"); there is no transport behind it.
type Writer struct {
	db *gorm.DB
}

func NewWriter(db *gorm.DB) *Writer {
	return &Writer{db: db}
}

func (w *Writer) Write(ev Event) error {
	sms := models.SmsNotification{
		AppointmentID: ev.AppointmentID,
		PhoneNumber:   ev.PhoneNumber,
		Message:       ev.Message,
		Status:        string(StatusPending),
	}

	return w.db.Create(&sms).Error
}
