package notification

import (
	"fmt"
	"time"

	"github.com/randevuapp/booking-api/internal/timezone"
)

// ComposeAppointmentSMS builds the Turkish confirmation text written
// to the sms_notifications table. Nothing ever dispatches it.
func ComposeAppointmentSMS(firstName, packageName string, date time.Time) string {
	return fmt.Sprintf(
		"Merhaba %s! %s için randevunuz %s tarihinde oluşturuldu. Teşekkürler!",
		firstName,
		packageName,
		timezone.FormatDate(date),
	)
}
