package booking

import (
	"context"
	"time"

	"github.com/randevuapp/booking-api/internal/cache"
	domain "github.com/randevuapp/booking-api/internal/domain/booking"
	"github.com/randevuapp/booking-api/internal/httperr"
	"github.com/randevuapp/booking-api/internal/models"
	"github.com/randevuapp/booking-api/internal/notification"
)

// Notifier enqueues the confirmation SMS row.
type Notifier interface {
	Dispatch(ev notification.Event)
}

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	CustomerID      uint
	PackageID       uint
	AppointmentDate time.Time
	Status          string
	Notes           string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	notifier Notifier
	slots    *cache.Availability
}

func NewCreateAppointment(
	repo domain.Repository,
	notifier Notifier,
	slots *cache.Availability,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		notifier: notifier,
		slots:    slots,
	}
}

// Execute inserts the appointment, then composes the SMS row from the
// customer and package. The two steps are separate writes: when the
// lookups fail the appointment stays committed and no SMS row appears.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	status := domain.Status(in.Status)
	if status == "" {
		status = domain.InitialStatus()
	}
	if !domain.IsValidStatus(status) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	ap := &models.Appointment{
		CustomerID:      in.CustomerID,
		PackageID:       in.PackageID,
		AppointmentDate: in.AppointmentDate,
		Status:          string(status),
		Notes:           in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.slots.Invalidate(ctx, in.AppointmentDate)

	customer, err := uc.repo.GetCustomer(ctx, in.CustomerID)
	if err != nil {
		return ap, nil
	}

	pkg, err := uc.repo.GetServicePackage(ctx, in.PackageID)
	if err != nil {
		return ap, nil
	}

	uc.notifier.Dispatch(notification.Event{
		AppointmentID: ap.ID,
		PhoneNumber:   customer.Phone,
		Message: notification.ComposeAppointmentSMS(
			customer.FirstName,
			pkg.Name,
			in.AppointmentDate,
		),
	})

	return ap, nil
}
