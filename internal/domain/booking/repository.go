package booking

import (
	"context"
	"time"

	"github.com/randevuapp/booking-api/internal/models"
)

type Repository interface {
	// -------- Package --------
	GetServicePackage(
		ctx context.Context,
		id uint,
	) (*models.ServicePackage, error)

	// -------- Customer --------
	GetCustomer(
		ctx context.Context,
		id uint,
	) (*models.Customer, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListConfirmedForDay(
		ctx context.Context,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Appointment, error)

	// -------- Reports --------
	MonthlyReport(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) (*MonthlyReport, error)
}
