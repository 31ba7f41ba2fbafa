package repository

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	domain "github.com/randevuapp/booking-api/internal/domain/booking"
	"github.com/randevuapp/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Package
// --------------------------------------------------

func (r *BookingGormRepository) GetServicePackage(
	ctx context.Context,
	id uint,
) (*models.ServicePackage, error) {

	var pkg models.ServicePackage
	if err := r.db.WithContext(ctx).First(&pkg, id).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

func (r *BookingGormRepository) GetCustomer(
	ctx context.Context,
	id uint,
) (*models.Customer, error) {

	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

// ListConfirmedForDay returns the day's confirmed appointments; only
// these block a slot. No lock, no reservation: two requests can read
// the same free slot and both book it.
func (r *BookingGormRepository) ListConfirmedForDay(
	ctx context.Context,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("appointment_date").
		Where(
			"status = ? AND appointment_date >= ? AND appointment_date < ?",
			domain.StatusConfirmed, dayStart, dayEnd,
		).
		Order("appointment_date ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// --------------------------------------------------
// Reports
// --------------------------------------------------

// MonthlyReport aggregates one calendar month, boundaries inclusive.
// Revenue only counts payments with payment_status = 'completed'
// joined to appointments inside the range.
func (r *BookingGormRepository) MonthlyReport(
	ctx context.Context,
	start time.Time,
	end time.Time,
) (*domain.MonthlyReport, error) {

	report := &domain.MonthlyReport{
		AppointmentsByPackage: []domain.PackageStat{},
	}

	inRange := func() *gorm.DB {
		return r.db.WithContext(ctx).
			Model(&models.Appointment{}).
			Where("appointment_date >= ? AND appointment_date <= ?", start, end)
	}

	if err := inRange().Count(&report.TotalAppointments).Error; err != nil {
		return nil, err
	}

	if err := inRange().
		Where("status = ?", domain.StatusCompleted).
		Count(&report.CompletedAppointments).Error; err != nil {
		return nil, err
	}

	if err := inRange().
		Where("status = ?", domain.StatusPending).
		Count(&report.PendingAppointments).Error; err != nil {
		return nil, err
	}

	var revenue sql.NullFloat64
	if err := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Select("SUM(payments.amount)").
		Joins("LEFT JOIN appointments ON appointments.id = payments.appointment_id").
		Where(
			"appointments.appointment_date >= ? AND appointments.appointment_date <= ? AND payments.payment_status = ?",
			start, end, domain.PaymentCompleted,
		).
		Scan(&revenue).Error; err != nil {
		return nil, err
	}
	if revenue.Valid {
		report.TotalRevenue = revenue.Float64
	}

	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select(
			"COALESCE(service_packages.name, 'Bilinmeyen Paket') AS package_name, " +
				"COUNT(*) AS count, " +
				"COALESCE(SUM(payments.amount), 0) AS revenue",
		).
		Joins("LEFT JOIN service_packages ON service_packages.id = appointments.package_id").
		Joins("LEFT JOIN payments ON payments.appointment_id = appointments.id").
		Where(
			"appointments.appointment_date >= ? AND appointments.appointment_date <= ? AND payments.payment_status = ?",
			start, end, domain.PaymentCompleted,
		).
		Group("service_packages.id, service_packages.name").
		Scan(&report.AppointmentsByPackage).Error; err != nil {
		return nil, err
	}

	return report, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
