package booking

import (
	"context"
	"time"

	"github.com/randevuapp/booking-api/internal/cache"
	domain "github.com/randevuapp/booking-api/internal/domain/booking"
)

type GetAvailableSlots struct {
	repo  domain.Repository
	slots *cache.Availability
}

func NewGetAvailableSlots(
	repo domain.Repository,
	slots *cache.Availability,
) *GetAvailableSlots {
	return &GetAvailableSlots{
		repo:  repo,
		slots: slots,
	}
}

// Execute returns the free half-hour labels of one calendar day.
// packageID is accepted but does not vary the grid; every package
// shares the same 09:00-18:00 working day.
func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	date time.Time,
	packageID uint,
) ([]string, error) {

	if cached, ok := uc.slots.Get(ctx, date); ok {
		return cached, nil
	}

	dayStart := time.Date(
		date.Year(), date.Month(), date.Day(),
		0, 0, 0, 0,
		date.Location(),
	)
	dayEnd := dayStart.AddDate(0, 0, 1)

	appointments, err := uc.repo.ListConfirmedForDay(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	booked := make([]string, 0, len(appointments))
	for _, ap := range appointments {
		booked = append(booked, domain.SlotLabel(ap.AppointmentDate, dayStart.Location()))
	}

	free := domain.AvailableSlots(booked)
	if free == nil {
		free = []string{}
	}

	uc.slots.Set(ctx, date, free)

	return free, nil
}
