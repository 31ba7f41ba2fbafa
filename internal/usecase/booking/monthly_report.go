package booking

import (
	"context"
	"time"

	domain "github.com/randevuapp/booking-api/internal/domain/booking"
	"github.com/randevuapp/booking-api/internal/timezone"
)

type GetMonthlyReport struct {
	repo domain.Repository
}

func NewGetMonthlyReport(repo domain.Repository) *GetMonthlyReport {
	return &GetMonthlyReport{repo: repo}
}

// Execute aggregates one calendar month in local time, first day
// 00:00:00 through last day 23:59:59, both ends inclusive.
func (uc *GetMonthlyReport) Execute(
	ctx context.Context,
	year int,
	month int,
) (*domain.MonthlyReport, error) {

	loc := timezone.Location()

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0).Add(-time.Second)

	return uc.repo.MonthlyReport(ctx, start, end)
}
