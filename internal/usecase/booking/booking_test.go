package booking

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/randevuapp/booking-api/internal/cache"
	domain "github.com/randevuapp/booking-api/internal/domain/booking"
	"github.com/randevuapp/booking-api/internal/httperr"
	"github.com/randevuapp/booking-api/internal/models"
	"github.com/randevuapp/booking-api/internal/notification"
	"github.com/randevuapp/booking-api/internal/timezone"
)

// ------------------------------------------------------
// fakes
// ------------------------------------------------------

type fakeRepo struct {
	confirmed []models.Appointment
	customers map[uint]*models.Customer
	packages  map[uint]*models.ServicePackage

	created []*models.Appointment

	reportStart time.Time
	reportEnd   time.Time
	report      *domain.MonthlyReport
}

func (f *fakeRepo) GetServicePackage(_ context.Context, id uint) (*models.ServicePackage, error) {
	if pkg, ok := f.packages[id]; ok {
		return pkg, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetCustomer(_ context.Context, id uint) (*models.Customer, error) {
	if c, ok := f.customers[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	ap.ID = uint(len(f.created) + 1)
	f.created = append(f.created, ap)
	return nil
}

func (f *fakeRepo) ListConfirmedForDay(_ context.Context, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.confirmed {
		if !ap.AppointmentDate.Before(dayStart) && ap.AppointmentDate.Before(dayEnd) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) MonthlyReport(_ context.Context, start, end time.Time) (*domain.MonthlyReport, error) {
	f.reportStart = start
	f.reportEnd = end
	return f.report, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

type fakeNotifier struct {
	events []notification.Event
}

func (f *fakeNotifier) Dispatch(ev notification.Event) {
	f.events = append(f.events, ev)
}

func noCache() *cache.Availability {
	return cache.NewAvailability(nil)
}

// ------------------------------------------------------
// available slots
// ------------------------------------------------------

func TestGetAvailableSlots_EmptyDay(t *testing.T) {
	uc := NewGetAvailableSlots(&fakeRepo{}, noCache())

	date := time.Date(2025, 6, 2, 0, 0, 0, 0, timezone.Location())
	slots, err := uc.Execute(context.Background(), date, 1)
	if err != nil {
		t.Fatal(err)
	}

	if len(slots) != 18 {
		t.Fatalf("expected 18 slots, got %d", len(slots))
	}
	if slots[0] != "09:00" || slots[17] != "17:30" {
		t.Fatalf("unexpected bounds: %s .. %s", slots[0], slots[17])
	}
}

func TestGetAvailableSlots_ConfirmedBlocksSlot(t *testing.T) {
	loc := timezone.Location()
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, loc)

	repo := &fakeRepo{
		confirmed: []models.Appointment{
			{
				AppointmentDate: time.Date(2025, 6, 2, 10, 0, 0, 0, loc),
				Status:          string(domain.StatusConfirmed),
			},
		},
	}

	uc := NewGetAvailableSlots(repo, noCache())

	slots, err := uc.Execute(context.Background(), date, 1)
	if err != nil {
		t.Fatal(err)
	}

	if len(slots) != 17 {
		t.Fatalf("expected 17 slots, got %d", len(slots))
	}
	for _, s := range slots {
		if s == "10:00" {
			t.Fatal("confirmed appointment at 10:00 still offered")
		}
	}
}

// ------------------------------------------------------
// create appointment
// ------------------------------------------------------

func newCreateFixture() (*fakeRepo, *fakeNotifier, *CreateAppointment) {
	repo := &fakeRepo{
		customers: map[uint]*models.Customer{
			7: {ID: 7, FirstName: "Ayşe", LastName: "Yılmaz", Phone: "+905551112233"},
		},
		packages: map[uint]*models.ServicePackage{
			3: {ID: 3, Name: "Premium Paket", Price: 299},
		},
	}
	notifier := &fakeNotifier{}
	return repo, notifier, NewCreateAppointment(repo, notifier, noCache())
}

func TestCreateAppointment_DefaultsToPendingAndQueuesSMS(t *testing.T) {
	repo, notifier, uc := newCreateFixture()

	date := time.Date(2025, 6, 2, 10, 0, 0, 0, timezone.Location())
	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		CustomerID:      7,
		PackageID:       3,
		AppointmentDate: date,
	})
	if err != nil {
		t.Fatal(err)
	}

	if ap.Status != string(domain.StatusPending) {
		t.Fatalf("expected status pending, got %s", ap.Status)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 appointment created, got %d", len(repo.created))
	}

	if len(notifier.events) != 1 {
		t.Fatalf("expected 1 sms event, got %d", len(notifier.events))
	}
	ev := notifier.events[0]
	if ev.AppointmentID != ap.ID {
		t.Errorf("sms appointment id = %d, want %d", ev.AppointmentID, ap.ID)
	}
	if ev.PhoneNumber != "+905551112233" {
		t.Errorf("sms phone = %s", ev.PhoneNumber)
	}
	want := "Merhaba Ayşe! Premium Paket için randevunuz 02.06.2025 tarihinde oluşturuldu. Teşekkürler!"
	if ev.Message != want {
		t.Errorf("sms message = %q, want %q", ev.Message, want)
	}
}

func TestCreateAppointment_UnknownCustomerSkipsSMS(t *testing.T) {
	repo, notifier, uc := newCreateFixture()

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		CustomerID:      99,
		PackageID:       3,
		AppointmentDate: timezone.Now(),
	})
	if err != nil {
		t.Fatal(err)
	}

	// the appointment stays committed, only the sms row is missing
	if len(repo.created) != 1 {
		t.Fatalf("expected appointment committed, got %d", len(repo.created))
	}
	if len(notifier.events) != 0 {
		t.Fatalf("expected no sms events, got %d", len(notifier.events))
	}
}

func TestCreateAppointment_AnyKnownStatusAccepted(t *testing.T) {
	for _, status := range []string{"pending", "confirmed", "completed", "cancelled"} {
		repo, _, uc := newCreateFixture()

		ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
			CustomerID:      7,
			PackageID:       3,
			AppointmentDate: timezone.Now(),
			Status:          status,
		})
		if err != nil {
			t.Fatalf("status %s rejected: %v", status, err)
		}
		if ap.Status != status {
			t.Errorf("status = %s, want %s", ap.Status, status)
		}
		if len(repo.created) != 1 {
			t.Errorf("status %s: expected 1 created", status)
		}
	}
}

func TestCreateAppointment_InvalidStatusRejected(t *testing.T) {
	repo, _, uc := newCreateFixture()

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		CustomerID:      7,
		PackageID:       3,
		AppointmentDate: timezone.Now(),
		Status:          "done",
	})
	if !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("expected invalid_status, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatal("appointment created despite invalid status")
	}
}

// ------------------------------------------------------
// monthly report
// ------------------------------------------------------

func TestGetMonthlyReport_RangeBoundaries(t *testing.T) {
	repo := &fakeRepo{report: &domain.MonthlyReport{}}
	uc := NewGetMonthlyReport(repo)

	if _, err := uc.Execute(context.Background(), 2024, 2); err != nil {
		t.Fatal(err)
	}

	loc := timezone.Location()
	wantStart := time.Date(2024, 2, 1, 0, 0, 0, 0, loc)
	wantEnd := time.Date(2024, 2, 29, 23, 59, 59, 0, loc)

	if !repo.reportStart.Equal(wantStart) {
		t.Errorf("start = %s, want %s", repo.reportStart, wantStart)
	}
	if !repo.reportEnd.Equal(wantEnd) {
		t.Errorf("end = %s, want %s", repo.reportEnd, wantEnd)
	}
}

func TestGetMonthlyReport_Passthrough(t *testing.T) {
	repo := &fakeRepo{report: &domain.MonthlyReport{
		TotalAppointments:     1,
		TotalRevenue:          299,
		CompletedAppointments: 1,
		AppointmentsByPackage: []domain.PackageStat{
			{PackageName: "Premium Paket", Count: 1, Revenue: 299},
		},
	}}
	uc := NewGetMonthlyReport(repo)

	report, err := uc.Execute(context.Background(), 2025, 6)
	if err != nil {
		t.Fatal(err)
	}

	if report.TotalRevenue != 299 {
		t.Errorf("totalRevenue = %v, want 299", report.TotalRevenue)
	}
	if report.CompletedAppointments != 1 {
		t.Errorf("completedAppointments = %d, want 1", report.CompletedAppointments)
	}
}
