package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/randevuapp/booking-api/internal/cache"
	"github.com/randevuapp/booking-api/internal/config"
	"github.com/randevuapp/booking-api/internal/handlers"
	infraRepo "github.com/randevuapp/booking-api/internal/infra/repository"
	"github.com/randevuapp/booking-api/internal/middleware"
	"github.com/randevuapp/booking-api/internal/notification"
	ucBooking "github.com/randevuapp/booking-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, slots *cache.Availability, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	smsWriter := notification.NewWriter(db)
	smsDispatcher := notification.NewDispatcher(smsWriter)

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	createAppointmentUC := ucBooking.NewCreateAppointment(
		bookingRepo,
		smsDispatcher,
		slots,
	)

	availableSlotsUC := ucBooking.NewGetAvailableSlots(
		bookingRepo,
		slots,
	)

	monthlyReportUC := ucBooking.NewGetMonthlyReport(
		bookingRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	packageHandler := handlers.NewPackageHandler(db)
	customerHandler := handlers.NewCustomerHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		createAppointmentUC,
		availableSlotsUC,
		slots,
	)

	paymentHandler := handlers.NewPaymentHandler(db)
	chatHandler := handlers.NewChatHandler(db)
	reportHandler := handlers.NewReportHandler(monthlyReportUC)

	// ======================================================
	// API (JSON) — auth middleware yok, tüm uçlar açık
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// ADMIN
		// ------------------------------
		api.POST("/admin/register", authHandler.Register)
		api.POST("/admin/login", authHandler.Login)

		// ------------------------------
		// PACKAGES
		// ------------------------------
		api.GET("/packages", packageHandler.List)
		api.GET("/packages/:id", packageHandler.Get)
		api.POST("/packages", packageHandler.Create)
		api.PUT("/packages/:id", packageHandler.Update)

		// ------------------------------
		// CUSTOMERS
		// ------------------------------
		api.POST("/customers", customerHandler.Create)
		api.GET("/customers/:id", customerHandler.Get)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.GET("/appointments", appointmentHandler.List)
		api.GET("/appointments/available-slots", appointmentHandler.AvailableSlots)
		api.GET("/appointments/:id", appointmentHandler.Get)
		api.POST("/appointments", appointmentHandler.Create)
		api.PUT("/appointments/:id", appointmentHandler.Update)

		// ------------------------------
		// PAYMENTS
		// ------------------------------
		api.GET("/payments", paymentHandler.List)
		api.GET("/payments/:id", paymentHandler.Get)
		api.POST("/payments", paymentHandler.Create)
		api.PUT("/payments/:id", paymentHandler.Update)

		// ------------------------------
		// CHAT
		// ------------------------------
		api.GET("/chat/:sessionId", chatHandler.ListBySession)
		api.POST("/chat", chatHandler.Create)

		// ------------------------------
		// REPORTS
		// ------------------------------
		api.GET("/reports/monthly", reportHandler.Monthly)
	}
}
