package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/randevuapp/booking-api/internal/cache"
	domain "github.com/randevuapp/booking-api/internal/domain/booking"
	"github.com/randevuapp/booking-api/internal/httperr"
	"github.com/randevuapp/booking-api/internal/models"
	ucBooking "github.com/randevuapp/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db       *gorm.DB
	createUC *ucBooking.CreateAppointment
	slotsUC  *ucBooking.GetAvailableSlots
	slots    *cache.Availability
}

func NewAppointmentHandler(
	db *gorm.DB,
	createUC *ucBooking.CreateAppointment,
	slotsUC *ucBooking.GetAvailableSlots,
	slots *cache.Availability,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:       db,
		createUC: createUC,
		slotsUC:  slotsUC,
		slots:    slots,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	CustomerID      uint      `json:"customerId" binding:"required"`
	PackageID       uint      `json:"packageId" binding:"required"`
	AppointmentDate time.Time `json:"appointmentDate" binding:"required"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes"`
}

type UpdateAppointmentRequest struct {
	CustomerID      *uint      `json:"customerId,omitempty"`
	PackageID       *uint      `json:"packageId,omitempty"`
	AppointmentDate *time.Time `json:"appointmentDate,omitempty"`
	Status          *string    `json:"status,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Appointment{})

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	if fromStr := c.Query("dateFrom"); fromStr != "" {
		if from, err := parseDateParam(fromStr); err == nil {
			q = q.Where("appointment_date >= ?", from)
		}
	}

	if toStr := c.Query("dateTo"); toStr != "" {
		if to, err := parseDateParam(toStr); err == nil {
			q = q.Where("appointment_date <= ?", to)
		}
	}

	if customerIDStr := c.Query("customerId"); customerIDStr != "" {
		if customerID, err := strconv.ParseUint(customerIDStr, 10, 64); err == nil {
			q = q.Where("customer_id = ?", customerID)
		}
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if offset < 0 {
		offset = 0
	}

	appointments := []models.Appointment{}
	if err := q.
		Preload("Customer").
		Preload("Package").
		Order("appointment_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&appointments).Error; err != nil {

		httperr.Internal(c, "Randevular yüklenemedi")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// ======================================================
// GET
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Geçersiz randevu ID")
		return
	}

	var ap models.Appointment
	if err := h.db.
		Preload("Customer").
		Preload("Package").
		First(&ap, id).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Randevu bulunamadı")
			return
		}
		httperr.Internal(c, "Randevu yüklenemedi")
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Randevu oluşturma başarısız")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateAppointmentInput{
		CustomerID:      req.CustomerID,
		PackageID:       req.PackageID,
		AppointmentDate: req.AppointmentDate,
		Status:          req.Status,
		Notes:           req.Notes,
	})
	if err != nil {
		httperr.BadRequest(c, "Randevu oluşturma başarısız")
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// UPDATE (partial; no transition table, any status may
// replace any other)
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Geçersiz randevu ID")
		return
	}

	var ap models.Appointment
	if err := h.db.First(&ap, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Randevu bulunamadı")
			return
		}
		httperr.Internal(c, "Randevu yüklenemedi")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Randevu güncelleme başarısız")
		return
	}

	oldDate := ap.AppointmentDate

	if req.CustomerID != nil {
		ap.CustomerID = *req.CustomerID
	}
	if req.PackageID != nil {
		ap.PackageID = *req.PackageID
	}
	if req.AppointmentDate != nil {
		ap.AppointmentDate = *req.AppointmentDate
	}
	if req.Status != nil {
		if !domain.IsValidStatus(domain.Status(*req.Status)) {
			httperr.BadRequest(c, "Randevu güncelleme başarısız")
			return
		}
		ap.Status = *req.Status
	}
	if req.Notes != nil {
		ap.Notes = *req.Notes
	}

	if err := h.db.Save(&ap).Error; err != nil {
		httperr.BadRequest(c, "Randevu güncelleme başarısız")
		return
	}

	ctx := c.Request.Context()
	h.slots.Invalidate(ctx, oldDate)
	if !ap.AppointmentDate.Equal(oldDate) {
		h.slots.Invalidate(ctx, ap.AppointmentDate)
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// AVAILABLE SLOTS
// ======================================================

func (h *AppointmentHandler) AvailableSlots(c *gin.Context) {
	dateStr := c.Query("date")
	packageIDStr := c.Query("packageId")

	if dateStr == "" || packageIDStr == "" {
		httperr.BadRequest(c, "Tarih ve paket ID gerekli")
		return
	}

	date, err := parseDateParam(dateStr)
	if err != nil {
		httperr.BadRequest(c, "Geçersiz tarih")
		return
	}

	packageID, err := strconv.ParseUint(packageIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Geçersiz paket ID")
		return
	}

	slots, err := h.slotsUC.Execute(c.Request.Context(), date, uint(packageID))
	if err != nil {
		httperr.Internal(c, "Uygun saatler yüklenemedi")
		return
	}

	c.JSON(http.StatusOK, slots)
}
