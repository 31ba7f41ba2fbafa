package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/randevuapp/booking-api/internal/domain/booking"
	"github.com/randevuapp/booking-api/internal/httperr"
	"github.com/randevuapp/booking-api/internal/models"
)

type PaymentHandler struct {
	db *gorm.DB
}

func NewPaymentHandler(db *gorm.DB) *PaymentHandler {
	return &PaymentHandler{db: db}
}

// --------- Requests ---------

// Ödeme kaydı sadece eklenir; gerçek bir gateway entegrasyonu yok.
type CreatePaymentRequest struct {
	AppointmentID uint       `json:"appointmentId" binding:"required"`
	Amount        float64    `json:"amount" binding:"required"`
	PaymentMethod string     `json:"paymentMethod" binding:"required"`
	PaymentStatus string     `json:"paymentStatus"`
	TransactionID string     `json:"transactionId"`
	PaymentDate   *time.Time `json:"paymentDate"`
}

type UpdatePaymentRequest struct {
	Amount        *float64   `json:"amount,omitempty"`
	PaymentMethod *string    `json:"paymentMethod,omitempty"`
	PaymentStatus *string    `json:"paymentStatus,omitempty"`
	TransactionID *string    `json:"transactionId,omitempty"`
	PaymentDate   *time.Time `json:"paymentDate,omitempty"`
}

// --------- Handlers ---------

func (h *PaymentHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Payment{})

	if status := c.Query("status"); status != "" {
		q = q.Where("payment_status = ?", status)
	}

	if method := c.Query("method"); method != "" {
		q = q.Where("payment_method = ?", method)
	}

	if appointmentIDStr := c.Query("appointmentId"); appointmentIDStr != "" {
		if appointmentID, err := strconv.ParseUint(appointmentIDStr, 10, 64); err == nil {
			q = q.Where("appointment_id = ?", appointmentID)
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

	payments := []models.Payment{}
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&payments).Error; err != nil {

		httperr.Internal(c, "Ödemeler yüklenemedi")
		return
	}

	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Geçersiz ödeme ID")
		return
	}

	var payment models.Payment
	if err := h.db.First(&payment, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Ödeme bulunamadı")
			return
		}
		httperr.Internal(c, "Ödeme yüklenemedi")
		return
	}

	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Ödeme kaydı başarısız")
		return
	}

	if !domain.IsValidPaymentMethod(domain.PaymentMethod(req.PaymentMethod)) {
		httperr.BadRequest(c, "Ödeme kaydı başarısız")
		return
	}

	status := req.PaymentStatus
	if status == "" {
		status = string(domain.PaymentPending)
	}
	if !domain.IsValidPaymentStatus(domain.PaymentStatus(status)) {
		httperr.BadRequest(c, "Ödeme kaydı başarısız")
		return
	}

	payment := models.Payment{
		AppointmentID: req.AppointmentID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: status,
		TransactionID: req.TransactionID,
		PaymentDate:   req.PaymentDate,
	}

	if err := h.db.Create(&payment).Error; err != nil {
		httperr.BadRequest(c, "Ödeme kaydı başarısız")
		return
	}

	c.JSON(http.StatusCreated, payment)
}

func (h *PaymentHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Geçersiz ödeme ID")
		return
	}

	var payment models.Payment
	if err := h.db.First(&payment, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Ödeme bulunamadı")
			return
		}
		httperr.Internal(c, "Ödeme yüklenemedi")
		return
	}

	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Ödeme güncelleme başarısız")
		return
	}

	if req.Amount != nil {
		payment.Amount = *req.Amount
	}
	if req.PaymentMethod != nil {
		if !domain.IsValidPaymentMethod(domain.PaymentMethod(*req.PaymentMethod)) {
			httperr.BadRequest(c, "Ödeme güncelleme başarısız")
			return
		}
		payment.PaymentMethod = *req.PaymentMethod
	}
	if req.PaymentStatus != nil {
		if !domain.IsValidPaymentStatus(domain.PaymentStatus(*req.PaymentStatus)) {
			httperr.BadRequest(c, "Ödeme güncelleme başarısız")
			return
		}
		payment.PaymentStatus = *req.PaymentStatus
	}
	if req.TransactionID != nil {
		payment.TransactionID = *req.TransactionID
	}
	if req.PaymentDate != nil {
		payment.PaymentDate = req.PaymentDate
	}

	if err := h.db.Save(&payment).Error; err != nil {
		httperr.BadRequest(c, "Ödeme güncelleme başarısız")
		return
	}

	c.JSON(http.StatusOK, payment)
}
