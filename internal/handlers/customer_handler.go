package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/randevuapp/booking-api/internal/httperr"
	"github.com/randevuapp/booking-api/internal/models"
)

type CustomerHandler struct {
	db *gorm.DB
}

func NewCustomerHandler(db *gorm.DB) *CustomerHandler {
	return &CustomerHandler{db: db}
}

// --------- Requests ---------

type CreateCustomerRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
}

// --------- Handlers ---------

// Create is an upsert by email: an existing customer comes back with
// 200 and its original id, only a new email inserts a row. Lookup and
// insert are two statements; concurrent bookings can still race.
func (h *CustomerHandler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Müşteri kaydı başarısız")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.Customer
	err := h.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusOK, existing)
		return
	}
	if err != gorm.ErrRecordNotFound {
		httperr.BadRequest(c, "Müşteri kaydı başarısız")
		return
	}

	customer := models.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     email,
		Phone:     req.Phone,
	}

	if err := h.db.Create(&customer).Error; err != nil {
		httperr.BadRequest(c, "Müşteri kaydı başarısız")
		return
	}

	c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Geçersiz müşteri ID")
		return
	}

	var customer models.Customer
	if err := h.db.First(&customer, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Müşteri bulunamadı")
			return
		}
		httperr.Internal(c, "Müşteri yüklenemedi")
		return
	}

	c.JSON(http.StatusOK, customer)
}
