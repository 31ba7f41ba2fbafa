package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/randevuapp/booking-api/internal/httperr"
	"github.com/randevuapp/booking-api/internal/models"
)

type PackageHandler struct {
	db *gorm.DB
}

func NewPackageHandler(db *gorm.DB) *PackageHandler {
	return &PackageHandler{db: db}
}

// --------- Requests ---------

type CreatePackageRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Duration    int     `json:"duration" binding:"required,min=1"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

type UpdatePackageRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Duration    *int     `json:"duration,omitempty"`
	IsActive    *bool    `json:"isActive,omitempty"`
}

// --------- Handlers ---------

func (h *PackageHandler) List(c *gin.Context) {
	q := h.db.Model(&models.ServicePackage{})

	if c.Query("active") == "true" {
		q = q.Where("is_active = ?", true)
	}

	packages := []models.ServicePackage{}
	if err := q.
		Order("name ASC").
		Find(&packages).Error; err != nil {

		httperr.Internal(c, "Paketler yüklenemedi")
		return
	}

	c.JSON(http.StatusOK, packages)
}

func (h *PackageHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Geçersiz paket ID")
		return
	}

	var pkg models.ServicePackage
	if err := h.db.First(&pkg, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Paket bulunamadı")
			return
		}
		httperr.Internal(c, "Paket yüklenemedi")
		return
	}

	c.JSON(http.StatusOK, pkg)
}

func (h *PackageHandler) Create(c *gin.Context) {
	var req CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Paket oluşturma başarısız")
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	pkg := models.ServicePackage{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		IsActive:    active,
	}

	if err := h.db.Create(&pkg).Error; err != nil {
		httperr.BadRequest(c, "Paket oluşturma başarısız")
		return
	}

	c.JSON(http.StatusCreated, pkg)
}

func (h *PackageHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Geçersiz paket ID")
		return
	}

	var pkg models.ServicePackage
	if err := h.db.First(&pkg, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Paket bulunamadı")
			return
		}
		httperr.Internal(c, "Paket yüklenemedi")
		return
	}

	var req UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Paket güncelleme başarısız")
		return
	}

	if req.Name != nil {
		pkg.Name = *req.Name
	}
	if req.Description != nil {
		pkg.Description = *req.Description
	}
	if req.Price != nil {
		pkg.Price = *req.Price
	}
	if req.Duration != nil {
		pkg.Duration = *req.Duration
	}
	if req.IsActive != nil {
		pkg.IsActive = *req.IsActive
	}

	if err := h.db.Save(&pkg).Error; err != nil {
		httperr.BadRequest(c, "Paket güncelleme başarısız")
		return
	}

	c.JSON(http.StatusOK, pkg)
}
