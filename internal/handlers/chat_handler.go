package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/randevuapp/booking-api/internal/httperr"
	"github.com/randevuapp/booking-api/internal/models"
)

type ChatHandler struct {
	db *gorm.DB
}

func NewChatHandler(db *gorm.DB) *ChatHandler {
	return &ChatHandler{db: db}
}

// --------- Requests ---------

type CreateChatMessageRequest struct {
	SessionID  string `json:"sessionId" binding:"required"`
	Message    string `json:"message" binding:"required"`
	IsFromUser *bool  `json:"isFromUser" binding:"required"`
}

// --------- Handlers ---------

func (h *ChatHandler) ListBySession(c *gin.Context) {
	sessionID := c.Param("sessionId")

	messages := []models.ChatMessage{}
	if err := h.db.
		Where("session_id = ?", sessionID).
		Order("timestamp ASC").
		Find(&messages).Error; err != nil {

		httperr.Internal(c, "Mesajlar yüklenemedi")
		return
	}

	c.JSON(http.StatusOK, messages)
}

func (h *ChatHandler) Create(c *gin.Context) {
	var req CreateChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Mesaj gönderme başarısız")
		return
	}

	msg := models.ChatMessage{
		SessionID:  req.SessionID,
		Message:    req.Message,
		IsFromUser: *req.IsFromUser,
	}

	if err := h.db.Create(&msg).Error; err != nil {
		httperr.BadRequest(c, "Mesaj gönderme başarısız")
		return
	}

	c.JSON(http.StatusCreated, msg)
}
