package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/randevuapp/booking-api/internal/httperr"
	ucBooking "github.com/randevuapp/booking-api/internal/usecase/booking"
)

type ReportHandler struct {
	monthlyUC *ucBooking.GetMonthlyReport
}

func NewReportHandler(monthlyUC *ucBooking.GetMonthlyReport) *ReportHandler {
	return &ReportHandler{monthlyUC: monthlyUC}
}

func (h *ReportHandler) Monthly(c *gin.Context) {
	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "Yıl ve ay parametreleri gerekli")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "Geçersiz yıl")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "Geçersiz ay")
		return
	}

	report, err := h.monthlyUC.Execute(c.Request.Context(), year, month)
	if err != nil {
		httperr.Internal(c, "Rapor oluşturulamadı")
		return
	}

	c.JSON(http.StatusOK, report)
}
