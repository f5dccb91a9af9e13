package handlers

import (
	"net/http"

	"pos-backend/models"
	"pos-backend/report"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SalesReport returns total sales per calendar day, ascending by date.
func (h *Handler) SalesReport(c *gin.Context) {
	rows, err := h.Store.SalesByDay(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate sales report"})
		return
	}
	if rows == nil {
		rows = []models.DailySales{}
	}
	c.JSON(http.StatusOK, rows)
}

// DownloadSalesReport streams the same aggregation as an xlsx attachment.
func (h *Handler) DownloadSalesReport(c *gin.Context) {
	rows, err := h.Store.SalesByDay(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate sales report"})
		return
	}

	f, err := report.BuildSalesXLSX(rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build spreadsheet"})
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", `attachment; filename=sales_report.xlsx`)
	c.Header("Content-Type", xlsxContentType)
	c.Status(http.StatusOK)
	if _, err := f.WriteTo(c.Writer); err != nil {
		// headers are gone already, nothing left to do but log via gin recovery path
		_ = c.Error(err)
	}
}
