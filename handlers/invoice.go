package handlers

import (
	"errors"
	"net/http"

	"pos-backend/models"
	"pos-backend/store"

	"github.com/gin-gonic/gin"
)

type CreateInvoiceRequest struct {
	CustomerID  string  `json:"customerId" binding:"required"`
	PaymentMode string  `json:"paymentMode" binding:"required,oneof=Cash UPI Card"`
	TotalAmount float64 `json:"totalAmount" binding:"required"`
}

// CreateSalesInvoice records a completed sale. The customer reference is
// taken as-is: an id that matches no customer still produces an invoice.
func (h *Handler) CreateSalesInvoice(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inv := models.SalesInvoice{
		CustomerID:  req.CustomerID,
		PaymentMode: req.PaymentMode,
		TotalAmount: req.TotalAmount,
	}
	created, err := h.Store.InsertInvoice(c.Request.Context(), inv)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sales invoice"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Sales invoice created", "salesInvoice": created})
}

// GetSalesInvoice returns one invoice with the customer's name and phone
// joined in place of the raw id.
func (h *Handler) GetSalesInvoice(c *gin.Context) {
	detail, err := h.Store.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sales invoice not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales invoice"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"salesInvoice": detail})
}
