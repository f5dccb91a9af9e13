package handlers

import (
	"net/http"

	"pos-backend/models"

	"github.com/gin-gonic/gin"
)

type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Pincode string `json:"pincode"`
	// Free text here, unlike the closed set on invoices.
	PaymentMode     string `json:"paymentMode"`
	AccountManager  string `json:"accountManager"`
	BillingCurrency string `json:"billingCurrency"`
}

// CreateCustomer registers a billing party
func (h *Handler) CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer := models.Customer{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Address:         req.Address,
		Pincode:         req.Pincode,
		PaymentMode:     req.PaymentMode,
		AccountManager:  req.AccountManager,
		BillingCurrency: req.BillingCurrency,
	}
	created, err := h.Store.InsertCustomer(c.Request.Context(), customer)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create customer"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Customer created", "customer": created})
}

// ListCustomers returns all customers
func (h *Handler) ListCustomers(c *gin.Context) {
	customers, err := h.Store.ListCustomers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
		return
	}
	if customers == nil {
		customers = []models.Customer{}
	}
	c.JSON(http.StatusOK, customers)
}
