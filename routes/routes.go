package routes

import (
	"pos-backend/handlers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	api := r.Group("/api")
	{
		// Catalog
		api.POST("/items", h.CreateItem)
		api.GET("/items", h.ListItems)

		// Customers
		api.POST("/customers", h.CreateCustomer)
		api.GET("/customers", h.ListCustomers)

		// Sales invoices & reporting
		api.POST("/create_sales_invoice", h.CreateSalesInvoice)
		api.GET("/get_sales_invoice/:id", h.GetSalesInvoice)
		api.GET("/sales_report", h.SalesReport)
		api.GET("/download_sales_report", h.DownloadSalesReport)
	}
}
