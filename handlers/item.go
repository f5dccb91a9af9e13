package handlers

import (
	"net/http"

	"pos-backend/models"

	"github.com/gin-gonic/gin"
)

type CreateItemRequest struct {
	ItemCode          string              `json:"item_code" binding:"required"`
	ItemName          string              `json:"item_name" binding:"required"`
	ItemGroup         string              `json:"item_group"`
	Image             string              `json:"image"`
	ValuationRate     float64             `json:"valuation_rate"`
	IsAddonApplicable bool                `json:"is_addon_applicable"`
	IsComboApplicable bool                `json:"is_combo_applicable"`
	TotalCalories     float64             `json:"total_calories"`
	TotalProtein      float64             `json:"total_protein"`
	Ingredients       []models.Ingredient `json:"ingredients"`
	AddOns            []models.AddOn      `json:"addons"`
	Combos            []models.Combo      `json:"combos"`
}

// CreateItem adds a catalog entry. item_code is not checked for uniqueness.
func (h *Handler) CreateItem(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.Item{
		ItemCode:          req.ItemCode,
		ItemName:          req.ItemName,
		ItemGroup:         req.ItemGroup,
		Image:             req.Image,
		ValuationRate:     req.ValuationRate,
		IsAddonApplicable: req.IsAddonApplicable,
		IsComboApplicable: req.IsComboApplicable,
		TotalCalories:     req.TotalCalories,
		TotalProtein:      req.TotalProtein,
		Ingredients:       req.Ingredients,
		AddOns:            req.AddOns,
		Combos:            req.Combos,
	}
	created, err := h.Store.InsertItem(c.Request.Context(), item)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Item created", "item": created})
}

// ListItems returns the whole catalog, unordered and unpaginated.
func (h *Handler) ListItems(c *gin.Context) {
	items, err := h.Store.ListItems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch items"})
		return
	}
	if items == nil {
		items = []models.Item{}
	}
	c.JSON(http.StatusOK, items)
}
