package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentMode values accepted on a sales invoice. Customer payment mode is
// free text and is NOT restricted to this set.
const (
	PaymentCash = "Cash"
	PaymentUPI  = "UPI"
	PaymentCard = "Card"
)

// Ingredient is one entry in an item's recipe.
type Ingredient struct {
	Name     string  `json:"name" bson:"name"`
	Quantity float64 `json:"quantity" bson:"quantity"`
	Unit     string  `json:"unit,omitempty" bson:"unit,omitempty"`
}

// AddOn is an optional extra that can be attached to an item.
type AddOn struct {
	ItemCode string  `json:"item_code" bson:"item_code"`
	Rate     float64 `json:"rate" bson:"rate"`
}

// Combo is a bundled item offered alongside a catalog entry.
type Combo struct {
	ItemCode string  `json:"item_code" bson:"item_code"`
	Rate     float64 `json:"rate" bson:"rate"`
}

// Item is a catalog entry. ItemCode is a natural key by convention only —
// the store does not enforce uniqueness.
type Item struct {
	ID                primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ItemCode          string             `json:"item_code" bson:"item_code"`
	ItemName          string             `json:"item_name" bson:"item_name"`
	ItemGroup         string             `json:"item_group" bson:"item_group"`
	Image             string             `json:"image" bson:"image"`
	ValuationRate     float64            `json:"valuation_rate" bson:"valuation_rate"`
	IsAddonApplicable bool               `json:"is_addon_applicable,omitempty" bson:"is_addon_applicable,omitempty"`
	IsComboApplicable bool               `json:"is_combo_applicable,omitempty" bson:"is_combo_applicable,omitempty"`
	TotalCalories     float64            `json:"total_calories,omitempty" bson:"total_calories,omitempty"`
	TotalProtein      float64            `json:"total_protein,omitempty" bson:"total_protein,omitempty"`
	Ingredients       []Ingredient       `json:"ingredients,omitempty" bson:"ingredients,omitempty"`
	AddOns            []AddOn            `json:"addons,omitempty" bson:"addons,omitempty"`
	Combos            []Combo            `json:"combos,omitempty" bson:"combos,omitempty"`
}

// Customer is a billing party.
type Customer struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name"`
	Email           string             `json:"email" bson:"email"`
	Phone           string             `json:"phone" bson:"phone"`
	Address         string             `json:"address" bson:"address"`
	Pincode         string             `json:"pincode" bson:"pincode"`
	PaymentMode     string             `json:"paymentMode" bson:"paymentMode"`
	AccountManager  string             `json:"accountManager" bson:"accountManager"`
	BillingCurrency string             `json:"billingCurrency" bson:"billingCurrency"`
}

// SalesInvoice is a completed sale. CustomerID references a Customer by hex
// id; the reference is not checked at insert time.
type SalesInvoice struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	CustomerID  string             `json:"customerId" bson:"customer"`
	PaymentMode string             `json:"paymentMode" bson:"paymentMode"`
	TotalAmount float64            `json:"totalAmount" bson:"totalAmount"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// CustomerRef is the shallow projection joined into an invoice lookup.
type CustomerRef struct {
	Name  string `json:"name" bson:"name"`
	Phone string `json:"phone" bson:"phone"`
}

// InvoiceDetail is a SalesInvoice with the raw customer id replaced by the
// joined projection. Customer is nil when the reference points nowhere.
type InvoiceDetail struct {
	ID          primitive.ObjectID `json:"_id"`
	Customer    *CustomerRef       `json:"customer"`
	PaymentMode string             `json:"paymentMode"`
	TotalAmount float64            `json:"totalAmount"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// DailySales is one bucket of the day-grouped sales aggregation. The bson
// tags match the aggregation output, where the group key lands in _id.
type DailySales struct {
	Date        string  `json:"_id" bson:"_id"`
	TotalAmount float64 `json:"totalAmount" bson:"totalAmount"`
}
