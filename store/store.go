package store

import (
	"context"
	"errors"
	"time"

	"pos-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("record not found")

// Store is the persistence handle injected into the handlers.
type Store interface {
	InsertItem(ctx context.Context, item models.Item) (models.Item, error)
	ListItems(ctx context.Context) ([]models.Item, error)

	InsertCustomer(ctx context.Context, customer models.Customer) (models.Customer, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)

	InsertInvoice(ctx context.Context, inv models.SalesInvoice) (models.SalesInvoice, error)
	GetInvoice(ctx context.Context, id string) (models.InvoiceDetail, error)
	SalesByDay(ctx context.Context) ([]models.DailySales, error)
}

// Mongo implements Store on top of a Mongo database with three independent
// collections. No cross-collection constraints are enforced.
type Mongo struct {
	items     *mongo.Collection
	customers *mongo.Collection
	invoices  *mongo.Collection
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{
		items:     db.Collection("items"),
		customers: db.Collection("customers"),
		invoices:  db.Collection("sales_invoices"),
	}
}

func (m *Mongo) InsertItem(ctx context.Context, item models.Item) (models.Item, error) {
	item.ID = primitive.NewObjectID()
	if _, err := m.items.InsertOne(ctx, item); err != nil {
		return models.Item{}, err
	}
	return item, nil
}

func (m *Mongo) ListItems(ctx context.Context) ([]models.Item, error) {
	cur, err := m.items.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var items []models.Item
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (m *Mongo) InsertCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	customer.ID = primitive.NewObjectID()
	if _, err := m.customers.InsertOne(ctx, customer); err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}

func (m *Mongo) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	cur, err := m.customers.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var customers []models.Customer
	if err := cur.All(ctx, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (m *Mongo) InsertInvoice(ctx context.Context, inv models.SalesInvoice) (models.SalesInvoice, error) {
	inv.ID = primitive.NewObjectID()
	inv.CreatedAt = time.Now().UTC()
	if _, err := m.invoices.InsertOne(ctx, inv); err != nil {
		return models.SalesInvoice{}, err
	}
	return inv, nil
}

// GetInvoice fetches one invoice and shallow-joins the referenced customer
// as a {name, phone} projection. A dangling customer reference is not an
// error: the projection comes back nil.
func (m *Mongo) GetInvoice(ctx context.Context, id string) (models.InvoiceDetail, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.InvoiceDetail{}, err
	}

	var inv models.SalesInvoice
	if err := m.invoices.FindOne(ctx, bson.M{"_id": oid}).Decode(&inv); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.InvoiceDetail{}, ErrNotFound
		}
		return models.InvoiceDetail{}, err
	}

	detail := models.InvoiceDetail{
		ID:          inv.ID,
		PaymentMode: inv.PaymentMode,
		TotalAmount: inv.TotalAmount,
		CreatedAt:   inv.CreatedAt,
	}

	if custID, err := primitive.ObjectIDFromHex(inv.CustomerID); err == nil {
		var ref models.CustomerRef
		proj := options.FindOne().SetProjection(bson.M{"name": 1, "phone": 1})
		err := m.customers.FindOne(ctx, bson.M{"_id": custID}, proj).Decode(&ref)
		switch {
		case err == nil:
			detail.Customer = &ref
		case errors.Is(err, mongo.ErrNoDocuments):
			// invoice references a customer that no longer (or never) existed
		default:
			return models.InvoiceDetail{}, err
		}
	}
	return detail, nil
}

// SalesByDay groups invoices by the calendar date of createdAt, sums the
// totals per day and returns the buckets in ascending date order.
func (m *Mongo) SalesByDay(ctx context.Context) ([]models.DailySales, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m-%d",
				"date":   "$createdAt",
			}},
			"totalAmount": bson.M{"$sum": "$totalAmount"},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	cur, err := m.invoices.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var report []models.DailySales
	if err := cur.All(ctx, &report); err != nil {
		return nil, err
	}
	return report, nil
}
