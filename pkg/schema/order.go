package schema

import (
	"time"

	"github.com/hamba/avro/v2"
)

const OrderSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront.orders",
	"name": "order",
	"fields": [
		{"name": "order_id", "type": "string"},
		{"name": "number", "type": "string"},
		{"name": "email", "type": "string"},
		{"name": "placed_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
		{"name": "estimated_delivery", "type": {"type": "long", "logicalType": "timestamp-millis"}},
		{"name": "items", "type": {
			"type": "array",
			"items": {
				"type": "record",
				"name": "order_item",
				"fields": [
					{"name": "product_id", "type": "int"},
					{"name": "title", "type": "string"},
					{"name": "quantity", "type": "int"},
					{"name": "price", "type": "double"}
				]
			}
		}},
		{"name": "subtotal", "type": "string"},
		{"name": "tax", "type": "string"},
		{"name": "shipping", "type": "string"},
		{"name": "total", "type": "string"},
		{"name": "payment_method", "type": "string"},
		{"name": "shipping_address", "type": {
			"type": "record",
			"name": "shipping_address",
			"fields": [
				{"name": "first_name", "type": "string"},
				{"name": "last_name", "type": "string"},
				{"name": "email", "type": "string"},
				{"name": "phone", "type": "string"},
				{"name": "address", "type": "string"},
				{"name": "city", "type": "string"},
				{"name": "state", "type": "string"},
				{"name": "zip_code", "type": "string"}
			]
		}}
	]
}`

// Money amounts are decimal strings with two fraction digits.
type (
	OrderV1 struct {
		OrderID           string            `avro:"order_id"`
		Number            string            `avro:"number"`
		Email             string            `avro:"email"`
		PlacedAt          time.Time         `avro:"placed_at"`
		EstimatedDelivery time.Time         `avro:"estimated_delivery"`
		Items             []OrderItemV1     `avro:"items"`
		Subtotal          string            `avro:"subtotal"`
		Tax               string            `avro:"tax"`
		Shipping          string            `avro:"shipping"`
		Total             string            `avro:"total"`
		PaymentMethod     string            `avro:"payment_method"`
		ShippingAddress   ShippingAddressV1 `avro:"shipping_address"`
	}

	OrderItemV1 struct {
		ProductID int     `avro:"product_id"`
		Title     string  `avro:"title"`
		Quantity  int     `avro:"quantity"`
		Price     float64 `avro:"price"`
	}

	ShippingAddressV1 struct {
		FirstName string `avro:"first_name"`
		LastName  string `avro:"last_name"`
		Email     string `avro:"email"`
		Phone     string `avro:"phone"`
		Address   string `avro:"address"`
		City      string `avro:"city"`
		State     string `avro:"state"`
		ZipCode   string `avro:"zip_code"`
	}
)

func OrderV1Avro() avro.Schema {
	return avro.MustParse(OrderSchemaTextV1)
}

const OrderHistorySchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront.orders",
	"name": "order_history",
	"fields": [
		{"name": "orders", "type": {
			"type": "array",
			"items": {
				"type": "record",
				"name": "order_summary",
				"fields": [
					{"name": "number", "type": "string"},
					{"name": "placed_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
					{"name": "items", "type": "int"},
					{"name": "total", "type": "double"}
				]
			}
		}}
	]
}`

// An OrderHistoryV1 is the group table value, newest order first.
type (
	OrderHistoryV1 struct {
		Orders []OrderSummaryV1 `avro:"orders"`
	}

	OrderSummaryV1 struct {
		Number   string    `avro:"number"`
		PlacedAt time.Time `avro:"placed_at"`
		Items    int       `avro:"items"`
		Total    float64   `avro:"total"`
	}
)

func OrderHistoryV1Avro() avro.Schema {
	return avro.MustParse(OrderHistorySchemaTextV1)
}
