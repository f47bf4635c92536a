package schema

import (
	"testing"
	"time"

	"github.com/hamba/avro/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrderV1() OrderV1 {
	placed := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	return OrderV1{
		OrderID:           "5f0c6a3e-7c1e-4a53-9a4b-1d2f3e4a5b6c",
		Number:            "SS-ABC123XYZ",
		Email:             "jane@example.com",
		PlacedAt:          placed,
		EstimatedDelivery: placed.Add(5 * 24 * time.Hour),
		Items: []OrderItemV1{
			{ProductID: 1, Title: "Backpack", Quantity: 2, Price: 109.95},
		},
		Subtotal:      "219.90",
		Tax:           "17.59",
		Shipping:      "0.00",
		Total:         "237.49",
		PaymentMethod: "**** **** **** 4242",
		ShippingAddress: ShippingAddressV1{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane@example.com",
			Phone:     "555-0100",
			Address:   "1 Main St",
			City:      "Springfield",
			State:     "IL",
			ZipCode:   "62701",
		},
	}
}

func TestOrderV1(t *testing.T) {
	var s avro.Schema
	require.NotPanics(t, func() {
		s = OrderV1Avro()
	})

	want := testOrderV1()
	data, err := avro.Marshal(s, want)
	require.NoError(t, err)

	var got OrderV1
	require.NoError(t, avro.Unmarshal(s, data, &got))

	assert.True(t, want.PlacedAt.Equal(got.PlacedAt))
	assert.True(t, want.EstimatedDelivery.Equal(got.EstimatedDelivery))
	got.PlacedAt, got.EstimatedDelivery = want.PlacedAt, want.EstimatedDelivery
	assert.Equal(t, want, got)
}

func TestOrderHistoryV1(t *testing.T) {
	var s avro.Schema
	require.NotPanics(t, func() {
		s = OrderHistoryV1Avro()
	})

	t.Run("Regular", func(t *testing.T) {
		placed := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
		want := OrderHistoryV1{Orders: []OrderSummaryV1{
			{Number: "SS-2", PlacedAt: placed.Add(time.Hour), Items: 1, Total: 10.8},
			{Number: "SS-1", PlacedAt: placed, Items: 3, Total: 99.25},
		}}

		data, err := avro.Marshal(s, want)
		require.NoError(t, err)

		var got OrderHistoryV1
		require.NoError(t, avro.Unmarshal(s, data, &got))
		require.Len(t, got.Orders, 2)
		for i := range want.Orders {
			assert.Equal(t, want.Orders[i].Number, got.Orders[i].Number)
			assert.True(t, want.Orders[i].PlacedAt.Equal(got.Orders[i].PlacedAt))
			assert.Equal(t, want.Orders[i].Items, got.Orders[i].Items)
			assert.Equal(t, want.Orders[i].Total, got.Orders[i].Total)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		data, err := avro.Marshal(s, OrderHistoryV1{})
		require.NoError(t, err)

		var got OrderHistoryV1
		require.NoError(t, avro.Unmarshal(s, data, &got))
		assert.Empty(t, got.Orders)
	})
}
