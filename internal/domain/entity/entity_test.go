package entity

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Role
		ok    bool
	}{
		{input: "customer", want: RoleCustomer, ok: true},
		{input: " Seller ", want: RoleSeller, ok: true},
		{input: "ADMIN", want: RoleAdmin, ok: true},
		{input: "superuser", ok: false},
		{input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseRole(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestPrincipal_HasRole(t *testing.T) {
	t.Parallel()

	seller := &Principal{Role: RoleSeller}
	assert.True(t, seller.HasRole(RoleSeller, RoleAdmin))
	assert.False(t, seller.HasRole(RoleAdmin))
	assert.False(t, seller.IsAdmin())

	var nilPrincipal *Principal
	assert.False(t, nilPrincipal.HasRole(RoleCustomer))
	assert.False(t, nilPrincipal.IsAdmin())
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input, want string
	}{
		{input: "Pain Relief", want: "pain-relief"},
		{input: "  Vitamins & Supplements  ", want: "vitamins-supplements"},
		{input: "--cold--flu--", want: "cold-flu"},
		{input: "Paracetamol 500mg", want: "paracetamol-500mg"},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	t.Parallel()

	assert.True(t, OrderStatusPending.CanTransitionTo(OrderStatusProcessing))
	assert.True(t, OrderStatusProcessing.CanTransitionTo(OrderStatusShipped))
	assert.True(t, OrderStatusShipped.CanTransitionTo(OrderStatusDelivered))
	assert.True(t, OrderStatusShipped.CanTransitionTo(OrderStatusCancelled))

	assert.False(t, OrderStatusPending.CanTransitionTo(OrderStatusDelivered))
	assert.False(t, OrderStatusDelivered.CanTransitionTo(OrderStatusCancelled))
	assert.False(t, OrderStatusCancelled.CanTransitionTo(OrderStatusPending))
	assert.True(t, OrderStatusCancelled.IsFinal())
}

func TestOrder_RecalculateTotal(t *testing.T) {
	t.Parallel()

	order := &Order{Items: []*OrderItem{
		{Price: decimal.RequireFromString("12.50"), Quantity: 2},
		{Price: decimal.RequireFromString("3.99"), Quantity: 1},
	}}
	order.RecalculateTotal()

	assert.True(t, decimal.RequireFromString("28.99").Equal(order.Total))
}

func TestNewPagination(t *testing.T) {
	t.Parallel()

	p := NewPagination(2, 10, 25)
	assert.Equal(t, Pagination{Page: 2, Limit: 10, Total: 25, TotalPages: 3, HasNextPage: true, HasPrevPage: true}, p)

	p = NewPagination(0, 0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageLimit, p.Limit)
	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNextPage)
	assert.False(t, p.HasPrevPage)

	p = NewPagination(1, 1000, 5)
	assert.Equal(t, MaxPageLimit, p.Limit)
	assert.Equal(t, 20, Offset(3, 10))
}

func TestOffset_HugePageDoesNotOverflow(t *testing.T) {
	t.Parallel()

	page, _ := NormalizePage(math.MaxInt, 10)
	assert.Equal(t, MaxPage, page)

	offset := Offset(math.MaxInt, MaxPageLimit)
	assert.Equal(t, (MaxPage-1)*MaxPageLimit, offset)
	assert.Positive(t, offset)
}

func TestNewPage_NilItemsRenderAsEmptyArray(t *testing.T) {
	t.Parallel()

	page := NewPage[*User](nil, 1, 10, 0)
	data, err := json.Marshal(page)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"items":[]`)
}

func TestRoundMoney(t *testing.T) {
	t.Parallel()

	sum := decimal.RequireFromString("10.005").Add(decimal.RequireFromString("5.00"))
	assert.Equal(t, 15.01, RoundMoney(sum))
	assert.Equal(t, 0.0, RoundMoney(decimal.Zero))
}

func TestRatingSummary_Average(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, RatingSummary{}.Average())
	assert.Equal(t, 4.5, RatingSummary{Count: 2, Sum: 9}.Average())
	assert.Equal(t, 4.7, RatingSummary{Count: 3, Sum: 14}.Average())
}

func TestMedicine_PriceRendersAsNumber(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(&Medicine{Price: decimal.RequireFromString("9.90")})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"price":9.9`)
}
