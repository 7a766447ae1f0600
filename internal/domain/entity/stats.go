package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SellerStats is the dashboard rollup for one seller.
type SellerStats struct {
	SellerID      uuid.UUID `json:"sellerId"`
	TotalProducts int64     `json:"totalProducts"`
	TotalOrders   int64     `json:"totalOrders"`
	TotalSales    float64   `json:"totalSales"`
	AverageReview float64   `json:"averageReview"`
	TotalReviews  int64     `json:"totalReviews"`
}

// UserCounts breaks the user base down by role.
type UserCounts struct {
	Total     int64 `json:"total"`
	Customers int64 `json:"customers"`
	Sellers   int64 `json:"sellers"`
	Admins    int64 `json:"admins"`
}

// AdminStats is the platform-wide dashboard rollup.
type AdminStats struct {
	Users                     UserCounts       `json:"users"`
	TotalProducts             int64            `json:"totalProducts"`
	TotalOrders               int64            `json:"totalOrders"`
	TotalSales                float64          `json:"totalSales"`
	OrdersByStatus            map[string]int64 `json:"ordersByStatus"`
	AverageReview             float64          `json:"averageReview"`
	TotalReviews              int64            `json:"totalReviews"`
	PendingSellerApplications int64            `json:"pendingSellerApplications"`
}

// SellerOrderLine is one order item of a seller's medicine joined with its order.
type SellerOrderLine struct {
	OrderID     uuid.UUID
	OrderStatus OrderStatus
	Price       decimal.Decimal
	Quantity    int
}

// RatingSummary holds the count and sum of a set of review ratings.
type RatingSummary struct {
	Count int64
	Sum   int64
}

// OrderStatusSummary aggregates the orders sharing one status.
type OrderStatusSummary struct {
	Status OrderStatus
	Count  int64
	Total  decimal.Decimal
}

// RoleCount is the number of users holding a role.
type RoleCount struct {
	Role  Role
	Count int64
}

// RoundMoney rounds half away from zero to two decimal places.
func RoundMoney(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// Average returns the mean rating rounded half away from zero to one decimal place,
// or 0 when there are no ratings.
func (s RatingSummary) Average() float64 {
	if s.Count == 0 {
		return 0
	}

	return decimal.NewFromInt(s.Sum).
		Div(decimal.NewFromInt(s.Count)).
		Round(1).
		InexactFloat64()
}
