// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the aggregate root for a customer purchase. It owns its ordered
// sequence of OrderDetail value-records: the details are written together
// with the order and cannot outlive it.
type Order struct {
	ID         int64           // Numeric identity of the order.
	UserID     int64           // The customer who placed the order (non-owning reference).
	Status     OrderStatus     // Current position in the order state machine.
	TotalPrice decimal.Decimal // Sum of Price*Quantity over all details.
	CreatedAt  time.Time       // Timestamp of when the order was placed.
	Details    []OrderDetail   // Line items, in the order they were submitted.
}

// OrderDetail is a single line item of an order. Price is the plant's unit
// price captured at order time; it never changes afterwards, so historical
// totals are immune to later catalog price edits.
type OrderDetail struct {
	ID       int64           // Numeric identity of the line item.
	OrderID  int64           // Owning order.
	PlantID  int64           // Referenced plant (non-owning reference).
	Quantity int             // Number of units, always >= 1.
	Price    decimal.Decimal // Unit price snapshot taken at order time.
}

// LineTotal returns Price multiplied by Quantity for this line.
func (d OrderDetail) LineTotal() decimal.Decimal {
	return d.Price.Mul(decimal.NewFromInt(int64(d.Quantity)))
}

// OrderStatus represents the position of an order in its lifecycle.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// orderTransitions is the full table of legal order status transitions.
// Any (current, requested) pair not present here is rejected.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderConfirmed, OrderCancelled},
	OrderConfirmed: {OrderShipped, OrderCancelled},
	OrderShipped:   {OrderDelivered},
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is permitted from s.
func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}

// CanTransitionTo reports whether moving from s to next is a legal
// transition. It is a pure table lookup with no side effects.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// ParseOrderStatus converts a raw string into an OrderStatus.
// The boolean is false when the string is not part of the closed set.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	status := OrderStatus(s)

	return status, status.IsValid()
}
