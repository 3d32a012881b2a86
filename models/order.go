package models

import "time"

type DeliveryStatus string

const (
	StatusPlaced         DeliveryStatus = "placed"
	StatusConfirmed      DeliveryStatus = "confirmed"
	StatusShipped        DeliveryStatus = "shipped"
	StatusOutForDelivery DeliveryStatus = "out_for_delivery"
	StatusDelivered      DeliveryStatus = "delivered"
)

// Order's delivery status is derived from the milestone timestamps below.
// Milestones are only ever set, never cleared, so the derived status moves
// strictly forward; "delivered" is terminal.
type Order struct {
	ID                 string     `json:"id"`
	OrderNumber        string     `json:"order_number"`
	UserID             *string    `json:"user_id"`
	ItemCount          int        `json:"item_count"`
	TotalAmount        float64    `json:"total_amount"`
	OrderPlacedDate    *time.Time `json:"order_placed_date"`
	OrderConfirmedDate *time.Time `json:"order_confirmed_date"`
	OrderShippedDate   *time.Time `json:"order_shipped_date"`
	OutForDeliveryDate *time.Time `json:"out_for_delivery_date"`
	OrderDeliveredDate *time.Time `json:"order_delivered_date"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// DeliveryStatus reports the latest-set milestone, or "" when no milestone
// has been recorded yet.
func (o *Order) DeliveryStatus() DeliveryStatus {
	switch {
	case o.OrderDeliveredDate != nil:
		return StatusDelivered
	case o.OutForDeliveryDate != nil:
		return StatusOutForDelivery
	case o.OrderShippedDate != nil:
		return StatusShipped
	case o.OrderConfirmedDate != nil:
		return StatusConfirmed
	case o.OrderPlacedDate != nil:
		return StatusPlaced
	}
	return ""
}

type TrackingStep struct {
	Status    DeliveryStatus `json:"status"`
	Label     string         `json:"label"`
	Timestamp time.Time      `json:"timestamp"`
}

// Timeline lists the milestones that have been reached, in delivery order.
func (o *Order) Timeline() []TrackingStep {
	steps := make([]TrackingStep, 0, 5)
	if o.OrderPlacedDate != nil {
		steps = append(steps, TrackingStep{StatusPlaced, "Order Placed", *o.OrderPlacedDate})
	}
	if o.OrderConfirmedDate != nil {
		steps = append(steps, TrackingStep{StatusConfirmed, "Order Confirmed", *o.OrderConfirmedDate})
	}
	if o.OrderShippedDate != nil {
		steps = append(steps, TrackingStep{StatusShipped, "Order Shipped", *o.OrderShippedDate})
	}
	if o.OutForDeliveryDate != nil {
		steps = append(steps, TrackingStep{StatusOutForDelivery, "Out for Delivery", *o.OutForDeliveryDate})
	}
	if o.OrderDeliveredDate != nil {
		steps = append(steps, TrackingStep{StatusDelivered, "Delivered", *o.OrderDeliveredDate})
	}
	return steps
}
