package models

import (
	"testing"
	"time"
)

func ts(offset time.Duration) *time.Time {
	t := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC).Add(offset)
	return &t
}

func TestDeliveryStatusProgression(t *testing.T) {
	o := &Order{}
	if got := o.DeliveryStatus(); got != "" {
		t.Fatalf("no milestones: got %q", got)
	}

	o.OrderPlacedDate = ts(0)
	if got := o.DeliveryStatus(); got != StatusPlaced {
		t.Fatalf("placed: got %q", got)
	}

	o.OrderConfirmedDate = ts(time.Hour)
	if got := o.DeliveryStatus(); got != StatusConfirmed {
		t.Fatalf("confirmed: got %q", got)
	}

	o.OrderShippedDate = ts(2 * time.Hour)
	if got := o.DeliveryStatus(); got != StatusShipped {
		t.Fatalf("shipped: got %q", got)
	}

	o.OutForDeliveryDate = ts(3 * time.Hour)
	if got := o.DeliveryStatus(); got != StatusOutForDelivery {
		t.Fatalf("out for delivery: got %q", got)
	}

	o.OrderDeliveredDate = ts(4 * time.Hour)
	if got := o.DeliveryStatus(); got != StatusDelivered {
		t.Fatalf("delivered: got %q", got)
	}
}

func TestDeliveryStatusDeliveredWinsOverGaps(t *testing.T) {
	// A delivered stamp decides the status even when intermediate
	// milestones were never recorded.
	o := &Order{
		OrderPlacedDate:    ts(0),
		OrderDeliveredDate: ts(time.Hour),
	}
	if got := o.DeliveryStatus(); got != StatusDelivered {
		t.Fatalf("got %q", got)
	}
}

func TestTimeline(t *testing.T) {
	o := &Order{
		OrderPlacedDate:  ts(0),
		OrderShippedDate: ts(2 * time.Hour),
	}
	steps := o.Timeline()
	if len(steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(steps))
	}
	if steps[0].Status != StatusPlaced || steps[0].Label != "Order Placed" {
		t.Fatalf("unexpected first step: %+v", steps[0])
	}
	if steps[1].Status != StatusShipped || steps[1].Label != "Order Shipped" {
		t.Fatalf("unexpected second step: %+v", steps[1])
	}
	if !steps[0].Timestamp.Before(steps[1].Timestamp) {
		t.Fatal("steps out of order")
	}
}

func TestTimelineEmpty(t *testing.T) {
	o := &Order{}
	if steps := o.Timeline(); len(steps) != 0 {
		t.Fatalf("expected no steps, got %d", len(steps))
	}
}
