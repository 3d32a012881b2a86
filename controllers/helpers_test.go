package controllers

import (
	"testing"
	"time"

	"github.com/TcMarsh31/GrocXpressAdmin/utils"
)

func TestStrPtr(t *testing.T) {
	m := map[string]interface{}{"a": "hello", "b": "", "c": 42}
	if p := strPtr(m, "a"); p == nil || *p != "hello" {
		t.Fatalf("got %v", p)
	}
	if p := strPtr(m, "b"); p != nil {
		t.Fatal("empty string should map to nil")
	}
	if p := strPtr(m, "c"); p != nil {
		t.Fatal("non-string should map to nil")
	}
	if p := strPtr(m, "missing"); p != nil {
		t.Fatal("missing key should map to nil")
	}
}

func TestNumAndIntval(t *testing.T) {
	m := map[string]interface{}{"f": 2.5, "i": 3, "s": "7"}
	if got := num(m, "f"); got != 2.5 {
		t.Fatalf("got %v", got)
	}
	if got := num(m, "i"); got != 3 {
		t.Fatalf("got %v", got)
	}
	if got := num(m, "s"); got != 0 {
		t.Fatalf("strings do not coerce, got %v", got)
	}
	if got := intval(m, "f"); got != 2 {
		t.Fatalf("got %d", got)
	}
}

func TestPickDate(t *testing.T) {
	fields := map[string]interface{}{}

	body := map[string]interface{}{"order_shipped_date": "2024-06-01T10:30:00Z"}
	if err := pickDate(body, "order_shipped_date", fields); err != nil {
		t.Fatal(err)
	}
	got, ok := fields["order_shipped_date"].(time.Time)
	if !ok || !got.Equal(time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)) {
		t.Fatalf("got %v", fields["order_shipped_date"])
	}

	body = map[string]interface{}{"order_delivered_date": "2024-06-02"}
	if err := pickDate(body, "order_delivered_date", fields); err != nil {
		t.Fatal(err)
	}
	if _, ok := fields["order_delivered_date"].(time.Time); !ok {
		t.Fatalf("date-only form should parse, got %v", fields["order_delivered_date"])
	}

	body = map[string]interface{}{"order_confirmed_date": "yesterday"}
	err := pickDate(body, "order_confirmed_date", fields)
	apiErr, ok := err.(*utils.APIError)
	if !ok || apiErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("got %v", err)
	}

	// Absent keys never touch the update map.
	if err := pickDate(map[string]interface{}{}, "order_confirmed_date", fields); err != nil {
		t.Fatal(err)
	}
	if _, ok := fields["order_confirmed_date"]; ok {
		t.Fatal("absent key should not be picked")
	}
}
