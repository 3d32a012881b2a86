package utils

import (
	"regexp"
	"testing"
)

var orderNoRe = regexp.MustCompile(`^ORD-\d{13}-[0-9A-F]{9}$`)

func TestNewOrderNumber(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		no := NewOrderNumber()
		if !orderNoRe.MatchString(no) {
			t.Fatalf("unexpected format: %q", no)
		}
		if seen[no] {
			t.Fatalf("duplicate order number: %q", no)
		}
		seen[no] = true
	}
}
