package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestNewPaginationInfo(t *testing.T) {
	cases := []struct {
		page, limit, total int
		pages              int
		hasNext, hasPrev   bool
	}{
		{1, 20, 0, 0, false, false},
		{1, 20, 20, 1, false, false},
		{1, 20, 21, 2, true, false},
		{2, 10, 25, 3, true, true},
		{3, 10, 25, 3, false, true},
	}
	for _, tc := range cases {
		got := NewPaginationInfo(tc.page, tc.limit, tc.total)
		if got.Pages != tc.pages {
			t.Errorf("page=%d limit=%d total=%d: pages=%d, want %d", tc.page, tc.limit, tc.total, got.Pages, tc.pages)
		}
		if got.HasNextPage != tc.hasNext {
			t.Errorf("page=%d limit=%d total=%d: hasNextPage=%v, want %v", tc.page, tc.limit, tc.total, got.HasNextPage, tc.hasNext)
		}
		if got.HasPreviousPage != tc.hasPrev {
			t.Errorf("page=%d limit=%d total=%d: hasPreviousPage=%v, want %v", tc.page, tc.limit, tc.total, got.HasPreviousPage, tc.hasPrev)
		}
	}
}

func TestParsePagination(t *testing.T) {
	cases := []struct {
		query       string
		page, limit int
	}{
		{"", 1, 20},
		{"?page=3&limit=50", 3, 50},
		{"?page=0&limit=0", 1, 20},
		{"?page=-2&limit=999", 1, 100},
		{"?page=abc&limit=xyz", 1, 20},
	}
	for _, tc := range cases {
		app := fiber.New()
		var page, limit int
		app.Get("/", func(c *fiber.Ctx) error {
			page, limit = ParsePagination(c)
			return c.SendStatus(fiber.StatusOK)
		})
		req := httptest.NewRequest("GET", "/"+tc.query, nil)
		if _, err := app.Test(req); err != nil {
			t.Fatalf("%q: %v", tc.query, err)
		}
		if page != tc.page || limit != tc.limit {
			t.Errorf("%q: got page=%d limit=%d, want page=%d limit=%d", tc.query, page, limit, tc.page, tc.limit)
		}
	}
}
