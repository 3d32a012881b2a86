package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

type PaginationInfo struct {
	Page            int  `json:"page"`
	Limit           int  `json:"limit"`
	Total           int  `json:"total"`
	Pages           int  `json:"pages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

func NewPaginationInfo(page, limit, total int) PaginationInfo {
	pages := TotalPages(total, limit)
	return PaginationInfo{
		Page:            page,
		Limit:           limit,
		Total:           total,
		Pages:           pages,
		HasNextPage:     page < pages,
		HasPreviousPage: page > 1,
	}
}

func TotalPages(total, limit int) int {
	if limit < 1 {
		return 0
	}
	return (total + limit - 1) / limit
}

// ParsePagination clamps page to >= 1 and limit to 1..100.
func ParsePagination(c *fiber.Ctx) (page, limit int) {
	page, _ = strconv.Atoi(c.Query("page", "1"))
	if page < DefaultPage {
		page = DefaultPage
	}
	limit, _ = strconv.Atoi(c.Query("limit", "20"))
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}
