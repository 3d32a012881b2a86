// Package store holds the per-resource database accessors. Every accessor
// is a single-row or single-list operation over the shared pool; there is no
// retry and no transaction spanning multiple writes.
package store

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

var ErrNotFound = errors.New("not found")

type scanner interface {
	Scan(dest ...interface{}) error
}

func itoa(i int) string { return strconv.Itoa(i) }

func offset(page, limit int) int { return (page - 1) * limit }

// buildSet renders a SET clause from a column->value map with placeholders
// starting at $1, in sorted column order so the SQL is stable. Column names
// come from controller whitelists, never from client input. touch stamps
// updated_at; order_items has no such column, so its store passes false.
func buildSet(fields map[string]interface{}, touch bool) (string, []interface{}) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	set := make([]string, 0, len(keys)+1)
	args := make([]interface{}, 0, len(keys))
	ai := 1
	for _, k := range keys {
		set = append(set, k+" = $"+itoa(ai))
		args = append(args, fields[k])
		ai++
	}
	if touch {
		set = append(set, "updated_at = now()")
	}
	return strings.Join(set, ", "), args
}
