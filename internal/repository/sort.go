package repository

import (
	"fmt"

	"payment-automation/internal/entity"
)

// orderByClause builds an ORDER BY fragment from a page request, falling back
// to created_at when the requested column is not in the whitelist. sortBy is
// never interpolated unchecked.
func orderByClause(req entity.PageRequest, allowed map[string]bool) string {
	column := req.SortBy
	if !allowed[column] {
		column = entity.DefaultSortBy
	}
	direction := "DESC"
	if req.SortOrder == entity.SortAsc {
		direction = "ASC"
	}
	return fmt.Sprintf("ORDER BY %s %s", column, direction)
}
