package dto

import "fmt"

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams orders and pages a generic repository read. The zero value reads everything unordered.
type QueryParams struct {
	Page    int
	Limit   int
	SortBy  string
	SortDir string
}

// Ordering renders the ORDER BY clause. SortBy is a trusted column reference, never user input.
func (q QueryParams) Ordering() string {
	if q.SortBy == "" || (q.SortDir != SortDirAsc && q.SortDir != SortDirDesc) {
		return ""
	}

	return fmt.Sprintf("ORDER BY %s %s", q.SortBy, q.SortDir)
}

// Pagination renders LIMIT/OFFSET and adds their named arguments to args.
func (q QueryParams) Pagination(args map[string]any) string {
	if q.Limit <= 0 {
		return ""
	}

	args["limit"] = q.Limit

	if q.Page <= 0 {
		return "LIMIT :limit"
	}

	args["offset"] = (q.Page - 1) * q.Limit

	return "LIMIT :limit OFFSET :offset"
}
