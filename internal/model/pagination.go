package model

// Pagination bounds. The effective maximum limit comes from configuration.
const (
	MinPage  = 1
	MinLimit = 1
)

type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalCount int  `json:"total_count"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// NewPagination derives the pagination block for a page of results.
// total_pages is ceil(totalCount/limit).
func NewPagination(page, limit, totalCount int) Pagination {
	totalPages := (totalCount + limit - 1) / limit
	return Pagination{
		Page:       page,
		Limit:      limit,
		TotalCount: totalCount,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// Offset converts a validated page/limit pair into a row offset.
func Offset(page, limit int) int {
	return (page - 1) * limit
}
