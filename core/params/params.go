package params

import (
	"strconv"
	"strings"

	"pickup/core/constants"

	"github.com/labstack/echo/v4"
)

type QueryParams struct {
	PageNumber int
	PageSize   int
	Search     string
}

func NewQueryParams(c echo.Context) *QueryParams {
	p := &QueryParams{
		PageNumber: constants.DefaultPageNumber,
		PageSize:   constants.DefaultPageSize,
		Search:     strings.TrimSpace(c.QueryParam("search")),
	}
	if n, err := strconv.Atoi(c.QueryParam("page_number")); err == nil && n > 0 {
		p.PageNumber = n
	}
	if n, err := strconv.Atoi(c.QueryParam("page_size")); err == nil && n > 0 {
		p.PageSize = min(n, constants.MaxPageSize)
	}
	return p
}

// NewListParams reads the same parameters but leaves the listing unbounded
// unless the caller asks for a page size. Collections the client replaces
// wholesale are read this way.
func NewListParams(c echo.Context) *QueryParams {
	p := NewQueryParams(c)
	if c.QueryParam("page_size") == "" {
		p.PageNumber = constants.DefaultPageNumber
		p.PageSize = 0
	}
	return p
}

// Paged reports whether a LIMIT applies. A zero page size means every row.
func (p QueryParams) Paged() bool {
	return p.PageSize > 0
}

func (p QueryParams) Offset() int {
	if !p.Paged() || p.PageNumber < 1 {
		return 0
	}
	return (p.PageNumber - 1) * p.PageSize
}
