package v1

import (
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/helixml/xact/domain/repository"
	"github.com/helixml/xact/infrastructure/api/jsonapi"
)

// Page size bounds for list endpoints.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	// MaxPage keeps Offset within int at any page size.
	MaxPage = math.MaxInt / MaxPageSize
)

// PaginationParams holds the page and page_size query parameters.
type PaginationParams struct {
	page     int
	pageSize int
}

// NewPaginationParams returns the first page at the default size.
func NewPaginationParams() PaginationParams {
	return PaginationParams{page: 1, pageSize: DefaultPageSize}
}

// ParsePagination reads page and page_size from r. Values that are not
// positive integers fall back to the defaults and page_size is capped at
// MaxPageSize.
func ParsePagination(r *http.Request) PaginationParams {
	params := NewPaginationParams()
	q := r.URL.Query()

	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		params = params.WithPage(page)
	}
	if size, err := strconv.Atoi(q.Get("page_size")); err == nil {
		params = params.WithPageSize(size)
	}
	return params
}

// Page returns the page number, starting at 1.
func (p PaginationParams) Page() int { return p.page }

// PageSize returns the page size.
func (p PaginationParams) PageSize() int { return p.pageSize }

// Offset returns the number of rows to skip.
func (p PaginationParams) Offset() int { return (p.page - 1) * p.pageSize }

// Limit returns the number of rows to fetch.
func (p PaginationParams) Limit() int { return p.pageSize }

// WithPage returns a copy on page, clamped to [1, MaxPage].
func (p PaginationParams) WithPage(page int) PaginationParams {
	p.page = min(max(page, 1), MaxPage)
	return p
}

// WithPageSize returns a copy with size rows per page.
func (p PaginationParams) WithPageSize(size int) PaginationParams {
	if size < 1 {
		size = DefaultPageSize
	}
	p.pageSize = min(size, MaxPageSize)
	return p
}

// Options returns the limit and offset as repository options.
func (p PaginationParams) Options() []repository.Option {
	return repository.WithPagination(p.Limit(), p.Offset())
}

func (p PaginationParams) totalPages(totalCount int64) int {
	if p.pageSize <= 0 {
		return 0
	}
	return int((totalCount + int64(p.pageSize) - 1) / int64(p.pageSize))
}

// PaginationMeta describes the current page for a JSON:API document.
func PaginationMeta(params PaginationParams, totalCount int64) *jsonapi.Meta {
	return &jsonapi.Meta{
		"page":        params.Page(),
		"page_size":   params.PageSize(),
		"total_count": totalCount,
		"total_pages": params.totalPages(totalCount),
	}
}

// PaginationLinks builds self, first, last, prev and next links, keeping
// every other query parameter of r.
func PaginationLinks(r *http.Request, params PaginationParams, totalCount int64) *jsonapi.Links {
	totalPages := params.totalPages(totalCount)

	link := func(page int) string {
		q := r.URL.Query()
		q.Set("page", strconv.Itoa(page))
		q.Set("page_size", strconv.Itoa(params.PageSize()))
		return (&url.URL{Path: r.URL.Path, RawQuery: q.Encode()}).String()
	}

	links := jsonapi.Links{
		Self:  link(params.Page()),
		First: link(1),
	}
	if totalPages > 0 {
		links.Last = link(totalPages)
	}
	if params.Page() > 1 {
		links.Prev = link(params.Page() - 1)
	}
	if params.Page() < totalPages {
		links.Next = link(params.Page() + 1)
	}
	return &links
}
