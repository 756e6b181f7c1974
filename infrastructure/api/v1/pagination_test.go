package v1

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helixml/xact/domain/repository"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		query    string
		page     int
		pageSize int
	}{
		{"", 1, DefaultPageSize},
		{"?page=3&page_size=5", 3, 5},
		{"?page=0&page_size=-1", 1, DefaultPageSize},
		{"?page=x&page_size=y", 1, DefaultPageSize},
		{"?page_size=1000", 1, MaxPageSize},
		{"?page=4611686018427387904&page_size=100", MaxPage, MaxPageSize},
	}
	for _, tt := range tests {
		p := ParsePagination(httptest.NewRequest(http.MethodGet, "/laps"+tt.query, nil))
		assert.Equal(t, tt.page, p.Page(), tt.query)
		assert.Equal(t, tt.pageSize, p.PageSize(), tt.query)
	}
}

func TestPaginationParams_Options(t *testing.T) {
	p := NewPaginationParams().WithPage(3).WithPageSize(10)

	q := repository.Build(p.Options()...)
	assert.Equal(t, 10, q.LimitValue())
	assert.Equal(t, 20, q.OffsetValue())
}

func TestPaginationParams_HugePageKeepsOffsetPositive(t *testing.T) {
	for _, size := range []int{1, DefaultPageSize, MaxPageSize} {
		p := NewPaginationParams().WithPageSize(size).WithPage(math.MaxInt)
		assert.Equal(t, MaxPage, p.Page())
		assert.Positive(t, p.Offset(), "page_size=%d", size)
		assert.Equal(t, (MaxPage-1)*size, p.Offset())
	}
}

func TestPaginationMetaAndLinks(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/laps?label=run&page=2&page_size=10", nil)
	p := ParsePagination(req)

	meta := PaginationMeta(p, 25)
	assert.Equal(t, 3, (*meta)["total_pages"])
	assert.Equal(t, int64(25), (*meta)["total_count"])

	links := PaginationLinks(req, p, 25)
	assert.Equal(t, "/laps?label=run&page=2&page_size=10", links.Self)
	assert.Equal(t, "/laps?label=run&page=1&page_size=10", links.First)
	assert.Equal(t, "/laps?label=run&page=3&page_size=10", links.Last)
	assert.Equal(t, "/laps?label=run&page=1&page_size=10", links.Prev)
	assert.Equal(t, "/laps?label=run&page=3&page_size=10", links.Next)

	empty := PaginationLinks(req, NewPaginationParams(), 0)
	assert.Empty(t, empty.Last)
	assert.Empty(t, empty.Next)
}
