package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchFiltersIsEmpty(t *testing.T) {
	var nilFilters *SearchFilters
	assert.True(t, nilFilters.IsEmpty())
	assert.True(t, (&SearchFilters{}).IsEmpty())
	assert.False(t, (&SearchFilters{Statuses: []TaskStatus{StatusTodo}}).IsEmpty())
}

func TestPaginationDefaults(t *testing.T) {
	p := Pagination{}.WithDefaults()
	assert.Equal(t, Pagination{Page: 1, PageSize: 50}, p)

	p = Pagination{Page: 3, PageSize: 10}.WithDefaults()
	assert.Equal(t, Pagination{Page: 3, PageSize: 10}, p)
}

func TestSearchResultPayload(t *testing.T) {
	r := &SearchResult{}
	assert.Equal(t, []Row{}, r.Payload())

	page := &Page{TotalCount: 0, Page: 1, PageSize: 50}
	r = &SearchResult{Paginated: true, Page: page}
	assert.Same(t, page, r.Payload())
}

func TestBatchResultFailAll(t *testing.T) {
	var b BatchResult
	b.Succeed("P", "1", "ok")
	b.Fail("P", "2", "bad")
	b.Succeed("P", "3", "ok")

	b.FailAll("write failed")

	assert.Equal(t, 0, b.SuccessCount)
	assert.Equal(t, 3, b.ErrorCount)
	assert.Equal(t, "bad", b.Details[1].Message)
	assert.Equal(t, "write failed", b.Details[2].Message)
	for _, d := range b.Details {
		assert.Equal(t, BatchError, d.Status)
	}
}
