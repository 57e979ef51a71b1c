package dto

import (
	"net/url"
	"strings"

	"github.com/spf13/cast"
)

// Reserved list query keys; every other key is a filter.
const (
	QuerySearch  = "q"
	QueryPage    = "page"
	QueryPerPage = "per_page"
)

// MaxPerPage caps the page size a list screen may ask for.
const MaxPerPage = 100

// ListQuery is what a list screen sends: search term, dropdown filters
// and the client-side page. PerPage nil means the resource default.
type ListQuery struct {
	Search  string
	Filters map[string]string
	Page    int
	PerPage *int
}

func ParseListQuery(values url.Values) *ListQuery {
	q := &ListQuery{
		Search:  strings.TrimSpace(values.Get(QuerySearch)),
		Filters: make(map[string]string),
		Page:    cast.ToInt(values.Get(QueryPage)),
	}
	if raw := values.Get(QueryPerPage); raw != "" {
		perPage := cast.ToInt(raw)
		if perPage > MaxPerPage {
			perPage = MaxPerPage
		}
		q.PerPage = &perPage
	}
	for key, vals := range values {
		if key == QuerySearch || key == QueryPage || key == QueryPerPage || len(vals) == 0 {
			continue
		}
		if v := strings.TrimSpace(vals[0]); v != "" {
			q.Filters[key] = v
		}
	}
	if q.Page < 1 {
		q.Page = 1
	}
	return q
}

// Int64 reads a numeric filter; 0 when absent or not a number.
func (q *ListQuery) Int64(key string) int64 {
	if q == nil {
		return 0
	}
	return cast.ToInt64(q.Filters[key])
}

func (q *ListQuery) String(key string) string {
	if q == nil {
		return ""
	}
	return q.Filters[key]
}
