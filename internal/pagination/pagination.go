// Package pagination parses list parameters and builds paged responses
package pagination

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type Params struct {
	Page     int
	PageSize int
	Query    string
}

// New clamps page to >= 1 and pageSize to [1, MaxPageSize]
func New(page, pageSize int, query string) Params {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return Params{Page: page, PageSize: pageSize, Query: strings.TrimSpace(query)}
}

// Parse reads page, pageSize (or page_size / limit) and q from the query string
func Parse(c *gin.Context) Params {
	size := c.Query("pageSize")
	if size == "" {
		size = c.Query("page_size")
	}
	if size == "" {
		size = c.Query("limit")
	}
	return New(atoi(c.Query("page")), atoi(size), c.Query("q"))
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Apply adds offset/limit to the query
func (p Params) Apply(db *gorm.DB) *gorm.DB {
	return db.Offset(p.Offset()).Limit(p.PageSize)
}

// Search adds a case-insensitive substring match of q over columns. Column
// names come from code, never from the request.
func (p Params) Search(db *gorm.DB, columns ...string) *gorm.DB {
	if p.Query == "" || len(columns) == 0 {
		return db
	}
	pattern := "%" + escapeLike(strings.ToLower(p.Query)) + "%"

	clauses := make([]string, len(columns))
	args := make([]interface{}, len(columns))
	for i, col := range columns {
		clauses[i] = "LOWER(" + col + ") LIKE ? ESCAPE '\\'"
		args[i] = pattern
	}
	return db.Where("("+strings.Join(clauses, " OR ")+")", args...)
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// Page is the list response shape
type Page[T any] struct {
	Items    []T   `json:"items"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}

func NewPage[T any](items []T, p Params, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Page: p.Page, PageSize: p.PageSize, Total: total}
}
