package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage = 1
	DefaultSize = 50
	MaxSize     = 100
	MinSize     = 1
)

// Params holds validated pagination parameters.
type Params struct {
	Page   int
	Size   int
	Offset int
}

// Parse extracts and validates page/size from query parameters.
func Parse(c *gin.Context) Params {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(DefaultPage)))
	size, _ := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(DefaultSize)))

	if page < 1 {
		page = DefaultPage
	}
	if size < MinSize {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}

	return Params{
		Page:   page,
		Size:   size,
		Offset: (page - 1) * size,
	}
}

// Page is the paginated response body: items plus paging metadata.
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Pages int   `json:"pages"`
}

// NewPage assembles a Page from a result slice and the total row count.
func NewPage[T any](items []T, total int64, p Params) Page[T] {
	if items == nil {
		items = []T{}
	}
	pages := int((total + int64(p.Size) - 1) / int64(p.Size))
	return Page[T]{
		Items: items,
		Total: total,
		Page:  p.Page,
		Size:  p.Size,
		Pages: pages,
	}
}
