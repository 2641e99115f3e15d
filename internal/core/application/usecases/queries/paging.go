package queries

import (
	"storefront/internal/pkg/errs"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page selects a window of a listing. Numbers start at 1.
type Page struct {
	Number int
	Size   int
}

// NewPage treats zero values as the first page of DefaultPageSize rows.
func NewPage(number int, size int) (Page, error) {
	if number == 0 {
		number = 1
	}
	if size == 0 {
		size = DefaultPageSize
	}
	if number < 1 {
		return Page{}, errs.NewValueIsOutOfRangeError("page", number, 1, "∞")
	}
	if size < 1 || size > MaxPageSize {
		return Page{}, errs.NewValueIsOutOfRangeError("page size", size, 1, MaxPageSize)
	}
	return Page{Number: number, Size: size}, nil
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Listing is one page of results plus the total row count.
type Listing[T any] struct {
	Items []T
	Total int64
	Page  Page
}

func (l Listing[T]) NumPages() int {
	if l.Page.Size == 0 {
		return 0
	}
	return int((l.Total + int64(l.Page.Size) - 1) / int64(l.Page.Size))
}
