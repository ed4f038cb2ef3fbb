package paging

import "math"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	// MaxPage держит offset в пределах int32 при любом размере страницы.
	MaxPage = math.MaxInt32 / MaxPageSize
)

// Page описывает одну страницу элементов.
type Page[T any] struct {
	Items    []T // элементы на текущей странице
	Page     int // номер страницы (с 1)
	PageSize int // количество элементов на странице
	HasNext  bool
	HasPrev  bool
	Total    int64 // общее количество элементов
}

// Window нормализует page/pageSize и переводит их в limit/offset для запроса.
// page нумеруется с 1. При некорректных значениях используются дефолты.
func Window(page, pageSize int) (normPage, normSize, limit, offset int) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	if page <= 0 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	return page, pageSize, pageSize, (page - 1) * pageSize
}

// NewPage собирает метаданные страницы по уже выбранным элементам и общему числу.
func NewPage[T any](items []T, page, pageSize int, total int64) Page[T] {
	page, pageSize, _, offset := Window(page, pageSize)

	return Page[T]{
		Items:    items,
		Page:     page,
		PageSize: pageSize,
		HasPrev:  page > 1,
		HasNext:  int64(offset+len(items)) < total,
		Total:    total,
	}
}
