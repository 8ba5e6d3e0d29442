package insight

// Page is a bounded slice of a larger result set. TotalCount is authoritative
// even when Items is a partial page, and is -1 when the source did not report it.
type Page[T any] struct {
	Items      []T
	TotalCount int64
}

func NewPage[T any](items []T, totalCount int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:      items,
		TotalCount: totalCount,
	}
}

// TotalPages returns the number of pages of pageSize items needed to hold TotalCount items
func (p Page[T]) TotalPages(pageSize int) int64 {
	if pageSize <= 0 || p.TotalCount <= 0 {
		return 0
	}
	size := int64(pageSize)
	return (p.TotalCount + size - 1) / size
}

// Map converts the items of a page while keeping its total count
func Map[T, U any](p Page[T], fn func(T) (U, error)) (Page[U], error) {
	items := make([]U, 0, len(p.Items))
	for _, t := range p.Items {
		u, err := fn(t)
		if err != nil {
			return Page[U]{}, err
		}
		items = append(items, u)
	}
	return NewPage(items, p.TotalCount), nil
}
