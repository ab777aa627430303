// Package query implements the filter+sort+paginate pipeline every list
// endpoint is built from. A Composer wraps a repository's bulk read and
// never mutates it; each call re-reads the source and recomputes the
// pipeline. There is no index or cache — acceptable at the data volumes
// this backend targets.
package query

import (
	"context"
	"sort"
)

// Predicate answers "does entity e pass?". Predicates are combined by
// logical AND.
type Predicate[T any] func(e T) bool

// Less orders two entities by some sort key.
type Less[T any] func(a, b T) bool

// Source is the bulk-read capability of a base repository.
type Source[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
}

// Composer accumulates predicates and at most one sorter around a
// Source and serves filtered, sorted, paginated slices.
type Composer[T any] struct {
	source  Source[T]
	filters []Predicate[T]
	less    Less[T]
	desc    bool
}

func New[T any](source Source[T]) *Composer[T] {
	return &Composer[T]{source: source}
}

// AddFilter appends a predicate. Order is irrelevant to the result.
func (c *Composer[T]) AddFilter(p Predicate[T]) *Composer[T] {
	if p != nil {
		c.filters = append(c.filters, p)
	}
	return c
}

// SetSorter replaces any previously set sorter.
func (c *Composer[T]) SetSorter(less Less[T], descending bool) *Composer[T] {
	c.less = less
	c.desc = descending
	return c
}

func (c *Composer[T]) filtered(ctx context.Context) ([]T, error) {
	all, err := c.source.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(all))
	for _, e := range all {
		keep := true
		for _, p := range c.filters {
			if !p(e) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, e)
		}
	}
	return out, nil
}

func (c *Composer[T]) sorted(items []T) []T {
	if c.less == nil {
		return items
	}
	less := c.less
	if c.desc {
		// Stable sort keeps fetch order on ties in both directions.
		sort.SliceStable(items, func(i, j int) bool { return less(items[j], items[i]) })
	} else {
		sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
	}
	return items
}

// ReadAll returns the filtered and sorted set without pagination.
func (c *Composer[T]) ReadAll(ctx context.Context) ([]T, error) {
	items, err := c.filtered(ctx)
	if err != nil {
		return nil, err
	}
	return c.sorted(items), nil
}

// Count returns the size of the filtered set.
func (c *Composer[T]) Count(ctx context.Context) (int, error) {
	items, err := c.filtered(ctx)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

// List returns page number page (1-based) of size pageSize. pageSize <= 0
// disables pagination and returns everything as one page. A page number
// below 1 is clamped to 1; an offset beyond the filtered set yields an
// empty slice, not an error.
func (c *Composer[T]) List(ctx context.Context, pageSize, page int) ([]T, error) {
	items, err := c.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	if pageSize <= 0 {
		return items, nil
	}
	if page < 1 {
		page = 1
	}

	offset := (page - 1) * pageSize
	if offset >= len(items) {
		return []T{}, nil
	}
	end := offset + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end], nil
}
