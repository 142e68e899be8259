package optimizer

import (
	"slices"
	"sync"
)

// Collector keeps the K highest scoring items of two lists, successes and errors.
// It is safe for concurrent use. Each list has its own mutex and no call holds both.
type Collector[T any] struct {
	capacity int
	score    func(T) float64

	bestMu sync.Mutex
	best   []T

	errorsMu sync.Mutex
	errors   []T
}

// NewCollector creates a collector retaining capacity items per list, ranked by score.
// A capacity below 1 is treated as 1.
func NewCollector[T any](capacity int, score func(T) float64) *Collector[T] {
	capacity = max(capacity, 1)

	return &Collector[T]{
		capacity: capacity,
		score:    score,
		best:     make([]T, 0, capacity+1),
		errors:   make([]T, 0, capacity+1),
	}
}

// Push adds item to the error list when isError is set, to the best list otherwise.
func (c *Collector[T]) Push(item T, isError bool) {
	if isError {
		c.errorsMu.Lock()
		c.errors = c.insert(c.errors, item)
		c.errorsMu.Unlock()

		return
	}

	c.bestMu.Lock()
	c.best = c.insert(c.best, item)
	c.bestMu.Unlock()
}

// insert appends, sorts descending and truncates. Items with equal scores keep push order.
func (c *Collector[T]) insert(list []T, item T) []T {
	list = append(list, item)
	slices.SortStableFunc(list, func(a, b T) int {
		sa, sb := c.score(a), c.score(b)

		switch {
		case sa > sb:
			return -1
		case sa < sb:
			return 1
		default:
			return 0
		}
	})

	if len(list) > c.capacity {
		list = list[:c.capacity]
	}

	return list
}

// Best returns a copy of the best list, highest score first.
func (c *Collector[T]) Best() []T {
	c.bestMu.Lock()
	defer c.bestMu.Unlock()

	return slices.Clone(c.best)
}

// Errors returns a copy of the error list, highest score first.
func (c *Collector[T]) Errors() []T {
	c.errorsMu.Lock()
	defer c.errorsMu.Unlock()

	return slices.Clone(c.errors)
}

func (c *Collector[T]) Capacity() int {
	return c.capacity
}
