package optimizer

import "sync/atomic"

// Progress counts processed combinations across workers.
// Reads are not ordered with respect to collector pushes.
type Progress struct {
	current atomic.Int64
	total   int64
}

func NewProgress(total int) *Progress {
	return &Progress{total: int64(total)}
}

// Increment records one processed combination and returns the new count.
func (p *Progress) Increment() int64 {
	return p.current.Add(1)
}

func (p *Progress) Current() int64 {
	return p.current.Load()
}

func (p *Progress) Total() int64 {
	return p.total
}

// Percent returns the processed share in [0, 100].
func (p *Progress) Percent() float64 {
	if p.total == 0 {
		return 100
	}

	return float64(p.Current()) / float64(p.total) * 100
}
