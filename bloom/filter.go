// Package bloom provides a concurrency-safe Bloom filter over extraction
// lookup keys. A negative answer is definite, so stores can skip queries
// for documents they have never seen.
package bloom

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter is a Bloom filter safe for concurrent use.
type Filter struct {
	mu     sync.RWMutex
	f      *bloom.BloomFilter
	n      uint
	fpRate float64
}

// NewFilter creates a new Bloom filter sized for n expected keys
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f:      bloom.NewWithEstimates(n, fpRate),
		n:      n,
		fpRate: fpRate,
	}
}

// Key joins an extraction key and content hash into one filter entry.
func Key(key, contentHash string) string {
	return key + "\x00" + contentHash
}

// Add records key.
func (f *Filter) Add(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.f.AddString(key)
}

// MayContain reports whether key might have been added.
// False positives are possible; false negatives are not.
func (f *Filter) MayContain(key string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.f.TestString(key)
}

// Reset forgets every key.
func (f *Filter) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.f = bloom.NewWithEstimates(f.n, f.fpRate)
}

// EstimatedCount returns the approximate number of keys in the filter.
func (f *Filter) EstimatedCount() uint {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return uint(f.f.ApproximatedSize())
}
