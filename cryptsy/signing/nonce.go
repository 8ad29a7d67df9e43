package signing

import (
	"sync/atomic"
	"time"
)

// NonceSource hands out millisecond timestamps that strictly increase, even
// when several goroutines ask within the same millisecond. The exchange
// rejects a private request whose nonce is not above the last one it saw
// for the key.
type NonceSource struct {
	prev atomic.Int64
	now  func() time.Time
}

// NewNonceSource returns a source backed by the wall clock.
func NewNonceSource() *NonceSource {
	return &NonceSource{now: time.Now}
}

// Next returns the next nonce.
func (s *NonceSource) Next() int64 {
	for {
		prev := s.prev.Load()
		curr := s.clock().UnixMilli()

		if curr <= prev {
			curr = prev + 1
		}

		if s.prev.CompareAndSwap(prev, curr) {
			return curr
		}
	}
}

func (s *NonceSource) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}
