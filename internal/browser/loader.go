package browser

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/idelchi/selectfile/internal/dirsize"
)

// Loader serves directory listings to concurrent callers. Requests for the
// same listing that overlap share a single read.
type Loader struct {
	lister Lister
	group  singleflight.Group
	// mu serializes reads; the venv detector behind the lister is not concurrency safe.
	mu sync.Mutex
}

// NewLoader creates a Loader reading through lister.
func NewLoader(lister Lister) *Loader {
	return &Loader{lister: lister}
}

// Load lists dir. It returns early with the context error when ctx is done,
// leaving the shared read to finish for any other waiter.
func (l *Loader) Load(ctx context.Context, dir string, showHidden bool) ([]Entry, error) {
	key := dir + "|" + strconv.FormatBool(showHidden)

	ch := l.group.DoChan(key, func() (any, error) {
		l.mu.Lock()
		defer l.mu.Unlock()

		return l.lister.List(dir, showHidden)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}

		entries, _ := res.Val.([]Entry)

		// Shared results must not be sorted in place by more than one caller.
		return append([]Entry(nil), entries...), nil
	}
}

// Sizer makes a dirsize.Aggregator usable from concurrent commands.
type Sizer struct {
	agg   *dirsize.Aggregator
	group singleflight.Group
	mu    sync.Mutex
}

// NewSizer wraps agg.
func NewSizer(agg *dirsize.Aggregator) *Sizer {
	return &Sizer{agg: agg}
}

// Size returns the recursive size of path. Concurrent requests for the same
// path share one walk.
func (s *Sizer) Size(path string) int64 {
	v, _, _ := s.group.Do(path, func() (any, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		return s.agg.Size(path), nil
	})

	size, _ := v.(int64)

	return size
}

// HasVenv checks dir with the lister's venv detector under the read lock.
func (l *Loader) HasVenv(dir string) bool {
	if l.lister.Venv == nil {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	return l.lister.Venv.HasVenv(dir)
}
