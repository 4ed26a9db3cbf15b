package members

import "context"

// Loader is what InfiniteScroll drives; *List satisfies it.
type Loader interface {
	FetchNextPage(ctx context.Context) (bool, error)
}

// Viewport describes the visible part of the rendered rows. LastVisible is a
// zero-based row index, -1 when nothing is shown.
type Viewport struct {
	LastVisible int
	Total       int
}

// InfiniteScroll asks for the next page once the viewport gets within
// Threshold rows of the end.
type InfiniteScroll struct {
	loader    Loader
	threshold int
}

func NewInfiniteScroll(loader Loader, threshold int) *InfiniteScroll {
	if threshold < 0 {
		threshold = 0
	}
	return &InfiniteScroll{loader: loader, threshold: threshold}
}

// Near reports whether at most threshold rows follow the last visible one.
func (s *InfiniteScroll) Near(vp Viewport) bool {
	return vp.Total-1-vp.LastVisible <= s.threshold
}

// Notify reports a viewport change and returns whether a fetch was issued.
func (s *InfiniteScroll) Notify(ctx context.Context, vp Viewport) (bool, error) {
	if !s.Near(vp) {
		return false, nil
	}
	return s.loader.FetchNextPage(ctx)
}
