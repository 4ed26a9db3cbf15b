package members_test

import (
	"context"
	"testing"

	"github.com/lindenb1/impress/internal/members"
	"github.com/stretchr/testify/assert"
)

type countingLoader struct {
	calls int
}

func (c *countingLoader) FetchNextPage(context.Context) (bool, error) {
	c.calls++
	return true, nil
}

func TestInfiniteScroll_Notify(t *testing.T) {
	tests := []struct {
		name      string
		threshold int
		viewport  members.Viewport
		want      bool
	}{
		{name: "far from end", threshold: 2, viewport: members.Viewport{LastVisible: 3, Total: 20}, want: false},
		{name: "one row past threshold", threshold: 2, viewport: members.Viewport{LastVisible: 16, Total: 20}, want: false},
		{name: "within threshold", threshold: 2, viewport: members.Viewport{LastVisible: 17, Total: 20}, want: true},
		{name: "at end", threshold: 0, viewport: members.Viewport{LastVisible: 19, Total: 20}, want: true},
		{name: "empty list", threshold: 0, viewport: members.Viewport{LastVisible: -1, Total: 0}, want: true},
		{name: "negative threshold", threshold: -5, viewport: members.Viewport{LastVisible: 18, Total: 20}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := &countingLoader{}
			scroll := members.NewInfiniteScroll(loader, tt.threshold)

			fetched, err := scroll.Notify(context.Background(), tt.viewport)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, fetched)
			if tt.want {
				assert.Equal(t, 1, loader.calls)
			} else {
				assert.Zero(t, loader.calls)
			}
		})
	}
}
