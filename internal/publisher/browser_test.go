package publisher

import (
	"context"
	"errors"
	"testing"

	"github.com/chromedp/chromedp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubChromedp(t *testing.T, run func(ctx context.Context, actions ...chromedp.Action) error) *int {
	t.Helper()

	origAlloc, origContext, origRunner := chromedpExecAllocator, chromedpContext, chromedpRunner
	t.Cleanup(func() {
		chromedpExecAllocator, chromedpContext, chromedpRunner = origAlloc, origContext, origRunner
	})

	allocations := 0
	chromedpExecAllocator = func(parent context.Context, _ ...chromedp.ExecAllocatorOption) (context.Context, context.CancelFunc) {
		allocations++
		return context.WithCancel(parent)
	}
	chromedpContext = func(parent context.Context, _ ...chromedp.ContextOption) (context.Context, context.CancelFunc) {
		return context.WithCancel(parent)
	}
	chromedpRunner = run
	return &allocations
}

func TestBrowserSource_RunError(t *testing.T) {
	stubChromedp(t, func(ctx context.Context, actions ...chromedp.Action) error {
		assert.Len(t, actions, 3)
		return errors.New("net::ERR_NAME_NOT_RESOLVED")
	})

	src := NewBrowserSource(BrowserOptions{Headless: true})
	defer src.Close()

	_, err := src.FetchHTML(context.Background(), "https://search.test/?q=x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "browser fetch failed")
}

func TestBrowserSource_ReusesBrowser(t *testing.T) {
	allocations := stubChromedp(t, func(ctx context.Context, actions ...chromedp.Action) error {
		return nil
	})

	src := NewBrowserSource(BrowserOptions{})
	for i := 0; i < 3; i++ {
		_, err := src.FetchHTML(context.Background(), "https://search.test/?q=x")
		require.NoError(t, err)
	}
	assert.Equal(t, 1, *allocations)

	src.Close()
	_, err := src.FetchHTML(context.Background(), "https://search.test/?q=y")
	require.NoError(t, err)
	assert.Equal(t, 2, *allocations)
	src.Close()
}

func TestBrowserSource_CallerCancelled(t *testing.T) {
	stubChromedp(t, func(ctx context.Context, actions ...chromedp.Action) error {
		<-ctx.Done()
		return ctx.Err()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := NewBrowserSource(BrowserOptions{})
	defer src.Close()

	_, err := src.FetchHTML(ctx, "https://search.test/?q=x")
	require.ErrorIs(t, err, context.Canceled)
}

func TestBrowserSource_RequiresURL(t *testing.T) {
	src := NewBrowserSource(BrowserOptions{})
	_, err := src.FetchHTML(context.Background(), "")
	require.Error(t, err)
}

func TestBuildExecAllocatorOptions(t *testing.T) {
	opts := buildExecAllocatorOptions(BrowserOptions{Headless: true})
	assert.NotEmpty(t, opts)
}
