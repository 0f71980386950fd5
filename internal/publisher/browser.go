package publisher

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/chromedp"
)

var (
	chromedpExecAllocator = chromedp.NewExecAllocator
	chromedpContext       = chromedp.NewContext
	chromedpRunner        = chromedp.Run
)

const defaultBrowserTimeout = 45 * time.Second

// BrowserOptions configures a BrowserSource.
type BrowserOptions struct {
	Headless bool
	// Timeout bounds a single page load.
	Timeout time.Duration
}

// BrowserSource renders pages in a headless Chrome session. It is slower than
// HTTPSource but gets the same markup a user sees when the plain request is
// served a consent or captcha page.
type BrowserSource struct {
	opts BrowserOptions

	mu            sync.Mutex
	browserCtx    context.Context
	cancelBrowser context.CancelFunc
	cancelAlloc   context.CancelFunc
}

// NewBrowserSource creates a BrowserSource. The browser starts lazily on the
// first fetch and lives until Close.
func NewBrowserSource(opts BrowserOptions) *BrowserSource {
	if opts.Timeout == 0 {
		opts.Timeout = defaultBrowserTimeout
	}
	return &BrowserSource{opts: opts}
}

func buildExecAllocatorOptions(opts BrowserOptions) []chromedp.ExecAllocatorOption {
	return []chromedp.ExecAllocatorOption{
		chromedp.NoDefaultBrowserCheck,
		chromedp.NoFirstRun,
		chromedp.UserAgent(DefaultUserAgent),
		chromedp.Flag("headless", opts.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("mute-audio", true),
		chromedp.Flag("disable-default-apps", true),
	}
}

func (s *BrowserSource) session() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.browserCtx == nil {
		allocCtx, cancelAlloc := chromedpExecAllocator(context.Background(), buildExecAllocatorOptions(s.opts)...)
		browserCtx, cancelBrowser := chromedpContext(allocCtx)
		s.browserCtx = browserCtx
		s.cancelBrowser = cancelBrowser
		s.cancelAlloc = cancelAlloc
	}
	return s.browserCtx
}

// FetchHTML implements PageSource.
func (s *BrowserSource) FetchHTML(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, errors.New("browser fetch requires a URL")
	}

	tabCtx, cancelTab := chromedpContext(s.session())
	defer cancelTab()

	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, s.opts.Timeout)
	defer cancelTimeout()

	// Propagate caller cancellation into the tab.
	stop := context.AfterFunc(ctx, cancelTab)
	defer stop()

	var page string
	if err := chromedpRunner(tabCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.OuterHTML("html", &page, chromedp.ByQuery),
	); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("browser fetch failed: %w", err)
	}
	return []byte(page), nil
}

// Close shuts down the browser if it was started.
func (s *BrowserSource) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancelBrowser != nil {
		s.cancelBrowser()
		s.cancelAlloc()
		s.browserCtx = nil
		s.cancelBrowser = nil
		s.cancelAlloc = nil
	}
}
