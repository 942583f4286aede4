package rod

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the number of pages a browser serves before it is
// replaced with a fresh one.
const DefaultMaxPages = 75

// BrowserManager owns a headless browser and replaces it after a fixed
// number of pages, since Chrome's memory use keeps growing even when
// pages are closed.
//
// BrowserManager is safe for concurrent use.
type BrowserManager struct {
	mu        sync.Mutex
	browser   *rod.Browser
	launcher  *launcher.Launcher
	pageCount atomic.Int64
	maxPages  int64
	closed    atomic.Bool
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithMaxPages sets how many pages a browser serves before replacement.
func WithMaxPages(n int64) ManagerOption {
	return func(bm *BrowserManager) {
		bm.maxPages = n
	}
}

// NewBrowserManager launches a headless browser.
// Close must be called when the BrowserManager is no longer needed.
func NewBrowserManager(opts ...ManagerOption) (*BrowserManager, error) {
	bm := &BrowserManager{maxPages: DefaultMaxPages}
	for _, opt := range opts {
		opt(bm)
	}

	browser, l, err := launch()
	if err != nil {
		return nil, err
	}
	bm.browser, bm.launcher = browser, l
	return bm, nil
}

// Browser returns the current browser, replacing it first when it has
// served maxPages pages. Callers report each page with IncrementPageCount.
func (bm *BrowserManager) Browser() *rod.Browser {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.pageCount.Load() >= bm.maxPages {
		bm.recycle()
	}
	return bm.browser
}

// IncrementPageCount records one page served by the current browser.
func (bm *BrowserManager) IncrementPageCount() {
	bm.pageCount.Add(1)
}

// Close shuts the browser down. Close is safe to call multiple times.
func (bm *BrowserManager) Close() error {
	if !bm.closed.CompareAndSwap(false, true) {
		return nil
	}

	bm.mu.Lock()
	defer bm.mu.Unlock()

	err := shutdown(bm.browser, bm.launcher)
	bm.browser, bm.launcher = nil, nil
	return err
}

// LauncherPID returns the process ID of the browser launcher, or zero
// after Close.
func (bm *BrowserManager) LauncherPID() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	if bm.launcher == nil {
		return 0
	}
	return bm.launcher.PID()
}

// recycle swaps in a new browser. The old one is kept when the launch
// fails. Must be called with mu held.
func (bm *BrowserManager) recycle() {
	browser, l, err := launch()
	if err != nil {
		return
	}
	_ = shutdown(bm.browser, bm.launcher)
	bm.browser, bm.launcher = browser, l
	bm.pageCount.Store(0)
}

// launch starts a headless browser with flags that keep background tabs
// from being throttled.
func launch() (*rod.Browser, *launcher.Launcher, error) {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, nil, fmt.Errorf("connecting to browser: %w", err)
	}
	return browser, l, nil
}

func shutdown(browser *rod.Browser, l *launcher.Launcher) error {
	var err error
	if browser != nil {
		err = browser.Close()
	}
	if l != nil {
		l.Kill()
	}
	return err
}
